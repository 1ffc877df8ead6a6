package world

// Reachable returns the set of entity ids a command issued at the given
// location may legally refer to. The set is the union of:
//
//   - everything transitively held by the player (through any container,
//     open or not — possession implies reachability), when the player is
//     at the location, and
//   - everything in the location itself, descending into surfaces always
//     and into containers only while open or transparent.
//
// Characters are ordinary items and follow the same rule. Items parented
// to a different location are never reachable.
func (gs *GameState) Reachable(loc EntityID) map[EntityID]bool {
	out := make(map[EntityID]bool)

	if gs.Player.Location == loc {
		gs.collectHeld(PlayerID, out)
	}
	gs.collectVisible(loc, out)
	return out
}

// InScope reports whether id is reachable from the player's current
// location. Every verb precondition for "target can be acted upon" routes
// through this predicate.
func (gs *GameState) InScope(id EntityID) bool {
	return gs.Reachable(gs.Player.Location)[id]
}

// collectHeld gathers everything under parent regardless of container
// state.
func (gs *GameState) collectHeld(parent EntityID, out map[EntityID]bool) {
	for _, it := range gs.Contents(parent) {
		out[it.ID] = true
		gs.collectHeld(it.ID, out)
	}
}

// collectVisible gathers everything under parent that can be reached by
// sight, stopping at closed opaque containers.
func (gs *GameState) collectVisible(parent EntityID, out map[EntityID]bool) {
	for _, it := range gs.Contents(parent) {
		out[it.ID] = true
		if it.SeesInside() {
			gs.collectVisible(it.ID, out)
		}
	}
}
