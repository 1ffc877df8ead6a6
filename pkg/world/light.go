package world

// IsLit reports whether the location has light: inherently lit, or some
// reachable item is a switched-on light source. Pure and recomputed per
// call, since devices can toggle mid-turn.
func (gs *GameState) IsLit(loc EntityID) bool {
	l := gs.Locations[loc]
	if l == nil {
		return false
	}
	if l.Lit {
		return true
	}
	for id := range gs.Reachable(loc) {
		it := gs.Items[id]
		if it != nil && it.Has(FlagLightSource) && it.Has(FlagOn) {
			return true
		}
	}
	return false
}
