package engine

import "github.com/hollowgate/lantern/pkg/world"

// pronounChanges computes the rebinding batch for a turn whose command
// validated and committed. Slots are chosen from the entities' grammar
// metadata: plural or multiple objects bind "them", animate gendered
// characters bind "him"/"her", and everything else binds "it". A turn
// that fails validation never reaches this path.
func pronounChanges(gs *world.GameState, cmd Command) []world.Change {
	if len(cmd.Objects) == 0 {
		return nil
	}

	var changes []world.Change

	if len(cmd.Objects) > 1 {
		changes = append(changes, world.UpdatePronoun(world.PronounThem, cmd.Objects...))
		return changes
	}

	id := cmd.Objects[0]
	it := gs.Item(id)
	if it == nil {
		return nil
	}

	switch {
	case it.Plural:
		changes = append(changes, world.UpdatePronoun(world.PronounThem, id))
	case it.Animate && it.Gender == world.GenderMale:
		changes = append(changes, world.UpdatePronoun(world.PronounHim, id))
	case it.Animate && it.Gender == world.GenderFemale:
		changes = append(changes, world.UpdatePronoun(world.PronounHer, id))
	default:
		changes = append(changes, world.UpdatePronoun(world.PronounIt, id))
	}
	return changes
}
