package world

import "fmt"

// InvariantError reports a Change that references an id that never
// existed or would corrupt the ownership tree. It indicates an authoring
// or engine bug and is never absorbed silently.
type InvariantError struct {
	Kind ChangeKind
	Ref  EntityID
	Msg  string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("invariant violation applying %s to %q: %s", e.Kind, e.Ref, e.Msg)
}

// Apply commits a turn's ordered Change batch. The batch is applied to a
// single working copy which is returned as the new canonical state; the
// receiver is never modified, so no partial application is observable.
// A change targeting an item reparented to Nowhere earlier in the same
// batch is a no-op. Identical state and batch always produce an
// identical result.
func (gs *GameState) Apply(changes []Change) (*GameState, error) {
	next := gs.Clone()
	removed := make(map[EntityID]bool)
	for _, c := range changes {
		if c.Item != "" && removed[c.Item] {
			continue
		}
		if err := next.applyOne(c, removed); err != nil {
			return nil, err
		}
	}
	return next, nil
}

func (next *GameState) applyOne(c Change, removed map[EntityID]bool) error {
	switch c.Kind {
	case ChangeSetFlag, ChangeClearFlag:
		return next.applyFlag(c)

	case ChangeMoveItem:
		it := next.Items[c.Item]
		if it == nil {
			return &InvariantError{Kind: c.Kind, Ref: c.Item, Msg: "no such item"}
		}
		if err := next.checkDestination(c); err != nil {
			return err
		}
		it.Parent = c.To
		if c.To == Nowhere {
			removed[c.Item] = true
		}
		return nil

	case ChangeMovePlayer:
		if next.Locations[c.To] == nil {
			return &InvariantError{Kind: c.Kind, Ref: c.To, Msg: "no such location"}
		}
		next.Player.Location = c.To
		return nil

	case ChangeAdjustScore:
		next.Player.Score += c.Delta
		return nil

	case ChangeAdjustMoves:
		next.Player.Moves += c.Delta
		return nil

	case ChangeAdjustHealth:
		it := next.Items[c.Item]
		if it == nil {
			return &InvariantError{Kind: c.Kind, Ref: c.Item, Msg: "no such item"}
		}
		if it.Sheet == nil {
			return &InvariantError{Kind: c.Kind, Ref: c.Item, Msg: "item has no character sheet"}
		}
		hp := it.Sheet.HP + c.Delta
		if hp < 0 {
			hp = 0
		}
		if hp > it.Sheet.MaxHP {
			hp = it.Sheet.MaxHP
		}
		it.Sheet.HP = hp
		return nil

	case ChangeSetVar:
		if next.Vars == nil {
			next.Vars = make(map[string]string)
		}
		next.Vars[c.Key] = c.Value
		return nil

	case ChangeUpdatePronoun:
		return next.applyPronoun(c)

	default:
		return &InvariantError{Kind: c.Kind, Ref: c.Item, Msg: "unknown change kind"}
	}
}

func (next *GameState) applyFlag(c Change) error {
	set := c.Kind == ChangeSetFlag
	if c.Item == "" {
		if next.Flags == nil {
			next.Flags = make(map[string]bool)
		}
		if set {
			next.Flags[c.Flag] = true
		} else {
			delete(next.Flags, c.Flag)
		}
		return nil
	}
	it := next.Items[c.Item]
	if it == nil {
		return &InvariantError{Kind: c.Kind, Ref: c.Item, Msg: "no such item"}
	}
	if !set && c.Flag == FlagTouched {
		// Touched is monotonic.
		return nil
	}
	if it.Flags == nil {
		it.Flags = make(map[string]bool)
	}
	if set {
		it.Flags[c.Flag] = true
	} else {
		delete(it.Flags, c.Flag)
	}
	return nil
}

// checkDestination verifies a MoveItem target: it must be a location, an
// existing item, the player, or Nowhere, and must not make the moved item
// its own ancestor.
func (next *GameState) checkDestination(c Change) error {
	switch {
	case c.To == Nowhere || c.To == PlayerID:
		return nil
	case next.Locations[c.To] != nil:
		return nil
	case next.Items[c.To] != nil:
		if c.To == c.Item || next.Holds(c.Item, c.To) {
			return &InvariantError{Kind: c.Kind, Ref: c.Item, Msg: "move would create a parent cycle"}
		}
		return nil
	default:
		return &InvariantError{Kind: c.Kind, Ref: c.To, Msg: "no such destination"}
	}
}

func (next *GameState) applyPronoun(c Change) error {
	for _, ref := range c.Refs {
		if next.Items[ref] == nil {
			return &InvariantError{Kind: c.Kind, Ref: ref, Msg: "pronoun bound to nonexistent entity"}
		}
	}
	switch c.Key {
	case PronounIt:
		if len(c.Refs) > 0 {
			next.Pronouns.It = c.Refs[0]
		}
	case PronounThem:
		next.Pronouns.Them = append([]EntityID(nil), c.Refs...)
	case PronounHim:
		if len(c.Refs) > 0 {
			next.Pronouns.Him = c.Refs[0]
		}
	case PronounHer:
		if len(c.Refs) > 0 {
			next.Pronouns.Her = c.Refs[0]
		}
	default:
		return &InvariantError{Kind: c.Kind, Ref: c.Item, Msg: "unknown pronoun slot " + c.Key}
	}
	return nil
}
