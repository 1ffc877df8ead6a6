package world

// ChangeKind tags a Change variant.
type ChangeKind string

const (
	ChangeSetFlag       ChangeKind = "set_flag"
	ChangeClearFlag     ChangeKind = "clear_flag"
	ChangeMoveItem      ChangeKind = "move_item"
	ChangeMovePlayer    ChangeKind = "move_player"
	ChangeAdjustScore   ChangeKind = "adjust_score"
	ChangeAdjustMoves   ChangeKind = "adjust_moves"
	ChangeAdjustHealth  ChangeKind = "adjust_health"
	ChangeSetVar        ChangeKind = "set_var"
	ChangeUpdatePronoun ChangeKind = "update_pronoun"
)

// Pronoun slots addressable by ChangeUpdatePronoun.
const (
	PronounIt   = "it"
	PronounThem = "them"
	PronounHim  = "him"
	PronounHer  = "her"
)

// Change is one atomic, typed world mutation. Handlers and hooks queue
// Changes; the applier commits a turn's batch as a unit. Item is empty
// for global flag changes.
type Change struct {
	Kind  ChangeKind `json:"kind"`
	Item  EntityID   `json:"item,omitempty"`
	Flag  string     `json:"flag,omitempty"`
	To    EntityID   `json:"to,omitempty"`
	Delta int        `json:"delta,omitempty"`
	Key   string     `json:"key,omitempty"`
	Value string     `json:"value,omitempty"`
	Refs  []EntityID `json:"refs,omitempty"`
}

// SetFlag sets a flag on an item.
func SetFlag(item EntityID, flag string) Change {
	return Change{Kind: ChangeSetFlag, Item: item, Flag: flag}
}

// ClearFlag clears a flag on an item. Clearing FlagTouched is a no-op:
// touched is monotonic.
func ClearFlag(item EntityID, flag string) Change {
	return Change{Kind: ChangeClearFlag, Item: item, Flag: flag}
}

// SetGlobalFlag sets a flag on the game state itself.
func SetGlobalFlag(flag string) Change {
	return Change{Kind: ChangeSetFlag, Flag: flag}
}

// ClearGlobalFlag clears a global flag.
func ClearGlobalFlag(flag string) Change {
	return Change{Kind: ChangeClearFlag, Flag: flag}
}

// Touch marks an item touched.
func Touch(item EntityID) Change {
	return SetFlag(item, FlagTouched)
}

// MoveItem reparents an item. The applier detaches from the old parent
// implicitly: an item has exactly one parent at any time.
func MoveItem(item, to EntityID) Change {
	return Change{Kind: ChangeMoveItem, Item: item, To: to}
}

// Remove reparents an item to Nowhere, taking it out of play.
func Remove(item EntityID) Change {
	return MoveItem(item, Nowhere)
}

// MovePlayer relocates the player.
func MovePlayer(to EntityID) Change {
	return Change{Kind: ChangeMovePlayer, To: to}
}

// AdjustScore shifts the player's score.
func AdjustScore(delta int) Change {
	return Change{Kind: ChangeAdjustScore, Delta: delta}
}

// AdjustMoves shifts the player's move counter.
func AdjustMoves(delta int) Change {
	return Change{Kind: ChangeAdjustMoves, Delta: delta}
}

// AdjustHealth shifts a character's HP, clamped to [0, MaxHP].
func AdjustHealth(item EntityID, delta int) Change {
	return Change{Kind: ChangeAdjustHealth, Item: item, Delta: delta}
}

// SetVar sets a global string variable.
func SetVar(key, value string) Change {
	return Change{Kind: ChangeSetVar, Key: key, Value: value}
}

// UpdatePronoun rebinds a pronoun slot to the given entities.
func UpdatePronoun(slot string, refs ...EntityID) Change {
	return Change{Kind: ChangeUpdatePronoun, Key: slot, Refs: refs}
}
