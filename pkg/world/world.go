// Package world holds the ownership graph for a game in progress: items,
// locations, the player, and the GameState aggregate that ties them
// together. All mutation goes through Apply; everything else in the
// package is a read-only query over a snapshot.
package world

import (
	"reflect"
	"sort"

	"github.com/google/uuid"
)

// EntityID identifies an item or location in the arena.
type EntityID string

const (
	// PlayerID is the reserved parent id for items held by the player.
	PlayerID EntityID = "player"

	// Nowhere is the sentinel parent for items removed from play.
	// Items are never deleted, only reparented here.
	Nowhere EntityID = "nowhere"
)

// Item flag names. Authors may define their own beyond these.
const (
	FlagTouched     = "touched" // monotonic: never cleared once set
	FlagOpen        = "open"
	FlagOn          = "on"
	FlagLightSource = "light_source"
	FlagSwitchable  = "switchable"
	FlagFixed       = "fixed" // cannot be taken
	FlagFighting    = "fighting"
)

// Global flag names used by the standard verbs.
const (
	GlobalScripting = "scripting"
	GlobalVerbose   = "verbose"
)

// Gender is grammatical gender, used for pronoun rebinding.
type Gender string

const (
	GenderNone   Gender = ""
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// CharacterSheet carries the combat-relevant attributes of a character
// item. The fighting state itself lives in the item's flag set so it can
// be toggled through ordinary flag changes.
type CharacterSheet struct {
	HP    int `json:"hp"`
	MaxHP int `json:"max_hp"`
	Armor int `json:"armor"`
	Might int `json:"might"` // attack bonus
}

// Item is any object in the world: portable things, scenery, doors, and
// characters alike. Each item has exactly one parent at any time, so
// ownership forms a tree rooted at locations, the player, or Nowhere.
type Item struct {
	ID          EntityID        `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Adjectives  []string        `json:"adjectives,omitempty"`
	Flags       map[string]bool `json:"flags,omitempty"`
	Parent      EntityID        `json:"parent"`

	IsContainer   bool `json:"container,omitempty"`
	IsOpenable    bool `json:"openable,omitempty"`
	IsTransparent bool `json:"transparent,omitempty"`
	IsSurface     bool `json:"surface,omitempty"`

	Plural  bool   `json:"plural,omitempty"`
	Animate bool   `json:"animate,omitempty"`
	Gender  Gender `json:"gender,omitempty"`

	Sheet *CharacterSheet `json:"sheet,omitempty"`
}

// Has reports whether the named flag is set on the item.
func (it *Item) Has(flag string) bool {
	return it.Flags[flag]
}

// IsCharacter reports whether the item has a character sheet.
func (it *Item) IsCharacter() bool {
	return it.Sheet != nil
}

// SeesInside reports whether the item's contents are visible from
// outside: surfaces always, containers only when open or transparent.
func (it *Item) SeesInside() bool {
	if it.IsSurface {
		return true
	}
	return it.IsContainer && (it.Has(FlagOpen) || it.IsTransparent)
}

// Exit is one edge of a location's exit table. Door, when set, names an
// item that gates passage: the exit is usable only while the door is open.
type Exit struct {
	To   EntityID `json:"to"`
	Door EntityID `json:"door,omitempty"`
}

// Location is a place in the game world.
type Location struct {
	ID          EntityID        `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Lit         bool            `json:"lit,omitempty"` // inherently lit
	Exits       map[string]Exit `json:"exits,omitempty"`
}

// Player is the acting character. Inventory is derived, not stored: it is
// the set of items whose parent is PlayerID.
type Player struct {
	Location EntityID `json:"location"`
	Score    int      `json:"score"`
	Moves    int      `json:"moves"`
}

// Pronouns are the current anaphora bindings, rebound after each
// successful turn.
type Pronouns struct {
	It   EntityID   `json:"it,omitempty"`
	Them []EntityID `json:"them,omitempty"`
	Him  EntityID   `json:"him,omitempty"`
	Her  EntityID   `json:"her,omitempty"`
}

// GameState is the complete state of a game session. It is treated as an
// immutable value per read: turns mutate it only by applying a Change
// batch, which produces a new canonical state.
type GameState struct {
	ID        uuid.UUID             `json:"id"`
	Items     map[EntityID]*Item    `json:"items"`
	Locations map[EntityID]*Location `json:"locations"`
	Player    Player                `json:"player"`
	Flags     map[string]bool       `json:"flags,omitempty"`
	Vars      map[string]string     `json:"vars,omitempty"`
	Pronouns  Pronouns              `json:"pronouns,omitempty"`
}

// NewGameState returns an empty state with a fresh session id.
func NewGameState() *GameState {
	return &GameState{
		ID:        uuid.New(),
		Items:     make(map[EntityID]*Item),
		Locations: make(map[EntityID]*Location),
		Flags:     make(map[string]bool),
		Vars:      make(map[string]string),
	}
}

// Item returns the item with the given id, or nil.
func (gs *GameState) Item(id EntityID) *Item {
	return gs.Items[id]
}

// Location returns the location with the given id, or nil.
func (gs *GameState) Location(id EntityID) *Location {
	return gs.Locations[id]
}

// Contents returns the items whose parent is the given id, sorted by id
// so that derived traversals are deterministic.
func (gs *GameState) Contents(parent EntityID) []*Item {
	var out []*Item
	for _, it := range gs.Items {
		if it.Parent == parent {
			out = append(out, it)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Inventory returns the items held directly by the player.
func (gs *GameState) Inventory() []*Item {
	return gs.Contents(PlayerID)
}

// Holds reports whether holder transitively contains id.
func (gs *GameState) Holds(holder, id EntityID) bool {
	it := gs.Items[id]
	for it != nil {
		if it.Parent == holder {
			return true
		}
		it = gs.Items[it.Parent]
	}
	return false
}

// LocationOf walks the parent chain of an item up to its enclosing
// location, PlayerID, or Nowhere.
func (gs *GameState) LocationOf(id EntityID) EntityID {
	cur := id
	for {
		it := gs.Items[cur]
		if it == nil {
			return cur
		}
		cur = it.Parent
	}
}

// Clone deep-copies the state. The copy shares nothing with the original.
func (gs *GameState) Clone() *GameState {
	next := &GameState{
		ID:        gs.ID,
		Items:     make(map[EntityID]*Item, len(gs.Items)),
		Locations: make(map[EntityID]*Location, len(gs.Locations)),
		Player:    gs.Player,
		Pronouns:  gs.Pronouns,
	}
	if gs.Flags != nil {
		next.Flags = make(map[string]bool, len(gs.Flags))
		for k, v := range gs.Flags {
			next.Flags[k] = v
		}
	}
	if gs.Vars != nil {
		next.Vars = make(map[string]string, len(gs.Vars))
		for k, v := range gs.Vars {
			next.Vars[k] = v
		}
	}
	for id, it := range gs.Items {
		cp := *it
		cp.Adjectives = append([]string(nil), it.Adjectives...)
		if it.Flags != nil {
			cp.Flags = make(map[string]bool, len(it.Flags))
			for k, v := range it.Flags {
				cp.Flags[k] = v
			}
		}
		if it.Sheet != nil {
			sheet := *it.Sheet
			cp.Sheet = &sheet
		}
		next.Items[id] = &cp
	}
	for id, loc := range gs.Locations {
		cp := *loc
		if loc.Exits != nil {
			cp.Exits = make(map[string]Exit, len(loc.Exits))
			for dir, ex := range loc.Exits {
				cp.Exits[dir] = ex
			}
		}
		next.Locations[id] = &cp
	}
	next.Pronouns.Them = append([]EntityID(nil), gs.Pronouns.Them...)
	return next
}

// Equal reports structural equality with another state. Used by tests to
// assert that rejected turns leave the world untouched.
func (gs *GameState) Equal(other *GameState) bool {
	return reflect.DeepEqual(gs, other)
}
