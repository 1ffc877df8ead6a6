// Package blueprint loads game definitions from YAML and builds the
// initial GameState. Entities are constructed exactly once here; all
// later mutation happens through Change application inside a turn.
package blueprint

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hollowgate/lantern/pkg/world"
)

// Document is a parsed blueprint file.
type Document struct {
	Name      string            `yaml:"name"`
	Player    PlayerDef         `yaml:"player"`
	Locations []LocationDef     `yaml:"locations"`
	Items     []ItemDef         `yaml:"items"`
	Flags     map[string]bool   `yaml:"flags,omitempty"`
	Vars      map[string]string `yaml:"vars,omitempty"`
}

// PlayerDef sets the player's starting position.
type PlayerDef struct {
	Location string `yaml:"location"`
}

// ExitDef is one edge of a location's exit table.
type ExitDef struct {
	To   string `yaml:"to"`
	Door string `yaml:"door,omitempty"`
}

// LocationDef defines a location.
type LocationDef struct {
	ID          string             `yaml:"id"`
	Name        string             `yaml:"name"`
	Description string             `yaml:"description,omitempty"`
	Lit         bool               `yaml:"lit,omitempty"`
	Exits       map[string]ExitDef `yaml:"exits,omitempty"`
}

// CharacterDef defines a character sheet. Sheets are validated by
// building a d20 actor; see buildSheet.
type CharacterDef struct {
	Fighting bool `yaml:"fighting,omitempty"`
	HP       int  `yaml:"hp"`
	Armor    int  `yaml:"armor"`
	Might    int  `yaml:"might,omitempty"`
}

// ItemDef defines an item.
type ItemDef struct {
	ID          string        `yaml:"id"`
	Name        string        `yaml:"name"`
	Description string        `yaml:"description,omitempty"`
	Adjectives  []string      `yaml:"adjectives,omitempty"`
	Parent      string        `yaml:"parent"`
	Flags       []string      `yaml:"flags,omitempty"`
	Container   bool          `yaml:"container,omitempty"`
	Openable    bool          `yaml:"openable,omitempty"`
	Transparent bool          `yaml:"transparent,omitempty"`
	Surface     bool          `yaml:"surface,omitempty"`
	Plural      bool          `yaml:"plural,omitempty"`
	Animate     bool          `yaml:"animate,omitempty"`
	Gender      string        `yaml:"gender,omitempty"`
	Character   *CharacterDef `yaml:"character,omitempty"`
}

// Load reads and parses a blueprint file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read blueprint: %w", err)
	}
	return Parse(data)
}

// Parse decodes a blueprint document, rejecting unknown fields so typos
// in authored files surface immediately.
func Parse(data []byte) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse blueprint: %w", err)
	}
	return &doc, nil
}

// Build validates the document and constructs the initial GameState.
func (d *Document) Build() (*world.GameState, error) {
	gs := world.NewGameState()

	for _, def := range d.Locations {
		if def.ID == "" {
			return nil, fmt.Errorf("location %q has no id", def.Name)
		}
		id := world.EntityID(def.ID)
		if gs.Locations[id] != nil {
			return nil, fmt.Errorf("duplicate location id %q", def.ID)
		}
		loc := &world.Location{
			ID:          id,
			Name:        def.Name,
			Description: def.Description,
			Lit:         def.Lit,
		}
		if len(def.Exits) > 0 {
			loc.Exits = make(map[string]world.Exit, len(def.Exits))
			for dir, ex := range def.Exits {
				loc.Exits[dir] = world.Exit{
					To:   world.EntityID(ex.To),
					Door: world.EntityID(ex.Door),
				}
			}
		}
		gs.Locations[id] = loc
	}

	for _, def := range d.Items {
		if def.ID == "" {
			return nil, fmt.Errorf("item %q has no id", def.Name)
		}
		id := world.EntityID(def.ID)
		if gs.Items[id] != nil || gs.Locations[id] != nil {
			return nil, fmt.Errorf("duplicate entity id %q", def.ID)
		}
		it := &world.Item{
			ID:            id,
			Name:          def.Name,
			Description:   def.Description,
			Adjectives:    append([]string(nil), def.Adjectives...),
			Parent:        world.EntityID(def.Parent),
			IsContainer:   def.Container,
			IsOpenable:    def.Openable,
			IsTransparent: def.Transparent,
			IsSurface:     def.Surface,
			Plural:        def.Plural,
			Animate:       def.Animate,
			Gender:        world.Gender(def.Gender),
		}
		if len(def.Flags) > 0 {
			it.Flags = make(map[string]bool, len(def.Flags))
			for _, f := range def.Flags {
				it.Flags[f] = true
			}
		}
		if def.Character != nil {
			sheet, err := buildSheet(def.ID, def.Character)
			if err != nil {
				return nil, err
			}
			it.Sheet = sheet
			it.Animate = true
			if def.Character.Fighting {
				if it.Flags == nil {
					it.Flags = make(map[string]bool)
				}
				it.Flags[world.FlagFighting] = true
			}
		}
		gs.Items[id] = it
	}

	if err := d.validateGraph(gs); err != nil {
		return nil, err
	}

	start := world.EntityID(d.Player.Location)
	if gs.Locations[start] == nil {
		return nil, fmt.Errorf("player start location %q does not exist", d.Player.Location)
	}
	gs.Player.Location = start

	for k, v := range d.Flags {
		gs.Flags[k] = v
	}
	for k, v := range d.Vars {
		gs.Vars[k] = v
	}
	return gs, nil
}

// validateGraph checks referential integrity: every parent resolves,
// parent chains terminate without cycles, and every exit and door exists.
func (d *Document) validateGraph(gs *world.GameState) error {
	for id, it := range gs.Items {
		seen := map[world.EntityID]bool{id: true}
		cur := it.Parent
		for {
			if cur == world.Nowhere || cur == world.PlayerID {
				break
			}
			if gs.Locations[cur] != nil {
				break
			}
			parent := gs.Items[cur]
			if parent == nil {
				return fmt.Errorf("item %q has unknown parent %q", id, cur)
			}
			if seen[cur] {
				return fmt.Errorf("item %q is part of a parent cycle", id)
			}
			seen[cur] = true
			cur = parent.Parent
		}
	}
	for id, loc := range gs.Locations {
		for dir, ex := range loc.Exits {
			if gs.Locations[ex.To] == nil {
				return fmt.Errorf("location %q exit %q leads to unknown location %q", id, dir, ex.To)
			}
			if ex.Door != "" && gs.Items[ex.Door] == nil {
				return fmt.Errorf("location %q exit %q is gated by unknown door %q", id, dir, ex.Door)
			}
		}
	}
	return nil
}
