package blueprint

import (
	"fmt"

	"github.com/jwebster45206/d20"

	"github.com/hollowgate/lantern/pkg/world"
)

// buildSheet validates a character definition by constructing a d20
// actor from it, then reads the derived numbers back through the actor's
// accessors. Bad stat combinations fail here, at load time, instead of
// mid-combat.
func buildSheet(id string, def *CharacterDef) (*world.CharacterSheet, error) {
	if def.HP <= 0 {
		return nil, fmt.Errorf("character %q: hp must be positive", id)
	}
	actor, err := d20.NewActor(id).
		WithHP(def.HP).
		WithAC(def.Armor).
		WithAttributes(map[string]int{"might": def.Might}).
		Build()
	if err != nil {
		return nil, fmt.Errorf("character %q: %w", id, err)
	}

	might, _ := actor.Attribute("might")
	return &world.CharacterSheet{
		HP:    actor.MaxHP(),
		MaxHP: actor.MaxHP(),
		Armor: actor.AC(),
		Might: might,
	}, nil
}
