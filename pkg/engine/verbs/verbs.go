// Package verbs implements the standard verb handlers: object
// manipulation, containers and devices, movement, the senses, and the
// meta verbs. Handlers queue Changes and never mutate state directly.
package verbs

import (
	"github.com/hollowgate/lantern/pkg/engine"
	"github.com/hollowgate/lantern/pkg/world"
)

// RegisterAll installs the standard handlers on an engine.
func RegisterAll(e *engine.Engine) error {
	handlers := []engine.Handler{
		&takeHandler{},
		&dropHandler{},
		&putHandler{},
		&emptyHandler{},
		&giveHandler{},
		&openHandler{},
		&closeHandler{},
		&turnHandler{on: true},
		&turnHandler{on: false},
		&goHandler{},
		&lookHandler{},
		&examineHandler{},
		&inventoryHandler{},
		&senseHandler{verbs: []string{"listen"}, message: "You hear nothing unexpected."},
		&senseHandler{verbs: []string{"smell", "sniff"}, message: "You smell nothing unexpected."},
		&senseHandler{verbs: []string{"think", "ponder"}, message: "A good idea."},
		&waitHandler{},
		&saveHandler{},
		&scriptHandler{},
		&unscriptHandler{},
		&verboseHandler{},
		newAttackHandler(e.Arbiter()),
	}
	for _, h := range handlers {
		if err := e.Register(h); err != nil {
			return err
		}
	}
	return nil
}

// requireObject resolves the command's direct object and checks scope.
func requireObject(ctx *engine.Context, action string) (*world.Item, error) {
	id := ctx.Command.Direct()
	if id == "" {
		return nil, engine.Reject(engine.ReasonMissingObject, "What do you want to %s?", action)
	}
	it := ctx.State.Item(id)
	if it == nil || !ctx.State.InScope(id) {
		return nil, engine.Reject(engine.ReasonOutOfReach, "You can't see any such thing.")
	}
	return it, nil
}

// requireHeld resolves the direct object and checks the player holds it.
func requireHeld(ctx *engine.Context, action string) (*world.Item, error) {
	it, err := requireObject(ctx, action)
	if err != nil {
		return nil, err
	}
	if !ctx.State.Holds(world.PlayerID, it.ID) {
		return nil, engine.Reject(engine.ReasonNotHeld, "You're not holding the %s.", it.Name)
	}
	return it, nil
}

// requireIndirect resolves the indirect object and checks scope.
func requireIndirect(ctx *engine.Context, prompt string) (*world.Item, error) {
	id := ctx.Command.Indirect
	if id == "" {
		return nil, engine.Reject(engine.ReasonMissingObject, "%s", prompt)
	}
	it := ctx.State.Item(id)
	if it == nil || !ctx.State.InScope(id) {
		return nil, engine.Reject(engine.ReasonOutOfReach, "You can't see any such thing.")
	}
	return it, nil
}
