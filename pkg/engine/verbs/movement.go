package verbs

import (
	"github.com/hollowgate/lantern/pkg/engine"
	"github.com/hollowgate/lantern/pkg/world"
)

// goHandler moves the player along an exit. The parser resolves compass
// words into the command particle, so "north" and "go north" both arrive
// as verb "go", particle "north".
type goHandler struct{}

func (*goHandler) Spec() engine.HandlerSpec {
	return engine.HandlerSpec{Verbs: []string{"go", "walk", "run"}}
}

func (*goHandler) Validate(ctx *engine.Context) error {
	dir := ctx.Command.Particle
	if dir == "" {
		return engine.Reject(engine.ReasonMissingObject, "Which way do you want to go?")
	}
	loc := ctx.State.Location(ctx.State.Player.Location)
	if loc == nil {
		return engine.Reject(engine.ReasonPrecondition, "You can't go that way.")
	}
	exit, ok := loc.Exits[dir]
	if !ok {
		return engine.Reject(engine.ReasonPrecondition, "You can't go that way.")
	}
	if exit.Door != "" {
		door := ctx.State.Item(exit.Door)
		if door == nil || !door.Has(world.FlagOpen) {
			name := "door"
			if door != nil {
				name = door.Name
			}
			return engine.Reject(engine.ReasonPrecondition, "The %s is closed.", name)
		}
	}
	return nil
}

func (*goHandler) Process(ctx *engine.Context) (*engine.Result, error) {
	exit := ctx.State.Location(ctx.State.Player.Location).Exits[ctx.Command.Particle]
	return &engine.Result{
		Changes:      []world.Change{world.MovePlayer(exit.To)},
		ShowLocation: true,
	}, nil
}
