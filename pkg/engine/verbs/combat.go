package verbs

import (
	"github.com/hollowgate/lantern/pkg/engine"
	"github.com/hollowgate/lantern/pkg/world"
)

// attackHandler resolves fighting itself, so the arbiter never
// intercepts it. Attacking a peaceful character provokes a fight;
// attacking a fighting one resolves a round through the shared arbiter.
type attackHandler struct {
	arbiter *engine.Arbiter
}

func newAttackHandler(a *engine.Arbiter) *attackHandler {
	return &attackHandler{arbiter: a}
}

func (*attackHandler) Spec() engine.HandlerSpec {
	return engine.HandlerSpec{
		Verbs:         []string{"attack", "kill", "hit", "fight", "stab", "strike"},
		RequiresLight: true,
	}
}

func (*attackHandler) Validate(ctx *engine.Context) error {
	it, err := requireObject(ctx, "attack")
	if err != nil {
		return err
	}
	if !it.IsCharacter() {
		return engine.Reject(engine.ReasonWrongKind, "Attacking the %s is pointless.", it.Name)
	}
	return nil
}

func (h *attackHandler) Process(ctx *engine.Context) (*engine.Result, error) {
	it := ctx.State.Item(ctx.Command.Direct())

	if !it.Has(world.FlagFighting) {
		return &engine.Result{
			Messages: []string{"The " + it.Name + " dodges aside, and turns on you with murder in its eyes."},
			Changes: []world.Change{
				world.Touch(it.ID),
				world.SetFlag(it.ID, world.FlagFighting),
			},
		}, nil
	}

	round := h.arbiter.Round(ctx.State, it.ID)
	if round == nil {
		return engine.Say("Nothing happens."), nil
	}
	return round, nil
}
