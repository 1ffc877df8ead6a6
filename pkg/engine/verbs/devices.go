package verbs

import (
	"fmt"

	"github.com/hollowgate/lantern/pkg/engine"
	"github.com/hollowgate/lantern/pkg/world"
)

type openHandler struct{}

func (*openHandler) Spec() engine.HandlerSpec {
	return engine.HandlerSpec{
		Verbs:         []string{"open"},
		RequiresLight: true,
	}
}

func (*openHandler) Validate(ctx *engine.Context) error {
	it, err := requireObject(ctx, "open")
	if err != nil {
		return err
	}
	if !it.IsOpenable {
		return engine.Reject(engine.ReasonWrongKind, "You can't open the %s.", it.Name)
	}
	if it.Has(world.FlagOpen) {
		return engine.Reject(engine.ReasonAlreadySo, "The %s is already open.", it.Name)
	}
	return nil
}

func (*openHandler) Process(ctx *engine.Context) (*engine.Result, error) {
	it := ctx.State.Item(ctx.Command.Direct())
	msg := "Opened."
	if it.IsContainer && !it.IsTransparent {
		if contents := ctx.State.Contents(it.ID); len(contents) > 0 {
			names := make([]string, 0, len(contents))
			for _, c := range contents {
				names = append(names, engine.Indefinite(c.Name))
			}
			msg = fmt.Sprintf("Opening the %s reveals %s.", it.Name, engine.List(names))
		}
	}
	return &engine.Result{
		Messages: []string{msg},
		Changes: []world.Change{
			world.Touch(it.ID),
			world.SetFlag(it.ID, world.FlagOpen),
		},
	}, nil
}

type closeHandler struct{}

func (*closeHandler) Spec() engine.HandlerSpec {
	return engine.HandlerSpec{
		Verbs:         []string{"close", "shut"},
		RequiresLight: true,
	}
}

func (*closeHandler) Validate(ctx *engine.Context) error {
	it, err := requireObject(ctx, "close")
	if err != nil {
		return err
	}
	if !it.IsOpenable {
		return engine.Reject(engine.ReasonWrongKind, "You can't close the %s.", it.Name)
	}
	if !it.Has(world.FlagOpen) {
		return engine.Reject(engine.ReasonAlreadySo, "The %s is already closed.", it.Name)
	}
	return nil
}

func (*closeHandler) Process(ctx *engine.Context) (*engine.Result, error) {
	id := ctx.Command.Direct()
	return &engine.Result{
		Messages: []string{"Closed."},
		Changes: []world.Change{
			world.Touch(id),
			world.ClearFlag(id, world.FlagOpen),
		},
	}, nil
}

// turnHandler covers both "turn X on" and "turn X off"; the two
// instances register under the same verbs and dispatch on the particle.
type turnHandler struct {
	on bool
}

func (h *turnHandler) particle() string {
	if h.on {
		return "on"
	}
	return "off"
}

func (h *turnHandler) Spec() engine.HandlerSpec {
	return engine.HandlerSpec{
		Verbs: []string{"turn", "switch"},
		Patterns: []engine.Pattern{
			{Particle: h.particle(), WantsObject: true},
		},
		// Light-independent so a held lamp can be lit in the dark.
	}
}

func (h *turnHandler) Validate(ctx *engine.Context) error {
	it, err := requireObject(ctx, "turn "+h.particle())
	if err != nil {
		return err
	}
	if !it.Has(world.FlagSwitchable) {
		return engine.Reject(engine.ReasonWrongKind, "You can't turn the %s %s.", it.Name, h.particle())
	}
	if it.Has(world.FlagOn) == h.on {
		return engine.Reject(engine.ReasonAlreadySo, "The %s is already %s.", it.Name, h.particle())
	}
	return nil
}

func (h *turnHandler) Process(ctx *engine.Context) (*engine.Result, error) {
	it := ctx.State.Item(ctx.Command.Direct())
	changes := []world.Change{world.Touch(it.ID)}
	var lines []string
	if h.on {
		changes = append(changes, world.SetFlag(it.ID, world.FlagOn))
		lines = append(lines, fmt.Sprintf("You turn on the %s.", it.Name))
	} else {
		changes = append(changes, world.ClearFlag(it.ID, world.FlagOn))
		lines = append(lines, fmt.Sprintf("You turn off the %s.", it.Name))
		if wouldDarken(ctx.State, it) {
			lines = append(lines, "It is now pitch black.")
		}
	}
	return &engine.Result{Messages: lines, Changes: changes}, nil
}

// wouldDarken reports whether switching the item off leaves the player's
// location without light.
func wouldDarken(gs *world.GameState, it *world.Item) bool {
	if !it.Has(world.FlagLightSource) {
		return false
	}
	loc := gs.Player.Location
	if l := gs.Location(loc); l == nil || l.Lit {
		return false
	}
	for id := range gs.Reachable(loc) {
		other := gs.Item(id)
		if other != nil && other.ID != it.ID && other.Has(world.FlagLightSource) && other.Has(world.FlagOn) {
			return false
		}
	}
	return true
}
