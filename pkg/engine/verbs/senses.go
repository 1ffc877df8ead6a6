package verbs

import (
	"fmt"

	"github.com/hollowgate/lantern/pkg/engine"
	"github.com/hollowgate/lantern/pkg/world"
)

// lookHandler reprints the room. Light-independent: in the dark the room
// description itself is the darkness line.
type lookHandler struct{}

func (*lookHandler) Spec() engine.HandlerSpec {
	return engine.HandlerSpec{
		Verbs: []string{"look", "l"},
		Meta:  true,
	}
}

func (*lookHandler) Validate(*engine.Context) error { return nil }

func (*lookHandler) Process(*engine.Context) (*engine.Result, error) {
	return &engine.Result{ShowLocation: true}, nil
}

type examineHandler struct{}

func (*examineHandler) Spec() engine.HandlerSpec {
	return engine.HandlerSpec{
		Verbs:         []string{"examine", "x", "inspect"},
		RequiresLight: true,
		Meta:          true,
	}
}

func (*examineHandler) Validate(ctx *engine.Context) error {
	_, err := requireObject(ctx, "examine")
	return err
}

func (*examineHandler) Process(ctx *engine.Context) (*engine.Result, error) {
	it := ctx.State.Item(ctx.Command.Direct())
	msg := it.Description
	if msg == "" {
		msg = fmt.Sprintf("You see nothing special about the %s.", it.Name)
	}
	return &engine.Result{
		Messages: []string{msg},
		Changes:  []world.Change{world.Touch(it.ID)},
	}, nil
}

type inventoryHandler struct{}

func (*inventoryHandler) Spec() engine.HandlerSpec {
	return engine.HandlerSpec{
		Verbs: []string{"inventory", "i"},
		Meta:  true,
	}
}

func (*inventoryHandler) Validate(*engine.Context) error { return nil }

func (*inventoryHandler) Process(ctx *engine.Context) (*engine.Result, error) {
	held := ctx.State.Inventory()
	if len(held) == 0 {
		return engine.Say("You are empty-handed."), nil
	}
	lines := []string{"You are carrying:"}
	for _, it := range held {
		lines = append(lines, "  "+engine.Indefinite(it.Name))
	}
	return &engine.Result{Messages: lines}, nil
}

// senseHandler covers the fixed-response sensory verbs.
type senseHandler struct {
	verbs   []string
	message string
}

func (h *senseHandler) Spec() engine.HandlerSpec {
	return engine.HandlerSpec{Verbs: h.verbs, Meta: true}
}

func (*senseHandler) Validate(*engine.Context) error { return nil }

func (h *senseHandler) Process(*engine.Context) (*engine.Result, error) {
	return engine.Say("%s", h.message), nil
}

type waitHandler struct{}

func (*waitHandler) Spec() engine.HandlerSpec {
	return engine.HandlerSpec{Verbs: []string{"wait", "z"}}
}

func (*waitHandler) Validate(*engine.Context) error { return nil }

func (*waitHandler) Process(*engine.Context) (*engine.Result, error) {
	return engine.Say("Time passes."), nil
}
