package verbs

import (
	"fmt"

	"github.com/hollowgate/lantern/pkg/engine"
	"github.com/hollowgate/lantern/pkg/world"
)

type takeHandler struct{}

func (*takeHandler) Spec() engine.HandlerSpec {
	return engine.HandlerSpec{
		Verbs:         []string{"take", "get", "grab", "pick"},
		RequiresLight: true,
	}
}

func (*takeHandler) Validate(ctx *engine.Context) error {
	it, err := requireObject(ctx, "take")
	if err != nil {
		return err
	}
	if ctx.State.Holds(world.PlayerID, it.ID) {
		return engine.Reject(engine.ReasonAlreadySo, "You're already carrying the %s.", it.Name)
	}
	if it.IsCharacter() {
		return engine.Reject(engine.ReasonWrongKind, "The %s wouldn't appreciate that.", it.Name)
	}
	if it.Has(world.FlagFixed) {
		return engine.Reject(engine.ReasonPrecondition, "The %s is firmly fixed in place.", it.Name)
	}
	return nil
}

func (*takeHandler) Process(ctx *engine.Context) (*engine.Result, error) {
	id := ctx.Command.Direct()
	return &engine.Result{
		Messages: []string{"Taken."},
		Changes: []world.Change{
			world.Touch(id),
			world.MoveItem(id, world.PlayerID),
		},
	}, nil
}

type dropHandler struct{}

func (*dropHandler) Spec() engine.HandlerSpec {
	return engine.HandlerSpec{Verbs: []string{"drop", "discard"}}
}

func (*dropHandler) Validate(ctx *engine.Context) error {
	_, err := requireHeld(ctx, "drop")
	return err
}

func (*dropHandler) Process(ctx *engine.Context) (*engine.Result, error) {
	id := ctx.Command.Direct()
	return &engine.Result{
		Messages: []string{"Dropped."},
		Changes: []world.Change{
			world.Touch(id),
			world.MoveItem(id, ctx.State.Player.Location),
		},
	}, nil
}

type putHandler struct{}

func (*putHandler) Spec() engine.HandlerSpec {
	return engine.HandlerSpec{
		Verbs: []string{"put", "insert", "place"},
		Patterns: []engine.Pattern{
			{Particle: "in", WantsObject: true, WantsIndirect: true},
			{Particle: "on", WantsObject: true, WantsIndirect: true},
		},
		RequiresLight: true,
	}
}

func (*putHandler) Validate(ctx *engine.Context) error {
	it, err := requireHeld(ctx, "put")
	if err != nil {
		return err
	}
	dest, err := requireIndirect(ctx, "Where do you want to put it?")
	if err != nil {
		return err
	}
	if dest.ID == it.ID {
		return engine.Reject(engine.ReasonPrecondition, "You can't put something inside itself.")
	}
	switch ctx.Command.Particle {
	case "in":
		if !dest.IsContainer {
			return engine.Reject(engine.ReasonWrongKind, "The %s can't contain things.", dest.Name)
		}
		if dest.IsOpenable && !dest.Has(world.FlagOpen) {
			return engine.Reject(engine.ReasonPrecondition, "The %s is closed.", dest.Name)
		}
	case "on":
		if !dest.IsSurface {
			return engine.Reject(engine.ReasonWrongKind, "You can't put things on the %s.", dest.Name)
		}
	}
	return nil
}

func (*putHandler) Process(ctx *engine.Context) (*engine.Result, error) {
	it := ctx.State.Item(ctx.Command.Direct())
	dest := ctx.State.Item(ctx.Command.Indirect)
	return &engine.Result{
		Messages: []string{fmt.Sprintf("You put the %s %s the %s.", it.Name, ctx.Command.Particle, dest.Name)},
		Changes: []world.Change{
			world.Touch(it.ID),
			world.Touch(dest.ID),
			world.MoveItem(it.ID, dest.ID),
		},
	}, nil
}

type emptyHandler struct{}

func (*emptyHandler) Spec() engine.HandlerSpec {
	return engine.HandlerSpec{
		Verbs:         []string{"empty", "dump"},
		RequiresLight: true,
	}
}

func (*emptyHandler) Validate(ctx *engine.Context) error {
	it, err := requireObject(ctx, "empty")
	if err != nil {
		return err
	}
	if !it.IsContainer {
		return engine.Reject(engine.ReasonWrongKind, "You can't empty the %s.", it.Name)
	}
	if it.IsOpenable && !it.Has(world.FlagOpen) {
		return engine.Reject(engine.ReasonPrecondition, "The %s is closed.", it.Name)
	}
	if len(ctx.State.Contents(it.ID)) == 0 {
		return engine.Reject(engine.ReasonAlreadySo, "The %s is already empty.", it.Name)
	}
	return nil
}

func (*emptyHandler) Process(ctx *engine.Context) (*engine.Result, error) {
	it := ctx.State.Item(ctx.Command.Direct())
	contents := ctx.State.Contents(it.ID)
	here := ctx.State.Player.Location

	changes := []world.Change{world.Touch(it.ID)}
	names := make([]string, 0, len(contents))
	for _, c := range contents {
		changes = append(changes, world.MoveItem(c.ID, here))
		names = append(names, engine.Indefinite(c.Name))
	}

	verb := "falls"
	if len(contents) > 1 || contents[0].Plural {
		verb = "fall"
	}
	msg := fmt.Sprintf("You empty the %s, and %s %s to the ground.",
		it.Name, engine.List(names), verb)
	return &engine.Result{Messages: []string{msg}, Changes: changes}, nil
}

type giveHandler struct{}

func (*giveHandler) Spec() engine.HandlerSpec {
	return engine.HandlerSpec{
		Verbs:         []string{"give", "offer", "hand"},
		RequiresLight: true,
	}
}

func (*giveHandler) Validate(ctx *engine.Context) error {
	it, err := requireHeld(ctx, "give")
	if err != nil {
		return err
	}
	dest, err := requireIndirect(ctx, "Give it to whom?")
	if err != nil {
		return err
	}
	if !dest.Animate {
		return engine.Reject(engine.ReasonWrongKind, "The %s shows no interest in the %s.", dest.Name, it.Name)
	}
	return nil
}

func (*giveHandler) Process(ctx *engine.Context) (*engine.Result, error) {
	it := ctx.State.Item(ctx.Command.Direct())
	dest := ctx.State.Item(ctx.Command.Indirect)
	return &engine.Result{
		Messages: []string{fmt.Sprintf("You give the %s to the %s.", it.Name, dest.Name)},
		Changes: []world.Change{
			world.Touch(it.ID),
			world.Touch(dest.ID),
			world.MoveItem(it.ID, dest.ID),
		},
	}, nil
}
