package verbs

import (
	"github.com/hollowgate/lantern/pkg/engine"
	"github.com/hollowgate/lantern/pkg/world"
)

// saveHandler only confirms; actual persistence belongs to the embedding
// application, which snapshots the engine's state.
type saveHandler struct{}

func (*saveHandler) Spec() engine.HandlerSpec {
	return engine.HandlerSpec{Verbs: []string{"save"}, Meta: true}
}

func (*saveHandler) Validate(*engine.Context) error { return nil }

func (*saveHandler) Process(*engine.Context) (*engine.Result, error) {
	return engine.Say("Saved."), nil
}

type scriptHandler struct{}

func (*scriptHandler) Spec() engine.HandlerSpec {
	return engine.HandlerSpec{Verbs: []string{"script"}, Meta: true}
}

func (*scriptHandler) Validate(ctx *engine.Context) error {
	if ctx.State.Flags[world.GlobalScripting] {
		return engine.Reject(engine.ReasonAlreadySo, "Scripting is already on.")
	}
	return nil
}

func (*scriptHandler) Process(*engine.Context) (*engine.Result, error) {
	return &engine.Result{
		Messages: []string{"Script started."},
		Changes:  []world.Change{world.SetGlobalFlag(world.GlobalScripting)},
	}, nil
}

type unscriptHandler struct{}

func (*unscriptHandler) Spec() engine.HandlerSpec {
	return engine.HandlerSpec{Verbs: []string{"unscript"}, Meta: true}
}

func (*unscriptHandler) Validate(ctx *engine.Context) error {
	if !ctx.State.Flags[world.GlobalScripting] {
		return engine.Reject(engine.ReasonAlreadySo, "Scripting is already off.")
	}
	return nil
}

func (*unscriptHandler) Process(*engine.Context) (*engine.Result, error) {
	return &engine.Result{
		Messages: []string{"Script stopped."},
		Changes:  []world.Change{world.ClearGlobalFlag(world.GlobalScripting)},
	}, nil
}

type verboseHandler struct{}

func (*verboseHandler) Spec() engine.HandlerSpec {
	return engine.HandlerSpec{Verbs: []string{"verbose"}, Meta: true}
}

func (*verboseHandler) Validate(*engine.Context) error { return nil }

func (*verboseHandler) Process(*engine.Context) (*engine.Result, error) {
	return &engine.Result{
		Messages: []string{"Maximum verbosity."},
		Changes:  []world.Change{world.SetGlobalFlag(world.GlobalVerbose)},
	}, nil
}
