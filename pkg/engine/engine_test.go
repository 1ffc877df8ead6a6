package engine

import (
	"log/slog"
	"testing"

	"github.com/hollowgate/lantern/pkg/world"
)

func engineState() *world.GameState {
	gs := world.NewGameState()
	gs.Locations["study"] = &world.Location{
		ID: "study", Name: "Study", Lit: true,
		Description: "Bookshelves line every wall.",
	}
	gs.Locations["crypt"] = &world.Location{ID: "crypt", Name: "Crypt"}
	gs.Items["scroll"] = &world.Item{ID: "scroll", Name: "crumbling scroll", Parent: "study"}
	gs.Items["lamp"] = &world.Item{
		ID: "lamp", Name: "brass lantern", Parent: world.PlayerID,
		Flags: map[string]bool{world.FlagLightSource: true, world.FlagSwitchable: true},
	}
	gs.Player.Location = "study"
	return gs
}

func newTestEngine(t *testing.T, gs *world.GameState, handlers ...Handler) *Engine {
	t.Helper()
	e := New(gs, slog.Default())
	for _, h := range handlers {
		if err := e.Register(h); err != nil {
			t.Fatalf("Register failed: %v", err)
		}
	}
	return e
}

func TestExecuteTurnCommitsChanges(t *testing.T) {
	gs := engineState()
	h := &stubHandler{
		spec: HandlerSpec{Verbs: []string{"take"}},
		process: func(ctx *Context) (*Result, error) {
			return &Result{
				Messages: []string{"Taken."},
				Changes: []world.Change{
					world.Touch("scroll"),
					world.MoveItem("scroll", world.PlayerID),
				},
			}, nil
		},
	}
	e := newTestEngine(t, gs, h)

	res, err := e.ExecuteTurn(Command{Verb: "take", Objects: []world.EntityID{"scroll"}})
	if err != nil {
		t.Fatalf("ExecuteTurn failed: %v", err)
	}
	if res.Rejected {
		t.Fatal("turn was rejected")
	}
	if len(res.Lines) != 1 || res.Lines[0] != "Taken." {
		t.Errorf("lines = %v, want [Taken.]", res.Lines)
	}

	st := e.State()
	if st.Items["scroll"].Parent != world.PlayerID {
		t.Error("change batch was not committed")
	}
	if st.Player.Moves != 1 {
		t.Errorf("moves = %d, want 1", st.Player.Moves)
	}
	if st.Pronouns.It != "scroll" {
		t.Errorf("it = %q, want scroll", st.Pronouns.It)
	}
}

func TestExecuteTurnRejectionLeavesStateUntouched(t *testing.T) {
	gs := engineState()
	gs.Pronouns.It = "lamp"
	h := &stubHandler{
		spec: HandlerSpec{Verbs: []string{"eat"}},
		validate: func(ctx *Context) error {
			return Reject(ReasonWrongKind, "That's plainly inedible.")
		},
	}
	e := newTestEngine(t, gs, h)
	before := e.State().Clone()

	res, err := e.ExecuteTurn(Command{Verb: "eat", Objects: []world.EntityID{"scroll"}})
	if err != nil {
		t.Fatalf("ExecuteTurn failed: %v", err)
	}
	if !res.Rejected {
		t.Fatal("turn was not rejected")
	}
	if len(res.Lines) != 1 || res.Lines[0] != "That's plainly inedible." {
		t.Errorf("lines = %v, want the single rejection message", res.Lines)
	}
	if !e.State().Equal(before) {
		t.Error("rejected command mutated the world")
	}
	if e.State().Pronouns.It != "lamp" {
		t.Error("rejected command rebound pronouns")
	}
}

func TestExecuteTurnDarknessGate(t *testing.T) {
	gs := engineState()
	gs.Player.Location = "crypt"

	validateRan := false
	gated := &stubHandler{
		spec: HandlerSpec{Verbs: []string{"read"}, RequiresLight: true},
		validate: func(ctx *Context) error {
			validateRan = true
			return nil
		},
	}
	free := &stubHandler{
		spec: HandlerSpec{Verbs: []string{"listen"}, Meta: true},
		process: func(ctx *Context) (*Result, error) {
			return Say("You hear dripping water."), nil
		},
	}
	e := newTestEngine(t, gs, gated, free)

	res, err := e.ExecuteTurn(Command{Verb: "read", Objects: []world.EntityID{"scroll"}})
	if err != nil {
		t.Fatalf("ExecuteTurn failed: %v", err)
	}
	if len(res.Lines) != 1 || res.Lines[0] != DarknessMessage {
		t.Errorf("lines = %v, want the canonical darkness message", res.Lines)
	}
	if validateRan {
		t.Error("validate ran despite the darkness gate")
	}
	if e.State().Player.Moves != 0 {
		t.Error("darkness short-circuit advanced the move counter")
	}

	res, err = e.ExecuteTurn(Command{Verb: "listen"})
	if err != nil {
		t.Fatalf("ExecuteTurn failed: %v", err)
	}
	if res.Lines[0] != "You hear dripping water." {
		t.Error("light-independent verb did not bypass the gate")
	}
}

func TestExecuteTurnHookReplacesHandler(t *testing.T) {
	gs := engineState()
	processRan := false
	h := &stubHandler{
		spec: HandlerSpec{Verbs: []string{"drink"}},
		process: func(ctx *Context) (*Result, error) {
			processRan = true
			return Say("You can't drink that."), nil
		},
	}
	e := newTestEngine(t, gs, h)
	e.RegisterHook("scroll", func(ctx *Context, ev Event) (*Result, error) {
		if ev.Command.Verb != "drink" {
			return nil, nil
		}
		return &Result{
			Messages: []string{"The scroll dissolves on your tongue."},
			Changes:  []world.Change{world.Remove("scroll")},
		}, nil
	})

	res, err := e.ExecuteTurn(Command{Verb: "drink", Objects: []world.EntityID{"scroll"}})
	if err != nil {
		t.Fatalf("ExecuteTurn failed: %v", err)
	}
	if processRan {
		t.Error("default handler ran despite hook result")
	}
	if res.Lines[0] != "The scroll dissolves on your tongue." {
		t.Errorf("lines = %v, want hook narration", res.Lines)
	}
	if e.State().Items["scroll"].Parent != world.Nowhere {
		t.Error("hook changes were not committed")
	}
}

func TestExecuteTurnHookDeclines(t *testing.T) {
	gs := engineState()
	h := &stubHandler{
		spec: HandlerSpec{Verbs: []string{"touch"}},
		process: func(ctx *Context) (*Result, error) {
			return Say("Nothing happens."), nil
		},
	}
	e := newTestEngine(t, gs, h)
	e.RegisterHook("scroll", func(ctx *Context, ev Event) (*Result, error) {
		return nil, nil
	})

	res, err := e.ExecuteTurn(Command{Verb: "touch", Objects: []world.EntityID{"scroll"}})
	if err != nil {
		t.Fatalf("ExecuteTurn failed: %v", err)
	}
	if res.Lines[0] != "Nothing happens." {
		t.Error("declining hook suppressed the default handler")
	}
}

func TestExecuteTurnHookRejection(t *testing.T) {
	gs := engineState()
	h := &stubHandler{spec: HandlerSpec{Verbs: []string{"rub"}}}
	e := newTestEngine(t, gs, h)
	e.RegisterHook("study", func(ctx *Context, ev Event) (*Result, error) {
		return nil, Reject(ReasonPrecondition, "A chill stops your hand.")
	})
	before := e.State().Clone()

	res, err := e.ExecuteTurn(Command{Verb: "rub", Objects: []world.EntityID{"scroll"}})
	if err != nil {
		t.Fatalf("ExecuteTurn failed: %v", err)
	}
	if !res.Rejected || res.Lines[0] != "A chill stops your hand." {
		t.Errorf("result = %+v, want hook rejection", res)
	}
	if !e.State().Equal(before) {
		t.Error("rejected hook turn mutated the world")
	}
}

func TestExecuteTurnMetaVerbSkipsMoveCounter(t *testing.T) {
	gs := engineState()
	h := &stubHandler{
		spec: HandlerSpec{Verbs: []string{"score"}, Meta: true},
		process: func(ctx *Context) (*Result, error) {
			return Say("Your score is 0."), nil
		},
	}
	e := newTestEngine(t, gs, h)

	if _, err := e.ExecuteTurn(Command{Verb: "score"}); err != nil {
		t.Fatalf("ExecuteTurn failed: %v", err)
	}
	if moves := e.State().Player.Moves; moves != 0 {
		t.Errorf("moves = %d, want 0 after a meta verb", moves)
	}
}

func TestExecuteTurnInvariantViolationSurfaces(t *testing.T) {
	gs := engineState()
	h := &stubHandler{
		spec: HandlerSpec{Verbs: []string{"curse"}},
		process: func(ctx *Context) (*Result, error) {
			return &Result{Changes: []world.Change{world.MoveItem("ghost", "study")}}, nil
		},
	}
	e := newTestEngine(t, gs, h)
	before := e.State()

	if _, err := e.ExecuteTurn(Command{Verb: "curse"}); err == nil {
		t.Fatal("invariant violation did not surface as an error")
	}
	if e.State() != before {
		t.Error("failed turn replaced the canonical state")
	}
}

func TestPronounChanges(t *testing.T) {
	gs := engineState()
	gs.Items["knives"] = &world.Item{ID: "knives", Name: "throwing knives", Parent: "study", Plural: true}
	gs.Items["witch"] = &world.Item{
		ID: "witch", Name: "bog witch", Parent: "study",
		Animate: true, Gender: world.GenderFemale,
	}

	tests := []struct {
		name string
		cmd  Command
		want world.Change
	}{
		{
			name: "single inanimate binds it",
			cmd:  Command{Verb: "take", Objects: []world.EntityID{"scroll"}},
			want: world.UpdatePronoun(world.PronounIt, "scroll"),
		},
		{
			name: "plural item binds them",
			cmd:  Command{Verb: "take", Objects: []world.EntityID{"knives"}},
			want: world.UpdatePronoun(world.PronounThem, "knives"),
		},
		{
			name: "multiple objects bind them",
			cmd:  Command{Verb: "take", Objects: []world.EntityID{"scroll", "lamp"}},
			want: world.UpdatePronoun(world.PronounThem, "scroll", "lamp"),
		},
		{
			name: "animate female binds her",
			cmd:  Command{Verb: "greet", Objects: []world.EntityID{"witch"}},
			want: world.UpdatePronoun(world.PronounHer, "witch"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			changes := pronounChanges(gs, tt.cmd)
			if len(changes) != 1 {
				t.Fatalf("pronounChanges returned %d changes, want 1", len(changes))
			}
			got := changes[0]
			if got.Key != tt.want.Key || len(got.Refs) != len(tt.want.Refs) {
				t.Fatalf("change = %+v, want %+v", got, tt.want)
			}
			for i := range got.Refs {
				if got.Refs[i] != tt.want.Refs[i] {
					t.Errorf("ref %d = %q, want %q", i, got.Refs[i], tt.want.Refs[i])
				}
			}
		})
	}

	if changes := pronounChanges(gs, Command{Verb: "wait"}); changes != nil {
		t.Errorf("objectless command produced pronoun changes: %v", changes)
	}
}
