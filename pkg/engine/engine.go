package engine

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/hollowgate/lantern/pkg/dice"
	"github.com/hollowgate/lantern/pkg/world"
)

// TurnResult is the player-visible outcome of one command: ordered
// narration lines, including any appended room header or combat text.
type TurnResult struct {
	Lines    []string
	Rejected bool // validation rejected the command; world unchanged
}

// Engine is the turn orchestrator. It owns the canonical GameState and
// serializes turn execution behind a mutex: one command's full sequence,
// including Change application, completes before the next begins.
type Engine struct {
	mu       sync.Mutex
	state    *world.GameState
	registry *Registry
	hooks    *HookRegistry
	arbiter  *Arbiter
	logger   *slog.Logger
}

// New returns an engine owning the given state. The default roller is
// freshly seeded; use WithRoller for deterministic play.
func New(gs *world.GameState, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	seed, err := dice.NewSeed()
	if err != nil {
		seed = 1
	}
	return &Engine{
		state:    gs,
		registry: NewRegistry(),
		hooks:    NewHookRegistry(),
		arbiter:  NewArbiter(dice.New(seed)),
		logger:   logger,
	}
}

// WithRoller replaces the combat roller. Returns the engine for
// chaining during setup.
func (e *Engine) WithRoller(r dice.Roller) *Engine {
	e.arbiter = NewArbiter(r)
	return e
}

// Arbiter exposes the combat arbiter, for handlers that resolve
// fighting themselves.
func (e *Engine) Arbiter() *Arbiter {
	return e.arbiter
}

// Register adds a verb handler.
func (e *Engine) Register(h Handler) error {
	return e.registry.Register(h)
}

// RegisterHook attaches a hook to an item or location.
func (e *Engine) RegisterHook(id world.EntityID, h Hook) {
	e.hooks.Register(id, h)
}

// State returns the canonical state. Callers outside an active turn may
// inspect it but must treat it as read-only; all mutation goes through
// ExecuteTurn.
func (e *Engine) State() *world.GameState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// ExecuteTurn resolves one command: dispatch, light gate, hook chain,
// validate/process, combat interleave, atomic Change application,
// pronoun rebinding, and narration assembly. Rejections return a
// TurnResult with the explanatory message and leave the world unchanged;
// only invariant violations surface as errors.
func (e *Engine) ExecuteTurn(cmd Command) (*TurnResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	snap := e.state
	ctx := &Context{State: snap, Command: cmd, Logger: e.logger}

	handler, err := e.registry.Resolve(cmd)
	if err != nil {
		return e.reject(cmd, err)
	}
	spec := handler.Spec()

	wasLit := snap.IsLit(snap.Player.Location)
	if spec.RequiresLight && !wasLit {
		return &TurnResult{Lines: []string{DarknessMessage}}, nil
	}

	result, err := e.hooks.BeforeTurn(ctx)
	if err != nil {
		return e.reject(cmd, err)
	}
	if result == nil {
		if err := handler.Validate(ctx); err != nil {
			return e.reject(cmd, err)
		}
		result, err = handler.Process(ctx)
		if err != nil {
			return e.reject(cmd, err)
		}
	}
	if result == nil {
		result = &Result{}
	}

	var combatLines []string
	changes := result.Changes
	if target, ok := e.arbiter.Intercepts(snap, cmd); ok {
		if round := e.arbiter.Round(snap, target); round != nil {
			combatLines = round.Messages
			changes = append(changes, round.Changes...)
		}
	}
	if !spec.Meta {
		changes = append(changes, world.AdjustMoves(1))
	}

	next, err := snap.Apply(changes)
	if err != nil {
		e.logger.Error("turn aborted by invariant violation",
			"verb", cmd.Verb, "error", err)
		return nil, err
	}

	if pr := pronounChanges(next, cmd); len(pr) > 0 {
		next, err = next.Apply(pr)
		if err != nil {
			e.logger.Error("pronoun rebinding failed",
				"verb", cmd.Verb, "error", err)
			return nil, err
		}
	}
	e.state = next

	lines := append([]string(nil), result.Messages...)
	if result.ShowLocation || (!wasLit && next.IsLit(next.Player.Location)) {
		lines = append(lines, describeLocation(next)...)
	}
	lines = append(lines, combatLines...)

	e.logger.Debug("turn committed",
		"verb", cmd.Verb, "changes", len(changes), "lines", len(lines))
	return &TurnResult{Lines: lines}, nil
}

// reject turns a RejectionError into the turn's sole message. Anything
// else is an engine bug and propagates.
func (e *Engine) reject(cmd Command, err error) (*TurnResult, error) {
	var rej *RejectionError
	if errors.As(err, &rej) {
		e.logger.Debug("command rejected",
			"verb", cmd.Verb, "reason", string(rej.Reason))
		return &TurnResult{Lines: []string{rej.Message}, Rejected: true}, nil
	}
	e.logger.Error("handler failed", "verb", cmd.Verb, "error", err)
	return nil, err
}

// describeLocation emits the room header and, when lit, the description
// and visible contents. In the dark only the darkness line is shown.
func describeLocation(gs *world.GameState) []string {
	loc := gs.Location(gs.Player.Location)
	if loc == nil {
		return nil
	}
	if !gs.IsLit(loc.ID) {
		return []string{DarknessMessage}
	}
	lines := []string{loc.Name}
	if loc.Description != "" {
		lines = append(lines, loc.Description)
	}
	for _, it := range gs.Contents(loc.ID) {
		if it.Has(world.FlagFixed) {
			continue
		}
		lines = append(lines, "There is "+Indefinite(it.Name)+" here.")
	}
	return lines
}
