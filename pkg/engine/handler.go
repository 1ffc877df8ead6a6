package engine

import (
	"fmt"
	"log/slog"

	"github.com/hollowgate/lantern/pkg/world"
)

// Context carries a frozen pre-turn snapshot to a handler. Validation
// reads the snapshot; processing computes Changes against that same
// snapshot and never mutates shared state directly.
type Context struct {
	State   *world.GameState
	Command Command
	Logger  *slog.Logger
}

// Pattern describes one syntax shape a handler accepts. The parser has
// already resolved nouns, so patterns match command shape rather than raw
// tokens: object presence, indirect presence, and the particle.
type Pattern struct {
	Particle      string // required particle; empty matches commands without one
	WantsObject   bool
	WantsIndirect bool
}

// Matches reports whether the command has this pattern's shape.
func (p Pattern) Matches(cmd Command) bool {
	if p.Particle != cmd.Particle {
		return false
	}
	if p.WantsObject != (len(cmd.Objects) > 0) {
		return false
	}
	return p.WantsIndirect == (cmd.Indirect != "")
}

// HandlerSpec declares how a handler binds into dispatch.
type HandlerSpec struct {
	// Verbs is the synonym set; the first entry is the canonical name.
	Verbs []string
	// Patterns, when non-empty, restrict the shapes this handler
	// accepts, in priority order. An empty list accepts any shape.
	Patterns []Pattern
	// RequiresLight short-circuits the turn with the darkness message
	// when the player's location is unlit.
	RequiresLight bool
	// Meta verbs do not advance the move counter.
	Meta bool
}

// Name returns the canonical verb.
func (s HandlerSpec) Name() string {
	if len(s.Verbs) == 0 {
		return ""
	}
	return s.Verbs[0]
}

// Handler is the closed capability every verb implements. Validate
// checks object existence, scope membership, and verb preconditions,
// failing with a RejectionError; Process computes narration and Changes.
// Neither mutates shared state.
type Handler interface {
	Spec() HandlerSpec
	Validate(ctx *Context) error
	Process(ctx *Context) (*Result, error)
}

// Registry is the startup-time verb table. Dispatch is deterministic:
// candidates are consulted in registration order and the first handler
// whose pattern list matches the command shape wins.
type Registry struct {
	order  []Handler
	byVerb map[string][]Handler
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byVerb: make(map[string][]Handler)}
}

// Register adds a handler under all of its verb synonyms. Registering a
// second shape-unrestricted handler for a verb is an authoring error,
// since dispatch between the two could never be meaningful.
func (r *Registry) Register(h Handler) error {
	spec := h.Spec()
	if len(spec.Verbs) == 0 {
		return fmt.Errorf("handler declares no verbs")
	}
	for _, verb := range spec.Verbs {
		for _, existing := range r.byVerb[verb] {
			if len(existing.Spec().Patterns) == 0 && len(spec.Patterns) == 0 {
				return fmt.Errorf("verb %q already has an unrestricted handler", verb)
			}
		}
		r.byVerb[verb] = append(r.byVerb[verb], h)
	}
	r.order = append(r.order, h)
	return nil
}

// Resolve finds the handler for a command, or rejects with an
// unknown-verb message.
func (r *Registry) Resolve(cmd Command) (Handler, error) {
	candidates := r.byVerb[cmd.Verb]
	for _, h := range candidates {
		patterns := h.Spec().Patterns
		if len(patterns) == 0 {
			return h, nil
		}
		for _, p := range patterns {
			if p.Matches(cmd) {
				return h, nil
			}
		}
	}
	if len(candidates) > 0 {
		return nil, Reject(ReasonPrecondition, "I don't understand that sentence.")
	}
	return nil, Reject(ReasonUnknownVerb, "I don't know the word %q.", cmd.Verb)
}
