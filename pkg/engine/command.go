package engine

import (
	"fmt"

	"github.com/hollowgate/lantern/pkg/world"
)

// Command is an already-parsed player input: a verb plus resolved object
// references. The external parser owns tokenization and noun resolution;
// the engine only ever sees ids.
type Command struct {
	Verb     string           `json:"verb"`
	Objects  []world.EntityID `json:"objects,omitempty"` // direct objects
	Indirect world.EntityID   `json:"indirect,omitempty"`
	Particle string           `json:"particle,omitempty"` // e.g. "on", "off", "in"
	Text     string           `json:"text,omitempty"`     // raw player input
}

// Direct returns the first direct object, or the empty id.
func (c Command) Direct() world.EntityID {
	if len(c.Objects) == 0 {
		return ""
	}
	return c.Objects[0]
}

// Result is one handler's (or hook's) contribution to a turn: narration
// plus the Changes to commit. ShowLocation asks the orchestrator to
// append the room header after the primary messages.
type Result struct {
	Messages     []string
	Changes      []world.Change
	ShowLocation bool
}

// Say builds a message-only Result.
func Say(format string, args ...any) *Result {
	return &Result{Messages: []string{fmt.Sprintf(format, args...)}}
}
