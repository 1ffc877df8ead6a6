// Package engine implements turn resolution: handler dispatch, the event
// hook chain, combat arbitration, pronoun tracking, and the orchestrator
// that serializes turns against a single GameState.
package engine

import "fmt"

// Reason classifies why validation rejected a command.
type Reason string

const (
	ReasonUnknownVerb   Reason = "unknown_verb"
	ReasonMissingObject Reason = "missing_object"
	ReasonOutOfReach    Reason = "out_of_reach"
	ReasonWrongKind     Reason = "wrong_kind"
	ReasonNotHeld       Reason = "not_held"
	ReasonPrecondition  Reason = "precondition"
	ReasonAlreadySo     Reason = "already_so"
)

// RejectionError is the typed error surfaced when validate fails. It is
// recovered locally: its message becomes the turn's sole output and no
// mutation occurs.
type RejectionError struct {
	Reason  Reason
	Message string
}

func (e *RejectionError) Error() string {
	return e.Message
}

// Reject builds a RejectionError with a player-facing message.
func Reject(reason Reason, format string, args ...any) *RejectionError {
	return &RejectionError{Reason: reason, Message: fmt.Sprintf(format, args...)}
}

// DarknessMessage is the canonical short-circuit line for light-gated
// verbs in an unlit location. Not an error: validate and process simply
// never run.
const DarknessMessage = "It is pitch black. You are likely to be eaten by a grue."
