package engine

import "github.com/hollowgate/lantern/pkg/world"

// EventKind names a lifecycle event delivered to hooks.
type EventKind string

// EventBeforeTurn fires before the default handler runs for a command.
const EventBeforeTurn EventKind = "before_turn"

// Event is the payload delivered to a hook.
type Event struct {
	Kind    EventKind
	Command Command
}

// Hook is a per-item or per-location callback. Returning a non-nil
// Result replaces the default handler's process output for the turn
// entirely; returning (nil, nil) declines. Hook errors use the same
// taxonomy as handler validation.
type Hook func(ctx *Context, ev Event) (*Result, error)

// HookRegistry maps entity ids to their hook chains. This is how
// individual game objects override generic verb behavior without
// touching the shared handler.
type HookRegistry struct {
	hooks map[world.EntityID][]Hook
}

// NewHookRegistry returns an empty registry.
func NewHookRegistry() *HookRegistry {
	return &HookRegistry{hooks: make(map[world.EntityID][]Hook)}
}

// Register appends a hook to the entity's chain.
func (hr *HookRegistry) Register(id world.EntityID, h Hook) {
	hr.hooks[id] = append(hr.hooks[id], h)
}

// BeforeTurn consults the chains relevant to the command: the player's
// location first, then each resolved object, then the indirect object,
// each in registration order. The first non-nil result wins.
func (hr *HookRegistry) BeforeTurn(ctx *Context) (*Result, error) {
	ev := Event{Kind: EventBeforeTurn, Command: ctx.Command}

	ids := []world.EntityID{ctx.State.Player.Location}
	ids = append(ids, ctx.Command.Objects...)
	if ctx.Command.Indirect != "" {
		ids = append(ids, ctx.Command.Indirect)
	}

	for _, id := range ids {
		for _, h := range hr.hooks[id] {
			res, err := h(ctx, ev)
			if err != nil {
				return nil, err
			}
			if res != nil {
				return res, nil
			}
		}
	}
	return nil, nil
}
