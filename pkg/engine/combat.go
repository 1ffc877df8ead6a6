package engine

import (
	"fmt"

	"github.com/hollowgate/lantern/pkg/dice"
	"github.com/hollowgate/lantern/pkg/world"
)

// OutcomeTier classifies one combat round's attack result.
type OutcomeTier int

const (
	TierMiss OutcomeTier = iota
	TierGlancing
	TierSolid
	TierCritical
)

func (t OutcomeTier) String() string {
	switch t {
	case TierMiss:
		return "miss"
	case TierGlancing:
		return "glancing"
	case TierSolid:
		return "solid"
	case TierCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// damage per tier. Exactly one round is resolved per intercepted turn.
var tierDamage = map[OutcomeTier]int{
	TierMiss:     0,
	TierGlancing: 1,
	TierSolid:    2,
	TierCritical: 4,
}

// combatVerbs are the verbs that handle fighting themselves; the arbiter
// never intercepts them.
var combatVerbs = map[string]bool{
	"attack": true,
	"kill":   true,
	"hit":    true,
	"fight":  true,
	"stab":   true,
	"strike": true,
}

// Arbiter interleaves combat into turns aimed at hostile characters. It
// carries no state across turns beyond what lives on the CharacterSheet;
// the roller is injected so outcomes are testable.
type Arbiter struct {
	roller dice.Roller
}

// NewArbiter returns an arbiter using the given roller.
func NewArbiter(r dice.Roller) *Arbiter {
	return &Arbiter{roller: r}
}

// IsCombatVerb reports whether the verb resolves fighting itself.
func IsCombatVerb(verb string) bool {
	return combatVerbs[verb]
}

// Intercepts returns the first resolved object that is a fighting
// character, when the invoked verb is not itself a combat verb.
func (a *Arbiter) Intercepts(gs *world.GameState, cmd Command) (world.EntityID, bool) {
	if IsCombatVerb(cmd.Verb) {
		return "", false
	}
	for _, id := range cmd.Objects {
		it := gs.Item(id)
		if it != nil && it.IsCharacter() && it.Has(world.FlagFighting) {
			return id, true
		}
	}
	return "", false
}

// Round resolves exactly one attack against the target and returns its
// narration and Changes. The target is touched by this path even when
// the primary verb's own effect did not touch it. Defeat (HP reaching
// zero) ends the fight and awards score.
func (a *Arbiter) Round(gs *world.GameState, target world.EntityID) *Result {
	it := gs.Item(target)
	if it == nil || it.Sheet == nil {
		return nil
	}

	tier := a.rollTier(it.Sheet.Armor)
	dmg := tierDamage[tier]

	res := &Result{
		Messages: []string{tierNarration(tier, it.Name)},
		Changes:  []world.Change{world.Touch(target)},
	}
	if dmg > 0 {
		res.Changes = append(res.Changes, world.AdjustHealth(target, -dmg))
	}
	if dmg >= it.Sheet.HP && it.Sheet.HP > 0 {
		res.Messages = append(res.Messages, fmt.Sprintf("The %s collapses, defeated.", it.Name))
		res.Changes = append(res.Changes,
			world.ClearFlag(target, world.FlagFighting),
			world.AdjustScore(5),
		)
	}
	return res
}

// rollTier maps one d20 roll against the target's armor. A natural 20 is
// always critical; otherwise armor shifts the thresholds down.
func (a *Arbiter) rollTier(armor int) OutcomeTier {
	roll := a.roller.Roll(20)
	if roll == 20 {
		return TierCritical
	}
	score := roll - armor
	switch {
	case score <= 5:
		return TierMiss
	case score <= 12:
		return TierGlancing
	default:
		return TierSolid
	}
}

func tierNarration(tier OutcomeTier, name string) string {
	switch tier {
	case TierCritical:
		return fmt.Sprintf("A savage blow catches the %s square on; it reels.", name)
	case TierSolid:
		return fmt.Sprintf("Your blow lands squarely on the %s.", name)
	case TierGlancing:
		return fmt.Sprintf("A glancing blow grazes the %s.", name)
	default:
		return fmt.Sprintf("Your swing misses the %s entirely.", name)
	}
}
