package engine

import (
	"testing"

	"github.com/hollowgate/lantern/pkg/dice"
	"github.com/hollowgate/lantern/pkg/world"
)

func combatState() *world.GameState {
	gs := world.NewGameState()
	gs.Locations["lair"] = &world.Location{ID: "lair", Name: "Lair", Lit: true}
	gs.Items["troll"] = &world.Item{
		ID: "troll", Name: "troll", Parent: "lair",
		Animate: true,
		Flags:   map[string]bool{world.FlagFighting: true},
		Sheet:   &world.CharacterSheet{HP: 6, MaxHP: 6, Armor: 2, Might: 1},
	}
	gs.Items["sword"] = &world.Item{ID: "sword", Name: "elvish sword", Parent: "lair"}
	gs.Player.Location = "lair"
	return gs
}

func TestArbiterIntercepts(t *testing.T) {
	gs := combatState()
	a := NewArbiter(dice.Fixed(1))

	tests := []struct {
		name   string
		cmd    Command
		target world.EntityID
		want   bool
	}{
		{
			name:   "unrelated verb against fighting character",
			cmd:    Command{Verb: "smell", Objects: []world.EntityID{"troll"}},
			target: "troll",
			want:   true,
		},
		{
			name: "combat verb is never intercepted",
			cmd:  Command{Verb: "attack", Objects: []world.EntityID{"troll"}},
			want: false,
		},
		{
			name: "ordinary item is never intercepted",
			cmd:  Command{Verb: "take", Objects: []world.EntityID{"sword"}},
			want: false,
		},
		{
			name: "no objects",
			cmd:  Command{Verb: "wait"},
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target, ok := a.Intercepts(gs, tt.cmd)
			if ok != tt.want || target != tt.target {
				t.Errorf("Intercepts = (%q, %v), want (%q, %v)", target, ok, tt.target, tt.want)
			}
		})
	}
}

func TestArbiterInterceptsIgnoresPeacefulCharacter(t *testing.T) {
	gs := combatState()
	delete(gs.Items["troll"].Flags, world.FlagFighting)

	a := NewArbiter(dice.Fixed(1))
	if _, ok := a.Intercepts(gs, Command{Verb: "smell", Objects: []world.EntityID{"troll"}}); ok {
		t.Error("intercepted a verb aimed at a peaceful character")
	}
}

func TestArbiterRoundTiers(t *testing.T) {
	// Troll armor is 2: rolls of 7, 8..14, 15..19 and a natural 20 land
	// in the four tiers respectively.
	tests := []struct {
		name   string
		roll   int
		damage int
	}{
		{"miss", 7, 0},
		{"glancing", 10, 1},
		{"solid", 17, 2},
		{"critical", 20, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs := combatState()
			a := NewArbiter(dice.Fixed(tt.roll))

			res := a.Round(gs, "troll")
			if res == nil {
				t.Fatal("Round returned nil")
			}
			if len(res.Messages) == 0 {
				t.Fatal("Round produced no narration")
			}

			next, err := gs.Apply(res.Changes)
			if err != nil {
				t.Fatalf("applying round changes failed: %v", err)
			}
			if !next.Items["troll"].Has(world.FlagTouched) {
				t.Error("round did not touch the target")
			}
			wantHP := 6 - tt.damage
			if hp := next.Items["troll"].Sheet.HP; hp != wantHP {
				t.Errorf("HP = %d, want %d", hp, wantHP)
			}
		})
	}
}

func TestArbiterRoundDefeat(t *testing.T) {
	gs := combatState()
	gs.Items["troll"].Sheet.HP = 2

	a := NewArbiter(dice.Fixed(20)) // critical: 4 damage
	res := a.Round(gs, "troll")

	next, err := gs.Apply(res.Changes)
	if err != nil {
		t.Fatalf("applying round changes failed: %v", err)
	}
	if next.Items["troll"].Has(world.FlagFighting) {
		t.Error("defeated character still fighting")
	}
	if next.Items["troll"].Sheet.HP != 0 {
		t.Errorf("HP = %d, want 0", next.Items["troll"].Sheet.HP)
	}
	if next.Player.Score != 5 {
		t.Errorf("score = %d, want 5 for the kill", next.Player.Score)
	}
	if len(res.Messages) != 2 {
		t.Errorf("messages = %v, want blow narration plus defeat line", res.Messages)
	}
}

func TestArbiterRoundNonCharacter(t *testing.T) {
	gs := combatState()
	a := NewArbiter(dice.Fixed(10))
	if res := a.Round(gs, "sword"); res != nil {
		t.Error("Round against a sheetless item returned a result")
	}
}
