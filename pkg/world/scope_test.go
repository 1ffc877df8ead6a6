package world

import "testing"

func TestReachable(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(gs *GameState)
		id      EntityID
		inScope bool
	}{
		{
			name:    "item in the room",
			id:      "box",
			inScope: true,
		},
		{
			name:    "contents of an open container",
			id:      "coin",
			inScope: true,
		},
		{
			name: "contents of a closed opaque container",
			mutate: func(gs *GameState) {
				delete(gs.Items["box"].Flags, FlagOpen)
			},
			id:      "coin",
			inScope: false,
		},
		{
			name: "contents of a closed transparent container",
			mutate: func(gs *GameState) {
				delete(gs.Items["box"].Flags, FlagOpen)
				gs.Items["box"].IsTransparent = true
			},
			id:      "coin",
			inScope: true,
		},
		{
			name: "item on a surface",
			mutate: func(gs *GameState) {
				gs.Items["table"] = &Item{ID: "table", Name: "table", Parent: "cellar", IsSurface: true}
				gs.Items["coin"].Parent = "table"
			},
			id:      "coin",
			inScope: true,
		},
		{
			name:    "held item",
			id:      "lamp",
			inScope: true,
		},
		{
			name: "held item inside a closed sack: possession implies reachability",
			mutate: func(gs *GameState) {
				gs.Items["sack"] = &Item{
					ID: "sack", Name: "sack", Parent: PlayerID,
					IsContainer: true, IsOpenable: true,
				}
				gs.Items["lamp"].Parent = "sack"
			},
			id:      "lamp",
			inScope: true,
		},
		{
			name: "item in another location",
			mutate: func(gs *GameState) {
				gs.Items["coin"].Parent = "attic"
			},
			id:      "coin",
			inScope: false,
		},
		{
			name:    "characters follow the same rule",
			id:      "troll",
			inScope: true,
		},
		{
			name: "item removed from play",
			mutate: func(gs *GameState) {
				gs.Items["coin"].Parent = Nowhere
			},
			id:      "coin",
			inScope: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs := testState()
			if tt.mutate != nil {
				tt.mutate(gs)
			}
			if got := gs.InScope(tt.id); got != tt.inScope {
				t.Errorf("InScope(%q) = %v, want %v", tt.id, got, tt.inScope)
			}
		})
	}
}

func TestReachableExcludesPossessionsWhenPlayerElsewhere(t *testing.T) {
	gs := testState()
	gs.Player.Location = "attic"

	if gs.Reachable("cellar")["lamp"] {
		t.Error("held lamp reachable from a location the player is not at")
	}
}

func TestReachableIdempotent(t *testing.T) {
	gs := testState()
	first := gs.Reachable("cellar")
	second := gs.Reachable("cellar")
	if len(first) != len(second) {
		t.Fatalf("repeated Reachable calls differ: %d vs %d entries", len(first), len(second))
	}
	for id := range first {
		if !second[id] {
			t.Errorf("id %q present in first call, missing in second", id)
		}
	}
}

func TestIsLit(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(gs *GameState)
		loc    EntityID
		want   bool
	}{
		{
			name: "inherently lit location",
			loc:  "cellar",
			want: true,
		},
		{
			name: "dark location, lamp off",
			mutate: func(gs *GameState) {
				gs.Player.Location = "attic"
			},
			loc:  "attic",
			want: false,
		},
		{
			name: "dark location, held lamp on",
			mutate: func(gs *GameState) {
				gs.Player.Location = "attic"
				gs.Items["lamp"].Flags[FlagOn] = true
			},
			loc:  "attic",
			want: true,
		},
		{
			name: "dark location, lit lamp resting there",
			mutate: func(gs *GameState) {
				gs.Items["lamp"].Parent = "attic"
				gs.Items["lamp"].Flags[FlagOn] = true
			},
			loc:  "attic",
			want: true,
		},
		{
			name: "dark location, lit lamp shut in an opaque box there",
			mutate: func(gs *GameState) {
				gs.Items["box"].Parent = "attic"
				delete(gs.Items["box"].Flags, FlagOpen)
				gs.Items["lamp"].Parent = "box"
				gs.Items["lamp"].Flags[FlagOn] = true
			},
			loc:  "attic",
			want: false,
		},
		{
			name: "unknown location",
			loc:  "void",
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs := testState()
			if tt.mutate != nil {
				tt.mutate(gs)
			}
			if got := gs.IsLit(tt.loc); got != tt.want {
				t.Errorf("IsLit(%q) = %v, want %v", tt.loc, got, tt.want)
			}
		})
	}
}
