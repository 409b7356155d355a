package core

import "testing"

func TestRectIntersects(t *testing.T) {
	// Sizes match the default game: player 60, anvil 80, enemy 120x60, arrow 5x15
	player := NewRect(400, 480, 60, 60)

	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"anvil on the player's head", player, NewRect(420, 410, 80, 80), true},
		{"anvil resting on the player's top edge", player, NewRect(400, 400, 80, 80), false},
		{"anvil beside the player", player, NewRect(460, 480, 80, 80), false},
		{"anvil one pixel into the player", player, NewRect(459, 480, 80, 80), true},
		{"player inside a larger rect", NewRect(0, 0, 800, 600), player, true},
		{"arrow tip inside enemy", NewRect(300, 50, 120, 60), NewRect(350, 100, 5, 15), true},
		{"arrow under enemy", NewRect(300, 50, 120, 60), NewRect(350, 110, 5, 15), false},
		{"enemy still off-screen left", NewRect(-120, 50, 120, 60), NewRect(-10, 100, 5, 15), true},
		{"fractional overlap", NewRect(0, 0, 10, 10), NewRect(9.5, 9.5, 10, 10), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersects(tt.b); got != tt.want {
				t.Errorf("Intersects() = %v, want %v", got, tt.want)
			}
			if got := tt.b.Intersects(tt.a); got != tt.want {
				t.Errorf("Intersects() reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(-120, 50, 120, 60)
	if r.Right() != 0 {
		t.Errorf("Right() = %v, want 0", r.Right())
	}
	if r.Bottom() != 110 {
		t.Errorf("Bottom() = %v, want 110", r.Bottom())
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, lo, hi, want float64
	}{
		{400, 20, 720, 400},
		{13, 20, 720, 20},
		{727, 20, 720, 720},
		{720, 20, 720, 720},
	}

	for _, tt := range tests {
		if got := ClampF(tt.val, tt.lo, tt.hi); got != tt.want {
			t.Errorf("ClampF(%v, %v, %v) = %v, want %v", tt.val, tt.lo, tt.hi, got, tt.want)
		}
	}
}
