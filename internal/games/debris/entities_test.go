package debris

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-debris/internal/config"
	"github.com/vovakirdan/tui-debris/internal/core"
)

func defaultArena() Arena {
	return NewArena(config.DefaultDebrisConfig())
}

func TestArenaGeometry(t *testing.T) {
	a := defaultArena()

	if a.GroundY != 520 {
		t.Errorf("GroundY = %v, want 520", a.GroundY)
	}
	// 10 + 8 + 6 blocks
	if len(a.Platforms) != 24 {
		t.Errorf("len(Platforms) = %d, want 24", len(a.Platforms))
	}
	if a.Platforms[0] != core.NewRect(100, 520, 20, 20) {
		t.Errorf("first platform block = %+v", a.Platforms[0])
	}
	if a.MinPlayerX() != 20 || a.MaxPlayerX(60) != 720 {
		t.Errorf("player x range = [%v, %v], want [20, 720]", a.MinPlayerX(), a.MaxPlayerX(60))
	}
}

func TestPlayerMoveClamped(t *testing.T) {
	a := defaultArena()
	p := NewPlayer(a, 60)

	if p.X != 400 || p.Y != a.GroundY {
		t.Fatalf("start = (%v, %v), want (400, %v)", p.X, p.Y, a.GroundY)
	}

	for range 200 {
		p.Move(true, false, 7, a)
	}
	if p.X != a.MinPlayerX() {
		t.Errorf("after holding left X = %v, want %v", p.X, a.MinPlayerX())
	}

	for range 200 {
		p.Move(false, true, 7, a)
	}
	if p.X != a.MaxPlayerX(p.Size) {
		t.Errorf("after holding right X = %v, want %v", p.X, a.MaxPlayerX(p.Size))
	}

	// Both directions cancel out
	x := p.X - 100
	p.X = x
	p.Move(true, true, 7, a)
	if p.X != x {
		t.Errorf("left+right moved player to %v, want %v", p.X, x)
	}
}

func TestPlayerJumpOnlyOnce(t *testing.T) {
	a := defaultArena()
	p := NewPlayer(a, 60)
	phys := config.DefaultDebrisConfig().Physics

	if !p.Jump(phys.JumpImpulse) {
		t.Fatal("first jump rejected")
	}
	if p.Jump(phys.JumpImpulse) {
		t.Fatal("second jump accepted mid-air")
	}

	// Jump arc returns to the ground and clears the jumping flag
	for range 100 {
		p.ApplyPhysics(a, phys)
	}
	if p.Jumping || p.Y != a.GroundY || p.VelY != 0 {
		t.Errorf("after landing: Y=%v VelY=%v Jumping=%v", p.Y, p.VelY, p.Jumping)
	}
}

func TestPlayerPhysics(t *testing.T) {
	a := defaultArena()
	phys := config.DefaultDebrisConfig().Physics

	tests := []struct {
		name     string
		x, y, vy float64
		wantY    float64
		wantVY   float64
		grounded bool
	}{
		{
			name: "lands on platform while descending",
			x:    520, y: 397, vy: 5,
			wantY: 400, wantVY: 0, grounded: true,
		},
		{
			name: "rises through platform",
			x:    520, y: 420, vy: -5,
			wantY: 415.5, wantVY: -4.5, grounded: false,
		},
		{
			name: "feet too deep to catch",
			x:    520, y: 415, vy: 0,
			wantY: 415.5, wantVY: 0.5, grounded: false,
		},
		{
			name: "ground snaps",
			x:    400, y: 518, vy: 6,
			wantY: 520, wantVY: 0, grounded: true,
		},
		{
			name: "ground snaps beside platform",
			x:    150, y: 519, vy: 4,
			wantY: 520, wantVY: 0, grounded: true,
		},
		{
			name: "free fall",
			x:    400, y: 100, vy: 0,
			wantY: 100.5, wantVY: 0.5, grounded: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Player{X: tt.x, Y: tt.y, VelY: tt.vy, Jumping: true, Size: 60}
			got := p.ApplyPhysics(a, phys)
			if got != tt.grounded {
				t.Errorf("grounded = %v, want %v", got, tt.grounded)
			}
			if p.Y != tt.wantY || p.VelY != tt.wantVY {
				t.Errorf("Y=%v VelY=%v, want Y=%v VelY=%v", p.Y, p.VelY, tt.wantY, tt.wantVY)
			}
			if tt.grounded && p.Jumping {
				t.Error("Jumping still set after landing")
			}
		})
	}
}

func TestSpawnWaveLayout(t *testing.T) {
	cfg := config.DefaultDebrisConfig()
	s := NewSpawner(1, cfg.Arena.Width, cfg.Enemies, cfg.Hazards)

	got := s.SpawnWave(nil, 3, 7)
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	wantX := []float64{-120, -220, -320}
	wantY := []float64{50, 80, 50}
	for i, e := range got {
		if e.X != wantX[i] || e.Y != wantY[i] {
			t.Errorf("enemy %d at (%v, %v), want (%v, %v)", i, e.X, e.Y, wantX[i], wantY[i])
		}
		if e.Speed != 7 || e.W != 120 || e.H != 60 {
			t.Errorf("enemy %d = %+v", i, e)
		}
	}

	if got := s.SpawnWave(got, 0, 7); len(got) != 0 {
		t.Errorf("SpawnWave(0) len = %d, want 0", len(got))
	}
}

func TestPatrolWraps(t *testing.T) {
	cfg := config.DefaultDebrisConfig()
	s := NewSpawner(1, cfg.Arena.Width, cfg.Enemies, cfg.Hazards)

	enemies := []Enemy{
		{X: 795, W: 120, Speed: 7},
		{X: 793, W: 120, Speed: 7},
	}
	s.Patrol(enemies)

	if enemies[0].X != -120 {
		t.Errorf("past the edge: X = %v, want -120", enemies[0].X)
	}
	if enemies[1].X != 800 {
		t.Errorf("on the edge: X = %v, want 800", enemies[1].X)
	}
}

func TestEmitHazard(t *testing.T) {
	cfg := config.DefaultDebrisConfig()
	s := NewSpawner(1, cfg.Arena.Width, cfg.Enemies, cfg.Hazards)
	e := Enemy{X: 100, Y: 50, W: 120, H: 60}

	h, ok := s.EmitHazard(e, 0, 1)
	if !ok {
		t.Fatal("certain drop did not happen")
	}
	if h.X != 120 || h.Y != 110 || h.Size != 80 {
		t.Errorf("hazard = %+v, want centred under enemy at (120, 110)", h)
	}

	if _, ok := s.EmitHazard(e, cfg.Hazards.MaxActive, 1); ok {
		t.Error("drop allowed at the active cap")
	}
	if _, ok := s.EmitHazard(e, 0, 0); ok {
		t.Error("drop with zero chance")
	}
}

func TestDropAllRespectsCap(t *testing.T) {
	cfg := config.DefaultDebrisConfig()
	s := NewSpawner(1, cfg.Arena.Width, cfg.Enemies, cfg.Hazards)

	enemies := s.SpawnWave(nil, 25, 7)
	hazards := s.DropAll(enemies, nil, 1)
	if len(hazards) != cfg.Hazards.MaxActive {
		t.Errorf("len(hazards) = %d, want %d", len(hazards), cfg.Hazards.MaxActive)
	}
}

func TestFallHazards(t *testing.T) {
	hazards := []Hazard{
		{X: 0, Y: 595, Size: 80},
		{X: 0, Y: 580, Size: 80},
		{X: 0, Y: 590, Size: 80},
	}
	kept, dodged := FallHazards(hazards, 10, 600)
	if dodged != 1 {
		t.Errorf("dodged = %d, want 1", dodged)
	}
	if len(kept) != 2 || kept[0].Y != 590 || kept[1].Y != 600 {
		t.Errorf("kept = %+v", kept)
	}
}

func TestHitPlayerStopsAtLives(t *testing.T) {
	player := core.NewRect(400, 520, 60, 60)
	hazards := []Hazard{
		{X: 400, Y: 500, Size: 80},
		{X: 410, Y: 500, Size: 80},
		{X: 0, Y: 0, Size: 80},
	}

	kept, hits := HitPlayer(append([]Hazard(nil), hazards...), player, 1)
	if hits != 1 || len(kept) != 2 {
		t.Errorf("lives=1: hits=%d kept=%d, want 1 and 2", hits, len(kept))
	}

	kept, hits = HitPlayer(append([]Hazard(nil), hazards...), player, 10)
	if hits != 2 || len(kept) != 1 {
		t.Errorf("lives=10: hits=%d kept=%d, want 2 and 1", hits, len(kept))
	}

	// Touching edges do not collide
	kept, hits = HitPlayer([]Hazard{{X: 400, Y: 440, Size: 80}}, player, 10)
	if hits != 0 || len(kept) != 1 {
		t.Errorf("touching: hits=%d kept=%d", hits, len(kept))
	}
}

func TestResolveArrows(t *testing.T) {
	enemies := []Enemy{
		{X: 100, Y: 50, W: 120, H: 60},
		{X: 150, Y: 80, W: 120, H: 60},
		{X: 500, Y: 50, W: 120, H: 60},
	}
	arrows := []Arrow{
		{X: 160, Y: 110, W: 5, H: 15}, // overlaps the first two after moving
		{X: 700, Y: 10, W: 5, H: 15},  // leaves the top
		{X: 700, Y: 400, W: 5, H: 15}, // misses
	}

	arrows, enemies, kills := ResolveArrows(arrows, enemies, 15)
	if kills != 1 {
		t.Fatalf("kills = %d, want 1", kills)
	}
	if len(enemies) != 2 || enemies[0].X != 150 || enemies[1].X != 500 {
		t.Errorf("enemies = %+v, want first one removed in order", enemies)
	}
	if len(arrows) != 1 || arrows[0].Y != 385 {
		t.Errorf("arrows = %+v, want only the miss at y=385", arrows)
	}
}

func TestEconomy(t *testing.T) {
	e := NewEconomy(config.DefaultDebrisConfig().Economy)

	if e.Purchase(WeaponCrossbow) {
		t.Fatal("purchase with no coins succeeded")
	}
	if e.Take(WeaponCrossbow) {
		t.Fatal("take with empty inventory succeeded")
	}

	e.Credit(7)
	e.Credit(-3)
	if e.Coins() != 7 {
		t.Fatalf("Coins = %d, want 7", e.Coins())
	}

	if !e.Purchase(WeaponCrossbow) {
		t.Fatal("affordable purchase rejected")
	}
	if e.Coins() != 2 || e.Owned(WeaponCrossbow) != 5 {
		t.Errorf("after purchase: coins=%d owned=%d, want 2 and 5", e.Coins(), e.Owned(WeaponCrossbow))
	}
	if e.Purchase(WeaponExplosives) {
		t.Error("purchase above balance succeeded")
	}
	if e.Coins() != 2 {
		t.Errorf("failed purchase changed coins to %d", e.Coins())
	}

	if !e.Take(WeaponCrossbow) || e.Owned(WeaponCrossbow) != 4 {
		t.Errorf("take: owned = %d, want 4", e.Owned(WeaponCrossbow))
	}

	if e.Owned(WeaponCount) != 0 || e.Price(Weapon(-1)) != 0 {
		t.Error("invalid weapon not rejected")
	}
}

func TestWaveTimerPause(t *testing.T) {
	w := NewWaveTimer(30*time.Second, 0)

	w.Pause(10 * time.Second)
	if w.Due(100 * time.Second) {
		t.Fatal("paused timer reported due")
	}
	w.Resume(50 * time.Second)
	if got := w.Remaining(50 * time.Second); got != 20*time.Second {
		t.Errorf("Remaining = %v, want 20s", got)
	}
	if !w.Due(70 * time.Second) {
		t.Error("not due after full running time")
	}
	if n := w.Advance(70 * time.Second); n != 2 || w.Elapsed(70 * time.Second) != 0 {
		t.Errorf("Advance = %d, elapsed %v", n, w.Elapsed(70 * time.Second))
	}
}
