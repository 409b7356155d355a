package debris

import (
	"time"

	"github.com/vovakirdan/tui-debris/internal/config"
)

// InventoryLine is one row of the inventory / shop listing.
type InventoryLine struct {
	Weapon Weapon
	Owned  int
	Price  int
	Bundle int
}

// Snapshot is a read-only copy of everything a frontend needs to draw a frame.
// Slices are copies; mutating them does not affect the game.
type Snapshot struct {
	Tick  int
	Mode  Mode
	Score int
	Coins int
	Lives int
	Wave  int

	WaveRemaining time.Duration
	Rates         config.Rates
	Tier          int

	Arena   Arena
	Player  Player
	Hazards []Hazard
	Enemies []Enemy
	Arrows  []Arrow

	Inventory []InventoryLine
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	inv := make([]InventoryLine, 0, WeaponCount)
	for _, w := range Weapons {
		inv = append(inv, InventoryLine{
			Weapon: w,
			Owned:  g.economy.Owned(w),
			Price:  g.economy.Price(w),
			Bundle: g.economy.Bundle(w),
		})
	}

	return Snapshot{
		Tick:          g.tickCount,
		Mode:          g.mode,
		Score:         g.score,
		Coins:         g.economy.Coins(),
		Lives:         g.lives,
		Wave:          g.waves.Number,
		WaveRemaining: g.waves.Remaining(g.clock.Now()),
		Rates:         g.rates,
		Tier:          g.tier,
		Arena:         g.arena,
		Player:        g.player,
		Hazards:       append([]Hazard(nil), g.hazards...),
		Enemies:       append([]Enemy(nil), g.enemies...),
		Arrows:        append([]Arrow(nil), g.arrows...),
		Inventory:     inv,
	}
}

// Coins returns the current coin balance.
func (g *Game) Coins() int {
	return g.economy.Coins()
}

// Rates returns the difficulty rates in effect.
func (g *Game) Rates() config.Rates {
	return g.rates
}
