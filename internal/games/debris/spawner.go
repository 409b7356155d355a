package debris

import (
	"math/rand"

	"github.com/vovakirdan/tui-debris/internal/config"
)

// Spawner creates enemy waves, moves the patrol, and rolls hazard drops.
// Wave layout is deterministic; only hazard drops use the RNG.
type Spawner struct {
	rng     *rand.Rand
	arenaW  float64
	enemies config.EnemyConfig
	hazards config.HazardConfig
}

// NewSpawner creates a spawner with the given RNG seed.
func NewSpawner(seed int64, arenaW float64, enemies config.EnemyConfig, hazards config.HazardConfig) *Spawner {
	return &Spawner{
		rng:     rand.New(rand.NewSource(seed)),
		arenaW:  arenaW,
		enemies: enemies,
		hazards: hazards,
	}
}

// UpdateHazards swaps the hazard tuning, e.g. after a config reload.
func (s *Spawner) UpdateHazards(hazards config.HazardConfig) {
	s.hazards = hazards
}

// SpawnWave replaces the contents of dst with exactly n enemies.
// Enemies queue up off the left edge, spaced by half the even spacing
// for n+1 gaps, alternating between two patrol rows.
func (s *Spawner) SpawnWave(dst []Enemy, n int, speed float64) []Enemy {
	dst = dst[:0]
	if n <= 0 {
		return dst
	}

	spacing := int(s.arenaW) / (n + 1)
	for i := 0; i < n; i++ {
		dst = append(dst, Enemy{
			X:     -s.enemies.Width - float64(i*(spacing/2)),
			Y:     s.enemies.TopY + float64(i%2)*s.enemies.RowOffset,
			W:     s.enemies.Width,
			H:     s.enemies.Height,
			Speed: speed,
		})
	}
	return dst
}

// Patrol advances every enemy by its speed, wrapping those that leave the
// right edge back to just off the left edge.
func (s *Spawner) Patrol(enemies []Enemy) {
	for i := range enemies {
		enemies[i].X += enemies[i].Speed
		if enemies[i].X > s.arenaW {
			enemies[i].X = -enemies[i].W
		}
	}
}

// EmitHazard rolls a drop for one enemy. A hazard is produced only while
// fewer than the cap are in flight and the Bernoulli trial succeeds; it
// appears centred under the enemy at its bottom edge.
func (s *Spawner) EmitHazard(e Enemy, active int, dropChance float64) (Hazard, bool) {
	if active >= s.hazards.MaxActive {
		return Hazard{}, false
	}
	if s.rng.Float64() >= dropChance {
		return Hazard{}, false
	}
	return Hazard{
		X:      e.X + e.W/2 - s.hazards.Size/2,
		Y:      e.Y + e.H,
		Size:   s.hazards.Size,
		Sprite: SpriteAnvil,
	}, true
}

// DropAll rolls a drop for every enemy in order and appends the results.
func (s *Spawner) DropAll(enemies []Enemy, hazards []Hazard, dropChance float64) []Hazard {
	for _, e := range enemies {
		if h, ok := s.EmitHazard(e, len(hazards), dropChance); ok {
			hazards = append(hazards, h)
		}
	}
	return hazards
}
