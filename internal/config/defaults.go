package config

import (
	_ "embed"
)

//go:embed defaults/debris.yaml
var defaultDebrisYAML []byte

// DefaultDebrisConfig returns the default game configuration.
// It mirrors defaults/debris.yaml and is used when the embedded YAML cannot be parsed.
func DefaultDebrisConfig() DebrisConfig {
	return DebrisConfig{
		Arena: ArenaConfig{
			Width:     800,
			Height:    600,
			BlockSize: 20,
			Platforms: []PlatformSpec{
				{GridX: 5, GridY: 26, Length: 10},
				{GridX: 25, GridY: 23, Length: 8},
				{GridX: 40, GridY: 25, Length: 6},
			},
		},
		Player: PlayerConfig{
			Size:      60,
			MoveSpeed: 7,
			Lives:     10,
		},
		Physics: PhysicsConfig{
			Gravity:          0.5,
			JumpImpulse:      -10,
			LandingTolerance: 10,
		},
		Hazards: HazardConfig{
			Size:      80,
			MaxActive: 10,
		},
		Enemies: EnemyConfig{
			Width:     120,
			Height:    60,
			TopY:      50,
			RowOffset: 30,
		},
		Arrows: ArrowConfig{
			Speed:  15,
			Width:  5,
			Height: 15,
		},
		Waves: WaveConfig{
			DurationMS: 30_000,
		},
		Economy: EconomyConfig{
			Crossbow:   ItemConfig{Price: 5, Bundle: 5},
			Explosives: ItemConfig{Price: 15, Bundle: 1},
			ClearAll:   ItemConfig{Price: 50, Bundle: 1},
			Rewards: RewardsConfig{
				HazardDodged:       1,
				EnemyKilled:        10,
				ExplosivesPerEnemy: 20,
				ClearAll:           50,
			},
		},
		Difficulty: DifficultyConfig{
			Enabled: true,
			Base:    Rates{FallSpeed: 10, EnemySpeed: 7, DropChance: 0.02},
			Tiers: []Tier{
				{Above: 20, Rates: Rates{FallSpeed: 12, EnemySpeed: 12, DropChance: 0.03}},
				{Above: 40, Rates: Rates{FallSpeed: 13, EnemySpeed: 14, DropChance: 0.04}},
				{Above: 60, Rates: Rates{FallSpeed: 15, EnemySpeed: 16, DropChance: 0.05}},
				{Above: 100, Rates: Rates{FallSpeed: 20, EnemySpeed: 18, DropChance: 0.07}},
				{Above: 500, Rates: Rates{FallSpeed: 35, EnemySpeed: 20, DropChance: 0.1}},
			},
		},
	}
}

// DefaultYAML returns a copy of the embedded default config file.
func DefaultYAML() []byte {
	return append([]byte(nil), defaultDebrisYAML...)
}
