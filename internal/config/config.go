// Package config provides YAML-based game configuration loading and
// difficulty management for the debris game.
package config

import "time"

// DebrisConfig contains all tuning for the game.
type DebrisConfig struct {
	Arena      ArenaConfig      `yaml:"arena"`
	Player     PlayerConfig     `yaml:"player"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Hazards    HazardConfig     `yaml:"hazards"`
	Enemies    EnemyConfig      `yaml:"enemies"`
	Arrows     ArrowConfig      `yaml:"arrows"`
	Waves      WaveConfig       `yaml:"waves"`
	Economy    EconomyConfig    `yaml:"economy"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ArenaConfig defines the playfield in pixels.
type ArenaConfig struct {
	Width     float64        `yaml:"width"`
	Height    float64        `yaml:"height"`
	BlockSize float64        `yaml:"block_size"` // Dirt block edge; also wall thickness and ground depth
	Platforms []PlatformSpec `yaml:"platforms"`
}

// PlatformSpec describes one platform row in grid blocks.
type PlatformSpec struct {
	GridX  int `yaml:"grid_x"`
	GridY  int `yaml:"grid_y"`
	Length int `yaml:"length"` // Number of blocks
}

// PlayerConfig defines player parameters.
type PlayerConfig struct {
	Size      float64 `yaml:"size"`
	MoveSpeed float64 `yaml:"move_speed"` // Pixels per frame while a direction is held
	Lives     int     `yaml:"lives"`
}

// PhysicsConfig defines gravity and jumping.
type PhysicsConfig struct {
	Gravity          float64 `yaml:"gravity"`
	JumpImpulse      float64 `yaml:"jump_impulse"`
	LandingTolerance float64 `yaml:"landing_tolerance"` // How far below a platform top the feet may be and still land
}

// HazardConfig defines falling hazard parameters.
type HazardConfig struct {
	Size      float64 `yaml:"size"`
	MaxActive int     `yaml:"max_active"`
}

// EnemyConfig defines patrolling enemy parameters.
type EnemyConfig struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	TopY      float64 `yaml:"top_y"`      // Patrol row of even-indexed enemies
	RowOffset float64 `yaml:"row_offset"` // Extra drop for odd-indexed enemies
}

// ArrowConfig defines crossbow projectile parameters.
type ArrowConfig struct {
	Speed  float64 `yaml:"speed"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// WaveConfig defines wave pacing.
type WaveConfig struct {
	DurationMS int `yaml:"duration_ms"`
}

// Duration returns the wave length as a time.Duration.
func (w WaveConfig) Duration() time.Duration {
	return time.Duration(w.DurationMS) * time.Millisecond
}

// EconomyConfig defines shop prices and combat rewards.
type EconomyConfig struct {
	Crossbow   ItemConfig    `yaml:"crossbow"`
	Explosives ItemConfig    `yaml:"explosives"`
	ClearAll   ItemConfig    `yaml:"clear_all"`
	Rewards    RewardsConfig `yaml:"rewards"`
}

// ItemConfig defines one shop item.
type ItemConfig struct {
	Price  int `yaml:"price"`
	Bundle int `yaml:"bundle"` // Units granted per purchase
}

// RewardsConfig defines coin and score credits.
type RewardsConfig struct {
	HazardDodged       int `yaml:"hazard_dodged"`
	EnemyKilled        int `yaml:"enemy_killed"`
	ExplosivesPerEnemy int `yaml:"explosives_per_enemy"`
	ClearAll           int `yaml:"clear_all"`
}

// DifficultyConfig defines the score-driven rate table.
type DifficultyConfig struct {
	Enabled bool   `yaml:"enabled"`
	Base    Rates  `yaml:"base"`
	Tiers   []Tier `yaml:"tiers"`
}

// Rates is the tuple of global rates that difficulty controls.
type Rates struct {
	FallSpeed  float64 `yaml:"fall_speed"`  // Hazard pixels per frame
	EnemySpeed float64 `yaml:"enemy_speed"` // Enemy pixels per frame, applied to new waves
	DropChance float64 `yaml:"drop_chance"` // Per-enemy per-frame drop probability
}

// Tier replaces the rates once score exceeds Above.
type Tier struct {
	Above int   `yaml:"above"`
	Rates Rates `yaml:",inline"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset.
// Unknown or empty strings return "" which means "use config as loaded".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
