package core

import "time"

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 30)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Wave     int  // Current wave number
	GameOver bool // Whether the game has ended
	Shopping bool // Whether the shop overlay is open
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// EventKind identifies something notable that happened during a tick.
type EventKind int

const (
	EventWaveStarted EventKind = iota
	EventShopOpened
	EventShopClosed
	EventPurchase
	EventWeaponUsed
	EventEnemyKilled
	EventLifeLost
	EventDifficultyChanged
	EventGameOver
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventWaveStarted:
		return "wave_started"
	case EventShopOpened:
		return "shop_opened"
	case EventShopClosed:
		return "shop_closed"
	case EventPurchase:
		return "purchase"
	case EventWeaponUsed:
		return "weapon_used"
	case EventEnemyKilled:
		return "enemy_killed"
	case EventLifeLost:
		return "life_lost"
	case EventDifficultyChanged:
		return "difficulty_changed"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is a single occurrence reported by the simulation.
// Detail names the item or weapon involved, Value carries the count or amount.
type Event struct {
	Kind   EventKind
	Detail string
	Value  int
}

// Clock is a monotonic time source sampled once per frame.
type Clock interface {
	// Now returns the time elapsed since the clock started.
	Now() time.Duration
}

// MonotonicClock measures elapsed time from its creation using the
// monotonic reading embedded in time.Time.
type MonotonicClock struct {
	start time.Time
}

// NewMonotonicClock starts a clock at the current instant.
func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{start: time.Now()}
}

// Now returns the time elapsed since the clock was created.
func (c *MonotonicClock) Now() time.Duration {
	return time.Since(c.start)
}
