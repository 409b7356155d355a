// Package debris implements Falling Debris: dodge anvils dropped by
// patrolling ravagers, earn coins, and spend them on weapons in the shop.
package debris

import (
	"time"

	"github.com/vovakirdan/tui-debris/internal/config"
	"github.com/vovakirdan/tui-debris/internal/core"
)

// Mode is the top-level state of a session.
type Mode int

const (
	ModePlaying  Mode = iota // Simulation running
	ModeShopping             // Shop open, simulation frozen
	ModeGameOver             // Lives exhausted, terminal
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModePlaying:
		return "playing"
	case ModeShopping:
		return "shopping"
	case ModeGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// stepFunc advances the session by one tick in a given mode.
type stepFunc func(g *Game, in core.InputFrame)

// modeHandlers dispatches a tick to the handler of the current mode.
var modeHandlers = map[Mode]stepFunc{
	ModePlaying:  (*Game).stepPlaying,
	ModeShopping: (*Game).stepShopping,
	ModeGameOver: (*Game).stepGameOver,
}

// Game implements the Falling Debris simulation.
type Game struct {
	cfg        config.DebrisConfig
	runtime    core.RuntimeConfig
	difficulty *config.DifficultyTable
	rates      config.Rates // Rates in effect this frame
	tier       int          // Active difficulty tier

	arena   Arena
	player  Player
	hazards []Hazard
	enemies []Enemy
	arrows  []Arrow

	spawner *Spawner
	economy *Economy
	waves   WaveTimer
	clock   core.Clock

	score     int
	lives     int
	mode      Mode
	tickCount int
	events    []core.Event

	fixedCfg *config.DebrisConfig // Set by NewWithConfig; bypasses file loading
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// New creates a new game that loads its config on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game that always uses cfg instead of loading from disk.
func NewWithConfig(cfg config.DebrisConfig) *Game {
	return &Game{fixedCfg: &cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "debris"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Falling Debris"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	var cfg config.DebrisConfig
	if g.fixedCfg != nil {
		cfg = *g.fixedCfg
	} else {
		loaded, err := config.Load(configPath)
		if err != nil {
			loaded = config.DefaultDebrisConfig()
		}
		// Apply difficulty preset if set
		if difficultyPreset != "" {
			config.ApplyPreset(&loaded, difficultyPreset)
		}
		cfg = loaded
	}
	g.cfg = cfg

	g.difficulty = config.NewDifficultyTable(cfg.Difficulty)
	g.rates = g.difficulty.Rates(0)
	g.tier = 0

	g.arena = NewArena(cfg)
	g.player = NewPlayer(g.arena, cfg.Player.Size)
	g.hazards = g.hazards[:0]
	g.arrows = g.arrows[:0]

	g.spawner = NewSpawner(runtime.Seed, g.arena.Width, cfg.Enemies, cfg.Hazards)
	g.economy = NewEconomy(cfg.Economy)

	if g.clock == nil {
		g.clock = core.NewMonotonicClock()
	}
	g.waves = NewWaveTimer(cfg.Waves.Duration(), g.clock.Now())
	g.enemies = g.spawner.SpawnWave(g.enemies, g.waves.Number, g.rates.EnemySpeed)

	g.score = 0
	g.lives = cfg.Player.Lives
	g.mode = ModePlaying
	g.tickCount = 0
	g.events = g.events[:0]
}

// SetClock replaces the time source used by the wave timer and restarts
// the current wave against it.
func (g *Game) SetClock(c core.Clock) {
	g.clock = c
	g.waves.Restart(c.Now())
}

// Retune applies new tuning to a running session. Rates, prices, rewards and
// physics take effect immediately; arena geometry and entity sizes keep their
// current values until the next Reset.
func (g *Game) Retune(cfg config.DebrisConfig) {
	cfg.Arena = g.cfg.Arena
	cfg.Player.Size = g.cfg.Player.Size
	cfg.Player.Lives = g.cfg.Player.Lives
	cfg.Hazards.Size = g.cfg.Hazards.Size
	cfg.Enemies = g.cfg.Enemies
	cfg.Arrows.Width = g.cfg.Arrows.Width
	cfg.Arrows.Height = g.cfg.Arrows.Height
	if g.fixedCfg == nil && difficultyPreset != "" {
		config.ApplyPreset(&cfg, difficultyPreset)
		cfg.Player.Lives = g.cfg.Player.Lives
	}
	g.cfg = cfg

	g.difficulty = config.NewDifficultyTable(cfg.Difficulty)
	g.rates = g.difficulty.Rates(g.score)
	g.tier = g.difficulty.Tier(g.score)
	g.spawner.UpdateHazards(cfg.Hazards)
	g.economy.SetPrices(cfg.Economy)
	g.waves.SetDuration(cfg.Waves.Duration())
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = g.events[:0]
	modeHandlers[g.mode](g, in)
	return core.StepResult{State: g.State(), Events: g.takeEvents()}
}

// stepPlaying runs one frame of the simulation.
func (g *Game) stepPlaying(in core.InputFrame) {
	now := g.clock.Now()

	if in.Has(core.ActionToggleShop) {
		g.openShop(now)
		return
	}
	if in.Has(core.ActionSkipWave) {
		g.nextWave(now)
	}
	if in.Has(core.ActionFire) {
		g.Consume(WeaponCrossbow)
	}
	if in.Has(core.ActionExplosives) {
		g.Consume(WeaponExplosives)
	}
	if in.Has(core.ActionClearAll) {
		g.Consume(WeaponClearAll)
	}
	if in.Has(core.ActionJump) {
		g.player.Jump(g.cfg.Physics.JumpImpulse)
	}

	g.tickCount++

	// Player
	g.player.Move(in.IsHeld(core.ActionLeft), in.IsHeld(core.ActionRight), g.cfg.Player.MoveSpeed, g.arena)
	g.player.ApplyPhysics(g.arena, g.cfg.Physics)

	// Enemies and drops
	g.spawner.Patrol(g.enemies)
	g.hazards = g.spawner.DropAll(g.enemies, g.hazards, g.rates.DropChance)

	// Hazards
	var dodged, hits int
	g.hazards, dodged = FallHazards(g.hazards, g.rates.FallSpeed, g.arena.Height)
	g.reward(dodged * g.cfg.Economy.Rewards.HazardDodged)

	g.hazards, hits = HitPlayer(g.hazards, g.player.Rect(), g.lives)
	if hits > 0 {
		g.lives -= hits
		g.emit(core.EventLifeLost, "", g.lives)
		if g.lives <= 0 {
			g.lives = 0
			g.mode = ModeGameOver
			g.emit(core.EventGameOver, "", g.score)
			return
		}
	}

	// Arrows
	var kills int
	g.arrows, g.enemies, kills = ResolveArrows(g.arrows, g.enemies, g.cfg.Arrows.Speed)
	if kills > 0 {
		g.reward(kills * g.cfg.Economy.Rewards.EnemyKilled)
		g.emit(core.EventEnemyKilled, "", kills)
	}

	g.updateDifficulty()

	if g.waves.Due(now) {
		g.nextWave(now)
	}
}

// stepShopping handles purchases while the simulation is frozen.
func (g *Game) stepShopping(in core.InputFrame) {
	if in.Has(core.ActionToggleShop) || in.Has(core.ActionCloseShop) {
		g.closeShop(g.clock.Now())
		return
	}

	buys := []struct {
		action core.Action
		weapon Weapon
	}{
		{core.ActionBuy1, WeaponCrossbow},
		{core.ActionBuy2, WeaponExplosives},
		{core.ActionBuy3, WeaponClearAll},
	}
	for _, b := range buys {
		if in.Has(b.action) {
			g.Purchase(b.weapon)
		}
	}
}

// stepGameOver does nothing; the session is finished.
func (g *Game) stepGameOver(core.InputFrame) {}

func (g *Game) openShop(now time.Duration) {
	g.mode = ModeShopping
	g.waves.Pause(now)
	g.emit(core.EventShopOpened, "", g.economy.Coins())
}

func (g *Game) closeShop(now time.Duration) {
	g.mode = ModePlaying
	g.waves.Resume(now)
	g.emit(core.EventShopClosed, "", g.economy.Coins())
}

// nextWave advances the wave counter and repopulates the enemies.
func (g *Game) nextWave(now time.Duration) {
	n := g.waves.Advance(now)
	g.enemies = g.spawner.SpawnWave(g.enemies, n, g.rates.EnemySpeed)
	g.emit(core.EventWaveStarted, "", n)
}

// updateDifficulty recomputes the rates from score.
func (g *Game) updateDifficulty() {
	tier := g.difficulty.Tier(g.score)
	g.rates = g.difficulty.Rates(g.score)
	if tier != g.tier {
		g.tier = tier
		g.emit(core.EventDifficultyChanged, "", tier)
	}
}

// Purchase buys one bundle of w. Only allowed while the shop is open.
func (g *Game) Purchase(w Weapon) bool {
	if g.mode != ModeShopping {
		return false
	}
	if !g.economy.Purchase(w) {
		return false
	}
	g.emit(core.EventPurchase, w.String(), g.economy.Owned(w))
	return true
}

// Consume uses one unit of w and applies its effect. It is a no-op returning
// false when none is owned or the game is not in play.
func (g *Game) Consume(w Weapon) bool {
	if g.mode != ModePlaying || !g.economy.Take(w) {
		return false
	}

	switch w {
	case WeaponCrossbow:
		g.arrows = append(g.arrows, Arrow{
			X: g.player.X + g.player.Size/2,
			Y: g.player.Y,
			W: g.cfg.Arrows.Width,
			H: g.cfg.Arrows.Height,
		})
	case WeaponExplosives:
		killed := len(g.enemies)
		g.enemies = g.enemies[:0]
		g.reward(killed * g.cfg.Economy.Rewards.ExplosivesPerEnemy)
	case WeaponClearAll:
		g.enemies = g.enemies[:0]
		g.hazards = g.hazards[:0]
		g.reward(g.cfg.Economy.Rewards.ClearAll)
	}

	g.emit(core.EventWeaponUsed, w.String(), g.economy.Owned(w))
	return true
}

// reward credits the same amount to coins and score.
func (g *Game) reward(amount int) {
	if amount <= 0 {
		return
	}
	g.economy.Credit(amount)
	g.score += amount
}

func (g *Game) emit(kind core.EventKind, detail string, value int) {
	g.events = append(g.events, core.Event{Kind: kind, Detail: detail, Value: value})
}

// takeEvents returns a copy of this tick's events.
func (g *Game) takeEvents() []core.Event {
	if len(g.events) == 0 {
		return nil
	}
	out := make([]core.Event, len(g.events))
	copy(out, g.events)
	return out
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Wave:     g.waves.Number,
		GameOver: g.mode == ModeGameOver,
		Shopping: g.mode == ModeShopping,
	}
}

// Mode returns the current top-level mode.
func (g *Game) Mode() Mode {
	return g.mode
}
