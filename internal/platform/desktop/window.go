// Package desktop runs Falling Debris in a native window with Ebitengine.
// The simulation is the same one the terminal front end drives; only input
// polling and drawing differ.
package desktop

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-debris/internal/config"
	"github.com/vovakirdan/tui-debris/internal/core"
	"github.com/vovakirdan/tui-debris/internal/games/debris"
	"github.com/vovakirdan/tui-debris/internal/session"
	"github.com/vovakirdan/tui-debris/internal/storage"
)

// Title is the window caption.
const Title = "Falling Debris"

// Options configures a window session.
type Options struct {
	Runtime    core.RuntimeConfig
	Store      *storage.Store  // Optional; runs are not saved when nil
	Logger     *log.Logger     // Optional; discards when nil
	Watcher    *config.Watcher // Optional; enables hot reload of tuning
	Difficulty string          // Preset name recorded with each run
	Scale      float64         // Window size relative to the arena; 0 means 1
}

// Window implements ebiten.Game around one debris session.
type Window struct {
	game      *debris.Game
	snap      debris.Snapshot
	recorder  *session.Recorder
	logger    *log.Logger
	watcher   *config.Watcher
	config    core.RuntimeConfig
	fixedSeed bool
	keys      KeySource
	bindings  []Binding
	input     core.InputFrame
	state     core.GameState
}

// NewWindow creates a window session and starts a fresh game.
func NewWindow(opts Options) *Window {
	cfg := opts.Runtime
	fixedSeed := cfg.Seed != 0
	if !fixedSeed {
		cfg.Seed = time.Now().UnixNano()
	}

	recorder := session.NewRecorder(opts.Store, opts.Logger, opts.Difficulty)
	w := &Window{
		recorder:  recorder,
		logger:    recorder.Logger(),
		watcher:   opts.Watcher,
		config:    cfg,
		fixedSeed: fixedSeed,
		keys:      ebitenKeys{},
		bindings:  DefaultBindings(),
		input:     core.NewInputFrame(),
	}
	w.newGame()
	return w
}

func (w *Window) newGame() {
	w.game = debris.New()
	w.game.Reset(w.config)
	w.state = w.game.State()
	w.snap = w.game.Snapshot()
	w.recorder.Start(w.config.Seed)
}

// Update advances the simulation by one tick.
func (w *Window) Update() error {
	w.drainConfig()

	w.input.Clear()
	poll(w.keys, w.bindings, &w.input)

	if w.input.Has(core.ActionQuit) {
		return ebiten.Termination
	}
	if w.state.GameOver {
		if w.input.Has(core.ActionRestart) {
			if !w.fixedSeed {
				w.config.Seed = time.Now().UnixNano()
			}
			w.newGame()
		}
		return nil
	}

	result := w.game.Step(w.input)
	w.state = result.State
	w.recorder.Observe(result, w.game.Coins())
	w.snap = w.game.Snapshot()
	return nil
}

// drainConfig applies any tuning the watcher delivered since the last tick.
func (w *Window) drainConfig() {
	if w.watcher == nil {
		return
	}
	for {
		select {
		case cfg, ok := <-w.watcher.Configs:
			if !ok {
				return
			}
			w.game.Retune(cfg)
			w.logger.Info("config reloaded", "path", w.watcher.Path())
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("config reload failed", "error", err)
		default:
			return
		}
	}
}

// Draw renders the last snapshot.
func (w *Window) Draw(screen *ebiten.Image) {
	drawFrame(screen, w.snap)
}

// Layout keeps the logical screen at arena size; Ebitengine scales it to the window.
func (w *Window) Layout(_, _ int) (int, int) {
	return int(w.snap.Arena.Width), int(w.snap.Arena.Height)
}

// Run opens the window and blocks until it is closed or the player quits.
func Run(opts Options) error {
	w := NewWindow(opts)

	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	width, height := w.Layout(0, 0)
	ebiten.SetWindowSize(int(float64(width)*scale), int(float64(height)*scale))
	ebiten.SetWindowTitle(Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	tps := w.config.TickRate
	if tps <= 0 {
		tps = 30
	}
	ebiten.SetTPS(tps)

	return ebiten.RunGame(w)
}
