package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-debris/internal/config"
	"github.com/vovakirdan/tui-debris/internal/core"
	"github.com/vovakirdan/tui-debris/internal/games/debris"
	"github.com/vovakirdan/tui-debris/internal/session"
	"github.com/vovakirdan/tui-debris/internal/storage"
)

// helpRows is the number of terminal rows reserved below the game screen.
const helpRows = 1

// Options configures a terminal session.
type Options struct {
	Runtime    core.RuntimeConfig
	Store      *storage.Store  // Optional; runs are not saved when nil
	Logger     *log.Logger     // Optional; discards when nil
	Watcher    *config.Watcher // Optional; enables hot reload of tuning
	Difficulty string          // Preset name recorded with each run
}

// Model is the Bubble Tea model for a Falling Debris session.
type Model struct {
	game       *debris.Game
	screen     *core.Screen
	recorder   *session.Recorder
	logger     *log.Logger
	watcher    *config.Watcher
	config     core.RuntimeConfig
	fixedSeed  bool
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	held       map[core.Action]int // Remaining ticks each direction stays held
	holdTicks  int
	gameState  core.GameState
	quitting   bool
}

// NewModel creates a new Bubble Tea model and starts a fresh game.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	fixedSeed := cfg.Seed != 0
	if !fixedSeed {
		cfg.Seed = time.Now().UnixNano()
	}

	recorder := session.NewRecorder(opts.Store, opts.Logger, opts.Difficulty)

	h := help.New()
	h.Width = cfg.ScreenW

	m := Model{
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-helpRows, 1)),
		recorder:   recorder,
		logger:     recorder.Logger(),
		watcher:    opts.Watcher,
		config:     cfg,
		fixedSeed:  fixedSeed,
		keys:       DefaultKeyMap(),
		help:       h,
		inputFrame: core.NewInputFrame(),
		held:       make(map[core.Action]int),
		holdTicks:  holdTicksFor(cfg.TickRate),
	}
	m.newGame()
	return m
}

// holdTicksFor returns how many ticks a direction stays held after one key
// event. Terminals only report presses and auto-repeats, never releases, so
// a press holds for roughly a fifth of a second and repeats extend it.
func holdTicksFor(tickRate int) int {
	if tickRate <= 0 {
		tickRate = 30
	}
	return max(tickRate/5, 1)
}

// newGame replaces the session with a fresh game.
func (m *Model) newGame() {
	m.game = debris.New()
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	clear(m.held)
	m.inputFrame.Clear()
	m.recorder.Start(m.config.Seed)
}

// Init starts the tick loop and, when enabled, the config watcher.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.config.TickRate), waitForConfig(m.watcher))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case configReloadedMsg:
		m.game.Retune(config.DebrisConfig(msg))
		m.logger.Info("config reloaded", "path", m.watcher.Path())
		return m, waitForConfig(m.watcher)

	case configErrorMsg:
		m.logger.Warn("config reload failed", "error", msg.err)
		return m, waitForConfig(m.watcher)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.MapKey(msg)
	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionLeft:
		m.held[core.ActionLeft] = m.holdTicks
		delete(m.held, core.ActionRight)
	case core.ActionRight:
		m.held[core.ActionRight] = m.holdTicks
		delete(m.held, core.ActionLeft)
	case core.ActionRestart:
		if m.gameState.GameOver {
			m.inputFrame.Set(core.ActionRestart)
		}
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events.
// The arena is scaled to the screen, so the game itself is not reset.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-helpRows, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		if !m.fixedSeed {
			m.config.Seed = time.Now().UnixNano()
		}
		m.newGame()
		return m, tickCmd(m.config.TickRate)
	}

	for a, n := range m.held {
		m.inputFrame.Hold(a)
		if n <= 1 {
			delete(m.held, a)
		} else {
			m.held[a] = n - 1
		}
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.recorder.Observe(result, m.game.Coins())

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".debris", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	filename := fmt.Sprintf("debris_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	bindings := m.keys.ShortHelp()
	if m.gameState.Shopping {
		bindings = m.keys.ShopHelp()
	}
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.ShortHelpView(bindings))
}

// Run starts the Bubble Tea program for one terminal session.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
