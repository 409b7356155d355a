package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-debris/internal/core"
	"github.com/vovakirdan/tui-debris/internal/storage"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKeyCoversEveryAction(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		msg  tea.KeyMsg
		want core.Action
	}{
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{runeKey("a"), core.ActionLeft},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{runeKey("d"), core.ActionRight},
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionJump},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionJump},
		{runeKey("c"), core.ActionFire},
		{runeKey("e"), core.ActionExplosives},
		{runeKey("n"), core.ActionClearAll},
		{runeKey("k"), core.ActionSkipWave},
		{runeKey("s"), core.ActionToggleShop},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionCloseShop},
		{runeKey("1"), core.ActionBuy1},
		{runeKey("2"), core.ActionBuy2},
		{runeKey("3"), core.ActionBuy3},
		{runeKey("r"), core.ActionRestart},
		{runeKey("q"), core.ActionQuit},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{runeKey("x"), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.msg.String(), func(t *testing.T) {
			if got := km.MapKey(tt.msg); got != tt.want {
				t.Errorf("MapKey(%q) = %s, want %s", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func newTestModel(t *testing.T, store *storage.Store) Model {
	t.Helper()
	return NewModel(Options{
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 7},
		Store:   store,
	})
}

func step(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model
}

func TestHeldKeyEmulation(t *testing.T) {
	m := newTestModel(t, nil)
	x0 := m.game.Snapshot().Player.X

	m = step(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	for range m.holdTicks + 5 {
		m = step(t, m, TickMsg{})
	}

	moved := x0 - m.game.Snapshot().Player.X
	if want := float64(m.holdTicks) * 7; moved != want {
		t.Errorf("moved %v px, want %v (one press holds for %d ticks)", moved, want, m.holdTicks)
	}
}

func TestOppositeDirectionCancelsHold(t *testing.T) {
	m := newTestModel(t, nil)

	m = step(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = step(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if _, ok := m.held[core.ActionLeft]; ok {
		t.Error("left still held after pressing right")
	}
	if m.held[core.ActionRight] != m.holdTicks {
		t.Errorf("right held for %d ticks, want %d", m.held[core.ActionRight], m.holdTicks)
	}
}

func TestShopKeyOpensShop(t *testing.T) {
	m := newTestModel(t, nil)

	m = step(t, m, runeKey("s"))
	m = step(t, m, TickMsg{})
	if !m.gameState.Shopping {
		t.Fatal("shop not open after pressing s")
	}
	if !strings.Contains(m.View(), "SHOP") {
		t.Error("shop overlay missing from view")
	}
}

func TestGameOverSavesRun(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m := newTestModel(t, store)
	m.recorder.Observe(core.StepResult{State: core.GameState{Score: 42, Wave: 3, GameOver: true}}, 5)
	m.recorder.Observe(core.StepResult{State: core.GameState{Score: 42, Wave: 3, GameOver: true}}, 5)

	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("saved %d runs, want 1", len(runs))
	}
	if runs[0].Score != 42 || runs[0].Wave != 3 || runs[0].Seed != 7 {
		t.Errorf("saved run = %+v", runs[0])
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	m := newTestModel(t, nil)
	old := m.game

	// Restart is ignored while playing
	m = step(t, m, runeKey("r"))
	m = step(t, m, TickMsg{})
	if m.game != old {
		t.Fatal("restarted mid-game")
	}

	m.gameState.GameOver = true
	m.recorder.Observe(core.StepResult{State: m.gameState}, 0)
	m = step(t, m, runeKey("r"))
	m = step(t, m, TickMsg{})
	if m.game == old {
		t.Fatal("game not replaced on restart")
	}
	if m.gameState.GameOver || m.recorder.Saved() {
		t.Errorf("state not reset: %+v saved=%v", m.gameState, m.recorder.Saved())
	}
	if m.config.Seed != 7 {
		t.Errorf("fixed seed changed to %d", m.config.Seed)
	}
}

func TestResizeKeepsGame(t *testing.T) {
	m := newTestModel(t, nil)
	g := m.game

	m = step(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.game != g {
		t.Error("resize replaced the game")
	}
	if m.screen.Width() != 120 || m.screen.Height() != 40-helpRows {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
}

func TestHoldTicksFor(t *testing.T) {
	tests := []struct {
		rate int
		want int
	}{
		{30, 6},
		{60, 12},
		{0, 6},
		{3, 1},
	}
	for _, tt := range tests {
		if got := holdTicksFor(tt.rate); got != tt.want {
			t.Errorf("holdTicksFor(%d) = %d, want %d", tt.rate, got, tt.want)
		}
	}
}

func TestRenderScreenColors(t *testing.T) {
	s := core.NewScreen(4, 1)
	s.SetColored(0, 0, 'A', core.ColorBrown)
	s.SetColored(1, 0, 'B', core.ColorBrown)
	s.Set(2, 0, 'C')

	out := RenderScreen(s)
	if !strings.Contains(out, "AB") || !strings.Contains(out, "C") {
		t.Errorf("RenderScreen() = %q", out)
	}
}
