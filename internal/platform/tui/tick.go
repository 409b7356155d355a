// Package tui runs Falling Debris in the terminal with Bubble Tea.
// It owns the frame pacing, key mapping, run persistence and the scoreboard.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-debris/internal/config"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// configReloadedMsg carries tuning re-read from disk by the watcher.
type configReloadedMsg config.DebrisConfig

// configErrorMsg reports a config file that failed to load.
type configErrorMsg struct{ err error }

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(frameInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameInterval converts a tick rate to the time between frames.
// Non-positive rates fall back to 30 fps.
func frameInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 30
	}
	return time.Second / time.Duration(tickRate)
}

// waitForConfig blocks until the watcher delivers a new config or an error.
// Returns nil once the watcher is closed.
func waitForConfig(w *config.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case cfg, ok := <-w.Configs:
			if !ok {
				return nil
			}
			return configReloadedMsg(cfg)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return configErrorMsg{err: err}
		case <-w.Done():
			return nil
		}
	}
}
