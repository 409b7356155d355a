package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-debris/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Left/Right, A/D  - Move
  Up/Space/W       - Jump
  C                - Fire crossbow
  E                - Use explosives
  N                - Use clear-all
  K                - Skip to the next wave
  S                - Open/close the shop (1-3 buy, Esc closes)
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - 15 lives
  normal - 10 lives
  hard   - 5 lives, prices +50%
  fixed  - No difficulty tiers

Examples:
  debris play
  debris play --difficulty easy
  debris play --config ./my-debris.yaml --watch`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	s, err := openSession(width, height)
	if err != nil {
		return err
	}
	defer s.Close()

	return tui.Run(tui.Options{
		Runtime:    s.runtime,
		Store:      s.store,
		Logger:     s.logger,
		Watcher:    s.watcher,
		Difficulty: flagDifficulty,
	})
}
