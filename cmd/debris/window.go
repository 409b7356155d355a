package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-debris/internal/platform/desktop"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start a game in a desktop window. Controls match 'debris play';
movement keys are polled every frame, so holding them moves smoothly.

Examples:
  debris window
  debris window --scale 1.5`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size relative to the 800x600 arena")
}

func runWindow(_ *cobra.Command, _ []string) error {
	s, err := openSession(0, 0)
	if err != nil {
		return err
	}
	defer s.Close()

	return desktop.Run(desktop.Options{
		Runtime:    s.runtime,
		Store:      s.store,
		Logger:     s.logger,
		Watcher:    s.watcher,
		Difficulty: flagDifficulty,
		Scale:      flagScale,
	})
}
