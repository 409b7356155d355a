package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-debris/internal/platform/tui"
	"github.com/vovakirdan/tui-debris/internal/storage"
)

var (
	flagPlain  bool
	flagLimit  int
	flagRecent bool
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the run history",
	Long: `Display recorded runs. In a terminal this opens an interactive
scoreboard; --plain prints a table instead.

Examples:
  debris scores
  debris scores --plain --limit 5
  debris scores --plain --recent
  debris scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain table")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to print with --plain")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "List the most recent runs instead of the best")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.Clear(); err != nil {
			return fmt.Errorf("clearing scores: %w", err)
		}
		fmt.Println("All runs deleted.")
		return nil
	}

	if !flagPlain && term.IsTerminal(int(os.Stdout.Fd())) {
		width, height := 80, 24
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, width, height)
	}

	return printScores(os.Stdout, store, flagLimit, flagRecent)
}

// printScores writes a plain run table followed by the aggregate stats.
func printScores(out io.Writer, store *storage.Store, limit int, recent bool) error {
	title := "Top Runs"
	runs, err := store.TopRuns(limit)
	if recent {
		title = "Recent Runs"
		runs, err = store.RecentRuns(limit)
	}
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}

	fmt.Fprintf(out, "Falling Debris - %s\n\n", title)

	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'debris play' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Fprintf(out, "  %-4s  %-8s  %-5s  %-6s  %-7s  %s\n", "Rank", "Score", "Wave", "Coins", "Mode", "Date")
	fmt.Fprintf(out, "  %-4s  %-8s  %-5s  %-6s  %-7s  %s\n", "----", "-----", "----", "-----", "----", "----")

	for i, r := range runs {
		mode := r.Difficulty
		if mode == "" {
			mode = "-"
		}
		fmt.Fprintf(out, "  %-4d  %-8d  %-5d  %-6d  %-7s  %s\n",
			i+1, r.Score, r.Wave, r.Coins, mode, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats()
	if err == nil {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Runs: %d  Best: %d  Best wave: %d  Avg: %.1f\n",
			stats.Runs, stats.HighScore, stats.BestWave, stats.AvgScore)
	}
	return nil
}
