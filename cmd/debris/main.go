// debris is a small 2D arcade game: dodge falling anvils, shoot the enemies
// that drop them and spend coins on weapons between waves.
//
// Usage:
//
//	debris play              - Play in the terminal
//	debris window            - Play in a desktop window
//	debris scores            - Show the run history
//	debris config            - Show or create the tuning file
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 30)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.debris/scores.db)
//	--config <path>       - Use a custom tuning file
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log <path>          - Log file (default: ~/.debris/debris.log, "-" for stderr)
//	--watch               - Reload tuning when the config file changes
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-debris/internal/config"
	"github.com/vovakirdan/tui-debris/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogPath    string
	flagWatch      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "debris",
	Short: "Falling Debris - dodge the anvils",
	Long: `Falling Debris is a small arcade game. Enemies patrol the top of the
arena and drop anvils; dodge them, shoot the enemies with a crossbow and
spend the coins you earn on weapons in the shop.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  scores   - View the run history
  config   - Show or create the tuning file

Examples:
  debris play
  debris play --difficulty hard --seed 42
  debris window --watch
  debris scores --plain`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: validateFlags,
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagLogPath, "log", defaultLogPath, `Log file ("-" for stderr)`)
	pf.BoolVar(&flagWatch, "watch", false, "Reload tuning when the config file changes")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

func validateFlags(_ *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	return nil
}
