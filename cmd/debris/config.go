package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-debris/internal/config"
)

var (
	flagInit  bool
	flagForce bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or create the tuning file",
	Long: `Print which tuning file would be loaded. With --init, write the
built-in defaults to ~/.debris/configs/debris.yaml (or the --config path)
so they can be edited.

Examples:
  debris config
  debris config --init
  debris config --init --config ./debris.yaml --force`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagInit, "init", false, "Write the default tuning file")
	configCmd.Flags().BoolVar(&flagForce, "force", false, "Overwrite an existing file with --init")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if !flagInit {
		path := config.ResolvePath(flagConfig)
		if path == "" {
			fmt.Println("Using built-in defaults.")
			return nil
		}
		if _, err := config.LoadFile(path); err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	}

	path := flagConfig
	if path == "" {
		path = config.UserConfigPath()
	}
	if path == "" {
		return fmt.Errorf("no home directory; pass --config")
	}
	if _, err := os.Stat(path); err == nil && !flagForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, config.DefaultYAML(), 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	fmt.Println("Wrote", path)
	return nil
}
