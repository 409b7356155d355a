package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-debris/internal/config"
	"github.com/vovakirdan/tui-debris/internal/core"
	"github.com/vovakirdan/tui-debris/internal/games/debris"
	"github.com/vovakirdan/tui-debris/internal/storage"
)

const defaultLogPath = "~/.debris/debris.log"

// session bundles the resources a front end needs for one run of the program.
type session struct {
	runtime core.RuntimeConfig
	logger  *log.Logger
	store   *storage.Store
	watcher *config.Watcher
	closers []io.Closer
}

// openSession applies the global flags and opens logging, storage and the
// optional config watcher. An invalid --config file or a broken log path is
// fatal.
func openSession(screenW, screenH int) (*session, error) {
	if flagConfig != "" {
		if _, err := config.Load(flagConfig); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
	}
	debris.SetConfigPath(flagConfig)
	debris.SetDifficultyPreset(flagDifficulty)

	s := &session{
		runtime: core.RuntimeConfig{
			ScreenW:  screenW,
			ScreenH:  screenH,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
	}

	logOut, err := openLog(flagLogPath)
	if err != nil {
		return nil, err
	}
	if c, ok := logOut.(io.Closer); ok && logOut != os.Stderr {
		s.closers = append(s.closers, c)
	}
	s.logger = log.NewWithOptions(logOut, log.Options{
		ReportTimestamp: true,
		Prefix:          "debris",
		Level:           log.DebugLevel,
	})

	store, err := storage.Open(flagDBPath)
	if err != nil {
		// Continue without storage - game still works
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		s.logger.Warn("scores database unavailable", "error", err)
	} else {
		s.store = store
		s.closers = append(s.closers, store)
	}

	if flagWatch {
		path := config.ResolvePath(flagConfig)
		if path == "" {
			path = config.UserConfigPath()
			fmt.Fprintf(os.Stderr, "Warning: no config file to watch; create %s with 'debris config --init'\n", path)
		} else if w, werr := config.NewWatcher(path); werr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not watch config: %v\n", werr)
		} else {
			s.watcher = w
			s.closers = append(s.closers, w)
			s.logger.Info("watching config", "path", path)
		}
	}

	return s, nil
}

// Close releases everything opened by openSession, newest first.
func (s *session) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i].Close()
	}
}

// openLog opens the log destination. "-" logs to stderr.
func openLog(path string) (io.Writer, error) {
	if path == "-" {
		return os.Stderr, nil
	}
	path = expandHome(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("log: create directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("log: open %s: %w", path, err)
	}
	return f, nil
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
