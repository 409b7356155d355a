// Package session holds the bookkeeping shared by the front ends: logging
// simulation events and persisting each finished run exactly once.
package session

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-debris/internal/core"
	"github.com/vovakirdan/tui-debris/internal/storage"
)

// Recorder observes step results for one game at a time.
type Recorder struct {
	store      *storage.Store
	logger     *log.Logger
	difficulty string
	seed       int64
	startedAt  time.Time
	saved      bool
	now        func() time.Time
}

// NewRecorder creates a recorder. A nil store disables saving and a nil
// logger discards output.
func NewRecorder(store *storage.Store, logger *log.Logger, difficulty string) *Recorder {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Recorder{
		store:      store,
		logger:     logger,
		difficulty: difficulty,
		now:        time.Now,
	}
}

// Logger returns the logger events are written to.
func (r *Recorder) Logger() *log.Logger {
	return r.logger
}

// Start marks the beginning of a new game played with seed.
func (r *Recorder) Start(seed int64) {
	r.seed = seed
	r.startedAt = r.now()
	r.saved = false
	r.logger.Info("game started", "seed", seed, "difficulty", r.difficulty)
}

// Saved reports whether the current game has already been recorded.
func (r *Recorder) Saved() bool {
	return r.saved
}

// Observe logs the events of one step and records the run when it ends.
func (r *Recorder) Observe(res core.StepResult, coins int) {
	for _, e := range res.Events {
		switch e.Kind {
		case core.EventGameOver, core.EventWaveStarted, core.EventDifficultyChanged:
			r.logger.Info(e.Kind.String(), "value", e.Value, "score", res.State.Score, "wave", res.State.Wave)
		default:
			r.logger.Debug(e.Kind.String(), "detail", e.Detail, "value", e.Value)
		}
	}

	if res.State.GameOver {
		r.finish(res.State, coins)
	}
}

// finish saves the run once. Runs that never scored are not kept.
func (r *Recorder) finish(state core.GameState, coins int) {
	if r.saved {
		return
	}
	r.saved = true
	if r.store == nil || state.Score <= 0 {
		return
	}

	run := storage.Run{
		Score:      state.Score,
		Wave:       state.Wave,
		Coins:      coins,
		Difficulty: r.difficulty,
		Seed:       r.seed,
		Duration:   r.now().Sub(r.startedAt),
	}
	if _, err := r.store.SaveRun(run); err != nil {
		r.logger.Error("could not save run", "error", err)
		return
	}
	r.logger.Info("run saved", "score", run.Score, "wave", run.Wave)
}
