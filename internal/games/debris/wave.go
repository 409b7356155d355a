package debris

import "time"

// WaveTimer tracks the current wave and when it started.
// Time only counts while the timer is running; the shop pauses it.
type WaveTimer struct {
	Number   int
	duration time.Duration
	start    time.Duration // Clock reading when the wave started, shifted by paused time
	pausedAt time.Duration
	paused   bool
}

// NewWaveTimer starts wave 1 at now.
func NewWaveTimer(duration time.Duration, now time.Duration) WaveTimer {
	return WaveTimer{Number: 1, duration: duration, start: now}
}

// Restart keeps the wave number but restarts its clock at now.
func (w *WaveTimer) Restart(now time.Duration) {
	w.start = now
	w.paused = false
}

// SetDuration changes the wave length for the current and future waves.
func (w *WaveTimer) SetDuration(d time.Duration) {
	w.duration = d
}

// Elapsed returns the running time of the current wave.
func (w WaveTimer) Elapsed(now time.Duration) time.Duration {
	if w.paused {
		now = w.pausedAt
	}
	return now - w.start
}

// Remaining returns the time left before the wave advances on its own.
func (w WaveTimer) Remaining(now time.Duration) time.Duration {
	return max(w.duration-w.Elapsed(now), 0)
}

// Due reports whether the wave has run its full duration.
func (w WaveTimer) Due(now time.Duration) bool {
	return !w.paused && w.Elapsed(now) >= w.duration
}

// Advance moves to the next wave and restarts the clock.
// Returns the new wave number.
func (w *WaveTimer) Advance(now time.Duration) int {
	w.Number++
	w.Restart(now)
	return w.Number
}

// Pause freezes the wave clock at now.
func (w *WaveTimer) Pause(now time.Duration) {
	if w.paused {
		return
	}
	w.paused = true
	w.pausedAt = now
}

// Resume continues the wave clock, discounting the time spent paused.
func (w *WaveTimer) Resume(now time.Duration) {
	if !w.paused {
		return
	}
	w.start += now - w.pausedAt
	w.paused = false
}
