package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded default failed to parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultDebrisConfig()) {
		t.Errorf("embedded YAML and DefaultDebrisConfig() differ:\n%+v\n%+v", cfg, DefaultDebrisConfig())
	}
}

func TestDifficultyRatesByScore(t *testing.T) {
	table := NewDifficultyTable(DefaultDebrisConfig().Difficulty)

	tests := []struct {
		score    int
		expected Rates
		tier     int
	}{
		{0, Rates{10, 7, 0.02}, 0},
		{20, Rates{10, 7, 0.02}, 0}, // thresholds are strict
		{21, Rates{12, 12, 0.03}, 1},
		{40, Rates{12, 12, 0.03}, 1},
		{41, Rates{13, 14, 0.04}, 2},
		{61, Rates{15, 16, 0.05}, 3},
		{101, Rates{20, 18, 0.07}, 4},
		{501, Rates{35, 20, 0.1}, 5},
		{100000, Rates{35, 20, 0.1}, 5},
	}

	for _, tc := range tests {
		got := table.Rates(tc.score)
		if got != tc.expected {
			t.Errorf("Rates(%d) = %+v, expected %+v", tc.score, got, tc.expected)
		}
		if tier := table.Tier(tc.score); tier != tc.tier {
			t.Errorf("Tier(%d) = %d, expected %d", tc.score, tier, tc.tier)
		}
	}
}

func TestDifficultyMonotonic(t *testing.T) {
	table := NewDifficultyTable(DefaultDebrisConfig().Difficulty)

	prev := table.Rates(0)
	for score := 1; score <= 1000; score++ {
		cur := table.Rates(score)
		if !cur.AtLeast(prev) {
			t.Fatalf("rates got weaker between score %d and %d: %+v -> %+v", score-1, score, prev, cur)
		}
		prev = cur
	}
}

func TestDifficultyDisabled(t *testing.T) {
	cfg := DefaultDebrisConfig()
	ApplyPreset(&cfg, DifficultyFixed)
	table := NewDifficultyTable(cfg.Difficulty)

	if table.IsEnabled() {
		t.Error("table should report disabled")
	}
	if got := table.Rates(1000); got != DefaultDebrisConfig().Difficulty.Base {
		t.Errorf("disabled table should stay at base rates, got %+v", got)
	}
	if table.Tier(1000) != 0 {
		t.Error("disabled table should stay at tier 0")
	}
}

func TestValidateRejectsBadTiers(t *testing.T) {
	cfg := DefaultDebrisConfig()
	cfg.Difficulty.Tiers[1].Above = 10             // not ascending
	cfg.Difficulty.Tiers[2].Rates.FallSpeed = 1    // easier than previous
	cfg.Difficulty.Tiers[3].Rates.DropChance = 1.5 // not a probability

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() should fail")
	}
	msg := err.Error()
	for _, want := range []string{"tier 1: threshold", "tier 2: rates must not decrease", "tier 3: drop_chance"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error %q should mention %q", msg, want)
		}
	}
}

func TestValidateRejectsBadEconomy(t *testing.T) {
	cfg := DefaultDebrisConfig()
	cfg.Economy.Crossbow.Bundle = 0
	cfg.Economy.ClearAll.Price = -1

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() should fail")
	}
	if !strings.Contains(err.Error(), "crossbow: bundle") || !strings.Contains(err.Error(), "clear_all: price") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte("player:\n  lives: 3\nwaves:\n  duration_ms: 5000\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Player.Lives != 3 {
		t.Errorf("lives = %d, expected 3", cfg.Player.Lives)
	}
	if cfg.Waves.Duration() != 5*time.Second {
		t.Errorf("wave duration = %v, expected 5s", cfg.Waves.Duration())
	}
	// Untouched sections keep defaults
	if cfg.Player.Size != 60 || len(cfg.Difficulty.Tiers) != 5 {
		t.Errorf("missing fields should keep defaults, got %+v", cfg.Player)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of a missing custom file should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("player:\n  lives: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() of an invalid config should fail")
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		lives   int
		price   int
		enabled bool
	}{
		{DifficultyEasy, 15, 5, true},
		{DifficultyNormal, 10, 5, true},
		{DifficultyHard, 5, 8, true},
		{DifficultyFixed, 10, 5, false},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultDebrisConfig()
			ApplyPreset(&cfg, tc.preset)
			if cfg.Player.Lives != tc.lives {
				t.Errorf("lives = %d, expected %d", cfg.Player.Lives, tc.lives)
			}
			if cfg.Economy.Crossbow.Price != tc.price {
				t.Errorf("crossbow price = %d, expected %d", cfg.Economy.Crossbow.Price, tc.price)
			}
			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("difficulty enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("ParsePreset(hard) should return DifficultyHard")
	}
	if ParsePreset("nightmare") != "" {
		t.Error("unknown presets should map to empty")
	}
	if !IsFixedPreset(ParsePreset("fixed")) {
		t.Error("fixed should be a fixed preset")
	}
}

func TestWatcherReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "debris.yaml")
	if err := os.WriteFile(path, DefaultYAML(), 0o600); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher() failed: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("player:\n  lives: 7\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-w.Configs:
		if cfg.Player.Lives != 7 {
			t.Errorf("reloaded lives = %d, expected 7", cfg.Player.Lives)
		}
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for reload")
	}

	if err := w.Close(); err != nil {
		t.Errorf("Close() failed: %v", err)
	}
	// Second close is a no-op
	if err := w.Close(); err != nil {
		t.Errorf("second Close() failed: %v", err)
	}
}

func TestDefaultYAMLIsACopy(t *testing.T) {
	data := DefaultYAML()
	if _, err := parse(data); err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}

	data[0] = '!'
	if DefaultYAML()[0] == '!' {
		t.Error("DefaultYAML returned the embedded slice")
	}
}
