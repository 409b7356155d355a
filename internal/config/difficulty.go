package config

// DifficultyTable maps cumulative score to the global rates.
type DifficultyTable struct {
	cfg DifficultyConfig
}

// NewDifficultyTable creates a difficulty table from config.
// Tiers are expected in ascending order; see Validate.
func NewDifficultyTable(cfg DifficultyConfig) *DifficultyTable {
	return &DifficultyTable{cfg: cfg}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyTable) IsEnabled() bool {
	return d.cfg.Enabled
}

// Rates returns the rates for the given score.
// Every tier the score exceeds is applied in order, so the last match wins.
func (d *DifficultyTable) Rates(score int) Rates {
	rates := d.cfg.Base
	if !d.cfg.Enabled {
		return rates
	}
	for _, t := range d.cfg.Tiers {
		if score > t.Above {
			rates = t.Rates
		}
	}
	return rates
}

// Tier returns the index of the active tier: 0 for base, 1 for the first tier, etc.
func (d *DifficultyTable) Tier(score int) int {
	if !d.cfg.Enabled {
		return 0
	}
	tier := 0
	for i, t := range d.cfg.Tiers {
		if score > t.Above {
			tier = i + 1
		}
	}
	return tier
}

// AtLeast reports whether r is no weaker than other on every rate.
func (r Rates) AtLeast(other Rates) bool {
	return r.FallSpeed >= other.FallSpeed &&
		r.EnemySpeed >= other.EnemySpeed &&
		r.DropChance >= other.DropChance
}
