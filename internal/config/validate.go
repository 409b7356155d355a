package config

import (
	"errors"
	"fmt"
)

// Validate checks the configuration for values the simulation cannot run with.
// All problems are reported together.
func (c DebrisConfig) Validate() error {
	var errs []error

	if c.Arena.Width <= 0 || c.Arena.Height <= 0 {
		errs = append(errs, fmt.Errorf("arena: size must be positive, got %vx%v", c.Arena.Width, c.Arena.Height))
	}
	if c.Arena.BlockSize <= 0 {
		errs = append(errs, fmt.Errorf("arena: block_size must be positive, got %v", c.Arena.BlockSize))
	}
	for i, p := range c.Arena.Platforms {
		if p.Length <= 0 {
			errs = append(errs, fmt.Errorf("arena: platform %d: length must be positive, got %d", i, p.Length))
		}
	}
	if c.Player.Size <= 0 {
		errs = append(errs, fmt.Errorf("player: size must be positive, got %v", c.Player.Size))
	}
	if c.Player.Size+2*c.Arena.BlockSize > c.Arena.Width {
		errs = append(errs, errors.New("player: does not fit between the walls"))
	}
	if c.Player.Lives <= 0 {
		errs = append(errs, fmt.Errorf("player: lives must be positive, got %d", c.Player.Lives))
	}
	if c.Physics.Gravity <= 0 {
		errs = append(errs, fmt.Errorf("physics: gravity must be positive, got %v", c.Physics.Gravity))
	}
	if c.Physics.JumpImpulse >= 0 {
		errs = append(errs, fmt.Errorf("physics: jump_impulse must be negative, got %v", c.Physics.JumpImpulse))
	}
	if c.Hazards.MaxActive < 0 {
		errs = append(errs, fmt.Errorf("hazards: max_active must not be negative, got %d", c.Hazards.MaxActive))
	}
	if c.Arrows.Speed <= 0 {
		errs = append(errs, fmt.Errorf("arrows: speed must be positive, got %v", c.Arrows.Speed))
	}
	if c.Waves.DurationMS <= 0 {
		errs = append(errs, fmt.Errorf("waves: duration_ms must be positive, got %d", c.Waves.DurationMS))
	}

	items := []struct {
		name string
		item ItemConfig
	}{
		{"crossbow", c.Economy.Crossbow},
		{"explosives", c.Economy.Explosives},
		{"clear_all", c.Economy.ClearAll},
	}
	for _, it := range items {
		if it.item.Price < 0 {
			errs = append(errs, fmt.Errorf("economy: %s: price must not be negative, got %d", it.name, it.item.Price))
		}
		if it.item.Bundle <= 0 {
			errs = append(errs, fmt.Errorf("economy: %s: bundle must be positive, got %d", it.name, it.item.Bundle))
		}
	}

	errs = append(errs, c.Difficulty.validate()...)
	return errors.Join(errs...)
}

// validate checks that tiers ascend and never make the game easier.
func (d DifficultyConfig) validate() []error {
	var errs []error

	if err := d.Base.validate("base"); err != nil {
		errs = append(errs, err)
	}

	prev := d.Base
	for i, t := range d.Tiers {
		name := fmt.Sprintf("tier %d", i)
		if err := t.Rates.validate(name); err != nil {
			errs = append(errs, err)
		}
		if i > 0 && t.Above <= d.Tiers[i-1].Above {
			errs = append(errs, fmt.Errorf("difficulty: %s: threshold %d must exceed %d", name, t.Above, d.Tiers[i-1].Above))
		}
		if !t.Rates.AtLeast(prev) {
			errs = append(errs, fmt.Errorf("difficulty: %s: rates must not decrease", name))
		}
		prev = t.Rates
	}
	return errs
}

func (r Rates) validate(name string) error {
	if r.FallSpeed <= 0 || r.EnemySpeed <= 0 {
		return fmt.Errorf("difficulty: %s: speeds must be positive", name)
	}
	if r.DropChance < 0 || r.DropChance > 1 {
		return fmt.Errorf("difficulty: %s: drop_chance must be within [0, 1], got %v", name, r.DropChance)
	}
	return nil
}
