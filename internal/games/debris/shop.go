package debris

import "github.com/vovakirdan/tui-debris/internal/config"

// Weapon is a consumable sold in the shop.
type Weapon int

const (
	WeaponCrossbow Weapon = iota
	WeaponExplosives
	WeaponClearAll
	WeaponCount // Sentinel for counting kinds
)

// Weapons lists every weapon in shop order.
var Weapons = [WeaponCount]Weapon{WeaponCrossbow, WeaponExplosives, WeaponClearAll}

// String returns the config key of the weapon.
func (w Weapon) String() string {
	switch w {
	case WeaponCrossbow:
		return "crossbow"
	case WeaponExplosives:
		return "explosives"
	case WeaponClearAll:
		return "clear_all"
	default:
		return "unknown"
	}
}

// Title returns the display name of the weapon.
func (w Weapon) Title() string {
	switch w {
	case WeaponCrossbow:
		return "Crossbow"
	case WeaponExplosives:
		return "Explosives"
	case WeaponClearAll:
		return "Clear-All"
	default:
		return "?"
	}
}

// Economy tracks the coin balance, owned weapons and the price list.
type Economy struct {
	coins     int
	inventory [WeaponCount]int
	items     [WeaponCount]config.ItemConfig
}

// NewEconomy creates an empty wallet with the configured price list.
func NewEconomy(cfg config.EconomyConfig) *Economy {
	e := &Economy{}
	e.SetPrices(cfg)
	return e
}

// SetPrices replaces prices and bundle sizes; balance and inventory are kept.
func (e *Economy) SetPrices(cfg config.EconomyConfig) {
	e.items = [WeaponCount]config.ItemConfig{
		WeaponCrossbow:   cfg.Crossbow,
		WeaponExplosives: cfg.Explosives,
		WeaponClearAll:   cfg.ClearAll,
	}
}

// Coins returns the current balance.
func (e *Economy) Coins() int {
	return e.coins
}

// Credit adds coins to the balance. Non-positive amounts are ignored.
func (e *Economy) Credit(amount int) {
	if amount > 0 {
		e.coins += amount
	}
}

// Owned returns how many units of w are in the inventory.
func (e *Economy) Owned(w Weapon) int {
	if !w.valid() {
		return 0
	}
	return e.inventory[w]
}

// Price returns the cost of one purchase of w.
func (e *Economy) Price(w Weapon) int {
	if !w.valid() {
		return 0
	}
	return e.items[w].Price
}

// Bundle returns how many units one purchase of w grants.
func (e *Economy) Bundle(w Weapon) int {
	if !w.valid() {
		return 0
	}
	return e.items[w].Bundle
}

// Purchase buys one bundle of w. It is a no-op returning false when the
// balance is below the price.
func (e *Economy) Purchase(w Weapon) bool {
	if !w.valid() || e.coins < e.items[w].Price {
		return false
	}
	e.coins -= e.items[w].Price
	e.inventory[w] += e.items[w].Bundle
	return true
}

// Take removes one unit of w from the inventory.
// Returns false, changing nothing, when none is owned.
func (e *Economy) Take(w Weapon) bool {
	if !w.valid() || e.inventory[w] <= 0 {
		return false
	}
	e.inventory[w]--
	return true
}

func (w Weapon) valid() bool {
	return w >= 0 && w < WeaponCount
}
