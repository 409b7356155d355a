package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-debris/internal/core"
)

// KeyMap holds the key bindings for the game screen.
// Bindings are also the source for the help bar.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Jump       key.Binding
	Fire       key.Binding
	Explosives key.Binding
	ClearAll   key.Binding
	SkipWave   key.Binding
	Shop       key.Binding
	CloseShop  key.Binding
	Buy1       key.Binding
	Buy2       key.Binding
	Buy3       key.Binding
	Restart    key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Jump: key.NewBinding(
			key.WithKeys("up", " ", "w"),
			key.WithHelp("↑/space", "jump"),
		),
		Fire: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "crossbow"),
		),
		Explosives: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "explosives"),
		),
		ClearAll: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "clear-all"),
		),
		SkipWave: key.NewBinding(
			key.WithKeys("k"),
			key.WithHelp("k", "skip wave"),
		),
		Shop: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "shop"),
		),
		CloseShop: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close shop"),
		),
		Buy1: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "buy crossbow"),
		),
		Buy2: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "buy explosives"),
		),
		Buy3: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "buy clear-all"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Jump, k.Fire, k.Explosives, k.ClearAll, k.Shop, k.SkipWave, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Jump},
		{k.Fire, k.Explosives, k.ClearAll, k.SkipWave},
		{k.Shop, k.CloseShop, k.Buy1, k.Buy2, k.Buy3},
		{k.Restart, k.Screenshot, k.Quit},
	}
}

// ShopHelp returns the bindings that apply while the shop is open.
func (k KeyMap) ShopHelp() []key.Binding {
	return []key.Binding{k.Buy1, k.Buy2, k.Buy3, k.Shop, k.CloseShop, k.Quit}
}

// MapKey translates a key message to a game action.
// Returns ActionNone for unbound keys.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	bindings := []struct {
		binding key.Binding
		action  core.Action
	}{
		{k.Quit, core.ActionQuit},
		{k.Left, core.ActionLeft},
		{k.Right, core.ActionRight},
		{k.Jump, core.ActionJump},
		{k.Fire, core.ActionFire},
		{k.Explosives, core.ActionExplosives},
		{k.ClearAll, core.ActionClearAll},
		{k.SkipWave, core.ActionSkipWave},
		{k.Shop, core.ActionToggleShop},
		{k.CloseShop, core.ActionCloseShop},
		{k.Buy1, core.ActionBuy1},
		{k.Buy2, core.ActionBuy2},
		{k.Buy3, core.ActionBuy3},
		{k.Restart, core.ActionRestart},
	}
	for _, b := range bindings {
		if key.Matches(msg, b.binding) {
			return b.action
		}
	}
	return core.ActionNone
}
