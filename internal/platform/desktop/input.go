package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-debris/internal/core"
)

// KeySource reports keyboard state for the current tick.
type KeySource interface {
	Pressed(k ebiten.Key) bool     // Key is down this tick
	JustPressed(k ebiten.Key) bool // Key went down this tick
}

// ebitenKeys reads the real keyboard.
type ebitenKeys struct{}

func (ebitenKeys) Pressed(k ebiten.Key) bool     { return ebiten.IsKeyPressed(k) }
func (ebitenKeys) JustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }

// Binding maps an action to the keys that trigger it.
type Binding struct {
	Action core.Action
	Keys   []ebiten.Key
}

// DefaultBindings returns the window key layout. Left and right are polled
// every tick; everything else fires once per key press.
func DefaultBindings() []Binding {
	return []Binding{
		{core.ActionLeft, []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}},
		{core.ActionRight, []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}},
		{core.ActionJump, []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeySpace, ebiten.KeyW}},
		{core.ActionFire, []ebiten.Key{ebiten.KeyC}},
		{core.ActionExplosives, []ebiten.Key{ebiten.KeyE}},
		{core.ActionClearAll, []ebiten.Key{ebiten.KeyN}},
		{core.ActionSkipWave, []ebiten.Key{ebiten.KeyK}},
		{core.ActionToggleShop, []ebiten.Key{ebiten.KeyS}},
		{core.ActionCloseShop, []ebiten.Key{ebiten.KeyEscape}},
		{core.ActionBuy1, []ebiten.Key{ebiten.KeyDigit1, ebiten.KeyNumpad1}},
		{core.ActionBuy2, []ebiten.Key{ebiten.KeyDigit2, ebiten.KeyNumpad2}},
		{core.ActionBuy3, []ebiten.Key{ebiten.KeyDigit3, ebiten.KeyNumpad3}},
		{core.ActionRestart, []ebiten.Key{ebiten.KeyR}},
		{core.ActionQuit, []ebiten.Key{ebiten.KeyQ}},
	}
}

// poll fills frame from the key source.
func poll(src KeySource, bindings []Binding, frame *core.InputFrame) {
	for _, b := range bindings {
		check := src.JustPressed
		if b.Action.IsHeld() {
			check = src.Pressed
		}
		for _, k := range b.Keys {
			if check(k) {
				frame.Set(b.Action)
				break
			}
		}
	}

	// Both directions down cancel out
	if frame.IsHeld(core.ActionLeft) && frame.IsHeld(core.ActionRight) {
		delete(frame.Held, core.ActionLeft)
		delete(frame.Held, core.ActionRight)
	}
}
