package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the simulation to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone       Action = iota
	ActionLeft              // Left arrow - held, move left
	ActionRight             // Right arrow - held, move right
	ActionJump              // Space, Up - jump when not already jumping
	ActionFire              // C - shoot one crossbow arrow
	ActionExplosives        // E - detonate explosives
	ActionClearAll          // N - use clear-all
	ActionSkipWave          // K - advance to the next wave now
	ActionToggleShop        // S - open the shop (or close it while shopping)
	ActionCloseShop         // Esc - close the shop
	ActionBuy1              // 1 - buy crossbow ammo
	ActionBuy2              // 2 - buy explosives
	ActionBuy3              // 3 - buy clear-all
	ActionRestart           // R key - restart after game over
	ActionQuit              // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	case ActionFire:
		return "Fire"
	case ActionExplosives:
		return "Explosives"
	case ActionClearAll:
		return "ClearAll"
	case ActionSkipWave:
		return "SkipWave"
	case ActionToggleShop:
		return "ToggleShop"
	case ActionCloseShop:
		return "CloseShop"
	case ActionBuy1:
		return "Buy1"
	case ActionBuy2:
		return "Buy2"
	case ActionBuy3:
		return "Buy3"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsHeld reports whether the action is a continuously polled hold rather
// than an edge-triggered press.
func (a Action) IsHeld() bool {
	return a == ActionLeft || a == ActionRight
}

// InputFrame represents the input state during one simulation tick.
// Actions holds edge-triggered presses; each is applied once per tick.
// Held holds the directional keys that are down for the whole tick.
type InputFrame struct {
	Actions map[Action]bool
	Held    map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Held:    make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
// Held actions are routed to the held set.
func (f *InputFrame) Set(a Action) {
	if a.IsHeld() {
		f.Hold(a)
		return
	}
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Hold marks a directional action as held for this frame.
func (f *InputFrame) Hold(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// IsHeld returns true if the given directional action is held this frame.
func (f InputFrame) IsHeld(a Action) bool {
	if f.Held == nil {
		return false
	}
	return f.Held[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	for k := range f.Held {
		delete(f.Held, k)
	}
}
