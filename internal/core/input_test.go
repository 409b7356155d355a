package core

import "testing"

func TestInputFrameSetRoutesHeldActions(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)
	f.Set(ActionFire)

	if !f.IsHeld(ActionLeft) {
		t.Error("ActionLeft should be recorded as held")
	}
	if f.Has(ActionLeft) {
		t.Error("ActionLeft should not be recorded as a press")
	}
	if !f.Has(ActionFire) {
		t.Error("ActionFire should be recorded as a press")
	}
	if f.IsHeld(ActionFire) {
		t.Error("ActionFire should not be recorded as held")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionJump) || f.IsHeld(ActionRight) {
		t.Error("zero-value frame should report nothing")
	}

	// Setting on a zero value must not panic
	f.Set(ActionJump)
	f.Hold(ActionRight)
	if !f.Has(ActionJump) || !f.IsHeld(ActionRight) {
		t.Error("zero-value frame should accept actions")
	}
}

func TestInputFrameClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionJump)
	f.Set(ActionRight)
	f.Clear()

	if f.Has(ActionJump) || f.IsHeld(ActionRight) {
		t.Error("Clear should remove all actions")
	}
}

func TestActionString(t *testing.T) {
	if ActionExplosives.String() != "Explosives" {
		t.Errorf("String() = %q, expected %q", ActionExplosives.String(), "Explosives")
	}
	if Action(999).String() != "Unknown" {
		t.Errorf("unknown action should stringify as Unknown")
	}
}
