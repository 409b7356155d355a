package debris

import "github.com/vovakirdan/tui-debris/internal/core"

// Sprite identifies how a hazard is drawn.
type Sprite uint8

const (
	SpriteAnvil Sprite = iota
)

// Hazard is a falling object dropped by an enemy.
type Hazard struct {
	X, Y   float64
	Size   float64
	Sprite Sprite
}

// Rect returns the collision rectangle for this hazard.
func (h Hazard) Rect() core.Rect {
	return core.NewRect(h.X, h.Y, h.Size, h.Size)
}

// Enemy patrols horizontally along the top of the arena and drops hazards.
type Enemy struct {
	X, Y  float64
	W, H  float64
	Speed float64
}

// Rect returns the collision rectangle for this enemy.
func (e Enemy) Rect() core.Rect {
	return core.NewRect(e.X, e.Y, e.W, e.H)
}

// Arrow is a crossbow projectile travelling upward.
type Arrow struct {
	X, Y float64
	W, H float64
}

// Rect returns the collision rectangle for this arrow.
func (a Arrow) Rect() core.Rect {
	return core.NewRect(a.X, a.Y, a.W, a.H)
}
