package debris

import (
	"github.com/vovakirdan/tui-debris/internal/config"
	"github.com/vovakirdan/tui-debris/internal/core"
)

// Player is the character dodging hazards at the bottom of the arena.
type Player struct {
	X, Y    float64 // Top-left corner in arena pixels
	VelY    float64 // Vertical velocity, positive = down
	Jumping bool    // Set by a jump, cleared on landing
	Size    float64
}

// NewPlayer places a player of the given size standing on the floor at the arena centre.
func NewPlayer(arena Arena, size float64) Player {
	return Player{
		X:    arena.Width / 2,
		Y:    arena.GroundY,
		Size: size,
	}
}

// Rect returns the player's collision rectangle.
func (p Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.Size, p.Size)
}

// Move applies horizontal displacement for each held direction and clamps
// the player between the walls. Vertical position is untouched.
func (p *Player) Move(left, right bool, speed float64, arena Arena) {
	if left {
		p.X -= speed
	}
	if right {
		p.X += speed
	}
	p.X = core.ClampF(p.X, arena.MinPlayerX(), arena.MaxPlayerX(p.Size))
}

// Jump starts a jump unless one is already in progress.
// Returns whether the jump was accepted.
func (p *Player) Jump(impulse float64) bool {
	if p.Jumping {
		return false
	}
	p.Jumping = true
	p.VelY = impulse
	return true
}

// ApplyPhysics integrates gravity for one frame and resolves landings.
// A platform catches the player only while descending with feet no more than
// the landing tolerance below its top. The ground check runs afterwards and
// always wins. Returns whether the player ended the frame standing on something.
func (p *Player) ApplyPhysics(arena Arena, phys config.PhysicsConfig) bool {
	p.VelY += phys.Gravity
	p.Y += p.VelY

	grounded := false
	rect := p.Rect()
	for _, plat := range arena.Platforms {
		if rect.Intersects(plat) && p.Y+p.Size <= plat.Y+phys.LandingTolerance && p.VelY >= 0 {
			p.land(plat.Y - p.Size)
			grounded = true
			break
		}
	}

	if p.Y >= arena.GroundY {
		p.land(arena.GroundY)
		grounded = true
	}

	return grounded
}

func (p *Player) land(y float64) {
	p.Y = y
	p.VelY = 0
	p.Jumping = false
}
