package debris

import (
	"github.com/vovakirdan/tui-debris/internal/config"
	"github.com/vovakirdan/tui-debris/internal/core"
)

// Arena holds the static geometry of the playfield.
// It is built once per session and never mutated.
type Arena struct {
	Width     float64
	Height    float64
	Block     float64     // Dirt block edge; walls and the floor are one block thick
	GroundY   float64     // Highest y the player's top edge may reach (player standing on the floor)
	Platforms []core.Rect // One rect per dirt block
	Walls     [2]core.Rect
	Floor     core.Rect
}

// NewArena builds the arena from config.
func NewArena(cfg config.DebrisConfig) Arena {
	a := Arena{
		Width:   cfg.Arena.Width,
		Height:  cfg.Arena.Height,
		Block:   cfg.Arena.BlockSize,
		GroundY: cfg.Arena.Height - cfg.Player.Size - cfg.Arena.BlockSize,
	}

	b := a.Block
	for _, spec := range cfg.Arena.Platforms {
		for i := 0; i < spec.Length; i++ {
			a.Platforms = append(a.Platforms, core.NewRect(
				float64(spec.GridX)*b+float64(i)*b,
				float64(spec.GridY)*b,
				b, b,
			))
		}
	}

	a.Walls = [2]core.Rect{
		core.NewRect(0, 0, b, a.Height),
		core.NewRect(a.Width-b, 0, b, a.Height),
	}
	a.Floor = core.NewRect(0, a.Height-b, a.Width, b)
	return a
}

// MinPlayerX returns the leftmost x the player may occupy.
func (a Arena) MinPlayerX() float64 {
	return a.Block
}

// MaxPlayerX returns the rightmost x the player of the given size may occupy.
func (a Arena) MaxPlayerX(size float64) float64 {
	return a.Width - size - a.Block
}
