package debris

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-debris/internal/core"
)

// Glyphs used by the terminal renderer.
const (
	DirtChar   = '█'
	PlayerChar = '@'
	EnemyChar  = 'W'
	AnvilChar  = '▼'
	ArrowChar  = '↑'
)

// HUD rows reserved at the top and bottom of the screen.
const (
	hudTop    = 1
	hudBottom = 1
)

// viewport maps arena pixels onto screen cells.
type viewport struct {
	sx, sy float64 // Cells per pixel
	top    int     // First row of the playfield
	rows   int
	cols   int
}

func newViewport(a Arena, dst *core.Screen) viewport {
	rows := max(dst.Height()-hudTop-hudBottom, 1)
	cols := max(dst.Width(), 1)
	return viewport{
		sx:   float64(cols) / a.Width,
		sy:   float64(rows) / a.Height,
		top:  hudTop,
		rows: rows,
		cols: cols,
	}
}

// cells converts an arena rect to a cell rectangle covering at least one cell.
func (v viewport) cells(r core.Rect) (x, y, w, h int) {
	x = int(math.Floor(r.X * v.sx))
	y = v.top + int(math.Floor(r.Y*v.sy))
	w = max(int(math.Ceil(r.Right()*v.sx))-x, 1)
	h = max(v.top+int(math.Ceil(r.Bottom()*v.sy))-y, 1)
	return x, y, w, h
}

func (v viewport) fill(dst *core.Screen, r core.Rect, ch rune, c core.Color) {
	x, y, w, h := v.cells(r)
	// Clip to the playfield so nothing bleeds into the HUD rows
	if y < v.top {
		h -= v.top - y
		y = v.top
	}
	if y+h > v.top+v.rows {
		h = v.top + v.rows - y
	}
	if h <= 0 {
		return
	}
	dst.DrawFill(x, y, w, h, ch, c)
}

// Render draws the current frame to the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	v := newViewport(g.arena, dst)

	// Dirt: walls, floor, platforms
	for _, w := range g.arena.Walls {
		v.fill(dst, w, DirtChar, core.ColorBrown)
	}
	v.fill(dst, g.arena.Floor, DirtChar, core.ColorBrown)
	for _, p := range g.arena.Platforms {
		v.fill(dst, p, DirtChar, core.ColorBrown)
	}

	for _, e := range g.enemies {
		v.fill(dst, e.Rect(), EnemyChar, core.ColorMagenta)
	}
	for _, h := range g.hazards {
		v.fill(dst, h.Rect(), AnvilChar, core.ColorGray)
	}
	for _, a := range g.arrows {
		v.fill(dst, a.Rect(), ArrowChar, core.ColorBrightYellow)
	}
	v.fill(dst, g.player.Rect(), PlayerChar, core.ColorGreen)

	g.drawHUD(dst)

	switch g.mode {
	case ModeShopping:
		g.drawShop(dst)
	case ModeGameOver:
		g.drawCenteredMessage(dst, core.ColorBrightRed,
			"GAME OVER",
			fmt.Sprintf("Score: %d  Wave: %d", g.score, g.waves.Number),
			"R restart  Q quit")
	}
}

// drawHUD writes the status line and inventory line.
func (g *Game) drawHUD(dst *core.Screen) {
	status := fmt.Sprintf(" Score: %d  Coins: %d  Lives: %d  Wave: %d (%ds) ",
		g.score, g.economy.Coins(), g.lives, g.waves.Number,
		int(g.waves.Remaining(g.clock.Now()).Seconds()))
	dst.DrawTextColored(0, 0, status, core.ColorWhite)

	if g.difficulty.IsEnabled() {
		tier := fmt.Sprintf(" Tier %d ", g.tier)
		dst.DrawTextColored(dst.Width()-len(tier), 0, tier, core.ColorCyan)
	}

	parts := make([]string, 0, WeaponCount)
	for _, w := range Weapons {
		parts = append(parts, fmt.Sprintf("%s: %d", w.Title(), g.economy.Owned(w)))
	}
	dst.DrawTextColored(0, dst.Height()-1, " "+strings.Join(parts, "  ")+"  [S]hop", core.ColorYellow)
}

// drawShop draws the shop overlay with one line per weapon.
func (g *Game) drawShop(dst *core.Screen) {
	lines := []string{fmt.Sprintf("Coins: %d", g.economy.Coins()), ""}
	for i, w := range Weapons {
		lines = append(lines, fmt.Sprintf("%d. %-10s x%d  %3d coins  (own %d)",
			i+1, w.Title(), g.economy.Bundle(w), g.economy.Price(w), g.economy.Owned(w)))
	}
	lines = append(lines, "", "1-3 buy  S/Esc close")
	g.drawCenteredMessage(dst, core.ColorCyan, "SHOP", lines...)
}

// drawCenteredMessage draws a boxed message in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, c core.Color, title string, lines ...string) {
	width := len([]rune(title))
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	boxW := width + 4
	boxH := len(lines) + 4
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawFill(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH)

	dst.DrawTextColored(boxX+(boxW-len([]rune(title)))/2, boxY+1, title, c)
	for i, l := range lines {
		dst.DrawText(boxX+2, boxY+3+i, l)
	}
}
