package desktop

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/vovakirdan/tui-debris/internal/core"
	"github.com/vovakirdan/tui-debris/internal/games/debris"
)

// Debug font metrics used by ebitenutil.DebugPrintAt.
const (
	glyphW = 6
	lineH  = 16
)

var (
	colorBackground = colornames.White
	colorPlatform   = colornames.Gray
	colorWall       = colornames.Dimgray
	colorFloor      = colornames.Saddlebrown
	colorPlayer     = colornames.Limegreen
	colorEnemy      = colornames.Purple
	colorHazard     = colornames.Darkslategray
	colorArrow      = colornames.Red
	colorPanel      = color.RGBA{A: 160}
	colorShop       = colornames.Dimgray
	colorBorder     = colornames.Black
)

func fillRect(dst *ebiten.Image, r core.Rect, c color.Color) {
	vector.FillRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

// drawFrame renders one snapshot in arena coordinates.
func drawFrame(dst *ebiten.Image, s debris.Snapshot) {
	dst.Fill(colorBackground)

	for _, p := range s.Arena.Platforms {
		fillRect(dst, p, colorPlatform)
	}
	for _, w := range s.Arena.Walls {
		fillRect(dst, w, colorWall)
	}
	fillRect(dst, s.Arena.Floor, colorFloor)

	for _, e := range s.Enemies {
		fillRect(dst, e.Rect(), colorEnemy)
	}
	for _, h := range s.Hazards {
		fillRect(dst, h.Rect(), colorHazard)
	}
	for _, a := range s.Arrows {
		fillRect(dst, a.Rect(), colorArrow)
	}
	fillRect(dst, s.Player.Rect(), colorPlayer)

	drawPanel(dst, float32(s.Arena.Block)+4, 4, hudLines(s))
	drawPanel(dst, float32(s.Arena.Block)+4, float32(s.Arena.Height-s.Arena.Block)-lineH-8,
		[]string{inventoryLine(s)})

	switch s.Mode {
	case debris.ModeShopping:
		drawBox(dst, s.Arena, "SHOP", shopLines(s))
	case debris.ModeGameOver:
		drawBox(dst, s.Arena, "GAME OVER", []string{
			fmt.Sprintf("Score: %d  Wave: %d", s.Score, s.Wave),
			"",
			"R restart  Q quit",
		})
	}
}

// hudLines returns the status block drawn in the top-left corner.
func hudLines(s debris.Snapshot) []string {
	lines := []string{
		fmt.Sprintf("Score: %d", s.Score),
		fmt.Sprintf("Coins: %d", s.Coins),
		fmt.Sprintf("Lives: %d", s.Lives),
		fmt.Sprintf("Wave:  %d (%ds)", s.Wave, int(s.WaveRemaining.Seconds())),
	}
	if s.Tier > 0 {
		lines = append(lines, fmt.Sprintf("Tier:  %d", s.Tier))
	}
	return lines
}

// inventoryLine lists owned weapons and their keys.
func inventoryLine(s debris.Snapshot) string {
	keys := map[debris.Weapon]string{
		debris.WeaponCrossbow:   "C",
		debris.WeaponExplosives: "E",
		debris.WeaponClearAll:   "N",
	}
	parts := make([]string, 0, len(s.Inventory)+1)
	for _, inv := range s.Inventory {
		parts = append(parts, fmt.Sprintf("%s [%s]: %d", inv.Weapon.Title(), keys[inv.Weapon], inv.Owned))
	}
	parts = append(parts, "[S]hop")
	return strings.Join(parts, "   ")
}

// shopLines lists the purchasable bundles.
func shopLines(s debris.Snapshot) []string {
	lines := []string{fmt.Sprintf("Coins: %d", s.Coins), ""}
	for i, inv := range s.Inventory {
		lines = append(lines, fmt.Sprintf("%d. %-10s x%d  %3d coins  (own %d)",
			i+1, inv.Weapon.Title(), inv.Bundle, inv.Price, inv.Owned))
	}
	return append(lines, "", "1-3 buy  S/Esc close")
}

// drawPanel prints lines over a translucent backing so they stay legible.
func drawPanel(dst *ebiten.Image, x, y float32, lines []string) {
	width := 0
	for _, l := range lines {
		width = max(width, len(l))
	}
	vector.FillRect(dst, x, y, float32(width*glyphW+8), float32(len(lines)*lineH+4), colorPanel, false)
	for i, l := range lines {
		ebitenutil.DebugPrintAt(dst, l, int(x)+4, int(y)+2+i*lineH)
	}
}

// drawBox draws a bordered box centred on the arena with a title and body.
func drawBox(dst *ebiten.Image, a debris.Arena, title string, lines []string) {
	width := len(title)
	for _, l := range lines {
		width = max(width, len(l))
	}
	boxW := float32(width*glyphW + 40)
	boxH := float32((len(lines)+2)*lineH + 24)
	x := (float32(a.Width) - boxW) / 2
	y := (float32(a.Height) - boxH) / 2

	vector.FillRect(dst, x, y, boxW, boxH, colorShop, false)
	vector.StrokeRect(dst, x, y, boxW, boxH, 2, colorBorder, false)

	tx := int(x) + (int(boxW)-len(title)*glyphW)/2
	ebitenutil.DebugPrintAt(dst, title, tx, int(y)+12)
	for i, l := range lines {
		ebitenutil.DebugPrintAt(dst, l, int(x)+20, int(y)+12+(i+2)*lineH)
	}
}
