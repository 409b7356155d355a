package core

// Color is a foreground colour for a screen cell. Front ends map it to
// terminal styles.
type Color uint8

// Colours used by the debris renderer.
const (
	ColorDefault      Color = iota
	ColorGreen              // Player
	ColorMagenta            // Enemies
	ColorGray               // Anvils
	ColorBrown              // Dirt blocks
	ColorBrightYellow       // Arrows
	ColorWhite              // Status line
	ColorYellow             // Inventory line
	ColorCyan               // Shop and difficulty tier
	ColorBrightRed          // Game over
)
