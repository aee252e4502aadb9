package core

// Color represents a foreground color for a screen cell.
// The front end maps each value to an ANSI 256-color code.
type Color uint8

// Palette used by the board, the HUD, and overlays.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorDarkGray
)
