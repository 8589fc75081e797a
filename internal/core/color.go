package core

// Color represents a terminal color for a screen cell.
// Used for both foreground and background; ColorDefault leaves the terminal's own color.
type Color uint8

// Predefined colors for particles, borders and HUD.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// ColorPair is a foreground/background combination for a single cell.
type ColorPair struct {
	Fg Color
	Bg Color
}
