package particle

import "github.com/vovakirdan/tui-rockets/internal/core"

// Kind is the closed set of particle variants.
type Kind int

const (
	Rocket Kind = iota
	FuelCell
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case Rocket:
		return "Rocket"
	case FuelCell:
		return "FuelCell"
	default:
		return "Unknown"
	}
}

// Divisor is the velocity divisor used for position integration.
// Fuel cells drift at a quarter step, everything else at a half step.
func (k Kind) Divisor() int {
	switch k {
	case FuelCell:
		return 4
	default:
		return 2
	}
}

// Colors returns the default foreground/background pair for the kind.
func (k Kind) Colors() core.ColorPair {
	switch k {
	case FuelCell:
		return core.ColorPair{Fg: core.ColorBrightYellow, Bg: core.ColorGray}
	default:
		return core.ColorPair{Fg: core.ColorWhite, Bg: core.ColorDefault}
	}
}

// Background is the cell background drawn under every sprite cell of this kind.
func (k Kind) Background() core.Color {
	return k.Colors().Bg
}
