package particle

import "math"

// Glyphs
const (
	StationaryGlyph = '•'
	FuelCellGlyph   = '◆'
)

// directionGlyphs is indexed by 45° sector, clockwise from east.
// Screen y grows downward, so positive vy points south.
var directionGlyphs = [8]rune{
	'→', // E
	'↘', // SE
	'↓', // S
	'↙', // SW
	'←', // W
	'↖', // NW
	'↑', // N
	'↗', // NE
}

// Glyph returns the character that represents the particle.
func (p *Particle) Glyph() rune {
	switch p.Kind {
	case FuelCell:
		return FuelCellGlyph
	default:
		return DirectionGlyph(p.Velocity.X, p.Velocity.Y)
	}
}

// DirectionGlyph quantizes a velocity into one of eight arrows, or a dot when
// the velocity is zero. Sector boundaries sit halfway between compass points.
func DirectionGlyph(vx, vy int) rune {
	if vx == 0 && vy == 0 {
		return StationaryGlyph
	}

	ang := math.Atan2(float64(vy), float64(vx))
	if ang < 0 {
		ang += 2 * math.Pi
	}

	sector := int(math.Floor((ang+math.Pi/8)/(math.Pi/4))) % 8
	return directionGlyphs[sector]
}
