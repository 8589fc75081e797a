package particle

import (
	"github.com/vovakirdan/tui-rockets/internal/core"
	"github.com/vovakirdan/tui-rockets/internal/spatial"
)

// Braking policy constants.
const (
	lowSpeedThreshold = 10 // Both axes at or below this use unit steps
	highSpeedDivisor  = 20 // Above it, brake by roughly 1/20th of the speed
)

// BrakingAcceleration returns the acceleration that slows velocity toward rest.
//
// At low speed a unit step is applied to the dominant axis (both on a tie) so
// the particle settles instead of oscillating around zero. At high speed each
// axis brakes by abs/20, at least one unit. The result never flips the sign
// of either velocity component.
func BrakingAcceleration(v spatial.Coordinate) spatial.Coordinate {
	if v.IsZero() {
		return spatial.Coordinate{}
	}

	absX, absY := core.Abs(v.X), core.Abs(v.Y)

	var a spatial.Coordinate
	if absX <= lowSpeedThreshold && absY <= lowSpeedThreshold {
		switch {
		case absX > absY:
			a.X = -core.Sign(v.X)
		case absY > absX:
			a.Y = -core.Sign(v.Y)
		default:
			a.X = -core.Sign(v.X)
			a.Y = -core.Sign(v.Y)
		}
	} else {
		a.X = highSpeedBrake(v.X)
		a.Y = highSpeedBrake(v.Y)
	}

	a.X = guardOvershoot(a.X, v.X)
	a.Y = guardOvershoot(a.Y, v.Y)
	return a
}

func highSpeedBrake(v int) int {
	mag := core.Max(core.Abs(v)/highSpeedDivisor, 1)
	return -core.Sign(v) * mag
}

// guardOvershoot clamps a so that v+a keeps the sign of v (or reaches zero).
func guardOvershoot(a, v int) int {
	switch {
	case v > 0:
		return core.Clamp(a, -v, 0)
	case v < 0:
		return core.Clamp(a, 0, -v)
	default:
		return 0
	}
}
