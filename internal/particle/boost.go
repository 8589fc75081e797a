package particle

import (
	"fmt"

	"github.com/vovakirdan/tui-rockets/internal/spatial"
)

// BoostKind selects what a Boost does.
type BoostKind int

const (
	BoostBrake BoostKind = iota
	BoostDelta
)

// Boost is an external per-tick command for one particle.
// A nil *Boost means no thrust this tick.
type Boost struct {
	Kind  BoostKind
	Delta spatial.Coordinate // Only meaningful for BoostDelta
}

// Brake returns a boost that decelerates toward rest.
func Brake() *Boost {
	return &Boost{Kind: BoostBrake}
}

// Thrust returns a boost that adds delta to the current acceleration.
func Thrust(delta spatial.Coordinate) *Boost {
	return &Boost{Kind: BoostDelta, Delta: delta}
}

// String returns a human-readable description of the boost.
func (b *Boost) String() string {
	if b == nil {
		return "None"
	}
	switch b.Kind {
	case BoostBrake:
		return "Brake"
	case BoostDelta:
		return fmt.Sprintf("Delta%v", b.Delta)
	default:
		return "Unknown"
	}
}
