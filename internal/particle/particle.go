// Package particle implements the per-entity state machine of the simulation:
// boost resolution, fuel consumption, velocity clamping, half-step position
// integration and border bounce, plus the braking policy and glyph selection.
package particle

import (
	"fmt"

	"github.com/vovakirdan/tui-rockets/internal/core"
	"github.com/vovakirdan/tui-rockets/internal/spatial"
)

// ID is a stable particle identity assigned by the owning scene.
type ID uint64

// NoID marks a particle that has not been inserted into a scene yet.
const NoID ID = 0

// MaxFuel is the fuel capacity of a particle.
const MaxFuel = 510

// DefaultVelocityCap limits a fresh particle to one cell per tick at a half step.
var DefaultVelocityCap = spatial.C(2*spatial.SubpixelScale, 2*spatial.SubpixelScale)

// Particle is one simulated entity. Position, velocity and acceleration are
// in subpixel units.
type Particle struct {
	ID           ID
	Position     spatial.Coordinate
	Velocity     spatial.Coordinate
	Acceleration spatial.Coordinate
	Color        core.Color
	Kind         Kind
	Fuel         int
	VelocityCap  spatial.Coordinate
}

// New creates a particle of the given kind with the kind's default color,
// the default velocity cap and no fuel.
func New(kind Kind, position, velocity spatial.Coordinate) Particle {
	return Particle{
		Position:    position,
		Velocity:    velocity,
		Color:       kind.Colors().Fg,
		Kind:        kind,
		VelocityCap: DefaultVelocityCap,
	}
}

// NewRocket creates a rocket with the given fuel.
func NewRocket(position, velocity spatial.Coordinate, fuel int) Particle {
	p := New(Rocket, position, velocity)
	p.Fuel = core.Clamp(fuel, 0, MaxFuel)
	return p
}

// NewFuelCell creates a fuel cell drifting with the given velocity.
func NewFuelCell(position, velocity spatial.Coordinate) Particle {
	return New(FuelCell, position, velocity)
}

// String returns a debug line with the particle's motion state.
func (p *Particle) String() string {
	return fmt.Sprintf("#%d %s P%v V%v A%v fuel=%d",
		p.ID, p.Kind, p.Position, p.Velocity, p.Acceleration, p.Fuel)
}

// AddFuel credits fuel, saturating at MaxFuel. Returns the amount actually added.
func (p *Particle) AddFuel(amount int) int {
	before := p.Fuel
	p.Fuel = core.Clamp(p.Fuel+amount, 0, MaxFuel)
	return p.Fuel - before
}

// Update advances the particle by one tick. The steps run in a fixed order:
// boost resolution, fuel consumption, velocity update, position integration,
// border bounce.
func (p *Particle) Update(bounds spatial.Bounds, boost *Boost) {
	p.resolveBoost(boost)

	if !p.Acceleration.IsZero() && p.Fuel > 0 {
		p.Fuel--
	}

	p.Velocity.Add(p.Acceleration)
	p.Velocity.X = core.Clamp(p.Velocity.X, -p.VelocityCap.X, p.VelocityCap.X)
	p.Velocity.Y = core.Clamp(p.Velocity.Y, -p.VelocityCap.Y, p.VelocityCap.Y)

	// Integer division truncates toward zero; the bias is part of the motion model.
	div := p.Kind.Divisor()
	p.Position.Add(spatial.C(p.Velocity.X/div, p.Velocity.Y/div))

	p.bounce(bounds)
}

func (p *Particle) resolveBoost(boost *Boost) {
	if p.Fuel == 0 || boost == nil {
		p.Acceleration = spatial.Coordinate{}
		return
	}

	switch boost.Kind {
	case BoostBrake:
		p.Acceleration = BrakingAcceleration(p.Velocity)
	case BoostDelta:
		p.Acceleration.Add(boost.Delta)
	default:
		p.Acceleration = spatial.Coordinate{}
	}
}

// bounce reflects the particle off the arena edges. The four tests are
// independent and read the cell projected before any reflection. The low edge
// is a subpixel test on y and a cell test on x.
func (p *Particle) bounce(b spatial.Bounds) {
	cell := p.Position.ToCell()

	if cell.Y >= b.GridHeight-1 {
		p.Position.Y = b.PixelHeight - core.Abs(p.Position.Y-b.PixelHeight)
		p.Velocity.Y = -p.Velocity.Y
	}
	if p.Position.Y <= 1 {
		p.Position.Y = core.Abs(p.Position.Y)
		p.Velocity.Y = -p.Velocity.Y
	}
	if cell.X >= b.GridWidth-1 {
		p.Position.X = b.PixelWidth - core.Abs(p.Position.X-b.PixelWidth)
		p.Velocity.X = -p.Velocity.X
	}
	if cell.X <= 1 {
		p.Position.X = core.Abs(p.Position.X)
		p.Velocity.X = -p.Velocity.X
	}
}
