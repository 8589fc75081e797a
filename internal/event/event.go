// Package event defines the discrete outputs of a simulation tick:
// collisions found by the scene and the game events reduced from them.
package event

import (
	"fmt"

	"github.com/vovakirdan/tui-rockets/internal/particle"
)

// Collision is a group of particles found sharing a grid cell.
type Collision interface {
	collision()
}

// RefuelCollision lists the ids of every particle in one cell, in scene order.
type RefuelCollision struct {
	Participants []particle.ID
}

func (RefuelCollision) collision() {}

func (c RefuelCollision) String() string {
	return fmt.Sprintf("RefuelCollision%v", c.Participants)
}

// GameEvent is a collision interpreted for the game layer.
type GameEvent interface {
	gameEvent()
}

// RefuelEvent pairs a rocket with a fuel cell it reached. The indices are
// scene slots and are only valid for the tick that produced the event.
type RefuelEvent struct {
	RocketIdx   int
	FuelCellIdx int
}

func (RefuelEvent) gameEvent() {}

func (e RefuelEvent) String() string {
	return fmt.Sprintf("Refuel{rocket=%d fuel=%d}", e.RocketIdx, e.FuelCellIdx)
}
