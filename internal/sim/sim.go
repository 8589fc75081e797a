// Package sim drives the scene one tick at a time: it applies per-slot boosts,
// recomputes the drawable cells and reduces collisions to game events.
// It never acts on the events it returns.
package sim

import (
	"github.com/vovakirdan/tui-rockets/internal/event"
	"github.com/vovakirdan/tui-rockets/internal/particle"
	"github.com/vovakirdan/tui-rockets/internal/scene"
	"github.com/vovakirdan/tui-rockets/internal/spatial"
)

// Result is everything a caller needs after one tick.
type Result struct {
	Tick   uint64
	Erase  []scene.Cell // Cells drawn before the update
	Draw   []scene.Cell // Cells to draw after the update
	Events []event.GameEvent
}

// Sim owns a scene and a fixed grid size.
type Sim struct {
	scene  *scene.Scene
	bounds spatial.Bounds
	tick   uint64
}

// New creates a simulation over a gridWidth x gridHeight arena with an empty scene.
func New(gridWidth, gridHeight int) *Sim {
	return &Sim{
		scene:  scene.New(),
		bounds: spatial.NewBounds(gridWidth, gridHeight),
	}
}

// Scene returns the owned scene for setup and for acting on events between ticks.
func (s *Sim) Scene() *scene.Scene {
	return s.scene
}

// Bounds returns the arena extents.
func (s *Sim) Bounds() spatial.Bounds {
	return s.bounds
}

// TickCount returns the number of completed ticks.
func (s *Sim) TickCount() uint64 {
	return s.tick
}

// Frame returns the current drawable state without advancing.
func (s *Sim) Frame() scene.Frame {
	return s.scene.Renderable(s.bounds.GridWidth, s.bounds.GridHeight)
}

// Tick advances every particle once. boosts[i] drives slot i; the slice may
// be shorter than the particle count, missing entries mean no boost.
func (s *Sim) Tick(boosts []*particle.Boost) Result {
	before := s.Frame()

	for i := 0; i < s.scene.Len(); i++ {
		var b *particle.Boost
		if i < len(boosts) {
			b = boosts[i]
		}
		s.scene.At(i).Update(s.bounds, b)
	}

	after := s.Frame()
	s.tick++

	return Result{
		Tick:   s.tick,
		Erase:  before.Cells,
		Draw:   after.Cells,
		Events: Reduce(s.scene, after.Collisions),
	}
}

// Reduce turns collisions into game events. For each collision the first
// rocket and the first fuel cell among its participants, in listed order,
// form one RefuelEvent. Ids that no longer resolve are skipped.
func Reduce(sc *scene.Scene, collisions []event.Collision) []event.GameEvent {
	var events []event.GameEvent

	for _, c := range collisions {
		switch c := c.(type) {
		case event.RefuelCollision:
			if ev, ok := reduceRefuel(sc, c); ok {
				events = append(events, ev)
			}
		}
	}

	return events
}

func reduceRefuel(sc *scene.Scene, c event.RefuelCollision) (event.RefuelEvent, bool) {
	rocket, fuel := -1, -1

	for _, id := range c.Participants {
		idx, ok := sc.IndexOf(id)
		if !ok {
			continue
		}
		switch sc.At(idx).Kind {
		case particle.Rocket:
			if rocket < 0 {
				rocket = idx
			}
		case particle.FuelCell:
			if fuel < 0 {
				fuel = idx
			}
		}
		if rocket >= 0 && fuel >= 0 {
			return event.RefuelEvent{RocketIdx: rocket, FuelCellIdx: fuel}, true
		}
	}

	return event.RefuelEvent{}, false
}
