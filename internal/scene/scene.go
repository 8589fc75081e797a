// Package scene owns the particle collection. It assigns stable identities,
// places sprites on the grid and groups co-located particles into collisions.
//
// Particles live in a dense slice and are addressed by slot for iteration.
// Slots shift on removal; anything that must survive a tick boundary refers
// to a particle by its ID.
package scene

import (
	"github.com/vovakirdan/tui-rockets/internal/core"
	"github.com/vovakirdan/tui-rockets/internal/event"
	"github.com/vovakirdan/tui-rockets/internal/particle"
	"github.com/vovakirdan/tui-rockets/internal/spatial"
)

// Cell is one drawable grid cell produced by a particle's sprite.
type Cell struct {
	At         spatial.GridCell
	Glyph      rune
	Foreground core.Color
	Background core.Color
}

// Frame is the drawable state of a scene plus the collisions found in it.
type Frame struct {
	Cells      []Cell
	Collisions []event.Collision
}

// Scene is an ordered set of particles with id bookkeeping.
type Scene struct {
	particles []particle.Particle
	nextID    particle.ID
}

// New creates an empty scene. The first assigned id is 1.
func New() *Scene {
	return &Scene{nextID: 1}
}

// Add inserts p at the end of the scene and returns its id.
// A particle carrying NoID gets the next free id; a pre-assigned id is kept
// and the counter moves past it.
func (s *Scene) Add(p particle.Particle) particle.ID {
	if s.nextID == particle.NoID {
		s.nextID = 1
	}

	if p.ID == particle.NoID {
		p.ID = s.nextID
		s.nextID++
	} else if p.ID >= s.nextID {
		s.nextID = p.ID + 1
	}

	s.particles = append(s.particles, p)
	return p.ID
}

// Remove deletes the particle at slot idx. Later slots shift down by one.
// Out-of-range indices are ignored.
func (s *Scene) Remove(idx int) {
	if idx < 0 || idx >= len(s.particles) {
		return
	}
	s.particles = append(s.particles[:idx], s.particles[idx+1:]...)
}

// RemoveID deletes the particle with the given id, if present.
func (s *Scene) RemoveID(id particle.ID) {
	if idx, ok := s.IndexOf(id); ok {
		s.Remove(idx)
	}
}

// IndexOf resolves an id to its current slot.
func (s *Scene) IndexOf(id particle.ID) (int, bool) {
	for i := range s.particles {
		if s.particles[i].ID == id {
			return i, true
		}
	}
	return -1, false
}

// At returns the particle in slot idx, or nil when idx is out of range.
// The pointer is invalidated by the next Add or Remove.
func (s *Scene) At(idx int) *particle.Particle {
	if idx < 0 || idx >= len(s.particles) {
		return nil
	}
	return &s.particles[idx]
}

// Len returns the number of particles.
func (s *Scene) Len() int {
	return len(s.particles)
}

// Particles returns a copy of the particles in slot order.
func (s *Scene) Particles() []particle.Particle {
	out := make([]particle.Particle, len(s.particles))
	copy(out, s.particles)
	return out
}

// Renderable places every sprite on a gridWidth x gridHeight grid and
// detects collisions. Cells on the outer ring or beyond are dropped.
func (s *Scene) Renderable(gridWidth, gridHeight int) Frame {
	bounds := spatial.NewBounds(gridWidth, gridHeight)

	cells := make([]Cell, 0, len(s.particles))
	for i := range s.particles {
		p := &s.particles[i]
		bg := p.Kind.Background()
		for _, pc := range p.Sprite().Place(p.Position.ToCell()) {
			at := spatial.Cell(pc.X, pc.Y)
			if !bounds.Interior(at) {
				continue
			}
			cells = append(cells, Cell{
				At:         at,
				Glyph:      pc.Glyph,
				Foreground: pc.Foreground,
				Background: bg,
			})
		}
	}

	return Frame{Cells: cells, Collisions: s.collisions()}
}

// collisions groups particles by the cell of their raw position. The first
// particle seen in a cell claims it and collects every later peer.
func (s *Scene) collisions() []event.Collision {
	var out []event.Collision
	claimed := make(map[spatial.GridCell]bool, len(s.particles))

	for i := range s.particles {
		cell := s.particles[i].Position.ToCell()
		if claimed[cell] {
			continue
		}
		claimed[cell] = true

		ids := []particle.ID{s.particles[i].ID}
		for j := i + 1; j < len(s.particles); j++ {
			if s.particles[j].Position.ToCell() == cell {
				ids = append(ids, s.particles[j].ID)
			}
		}

		if len(ids) >= 2 {
			out = append(out, event.RefuelCollision{Participants: ids})
		}
	}

	return out
}
