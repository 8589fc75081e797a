package particle

import (
	"fmt"

	"github.com/vovakirdan/tui-rockets/internal/core"
	"github.com/vovakirdan/tui-rockets/internal/spatial"
)

// SpriteCell is one glyph of a sprite, relative to the sprite's origin.
type SpriteCell struct {
	Offset     spatial.GridCell
	Glyph      rune
	Foreground core.Color
}

// Sprite is the set of cells a particle occupies around its logical position.
// Anchor is the offset that lands on the particle's own cell.
type Sprite struct {
	Cells  []SpriteCell
	Anchor spatial.GridCell
}

// PlacedCell is a sprite cell resolved to absolute grid coordinates.
// Coordinates may be negative or beyond the grid; callers clip.
type PlacedCell struct {
	X, Y       int
	Glyph      rune
	Foreground core.Color
}

// NewSprite builds a sprite. It panics if anchor is not one of the cell offsets.
func NewSprite(anchor spatial.GridCell, cells ...SpriteCell) Sprite {
	for _, c := range cells {
		if c.Offset == anchor {
			return Sprite{Cells: cells, Anchor: anchor}
		}
	}
	panic(fmt.Errorf(`particle.NewSprite anchor %v not among %d cells`, anchor, len(cells)))
}

// SingleCell returns a one-glyph sprite anchored on itself.
func SingleCell(glyph rune, fg core.Color) Sprite {
	return NewSprite(spatial.GridCell{}, SpriteCell{Glyph: glyph, Foreground: fg})
}

// Place positions every sprite cell at base + (offset - anchor).
func (s Sprite) Place(base spatial.GridCell) []PlacedCell {
	placed := make([]PlacedCell, 0, len(s.Cells))
	for _, c := range s.Cells {
		placed = append(placed, PlacedCell{
			X:          base.X + c.Offset.X - s.Anchor.X,
			Y:          base.Y + c.Offset.Y - s.Anchor.Y,
			Glyph:      c.Glyph,
			Foreground: c.Foreground,
		})
	}
	return placed
}

// Sprite returns the particle's current sprite. Every kind is a single cell
// today, drawn in the particle's own color.
func (p *Particle) Sprite() Sprite {
	return SingleCell(p.Glyph(), p.Color)
}
