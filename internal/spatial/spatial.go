// Package spatial holds the fixed-point coordinate model of the simulation.
//
// Positions and velocities live in subpixel units; SubpixelScale units make
// one grid cell. Everything that needs to know "which cell is this in" goes
// through Coordinate.ToCell.
package spatial

import (
	"fmt"
	"math"
)

// SubpixelScale is the number of subpixel units per grid cell.
const SubpixelScale = 64

// Coordinate is a position, velocity or acceleration in subpixel units.
type Coordinate struct {
	X int
	Y int
}

// C is a convenience constructor for Coordinate.
func C(x, y int) Coordinate {
	return Coordinate{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add adds other component-wise in place and returns the updated value.
func (c *Coordinate) Add(other Coordinate) Coordinate {
	c.X += other.X
	c.Y += other.Y
	return *c
}

// IsZero reports whether both components are zero.
func (c Coordinate) IsZero() bool {
	return c.X == 0 && c.Y == 0
}

// ToCell converts to grid coordinates: each axis is divided by the scale,
// rounded half away from zero and clamped to be non-negative.
func (c Coordinate) ToCell() GridCell {
	return GridCell{X: toCellAxis(c.X), Y: toCellAxis(c.Y)}
}

func toCellAxis(v int) int {
	cell := int(math.Round(float64(v) / SubpixelScale))
	if cell < 0 {
		return 0
	}
	return cell
}

// GridCell is a character position in the rendered grid.
// Comparable by value, so it can key a map.
type GridCell struct {
	X int
	Y int
}

// Cell is a convenience constructor for GridCell.
func Cell(x, y int) GridCell {
	return GridCell{X: x, Y: y}
}

// String returns a string representation of the cell.
func (g GridCell) String() string {
	return fmt.Sprintf("[%d,%d]", g.X, g.Y)
}

// FromCell returns the subpixel coordinate of a cell's center.
func FromCell(g GridCell) Coordinate {
	return Coordinate{X: g.X * SubpixelScale, Y: g.Y * SubpixelScale}
}

// Bounds describes the arena in both unit systems.
type Bounds struct {
	PixelWidth  int
	PixelHeight int
	GridWidth   int
	GridHeight  int
}

// NewBounds derives subpixel extents from a grid size.
func NewBounds(gridWidth, gridHeight int) Bounds {
	return Bounds{
		PixelWidth:  gridWidth * SubpixelScale,
		PixelHeight: gridHeight * SubpixelScale,
		GridWidth:   gridWidth,
		GridHeight:  gridHeight,
	}
}

// Interior reports whether a cell lies inside the drawable region,
// i.e. not on the one-cell border ring.
func (b Bounds) Interior(g GridCell) bool {
	return g.X >= 1 && g.X <= b.GridWidth-2 && g.Y >= 1 && g.Y <= b.GridHeight-2
}
