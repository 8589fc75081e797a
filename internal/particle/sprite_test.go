package particle

import (
	"testing"

	"github.com/vovakirdan/tui-rockets/internal/core"
	"github.com/vovakirdan/tui-rockets/internal/spatial"
)

func TestSpritePlace(t *testing.T) {
	s := NewSprite(spatial.Cell(1, 0),
		SpriteCell{Offset: spatial.Cell(0, 0), Glyph: '<', Foreground: core.ColorRed},
		SpriteCell{Offset: spatial.Cell(1, 0), Glyph: 'o', Foreground: core.ColorWhite},
		SpriteCell{Offset: spatial.Cell(2, 0), Glyph: '>', Foreground: core.ColorRed},
	)

	placed := s.Place(spatial.Cell(0, 4))

	want := []PlacedCell{
		{X: -1, Y: 4, Glyph: '<', Foreground: core.ColorRed},
		{X: 0, Y: 4, Glyph: 'o', Foreground: core.ColorWhite},
		{X: 1, Y: 4, Glyph: '>', Foreground: core.ColorRed},
	}
	if len(placed) != len(want) {
		t.Fatalf("placed %d cells, expected %d", len(placed), len(want))
	}
	for i := range want {
		if placed[i] != want[i] {
			t.Errorf("cell %d = %+v, expected %+v", i, placed[i], want[i])
		}
	}
}

func TestNewSpritePanicsWithoutAnchorCell(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for anchor outside the cell set")
		}
	}()

	NewSprite(spatial.Cell(5, 5), SpriteCell{Offset: spatial.Cell(0, 0), Glyph: 'x'})
}

func TestParticleSpriteIsSingleCell(t *testing.T) {
	p := NewFuelCell(spatial.C(128, 128), spatial.C(0, 0))

	placed := p.Sprite().Place(p.Position.ToCell())

	if len(placed) != 1 {
		t.Fatalf("placed %d cells, expected 1", len(placed))
	}
	if placed[0].X != 2 || placed[0].Y != 2 || placed[0].Glyph != FuelCellGlyph {
		t.Errorf("placed %+v, expected fuel cell glyph at (2,2)", placed[0])
	}
	if placed[0].Foreground != core.ColorBrightYellow {
		t.Errorf("foreground = %v, expected bright yellow", placed[0].Foreground)
	}
}
