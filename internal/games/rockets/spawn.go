package rockets

import (
	"github.com/vovakirdan/tui-rockets/internal/core"
	"github.com/vovakirdan/tui-rockets/internal/particle"
	"github.com/vovakirdan/tui-rockets/internal/spatial"
)

// spawnAttempts bounds the search for a cell free of rockets.
const spawnAttempts = 8

// spawnFuelCell drops a fuel cell on a random interior cell with a random
// drift. It avoids rocket cells when it can, so a spawn never counts as a pickup.
func (g *Game) spawnFuelCell() {
	at := g.randomInteriorCell()
	for range spawnAttempts {
		if !g.rocketOn(at) {
			break
		}
		at = g.randomInteriorCell()
	}

	drift := g.cfg.FuelCells.DriftSpeed
	vel := spatial.C(g.randRange(-drift, drift), g.randRange(-drift, drift))

	id := g.sim.Scene().Add(particle.NewFuelCell(spatial.FromCell(at), vel))
	logger.Debug("fuel cell spawned", "id", id, "cell", at, "velocity", vel)
}

// randomInteriorCell skips column 1 where it can: the low x edge bounces on
// the cell, so a slow drifter spawned there would flip direction every tick.
func (g *Game) randomInteriorCell() spatial.GridCell {
	b := g.sim.Bounds()
	minX := core.Min(2, b.GridWidth-2)
	return spatial.Cell(g.randRange(minX, b.GridWidth-2), g.randRange(1, b.GridHeight-2))
}

// randRange returns a value in [lo, hi]; hi < lo yields lo.
func (g *Game) randRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.rng.Intn(hi-lo+1)
}

func (g *Game) rocketOn(cell spatial.GridCell) bool {
	sc := g.sim.Scene()
	for _, id := range g.rocketIDs {
		if idx, ok := sc.IndexOf(id); ok && sc.At(idx).Position.ToCell() == cell {
			return true
		}
	}
	return false
}
