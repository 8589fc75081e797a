package rockets

import (
	"github.com/vovakirdan/tui-rockets/internal/core"
	"github.com/vovakirdan/tui-rockets/internal/particle"
	"github.com/vovakirdan/tui-rockets/internal/spatial"
)

// boosts builds the per-slot boost list for one tick. Only rockets get an
// entry; fuel cells in later slots drift without one.
func (g *Game) boosts(in core.InputFrame) []*particle.Boost {
	out := make([]*particle.Boost, len(g.rocketIDs))
	for slot := range out {
		out[slot] = boostFor(in, core.Controls[slot], g.cfg.Physics.Thrust)
	}
	return out
}

// boostFor maps one player's held actions to a boost. Opposing directions
// cancel; with no net direction the brake key applies.
func boostFor(in core.InputFrame, c core.PlayerControls, thrust int) *particle.Boost {
	var dx, dy int
	if in.Has(c.Left) {
		dx--
	}
	if in.Has(c.Right) {
		dx++
	}
	if in.Has(c.Up) {
		dy--
	}
	if in.Has(c.Down) {
		dy++
	}

	switch {
	case dx != 0 || dy != 0:
		return particle.Thrust(spatial.C(dx*thrust, dy*thrust))
	case in.Has(c.Brake):
		return particle.Brake()
	default:
		return nil
	}
}
