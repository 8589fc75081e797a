package rockets

import "github.com/vovakirdan/tui-rockets/internal/sim"

// Snapshot contains the complete game state for determinism checks.
type Snapshot struct {
	Sim           sim.Snapshot
	State         string
	Scores        []int
	FuelCollected int
	Respawns      []int
	TickCount     int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Sim:           g.sim.Snapshot(),
		State:         g.state,
		Scores:        append([]int(nil), g.scores...),
		FuelCollected: g.fuelCollected,
		Respawns:      append([]int(nil), g.respawns...),
		TickCount:     g.tickCount,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Sim.Hash()
	h = h*31 + uint64(snap.FuelCollected) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.TickCount)     //#nosec G115 -- hash computation

	for _, c := range snap.State {
		h = h*31 + uint64(c) //#nosec G115 -- hash computation
	}
	for _, v := range snap.Scores {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.Respawns {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}
