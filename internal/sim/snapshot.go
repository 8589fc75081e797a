package sim

// particleFields is the number of ints recorded per particle in a Snapshot.
const particleFields = 10

// Snapshot contains the complete simulation state for determinism checks.
// Uses primitive types only for stable comparison.
type Snapshot struct {
	Tick       uint64
	GridWidth  int
	GridHeight int

	// Each particle is 10 ints: ID, X, Y, VX, VY, AX, AY, Kind, Fuel, Color
	ParticleCount int
	ParticleData  []int
}

// Snapshot returns the current simulation state.
func (s *Sim) Snapshot() Snapshot {
	ps := s.scene.Particles()
	data := make([]int, len(ps)*particleFields)

	for i, p := range ps {
		idx := i * particleFields
		data[idx] = int(p.ID) //#nosec G115 -- ids are small sequential counters
		data[idx+1] = p.Position.X
		data[idx+2] = p.Position.Y
		data[idx+3] = p.Velocity.X
		data[idx+4] = p.Velocity.Y
		data[idx+5] = p.Acceleration.X
		data[idx+6] = p.Acceleration.Y
		data[idx+7] = int(p.Kind)
		data[idx+8] = p.Fuel
		data[idx+9] = int(p.Color)
	}

	return Snapshot{
		Tick:          s.tick,
		GridWidth:     s.bounds.GridWidth,
		GridHeight:    s.bounds.GridHeight,
		ParticleCount: len(ps),
		ParticleData:  data,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.GridWidth)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.GridHeight)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ParticleCount) //#nosec G115 -- hash computation

	for _, v := range snap.ParticleData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}
