package sim

import (
	"testing"

	"github.com/vovakirdan/tui-rockets/internal/event"
	"github.com/vovakirdan/tui-rockets/internal/particle"
	"github.com/vovakirdan/tui-rockets/internal/spatial"
)

func place(s *Sim, kind particle.Kind, x, y int) particle.ID {
	p := particle.New(kind, spatial.FromCell(spatial.Cell(x, y)), spatial.C(0, 0))
	if kind == particle.Rocket {
		p.Fuel = particle.MaxFuel
	}
	return s.Scene().Add(p)
}

func TestTickRocketMeetsFuelCell(t *testing.T) {
	s := New(10, 10)
	place(s, particle.Rocket, 5, 5)
	place(s, particle.FuelCell, 5, 5)

	res := s.Tick(nil)

	if len(res.Events) != 1 {
		t.Fatalf("got %d events, expected 1", len(res.Events))
	}
	ev, ok := res.Events[0].(event.RefuelEvent)
	if !ok {
		t.Fatalf("event type %T, expected RefuelEvent", res.Events[0])
	}
	if ev.RocketIdx != 0 || ev.FuelCellIdx != 1 {
		t.Errorf("event = %+v, expected rocket 0 fuel 1", ev)
	}
	if res.Tick != 1 {
		t.Errorf("Tick = %d, expected 1", res.Tick)
	}
}

func TestTickDoesNotActOnEvents(t *testing.T) {
	s := New(10, 10)
	place(s, particle.Rocket, 5, 5)
	place(s, particle.FuelCell, 5, 5)

	s.Tick(nil)

	if s.Scene().Len() != 2 {
		t.Errorf("scene has %d particles, expected both to remain", s.Scene().Len())
	}
	if s.Scene().At(0).Fuel != particle.MaxFuel {
		t.Errorf("rocket fuel changed to %d", s.Scene().At(0).Fuel)
	}
}

func TestTickShortBoostSlice(t *testing.T) {
	s := New(10, 10)
	place(s, particle.Rocket, 3, 3)
	place(s, particle.Rocket, 6, 6)

	s.Tick([]*particle.Boost{particle.Thrust(spatial.C(4, 0))})

	if v := s.Scene().At(0).Velocity; v != spatial.C(4, 0) {
		t.Errorf("slot 0 velocity = %v, expected (4,0)", v)
	}
	if v := s.Scene().At(1).Velocity; !v.IsZero() {
		t.Errorf("slot 1 velocity = %v, expected zero", v)
	}
}

func TestTickEraseAndDraw(t *testing.T) {
	s := New(10, 10)
	p := particle.NewRocket(spatial.FromCell(spatial.Cell(3, 3)), spatial.C(128, 0), 0)
	s.Scene().Add(p)

	res := s.Tick(nil)

	if len(res.Erase) != 1 || res.Erase[0].At != spatial.Cell(3, 3) {
		t.Errorf("erase = %+v, expected one cell at (3,3)", res.Erase)
	}
	if len(res.Draw) != 1 || res.Draw[0].At != spatial.Cell(4, 3) {
		t.Errorf("draw = %+v, expected one cell at (4,3)", res.Draw)
	}
	if res.Draw[0].Glyph != '→' {
		t.Errorf("draw glyph = %q, expected →", res.Draw[0].Glyph)
	}
}

func TestReduce(t *testing.T) {
	tests := []struct {
		name  string
		kinds []particle.Kind
		want  []event.RefuelEvent
	}{
		{
			name:  "first rocket and first fuel cell",
			kinds: []particle.Kind{particle.Rocket, particle.Rocket, particle.FuelCell},
			want:  []event.RefuelEvent{{RocketIdx: 0, FuelCellIdx: 2}},
		},
		{
			name:  "fuel cell listed first",
			kinds: []particle.Kind{particle.FuelCell, particle.FuelCell, particle.Rocket},
			want:  []event.RefuelEvent{{RocketIdx: 2, FuelCellIdx: 0}},
		},
		{
			name:  "rockets only",
			kinds: []particle.Kind{particle.Rocket, particle.Rocket},
		},
		{
			name:  "fuel cells only",
			kinds: []particle.Kind{particle.FuelCell, particle.FuelCell},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := New(10, 10)
			for _, k := range tc.kinds {
				place(s, k, 4, 4)
			}

			events := Reduce(s.Scene(), s.Frame().Collisions)

			if len(events) != len(tc.want) {
				t.Fatalf("got %d events, expected %d", len(events), len(tc.want))
			}
			for i, want := range tc.want {
				if events[i] != want {
					t.Errorf("event %d = %+v, expected %+v", i, events[i], want)
				}
			}
		})
	}
}

func TestReduceResolvesCurrentSlots(t *testing.T) {
	s := New(10, 10)
	gone := place(s, particle.FuelCell, 1, 1)
	r := place(s, particle.Rocket, 4, 4)
	f := place(s, particle.FuelCell, 4, 4)

	s.Scene().RemoveID(gone)
	collisions := []event.Collision{
		event.RefuelCollision{Participants: []particle.ID{gone, r, f}},
	}

	events := Reduce(s.Scene(), collisions)

	if len(events) != 1 {
		t.Fatalf("got %d events, expected 1", len(events))
	}
	if got := events[0].(event.RefuelEvent); got.RocketIdx != 0 || got.FuelCellIdx != 1 {
		t.Errorf("event = %+v, expected rocket 0 fuel 1 after slot shift", got)
	}
}

func TestSimDeterminism(t *testing.T) {
	run := func(thrust spatial.Coordinate) uint64 {
		s := New(30, 12)
		s.Scene().Add(particle.NewRocket(spatial.C(640, 320), spatial.C(0, 0), particle.MaxFuel))
		s.Scene().Add(particle.NewFuelCell(spatial.C(320, 192), spatial.C(40, -24)))

		for i := range 300 {
			var b *particle.Boost
			switch {
			case i%50 < 10:
				b = particle.Thrust(thrust)
			case i%50 < 20:
				b = particle.Brake()
			}
			s.Tick([]*particle.Boost{b})
		}

		snap := s.Snapshot()
		return snap.Hash()
	}

	a, b := run(spatial.C(3, 2)), run(spatial.C(3, 2))
	if a != b {
		t.Errorf("same inputs gave hashes %d and %d", a, b)
	}
	if c := run(spatial.C(-3, 2)); c == a {
		t.Error("different inputs gave the same hash")
	}
}
