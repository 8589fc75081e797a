package config

import "testing"

func TestDifficultyScaling(t *testing.T) {
	cfg := DefaultRocketsConfig().Difficulty
	dm := NewDifficultyManager(cfg)

	tests := []struct {
		name        string
		score       int
		wantRefuel  int
		wantRespawn int
	}{
		{"start", 0, 120, 40},
		{"halfway", 15, 90, 70},
		{"max", 30, 60, 100},
		{"beyond max clamps", 300, 60, 100},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := dm.RefuelAmount(120, tc.score, 0); got != tc.wantRefuel {
				t.Errorf("RefuelAmount = %d, expected %d", got, tc.wantRefuel)
			}
			if got := dm.RespawnDelay(40, tc.score, 0); got != tc.wantRespawn {
				t.Errorf("RespawnDelay = %d, expected %d", got, tc.wantRespawn)
			}
		})
	}
}

func TestDifficultyDisabledUsesInitialLevel(t *testing.T) {
	cfg := DefaultRocketsConfig().Difficulty
	cfg.Enabled = false
	cfg.InitialLevel = 0.7
	dm := NewDifficultyManager(cfg)

	if lvl := dm.Level(1000, 1000); lvl != 0.7 {
		t.Errorf("Level = %v, expected 0.7", lvl)
	}
	if dm.IsEnabled() {
		t.Error("IsEnabled should be false")
	}
}

func TestRefuelAmountFloor(t *testing.T) {
	cfg := DefaultRocketsConfig().Difficulty
	cfg.Scaling.RefuelReduction = 1.0
	dm := NewDifficultyManager(cfg)

	if got := dm.RefuelAmount(120, 30, 0); got != 1 {
		t.Errorf("RefuelAmount = %d, expected floor of 1", got)
	}
}
