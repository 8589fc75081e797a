package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadRockets("")
	if err != nil {
		t.Fatalf("LoadRockets: %v", err)
	}
	if cfg != DefaultRocketsConfig() {
		t.Errorf("embedded defaults %+v differ from hardcoded %+v", cfg, DefaultRocketsConfig())
	}
}

func TestLoadRocketsCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("physics:\n  thrust: 9\nfuel_cells:\n  count: 5\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRockets(path)
	if err != nil {
		t.Fatalf("LoadRockets: %v", err)
	}
	if cfg.Physics.Thrust != 9 || cfg.FuelCells.Count != 5 {
		t.Errorf("got thrust %d count %d, expected 9 and 5", cfg.Physics.Thrust, cfg.FuelCells.Count)
	}
}

func TestLoadRocketsErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("physics: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(dir, "nope.yaml")},
		{"malformed yaml", bad},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := LoadRockets(tc.path); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadRocketsUserDirectory(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".rockets", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "rockets.yaml"), []byte("physics:\n  initial_fuel: 77\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRockets("")
	if err != nil {
		t.Fatalf("LoadRockets: %v", err)
	}
	if cfg.Physics.InitialFuel != 77 {
		t.Errorf("initial fuel = %d, expected 77 from user config", cfg.Physics.InitialFuel)
	}
}

func TestApplyRocketsPreset(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		wantEnabled bool
		wantLevel   float64
	}{
		{DifficultyEasy, true, 0.0},
		{DifficultyNormal, true, 0.3},
		{DifficultyHard, true, 0.7},
		{DifficultyFixed, false, 0.0},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultRocketsConfig()
			ApplyRocketsPreset(&cfg, tc.preset)

			if cfg.Difficulty.Enabled != tc.wantEnabled {
				t.Errorf("enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.wantEnabled)
			}
			if cfg.Difficulty.InitialLevel != tc.wantLevel {
				t.Errorf("initial level = %v, expected %v", cfg.Difficulty.InitialLevel, tc.wantLevel)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("hard not parsed")
	}
	if ParsePreset("insane") != "" {
		t.Error("unknown preset should be empty")
	}
}

func TestGetDefaultYAML(t *testing.T) {
	if len(GetDefaultYAML("rockets")) == 0 {
		t.Error("no embedded yaml for rockets")
	}
	if GetDefaultYAML("pong") != nil {
		t.Error("unexpected yaml for unknown game")
	}
}
