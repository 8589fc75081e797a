package config

import (
	_ "embed"
)

//go:embed defaults/rockets.yaml
var defaultRocketsYAML []byte

// DefaultRocketsConfig returns the default rockets configuration.
func DefaultRocketsConfig() RocketsConfig {
	return RocketsConfig{
		Physics: RocketsPhysics{
			VelocityCap: 128,
			Thrust:      4,
			InitialFuel: 300,
		},
		FuelCells: FuelCellsConfig{
			Count:        3,
			RefuelAmount: 120,
			RespawnDelay: 40,
			DriftSpeed:   16,
		},
		Arena: ArenaConfig{
			Width:  0,
			Height: 0,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 30,
			},
			Scaling: ScalingConfig{
				RefuelReduction: 0.5,
				RespawnIncrease: 60,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "rockets", "rockets_duel":
		return defaultRocketsYAML
	default:
		return nil
	}
}
