// Package config provides YAML-based game configuration loading and
// difficulty management for the rockets game.
package config

// RocketsConfig contains all configuration for the rockets game.
type RocketsConfig struct {
	Physics    RocketsPhysics   `yaml:"physics"`
	FuelCells  FuelCellsConfig  `yaml:"fuel_cells"`
	Arena      ArenaConfig      `yaml:"arena"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// RocketsPhysics defines rocket motion parameters, in subpixel units.
type RocketsPhysics struct {
	VelocityCap int `yaml:"velocity_cap"` // Per-axis speed limit
	Thrust      int `yaml:"thrust"`       // Acceleration added per held direction key
	InitialFuel int `yaml:"initial_fuel"` // Fuel at spawn, at most 510
}

// FuelCellsConfig defines fuel cell spawning and refuel parameters.
type FuelCellsConfig struct {
	Count        int `yaml:"count"`         // Cells kept on the field
	RefuelAmount int `yaml:"refuel_amount"` // Fuel credited per pickup
	RespawnDelay int `yaml:"respawn_delay"` // Ticks before a consumed cell returns
	DriftSpeed   int `yaml:"drift_speed"`   // Max initial speed per axis
}

// ArenaConfig fixes the arena size in cells. Zero means use the terminal size.
type ArenaConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	RefuelReduction float64 `yaml:"refuel_reduction"` // Fraction of refuel removed at max difficulty
	RespawnIncrease int     `yaml:"respawn_increase"` // Ticks added to the respawn delay at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown names yield "".
func ParsePreset(name string) DifficultyPreset {
	switch DifficultyPreset(name) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(name)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
