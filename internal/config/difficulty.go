package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value to a preset. The empty string means
// "use the loaded config as is".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Presets only shift the starting point of the ramp; the ramp itself stays linear.
func ApplyPreset(cfg *RoadRushConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Lives.Initial = cfg.Lives.Max
		cfg.Spawn.InitialDelayMs += 1000
	case DifficultyHard:
		cfg.Lives.Initial = max(1, cfg.Lives.Initial-1)
		cfg.Spawn.InitialDelayMs = max(cfg.Spawn.MinDelayMs, cfg.Spawn.InitialDelayMs-1500)
		cfg.Physics.FallSpeed *= 1.25
	case DifficultyFixed:
		// No progression: the floor equals the starting delay
		cfg.Spawn.MinDelayMs = cfg.Spawn.InitialDelayMs
	}
}
