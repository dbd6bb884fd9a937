package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name looked up in the config directories.
const ConfigFile = "roadrush.yaml"

// Load loads the Road Rush configuration.
// Search order: customPath -> ~/.roadrush/configs/roadrush.yaml -> ./configs/roadrush.yaml -> embedded default.
// Files are decoded on top of the defaults, so a file only needs the keys it overrides.
// A custom path that cannot be read or parsed is an error; the other locations are best-effort.
func Load(customPath string) (RoadRushConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return RoadRushConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return RoadRushConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{userConfigPath(ConfigFile), filepath.Join("configs", ConfigFile)}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultRoadRushYAML)
	if err != nil {
		return DefaultRoadRushConfig(), nil // Fallback to hardcoded if embed is broken
	}
	return cfg, nil
}

// Parse decodes YAML over the built-in defaults and validates the result.
func Parse(data []byte) (RoadRushConfig, error) {
	cfg := DefaultRoadRushConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RoadRushConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return RoadRushConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes a configuration back to YAML.
func Marshal(cfg RoadRushConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".roadrush", "configs", filename)
}

// Validate reports every field that would break the session invariants.
func (c RoadRushConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Lives.Max > 0, "lives.max must be positive, got %d", c.Lives.Max)
	check(c.Lives.Initial > 0 && c.Lives.Initial <= c.Lives.Max,
		"lives.initial must be in [1, %d], got %d", c.Lives.Max, c.Lives.Initial)

	check(c.Spawn.MinDelayMs > 0, "spawn.min_delay_ms must be positive, got %d", c.Spawn.MinDelayMs)
	check(c.Spawn.InitialDelayMs >= c.Spawn.MinDelayMs,
		"spawn.initial_delay_ms (%d) must not be below spawn.min_delay_ms (%d)",
		c.Spawn.InitialDelayMs, c.Spawn.MinDelayMs)
	check(c.Spawn.StepMs >= 0, "spawn.step_ms must not be negative, got %d", c.Spawn.StepMs)
	check(c.Spawn.Margin >= 0 && float64(2*c.Spawn.Margin) <= c.Playfield.Width,
		"spawn.margin %d does not fit a playfield %v wide", c.Spawn.Margin, c.Playfield.Width)

	check(c.Timing.GameOverDelayMs >= 0, "timing.game_over_delay_ms must not be negative")
	check(c.Timing.ReturnMenuDelayMs >= 0, "timing.return_menu_delay_ms must not be negative")

	check(c.Physics.PlayerSpeed >= 0, "physics.player_speed must not be negative")
	check(c.Physics.FallSpeed > 0, "physics.fall_speed must be positive, got %v", c.Physics.FallSpeed)

	check(c.Playfield.Width > 0 && c.Playfield.Height > 0,
		"playfield must have a positive size, got %vx%v", c.Playfield.Width, c.Playfield.Height)
	check(c.Sprites.Player.Width > 0 && c.Sprites.Player.Width <= c.Playfield.Width,
		"sprites.player.width must be in (0, playfield.width]")
	check(c.Sprites.Player.Height > 0, "sprites.player.height must be positive")
	check(c.Sprites.Obstacle.Width > 0 && c.Sprites.Obstacle.Height > 0, "sprites.obstacle must have a positive size")
	check(c.Sprites.Bonus.Width > 0 && c.Sprites.Bonus.Height > 0, "sprites.bonus must have a positive size")

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("config: invalid configuration: %w", errors.Join(errs...))
}
