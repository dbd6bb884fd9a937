package config

import (
	_ "embed"
)

//go:embed defaults/roadrush.yaml
var defaultRoadRushYAML []byte

// DefaultRoadRushConfig returns the built-in configuration.
func DefaultRoadRushConfig() RoadRushConfig {
	return RoadRushConfig{
		Lives: LivesConfig{
			Max:     5,
			Initial: 3,
		},
		Spawn: SpawnConfig{
			InitialDelayMs: 7000,
			MinDelayMs:     4000,
			StepMs:         200,
			YOffset:        -30,
			Margin:         40,
		},
		Timing: TimingConfig{
			GameOverDelayMs:   2500,
			ReturnMenuDelayMs: 3500,
		},
		Physics: PhysicsConfig{
			PlayerSpeed:     220,
			FallSpeed:       150,
			BackgroundSpeed: 4,
			ExitMargin:      40,
		},
		Playfield: PlayfieldConfig{
			Width:         320,
			Height:        480,
			PlayerYOffset: 60,
		},
		Sprites: SpritesConfig{
			Player:   SpriteSize{Width: 32, Height: 48},
			Obstacle: SpriteSize{Width: 32, Height: 32},
			Bonus:    SpriteSize{Width: 32, Height: 48},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultRoadRushYAML
}
