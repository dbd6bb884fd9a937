// Package config provides YAML-based game configuration loading,
// validation and difficulty presets for Road Rush.
package config

// RoadRushConfig contains all tunables for a single game session.
// Distances are in playfield pixels, speeds in pixels per second and
// delays in milliseconds.
type RoadRushConfig struct {
	Lives     LivesConfig     `yaml:"lives"`
	Spawn     SpawnConfig     `yaml:"spawn"`
	Timing    TimingConfig    `yaml:"timing"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Playfield PlayfieldConfig `yaml:"playfield"`
	Sprites   SpritesConfig   `yaml:"sprites"`
}

// LivesConfig defines the lives model.
type LivesConfig struct {
	Max     int `yaml:"max"`
	Initial int `yaml:"initial"`
}

// SpawnConfig defines the spawn controller and its difficulty ramp.
type SpawnConfig struct {
	InitialDelayMs int     `yaml:"initial_delay_ms"`
	MinDelayMs     int     `yaml:"min_delay_ms"`
	StepMs         int     `yaml:"step_ms"`
	YOffset        float64 `yaml:"y_offset"` // Spawn height, negative = above the playfield
	Margin         int     `yaml:"margin"`   // Horizontal distance kept from both edges
}

// TimingConfig defines the game-over delay chain.
type TimingConfig struct {
	GameOverDelayMs   int `yaml:"game_over_delay_ms"`
	ReturnMenuDelayMs int `yaml:"return_menu_delay_ms"`
}

// PhysicsConfig defines motion parameters.
type PhysicsConfig struct {
	PlayerSpeed     float64 `yaml:"player_speed"`
	FallSpeed       float64 `yaml:"fall_speed"`
	BackgroundSpeed float64 `yaml:"background_speed"` // Pixels per frame, cosmetic
	ExitMargin      float64 `yaml:"exit_margin"`
}

// PlayfieldConfig defines the logical playfield size.
type PlayfieldConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	PlayerYOffset float64 `yaml:"player_y_offset"` // Distance of the player from the bottom edge
}

// SpriteSize is the collision size of a sprite.
type SpriteSize struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// SpritesConfig defines collision sizes per texture.
type SpritesConfig struct {
	Player   SpriteSize `yaml:"player"`
	Obstacle SpriteSize `yaml:"obstacle"`
	Bonus    SpriteSize `yaml:"bonus"`
}

// PlayerY returns the fixed vertical position of the player vehicle.
func (c RoadRushConfig) PlayerY() float64 {
	return c.Playfield.Height - c.Playfield.PlayerYOffset
}
