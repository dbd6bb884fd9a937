// Package game implements the Road Rush session core: spawning and the
// difficulty ramp, falling motion, collisions and lives, and the game-over
// lifecycle. Drawing, input, timers and menus are reached through the
// interfaces in ports.go, so the core runs the same under the terminal host
// and in tests.
package game

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/roadrush/internal/config"
	"github.com/vovakirdan/roadrush/internal/core"
)

// GameOverText is shown once the game-over delay has elapsed.
const GameOverText = "Game Over"

// Option customizes a session at start.
type Option func(*options)

type options struct {
	logger *log.Logger
	seed   int64
	seeded bool
}

// WithLogger routes session events to the given logger.
func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithSeed fixes the RNG used for spawn positions and categories.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
		o.seeded = true
	}
}

// Session is one play-through, from the first spawn to the hand-off back to
// the menu. It is driven entirely by OnFrame, OnPointerMove and the timers it
// registers, all of which must run on the same goroutine.
type Session struct {
	cfg    config.RoadRushConfig
	deps   Deps
	logger *log.Logger

	state    SessionState
	entities *entitySet
	player   *PlayerVehicle
	spawner  *Spawner
	mover    *Mover
	resolver *Resolver

	frames  int
	endedAt float64
}

// Start builds a session and begins play immediately: the HUD is drawn, the
// player placed, the spawn timer installed and the first entity dropped.
// Deps.Timers must not be nil.
func Start(cfg config.RoadRushConfig, deps Deps, opts ...Option) *Session {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = log.New(io.Discard)
	}
	if !o.seeded {
		o.seed = time.Now().UnixNano()
	}

	deps = deps.withDefaults()
	s := &Session{
		cfg:      cfg,
		deps:     deps,
		logger:   o.logger,
		entities: newEntitySet(),
		state: SessionState{
			Lives:        core.Clamp(cfg.Lives.Initial, 0, cfg.Lives.Max),
			MaxLives:     cfg.Lives.Max,
			SpawnDelayMs: cfg.Spawn.InitialDelayMs,
			Phase:        PhasePlaying,
		},
	}

	rng := rand.New(rand.NewSource(o.seed))
	s.player = newPlayer(cfg, deps.Renderer)
	s.spawner = newSpawner(cfg, &s.state, s.entities, deps, rng, s.logger)
	s.mover = newMover(cfg, &s.state, s.entities, s.spawner)
	s.resolver = newResolver(&s.state, s.entities, s.player, deps.HUD, s.logger, s.enterEnding)

	s.deps.HUD.Draw(s.state.Lives)
	s.logger.Info("session started",
		"lives", s.state.Lives,
		"spawn_delay_ms", s.state.SpawnDelayMs,
		"seed", o.seed,
	)

	if s.state.Lives == 0 {
		// A zero-life config never gets to play
		s.enterEnding()
		return s
	}
	s.spawner.Start()
	return s
}

// OnFrame runs one frame: player steering, falling motion and retirement,
// then collisions against the post-motion positions. timeMs is the host's
// frame time and deltaMs the time since the previous frame. Outside the
// Playing phase only the cosmetic background scroll advances.
//
// Collisions are tested once per frame against the positions after motion,
// so at very low frame rates a falling entity can step over the player
// without ever overlapping it.
func (s *Session) OnFrame(timeMs, deltaMs float64) {
	s.mover.Scroll()
	if !s.state.Playing() {
		return
	}

	dt := max(deltaMs, 0) / 1000
	s.player.Steer(s.deps.Input.Directional(), dt)
	if x, ok := s.deps.Input.PointerX(); ok {
		s.player.FollowPointer(x)
	}

	s.mover.Update(dt)
	s.resolver.Resolve()
	s.frames++
	if !s.state.Playing() {
		s.endedAt = timeMs
	}
}

// OnPointerMove moves the player straight to the pointer's X position.
func (s *Session) OnPointerMove(x float64) {
	if !s.state.Playing() {
		return
	}
	s.player.FollowPointer(x)
}

// IncreaseDifficulty shortens the spawn interval by one step.
func (s *Session) IncreaseDifficulty() {
	s.spawner.IncreaseDifficulty()
}

// enterEnding tears the round down once lives hit zero and starts the
// game-over timer chain. Further calls are no-ops.
func (s *Session) enterEnding() {
	if !s.state.Playing() {
		return
	}
	s.state.Phase = PhaseEnding

	s.spawner.Stop()
	cleared := s.entities.clear()
	s.deps.HUD.Clear()
	s.player.destroy()

	s.logger.Info("game over", "frames", s.frames, "cleared", cleared)

	delay := time.Duration(s.cfg.Timing.GameOverDelayMs) * time.Millisecond
	s.deps.Timers.ScheduleOnce(delay, s.showGameOver)
}

func (s *Session) showGameOver() {
	if s.state.Phase != PhaseEnding {
		return
	}
	s.state.Phase = PhaseShowingGameOver
	s.deps.Renderer.ShowMessage(GameOverText)
	s.logger.Info("showing game over")

	delay := time.Duration(s.cfg.Timing.ReturnMenuDelayMs) * time.Millisecond
	s.deps.Timers.ScheduleOnce(delay, s.returnToMenu)
}

func (s *Session) returnToMenu() {
	if s.state.Phase != PhaseShowingGameOver {
		return
	}
	s.state.Phase = PhaseReturning
	s.logger.Info("returning to menu")
	s.deps.Navigator.ReturnToMenu()
}

// Phase returns the current lifecycle phase.
func (s *Session) Phase() Phase {
	return s.state.Phase
}

// Lives returns the remaining lives.
func (s *Session) Lives() int {
	return s.state.Lives
}

// SpawnDelayMs returns the current spawn interval.
func (s *Session) SpawnDelayMs() int {
	return s.state.SpawnDelayMs
}

// ScrollOffset returns the background scroll offset in pixels.
func (s *Session) ScrollOffset() float64 {
	return s.mover.ScrollOffset()
}

// ActiveCount returns the number of falling entities on the road.
func (s *Session) ActiveCount() int {
	return s.entities.len()
}

// Config returns the configuration the session was started with.
func (s *Session) Config() config.RoadRushConfig {
	return s.cfg
}
