package game

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/roadrush/internal/config"
	"github.com/vovakirdan/roadrush/internal/core"
	"github.com/vovakirdan/roadrush/internal/sched"
)

// Spawner drops new entities on a repeating timer and owns the difficulty ramp.
type Spawner struct {
	cfg      config.SpawnConfig
	width    float64
	sprites  config.SpritesConfig
	state    *SessionState
	entities *entitySet
	renderer Renderer
	timers   Timers
	rng      *rand.Rand
	logger   *log.Logger

	timer   sched.Handle
	nextID  EntityID
	spawned int
}

func newSpawner(cfg config.RoadRushConfig, state *SessionState, entities *entitySet, deps Deps, rng *rand.Rand, logger *log.Logger) *Spawner {
	return &Spawner{
		cfg:      cfg.Spawn,
		width:    cfg.Playfield.Width,
		sprites:  cfg.Sprites,
		state:    state,
		entities: entities,
		renderer: deps.Renderer,
		timers:   deps.Timers,
		rng:      rng,
		logger:   logger,
	}
}

// Start installs the spawn timer and drops the first entity right away.
func (sp *Spawner) Start() {
	sp.schedule()
	sp.SpawnNow()
}

// SpawnNow creates one entity at a random lane position with a random category.
// It does nothing outside the Playing phase.
func (sp *Spawner) SpawnNow() {
	if !sp.state.Playing() {
		return
	}

	category := Obstacle
	if sp.rng.Intn(2) == 1 {
		category = BonusVehicle
	}
	lo := sp.cfg.Margin
	hi := int(sp.width) - sp.cfg.Margin
	x := lo
	if hi > lo {
		x = lo + sp.rng.Intn(hi-lo+1)
	}

	sp.place(category, float64(x), sp.cfg.YOffset)
}

// place creates an entity of the given category at (x, y).
func (sp *Spawner) place(category Category, x, y float64) *FallingEntity {
	sp.nextID++
	e := &FallingEntity{
		ID:       sp.nextID,
		Category: category,
		Pos:      core.Vec{X: x, Y: y},
	}

	switch category {
	case BonusVehicle:
		e.size = sp.sprites.Bonus
		e.sprite = sp.renderer.CreateSprite(x, y, TextureCar)
		e.sprite.SetTint(core.ColorBrightGreen)
	default:
		e.size = sp.sprites.Obstacle
		e.sprite = sp.renderer.CreateSprite(x, y, TextureObstacle)
	}

	sp.entities.add(e)
	sp.spawned++
	sp.logger.Debug("spawned", "id", e.ID, "category", category, "x", x)
	return e
}

// IncreaseDifficulty shortens the spawn interval by one step, never below the
// floor, and restarts the timer at the new period. At the floor it is a no-op.
func (sp *Spawner) IncreaseDifficulty() {
	if !sp.state.Playing() {
		return
	}
	if sp.state.SpawnDelayMs <= sp.cfg.MinDelayMs || sp.cfg.StepMs <= 0 {
		return
	}

	sp.state.SpawnDelayMs = max(sp.cfg.MinDelayMs, sp.state.SpawnDelayMs-sp.cfg.StepMs)
	sp.schedule()
	sp.logger.Debug("difficulty increased", "spawn_delay_ms", sp.state.SpawnDelayMs)
}

// Stop cancels the spawn timer.
func (sp *Spawner) Stop() {
	if sp.timer != 0 {
		sp.timers.Cancel(sp.timer)
		sp.timer = 0
	}
}

// Spawned returns how many entities were created so far.
func (sp *Spawner) Spawned() int {
	return sp.spawned
}

// schedule replaces any pending spawn timer with one at the current delay.
func (sp *Spawner) schedule() {
	sp.Stop()
	delay := time.Duration(sp.state.SpawnDelayMs) * time.Millisecond
	sp.timer = sp.timers.ScheduleRepeating(delay, sp.SpawnNow)
}
