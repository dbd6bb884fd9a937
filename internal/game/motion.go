package game

import (
	"github.com/vovakirdan/roadrush/internal/config"
)

// difficultyRaiser is notified when a bonus vehicle leaves the road uncollected.
type difficultyRaiser interface {
	IncreaseDifficulty()
}

// Mover advances falling entities and retires the ones that left the playfield.
type Mover struct {
	fallSpeed  float64
	exitY      float64
	scrollStep float64
	state      *SessionState
	entities   *entitySet
	raiser     difficultyRaiser

	scroll  float64
	retired int
}

func newMover(cfg config.RoadRushConfig, state *SessionState, entities *entitySet, raiser difficultyRaiser) *Mover {
	return &Mover{
		fallSpeed:  cfg.Physics.FallSpeed,
		exitY:      cfg.Playfield.Height + cfg.Physics.ExitMargin,
		scrollStep: cfg.Physics.BackgroundSpeed,
		state:      state,
		entities:   entities,
		raiser:     raiser,
	}
}

// Scroll advances the cosmetic background offset by one frame.
func (m *Mover) Scroll() {
	m.scroll += m.scrollStep
}

// Update moves every entity down by fallSpeed*dt and retires those past the
// exit line. Exits are collected first and removed afterwards so the set is
// never mutated while it is being walked.
func (m *Mover) Update(dt float64) {
	if !m.state.Playing() {
		return
	}

	var exited []*FallingEntity
	for _, e := range m.entities.list() {
		e.Pos.Y += m.fallSpeed * dt
		e.sprite.MoveTo(e.Pos.X, e.Pos.Y)
		if e.Pos.Y > m.exitY {
			exited = append(exited, e)
		}
	}

	for _, e := range exited {
		if e.Category == BonusVehicle {
			m.raiser.IncreaseDifficulty()
		}
		if m.entities.remove(e.ID) {
			m.retired++
		}
	}
}

// ScrollOffset returns the background offset in pixels.
func (m *Mover) ScrollOffset() float64 {
	return m.scroll
}

// Retired returns how many entities left the playfield uncollected.
func (m *Mover) Retired() int {
	return m.retired
}
