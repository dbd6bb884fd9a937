package game

import (
	"github.com/charmbracelet/log"
)

// Resolver turns player/entity overlaps into life changes.
type Resolver struct {
	state    *SessionState
	entities *entitySet
	player   *PlayerVehicle
	hud      HUD
	logger   *log.Logger
	onEmpty  func()

	hits int
}

func newResolver(state *SessionState, entities *entitySet, player *PlayerVehicle, hud HUD, logger *log.Logger, onEmpty func()) *Resolver {
	return &Resolver{
		state:    state,
		entities: entities,
		player:   player,
		hud:      hud,
		logger:   logger,
		onEmpty:  onEmpty,
	}
}

// Resolve checks every active entity against the player once and applies the
// outcome of each overlap. Overlaps are gathered before any entity is removed.
func (r *Resolver) Resolve() {
	if !r.state.Playing() || !r.player.Alive() {
		return
	}

	playerBox := r.player.Bounds()
	var touching []EntityID
	for _, e := range r.entities.list() {
		if playerBox.Intersects(e.Bounds()) {
			touching = append(touching, e.ID)
		}
	}

	for _, id := range touching {
		if !r.state.Playing() {
			// Game over already cleared the road
			return
		}
		e, ok := r.entities.get(id)
		if !ok {
			continue
		}
		switch e.Category {
		case Obstacle:
			r.LoseLife()
		case BonusVehicle:
			r.GainLife()
		}
		r.entities.remove(id)
		r.hits++
	}
}

// LoseLife removes one life and starts the game-over sequence at zero.
func (r *Resolver) LoseLife() {
	if !r.state.Playing() {
		return
	}

	r.state.Lives = max(0, r.state.Lives-1)
	r.hud.Draw(r.state.Lives)
	r.logger.Debug("life lost", "lives", r.state.Lives)

	if r.state.Lives == 0 {
		r.onEmpty()
	}
}

// GainLife adds one life unless already at the ceiling.
func (r *Resolver) GainLife() {
	if !r.state.Playing() {
		return
	}
	if r.state.Lives >= r.state.MaxLives {
		return
	}

	r.state.Lives++
	r.hud.Draw(r.state.Lives)
	r.logger.Debug("life gained", "lives", r.state.Lives)
}

// Hits returns how many collisions were resolved.
func (r *Resolver) Hits() int {
	return r.hits
}
