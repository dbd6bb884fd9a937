package game

import (
	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/roadrush/internal/config"
	"github.com/vovakirdan/roadrush/internal/core"
)

// Category decides what a falling entity does to the player.
type Category int

const (
	Obstacle     Category = iota // Costs a life on contact
	BonusVehicle                 // Grants a life on contact, ramps difficulty if missed
)

// String returns a human-readable name for the category.
func (c Category) String() string {
	switch c {
	case Obstacle:
		return "obstacle"
	case BonusVehicle:
		return "bonus"
	default:
		return "unknown"
	}
}

// EntityID uniquely identifies a falling entity within a session.
type EntityID uint64

// FallingEntity is an object dropping down the road.
type FallingEntity struct {
	ID       EntityID
	Category Category
	Pos      core.Vec
	size     config.SpriteSize
	sprite   Sprite
}

// Bounds returns the entity's collision box.
func (e *FallingEntity) Bounds() core.Box {
	return core.NewBox(e.Pos.X, e.Pos.Y, e.size.Width, e.size.Height)
}

// PlayerVehicle is the car steered by the player. Only X changes.
type PlayerVehicle struct {
	Pos    core.Vec
	Speed  float64
	size   config.SpriteSize
	minX   float64
	maxX   float64
	sprite Sprite
	alive  bool
}

func newPlayer(cfg config.RoadRushConfig, r Renderer) *PlayerVehicle {
	half := cfg.Sprites.Player.Width / 2
	p := &PlayerVehicle{
		Pos:   core.Vec{X: cfg.Playfield.Width / 2, Y: cfg.PlayerY()},
		Speed: cfg.Physics.PlayerSpeed,
		size:  cfg.Sprites.Player,
		minX:  half,
		maxX:  cfg.Playfield.Width - half,
		alive: true,
	}
	p.sprite = r.CreateSprite(p.Pos.X, p.Pos.Y, TextureCar)
	return p
}

// Bounds returns the player's collision box.
func (p *PlayerVehicle) Bounds() core.Box {
	return core.NewBox(p.Pos.X, p.Pos.Y, p.size.Width, p.size.Height)
}

// Alive reports whether the player has not been destroyed yet.
func (p *PlayerVehicle) Alive() bool {
	return p.alive
}

// Steer integrates keyboard input over dt seconds.
func (p *PlayerVehicle) Steer(dir Direction, dt float64) {
	if !p.alive {
		return
	}
	vx := 0.0
	if dir.Left {
		vx -= p.Speed
	}
	if dir.Right {
		vx += p.Speed
	}
	p.setX(p.Pos.X + vx*dt)
}

// FollowPointer jumps to the pointer's X position.
func (p *PlayerVehicle) FollowPointer(x float64) {
	if !p.alive {
		return
	}
	p.setX(x)
}

func (p *PlayerVehicle) setX(x float64) {
	p.Pos.X = core.Clamp(x, p.minX, p.maxX)
	p.sprite.MoveTo(p.Pos.X, p.Pos.Y)
}

func (p *PlayerVehicle) destroy() {
	if !p.alive {
		return
	}
	p.alive = false
	p.sprite.Destroy()
}

// entitySet holds the active falling entities. Iteration follows spawn
// order so runs with the same seed stay reproducible; the id index makes
// lookups and removals of stale ids cheap no-ops.
type entitySet struct {
	order []*FallingEntity
	index *intmap.Map[EntityID, *FallingEntity]
}

func newEntitySet() *entitySet {
	return &entitySet{
		order: make([]*FallingEntity, 0, 16),
		index: intmap.New[EntityID, *FallingEntity](16),
	}
}

func (s *entitySet) add(e *FallingEntity) {
	s.order = append(s.order, e)
	s.index.Put(e.ID, e)
}

func (s *entitySet) get(id EntityID) (*FallingEntity, bool) {
	return s.index.Get(id)
}

// remove drops the entity from the set and destroys its sprite.
// Unknown ids are ignored.
func (s *entitySet) remove(id EntityID) bool {
	e, ok := s.index.Get(id)
	if !ok {
		return false
	}
	s.index.Del(id)
	for i, candidate := range s.order {
		if candidate.ID == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	e.sprite.Destroy()
	return true
}

// clear destroys every entity and returns how many there were.
func (s *entitySet) clear() int {
	n := len(s.order)
	for _, e := range s.order {
		e.sprite.Destroy()
	}
	clear(s.order)
	s.order = s.order[:0]
	s.index.Clear()
	return n
}

func (s *entitySet) len() int {
	return len(s.order)
}

// list returns the live entities. The slice is only valid until the next mutation.
func (s *entitySet) list() []*FallingEntity {
	return s.order
}
