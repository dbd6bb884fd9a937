package game

import (
	"time"

	"github.com/vovakirdan/roadrush/internal/core"
	"github.com/vovakirdan/roadrush/internal/sched"
)

// Texture names an image the renderer knows how to draw.
type Texture int

const (
	TextureCar Texture = iota
	TextureObstacle
)

// String returns the asset name of the texture.
func (t Texture) String() string {
	switch t {
	case TextureCar:
		return "car"
	case TextureObstacle:
		return "obstacle"
	default:
		return "unknown"
	}
}

// Sprite is an opaque handle to something the renderer draws.
// Calls after Destroy must be harmless.
type Sprite interface {
	MoveTo(x, y float64)
	SetTint(c core.Color)
	Destroy()
}

// Renderer creates sprites and shows full-screen messages.
type Renderer interface {
	CreateSprite(x, y float64, tex Texture) Sprite
	ShowMessage(text string)
}

// Direction is the state of the directional controls for one frame.
type Direction struct {
	Left  bool
	Right bool
}

// Input is polled once per frame. PointerX reports an absolute pointer
// position in playfield pixels when the pointer moved this frame.
type Input interface {
	Directional() Direction
	PointerX() (float64, bool)
}

// Timers schedules callbacks on the host's cooperative loop.
// *sched.Scheduler implements it.
type Timers interface {
	ScheduleOnce(delay time.Duration, fn func()) sched.Handle
	ScheduleRepeating(delay time.Duration, fn func()) sched.Handle
	Cancel(h sched.Handle) bool
}

// HUD shows the remaining lives.
type HUD interface {
	Draw(lives int)
	Clear()
}

// Navigator hands control back to the menu when a session is over.
type Navigator interface {
	ReturnToMenu()
}

// Deps bundles the collaborators a session talks to. Timers is required;
// any other nil field is replaced by a no-op implementation.
type Deps struct {
	Renderer  Renderer
	Input     Input
	Timers    Timers
	HUD       HUD
	Navigator Navigator
}

type nopSprite struct{}

func (nopSprite) MoveTo(float64, float64) {}
func (nopSprite) SetTint(core.Color)      {}
func (nopSprite) Destroy()                {}

type nopRenderer struct{}

func (nopRenderer) CreateSprite(float64, float64, Texture) Sprite { return nopSprite{} }
func (nopRenderer) ShowMessage(string)                            {}

type nopInput struct{}

func (nopInput) Directional() Direction    { return Direction{} }
func (nopInput) PointerX() (float64, bool) { return 0, false }

type nopHUD struct{}

func (nopHUD) Draw(int) {}
func (nopHUD) Clear()   {}

type nopNavigator struct{}

func (nopNavigator) ReturnToMenu() {}

func (d Deps) withDefaults() Deps {
	if d.Renderer == nil {
		d.Renderer = nopRenderer{}
	}
	if d.Input == nil {
		d.Input = nopInput{}
	}
	if d.HUD == nil {
		d.HUD = nopHUD{}
	}
	if d.Navigator == nil {
		d.Navigator = nopNavigator{}
	}
	return d
}
