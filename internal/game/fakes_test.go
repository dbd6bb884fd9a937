package game

import (
	"testing"

	"github.com/vovakirdan/roadrush/internal/config"
	"github.com/vovakirdan/roadrush/internal/core"
	"github.com/vovakirdan/roadrush/internal/sched"
)

type fakeSprite struct {
	tex               Texture
	x, y              float64
	tint              core.Color
	destroyed         int
	movedAfterDestroy int
}

func (f *fakeSprite) MoveTo(x, y float64) {
	if f.destroyed > 0 {
		f.movedAfterDestroy++
	}
	f.x, f.y = x, y
}

func (f *fakeSprite) SetTint(c core.Color) { f.tint = c }
func (f *fakeSprite) Destroy()             { f.destroyed++ }

type fakeRenderer struct {
	sprites  []*fakeSprite
	messages []string
}

func (r *fakeRenderer) CreateSprite(x, y float64, tex Texture) Sprite {
	s := &fakeSprite{tex: tex, x: x, y: y}
	r.sprites = append(r.sprites, s)
	return s
}

func (r *fakeRenderer) ShowMessage(text string) {
	r.messages = append(r.messages, text)
}

type fakeHUD struct {
	draws  []int
	clears int
}

func (h *fakeHUD) Draw(lives int) { h.draws = append(h.draws, lives) }
func (h *fakeHUD) Clear()         { h.clears++ }

type fakeInput struct {
	dir     Direction
	pointer *float64
}

func (in *fakeInput) Directional() Direction { return in.dir }

func (in *fakeInput) PointerX() (float64, bool) {
	if in.pointer == nil {
		return 0, false
	}
	x := *in.pointer
	in.pointer = nil
	return x, true
}

type fakeNavigator struct {
	clock *sched.Scheduler
	at    []float64
}

func (n *fakeNavigator) ReturnToMenu() {
	n.at = append(n.at, n.clock.Now())
}

// harness drives a session the way the terminal host does: timers first,
// then the frame.
type harness struct {
	t     *testing.T
	s     *Session
	clock *sched.Scheduler
	r     *fakeRenderer
	hud   *fakeHUD
	in    *fakeInput
	nav   *fakeNavigator
	now   float64
}

func newHarness(t *testing.T, cfg config.RoadRushConfig) *harness {
	t.Helper()
	clock := sched.New(0)
	h := &harness{
		t:     t,
		clock: clock,
		r:     &fakeRenderer{},
		hud:   &fakeHUD{},
		in:    &fakeInput{},
		nav:   &fakeNavigator{clock: clock},
	}
	h.s = Start(cfg, Deps{
		Renderer:  h.r,
		Input:     h.in,
		Timers:    clock,
		HUD:       h.hud,
		Navigator: h.nav,
	}, WithSeed(1))
	return h
}

func (h *harness) frame(deltaMs float64) {
	h.now += deltaMs
	h.clock.Advance(h.now)
	h.s.OnFrame(h.now, deltaMs)
}

// place drops an entity at an exact position, bypassing the RNG.
func (h *harness) place(c Category, x, y float64) *FallingEntity {
	return h.s.spawner.place(c, x, y)
}

// atPlayer drops an entity right on top of the player.
func (h *harness) atPlayer(c Category) *FallingEntity {
	p := h.s.player.Pos
	return h.place(c, p.X, p.Y)
}

func (h *harness) spriteOf(e *FallingEntity) *fakeSprite {
	return e.sprite.(*fakeSprite)
}

func testConfig() config.RoadRushConfig {
	return config.DefaultRoadRushConfig()
}
