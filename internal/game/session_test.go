package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartInitialState(t *testing.T) {
	h := newHarness(t, testConfig())

	assert.Equal(t, PhasePlaying, h.s.Phase())
	assert.Equal(t, 3, h.s.Lives())
	assert.Equal(t, 7000, h.s.SpawnDelayMs())
	assert.Equal(t, []int{3}, h.hud.draws)

	// Player sprite plus the immediate spawn
	require.Len(t, h.r.sprites, 2)
	player := h.r.sprites[0]
	assert.Equal(t, TextureCar, player.tex)
	assert.Equal(t, 160.0, player.x)
	assert.Equal(t, 420.0, player.y)

	assert.Equal(t, 1, h.s.ActiveCount())
	assert.Equal(t, 1, h.clock.Pending(), "only the spawn timer is pending")
}

func TestObstacleCollisionCostsOneLife(t *testing.T) {
	h := newHarness(t, testConfig())
	e := h.atPlayer(Obstacle)

	h.frame(16)

	assert.Equal(t, 2, h.s.Lives())
	assert.Equal(t, 1, h.spriteOf(e).destroyed)
	_, alive := h.s.entities.get(e.ID)
	assert.False(t, alive)
	assert.Equal(t, []int{3, 2}, h.hud.draws)

	// The entity is gone, so the next frame cannot count it again
	h.frame(16)
	assert.Equal(t, 2, h.s.Lives())
}

func TestBonusCollisionCapsAtMaxLives(t *testing.T) {
	cfg := testConfig()
	cfg.Lives.Initial = 4
	h := newHarness(t, cfg)

	first := h.atPlayer(BonusVehicle)
	h.frame(16)
	assert.Equal(t, 5, h.s.Lives())
	assert.Equal(t, 1, h.spriteOf(first).destroyed)

	second := h.atPlayer(BonusVehicle)
	h.frame(16)
	assert.Equal(t, 5, h.s.Lives(), "extra bonus is wasted at the ceiling")
	assert.Equal(t, 1, h.spriteOf(second).destroyed, "capped bonus is still consumed")
	assert.Equal(t, []int{4, 5}, h.hud.draws, "no redraw when nothing changed")
}

func TestThreeObstaclesEndTheGameOnTheThirdHit(t *testing.T) {
	h := newHarness(t, testConfig())

	for want := 2; want >= 1; want-- {
		h.atPlayer(Obstacle)
		h.frame(16)
		require.Equal(t, want, h.s.Lives())
		require.Equal(t, PhasePlaying, h.s.Phase())
	}

	h.atPlayer(Obstacle)
	h.frame(16)
	assert.Equal(t, 0, h.s.Lives())
	assert.Equal(t, PhaseEnding, h.s.Phase())
	assert.Equal(t, h.now, h.s.Snapshot().EndedAtMs)
}

func TestSimultaneousHitsStopAtZero(t *testing.T) {
	cfg := testConfig()
	cfg.Lives.Initial = 2
	h := newHarness(t, cfg)

	a := h.atPlayer(Obstacle)
	b := h.atPlayer(Obstacle)
	c := h.atPlayer(Obstacle)
	bonus := h.atPlayer(BonusVehicle)
	h.frame(16)

	assert.Equal(t, 0, h.s.Lives(), "lives never go negative")
	assert.Equal(t, PhaseEnding, h.s.Phase())
	for _, e := range []*FallingEntity{a, b, c, bonus} {
		assert.Equal(t, 1, h.spriteOf(e).destroyed, "entity %d destroyed exactly once", e.ID)
	}
	assert.Equal(t, []int{2, 1, 0}, h.hud.draws)
}

func TestEndingTearsDownEverything(t *testing.T) {
	cfg := testConfig()
	cfg.Lives.Initial = 1
	h := newHarness(t, cfg)

	h.place(Obstacle, 40, 100)
	h.place(BonusVehicle, 280, 200)
	h.atPlayer(Obstacle)
	h.frame(16)

	require.Equal(t, PhaseEnding, h.s.Phase())
	assert.Equal(t, 0, h.s.ActiveCount())
	assert.Equal(t, 1, h.hud.clears)
	assert.False(t, h.s.Snapshot().PlayerAlive)
	for i, sp := range h.r.sprites {
		assert.Equal(t, 1, sp.destroyed, "sprite %d", i)
	}
	assert.Equal(t, 1, h.clock.Pending(), "spawn timer replaced by the game-over timer")
}

func TestEndingIsIdempotent(t *testing.T) {
	cfg := testConfig()
	cfg.Lives.Initial = 1
	h := newHarness(t, cfg)
	h.atPlayer(Obstacle)
	h.frame(16)
	require.Equal(t, PhaseEnding, h.s.Phase())

	h.s.enterEnding()
	h.s.resolver.LoseLife()

	assert.Equal(t, 0, h.s.Lives())
	assert.Equal(t, 1, h.hud.clears)
	assert.Equal(t, 1, h.clock.Pending())
	for _, sp := range h.r.sprites {
		assert.Equal(t, 1, sp.destroyed)
	}
}

func TestGameOverTimeline(t *testing.T) {
	cfg := testConfig()
	cfg.Lives.Initial = 1
	h := newHarness(t, cfg)

	h.atPlayer(Obstacle)
	h.s.OnFrame(0, 16)
	require.Equal(t, PhaseEnding, h.s.Phase())
	sprites := len(h.r.sprites)

	h.clock.Advance(2499)
	assert.Equal(t, PhaseEnding, h.s.Phase())
	assert.Empty(t, h.r.messages)

	h.clock.Advance(2500)
	assert.Equal(t, PhaseShowingGameOver, h.s.Phase())
	assert.Equal(t, []string{GameOverText}, h.r.messages)

	h.clock.Advance(5999)
	assert.Equal(t, PhaseShowingGameOver, h.s.Phase())
	assert.Empty(t, h.nav.at)

	h.clock.Advance(6000)
	assert.Equal(t, PhaseReturning, h.s.Phase())
	assert.Equal(t, []float64{6000}, h.nav.at)

	// Long after: nothing spawns, nothing collides, no second hand-off
	for now := 6016.0; now < 30000; now += 16 {
		h.clock.Advance(now)
		h.s.OnFrame(now, 16)
	}
	assert.Len(t, h.r.sprites, sprites)
	assert.Equal(t, 0, h.s.Lives())
	assert.Equal(t, []float64{6000}, h.nav.at)
	assert.Equal(t, PhaseReturning, h.s.Phase())
	assert.Equal(t, 0, h.clock.Pending())
}

func TestInputIgnoredAfterEnding(t *testing.T) {
	cfg := testConfig()
	cfg.Lives.Initial = 1
	h := newHarness(t, cfg)
	h.atPlayer(Obstacle)
	h.frame(16)
	require.Equal(t, PhaseEnding, h.s.Phase())

	x := h.s.player.Pos.X
	scroll := h.s.ScrollOffset()
	h.s.OnPointerMove(20)
	h.in.dir = Direction{Right: true}
	h.frame(100)

	assert.Equal(t, x, h.s.player.Pos.X)
	assert.Greater(t, h.s.ScrollOffset(), scroll, "background keeps scrolling")
	for _, sp := range h.r.sprites {
		assert.Zero(t, sp.movedAfterDestroy)
	}
}

func TestZeroLivesConfigEndsImmediately(t *testing.T) {
	cfg := testConfig()
	cfg.Lives.Initial = 0
	h := newHarness(t, cfg)

	assert.Equal(t, PhaseEnding, h.s.Phase())
	assert.Equal(t, 0, h.s.ActiveCount())
	assert.Equal(t, 0, h.s.Snapshot().Spawned)
}

func TestSessionIsDeterministicForSeed(t *testing.T) {
	run := func() Snapshot {
		h := newHarness(t, testConfig())
		for i := 0; i < 3000; i++ {
			h.in.dir = Direction{Left: i%200 < 100, Right: i%200 >= 100}
			h.frame(16)
		}
		return h.s.Snapshot()
	}

	assert.Equal(t, run(), run())
}

func TestSessionInvariantsHoldUnderRandomPlay(t *testing.T) {
	cfg := testConfig()
	h := newHarness(t, cfg)
	rng := rand.New(rand.NewSource(7))

	prevDelay := h.s.SpawnDelayMs()
	for i := 0; i < 20000 && h.s.Phase() != PhaseReturning; i++ {
		h.in.dir = Direction{Left: rng.Intn(3) == 0, Right: rng.Intn(3) == 0}
		if rng.Intn(50) == 0 {
			x := rng.Float64()*400 - 40
			h.in.pointer = &x
		}
		h.frame(float64(5 + rng.Intn(40)))

		lives := h.s.Lives()
		require.GreaterOrEqual(t, lives, 0)
		require.LessOrEqual(t, lives, cfg.Lives.Max)
		if lives == 0 {
			require.NotEqual(t, PhasePlaying, h.s.Phase())
		}

		delay := h.s.SpawnDelayMs()
		require.GreaterOrEqual(t, delay, cfg.Spawn.MinDelayMs)
		require.LessOrEqual(t, delay, cfg.Spawn.InitialDelayMs)
		require.LessOrEqual(t, delay, prevDelay, "spawn delay never grows")
		prevDelay = delay

		p := h.s.player.Pos.X
		require.GreaterOrEqual(t, p, cfg.Sprites.Player.Width/2)
		require.LessOrEqual(t, p, cfg.Playfield.Width-cfg.Sprites.Player.Width/2)
	}

	for _, sp := range h.r.sprites {
		require.LessOrEqual(t, sp.destroyed, 1)
		require.Zero(t, sp.movedAfterDestroy)
	}
}
