package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/roadrush/internal/config"
	"github.com/vovakirdan/roadrush/internal/core"
	"github.com/vovakirdan/roadrush/internal/game"
	"github.com/vovakirdan/roadrush/internal/sched"
)

const pausedText = "PAUSED"

// navigator records the session's hand-off back to the menu.
type navigator struct {
	returned bool
}

func (n *navigator) ReturnToMenu() {
	n.returned = true
}

// Model is the Bubble Tea model hosting one Road Rush session.
//
// Every tick advances a fixed frame of game time: timers fire first, then the
// session runs its frame. While paused the clock stands still, so the
// session's timers and motion freeze together.
type Model struct {
	cfg     config.RoadRushConfig
	runtime core.RuntimeConfig
	logger  *log.Logger

	screen  *core.Screen
	layout  layout
	clock   *sched.Scheduler
	session *game.Session
	canvas  *canvas
	hud     *lifeHUD
	input   *keyLatch
	nav     *navigator

	inputFrame core.InputFrame
	keys       GameKeyMap
	help       help.Model

	tickID       int
	now          float64
	paused       bool
	quitting     bool
	backToMenu   bool
	exitOnReturn bool // Standalone play quits instead of showing a menu
}

// NewModel creates a model and starts its session.
func NewModel(cfg config.RoadRushConfig, runtime core.RuntimeConfig, logger *log.Logger) Model {
	if runtime.Seed == 0 {
		runtime.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		cfg:        cfg,
		runtime:    runtime,
		logger:     logger,
		screen:     core.NewScreen(runtime.ScreenW, runtime.ScreenH-helpRows),
		layout:     newLayout(runtime.ScreenW, runtime.ScreenH, cfg.Playfield),
		clock:      sched.New(0),
		canvas:     newCanvas(cfg.Sprites),
		hud:        &lifeHUD{},
		input:      &keyLatch{},
		nav:        &navigator{},
		inputFrame: core.NewInputFrame(),
		keys:       DefaultGameKeyMap(),
		help:       help.New(),
		tickID:     nextTickID(),
	}
	m.help.Width = runtime.ScreenW

	m.session = game.Start(cfg, game.Deps{
		Renderer:  m.canvas,
		Input:     m.input,
		Timers:    m.clock,
		HUD:       m.hud,
		Navigator: m.nav,
	}, game.WithLogger(logger), game.WithSeed(runtime.Seed))
	return m
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate, m.tickID)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.ID != m.tickID {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey records the key's action for the next tick. Quit is immediate.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleMouse turns hover into polled pointer input and a click into an
// immediate pointer move.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.paused {
		return m, nil
	}
	x := m.layout.toPixelX(msg.X)
	switch {
	case msg.Action == tea.MouseActionMotion:
		m.input.point(x)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.session.OnPointerMove(x)
	}
	return m, nil
}

// handleResize rescales the road. The session works in playfield pixels and
// is not affected.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height-helpRows)
	m.layout = newLayout(msg.Width, msg.Height, m.cfg.Playfield)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick applies the actions gathered since the last tick and runs one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	defer m.inputFrame.Clear()

	if m.inputFrame.Has(core.ActionBack) {
		m.logger.Info("round abandoned", "phase", m.session.Phase())
		return m.leave()
	}
	if m.inputFrame.Has(core.ActionPause) {
		m.paused = !m.paused
		m.input.release()
		m.logger.Debug("pause toggled", "paused", m.paused)
	}

	if !m.paused {
		dt := m.runtime.FrameDeltaMs()
		m.now += dt
		m.input.setNow(m.now)
		if m.inputFrame.Has(core.ActionLeft) {
			m.input.press(game.Direction{Left: true}, m.now)
		}
		if m.inputFrame.Has(core.ActionRight) {
			m.input.press(game.Direction{Right: true}, m.now)
		}

		m.clock.Advance(m.now)
		m.session.OnFrame(m.now, dt)
	}

	if m.nav.returned {
		return m.leave()
	}
	return m, tickCmd(m.runtime.TickRate, m.tickID)
}

// leave ends the frame loop and hands control back to the menu, or quits
// when there is no menu to go back to.
func (m Model) leave() (tea.Model, tea.Cmd) {
	m.backToMenu = true
	if m.exitOnReturn {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the road, the HUD and the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.canvas.draw(m.screen, m.layout, m.session.ScrollOffset())
	m.hud.draw(m.screen, m.layout)
	if m.paused {
		m.screen.DrawTextCentered(m.layout.road.Y+m.layout.road.H/2, pausedText, core.ColorBrightYellow)
	}

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Session returns the hosted session.
func (m Model) Session() *game.Session {
	return m.session
}

// BackToMenu returns true once the round is over or was abandoned.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run plays a single round in the terminal and returns when it ends.
func Run(cfg config.RoadRushConfig, runtime core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(cfg, runtime, logger)
	model.exitOnReturn = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	_, err := p.Run()
	return err
}
