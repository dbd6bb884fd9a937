package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/roadrush/internal/config"
	"github.com/vovakirdan/roadrush/internal/core"
)

// SessionModel manages the full flow: menu -> round -> menu.
// It is the top-level model of the local menu command and of SSH sessions.
type SessionModel struct {
	cfg      config.RoadRushConfig
	runtime  core.RuntimeConfig
	logger   *log.Logger
	menu     MenuModel
	game     *Model
	rounds   int
	quitting bool
}

// NewSessionModel creates a session model showing the menu.
func NewSessionModel(cfg config.RoadRushConfig, runtime core.RuntimeConfig, logger *log.Logger) SessionModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return SessionModel{
		cfg:     cfg,
		runtime: runtime,
		logger:  logger,
		menu:    NewMenuModel(cfg, runtime),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.runtime.ScreenW = wsm.Width
		m.runtime.ScreenH = wsm.Height
	}

	if m.game != nil {
		return m.updateGame(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.Selected() {
		m.rounds++
		m.logger.Info("round started", "round", m.rounds)
		gameModel := NewModel(m.cfg, m.runtime, m.logger.With("round", m.rounds))
		m.game = &gameModel
		return m, m.game.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.game = &gameModel
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.BackToMenu() {
		m.game = nil
		m.menu = NewMenuModel(m.cfg, m.runtime)
		return m, m.menu.Init()
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	if m.game != nil {
		return m.game.View()
	}
	return m.menu.View()
}

// InGame returns true while a round is running.
func (m SessionModel) InGame() bool {
	return m.game != nil
}

// Rounds returns how many rounds were started.
func (m SessionModel) Rounds() int {
	return m.rounds
}

// RunMenu runs the menu and rounds until the player quits.
func RunMenu(cfg config.RoadRushConfig, runtime core.RuntimeConfig, logger *log.Logger) error {
	p := tea.NewProgram(
		NewSessionModel(cfg, runtime, logger),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	_, err := p.Run()
	return err
}
