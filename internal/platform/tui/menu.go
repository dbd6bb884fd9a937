package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/roadrush/internal/config"
	"github.com/vovakirdan/roadrush/internal/core"
)

const menuTitle = "R O A D   R U S H"

// MenuItem is one entry of the start menu.
type MenuItem struct {
	Title string
	Quit  bool // Leaves the program instead of starting a round
}

// DefaultMenuItems returns the start menu entries.
func DefaultMenuItems() []MenuItem {
	return []MenuItem{
		{Title: "Play"},
		{Title: "Quit", Quit: true},
	}
}

// MenuModel is the start menu: a title and items over the scrolling road.
type MenuModel struct {
	items    []MenuItem
	cursor   int
	cfg      config.RoadRushConfig
	runtime  core.RuntimeConfig
	screen   *core.Screen
	layout   layout
	keys     MenuKeyMap
	help     help.Model
	tickID   int
	scroll   float64
	selected bool
	quitting bool
}

// NewMenuModel creates a new menu model.
func NewMenuModel(cfg config.RoadRushConfig, runtime core.RuntimeConfig) MenuModel {
	m := MenuModel{
		items:   DefaultMenuItems(),
		cfg:     cfg,
		runtime: runtime,
		screen:  core.NewScreen(runtime.ScreenW, runtime.ScreenH-helpRows),
		layout:  newLayout(runtime.ScreenW, runtime.ScreenH, cfg.Playfield),
		keys:    DefaultMenuKeyMap(),
		help:    help.New(),
		tickID:  nextTickID(),
	}
	m.help.Width = runtime.ScreenW
	return m
}

// Init starts the background scroll.
func (m MenuModel) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate, m.tickID)
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height-helpRows)
		m.layout = newLayout(msg.Width, msg.Height, m.cfg.Playfield)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if msg.ID != m.tickID || m.selected || m.quitting {
			return m, nil
		}
		m.scroll += m.cfg.Physics.BackgroundSpeed
		return m, tickCmd(m.runtime.TickRate, m.tickID)
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case core.ActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case core.ActionConfirm:
		if m.items[m.cursor].Quit {
			m.quitting = true
			return m, tea.Quit
		}
		m.selected = true
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	drawRoad(m.screen, m.layout, m.scroll)

	top := m.layout.road.Y + m.layout.road.H/3
	m.screen.DrawTextCentered(top, menuTitle, core.ColorBrightYellow)
	for i, item := range m.items {
		line, color := "  "+item.Title+"  ", core.ColorWhite
		if i == m.cursor {
			line, color = "> "+item.Title+" <", core.ColorBrightWhite
		}
		m.screen.DrawTextCentered(top+2+i, line, color)
	}

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Selected returns true once the player chose to start a round.
func (m MenuModel) Selected() bool {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Runtime returns the current runtime config (may have been updated by resize).
func (m MenuModel) Runtime() core.RuntimeConfig {
	return m.runtime
}
