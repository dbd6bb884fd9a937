// Package tui hosts Road Rush in a terminal through Bubble Tea. It owns the
// frame loop and the cooperative clock, maps keys and mouse to game input,
// and draws the session's sprites onto a scaled character grid.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg drives one frame of the model whose loop produced it.
type TickMsg struct {
	ID   int
	Time time.Time
}

var lastTickID atomic.Int64

// nextTickID returns a fresh loop id. Models ignore ticks from loops they do
// not own, so a stale tick left over from a finished game cannot start a
// second loop in the menu.
func nextTickID() int {
	return int(lastTickID.Add(1))
}

// tickCmd returns a Bubble Tea command that sends one tick at the specified rate.
func tickCmd(tickRate, id int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Time: t}
	})
}
