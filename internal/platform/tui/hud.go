package tui

import (
	"strings"

	"github.com/vovakirdan/roadrush/internal/core"
)

const lifeIcon = '♥'

// lifeHUD implements game.HUD as a row of hearts above the road.
type lifeHUD struct {
	lives   int
	visible bool
}

func (h *lifeHUD) Draw(lives int) {
	h.lives = lives
	h.visible = true
}

func (h *lifeHUD) Clear() {
	h.visible = false
}

func (h *lifeHUD) draw(scr *core.Screen, l layout) {
	if !h.visible {
		return
	}
	scr.DrawText(l.road.X, 0, strings.Repeat(string(lifeIcon), h.lives), core.ColorBrightRed)
}
