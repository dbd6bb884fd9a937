package tui

import (
	"math"

	"github.com/vovakirdan/roadrush/internal/config"
	"github.com/vovakirdan/roadrush/internal/core"
)

// Rows reserved around the road: the HUD above it and the help line below.
const (
	hudRows  = 1
	helpRows = 1

	// cellAspect is the height/width ratio of a terminal cell.
	cellAspect = 2.0
)

// layout maps playfield pixels onto terminal cells. The road keeps the
// playfield's aspect ratio and is centered horizontally.
type layout struct {
	road core.Rect
	pfW  float64
	pfH  float64
}

func newLayout(termW, termH int, pf config.PlayfieldConfig) layout {
	rows := max(1, termH-hudRows-helpRows)
	cols := int(math.Round(float64(rows) * pf.Width / pf.Height * cellAspect))
	cols = core.Clamp(cols, 1, max(1, termW-2))
	left := max(0, (termW-cols)/2)
	return layout{
		road: core.NewRect(left, hudRows, cols, rows),
		pfW:  pf.Width,
		pfH:  pf.Height,
	}
}

// toCell returns the cell containing the playfield point (x, y). Points
// outside the playfield map outside the road rectangle.
func (l layout) toCell(x, y float64) (int, int) {
	col := l.road.X + int(math.Floor(x*float64(l.road.W)/l.pfW))
	row := l.road.Y + int(math.Floor(y*float64(l.road.H)/l.pfH))
	return col, row
}

// toPixelX returns the playfield X at the center of a terminal column.
func (l layout) toPixelX(col int) float64 {
	return (float64(col-l.road.X) + 0.5) * l.pfW / float64(l.road.W)
}

// footprint returns the size in cells of a w×h pixel sprite, at least 1×1.
func (l layout) footprint(w, h float64) (int, int) {
	cw := max(1, int(math.Round(w*float64(l.road.W)/l.pfW)))
	ch := max(1, int(math.Round(h*float64(l.road.H)/l.pfH)))
	return cw, ch
}

// rowToPixelY returns the playfield Y at the center of a road row.
func (l layout) rowToPixelY(row int) float64 {
	return (float64(row-l.road.Y) + 0.5) * l.pfH / float64(l.road.H)
}
