package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/roadrush/internal/config"
	"github.com/vovakirdan/roadrush/internal/core"
)

func testPlayfield() config.PlayfieldConfig {
	return config.DefaultRoadRushConfig().Playfield
}

func TestLayoutKeepsAspectAndCenters(t *testing.T) {
	l := newLayout(80, 24, testPlayfield())

	// 22 rows, 320/480 aspect, cells twice as tall as wide
	assert.Equal(t, core.NewRect(25, 1, 29, 22), l.road)
}

func TestLayoutClampsToNarrowTerminal(t *testing.T) {
	l := newLayout(10, 24, testPlayfield())

	assert.Equal(t, 8, l.road.W)
	assert.Equal(t, 1, l.road.X)
}

func TestLayoutHandlesTinyTerminal(t *testing.T) {
	l := newLayout(0, 0, testPlayfield())

	assert.Equal(t, 1, l.road.W)
	assert.Equal(t, 1, l.road.H)
}

func TestLayoutToCell(t *testing.T) {
	l := newLayout(80, 24, testPlayfield())

	col, row := l.toCell(0, 0)
	assert.Equal(t, 25, col)
	assert.Equal(t, 1, row)

	col, row = l.toCell(319.9, 479.9)
	assert.Equal(t, 25+28, col)
	assert.Equal(t, 1+21, row)

	// Above the playfield maps above the road
	_, row = l.toCell(160, -30)
	assert.Less(t, row, l.road.Y)
}

func TestLayoutToPixelXRoundTrip(t *testing.T) {
	l := newLayout(80, 24, testPlayfield())

	for col := l.road.X; col < l.road.Right(); col++ {
		x := l.toPixelX(col)
		got, _ := l.toCell(x, 0)
		assert.Equal(t, col, got)
	}
}

func TestLayoutFootprint(t *testing.T) {
	l := newLayout(80, 24, testPlayfield())

	w, h := l.footprint(32, 48)
	assert.Equal(t, 3, w)
	assert.Equal(t, 2, h)

	w, h = l.footprint(1, 1)
	assert.Equal(t, 1, w, "sprites never vanish")
	assert.Equal(t, 1, h)
}
