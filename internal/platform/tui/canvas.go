package tui

import (
	"math"

	"github.com/vovakirdan/roadrush/internal/config"
	"github.com/vovakirdan/roadrush/internal/core"
	"github.com/vovakirdan/roadrush/internal/game"
)

// laneDash is the length of one painted lane segment and of the gap after it, in pixels.
const laneDash = 20.0

type glyph struct {
	ch    rune
	color core.Color
}

var textureGlyphs = map[game.Texture]glyph{
	game.TextureCar:      {'█', core.ColorBrightRed},
	game.TextureObstacle: {'▓', core.ColorOrange},
}

// termSprite is a sprite living in the canvas's table.
type termSprite struct {
	tex   game.Texture
	x, y  float64
	w, h  float64
	tint  core.Color
	alive bool
}

func (s *termSprite) MoveTo(x, y float64) {
	s.x, s.y = x, y
}

func (s *termSprite) SetTint(c core.Color) {
	s.tint = c
}

func (s *termSprite) Destroy() {
	s.alive = false
}

// canvas implements game.Renderer on top of a core.Screen. Sprites are kept
// in creation order, so later sprites draw over earlier ones.
type canvas struct {
	sizes   config.SpritesConfig
	sprites []*termSprite
	message string
}

func newCanvas(sizes config.SpritesConfig) *canvas {
	return &canvas{sizes: sizes}
}

// CreateSprite adds a sprite centered at (x, y).
func (c *canvas) CreateSprite(x, y float64, tex game.Texture) game.Sprite {
	size := c.sizes.Obstacle
	if tex == game.TextureCar {
		size = c.sizes.Player
	}
	s := &termSprite{tex: tex, x: x, y: y, w: size.Width, h: size.Height, alive: true}
	c.sprites = append(c.sprites, s)
	return s
}

// ShowMessage sets the text drawn over the middle of the road.
func (c *canvas) ShowMessage(text string) {
	c.message = text
}

// live drops destroyed sprites from the table and returns the rest.
func (c *canvas) live() []*termSprite {
	n := 0
	for _, s := range c.sprites {
		if s.alive {
			c.sprites[n] = s
			n++
		}
	}
	clear(c.sprites[n:])
	c.sprites = c.sprites[:n]
	return c.sprites
}

// draw paints the road, every live sprite and the message.
func (c *canvas) draw(scr *core.Screen, l layout, scroll float64) {
	drawRoad(scr, l, scroll)

	for _, s := range c.live() {
		g := textureGlyphs[s.tex]
		color := g.color
		if s.tint != core.ColorDefault {
			color = s.tint
		}

		col, row := l.toCell(s.x, s.y)
		cw, ch := l.footprint(s.w, s.h)
		x0, y0 := col-cw/2, row-ch/2
		for y := max(y0, l.road.Y); y < min(y0+ch, l.road.Bottom()); y++ {
			for x := max(x0, l.road.X); x < min(x0+cw, l.road.Right()); x++ {
				scr.SetColored(x, y, g.ch, color)
			}
		}
	}

	if c.message != "" {
		scr.DrawTextCentered(l.road.Y+l.road.H/2, c.message, core.ColorBrightWhite)
	}
}

// drawRoad paints the shoulders and a dashed center line moving down with scroll.
func drawRoad(scr *core.Screen, l layout, scroll float64) {
	scr.DrawVLine(l.road.X-1, l.road.Y, l.road.H, '│', core.ColorGray)
	scr.DrawVLine(l.road.Right(), l.road.Y, l.road.H, '│', core.ColorGray)

	center := l.road.X + l.road.W/2
	for row := l.road.Y; row < l.road.Bottom(); row++ {
		phase := math.Mod(l.rowToPixelY(row)-scroll, 2*laneDash)
		if phase < 0 {
			phase += 2 * laneDash
		}
		if phase < laneDash {
			scr.SetColored(center, row, '╎', core.ColorDarkGray)
		}
	}
}
