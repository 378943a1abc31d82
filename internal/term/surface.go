// Package term draws a particle field into a terminal. Every cell covers a block
// of virtual pixels so the field keeps the geometry it has in a window.
package term

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Glyphs by particle size
const (
	glyphSmall = '·'
	glyphLarge = '•'
	glyphStar  = '✦'
)

// Surface implements render.Surface on a tcell screen
type Surface struct {
	screen       tcell.Screen
	cellW, cellH float64
	bg           colorful.Color
	bgStyle      tcell.Style
}

// NewSurface maps each cell of screen to cellW x cellH virtual pixels
func NewSurface(screen tcell.Screen, cellW, cellH float64) *Surface {
	return &Surface{
		screen:  screen,
		cellW:   cellW,
		cellH:   cellH,
		bgStyle: tcell.StyleDefault,
	}
}

// Size returns the drawable area in virtual pixels
func (s *Surface) Size() (int, int) {
	cols, rows := s.screen.Size()
	return int(float64(cols) * s.cellW), int(float64(rows) * s.cellH)
}

// CellAt returns the cell containing virtual pixel (x, y)
func (s *Surface) CellAt(x, y float64) (col, row int) {
	return int(math.Floor(x / s.cellW)), int(math.Floor(y / s.cellH))
}

// PixelAt returns the virtual pixel at the centre of a cell
func (s *Surface) PixelAt(col, row int) (x, y float64) {
	return (float64(col) + 0.5) * s.cellW, (float64(row) + 0.5) * s.cellH
}

func (s *Surface) Clear(c color.NRGBA) {
	s.bg = toColorful(c)
	s.bgStyle = tcell.StyleDefault.Background(toTcell(s.bg))
	s.screen.Fill(' ', s.bgStyle)
}

// Square draws a glyph in the cell under the centre of the square. Opacity
// blends the colour toward the background; stars are bold.
func (s *Surface) Square(x, y, size float64, c color.NRGBA, glow float64) {
	col, row := s.CellAt(x+size/2, y+size/2)
	cols, rows := s.screen.Size()
	if col < 0 || row < 0 || col >= cols || row >= rows {
		return
	}

	fg := Blend(s.bg, c)
	style := s.bgStyle.Foreground(toTcell(fg))
	glyph := glyphSmall
	switch {
	case glow > 0:
		glyph = glyphStar
		style = style.Bold(true)
	case size >= 1.25:
		glyph = glyphLarge
	}
	s.screen.SetContent(col, row, glyph, nil, style)
}

// Blend composites c over bg using the alpha of c
func Blend(bg colorful.Color, c color.NRGBA) colorful.Color {
	return bg.BlendRgb(toColorful(c), float64(c.A)/255)
}

func toColorful(c color.NRGBA) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
