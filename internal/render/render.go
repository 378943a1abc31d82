// Package render draws a particle field onto a drawing surface.
package render

import (
	"image/color"
	"math"

	"github.com/olivierh59500/pixelhero-go/internal/field"
)

// Surface is the host drawing capability a frame needs
type Surface interface {
	// Clear overwrites the whole drawable area with c
	Clear(c color.NRGBA)
	// Square fills a size x size square with its top-left corner at (x, y).
	// glow > 0 adds a halo of that radius in the same colour.
	Square(x, y, size float64, c color.NRGBA, glow float64)
}

// Opacity returns 1 for steady particles and 0.5+0.5*sin(phase+offset) for blinking ones
func Opacity(p *field.Particle, phase float64) float64 {
	if !p.Blink {
		return 1
	}
	return 0.5 + 0.5*math.Sin(phase+p.Phase)
}

// Frame paints the background then every particle in collection order
func Frame(s Surface, f *field.Field) {
	s.Clear(f.Background())

	phase := f.BlinkPhase()
	for _, p := range f.Particles {
		c := WithOpacity(p.Color, Opacity(p, phase))
		glow := 0.0
		if p.Star {
			glow = p.Glow
		}
		s.Square(p.X, p.Y, p.Size, c, glow)
	}
}

// WithOpacity scales the alpha of c by a in [0, 1]
func WithOpacity(c color.NRGBA, a float64) color.NRGBA {
	if a < 0 {
		a = 0
	} else if a > 1 {
		a = 1
	}
	c.A = uint8(math.Round(float64(c.A) * a))
	return c
}
