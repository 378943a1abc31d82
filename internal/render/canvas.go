package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/gg"
)

// CanvasSurface draws onto an offscreen gg context, for snapshots without a window
type CanvasSurface struct {
	dc  *gg.Context
	err error
}

// NewCanvasSurface creates a width x height offscreen surface
func NewCanvasSurface(width, height int) *CanvasSurface {
	return &CanvasSurface{dc: gg.NewContext(width, height)}
}

func (s *CanvasSurface) Clear(c color.NRGBA) {
	s.dc.ClearWithColor(toRGBA(c))
}

func (s *CanvasSurface) Square(x, y, size float64, c color.NRGBA, glow float64) {
	for _, r := range Halo(x, y, size, c, glow) {
		s.fill(r.X, r.Y, r.W, r.H, r.Color)
	}
	s.fill(x, y, size, size, c)
}

func (s *CanvasSurface) fill(x, y, w, h float64, c color.NRGBA) {
	rgba := toRGBA(c)
	s.dc.SetRGBA(rgba.R, rgba.G, rgba.B, rgba.A)
	s.dc.DrawRectangle(x, y, w, h)
	if err := s.dc.Fill(); err != nil && s.err == nil {
		s.err = err
	}
}

// Err returns the first fill error since the surface was created
func (s *CanvasSurface) Err() error { return s.err }

// Image returns a copy of the current pixels
func (s *CanvasSurface) Image() image.Image { return s.dc.Image() }

// SavePNG writes the current pixels to path
func (s *CanvasSurface) SavePNG(path string) error {
	if s.err != nil {
		return fmt.Errorf("render failed before saving %s: %w", path, s.err)
	}
	if err := s.dc.SavePNG(path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

// Close releases the context
func (s *CanvasSurface) Close() error { return s.dc.Close() }

func toRGBA(c color.NRGBA) gg.RGBA {
	return gg.RGBA{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
		A: float64(c.A) / 255,
	}
}
