package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/olivierh59500/pixelhero-go/internal/render"
)

// EbitenSurface draws onto an ebiten image, normally the screen passed to Draw.
// It lives with the window front end so the render package stays free of cgo.
type EbitenSurface struct {
	dst *ebiten.Image
}

// NewEbitenSurface wraps dst
func NewEbitenSurface(dst *ebiten.Image) *EbitenSurface {
	return &EbitenSurface{dst: dst}
}

func (s *EbitenSurface) Clear(c color.NRGBA) {
	s.dst.Fill(c)
}

func (s *EbitenSurface) Square(x, y, size float64, c color.NRGBA, glow float64) {
	for _, r := range render.Halo(x, y, size, c, glow) {
		vector.DrawFilledRect(s.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), r.Color, true)
	}
	vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(size), float32(size), c, true)
}
