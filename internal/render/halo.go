package render

import "image/color"

// Halo tuning: a few concentric translucent squares stand in for a blur
const (
	haloLayers = 3
	haloAlpha  = 0.35 // opacity of the innermost layer relative to the particle
)

// Rect is an axis-aligned fill
type Rect struct {
	X, Y, W, H float64
	Color      color.NRGBA
}

// Halo returns the glow layers for a square, outermost first, ready to be
// filled before the square itself. Nil when glow <= 0.
func Halo(x, y, size float64, c color.NRGBA, glow float64) []Rect {
	if glow <= 0 {
		return nil
	}
	rects := make([]Rect, 0, haloLayers)
	for i := haloLayers; i >= 1; i-- {
		r := glow * float64(i) / haloLayers
		rects = append(rects, Rect{
			X:     x - r,
			Y:     y - r,
			W:     size + 2*r,
			H:     size + 2*r,
			Color: WithOpacity(c, haloAlpha/float64(i)),
		})
	}
	return rects
}
