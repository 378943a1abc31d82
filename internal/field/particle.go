package field

import "image/color"

// Particle is a single animated point of the field
type Particle struct {
	X, Y   float64     // Position
	TX, TY float64     // Target, an opaque pixel of the text mask
	VX, VY float64     // Velocity, used only while drifting
	Size   float64     // Side of the drawn square
	Color  color.NRGBA // Palette colour
	Star   bool        // Drawn with a glow
	Glow   float64     // Glow radius when Star is set
	Blink  bool        // Opacity pulses with the frame counter
	Phase  float64     // Blink phase offset in [0, 2π)
}

// DistanceToTarget returns the Euclidean distance from position to target
func (p *Particle) DistanceToTarget() float64 {
	dx, dy := p.TX-p.X, p.TY-p.Y
	return hypot(dx, dy)
}
