package field

import (
	"image"
	"image/color"
	"math"
	"math/rand"

	"github.com/olivierh59500/pixelhero-go/internal/config"
)

// Generate scans mask at the configured gap and emits one particle for every
// sample whose alpha exceeds the threshold. The drawable area is the mask bounds;
// targets are in mask coordinates.
// Start positions are Gaussian around the centre point, clamped to the margin box.
func Generate(mask *image.Alpha, cfg *config.Config, palette []color.NRGBA, rng *rand.Rand) []*Particle {
	b := mask.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	m := cfg.Sampling.Margin
	gap := cfg.Sampling.Gap
	threshold := uint8(cfg.Sampling.Threshold)

	cx, cy := cfg.CenterPoint(w, h)
	stdDevX := (w / 2) * cfg.Center.Density
	stdDevY := (h / 2) * cfg.Center.Density

	start := int(math.Ceil(m))
	var particles []*Particle
	for y := start; float64(y) < h-m; y += gap {
		for x := start; float64(x) < w-m; x += gap {
			if mask.AlphaAt(b.Min.X+x, b.Min.Y+y).A <= threshold {
				continue
			}
			p := &Particle{
				X:  clamp(cx+rng.NormFloat64()*stdDevX, m, w-m),
				Y:  clamp(cy+rng.NormFloat64()*stdDevY, m, h-m),
				TX: float64(b.Min.X + x),
				TY: float64(b.Min.Y + y),
			}
			decorate(p, cfg, palette, rng)
			particles = append(particles, p)
		}
	}
	return particles
}

// decorate assigns the independent cosmetic attributes
func decorate(p *Particle, cfg *config.Config, palette []color.NRGBA, rng *rand.Rand) {
	p.Size = rng.Float64()*(cfg.Size.Max-cfg.Size.Min) + cfg.Size.Min
	if len(palette) > 0 {
		p.Color = palette[rng.Intn(len(palette))]
	}
	p.VX = (rng.Float64() - 0.5) * cfg.Drift.InitialSpeed
	p.VY = (rng.Float64() - 0.5) * cfg.Drift.InitialSpeed
	p.Star = rng.Float64() < cfg.Star.Chance
	p.Glow = rng.Float64()*cfg.Star.MaxGlow + cfg.Star.MinGlow
	p.Blink = rng.Float64() < cfg.Blink.Chance
	p.Phase = rng.Float64() * 2 * math.Pi
}
