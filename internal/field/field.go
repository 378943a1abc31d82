// Package field holds the particle collection of the hero effect: generation from a
// text mask, the attract/drift motion model and the global mode switch.
package field

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"math/rand"

	"github.com/olivierh59500/pixelhero-go/internal/config"
)

// Mode is the global motion state, re-evaluated every frame
type Mode int

const (
	Drifting Mode = iota
	Attracting
)

func (m Mode) String() string {
	if m == Attracting {
		return "attracting"
	}
	return "drifting"
}

// MaskSource renders the text mask for a drawable area
type MaskSource interface {
	Mask(width, height int) *image.Alpha
}

// Field is the application context: dimensions, particles, pointer and frame counter
type Field struct {
	Width, Height      float64
	Particles          []*Particle
	PointerX, PointerY float64
	Frame              uint64 // Frames stepped since creation

	cfg        *config.Config
	palette    []color.NRGBA
	background color.NRGBA
	masks      MaskSource
	jitter     Jitter
	rng        *rand.Rand
	seed       int64
	lastMode   Mode
}

// New creates an empty field. Call Resize to generate particles.
func New(cfg *config.Config, masks MaskSource, seed int64) (*Field, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	palette, background, err := cfg.Colors()
	if err != nil {
		return nil, err
	}

	f := &Field{
		cfg:        cfg,
		palette:    palette,
		background: background,
		masks:      masks,
		rng:        rand.New(rand.NewSource(seed)),
		seed:       seed,
	}
	f.jitter = f.newJitter(cfg.Drift.Noise)
	return f, nil
}

func (f *Field) newJitter(noise string) Jitter {
	if noise == config.NoisePerlin {
		return NewPerlinJitter(f.cfg.Drift.Jitter, f.seed)
	}
	return NewUniformJitter(f.cfg.Drift.Jitter, f.rng)
}

// Config returns the configuration the field was built with
func (f *Field) Config() *config.Config { return f.cfg }

// Background returns the decoded background colour
func (f *Field) Background() color.NRGBA { return f.background }

// SetJitter replaces the drift perturbation source
func (f *Field) SetJitter(j Jitter) { f.jitter = j }

// SetNoise switches the drift noise source in place. Particles, the frame
// counter and the pointer are kept; the config records the new source.
func (f *Field) SetNoise(noise string) error {
	if noise != config.NoiseUniform && noise != config.NoisePerlin {
		return fmt.Errorf("%w: unknown noise %q", config.ErrInvalid, noise)
	}
	f.SetJitter(f.newJitter(noise))
	f.cfg.Drift.Noise = noise
	Logger().Debug("drift noise changed", "noise", noise, "frame", f.Frame)
	return nil
}

// Resize discards the particle set and regenerates it for a width x height area
func (f *Field) Resize(width, height int) {
	f.Width, f.Height = float64(width), float64(height)

	var mask *image.Alpha
	if width > 0 && height > 0 {
		mask = f.masks.Mask(width, height)
	}
	if mask == nil {
		mask = image.NewAlpha(image.Rect(0, 0, max(width, 0), max(height, 0)))
	}
	f.Particles = Generate(mask, f.cfg, f.palette, f.rng)

	Logger().Debug("field regenerated",
		"width", width, "height", height, "particles", len(f.Particles))
}

// SetPointer records the latest pointer position in drawable coordinates
func (f *Field) SetPointer(x, y float64) {
	f.PointerX, f.PointerY = x, y
}

// Center returns the attraction hot spot for the current dimensions
func (f *Field) Center() (float64, float64) {
	return f.cfg.CenterPoint(f.Width, f.Height)
}

// Mode reports whether the pointer is strictly inside the centre radius
func (f *Field) Mode() Mode {
	cx, cy := f.Center()
	if hypot(f.PointerX-cx, f.PointerY-cy) < f.cfg.Center.Radius {
		return Attracting
	}
	return Drifting
}

// Step advances every particle by one frame and returns the mode used
func (f *Field) Step() Mode {
	f.Frame++
	mode := f.Mode()
	if mode != f.lastMode {
		Logger().Debug("mode changed", "mode", mode, "frame", f.Frame)
		f.lastMode = mode
	}

	lo, hiX, hiY := f.bounds()
	for _, p := range f.Particles {
		if mode == Attracting {
			attract(p, f.cfg.Attract.Speed)
			continue
		}
		dvx, dvy := f.jitter.Perturb(p, f.Frame)
		drift(p, dvx, dvy, f.cfg.Drift.Damping, lo, hiX, hiY)
	}
	return mode
}

// BlinkPhase returns the global phase driving the blink pulse
func (f *Field) BlinkPhase() float64 {
	return float64(f.Frame) * f.cfg.Blink.Step
}

// bounds returns the clamp limits: [lo, hiX] x [lo, hiY]
func (f *Field) bounds() (lo, hiX, hiY float64) {
	m := f.cfg.Sampling.Margin
	return m, f.Width - m, f.Height - m
}

func hypot(dx, dy float64) float64 {
	return math.Hypot(dx, dy)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	return v
}
