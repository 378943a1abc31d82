package field

import (
	"math/rand"

	"github.com/aquilax/go-perlin"
)

// Perlin tuning for the flowing drift
const (
	perlinAlpha     = 2.0
	perlinBeta      = 2.0
	perlinOctaves   = 3
	perlinScale     = 0.01  // noise units per pixel
	perlinTimeScale = 0.005 // noise units per frame
	perlinYOffset   = 97.3  // decorrelates the y channel from x
)

// Jitter produces the per-frame velocity perturbation of a drifting particle
type Jitter interface {
	Perturb(p *Particle, frame uint64) (dvx, dvy float64)
}

// UniformJitter draws each component from [-Amplitude/2, Amplitude/2)
type UniformJitter struct {
	Amplitude float64
	rng       *rand.Rand
}

// NewUniformJitter creates a uniform jitter drawing from rng
func NewUniformJitter(amplitude float64, rng *rand.Rand) *UniformJitter {
	return &UniformJitter{Amplitude: amplitude, rng: rng}
}

func (j *UniformJitter) Perturb(_ *Particle, _ uint64) (float64, float64) {
	return (j.rng.Float64() - 0.5) * j.Amplitude, (j.rng.Float64() - 0.5) * j.Amplitude
}

// PerlinJitter samples a 3D Perlin field at the particle position and frame,
// so neighbours drift together instead of independently.
type PerlinJitter struct {
	Amplitude float64
	noise     *perlin.Perlin
}

// NewPerlinJitter creates a Perlin jitter with a seeded noise field
func NewPerlinJitter(amplitude float64, seed int64) *PerlinJitter {
	return &PerlinJitter{
		Amplitude: amplitude,
		noise:     perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, seed),
	}
}

func (j *PerlinJitter) Perturb(p *Particle, frame uint64) (float64, float64) {
	t := float64(frame) * perlinTimeScale
	nx := j.noise.Noise3D(p.X*perlinScale, p.Y*perlinScale, t)
	ny := j.noise.Noise3D(p.X*perlinScale, p.Y*perlinScale+perlinYOffset, t)
	return clampUnit(nx) * j.Amplitude / 2, clampUnit(ny) * j.Amplitude / 2
}

func clampUnit(v float64) float64 {
	return clamp(v, -1, 1)
}
