// Package config holds every tunable parameter of the particle hero and the two
// presets it ships with.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"
	"strings"

	"github.com/gogpu/gg"
	"gopkg.in/yaml.v3"
)

// Preset names
const (
	PresetSection    = "section"    // fixed-height hero section with explicit line offsets
	PresetFullscreen = "fullscreen" // full window, edge margin, auto-spaced lines
)

// Noise sources for drift mode
const (
	NoiseUniform = "uniform"
	NoisePerlin  = "perlin"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Line is one line of text with its offset from the centre point
type Line struct {
	Text    string  `yaml:"text"`
	XOffset float64 `yaml:"x_offset"`
	YOffset float64 `yaml:"y_offset"`
}

// TextConfig controls what is rasterized into the mask
type TextConfig struct {
	Lines       []Line  `yaml:"lines"`
	FontSize    float64 `yaml:"font_size"`
	FontPath    string  `yaml:"font_path"`    // empty = embedded Go Bold
	AutoSpacing bool    `yaml:"auto_spacing"` // derive YOffset from the line index
	LineHeight  float64 `yaml:"line_height"`  // multiple of FontSize, used with AutoSpacing
}

// CanvasConfig fixes the drawable height when non-zero
type CanvasConfig struct {
	Height int `yaml:"height"`
}

// SamplingConfig controls the mask scan
type SamplingConfig struct {
	Gap       int     `yaml:"gap"`
	Threshold int     `yaml:"threshold"`
	Margin    float64 `yaml:"margin"`
}

// AttractConfig controls text formation
type AttractConfig struct {
	Speed float64 `yaml:"speed"`
}

// StarConfig controls the glow of star particles
type StarConfig struct {
	Chance  float64 `yaml:"chance"`
	MaxGlow float64 `yaml:"max_glow"`
	MinGlow float64 `yaml:"min_glow"`
}

// CenterConfig is the attraction hot spot. Nil coordinates mean half the drawable size.
type CenterConfig struct {
	X       *float64 `yaml:"x"`
	Y       *float64 `yaml:"y"`
	Radius  float64  `yaml:"radius"`
	Density float64  `yaml:"density"`
}

// DriftConfig controls the ambient float
type DriftConfig struct {
	Jitter       float64 `yaml:"jitter"`
	Damping      float64 `yaml:"damping"`
	InitialSpeed float64 `yaml:"initial_speed"`
	Noise        string  `yaml:"noise"`
}

// BlinkConfig controls the firefly twinkle
type BlinkConfig struct {
	Chance float64 `yaml:"chance"`
	Step   float64 `yaml:"step"`
}

// SizeConfig is the range of square sides
type SizeConfig struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Config is the full parameter set
type Config struct {
	Preset     string         `yaml:"preset"`
	Canvas     CanvasConfig   `yaml:"canvas"`
	Text       TextConfig     `yaml:"text"`
	Sampling   SamplingConfig `yaml:"sampling"`
	Attract    AttractConfig  `yaml:"attract"`
	Palette    []string       `yaml:"palette"`
	Background string         `yaml:"background"`
	Star       StarConfig     `yaml:"star"`
	Center     CenterConfig   `yaml:"center"`
	Drift      DriftConfig    `yaml:"drift"`
	Blink      BlinkConfig    `yaml:"blink"`
	Size       SizeConfig     `yaml:"size"`
}

func ptr(v float64) *float64 { return &v }

// Default returns the section preset
func Default() *Config {
	return sectionPreset()
}

func sectionPreset() *Config {
	return &Config{
		Preset: PresetSection,
		Canvas: CanvasConfig{Height: 700},
		Text: TextConfig{
			Lines: []Line{
				{Text: "welcome to my", YOffset: -50},
				{Text: "portfolio.", YOffset: 50},
			},
			FontSize:   120,
			LineHeight: 1.2,
		},
		Sampling:   SamplingConfig{Gap: 4, Threshold: 128},
		Attract:    AttractConfig{Speed: 0.05},
		Palette:    []string{"#ffffff", "#929292ff", "#575757ff"},
		Background: "#0c0c0c",
		Star:       StarConfig{Chance: 0.2, MaxGlow: 5, MinGlow: 2},
		Center:     CenterConfig{Y: ptr(350), Radius: 200, Density: 0.2},
		Drift:      DriftConfig{Jitter: 0.02, Damping: 0.98, InitialSpeed: 0.5, Noise: NoiseUniform},
		Blink:      BlinkConfig{Chance: 0.2, Step: 0.05},
		Size:       SizeConfig{Min: 0.5, Max: 2.0},
	}
}

func fullscreenPreset() *Config {
	c := sectionPreset()
	c.Preset = PresetFullscreen
	c.Canvas.Height = 0
	c.Text = TextConfig{
		Lines:       []Line{{Text: "welcome to my"}, {Text: "portfolio."}},
		FontSize:    100,
		AutoSpacing: true,
		LineHeight:  1.2,
	}
	c.Sampling.Margin = 50
	c.Palette = []string{"#ffffff", "#c5c5c5ff", "#575757ff"}
	c.Center.Y = nil
	c.Blink.Chance = 0
	return c
}

// Preset returns a fresh copy of the named preset
func Preset(name string) (*Config, error) {
	switch strings.ToLower(name) {
	case "", PresetSection:
		return sectionPreset(), nil
	case PresetFullscreen:
		return fullscreenPreset(), nil
	}
	return nil, fmt.Errorf("%w: unknown preset %q", ErrInvalid, name)
}

// Parse overlays YAML data on the preset it names (section when unnamed)
func Parse(data []byte) (*Config, error) {
	var head struct {
		Preset string `yaml:"preset"`
	}
	if err := yaml.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	c, err := Preset(head.Preset)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Load reads a YAML config file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Save writes c to path as YAML, readable again by Load
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return nil
}

// Validate checks ranges that would otherwise break the animation
func (c *Config) Validate() error {
	switch {
	case c.Sampling.Gap < 1:
		return fmt.Errorf("%w: sampling.gap must be >= 1, got %d", ErrInvalid, c.Sampling.Gap)
	case c.Sampling.Threshold < 0 || c.Sampling.Threshold > 255:
		return fmt.Errorf("%w: sampling.threshold must be in [0,255], got %d", ErrInvalid, c.Sampling.Threshold)
	case c.Sampling.Margin < 0:
		return fmt.Errorf("%w: sampling.margin must be >= 0", ErrInvalid)
	case c.Text.FontSize <= 0:
		return fmt.Errorf("%w: text.font_size must be > 0", ErrInvalid)
	case c.Attract.Speed <= 0 || c.Attract.Speed > 1:
		return fmt.Errorf("%w: attract.speed must be in (0,1], got %v", ErrInvalid, c.Attract.Speed)
	case c.Drift.Damping < 0 || c.Drift.Damping >= 1:
		return fmt.Errorf("%w: drift.damping must be in [0,1), got %v", ErrInvalid, c.Drift.Damping)
	case c.Drift.Noise != NoiseUniform && c.Drift.Noise != NoisePerlin:
		return fmt.Errorf("%w: drift.noise must be %q or %q, got %q", ErrInvalid, NoiseUniform, NoisePerlin, c.Drift.Noise)
	case c.Size.Min <= 0 || c.Size.Max < c.Size.Min:
		return fmt.Errorf("%w: size range [%v,%v] is empty", ErrInvalid, c.Size.Min, c.Size.Max)
	case c.Star.MaxGlow < 0 || c.Star.MinGlow < 0:
		return fmt.Errorf("%w: star glow must be >= 0", ErrInvalid)
	case c.Center.Radius < 0 || c.Center.Density <= 0:
		return fmt.Errorf("%w: center.radius must be >= 0 and center.density > 0", ErrInvalid)
	case c.Canvas.Height < 0:
		return fmt.Errorf("%w: canvas.height must be >= 0", ErrInvalid)
	case len(c.Palette) == 0:
		return fmt.Errorf("%w: palette is empty", ErrInvalid)
	}
	for _, p := range []float64{c.Star.Chance, c.Blink.Chance} {
		if p < 0 || p > 1 {
			return fmt.Errorf("%w: probability %v outside [0,1]", ErrInvalid, p)
		}
	}
	for _, s := range c.Palette {
		if _, err := ParseColor(s); err != nil {
			return err
		}
	}
	if _, err := ParseColor(c.Background); err != nil {
		return err
	}
	return nil
}

// ParseColor decodes #rgb, #rgba, #rrggbb and #rrggbbaa
func ParseColor(s string) (color.NRGBA, error) {
	h := strings.TrimPrefix(s, "#")
	switch len(h) {
	case 3, 4, 6, 8:
	default:
		return color.NRGBA{}, fmt.Errorf("%w: bad colour %q", ErrInvalid, s)
	}
	for _, r := range h {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return color.NRGBA{}, fmt.Errorf("%w: bad colour %q", ErrInvalid, s)
		}
	}
	c := gg.Hex(h)
	return color.NRGBA{
		R: uint8(math.Round(c.R * 255)),
		G: uint8(math.Round(c.G * 255)),
		B: uint8(math.Round(c.B * 255)),
		A: uint8(math.Round(c.A * 255)),
	}, nil
}

// Colors returns the decoded palette and background
func (c *Config) Colors() (palette []color.NRGBA, background color.NRGBA, err error) {
	palette = make([]color.NRGBA, 0, len(c.Palette))
	for _, s := range c.Palette {
		col, err := ParseColor(s)
		if err != nil {
			return nil, color.NRGBA{}, err
		}
		palette = append(palette, col)
	}
	background, err = ParseColor(c.Background)
	if err != nil {
		return nil, color.NRGBA{}, err
	}
	return palette, background, nil
}

// CanvasSize maps the host viewport to the drawable area
func (c *Config) CanvasSize(outsideWidth, outsideHeight int) (int, int) {
	if c.Canvas.Height > 0 {
		return outsideWidth, c.Canvas.Height
	}
	return outsideWidth, outsideHeight
}

// CenterPoint resolves the centre for a drawable area of w x h
func (c *Config) CenterPoint(w, h float64) (float64, float64) {
	x, y := w/2, h/2
	if c.Center.X != nil {
		x = *c.Center.X
	}
	if c.Center.Y != nil {
		y = *c.Center.Y
	}
	return x, y
}

// ResolvedLines returns the lines with auto spacing applied
func (c *Config) ResolvedLines() []Line {
	lines := make([]Line, len(c.Text.Lines))
	copy(lines, c.Text.Lines)
	if !c.Text.AutoSpacing {
		return lines
	}
	n := float64(len(lines))
	step := c.Text.FontSize * c.Text.LineHeight
	for i := range lines {
		lines[i].YOffset = (float64(i) - n/2 + 0.5) * step
	}
	return lines
}
