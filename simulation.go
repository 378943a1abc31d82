package main

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/olivierh59500/pixelhero-go/internal/config"
	"github.com/olivierh59500/pixelhero-go/internal/field"
	"github.com/olivierh59500/pixelhero-go/internal/render"
	"github.com/olivierh59500/pixelhero-go/internal/textmask"
)

const defaultConfigPath = "pixelhero.yaml"

// Simulation is the ebiten Game driving one particle field
type Simulation struct {
	field      *field.Field
	configPath string // target of the S and L keys
	seed       int64
	logger     *slog.Logger

	Paused bool

	// size requested by the last Layout call, applied on the next Update
	pendingW, pendingH int
	width, height      int
}

// NewSimulation builds the mask renderer and an empty field. Particles are
// generated once ebiten reports the window size.
func NewSimulation(cfg *config.Config, configPath string, seed int64, logger *slog.Logger) (*Simulation, error) {
	f, err := newField(cfg, seed, logger)
	if err != nil {
		return nil, err
	}
	if configPath == "" {
		configPath = defaultConfigPath
	}
	return &Simulation{
		field:      f,
		configPath: configPath,
		seed:       seed,
		logger:     logger,
	}, nil
}

func newField(cfg *config.Config, seed int64, logger *slog.Logger) (*field.Field, error) {
	masks, err := textmask.New(cfg, logger)
	if err != nil {
		return nil, err
	}
	return field.New(cfg, masks, seed)
}

// Update is called each tick by Ebitengine
func (s *Simulation) Update() error {
	s.handleInput()

	if s.pendingW != s.width || s.pendingH != s.height {
		s.width, s.height = s.pendingW, s.pendingH
		s.field.Resize(s.width, s.height)
	}

	mx, my := ebiten.CursorPosition()
	s.field.SetPointer(float64(mx), float64(my))

	if s.Paused {
		return nil
	}
	s.field.Step()
	return nil
}

// Draw is called each frame by Ebitengine
func (s *Simulation) Draw(screen *ebiten.Image) {
	render.Frame(NewEbitenSurface(screen), s.field)
}

// Layout maps the window to the drawable area. Regeneration is deferred to
// Update so it never runs during drawing.
func (s *Simulation) Layout(outsideWidth, outsideHeight int) (int, int) {
	s.pendingW, s.pendingH = s.field.Config().CanvasSize(outsideWidth, outsideHeight)
	return s.pendingW, s.pendingH
}

// handleInput processes keyboard input
func (s *Simulation) handleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.Paused = !s.Paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.regenerate()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		s.toggleNoise()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		s.saveConfig()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		s.loadConfig()
	}
}

// regenerate scatters a fresh particle set for the current size
func (s *Simulation) regenerate() {
	s.field.Resize(s.width, s.height)
}

// toggleNoise switches drift between uniform jitter and perlin flow, keeping
// the particles where they are
func (s *Simulation) toggleNoise() {
	next := config.NoisePerlin
	if s.field.Config().Drift.Noise == config.NoisePerlin {
		next = config.NoiseUniform
	}
	if err := s.field.SetNoise(next); err != nil {
		s.logger.Error("noise switch failed", "error", err)
		return
	}
	s.logger.Info("drift noise", "noise", next)
}

func (s *Simulation) saveConfig() {
	if err := s.field.Config().Save(s.configPath); err != nil {
		s.logger.Error("save failed", "error", err)
		return
	}
	s.logger.Info("config saved", "path", s.configPath)
}

func (s *Simulation) loadConfig() {
	cfg, err := config.Load(s.configPath)
	if err != nil {
		s.logger.Error("reload failed", "error", err)
		return
	}
	s.swap(cfg)
	s.logger.Info("config reloaded", "path", s.configPath)
}

// swap rebuilds the field around cfg. The window size is kept; a height
// change in cfg is picked up by the next Layout.
func (s *Simulation) swap(cfg *config.Config) {
	f, err := newField(cfg, s.seed, s.logger)
	if err != nil {
		s.logger.Error("config rejected", "error", err)
		return
	}
	s.field = f
	s.width, s.height = 0, 0
}
