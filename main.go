package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/olivierh59500/pixelhero-go/internal/config"
	"github.com/olivierh59500/pixelhero-go/internal/field"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (overrides -preset)")
	preset := flag.String("preset", config.PresetSection, "preset: section or fullscreen")
	seed := flag.Int64("seed", 0, "random seed (0 = time based)")
	width := flag.Int("width", 1280, "initial window width")
	height := flag.Int("height", 720, "initial window height")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	field.SetLogger(logger)

	cfg, err := loadConfig(*configPath, *preset)
	if err != nil {
		log.Fatal(err)
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	sim, err := NewSimulation(cfg, *configPath, *seed, logger)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle("Pixel Hero")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)

	if err := ebiten.RunGame(sim); err != nil {
		log.Fatal(err)
	}
}

func loadConfig(path, preset string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	return config.Preset(preset)
}
