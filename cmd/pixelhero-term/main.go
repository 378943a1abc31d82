// Command pixelhero-term runs the particle hero in a terminal with mouse hover.
package main

import (
	"flag"
	"io"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/olivierh59500/pixelhero-go/internal/config"
	"github.com/olivierh59500/pixelhero-go/internal/field"
	"github.com/olivierh59500/pixelhero-go/internal/term"
	"github.com/olivierh59500/pixelhero-go/internal/textmask"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (overrides -preset)")
	preset := flag.String("preset", config.PresetFullscreen, "preset: section or fullscreen")
	seed := flag.Int64("seed", 0, "random seed (0 = time based)")
	cellW := flag.Float64("cell-width", 8, "virtual pixels per terminal column")
	cellH := flag.Float64("cell-height", 16, "virtual pixels per terminal row")
	logPath := flag.String("log", "", "write logs to this file (the screen is busy)")
	flag.Parse()

	// The terminal owns stdout and stderr while running
	var logOut io.Writer = io.Discard
	if *logPath != "" {
		file, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatal(err)
		}
		defer file.Close()
		logOut = file
	}
	logger := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: slog.LevelDebug}))
	field.SetLogger(logger)

	var (
		cfg *config.Config
		err error
	)
	if *configPath != "" {
		cfg, err = config.Load(*configPath)
	} else {
		cfg, err = config.Preset(*preset)
	}
	if err != nil {
		log.Fatal(err)
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	if *cellW <= 0 || *cellH <= 0 {
		log.Fatalf("cell size must be positive, got %vx%v", *cellW, *cellH)
	}

	masks, err := textmask.New(cfg, logger)
	if err != nil {
		log.Fatal(err)
	}
	f, err := field.New(cfg, masks, *seed)
	if err != nil {
		log.Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	term.NewApp(screen, f, *cellW, *cellH).Run()
	logger.Info("terminal closed", "frames", f.Frame)
}
