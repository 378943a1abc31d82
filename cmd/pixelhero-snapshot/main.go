// Command pixelhero-snapshot renders particle frames to PNG files without a window.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/olivierh59500/pixelhero-go/internal/config"
	"github.com/olivierh59500/pixelhero-go/internal/field"
	"github.com/olivierh59500/pixelhero-go/internal/snapshot"
	"github.com/olivierh59500/pixelhero-go/internal/textmask"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (overrides -preset)")
	preset := flag.String("preset", config.PresetSection, "preset: section or fullscreen")
	seed := flag.Int64("seed", 0, "random seed (0 = time based)")
	width := flag.Int("width", 1280, "canvas width")
	height := flag.Int("height", 720, "canvas height (ignored when the config fixes canvas.height)")
	frames := flag.Int("frames", 120, "frames to simulate")
	every := flag.Int("every", 0, "write every n-th frame (0 = last frame only)")
	pointer := flag.String("pointer", snapshot.PointerCenter, "pointer: center, away or x,y")
	out := flag.String("out", "frames", "output directory")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
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
	w, h := cfg.CanvasSize(*width, *height)

	masks, err := textmask.New(cfg, logger)
	if err != nil {
		log.Fatal(err)
	}
	f, err := field.New(cfg, masks, *seed)
	if err != nil {
		log.Fatal(err)
	}

	paths, err := snapshot.Run(f, snapshot.Options{
		Width:   w,
		Height:  h,
		Frames:  *frames,
		Every:   *every,
		Pointer: *pointer,
		Dir:     *out,
	}, logger)
	if err != nil {
		log.Fatal(err)
	}
	logger.Info("snapshot done", "frames", len(paths), "dir", *out)
}
