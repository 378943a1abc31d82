// Package snapshot steps a field without a window and writes frames as PNG files.
package snapshot

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/olivierh59500/pixelhero-go/internal/field"
	"github.com/olivierh59500/pixelhero-go/internal/render"
)

// Pointer placements accepted by ParsePointer besides "x,y"
const (
	PointerCenter = "center"
	PointerAway   = "away"
)

// Options controls a headless run
type Options struct {
	Width, Height int
	Frames        int    // frames to step
	Every         int    // write every n-th frame; 0 writes only the last one
	Pointer       string // "center", "away" or "x,y"
	Dir           string
}

// Run regenerates f at the requested size, places the pointer, steps it and
// returns the paths of the written frames.
func Run(f *field.Field, opts Options, logger *slog.Logger) ([]string, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("invalid size %dx%d", opts.Width, opts.Height)
	}
	if opts.Frames < 0 || opts.Every < 0 {
		return nil, fmt.Errorf("frames and every must not be negative")
	}
	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", opts.Dir, err)
	}

	f.Resize(opts.Width, opts.Height)
	x, y, err := ParsePointer(opts.Pointer, f)
	if err != nil {
		return nil, err
	}
	f.SetPointer(x, y)
	logger.Info("snapshot started",
		"particles", len(f.Particles), "mode", f.Mode(), "frames", opts.Frames)

	surface := render.NewCanvasSurface(opts.Width, opts.Height)
	defer surface.Close()

	var paths []string
	for i := 1; i <= opts.Frames; i++ {
		f.Step()
		last := i == opts.Frames
		if !last && (opts.Every == 0 || i%opts.Every != 0) {
			continue
		}
		render.Frame(surface, f)
		path := filepath.Join(opts.Dir, fmt.Sprintf("frame-%05d.png", i))
		if err := surface.SavePNG(path); err != nil {
			return paths, err
		}
		logger.Debug("frame written", "path", path)
		paths = append(paths, path)
	}
	return paths, nil
}

// ParsePointer resolves a pointer placement for f. "away" puts the pointer
// far outside the canvas so the field drifts.
func ParsePointer(s string, f *field.Field) (float64, float64, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", PointerAway:
		return math.Inf(-1), math.Inf(-1), nil
	case PointerCenter:
		x, y := f.Center()
		return x, y, nil
	}

	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, fmt.Errorf("invalid pointer %q: want center, away or x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid pointer x %q: %w", xs, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid pointer y %q: %w", ys, err)
	}
	return x, y, nil
}
