// Package textmask rasterizes the configured text lines into an alpha mask
// using a CPU gg context.
package textmask

import (
	"image"
	"image/color"
	"image/draw"
	"log/slog"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"

	"github.com/olivierh59500/pixelhero-go/internal/config"
)

// Renderer draws text lines centred on a point, one mask per drawable size
type Renderer struct {
	cfg  *config.Config
	face text.Face
}

// New loads the configured font. A font file that cannot be read or parsed
// falls back to the embedded Go Bold and is logged as a warning.
func New(cfg *config.Config, logger *slog.Logger) (*Renderer, error) {
	face, err := LoadFace(cfg.Text.FontPath, cfg.Text.FontSize)
	if err != nil {
		logger.Warn("font unavailable, using embedded bold",
			"path", cfg.Text.FontPath, "error", err)
		face, err = LoadFace("", cfg.Text.FontSize)
		if err != nil {
			return nil, err
		}
	}
	return &Renderer{cfg: cfg, face: face}, nil
}

// LoadFace returns a face for the TTF/OTF at path, or Go Bold when path is empty
func LoadFace(path string, size float64) (text.Face, error) {
	var (
		src *text.FontSource
		err error
	)
	if path == "" {
		src, err = text.NewFontSource(gobold.TTF)
	} else {
		src, err = text.NewFontSourceFromFile(path)
	}
	if err != nil {
		return nil, err
	}
	return src.Face(size), nil
}

// Mask renders every line and returns the alpha channel of the surface.
// Lines are centred horizontally on centre+XOffset and middle-aligned
// vertically on centre+YOffset. Anything outside the surface is clipped.
func (r *Renderer) Mask(width, height int) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, width, height))
	if width <= 0 || height <= 0 {
		return mask
	}

	dc := gg.NewContext(width, height)
	defer func() {
		_ = dc.Close()
	}()
	dc.SetFont(r.face)
	dc.SetColor(color.White)

	cx, cy := r.cfg.CenterPoint(float64(width), float64(height))
	m := r.face.Metrics()
	middle := (m.Ascent - m.Descent) / 2
	for _, line := range r.cfg.ResolvedLines() {
		if line.Text == "" {
			continue
		}
		w, _ := dc.MeasureString(line.Text)
		dc.DrawString(line.Text, cx+line.XOffset-w/2, cy+line.YOffset+middle)
	}

	img := dc.Image()
	draw.Draw(mask, mask.Bounds(), img, img.Bounds().Min, draw.Src)
	return mask
}
