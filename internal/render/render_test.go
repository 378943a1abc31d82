package render

import (
	"image"
	"image/color"
	"math"
	"path/filepath"
	"testing"

	"github.com/olivierh59500/pixelhero-go/internal/config"
	"github.com/olivierh59500/pixelhero-go/internal/field"
)

type op struct {
	clear bool
	x, y  float64
	size  float64
	c     color.NRGBA
	glow  float64
}

// recorder keeps every call in order
type recorder struct {
	ops []op
}

func (r *recorder) Clear(c color.NRGBA) { r.ops = append(r.ops, op{clear: true, c: c}) }

func (r *recorder) Square(x, y, size float64, c color.NRGBA, glow float64) {
	r.ops = append(r.ops, op{x: x, y: y, size: size, c: c, glow: glow})
}

type emptyMask struct{}

func (emptyMask) Mask(w, h int) *image.Alpha { return image.NewAlpha(image.Rect(0, 0, w, h)) }

func newField(t *testing.T, particles ...*field.Particle) *field.Field {
	t.Helper()
	f, err := field.New(config.Default(), emptyMask{}, 1)
	if err != nil {
		t.Fatalf("field.New error: %v", err)
	}
	f.Resize(100, 100)
	f.Particles = particles
	return f
}

var white = color.NRGBA{255, 255, 255, 255}

func TestFrameOrder(t *testing.T) {
	f := newField(t,
		&field.Particle{X: 1, Y: 2, Size: 1.5, Color: white},
		&field.Particle{X: 3, Y: 4, Size: 0.5, Color: white},
		&field.Particle{X: 5, Y: 6, Size: 2, Color: white},
	)
	r := &recorder{}
	Frame(r, f)

	if len(r.ops) != 4 {
		t.Fatalf("got %d calls, want 4", len(r.ops))
	}
	if !r.ops[0].clear {
		t.Fatal("first call should clear the surface")
	}
	if r.ops[0].c != (color.NRGBA{0x0c, 0x0c, 0x0c, 255}) {
		t.Errorf("background = %v, want #0c0c0c", r.ops[0].c)
	}
	for i, p := range f.Particles {
		got := r.ops[i+1]
		if got.clear || got.x != p.X || got.y != p.Y || got.size != p.Size {
			t.Errorf("call %d = %+v, want particle %d at (%v, %v) size %v", i+1, got, i, p.X, p.Y, p.Size)
		}
	}
}

func TestFrameGlowOnlyForStars(t *testing.T) {
	f := newField(t,
		&field.Particle{Color: white, Star: true, Glow: 4},
		&field.Particle{Color: white, Star: false, Glow: 6},
	)
	r := &recorder{}
	Frame(r, f)

	if r.ops[1].glow != 4 {
		t.Errorf("star glow = %v, want 4", r.ops[1].glow)
	}
	if r.ops[2].glow != 0 {
		t.Errorf("non-star glow = %v, want 0", r.ops[2].glow)
	}
}

func TestFrameEmptyField(t *testing.T) {
	r := &recorder{}
	Frame(r, newField(t))
	if len(r.ops) != 1 || !r.ops[0].clear {
		t.Errorf("empty field should only clear, got %+v", r.ops)
	}
}

func TestOpacity(t *testing.T) {
	steady := &field.Particle{Phase: 1}
	if got := Opacity(steady, 123); got != 1 {
		t.Errorf("steady opacity = %v, want 1", got)
	}

	tests := []struct {
		phase, offset float64
		want          float64
	}{
		{0, 0, 0.5},
		{math.Pi / 2, 0, 1},
		{0, 3 * math.Pi / 2, 0},
		{math.Pi / 4, math.Pi / 4, 1},
	}
	for _, tt := range tests {
		p := &field.Particle{Blink: true, Phase: tt.offset}
		if got := Opacity(p, tt.phase); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Opacity(phase %v, offset %v) = %v, want %v", tt.phase, tt.offset, got, tt.want)
		}
	}

	for phase := 0.0; phase < 20; phase += 0.05 {
		o := Opacity(&field.Particle{Blink: true, Phase: 0.3}, phase)
		if o < 0 || o > 1 {
			t.Fatalf("opacity %v outside [0, 1]", o)
		}
	}
}

func TestFrameBlinkFollowsFrameCounter(t *testing.T) {
	f := newField(t, &field.Particle{Color: white, Blink: true, Phase: 0})
	r := &recorder{}
	Frame(r, f)
	// frame 0: sin(0) = 0 -> half alpha
	if got := r.ops[1].c.A; got != 128 {
		t.Errorf("alpha at frame 0 = %d, want 128", got)
	}
}

func TestWithOpacity(t *testing.T) {
	c := color.NRGBA{10, 20, 30, 200}
	tests := []struct {
		a    float64
		want uint8
	}{
		{1, 200},
		{0.5, 100},
		{0, 0},
		{-1, 0},
		{2, 200},
	}
	for _, tt := range tests {
		got := WithOpacity(c, tt.a)
		if got.A != tt.want || got.R != 10 || got.G != 20 || got.B != 30 {
			t.Errorf("WithOpacity(%v) = %v, want alpha %d", tt.a, got, tt.want)
		}
	}
}

func TestHalo(t *testing.T) {
	if h := Halo(0, 0, 2, white, 0); h != nil {
		t.Errorf("zero glow produced %d layers", len(h))
	}

	h := Halo(10, 10, 2, white, 6)
	if len(h) != haloLayers {
		t.Fatalf("got %d layers, want %d", len(h), haloLayers)
	}
	outer := h[0]
	if outer.X != 4 || outer.Y != 4 || outer.W != 14 || outer.H != 14 {
		t.Errorf("outer layer = %+v, want 14x14 at (4, 4)", outer)
	}
	for i := 1; i < len(h); i++ {
		if h[i].W >= h[i-1].W {
			t.Errorf("layer %d is not inside layer %d", i, i-1)
		}
		if h[i].Color.A <= h[i-1].Color.A {
			t.Errorf("layer %d is not more opaque than layer %d", i, i-1)
		}
	}
	if h[len(h)-1].Color.A >= white.A {
		t.Error("halo should be fainter than the particle")
	}
}

func TestCanvasSurface(t *testing.T) {
	s := NewCanvasSurface(64, 48)
	defer s.Close()

	bg := color.NRGBA{0x0c, 0x0c, 0x0c, 255}
	s.Clear(bg)
	s.Square(20, 20, 10, white, 0)
	if err := s.Err(); err != nil {
		t.Fatalf("fill error: %v", err)
	}

	img := s.Image()
	if got := img.Bounds(); got != image.Rect(0, 0, 64, 48) {
		t.Fatalf("bounds = %v, want 64x48", got)
	}
	if got := color.NRGBAModel.Convert(img.At(25, 25)).(color.NRGBA); got != white {
		t.Errorf("inside square = %v, want white", got)
	}
	if got := color.NRGBAModel.Convert(img.At(2, 2)).(color.NRGBA); got != bg {
		t.Errorf("background = %v, want %v", got, bg)
	}

	path := filepath.Join(t.TempDir(), "frame.png")
	if err := s.SavePNG(path); err != nil {
		t.Fatalf("SavePNG error: %v", err)
	}
}
