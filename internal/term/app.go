package term

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/olivierh59500/pixelhero-go/internal/field"
	"github.com/olivierh59500/pixelhero-go/internal/render"
)

// FrameTime is the tick of the terminal loop, about 60 frames per second
const FrameTime = 16 * time.Millisecond

// App runs a field on a terminal screen
type App struct {
	screen  tcell.Screen
	surface *Surface
	field   *field.Field
}

// NewApp sizes the field to the screen and generates the first particle set
func NewApp(screen tcell.Screen, f *field.Field, cellW, cellH float64) *App {
	a := &App{
		screen:  screen,
		surface: NewSurface(screen, cellW, cellH),
		field:   f,
	}
	a.resize()
	return a
}

func (a *App) resize() {
	w, h := a.surface.Size()
	a.field.Resize(w, h)
}

// HandleEvent applies one input event and reports whether the loop should continue
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}
	case *tcell.EventMouse:
		col, row := ev.Position()
		a.field.SetPointer(a.surface.PixelAt(col, row))
	case *tcell.EventResize:
		a.screen.Sync()
		a.resize()
	}
	return true
}

// Tick advances and draws one frame
func (a *App) Tick() {
	a.field.Step()
	render.Frame(a.surface, a.field)
	a.screen.Show()
}

// Run drives the loop until the user quits. Events are read on their own
// goroutine and applied on the loop goroutine, so the field has a single owner.
func (a *App) Run() {
	ticker := time.NewTicker(FrameTime)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go a.pollEvents(events, done)

	for {
		select {
		case ev, ok := <-events:
			if !ok || !a.HandleEvent(ev) {
				return
			}
		case <-ticker.C:
			a.Tick()
		}
	}
}

// pollEvents forwards screen events until the screen is finalized or done is closed
func (a *App) pollEvents(events chan<- tcell.Event, done <-chan struct{}) {
	defer close(events)
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}
