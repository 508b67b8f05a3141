package tui

import (
	"time"

	"galton/internal/app"
	"galton/internal/core"

	"github.com/gdamore/tcell/v2"
)

// DefaultFrameInterval is the redraw period of the terminal loop.
const DefaultFrameInterval = 16 * time.Millisecond

type landingCounter interface {
	Landed() int
}

// Frontend draws a sim into a terminal and feeds key presses to its
// controller.
type Frontend struct {
	screen  tcell.Screen
	ctrl    *app.Controller
	colors  []tcell.Color
	clicker *Clicker
	landed  int
}

// New builds a frontend around an initialized screen. clicker may be nil.
func New(screen tcell.Screen, ctrl *app.Controller, clicker *Clicker) *Frontend {
	f := &Frontend{screen: screen, ctrl: ctrl, clicker: clicker}
	if provider, ok := ctrl.Sim().(core.PaletteProvider); ok {
		f.colors = paletteColors(provider.Palette())
	}
	return f
}

// HandleKey applies one key press. It returns false when the user quits.
func (f *Frontend) HandleKey(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		f.ctrl.Press(app.ActionQuit)
	case tcell.KeyRune:
		f.ctrl.Press(app.ActionForRune(r))
	}
	return !f.ctrl.Quit()
}

// HandleEvent dispatches a tcell event. It returns false when the user quits.
func (f *Frontend) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return f.HandleKey(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		f.screen.Sync()
	}
	return true
}

// Frame advances the controller, voices new landings and redraws.
func (f *Frontend) Frame() {
	f.ctrl.Update()
	if counter, ok := f.ctrl.Sim().(landingCounter); ok {
		landed := counter.Landed()
		if landed > f.landed {
			f.clicker.Click(landed - f.landed)
		}
		f.landed = landed
	}
	f.draw()
}

func (f *Frontend) draw() {
	sim := f.ctrl.Sim()
	size := sim.Size()
	tw, th := f.screen.Size()
	ox, oy := origin(size, tw, th)

	f.screen.Clear()
	drawFrame(f.screen, sim.Cells(), size, f.colors, ox, oy)
	status := statusText(sim, f.ctrl.Paused())
	drawText(f.screen, ox, oy+frameRows(size.H), status, tcell.StyleDefault.Foreground(tcell.ColorWhite))
	f.screen.Show()
}

// Run polls events and redraws every interval until the user quits.
func (f *Frontend) Run(interval time.Duration) {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := f.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case ev := <-events:
			if !f.HandleEvent(ev) {
				return
			}
		case <-ticker.C:
			f.Frame()
		}
	}
}
