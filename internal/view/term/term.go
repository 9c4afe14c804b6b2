// Package term draws frames into a terminal and turns mouse events into
// simulation input.
package term

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/Arroyave03/CampoElectrico/internal/config"
	"github.com/Arroyave03/CampoElectrico/internal/physics"
	"github.com/Arroyave03/CampoElectrico/internal/sim"
)

const help = "drag o with the mouse, q quits"

var (
	lineStyle  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	barStyle   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	testStyle  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(100, 200, 255)).Bold(true)
	arrowStyle = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	helpStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// Renderer maps the canvas onto the cells of a tcell screen.
type Renderer struct {
	screen tcell.Screen
	w, h   float64 // canvas size

	pointer physics.Vec2
	held    bool
	down    bool
	up      bool
}

func NewRenderer(screen tcell.Screen, p config.Params) *Renderer {
	return &Renderer{screen: screen, w: p.Width, h: p.Height}
}

// Cell returns the cell covering canvas point p.
func (r *Renderer) Cell(p physics.Vec2) (int, int, bool) {
	cols, rows := r.screen.Size()
	if p.X < 0 || p.Y < 0 || p.X >= r.w || p.Y >= r.h {
		return 0, 0, false
	}
	return int(p.X / r.w * float64(cols)), int(p.Y / r.h * float64(rows)), true
}

// Canvas returns the canvas point at the center of cell (x, y).
func (r *Renderer) Canvas(x, y int) physics.Vec2 {
	cols, rows := r.screen.Size()
	return physics.Vec2{
		X: (float64(x) + 0.5) / float64(cols) * r.w,
		Y: (float64(y) + 0.5) / float64(rows) * r.h,
	}
}

func (r *Renderer) plot(p physics.Vec2, ch rune, style tcell.Style) {
	if x, y, ok := r.Cell(p); ok {
		r.screen.SetContent(x, y, ch, nil, style)
	}
}

// Draw renders f. The caller shows the screen.
func (r *Renderer) Draw(f sim.Frame) {
	r.screen.Clear()

	for _, line := range f.Lines {
		for _, p := range line {
			r.plot(p, '·', lineStyle)
		}
	}

	if f.Arrow.Visible {
		for i := 1; i <= 4; i++ {
			t := float64(i) / 4
			r.plot(f.Arrow.Tail.Add(f.Arrow.Tip.Sub(f.Arrow.Tail).Scale(t)), '.', arrowStyle)
		}
		r.plot(f.Arrow.Tip, '*', arrowStyle)
	}

	for _, c := range f.Bar {
		ch := '+'
		if c.Q < 0 {
			ch = '-'
		}
		r.plot(c.Pos, ch, barStyle)
	}
	r.plot(f.Test.Pos, 'o', testStyle)

	_, rows := r.screen.Size()
	for i, ch := range help {
		r.screen.SetContent(i, rows-1, ch, nil, helpStyle)
	}
}

// HandleEvent records mouse state and reports whether the user asked to
// quit.
func (r *Renderer) HandleEvent(ev tcell.Event) (quit bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return true
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		r.pointer = r.Canvas(x, y)

		pressed := ev.Buttons()&tcell.Button1 != 0
		if pressed && !r.held {
			r.down = true
		}
		if !pressed && r.held {
			r.up = true
		}
		r.held = pressed
	case *tcell.EventResize:
		r.screen.Sync()
	}
	return false
}

// Input drains the edges seen since the last call.
func (r *Renderer) Input() sim.Input {
	in := sim.Input{Pointer: r.pointer, Down: r.down, Up: r.up}
	r.down, r.up = false, false
	return in
}

// Run drives s on screen at hz ticks per second until the user quits or
// ctx is done. It owns screen and finalizes it on return.
func Run(ctx context.Context, screen tcell.Screen, s *sim.Session, hz int) error {
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	if hz <= 0 {
		hz = 30
	}

	r := NewRenderer(screen, s.Params())
	r.pointer = s.TestCharge().Pos

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
			if ev == nil {
				return // screen finalized
			}
		}
	}()

	t := time.NewTicker(time.Second / time.Duration(hz))
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if ev == nil {
				return nil
			}
			if r.HandleEvent(ev) {
				return nil
			}
		case <-t.C:
			r.Draw(s.Tick(r.Input()))
			screen.Show()
		}
	}
}
