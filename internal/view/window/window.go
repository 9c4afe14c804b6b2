// Package window is the desktop shell: it feeds mouse input to a session
// and strokes the frames it returns.
package window

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/Arroyave03/CampoElectrico/internal/physics"
	"github.com/Arroyave03/CampoElectrico/internal/sim"
)

// Options toggles the optional overlays.
type Options struct {
	Title string

	// Background shades every pixel by field strength. It is recomputed
	// only when the seeds are, so it lags behind a drag.
	Background bool
	BgScale    float64

	// Grid draws a field direction arrow every GridStep pixels.
	Grid     bool
	GridStep int
}

var (
	lineColor  = color.RGBA{255, 255, 255, 150}
	barColor   = color.RGBA{255, 100, 100, 255}
	testColor  = color.RGBA{100, 200, 255, 255}
	arrowColor = color.RGBA{0, 255, 0, 255}
	gridColor  = color.RGBA{0, 255, 0, 120}
)

// Game adapts a session to ebiten.
type Game struct {
	s    *sim.Session
	opts Options
	w, h int

	frame sim.Frame

	bgImage *ebiten.Image
	bgGen   uint64
}

func NewGame(s *sim.Session, opts Options) *Game {
	p := s.Params()
	if opts.BgScale <= 0 {
		opts.BgScale = 200
	}
	if opts.GridStep <= 0 {
		opts.GridStep = 40
	}
	return &Game{
		s:    s,
		opts: opts,
		w:    int(math.Ceil(p.Width)),
		h:    int(math.Ceil(p.Height)),
	}
}

// Run opens the window and blocks until it is closed.
func Run(s *sim.Session, opts Options) error {
	g := NewGame(s, opts)
	ebiten.SetWindowSize(g.w, g.h)
	ebiten.SetWindowTitle(opts.Title)
	return ebiten.RunGame(g)
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		g.opts.Background = !g.opts.Background
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.opts.Grid = !g.opts.Grid
	}

	x, y := ebiten.CursorPosition()
	g.frame = g.s.Tick(sim.Input{
		Pointer: physics.Vec2{X: float64(x), Y: float64(y)},
		Down:    inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Up:      inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
	})

	if g.opts.Background && (g.bgImage == nil || g.bgGen != g.frame.Generation) {
		g.recomputeBackground()
	}
	return nil
}

func (g *Game) recomputeBackground() {
	img := image.NewRGBA(image.Rect(0, 0, g.w, g.h))
	for py := 0; py < g.h; py++ {
		for px := 0; px < g.w; px++ {
			E := g.s.Field(physics.Vec2{X: float64(px), Y: float64(py)})

			val := E.Len() * g.opts.BgScale
			if val > 1 {
				val = 1
			}
			c := uint8(val * 255)
			img.SetRGBA(px, py, color.RGBA{c, c, c, 255})
		}
	}

	if g.bgImage != nil {
		g.bgImage.Deallocate()
	}
	g.bgImage = ebiten.NewImageFromImage(img)
	g.bgGen = g.frame.Generation
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.opts.Background && g.bgImage != nil {
		screen.DrawImage(g.bgImage, nil)
	} else {
		screen.Fill(color.Black)
	}

	if g.opts.Grid {
		g.drawGrid(screen)
	}

	g.drawBar(screen)

	tc := g.frame.Test
	vector.DrawFilledCircle(screen, float32(tc.Pos.X), float32(tc.Pos.Y), float32(tc.PickRadius), testColor, true)

	for _, line := range g.frame.Lines {
		for i := 0; i < len(line)-1; i++ {
			stroke(screen, line[i], line[i+1], 1.5, lineColor)
		}
	}

	if a := g.frame.Arrow; a.Visible {
		stroke(screen, a.Tail, a.Tip, 2, arrowColor)
		stroke(screen, a.Tip, a.Left, 2, arrowColor)
		stroke(screen, a.Tip, a.Right, 2, arrowColor)
	}

	face := basicfont.Face7x13
	text.Draw(screen, "Drag the blue test charge. Field lines refresh on release.", face, 10, 20, color.White)
	text.Draw(screen, "B: field strength background, G: arrow grid", face, 10, 40, color.White)
}

func (g *Game) drawBar(screen *ebiten.Image) {
	bar := g.frame.Bar
	if len(bar) == 0 {
		return
	}

	x1, x2 := bar[0].Pos.X, bar[len(bar)-1].Pos.X
	y := bar[0].Pos.Y
	vector.DrawFilledRect(screen, float32(x1-5), float32(y-6), float32(x2-x1+10), 12, barColor, false)

	for _, c := range bar {
		x, y := float32(c.Pos.X), float32(c.Pos.Y)
		vector.StrokeLine(screen, x-3, y, x+3, y, 2, color.White, false)
		if c.Q >= 0 {
			vector.StrokeLine(screen, x, y-3, x, y+3, 2, color.White, false)
		}
	}
}

func (g *Game) drawGrid(screen *ebiten.Image) {
	step := g.opts.GridStep
	for py := step / 2; py < g.h; py += step {
		for px := step / 2; px < g.w; px += step {
			from := physics.Vec2{X: float64(px), Y: float64(py)}

			E := g.s.Field(from)
			mag := E.Len()
			if mag < 1e-9 {
				continue
			}
			to := from.Add(E.Scale(15 / mag))
			stroke(screen, from, to, 1, gridColor)

			angle := math.Atan2(to.Y-from.Y, to.X-from.X)
			for _, head := range []float64{angle + 0.6, angle - 0.6} {
				barb := to.Sub(physics.Vec2{X: 6 * math.Cos(head), Y: 6 * math.Sin(head)})
				stroke(screen, to, barb, 1, gridColor)
			}
		}
	}
}

func stroke(dst *ebiten.Image, a, b physics.Vec2, width float32, c color.Color) {
	vector.StrokeLine(dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), width, c, true)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.w, g.h
}
