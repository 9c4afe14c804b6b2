package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"github.com/Arroyave03/CampoElectrico/internal/config"
	"github.com/Arroyave03/CampoElectrico/internal/physics"
	"github.com/Arroyave03/CampoElectrico/internal/sim"
	"github.com/Arroyave03/CampoElectrico/internal/view/term"
	"github.com/Arroyave03/CampoElectrico/internal/view/window"
)

func main() {
	params := config.Default()
	params.RegisterFlags(flag.CommandLine)

	var (
		opts     window.Options
		termMode bool
		headless sim.HeadlessConfig
		noWindow bool
		drag     bool
	)
	flag.BoolVar(&opts.Background, "background", false, "Shade the window by field strength.")
	flag.BoolVar(&opts.Grid, "grid", false, "Draw a grid of field direction arrows.")
	flag.BoolVar(&termMode, "term", false, "Draw in the terminal instead of a window.")
	flag.BoolVar(&noWindow, "headless", false, "Run without any display.")
	flag.IntVar(&headless.Hz, "hz", 60, "Tick rate in terminal and headless mode.")
	flag.Uint64Var(&headless.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.BoolVar(&drag, "drag", false, "In headless mode, drag the test charge across the canvas.")
	flag.Parse()

	s, err := sim.New(params)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	log.Printf("charged bar: %d charges over %v, %d seeds, step %v, max %d steps",
		params.BarCharges, params.BarLength, len(s.Seeds()), params.StepSize, params.MaxSteps)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch {
	case noWindow:
		if drag {
			from := s.TestCharge().Pos
			to := physics.Vec2{X: params.Width / 4, Y: from.Y}
			n := headless.Ticks / 2
			if n == 0 {
				n = 120
			}
			headless.Script = sim.DragPath(from, to, n)
		}
		err = sim.RunHeadless(ctx, s, headless)
	case termMode:
		var screen tcell.Screen
		screen, err = tcell.NewScreen()
		if err == nil {
			err = term.Run(ctx, screen, s, headless.Hz)
		}
	default:
		opts.Title = "Charged bar field lines"
		err = window.Run(s, opts)
	}

	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}
