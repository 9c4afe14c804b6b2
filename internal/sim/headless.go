package sim

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Arroyave03/CampoElectrico/internal/physics"
)

// HeadlessConfig controls the no-window runner.
type HeadlessConfig struct {
	Hz    int
	Ticks uint64 // stop after this many ticks, 0 runs until ctx is done
	// Script, when set, supplies the input for each tick.
	Script func(tick uint64) Input
}

// RunHeadless ticks s without a renderer and logs a summary when it stops.
func RunHeadless(ctx context.Context, s *Session, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	var (
		tick   uint64
		points int
		lines  int
	)
	start := time.Now()
	defer func() {
		log.Printf("headless: %d ticks in %v, %d lines, %d points, seed generation %d",
			tick, time.Since(start).Round(time.Millisecond), lines, points, s.Generation())
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			var in Input
			if cfg.Script != nil {
				in = cfg.Script(tick)
			}
			f := s.Tick(in)
			lines += len(f.Lines)
			for _, l := range f.Lines {
				points += len(l)
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}

// DragPath scripts a drag of the pointer from one point to another: press
// on tick 0, straight-line follow, release on tick n. Later ticks are idle
// with the pointer resting at to.
func DragPath(from, to physics.Vec2, n uint64) func(uint64) Input {
	if n == 0 {
		n = 1
	}
	return func(tick uint64) Input {
		switch {
		case tick == 0:
			return Input{Pointer: from, Down: true}
		case tick < n:
			f := float64(tick) / float64(n)
			return Input{Pointer: from.Add(to.Sub(from).Scale(f))}
		case tick == n:
			return Input{Pointer: to, Up: true}
		default:
			return Input{Pointer: to}
		}
	}
}
