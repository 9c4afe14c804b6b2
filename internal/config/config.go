// Package config holds the tunable constants of the visualization.
package config

import (
	"errors"
	"flag"
	"fmt"
	"math"
)

// Params are the numeric constants of a session. Canvas coordinates have
// the origin at the top-left corner with y growing downward.
type Params struct {
	Width  float64
	Height float64

	BarCharges int     // number of charges in the bar
	BarLength  float64 // distance between the first and last bar charge
	BarCharge  float64 // magnitude of every bar charge

	TestCharge float64
	TestOffset float64 // initial height of the test charge above the bar center
	PickRadius float64

	SeedsPerCharge int
	SeedRadius     float64

	StepSize  float64
	MaxSteps  int
	Epsilon   float64
	Threshold float64

	ArrowScale float64
	ArrowHead  float64
}

// Default returns the parameters of the classic charged bar scene.
func Default() Params {
	return Params{
		Width:  900,
		Height: 600,

		BarCharges: 9,
		BarLength:  180,
		BarCharge:  1,

		TestCharge: 1,
		TestOffset: 150,
		PickRadius: 12,

		SeedsPerCharge: 10,
		SeedRadius:     20,

		StepSize:  2,
		MaxSteps:  800,
		Epsilon:   1e-4,
		Threshold: 8,

		ArrowScale: 30,
		ArrowHead:  5,
	}
}

// RegisterFlags binds every parameter to a flag on fs, using the current
// values of p as defaults.
func (p *Params) RegisterFlags(fs *flag.FlagSet) {
	fs.Float64Var(&p.Width, "width", p.Width, "Canvas width.")
	fs.Float64Var(&p.Height, "height", p.Height, "Canvas height.")
	fs.IntVar(&p.BarCharges, "bar-charges", p.BarCharges, "Number of charges in the bar.")
	fs.Float64Var(&p.BarLength, "bar-length", p.BarLength, "Bar length.")
	fs.Float64Var(&p.BarCharge, "bar-q", p.BarCharge, "Charge of each bar element.")
	fs.Float64Var(&p.TestCharge, "test-q", p.TestCharge, "Charge of the test charge.")
	fs.Float64Var(&p.TestOffset, "test-offset", p.TestOffset, "Initial distance of the test charge above the bar.")
	fs.Float64Var(&p.PickRadius, "pick-radius", p.PickRadius, "Grab radius of the test charge.")
	fs.IntVar(&p.SeedsPerCharge, "seeds", p.SeedsPerCharge, "Field line seeds per charge.")
	fs.Float64Var(&p.SeedRadius, "seed-radius", p.SeedRadius, "Distance of seeds from their charge.")
	fs.Float64Var(&p.StepSize, "step", p.StepSize, "Integration step length.")
	fs.IntVar(&p.MaxSteps, "max-steps", p.MaxSteps, "Maximum steps per field line.")
	fs.Float64Var(&p.Epsilon, "epsilon", p.Epsilon, "Field magnitude that ends a line.")
	fs.Float64Var(&p.Threshold, "threshold", p.Threshold, "Distance to a charge that ends a line.")
	fs.Float64Var(&p.ArrowScale, "arrow-scale", p.ArrowScale, "Length of the field arrow at the test charge.")
	fs.Float64Var(&p.ArrowHead, "arrow-head", p.ArrowHead, "Length of the arrow head barbs.")
}

var errNonFinite = errors.New("not finite")

// Validate reports the first parameter that would make tracing misbehave.
func (p Params) Validate() error {
	floats := []struct {
		name string
		v    float64
	}{
		{"width", p.Width},
		{"height", p.Height},
		{"bar-length", p.BarLength},
		{"bar-q", p.BarCharge},
		{"test-q", p.TestCharge},
		{"test-offset", p.TestOffset},
		{"pick-radius", p.PickRadius},
		{"seed-radius", p.SeedRadius},
		{"step", p.StepSize},
		{"epsilon", p.Epsilon},
		{"threshold", p.Threshold},
		{"arrow-scale", p.ArrowScale},
		{"arrow-head", p.ArrowHead},
	}
	for _, f := range floats {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("config: %s: %w", f.name, errNonFinite)
		}
	}

	switch {
	case p.Width <= 0 || p.Height <= 0:
		return fmt.Errorf("config: canvas must be positive, got %vx%v", p.Width, p.Height)
	case p.BarCharges < 0:
		return fmt.Errorf("config: bar-charges must not be negative, got %d", p.BarCharges)
	case p.BarLength < 0:
		return fmt.Errorf("config: bar-length must not be negative, got %v", p.BarLength)
	case p.SeedsPerCharge <= 0:
		return fmt.Errorf("config: seeds must be positive, got %d", p.SeedsPerCharge)
	case p.StepSize <= 0:
		return fmt.Errorf("config: step must be positive, got %v", p.StepSize)
	case p.MaxSteps <= 0:
		return fmt.Errorf("config: max-steps must be positive, got %d", p.MaxSteps)
	case p.Epsilon <= 0:
		return fmt.Errorf("config: epsilon must be positive, got %v", p.Epsilon)
	case p.PickRadius < 0 || p.SeedRadius < 0 || p.Threshold < 0:
		return errors.New("config: radii and threshold must not be negative")
	}
	return nil
}
