// Package sim owns the state of one charged bar scene and turns pointer
// input into frames of drawable geometry.
package sim

import (
	"fmt"

	"github.com/Arroyave03/CampoElectrico/internal/config"
	"github.com/Arroyave03/CampoElectrico/internal/physics"
)

// Session is one simulation: a fixed bar, one test charge and the seeds
// field lines are traced from. It is not safe for concurrent use.
type Session struct {
	p config.Params

	// all holds the bar followed by the test charge, so the evaluator and
	// tracer see every charge without rebuilding a slice per call.
	all  []physics.Charge
	bar  []physics.Charge // copy of the bar handed out in frames
	test physics.TestCharge

	seeds      []physics.Vec2
	generation uint64
}

// New builds the scene described by p and generates the initial seeds.
func New(p config.Params) (*Session, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}

	center := physics.Vec2{X: p.Width / 2, Y: p.Height / 2}
	bar := physics.NewBar(center, p.BarCharges, p.BarLength, p.BarCharge)

	s := &Session{
		p: p,
		test: physics.TestCharge{
			Charge: physics.Charge{
				Pos: physics.Vec2{X: center.X, Y: center.Y - p.TestOffset},
				Q:   p.TestCharge,
			},
			PickRadius: p.PickRadius,
		},
	}
	s.bar = append([]physics.Charge(nil), bar...)
	s.all = append(bar, s.test.Charge)
	s.GenerateSeeds()
	return s, nil
}

// Params returns the parameters the session was built with.
func (s *Session) Params() config.Params { return s.p }

// Charges returns a copy of the bar charges in bar order.
func (s *Session) Charges() []physics.Charge {
	bar := s.all[:len(s.all)-1]
	out := make([]physics.Charge, len(bar))
	copy(out, bar)
	return out
}

// TestCharge returns a snapshot of the test charge.
func (s *Session) TestCharge() physics.TestCharge { return s.test }

// MoveTestCharge places the test charge at p.
func (s *Session) MoveTestCharge(p physics.Vec2) {
	s.test.Pos = p
	s.all[len(s.all)-1].Pos = p
}

// SetDragging sets or clears the test charge's drag flag.
func (s *Session) SetDragging(v bool) { s.test.Dragging = v }

// Field returns the net field at p, including the test charge's own
// contribution.
func (s *Session) Field(p physics.Vec2) physics.Vec2 {
	return physics.FieldAt(p, s.all)
}

// Bounds is the canvas rectangle lines are clipped to.
func (s *Session) Bounds() physics.Rect {
	return physics.Rect{Max: physics.Vec2{X: s.p.Width, Y: s.p.Height}}
}

func (s *Session) tracer() *physics.Tracer {
	return &physics.Tracer{
		Charges:   s.all,
		Bounds:    s.Bounds(),
		Step:      s.p.StepSize,
		MaxSteps:  s.p.MaxSteps,
		Epsilon:   s.p.Epsilon,
		Threshold: s.p.Threshold,
	}
}

// TraceAll traces one field line per seed against the current charges.
func (s *Session) TraceAll(seeds []physics.Vec2) [][]physics.Vec2 {
	return s.tracer().TraceAll(seeds)
}

// Seeds returns the current seeds. The slice is replaced, never modified,
// by GenerateSeeds.
func (s *Session) Seeds() []physics.Vec2 { return s.seeds }

// Generation counts calls to GenerateSeeds.
func (s *Session) Generation() uint64 { return s.generation }

// GenerateSeeds replaces the seeds with rings around every bar charge, in
// bar order, followed by a ring around the test charge.
func (s *Session) GenerateSeeds() {
	centers := make([]physics.Vec2, len(s.all))
	for i, c := range s.all {
		centers[i] = c.Pos
	}

	n := s.p.SeedsPerCharge
	s.seeds = physics.RingSeeds(make([]physics.Vec2, 0, n*len(centers)), centers, n, s.p.SeedRadius)
	s.generation++
}
