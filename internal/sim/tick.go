package sim

import (
	"math"

	"github.com/Arroyave03/CampoElectrico/internal/physics"
)

// Input is the pointer state sampled for one tick. Down and Up are edges.
type Input struct {
	Pointer physics.Vec2
	Down    bool
	Up      bool
}

// Arrow is the field direction marker drawn at the test charge.
type Arrow struct {
	Visible     bool
	Tail, Tip   physics.Vec2
	Left, Right physics.Vec2 // barb ends, drawn from Tip
}

// Frame is everything a renderer needs to draw one tick. Bar is shared
// between frames and must not be modified.
type Frame struct {
	Bar        []physics.Charge
	Test       physics.TestCharge
	Lines      [][]physics.Vec2
	Arrow      Arrow
	Generation uint64
}

// Tick applies one tick of input and returns the scene to draw. A press is
// handled before the drag follow and a release after it.
func (s *Session) Tick(in Input) Frame {
	if in.Down {
		s.PointerDown(in.Pointer)
	}
	s.follow(in.Pointer)
	if in.Up {
		s.PointerUp()
	}

	return Frame{
		Bar:        s.bar,
		Test:       s.test,
		Lines:      s.TraceAll(s.seeds),
		Arrow:      s.arrow(),
		Generation: s.generation,
	}
}

func (s *Session) arrow() Arrow {
	tail := s.test.Pos
	E := s.Field(tail)
	mag := E.Len()
	if mag <= s.p.Epsilon {
		return Arrow{Tail: tail, Tip: tail}
	}

	dir := E.Scale(1 / mag)
	tip := tail.Add(dir.Scale(s.p.ArrowScale))

	// Barbs end ArrowHead behind the tip and half of that to either side.
	angle := math.Atan2(dir.Y, dir.X)
	h := s.p.ArrowHead
	spread := math.Atan2(0.5, 1)
	length := h * math.Hypot(1, 0.5)

	return Arrow{
		Visible: true,
		Tail:    tail,
		Tip:     tip,
		Left: tip.Sub(physics.Vec2{
			X: length * math.Cos(angle+spread),
			Y: length * math.Sin(angle+spread),
		}),
		Right: tip.Sub(physics.Vec2{
			X: length * math.Cos(angle-spread),
			Y: length * math.Sin(angle-spread),
		}),
	}
}
