package physics

// Charge is a fixed point charge.
type Charge struct {
	Pos Vec2
	Q   float64
}

// TestCharge is the single movable probe charge.
type TestCharge struct {
	Charge
	PickRadius float64
	Dragging   bool
}

// Hit reports whether p falls strictly inside the pick radius.
func (t TestCharge) Hit(p Vec2) bool {
	return t.Pos.Dist(p) < t.PickRadius
}

// NewBar lays n charges of magnitude q evenly over a horizontal segment of
// the given length centered on center, left to right.
func NewBar(center Vec2, n int, length, q float64) []Charge {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []Charge{{Pos: center, Q: q}}
	}

	startX := center.X - length/2
	spacing := length / float64(n-1)

	bar := make([]Charge, n)
	for i := range bar {
		bar[i] = Charge{
			Pos: Vec2{X: startX + float64(i)*spacing, Y: center.Y},
			Q:   q,
		}
	}
	return bar
}
