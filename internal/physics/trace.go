package physics

// Tracer integrates field lines with fixed-step forward Euler.
type Tracer struct {
	Charges []Charge
	Bounds  Rect

	Step     float64 // distance advanced per step
	MaxSteps int     // hard cap on iterations
	Epsilon  float64 // field magnitude below which tracing stops
	// Threshold is the distance to any charge that ends a line.
	Threshold float64
}

// Trace follows the field forward from seed. The result always starts
// with seed, holds at most MaxSteps+1 points, and every point after the
// first lies exactly Step away from its predecessor.
func (t *Tracer) Trace(seed Vec2) []Vec2 {
	points := make([]Vec2, 0, 64)
	cur := seed

	for i := 0; i < t.MaxSteps; i++ {
		points = append(points, cur)

		E := FieldAt(cur, t.Charges)
		mag := E.Len()
		if mag == 0 || mag < t.Epsilon {
			return points
		}

		cur = cur.Add(E.Scale(t.Step / mag))

		if !t.Bounds.Contains(cur) || t.nearCharge(cur) {
			return append(points, cur)
		}
	}

	return append(points, cur)
}

// TraceAll traces one line per seed, in seed order.
func (t *Tracer) TraceAll(seeds []Vec2) [][]Vec2 {
	lines := make([][]Vec2, len(seeds))
	for i, s := range seeds {
		lines[i] = t.Trace(s)
	}
	return lines
}

func (t *Tracer) nearCharge(p Vec2) bool {
	for _, c := range t.Charges {
		if p.Dist(c.Pos) < t.Threshold {
			return true
		}
	}
	return false
}
