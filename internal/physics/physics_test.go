package physics

import (
	"math"
	"testing"
)

const tol = 1e-12

func near(a, b Vec2, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps
}

func TestFieldAtSingleCharge(t *testing.T) {
	charges := []Charge{{Pos: Vec2{}, Q: 1}}

	tests := []struct {
		p    Vec2
		want Vec2
	}{
		{Vec2{X: 1}, Vec2{X: 1}},
		{Vec2{Y: 1}, Vec2{Y: 1}},
		{Vec2{X: -2}, Vec2{X: -0.25}},
		{Vec2{X: 3, Y: 4}, Vec2{X: 3.0 / 125, Y: 4.0 / 125}},
	}
	for _, tt := range tests {
		if got := FieldAt(tt.p, charges); !near(got, tt.want, tol) {
			t.Errorf("FieldAt(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestFieldAtSuperposition(t *testing.T) {
	charges := []Charge{
		{Pos: Vec2{X: -1}, Q: 1},
		{Pos: Vec2{X: 1}, Q: -2},
	}
	p := Vec2{Y: 1}

	var want Vec2
	for _, c := range charges {
		d := p.Sub(c.Pos)
		r := d.Len()
		want = want.Add(d.Scale(c.Q / (r * r * r)))
	}

	if got := FieldAt(p, charges); !near(got, want, tol) {
		t.Fatalf("FieldAt = %v, want %v", got, want)
	}
}

func TestFieldAtSkipsCoincidentCharge(t *testing.T) {
	charges := []Charge{
		{Pos: Vec2{}, Q: 5},
		{Pos: Vec2{X: 2}, Q: 4},
	}

	got := FieldAt(Vec2{}, charges)
	if !got.IsFinite() {
		t.Fatalf("field at charge position is not finite: %v", got)
	}
	want := Vec2{X: -1} // 4 / 2^2 pointing away from (2,0)
	if !near(got, want, tol) {
		t.Fatalf("FieldAt = %v, want %v", got, want)
	}

	if got := FieldAt(Vec2{}, charges[:1]); got != (Vec2{}) {
		t.Fatalf("lone charge at its own position: got %v, want zero", got)
	}
}

func TestFieldAtZeroCharge(t *testing.T) {
	got := FieldAt(Vec2{X: 1}, []Charge{{Pos: Vec2{}, Q: 0}})
	if got != (Vec2{}) {
		t.Fatalf("zero charge contributed %v", got)
	}
}

func TestNewBar(t *testing.T) {
	bar := NewBar(Vec2{X: 450, Y: 300}, 9, 180, 1)
	if len(bar) != 9 {
		t.Fatalf("len = %d, want 9", len(bar))
	}
	if bar[0].Pos != (Vec2{X: 360, Y: 300}) || bar[8].Pos != (Vec2{X: 540, Y: 300}) {
		t.Fatalf("bar ends at %v and %v", bar[0].Pos, bar[8].Pos)
	}
	for i := 1; i < len(bar); i++ {
		if d := bar[i].Pos.X - bar[i-1].Pos.X; math.Abs(d-22.5) > tol {
			t.Fatalf("spacing %d = %v, want 22.5", i, d)
		}
	}

	if one := NewBar(Vec2{X: 1, Y: 2}, 1, 180, 3); len(one) != 1 || one[0].Pos != (Vec2{X: 1, Y: 2}) {
		t.Fatalf("single charge bar = %v", one)
	}
	if none := NewBar(Vec2{}, 0, 180, 1); len(none) != 0 {
		t.Fatalf("empty bar = %v", none)
	}
}

func TestTestChargeHit(t *testing.T) {
	tc := TestCharge{Charge: Charge{Pos: Vec2{X: 10, Y: 10}, Q: 1}, PickRadius: 12}
	if !tc.Hit(Vec2{X: 15, Y: 10}) {
		t.Error("expected hit inside radius")
	}
	if tc.Hit(Vec2{X: 22, Y: 10}) {
		t.Error("point on the radius must not hit")
	}
	if tc.Hit(Vec2{X: 40, Y: 40}) {
		t.Error("expected miss outside radius")
	}
}

func TestRingSeeds(t *testing.T) {
	centers := []Vec2{{X: 0, Y: 0}, {X: 100, Y: 50}}
	seeds := RingSeeds(nil, centers, 4, 20)

	if len(seeds) != 8 {
		t.Fatalf("len = %d, want 8", len(seeds))
	}
	want := []Vec2{
		{X: 20, Y: 0}, {X: 0, Y: 20}, {X: -20, Y: 0}, {X: 0, Y: -20},
		{X: 120, Y: 50}, {X: 100, Y: 70}, {X: 80, Y: 50}, {X: 100, Y: 30},
	}
	for i := range want {
		if !near(seeds[i], want[i], 1e-9) {
			t.Errorf("seed %d = %v, want %v", i, seeds[i], want[i])
		}
	}

	for i, s := range seeds {
		c := centers[i/4]
		if d := s.Dist(c); math.Abs(d-20) > 1e-9 {
			t.Errorf("seed %d at distance %v from center", i, d)
		}
	}

	if got := RingSeeds(nil, centers, 0, 20); len(got) != 0 {
		t.Fatalf("n=0 produced %d seeds", len(got))
	}
}

func newTracer(charges []Charge) *Tracer {
	return &Tracer{
		Charges:   charges,
		Bounds:    Rect{Max: Vec2{X: 900, Y: 600}},
		Step:      2,
		MaxSteps:  800,
		Epsilon:   1e-4,
		Threshold: 8,
	}
}

func checkLine(t *testing.T, tr *Tracer, seed Vec2, line []Vec2) {
	t.Helper()
	if len(line) == 0 {
		t.Fatal("empty line")
	}
	if line[0] != seed {
		t.Fatalf("line starts at %v, want seed %v", line[0], seed)
	}
	if len(line) > tr.MaxSteps+1 {
		t.Fatalf("len = %d exceeds MaxSteps+1", len(line))
	}
	for i, p := range line {
		if !p.IsFinite() {
			t.Fatalf("point %d not finite: %v", i, p)
		}
		if i == 0 {
			continue
		}
		if d := p.Dist(line[i-1]); math.Abs(d-tr.Step) > 1e-9 {
			t.Fatalf("step %d length %v, want %v", i, d, tr.Step)
		}
	}
}

func TestTraceLeavesCanvas(t *testing.T) {
	tr := newTracer([]Charge{{Pos: Vec2{X: 450, Y: 300}, Q: 1}})
	seed := Vec2{X: 470, Y: 300}

	line := tr.Trace(seed)
	checkLine(t, tr, seed, line)

	last := line[len(line)-1]
	if tr.Bounds.Contains(last) {
		t.Fatalf("last point %v still on canvas", last)
	}
	if last.Y != 300 {
		t.Fatalf("radial line drifted: %v", last)
	}
}

func TestTraceStopsNearCharge(t *testing.T) {
	tr := newTracer([]Charge{
		{Pos: Vec2{X: 400, Y: 300}, Q: 1},
		{Pos: Vec2{X: 500, Y: 300}, Q: -1},
	})
	seed := Vec2{X: 420, Y: 300}

	line := tr.Trace(seed)
	checkLine(t, tr, seed, line)

	last := line[len(line)-1]
	if d := last.Dist(Vec2{X: 500, Y: 300}); d >= tr.Threshold {
		t.Fatalf("line ended %v away from the sink", d)
	}
}

func TestTraceStopsAtNullPoint(t *testing.T) {
	// Equal like charges cancel at the midpoint.
	tr := newTracer([]Charge{
		{Pos: Vec2{X: 400, Y: 300}, Q: 1},
		{Pos: Vec2{X: 500, Y: 300}, Q: 1},
	})
	seed := Vec2{X: 450, Y: 300}

	line := tr.Trace(seed)
	if len(line) != 1 || line[0] != seed {
		t.Fatalf("trace from null point = %v, want just the seed", line)
	}
}

func TestTraceBetweenOppositeCharges(t *testing.T) {
	tr := newTracer([]Charge{
		{Pos: Vec2{X: 400, Y: 300}, Q: 1},
		{Pos: Vec2{X: 500, Y: 300}, Q: -1},
	})
	seed := Vec2{X: 450, Y: 300}

	line := tr.Trace(seed)
	checkLine(t, tr, seed, line)
	if len(line) > 30 {
		t.Fatalf("midpoint line took %d points to reach the sink", len(line))
	}
}

func TestTraceHitsStepCap(t *testing.T) {
	tr := newTracer([]Charge{{Pos: Vec2{X: 450, Y: 300}, Q: 1}})
	tr.MaxSteps = 5
	seed := Vec2{X: 470, Y: 300}

	line := tr.Trace(seed)
	checkLine(t, tr, seed, line)
	if len(line) != 6 {
		t.Fatalf("len = %d, want MaxSteps+1", len(line))
	}
	if got := line[5]; !near(got, Vec2{X: 480, Y: 300}, 1e-9) {
		t.Fatalf("last point %v", got)
	}
}

func TestTraceAllKeepsSeedOrder(t *testing.T) {
	tr := newTracer([]Charge{{Pos: Vec2{X: 450, Y: 300}, Q: 1}})
	seeds := RingSeeds(nil, []Vec2{{X: 450, Y: 300}}, 6, 20)

	lines := tr.TraceAll(seeds)
	if len(lines) != len(seeds) {
		t.Fatalf("got %d lines for %d seeds", len(lines), len(seeds))
	}
	for i, l := range lines {
		checkLine(t, tr, seeds[i], l)
	}
}

func TestTraceZeroEpsilonAtNullPoint(t *testing.T) {
	tr := newTracer([]Charge{
		{Pos: Vec2{X: 400, Y: 300}, Q: 1},
		{Pos: Vec2{X: 500, Y: 300}, Q: 1},
	})
	tr.Epsilon = 0
	seed := Vec2{X: 450, Y: 300}

	line := tr.Trace(seed)
	if len(line) != 1 || line[0] != seed {
		t.Fatalf("trace with zero epsilon = %v, want just the seed", line)
	}
}
