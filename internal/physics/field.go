package physics

import "math"

// FieldAt returns the superposed Coulomb field at p with k = 1:
// sum of q * (p - c) / |p - c|^3 over all charges.
//
// A charge sitting exactly on p is skipped, so the field at a charge's own
// position is the field of all the others.
func FieldAt(p Vec2, charges []Charge) Vec2 {
	var Ex, Ey float64
	for _, c := range charges {
		dx := p.X - c.Pos.X
		dy := p.Y - c.Pos.Y

		r2 := dx*dx + dy*dy
		if r2 == 0 {
			continue
		}
		r := math.Sqrt(r2)

		factor := c.Q / (r2 * r) // q/r^3

		Ex += factor * dx
		Ey += factor * dy
	}
	return Vec2{X: Ex, Y: Ey}
}
