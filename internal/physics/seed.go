package physics

import "math"

// RingSeeds appends n points per center to dst, evenly spaced on a circle
// of the given radius starting at angle 0, centers in order.
func RingSeeds(dst []Vec2, centers []Vec2, n int, radius float64) []Vec2 {
	if n <= 0 {
		return dst
	}
	for _, c := range centers {
		for i := 0; i < n; i++ {
			angle := 2 * math.Pi * float64(i) / float64(n)
			dst = append(dst, Vec2{
				X: c.X + radius*math.Cos(angle),
				Y: c.Y + radius*math.Sin(angle),
			})
		}
	}
	return dst
}
