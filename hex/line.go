package hex

import (
	"iter"
	"math"
)

// Round snaps fractional cube coordinates to the nearest cell. Each axis is
// rounded independently, then the axis with the largest rounding error is
// recomputed from the other two. Ties go to x first, then y, then z: x is
// only fixed when its error is strictly larger than both others, y only when
// strictly larger than z, otherwise z.
func Round(x, y, z float64) Cube {
	rx := math.Round(x)
	ry := math.Round(y)
	rz := math.Round(z)

	dx := math.Abs(rx - x)
	dy := math.Abs(ry - y)
	dz := math.Abs(rz - z)

	switch {
	case dx > dy && dx > dz:
		rx = -ry - rz
	case dy > dz:
		ry = -rx - rz
	default:
		rz = -rx - ry
	}
	return Cube{X: int(rx), Y: int(ry), Z: int(rz)}
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Line yields the Distance(a, b) cells on the straight line from a towards
// b, starting with a and stopping before b. Each iteration starts over.
func Line(a, b Cube) iter.Seq[Cube] {
	return func(yield func(Cube) bool) {
		n := Distance(a, b)
		for i := 0; i < n; i++ {
			t := float64(i) / float64(n)
			c := Round(
				lerp(float64(a.X), float64(b.X), t),
				lerp(float64(a.Y), float64(b.Y), t),
				lerp(float64(a.Z), float64(b.Z), t),
			)
			if !yield(c) {
				return
			}
		}
	}
}

// LineCells collects Line into a slice.
func LineCells(a, b Cube) []Cube {
	out := make([]Cube, 0, Distance(a, b))
	for c := range Line(a, b) {
		out = append(out, c)
	}
	return out
}
