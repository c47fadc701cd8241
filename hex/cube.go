// Package hex implements cube, axial and odd-r offset coordinates for a
// pointy-top hex grid, after https://www.redblobgames.com/grids/hexagons/.
//
// All functions are pure and safe for concurrent use.
package hex

import "fmt"

// Cube represents cube coordinates (x, y, z) with x+y+z=0.
type Cube struct {
	X int
	Y int
	Z int
}

// Directions holds the six unit steps to neighbouring cells.
var Directions = [6]Cube{
	{X: 1, Y: -1, Z: 0},
	{X: 1, Y: 0, Z: -1},
	{X: 0, Y: 1, Z: -1},
	{X: -1, Y: 1, Z: 0},
	{X: -1, Y: 0, Z: 1},
	{X: 0, Y: -1, Z: 1},
}

func NewCube(x, y, z int) Cube {
	return Cube{X: x, Y: y, Z: z}
}

func Zero() Cube {
	return Cube{}
}

// Valid reports whether c lies on the hex lattice.
func (c Cube) Valid() bool {
	return c.X+c.Y+c.Z == 0
}

// Add returns c+o.
func (c Cube) Add(o Cube) Cube {
	return Cube{X: c.X + o.X, Y: c.Y + o.Y, Z: c.Z + o.Z}
}

// Sub returns c-o.
func (c Cube) Sub(o Cube) Cube {
	return Cube{X: c.X - o.X, Y: c.Y - o.Y, Z: c.Z - o.Z}
}

// Scale multiplies every component by k.
func (c Cube) Scale(k int) Cube {
	return Cube{X: c.X * k, Y: c.Y * k, Z: c.Z * k}
}

// Neighbor returns the adjacent cell in direction dir (taken modulo 6).
func (c Cube) Neighbor(dir int) Cube {
	dir %= len(Directions)
	if dir < 0 {
		dir += len(Directions)
	}
	return c.Add(Directions[dir])
}

// Neighbors returns the six adjacent cells in Directions order.
func (c Cube) Neighbors() [6]Cube {
	var out [6]Cube
	for i, d := range Directions {
		out[i] = c.Add(d)
	}
	return out
}

func (c Cube) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.X, c.Y, c.Z)
}

// Distance returns the number of steps between a and b.
func Distance(a, b Cube) int {
	d := a.Sub(b)
	return (abs(d.X) + abs(d.Y) + abs(d.Z)) / 2
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
