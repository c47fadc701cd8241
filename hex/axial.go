package hex

// Axial represents axial coordinates (q, r); the third cube coordinate is
// derived as -q-r.
type Axial struct {
	Q int
	R int
}

// Cube converts axial to cube.
func (a Axial) Cube() Cube {
	return Cube{X: a.Q, Y: -a.Q - a.R, Z: a.R}
}

// Axial converts cube to axial.
func (c Cube) Axial() Axial {
	return Axial{Q: c.X, R: c.Z}
}

func AxialFromCube(c Cube) Axial {
	return c.Axial()
}

func CubeFromAxial(a Axial) Cube {
	return a.Cube()
}
