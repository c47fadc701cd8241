package hex

import "math"

const (
	// RowHeight is the vertical distance between row centres in screen
	// space, in column widths.
	RowHeight = 0.75
	// OddRowShift is the horizontal shift of odd rows in screen space.
	OddRowShift = 0.5
)

// ToOffset converts c to odd-r offset coordinates.
func (c Cube) ToOffset() (col, row float64) {
	return float64(c.X + (c.Z-(c.Z&1))/2), float64(c.Z)
}

// FromOffset converts odd-r offset coordinates to cube. Fractional inputs
// are truncated towards zero.
func FromOffset(col, row float64) Cube {
	return fromOffsetInt(int(col), int(row))
}

func fromOffsetInt(col, row int) Cube {
	x := col - (row-(row&1))/2
	z := row
	return Cube{X: x, Y: -x - z, Z: z}
}

// ToScreen projects c onto the render plane: odd-r offset with rows packed to
// RowHeight and odd rows shifted right by OddRowShift. The result is the
// cell centre; it is not meant to round-trip at sub-cell precision.
func (c Cube) ToScreen() (x, y float64) {
	col, row := c.ToOffset()
	shift := float64(c.Z&1) * OddRowShift
	return col + shift, row * RowHeight
}

// FromScreen floors a screen point to a cell. The footprint of a cell is
// the ToScreen point extended one column right and RowHeight down, so
// FromScreen(c.ToScreen()) == c and every point in that box maps to c.
func FromScreen(x, y float64) Cube {
	majorY := math.Floor(y / RowHeight)
	shift := float64(int(majorY)&1) * OddRowShift
	majorX := math.Floor(x - shift)
	return fromOffsetInt(int(majorX), int(majorY))
}

// PickCell returns the cell drawn under a screen point when tiles are
// drawn centred on ToScreen.
func PickCell(x, y float64) Cube {
	return FromScreen(x+OddRowShift, y+RowHeight/2)
}
