package component

// Transform places an entity in field space, where one unit is one hex tile
// width.
type Transform struct {
	X        float64
	Y        float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
}

// NewTransform returns a transform at (x, y) with unit scale.
func NewTransform(x, y float64) Transform {
	return Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1}
}

var TransformComponent = NewComponent[Transform]()
