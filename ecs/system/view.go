package system

import "github.com/jakecoffman/cp"

// DefaultStep is the fixed simulation step in seconds.
const DefaultStep = 1.0 / 60.0

// View maps field space (one unit per tile width) to screen pixels.
type View struct {
	OriginX float64
	OriginY float64
	Scale   float64
}

func (v View) ToScreen(x, y float64) (float64, float64) {
	s := v.scale()
	return v.OriginX + x*s, v.OriginY + y*s
}

func (v View) ToField(x, y float64) (float64, float64) {
	s := v.scale()
	return (x - v.OriginX) / s, (y - v.OriginY) / s
}

func (v View) vec(p cp.Vector) (float32, float32) {
	x, y := v.ToScreen(p.X, p.Y)
	return float32(x), float32(y)
}

func (v View) scale() float64 {
	if v.Scale <= 0 {
		return 1
	}
	return v.Scale
}
