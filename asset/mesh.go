package asset

import (
	"fmt"

	"github.com/jakecoffman/cp"
)

// Mesh is a flat convex outline in tile units, centred on the origin.
type Mesh struct {
	Outline []cp.Vector
}

// Scaled returns a copy of the outline scaled by s.
func (m *Mesh) Scaled(s float64) []cp.Vector {
	if m == nil {
		return nil
	}
	out := make([]cp.Vector, len(m.Outline))
	for i, v := range m.Outline {
		out[i] = v.Mult(s)
	}
	return out
}

// HexTileMesh builds the outline of a pointy-top hex plate w wide and h tall.
// With w = h = 1 neighbouring plates tile exactly under hex.Cube.ToScreen,
// whose rows are 0.75 apart.
func HexTileMesh(w, h float64) (*Mesh, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("asset: invalid hex tile size %gx%g", w, h)
	}
	h2, h4, w2 := h/2, h/4, w/2
	return &Mesh{Outline: []cp.Vector{
		{X: 0, Y: -h2},
		{X: w2, Y: -h4},
		{X: w2, Y: h4},
		{X: 0, Y: h2},
		{X: -w2, Y: h4},
		{X: -w2, Y: -h4},
	}}, nil
}

// BoxMesh builds an axis-aligned square outline with the given edge length.
func BoxMesh(size float64) (*Mesh, error) {
	if size <= 0 {
		return nil, fmt.Errorf("asset: invalid box size %g", size)
	}
	s := size / 2
	return &Mesh{Outline: []cp.Vector{
		{X: -s, Y: -s},
		{X: s, Y: -s},
		{X: s, Y: s},
		{X: -s, Y: s},
	}}, nil
}
