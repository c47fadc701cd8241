package common

import "math"

// PaletteLightness is the HSL lightness shared by every palette entry.
const PaletteLightness = 0.75

// Palette holds twelve fully saturated hues 30 degrees apart, as RGB.
var Palette = func() [12][3]float32 {
	var out [12][3]float32
	for i := range out {
		out[i] = HSL(float64(i)*30, 1, PaletteLightness)
	}
	return out
}()

// HSL converts hue (degrees), saturation and lightness to RGB in [0, 1].
func HSL(h, s, l float64) [3]float32 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := (1 - math.Abs(2*l-1)) * s
	hp := h / 60
	x := c * (1 - math.Abs(math.Mod(hp, 2)-1))
	var r, g, b float64
	switch {
	case hp < 1:
		r, g, b = c, x, 0
	case hp < 2:
		r, g, b = x, c, 0
	case hp < 3:
		r, g, b = 0, c, x
	case hp < 4:
		r, g, b = 0, x, c
	case hp < 5:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	m := l - c/2
	return [3]float32{float32(r + m), float32(g + m), float32(b + m)}
}

// PaletteIndex returns the index of the palette entry closest to rgb.
func PaletteIndex(rgb [3]float32) int {
	best, bestDist := 0, math.Inf(1)
	for i, p := range Palette {
		var d float64
		for c := 0; c < 3; c++ {
			diff := float64(p[c] - rgb[c])
			d += diff * diff
		}
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}
