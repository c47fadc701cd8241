package common

import (
	"math"
	"testing"
)

func TestHSL(t *testing.T) {
	tests := []struct {
		name    string
		h, s, l float64
		want    [3]float32
	}{
		{"red", 0, 1, 0.5, [3]float32{1, 0, 0}},
		{"green", 120, 1, 0.5, [3]float32{0, 1, 0}},
		{"blue", 240, 1, 0.5, [3]float32{0, 0, 1}},
		{"light_red", 0, 1, 0.75, [3]float32{1, 0.5, 0.5}},
		{"wraps", 360 + 60, 1, 0.5, [3]float32{1, 1, 0}},
		{"grey", 90, 0, 0.25, [3]float32{0.25, 0.25, 0.25}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := HSL(tc.h, tc.s, tc.l)
			for i := range got {
				if math.Abs(float64(got[i]-tc.want[i])) > 1e-6 {
					t.Fatalf("HSL(%v,%v,%v) = %v want %v", tc.h, tc.s, tc.l, got, tc.want)
				}
			}
		})
	}
}

func TestPaletteIndexRoundTrip(t *testing.T) {
	for i, c := range Palette {
		if got := PaletteIndex(c); got != i {
			t.Fatalf("PaletteIndex(Palette[%d]) = %d", i, got)
		}
	}
}

func TestClamp(t *testing.T) {
	if Clamp(-1, 0.2, 1.4) != 0.2 || Clamp(2, 0.2, 1.4) != 1.4 || Clamp(1, 0.2, 1.4) != 1 {
		t.Fatal("clamp out of range")
	}
	if Lerp(1, 3, 0.5) != 2 {
		t.Fatal("lerp midpoint")
	}
}
