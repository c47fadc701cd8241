package hex

import "testing"

func TestCubeArithmeticKeepsZeroSum(t *testing.T) {
	cells := []Cube{
		Zero(),
		NewCube(1, -1, 0),
		NewCube(3, -5, 2),
		NewCube(-7, 4, 3),
		NewCube(100, -250, 150),
	}
	for _, a := range cells {
		for _, b := range cells {
			if got := a.Add(b); !got.Valid() {
				t.Fatalf("%v + %v = %v is off the lattice", a, b, got)
			}
			if got := a.Sub(b); !got.Valid() {
				t.Fatalf("%v - %v = %v is off the lattice", a, b, got)
			}
		}
		for _, k := range []int{-3, 0, 1, 7} {
			if got := a.Scale(k); !got.Valid() {
				t.Fatalf("%v * %d = %v is off the lattice", a, k, got)
			}
		}
	}
}

func TestCubeArithmetic(t *testing.T) {
	a := NewCube(1, -3, 2)
	b := NewCube(-2, 1, 1)
	if got, want := a.Add(b), NewCube(-1, -2, 3); got != want {
		t.Fatalf("Add: got %v want %v", got, want)
	}
	if got, want := a.Sub(b), NewCube(3, -4, 1); got != want {
		t.Fatalf("Sub: got %v want %v", got, want)
	}
	if got, want := a.Scale(-2), NewCube(-2, 6, -4); got != want {
		t.Fatalf("Scale: got %v want %v", got, want)
	}
}

func TestAxialRoundTrip(t *testing.T) {
	for x := -6; x <= 6; x++ {
		for z := -6; z <= 6; z++ {
			c := NewCube(x, -x-z, z)
			a := AxialFromCube(c)
			if a != (Axial{Q: x, R: z}) {
				t.Fatalf("AxialFromCube(%v) = %+v", c, a)
			}
			if back := CubeFromAxial(a); back != c {
				t.Fatalf("CubeFromAxial(%+v) = %v want %v", a, back, c)
			}
			if again := AxialFromCube(CubeFromAxial(a)); again != a {
				t.Fatalf("axial round trip %+v -> %+v", a, again)
			}
		}
	}
}

func TestDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b Cube
		want int
	}{
		{"same", NewCube(2, -1, -1), NewCube(2, -1, -1), 0},
		{"straight", Zero(), NewCube(3, -3, 0), 3},
		{"bent", Zero(), NewCube(1, 1, -2), 2},
		{"far", NewCube(1, -3, 2), NewCube(-2, 4, -2), 7},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Distance(tc.a, tc.b); got != tc.want {
				t.Fatalf("Distance(%v, %v) = %d want %d", tc.a, tc.b, got, tc.want)
			}
			if got := Distance(tc.b, tc.a); got != tc.want {
				t.Fatalf("Distance is not symmetric: %d", got)
			}
		})
	}
}

func TestNeighbors(t *testing.T) {
	c := NewCube(2, -5, 3)
	for i, n := range c.Neighbors() {
		if !n.Valid() {
			t.Fatalf("neighbor %d %v is off the lattice", i, n)
		}
		if d := Distance(c, n); d != 1 {
			t.Fatalf("neighbor %d at distance %d", i, d)
		}
		if c.Neighbor(i) != n || c.Neighbor(i+6) != n || c.Neighbor(i-6) != n {
			t.Fatalf("Neighbor(%d) disagrees with Neighbors()", i)
		}
	}
}
