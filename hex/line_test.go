package hex

import "testing"

func TestRoundTieBreak(t *testing.T) {
	tests := []struct {
		name    string
		x, y, z float64
		want    Cube
	}{
		// x error 0.4 is strictly largest: x is rebuilt from y and z
		{"x largest", 1.4, -0.7, -0.7, NewCube(2, -1, -1)},
		// x and y errors tie at 0.375: x is not strictly largest, so y is fixed
		{"x ties y", 0.375, -0.625, 0.25, NewCube(0, 0, 0)},
		// y and z errors tie at 0.375: z is fixed
		{"y ties z", 0.25, 1.375, -1.625, NewCube(0, 1, -1)},
		{"exact", 2, -3, 1, NewCube(2, -3, 1)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Round(tc.x, tc.y, tc.z)
			if got != tc.want {
				t.Fatalf("Round(%g,%g,%g) = %v want %v", tc.x, tc.y, tc.z, got, tc.want)
			}
			if !got.Valid() {
				t.Fatalf("Round result %v is off the lattice", got)
			}
		})
	}
}

func TestLineSameCellIsEmpty(t *testing.T) {
	a := NewCube(4, -1, -3)
	for c := range Line(a, a) {
		t.Fatalf("unexpected cell %v", c)
	}
	if got := LineCells(a, a); len(got) != 0 {
		t.Fatalf("expected no cells, got %v", got)
	}
}

func TestLineCells(t *testing.T) {
	tests := []struct {
		name string
		a, b Cube
		want []Cube
	}{
		{
			name: "straight",
			a:    Zero(),
			b:    NewCube(3, -3, 0),
			want: []Cube{NewCube(0, 0, 0), NewCube(1, -1, 0), NewCube(2, -2, 0)},
		},
		{
			name: "bent",
			a:    Zero(),
			b:    NewCube(2, 1, -3),
			want: []Cube{NewCube(0, 0, 0), NewCube(1, 0, -1), NewCube(1, 1, -2)},
		},
		{
			name: "long",
			a:    NewCube(1, -3, 2),
			b:    NewCube(-2, 4, -2),
			want: []Cube{
				NewCube(1, -3, 2), NewCube(1, -2, 1), NewCube(0, -1, 1), NewCube(0, 0, 0),
				NewCube(-1, 1, 0), NewCube(-1, 2, -1), NewCube(-2, 3, -1),
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := LineCells(tc.a, tc.b)
			if len(got) != Distance(tc.a, tc.b) {
				t.Fatalf("got %d cells, distance is %d", len(got), Distance(tc.a, tc.b))
			}
			if len(got) != len(tc.want) {
				t.Fatalf("got %v want %v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("cell %d: got %v want %v", i, got[i], tc.want[i])
				}
				if i > 0 && Distance(got[i-1], got[i]) != 1 {
					t.Fatalf("cells %v and %v are not adjacent", got[i-1], got[i])
				}
			}
			if Distance(got[len(got)-1], tc.b) != 1 {
				t.Fatalf("last cell %v is not next to %v", got[len(got)-1], tc.b)
			}
		})
	}
}

func TestLineIsRestartable(t *testing.T) {
	a, b := NewCube(-5, 2, 3), NewCube(4, -1, -3)
	seq := Line(a, b)

	var first, second []Cube
	for c := range seq {
		first = append(first, c)
	}
	for c := range seq {
		second = append(second, c)
	}
	if len(first) != Distance(a, b) || len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("iteration %d differs: %v vs %v", i, first[i], second[i])
		}
	}
	if first[0] != a {
		t.Fatalf("line starts at %v want %v", first[0], a)
	}

	n := 0
	for range seq {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Fatalf("early break visited %d cells", n)
	}
}
