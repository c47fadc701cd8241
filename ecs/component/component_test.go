package component

import (
	"strings"
	"testing"
)

func TestKindNames(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"transform", TransformComponent.Kind().String(), "component.Transform#"},
		{"hex cell", HexCellComponent.Kind().String(), "component.HexCell#"},
		{"zero kind", ComponentKind[int]{}.String(), "invalid"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !strings.HasPrefix(tt.got, tt.want) {
				t.Fatalf("got %q want prefix %q", tt.got, tt.want)
			}
		})
	}
}

func TestKindsAreDistinct(t *testing.T) {
	a := NewComponent[int]()
	b := NewComponent[int]()
	if a.Kind().ID() == b.Kind().ID() {
		t.Fatal("two handles share an id")
	}
	if !a.Kind().Valid() || (ComponentKind[int]{}).Valid() {
		t.Fatal("validity check wrong")
	}
}
