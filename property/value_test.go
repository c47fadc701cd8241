package property

import "testing"

func TestValueVariants(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		kind Kind
		str  string
	}{
		{"none", None(), KindNone, "none"},
		{"bool", Bool(true), KindBool, "true"},
		{"text", Text("x"), KindText, `"x"`},
		{"color", Color(1, 0.5, 0), KindColor, "rgb(1.00, 0.50, 0.00)"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.v.Kind() != tc.kind {
				t.Fatalf("kind: got %v want %v", tc.v.Kind(), tc.kind)
			}
			if tc.v.String() != tc.str {
				t.Fatalf("string: got %q want %q", tc.v.String(), tc.str)
			}
			parsed, err := ParseKind(tc.kind.String())
			if err != nil || parsed != tc.kind {
				t.Fatalf("ParseKind(%q) = %v, %v", tc.kind.String(), parsed, err)
			}
		})
	}

	if _, ok := Text("x").AsBool(); ok {
		t.Fatal("text value reported as bool")
	}
	if !Text("x").BoolOr(true) || Bool(false).BoolOr(true) {
		t.Fatal("BoolOr returned the wrong value")
	}
	if Bool(true) == Bool(false) || Text("a") != Text("a") {
		t.Fatal("value equality broken")
	}
	if _, err := ParseKind("vector"); err == nil {
		t.Fatal("expected error for unknown kind")
	}
}
