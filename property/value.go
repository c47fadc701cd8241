package property

import (
	"fmt"
	"strings"
)

// Kind tags the variant held by a Value.
type Kind uint8

const (
	KindNone Kind = iota
	KindBool
	KindText
	KindColor
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindBool:
		return "bool"
	case KindText:
		return "text"
	case KindColor:
		return "color"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return KindNone, nil
	case "bool":
		return KindBool, nil
	case "text", "string":
		return KindText, nil
	case "color", "colour":
		return KindColor, nil
	}
	return KindNone, fmt.Errorf("property: unknown kind %q", s)
}

// Value is one of: absent, a boolean, a text or an RGB color. The zero Value
// is absent. Values are comparable with ==.
type Value struct {
	kind  Kind
	b     bool
	s     string
	color [3]float32
}

func None() Value {
	return Value{}
}

func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

func Text(s string) Value {
	return Value{kind: KindText, s: s}
}

func Color(r, g, b float32) Value {
	return Value{kind: KindColor, color: [3]float32{r, g, b}}
}

func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) IsNone() bool {
	return v.kind == KindNone
}

func (v Value) AsBool() (bool, bool) {
	return v.b, v.kind == KindBool
}

func (v Value) AsText() (string, bool) {
	return v.s, v.kind == KindText
}

func (v Value) AsColor() ([3]float32, bool) {
	return v.color, v.kind == KindColor
}

// BoolOr returns the boolean held by v, or def for any other kind.
func (v Value) BoolOr(def bool) bool {
	if b, ok := v.AsBool(); ok {
		return b
	}
	return def
}

func (v Value) String() string {
	switch v.kind {
	case KindBool:
		return fmt.Sprintf("%v", v.b)
	case KindText:
		return fmt.Sprintf("%q", v.s)
	case KindColor:
		return fmt.Sprintf("rgb(%.2f, %.2f, %.2f)", v.color[0], v.color[1], v.color[2])
	default:
		return "none"
	}
}
