package hud

import (
	"fmt"
	"strconv"

	"github.com/milk9111/hexfield/common"
	"github.com/milk9111/hexfield/ecs"
	"github.com/milk9111/hexfield/property"
)

var magnitudes = [...]string{"", "K", "M", "G", "T", "P", "E"}

// MagnitudeSuffix names a power of 1000.
func MagnitudeSuffix(mag int) string {
	if mag < 0 || mag >= len(magnitudes) {
		return "too large"
	}
	return magnitudes[mag]
}

// FormatMagnitude scales v down by 1000 until it is below 1000 and appends
// the matching suffix: 1234567 -> "1.235M".
func FormatMagnitude(v float64) string {
	mag := 0
	for v >= 1000 && mag < len(magnitudes) {
		v /= 1000
		mag++
	}
	return fmt.Sprintf("%.3f%s", v, MagnitudeSuffix(mag))
}

// DiagnosticText renders one diagnostic row.
func DiagnosticText(d Diagnostic, v float64, ok bool) string {
	switch {
	case !ok:
		return "failed: " + d.Label
	case d.Unit:
		return d.Label + " " + FormatMagnitude(v)
	default:
		return fmt.Sprintf("%s %.2f", d.Label, v)
	}
}

// ToggleLabel renders a toggle button as "name:value". On and Off replace
// true and false when set.
func ToggleLabel(name string, v property.Value, ok bool, on, off string) string {
	if !ok {
		return "failed: " + name
	}
	b := v.BoolOr(false)
	text := strconv.FormatBool(b)
	switch {
	case b && on != "":
		text = on
	case !b && off != "":
		text = off
	}
	return name + ":" + text
}

// Toggle is the update a click on a toggle showing v sends.
func Toggle(name string, v property.Value) property.UpdateEvent {
	return property.UpdateEvent{Name: name, Value: property.Bool(!v.BoolOr(false))}
}

// NextColor steps a Color value to the palette entry after its nearest one.
// Other kinds start at the first entry.
func NextColor(v property.Value) property.Value {
	next := common.Palette[0]
	if c, ok := v.AsColor(); ok {
		next = common.Palette[(common.PaletteIndex(c)+1)%len(common.Palette)]
	}
	return property.Color(next[0], next[1], next[2])
}

// ToggleProperty queues the negation of a Bool property. It reports false
// while the property is not available yet.
func ToggleProperty(reg *property.Registry, w *ecs.World, name string) bool {
	v, ok := reg.Value(w, name)
	if !ok {
		return false
	}
	reg.Send(Toggle(name, v))
	return true
}

// CycleColor queues the next palette colour for a property.
func CycleColor(reg *property.Registry, w *ecs.World, name string) bool {
	v, ok := reg.Value(w, name)
	if !ok {
		return false
	}
	reg.Set(name, NextColor(v))
	return true
}
