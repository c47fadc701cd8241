package hud

import (
	"image/color"

	"github.com/ebitenui/ebitenui/widget"
	"golang.design/x/clipboard"

	"github.com/milk9111/hexfield/ecs"
	"github.com/milk9111/hexfield/ecs/component"
	"github.com/milk9111/hexfield/property"
)

// row keeps the widgets of one element in step with the world.
type row interface {
	refresh(w *ecs.World)
}

type textRow struct {
	diag Diagnostic
	text *widget.Text
}

func (r *textRow) refresh(w *ecs.World) {
	v, ok := r.diag.read(w)
	r.text.Label = DiagnosticText(r.diag, v, ok)
}

type labelRow struct {
	text *widget.Text
}

func (r *labelRow) refresh(*ecs.World) {}

type textEditRow struct {
	entity ecs.Entity
	input  *widget.TextInput
	last   string
	seen   bool
}

func (r *textEditRow) refresh(w *ecs.World) {
	v, ok := ecs.Get(w, r.entity, property.ValueComponent.Kind())
	if !ok {
		return
	}
	s, _ := v.AsText()
	if r.seen && s == r.last {
		return
	}
	r.last, r.seen = s, true
	r.input.SetText(s)
}

type valueButtonRow struct {
	entity ecs.Entity
	btn    *widget.Button
	label  func(name string, v property.Value) string
}

func (r *valueButtonRow) refresh(w *ecs.World) {
	name, v, ok := ownProperty(w, r.entity)
	if !ok {
		r.btn.Text().Label = "failed: " + r.entity.String()
		return
	}
	r.btn.Text().Label = r.label(name, v)
}

type propertyToggleRow struct {
	reg     *property.Registry
	name    string
	on, off string
	btn     *widget.Button
}

func (r *propertyToggleRow) refresh(w *ecs.World) {
	v, ok := r.reg.Value(w, r.name)
	r.btn.Text().Label = ToggleLabel(r.name, v, ok, r.on, r.off)
}

// ownProperty reads the property stored on an EditThis entity.
func ownProperty(w *ecs.World, e ecs.Entity) (string, property.Value, bool) {
	name, ok := ecs.Get(w, e, component.NameComponent.Kind())
	if !ok {
		return "", property.Value{}, false
	}
	v, ok := ecs.Get(w, e, property.ValueComponent.Kind())
	if !ok {
		return "", property.Value{}, false
	}
	return name.Value, *v, true
}

func (h *HUD) newText(label string) *widget.Text {
	return widget.NewText(
		widget.TextOpts.Text(label, &h.face, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}),
	)
}

func (h *HUD) newButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: h.buttonImg, Hover: h.hoverImg, Pressed: h.pressedImg}),
		widget.ButtonOpts.Text(label, &h.face, &widget.ButtonTextColor{Idle: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

// buildRow creates the widgets for it inside panel.
func (h *HUD) buildRow(w *ecs.World, panel *widget.Container, it item) row {
	switch it.element.Kind {
	case TextWithSource:
		r := &textRow{diag: it.element.Diagnostic, text: h.newText(it.element.Diagnostic.Label)}
		panel.AddChild(r.text)
		return r
	case ToggleButtonProperty:
		name := it.element.Property
		r := &propertyToggleRow{reg: h.reg, name: name, on: it.element.On, off: it.element.Off}
		r.btn = h.newButton(name, func() {
			ToggleProperty(h.reg, h.world, name)
		})
		panel.AddChild(r.btn)
		return r
	case EditThis:
		return h.buildEditRow(w, panel, it.entity)
	}
	r := &labelRow{text: h.newText("failed: " + it.entity.String())}
	panel.AddChild(r.text)
	return r
}

func (h *HUD) buildEditRow(w *ecs.World, panel *widget.Container, e ecs.Entity) row {
	name, v, ok := ownProperty(w, e)
	if !ok {
		r := &labelRow{text: h.newText("failed: " + e.String())}
		panel.AddChild(r.text)
		return r
	}

	switch v.Kind() {
	case property.KindBool:
		r := &valueButtonRow{entity: e, label: func(name string, v property.Value) string {
			return ToggleLabel(name, v, true, "", "")
		}}
		r.btn = h.newButton(name, func() {
			ToggleProperty(h.reg, h.world, name)
		})
		panel.AddChild(r.btn)
		return r

	case property.KindColor:
		r := &valueButtonRow{entity: e, label: func(name string, v property.Value) string {
			return name + ": " + v.String()
		}}
		r.btn = h.newButton(name, func() {
			CycleColor(h.reg, h.world, name)
		})
		panel.AddChild(r.btn)
		return r

	case property.KindText:
		r := &textEditRow{entity: e}
		r.input = widget.NewTextInput(
			widget.TextInputOpts.WidgetOpts(widget.WidgetOpts.MinSize(160, 20)),
			widget.TextInputOpts.Image(&widget.TextInputImage{
				Idle:     h.inputImg,
				Disabled: h.buttonImg,
			}),
			widget.TextInputOpts.Color(&widget.TextInputColor{
				Idle:     color.Black,
				Disabled: color.Gray{Y: 120},
				Caret:    color.Black,
			}),
			widget.TextInputOpts.Face(&h.face),
			widget.TextInputOpts.SubmitOnEnter(true),
			widget.TextInputOpts.SubmitHandler(func(args *widget.TextInputChangedEventArgs) {
				h.reg.Set(name, property.Text(args.InputText))
			}),
		)
		copyBtn := h.newButton("copy", func() {
			h.copyText(r.input.GetText())
		})

		line := widget.NewContainer(
			widget.ContainerOpts.Layout(widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(4),
			)),
		)
		line.AddChild(h.newText(name))
		line.AddChild(r.input)
		line.AddChild(copyBtn)
		panel.AddChild(line)
		return r
	}

	r := &labelRow{text: h.newText(name + ": " + v.String())}
	panel.AddChild(r.text)
	return r
}

func (h *HUD) copyText(s string) {
	if !h.clipboard {
		h.log.Warn().Msg("clipboard unavailable")
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(s))
}
