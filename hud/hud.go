// Package hud draws the debug overlay: diagnostics, property toggles and
// editors, and a plot of recent diagnostic readings.
package hud

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/rs/zerolog"
	"golang.design/x/clipboard"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/hexfield/common"
	"github.com/milk9111/hexfield/ecs"
	"github.com/milk9111/hexfield/property"
)

// Options configures the overlay.
type Options struct {
	Hidden bool
	// PlotSamples is the plot history length; also the plot width in pixels.
	PlotSamples int
	// PlotToggle names the Bool property that shows the plot panel.
	PlotToggle string
}

const plotHeight = 200

var plotColors = []color.Color{colornames.Orange, colornames.Lightgreen, colornames.Deepskyblue, colornames.Violet}

type HUD struct {
	reg   *property.Registry
	log   zerolog.Logger
	opts  Options
	world *ecs.World

	face       ebtext.Face
	panelImg   *imageui.NineSlice
	buttonImg  *imageui.NineSlice
	hoverImg   *imageui.NineSlice
	pressedImg *imageui.NineSlice
	inputImg   *imageui.NineSlice

	ui      *ebitenui.UI
	columns *widget.Container
	panels  []*widget.Container
	rows    []row
	layout  string

	plotToggle *property.Access
	plotRect   image.Rectangle
	clipboard  bool
}

func New(reg *property.Registry, opts Options, logger zerolog.Logger) *HUD {
	if opts.PlotSamples <= 0 {
		opts.PlotSamples = PlotSamples
	}
	goFace := ebtext.NewGoXFace(basicfont.Face7x13)

	h := &HUD{
		reg:        reg,
		log:        logger.With().Str("component", "hud").Logger(),
		opts:       opts,
		face:       goFace,
		panelImg:   imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200}),
		buttonImg:  imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255}),
		hoverImg:   imageui.NewNineSliceColor(color.NRGBA{R: 0x44, G: 0x44, B: 0x55, A: 255}),
		pressedImg: imageui.NewNineSliceColor(color.NRGBA{R: 0x22, G: 0x22, B: 0x22, A: 255}),
		inputImg:   imageui.NewNineSliceColor(color.NRGBA{R: 245, G: 245, B: 245, A: 255}),
	}

	if err := clipboard.Init(); err != nil {
		h.log.Warn().Err(err).Msg("clipboard disabled")
	} else {
		h.clipboard = true
	}

	h.columns = widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(8),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 8, Left: 8}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionStart, VerticalPosition: widget.AnchorLayoutPositionStart}),
		),
	)
	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(h.columns)
	h.ui = &ebitenui.UI{Container: root}
	return h
}

// Setup spawns the built-in diagnostics, debug toggles and plots.
func (h *HUD) Setup(w *ecs.World) error {
	var seq Sequence
	const diag, debug = "1. Diag", "2. Debug"
	rows := []struct {
		el    Element
		order Order
	}{
		{NewDiagnosticElement("FPS", ActualFPS, false), seq.Next().InGroup(diag)},
		{NewDiagnosticElement("TPS", ActualTPS, false), seq.Next().InGroup(diag)},
		{NewDiagnosticElement("entities", EntityCount, true), seq.Next().InGroup(diag)},
		{NewToggleElement("debug.physics", "on", "off"), seq.Next().InGroup(debug)},
	}
	if h.opts.PlotToggle != "" {
		rows = append(rows, struct {
			el    Element
			order Order
		}{NewToggleElement(h.opts.PlotToggle, "on", "off"), seq.Next().InGroup(debug)})
	}
	for _, r := range rows {
		if _, err := Spawn(w, r.el, r.order); err != nil {
			return err
		}
	}

	for _, p := range []Plot{
		NewPlot("fps", ActualFPS, h.opts.PlotSamples),
		NewPlot("entity count", EntityCount, h.opts.PlotSamples),
	} {
		e := w.CreateEntity()
		if err := ecs.Add(w, e, PlotComponent.Kind(), &p); err != nil {
			return fmt.Errorf("hud: add plot %s: %w", p.Name, err)
		}
	}

	if h.opts.PlotToggle != "" {
		e := w.CreateEntity()
		a, err := property.Bind(w, e, h.opts.PlotToggle)
		if err != nil {
			return fmt.Errorf("hud: bind %s: %w", h.opts.PlotToggle, err)
		}
		h.plotToggle = a
	}
	return nil
}

func ActualFPS(*ecs.World) (float64, bool) { return ebiten.ActualFPS(), true }

func ActualTPS(*ecs.World) (float64, bool) { return ebiten.ActualTPS(), true }

func EntityCount(w *ecs.World) (float64, bool) {
	if w == nil {
		return 0, false
	}
	return float64(w.EntityCount()), true
}

func (h *HUD) SetHidden(hidden bool) { h.opts.Hidden = hidden }

func (h *HUD) Hidden() bool { return h.opts.Hidden }

// Update samples the plots, rebuilds the panels when the element set
// changed and runs the widgets. Button handlers queue property updates that
// apply on the next maintenance pass.
func (h *HUD) Update(w *ecs.World) {
	h.world = w
	ecs.ForEach(w, PlotComponent.Kind(), func(_ ecs.Entity, p *Plot) {
		if p.Source == nil {
			return
		}
		if v, ok := p.Source(w); ok {
			p.Push(v)
		}
	})
	if h.opts.Hidden {
		return
	}

	groups := collect(w)
	if sig := layoutSignature(w, groups); sig != h.layout {
		h.rebuild(w, groups)
		h.layout = sig
	}
	for _, r := range h.rows {
		r.refresh(w)
	}
	h.ui.Update()
}

func (h *HUD) rebuild(w *ecs.World, groups []group) {
	h.columns.RemoveChildren()
	h.panels = h.panels[:0]
	h.rows = h.rows[:0]
	for _, g := range groups {
		panel := widget.NewContainer(
			widget.ContainerOpts.BackgroundImage(h.panelImg),
			widget.ContainerOpts.Layout(widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Spacing(4),
				widget.RowLayoutOpts.Padding(&widget.Insets{Top: 6, Bottom: 6, Left: 8, Right: 8}),
			)),
		)
		panel.AddChild(h.newText(g.title))
		for _, it := range g.items {
			h.rows = append(h.rows, h.buildRow(w, panel, it))
		}
		h.columns.AddChild(panel)
		h.panels = append(h.panels, panel)
	}
	h.columns.RequestRelayout()
	h.log.Debug().Int("groups", len(groups)).Int("rows", len(h.rows)).Msg("rebuilt")
}

// layoutSignature changes whenever the panels need rebuilding: elements
// added, removed, reordered, or an edited property changing kind.
func layoutSignature(w *ecs.World, groups []group) string {
	var sb strings.Builder
	for _, g := range groups {
		sb.WriteString(g.title)
		sb.WriteByte('|')
		for _, it := range g.items {
			fmt.Fprintf(&sb, "%s:%s", it.entity, it.element.Kind)
			if it.element.Kind == EditThis {
				if _, v, ok := ownProperty(w, it.entity); ok {
					sb.WriteString(":" + v.Kind().String())
				}
			}
			sb.WriteByte(',')
		}
	}
	return sb.String()
}

// Draw renders the panels and, when enabled, the plot panel.
func (h *HUD) Draw(w *ecs.World, screen *ebiten.Image) {
	if h.opts.Hidden {
		return
	}
	h.ui.Draw(screen)

	if !h.plotsVisible() {
		h.plotRect = image.Rectangle{}
		return
	}
	b := screen.Bounds()
	h.plotRect = image.Rect(b.Min.X+8, b.Max.Y-8-plotHeight, b.Min.X+8+h.opts.PlotSamples, b.Max.Y-8)
	r := h.plotRect
	vector.FillRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), color.NRGBA{A: 180}, false)

	i := 0
	ecs.ForEach(w, PlotComponent.Kind(), func(_ ecs.Entity, p *Plot) {
		clr := plotColors[i%len(plotColors)]
		pts := polyline(p, r)
		for j := 1; j < len(pts); j++ {
			vector.StrokeLine(screen, pts[j-1][0], pts[j-1][1], pts[j][0], pts[j][1], 1, clr, false)
		}
		label := p.Name
		if v, ok := p.Last(); ok {
			label = fmt.Sprintf("%s %.1f", p.Name, v)
		}
		ebitenutil.DebugPrintAt(screen, label, r.Min.X+4, r.Min.Y+2+i*14)
		i++
	})
}

func (h *HUD) plotsVisible() bool {
	return h.plotToggle != nil && h.plotToggle.Cache.BoolOr(false)
}

// Contains reports whether the screen point is covered by the overlay, so
// clicks there do not reach the field.
func (h *HUD) Contains(x, y int) bool {
	if h.opts.Hidden {
		return false
	}
	pt := image.Pt(x, y)
	for _, p := range h.panels {
		if pt.In(p.GetWidget().Rect) {
			return true
		}
	}
	return pt.In(h.plotRect)
}

// polyline maps the samples of p into r, oldest at the left edge, scaled so
// the plot's range fills the height.
func polyline(p *Plot, r image.Rectangle) [][2]float32 {
	samples := p.Samples()
	if len(samples) == 0 || r.Empty() {
		return nil
	}
	lo, hi := p.Range()
	span := float64(max(p.Cap()-1, 1))
	out := make([][2]float32, len(samples))
	for i, v := range samples {
		x := common.Lerp(float64(r.Min.X), float64(r.Max.X), float64(i)/span)
		y := common.Lerp(float64(r.Max.Y), float64(r.Min.Y), (v-lo)/(hi-lo))
		out[i] = [2]float32{float32(x), float32(y)}
	}
	return out
}
