package system

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"golang.org/x/image/colornames"

	"github.com/milk9111/hexfield/asset"
	"github.com/milk9111/hexfield/ecs"
	"github.com/milk9111/hexfield/ecs/component"
	"github.com/milk9111/hexfield/property"
)

var whiteSubImage *ebiten.Image

func fillSource() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// RenderSystem draws tiles as filled hexagons and bodies as discs. The tile
// fill follows the tile.color property and physics shapes are overlaid while
// debug.physics is true.
type RenderSystem struct {
	view      *View
	assets    *asset.Store
	tileColor *property.Access
	debug     *property.Access
	physics   *PhysicsSystem

	vertices []ebiten.Vertex
	indices  []uint16
}

func NewRenderSystem(view *View, assets *asset.Store, tileColor, debug *property.Access, physics *PhysicsSystem) *RenderSystem {
	return &RenderSystem{
		view:      view,
		assets:    assets,
		tileColor: tileColor,
		debug:     debug,
		physics:   physics,
	}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil || r.view == nil {
		return
	}
	screen.Fill(colornames.Midnightblue)

	fill := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	if r.tileColor != nil {
		if c, ok := r.tileColor.Cache.AsColor(); ok {
			fill = rgba(c[0], c[1], c[2])
		}
	}
	ecs.ForEach3(w, component.TileTagComponent.Kind(), component.TransformComponent.Kind(), asset.MeshRefComponent.Kind(),
		func(_ ecs.Entity, _ *component.TileTag, transform *component.Transform, ref *asset.MeshRef) {
			mesh, ok := r.assets.Get(ref.Handle)
			if !ok {
				return
			}
			r.drawPolygon(screen, worldOutline(mesh.Outline, transform, 0.94), fill)
		})

	ecs.ForEach3(w, component.TintComponent.Kind(), component.TransformComponent.Kind(), component.ColliderComponent.Kind(),
		func(_ ecs.Entity, tint *component.Tint, transform *component.Transform, col *component.Collider) {
			if col.Radius <= 0 {
				return
			}
			x, y := r.view.vec(cp.Vector{X: transform.X, Y: transform.Y})
			scale := math.Max(transform.ScaleX, transform.ScaleY)
			radius := float32(col.Radius * scale * r.view.scale())
			vector.FillCircle(screen, x, y, radius, rgba(tint.R, tint.G, tint.B), true)
		})

	if r.debug != nil && r.debug.Cache.BoolOr(false) && r.physics != nil {
		DrawPhysicsDebug(r.physics.Space(), *r.view, screen)
	}
}

func (r *RenderSystem) drawPolygon(screen *ebiten.Image, pts []cp.Vector, clr color.RGBA) {
	if len(pts) < 3 {
		return
	}
	var path vector.Path
	x, y := r.view.vec(pts[0])
	path.MoveTo(x, y)
	for _, p := range pts[1:] {
		x, y := r.view.vec(p)
		path.LineTo(x, y)
	}
	path.Close()

	r.vertices, r.indices = path.AppendVerticesAndIndicesForFilling(r.vertices[:0], r.indices[:0])
	cr, cg, cb, ca := float32(clr.R)/255, float32(clr.G)/255, float32(clr.B)/255, float32(clr.A)/255
	for i := range r.vertices {
		r.vertices[i].SrcX = 1
		r.vertices[i].SrcY = 1
		r.vertices[i].ColorR = cr
		r.vertices[i].ColorG = cg
		r.vertices[i].ColorB = cb
		r.vertices[i].ColorA = ca
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	screen.DrawTriangles(r.vertices, r.indices, fillSource(), op)
}

// worldOutline places a local outline at transform, shrunk by inset so
// neighbouring tiles keep a visible gap.
func worldOutline(outline []cp.Vector, transform *component.Transform, inset float64) []cp.Vector {
	sin, cos := math.Sincos(transform.Rotation)
	out := make([]cp.Vector, len(outline))
	for i, v := range outline {
		lx := v.X * transform.ScaleX * inset
		ly := v.Y * transform.ScaleY * inset
		out[i] = cp.Vector{
			X: transform.X + lx*cos - ly*sin,
			Y: transform.Y + lx*sin + ly*cos,
		}
	}
	return out
}

func rgba(r, g, b float32) color.RGBA {
	return color.RGBA{R: channel(r), G: channel(g), B: channel(b), A: 255}
}

func channel(v float32) uint8 {
	return uint8(clamp01(v)*255 + 0.5)
}
