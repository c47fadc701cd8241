package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"

	"github.com/milk9111/hexfield/ecs"
	"github.com/milk9111/hexfield/ecs/component"
	"github.com/milk9111/hexfield/hex"
)

// Click reports the cursor position and whether the left button was pressed
// this tick.
type Click func() (x, y int, pressed bool)

// MouseClick reads the left mouse button from ebiten.
func MouseClick() (int, int, bool) {
	x, y := ebiten.CursorPosition()
	return x, y, inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

// PickingSystem turns clicks on the field into effects: the clicked tile
// starts rotating and a player standing on it starts exploding. Clicks on a
// tile that is still rotating are ignored.
type PickingSystem struct {
	view    *View
	click   Click
	blocked func(x, y int) bool
	log     zerolog.Logger
}

func NewPickingSystem(view *View, click Click, logger zerolog.Logger) *PickingSystem {
	if click == nil {
		click = MouseClick
	}
	return &PickingSystem{
		view:  view,
		click: click,
		log:   logger.With().Str("component", "picking").Logger(),
	}
}

// SetBlocked installs a check for screen regions covered by overlays.
func (s *PickingSystem) SetBlocked(fn func(x, y int) bool) {
	s.blocked = fn
}

func (s *PickingSystem) Update(w *ecs.World) {
	if s == nil || w == nil || s.view == nil {
		return
	}
	x, y, pressed := s.click()
	if !pressed {
		return
	}
	if s.blocked != nil && s.blocked(x, y) {
		return
	}
	fx, fy := s.view.ToField(float64(x), float64(y))
	s.Pick(w, hex.PickCell(fx, fy))
}

// Pick applies a click on cell. It reports whether a tile was hit.
func (s *PickingSystem) Pick(w *ecs.World, cell hex.Cube) bool {
	tile, ok := findOnCell(w, component.TileTagComponent.Kind(), cell)
	if !ok {
		return false
	}
	if ecs.Has(w, tile, component.DoRotateComponent.Kind()) {
		return true
	}
	_ = ecs.Add(w, tile, component.DoRotateComponent.Kind(), &component.DoRotate{})

	player, ok := findOnCell(w, component.PlayerTagComponent.Kind(), cell)
	if ok && !ecs.Has(w, player, component.PlayerExplosionComponent.Kind()) {
		_ = ecs.Add(w, player, component.PlayerExplosionComponent.Kind(), &component.PlayerExplosion{TimeLeft: 1})
		s.log.Info().Stringer("cell", cell).Stringer("player", player).Msg("player explosion triggered")
	}
	return true
}

func findOnCell[T any](w *ecs.World, tag component.ComponentKind[T], cell hex.Cube) (ecs.Entity, bool) {
	found := ecs.Entity(0)
	ecs.ForEach2(w, tag, component.HexCellComponent.Kind(), func(e ecs.Entity, _ *T, hc *component.HexCell) {
		if !found.Valid() && hc.Cube == cell {
			found = e
		}
	})
	return found, found.Valid()
}
