package system

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/milk9111/hexfield/asset"
	"github.com/milk9111/hexfield/ecs"
	"github.com/milk9111/hexfield/ecs/component"
)

// AutoColliderSystem derives colliders from meshes. Entities tagged with
// AttachCollider wait per mesh handle until the store reports the mesh as
// created; the collider is built once per handle and shared by every entity
// using that mesh.
type AutoColliderSystem struct {
	assets *asset.Store
	// Template supplies everything but the outline.
	Template component.Collider

	pending map[asset.Handle][]ecs.Entity
	cache   map[asset.Handle]component.Collider
	last    uint64
	log     zerolog.Logger
}

func NewAutoColliderSystem(assets *asset.Store, logger zerolog.Logger) *AutoColliderSystem {
	return &AutoColliderSystem{
		assets:   assets,
		Template: component.Collider{Friction: 0.8, Sensor: true},
		pending:  make(map[asset.Handle][]ecs.Entity),
		cache:    make(map[asset.Handle]component.Collider),
		log:      logger.With().Str("component", "auto_collider").Logger(),
	}
}

func (s *AutoColliderSystem) Update(w *ecs.World) {
	if s == nil || w == nil || s.assets == nil {
		return
	}
	mark := w.ChangeTick()
	ecs.ForEachAdded(w, component.AttachColliderComponent.Kind(), s.last, func(e ecs.Entity, _ *component.AttachCollider) {
		if ecs.Has(w, e, component.ColliderComponent.Kind()) {
			return
		}
		ref, ok := ecs.Get(w, e, asset.MeshRefComponent.Kind())
		if !ok {
			s.log.Warn().Stringer("entity", e).Msg("attach collider without a mesh ignored")
			return
		}
		if col, ok := s.cache[ref.Handle]; ok {
			s.attach(w, e, col)
			return
		}
		if s.assets.Loaded(ref.Handle) {
			// the Created event went by before this entity appeared
			s.attach(w, e, s.build(ref.Handle))
			return
		}
		s.pending[ref.Handle] = append(s.pending[ref.Handle], e)
	})
	s.last = mark

	for _, ev := range s.assets.Events().Drain() {
		if ev.Kind != asset.Created {
			continue
		}
		waiting, ok := s.pending[ev.Handle]
		if !ok {
			continue
		}
		delete(s.pending, ev.Handle)
		col := s.build(ev.Handle)
		for _, e := range waiting {
			s.attach(w, e, col)
		}
		s.log.Info().Str("mesh", ev.Handle.Name()).Int("entities", len(waiting)).Msg("colliders attached")
	}
}

// Pending returns how many entities wait for mesh h.
func (s *AutoColliderSystem) Pending(h asset.Handle) int {
	return len(s.pending[h])
}

func (s *AutoColliderSystem) build(h asset.Handle) component.Collider {
	if col, ok := s.cache[h]; ok {
		return col
	}
	mesh, ok := s.assets.Get(h)
	if !ok {
		s.log.Error().Str("mesh", h.Name()).Msg("mesh missing after created event")
		panic(fmt.Sprintf("auto collider: mesh %q missing after created event", h.Name()))
	}
	col := s.Template
	col.Radius = 0
	col.Outline = mesh.Scaled(1)
	s.cache[h] = col
	s.log.Debug().Str("mesh", h.Name()).Int("vertices", len(col.Outline)).Msg("collider built")
	return col
}

func (s *AutoColliderSystem) attach(w *ecs.World, e ecs.Entity, col component.Collider) {
	if !w.IsAlive(e) {
		return
	}
	c := col
	_ = ecs.Add(w, e, component.ColliderComponent.Kind(), &c)
}
