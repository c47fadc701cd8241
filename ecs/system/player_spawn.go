package system

import (
	"github.com/milk9111/hexfield/ecs"
	"github.com/milk9111/hexfield/ecs/component"
)

const playerRadius = 0.12

var playerTint = component.Tint{R: 0.2, G: 1, B: 0.3}

// PlayerSpawnSystem gives newly tagged players a transform over their cell,
// a round collider and a dynamic body.
type PlayerSpawnSystem struct {
	last uint64
}

func NewPlayerSpawnSystem() *PlayerSpawnSystem {
	return &PlayerSpawnSystem{}
}

func (s *PlayerSpawnSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	mark := w.ChangeTick()
	ecs.ForEachAdded(w, component.PlayerTagComponent.Kind(), s.last, func(e ecs.Entity, _ *component.PlayerTag) {
		cell, ok := ecs.Get(w, e, component.HexCellComponent.Kind())
		if !ok {
			return
		}
		x, y := cell.Cube.ToScreen()
		transform := component.NewTransform(x, y)
		tint := playerTint
		_ = ecs.Add(w, e, component.TransformComponent.Kind(), &transform)
		_ = ecs.Add(w, e, component.TintComponent.Kind(), &tint)
		_ = ecs.Add(w, e, component.ColliderComponent.Kind(), &component.Collider{Radius: playerRadius, Elasticity: 0.5, Friction: 0.5})
		_ = ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Mass: 1})
	})
	s.last = mark
}
