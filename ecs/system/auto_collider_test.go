package system

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/milk9111/hexfield/asset"
	"github.com/milk9111/hexfield/ecs"
	"github.com/milk9111/hexfield/ecs/component"
)

func spawnMeshUser(w *ecs.World, h asset.Handle) ecs.Entity {
	e := w.CreateEntity()
	_ = ecs.Add(w, e, asset.MeshRefComponent.Kind(), &asset.MeshRef{Handle: h})
	_ = ecs.Add(w, e, component.AttachColliderComponent.Kind(), &component.AttachCollider{})
	return e
}

func TestAutoColliderWaitsForCreatedEvent(t *testing.T) {
	w := ecs.NewWorld()
	store := asset.NewStore(zerolog.Nop())
	sys := NewAutoColliderSystem(store, zerolog.Nop())

	h := store.Load("tile", func() (*asset.Mesh, error) { return asset.HexTileMesh(1, 1) })
	a := spawnMeshUser(w, h)
	b := spawnMeshUser(w, h)

	sys.Update(w)
	if sys.Pending(h) != 2 {
		t.Fatalf("expected 2 waiting entities, got %d", sys.Pending(h))
	}
	if ecs.Has(w, a, component.ColliderComponent.Kind()) {
		t.Fatal("collider attached before the mesh exists")
	}

	store.Update(w)
	sys.Update(w)

	ca, okA := ecs.Get(w, a, component.ColliderComponent.Kind())
	cb, okB := ecs.Get(w, b, component.ColliderComponent.Kind())
	if !okA || !okB {
		t.Fatalf("expected colliders on both entities: a=%v b=%v", okA, okB)
	}
	if len(ca.Outline) != 6 || !ca.Sensor {
		t.Fatalf("unexpected collider %+v", ca)
	}
	if &ca.Outline[0] != &cb.Outline[0] {
		t.Fatal("expected the cached collider outline to be shared")
	}
	if sys.Pending(h) != 0 {
		t.Fatalf("pending not cleared: %d", sys.Pending(h))
	}
}

func TestAutoColliderLateEntityUsesCache(t *testing.T) {
	w := ecs.NewWorld()
	store := asset.NewStore(zerolog.Nop())
	sys := NewAutoColliderSystem(store, zerolog.Nop())

	h := store.Load("box", func() (*asset.Mesh, error) { return asset.BoxMesh(1) })
	store.Update(w)
	sys.Update(w) // consumes the Created event with nobody waiting

	late := spawnMeshUser(w, h)
	sys.Update(w)
	col, ok := ecs.Get(w, late, component.ColliderComponent.Kind())
	if !ok || len(col.Outline) != 4 {
		t.Fatalf("late entity did not get a collider: %+v ok=%v", col, ok)
	}
}

func TestAutoColliderSkipsExistingCollider(t *testing.T) {
	w := ecs.NewWorld()
	store := asset.NewStore(zerolog.Nop())
	sys := NewAutoColliderSystem(store, zerolog.Nop())

	h := store.Load("tile", func() (*asset.Mesh, error) { return asset.HexTileMesh(1, 1) })
	e := w.CreateEntity()
	_ = ecs.Add(w, e, component.ColliderComponent.Kind(), &component.Collider{Radius: 2})
	_ = ecs.Add(w, e, asset.MeshRefComponent.Kind(), &asset.MeshRef{Handle: h})
	_ = ecs.Add(w, e, component.AttachColliderComponent.Kind(), &component.AttachCollider{})

	sys.Update(w)
	store.Update(w)
	sys.Update(w)

	col, _ := ecs.Get(w, e, component.ColliderComponent.Kind())
	if col.Radius != 2 {
		t.Fatalf("existing collider replaced: %+v", col)
	}
}
