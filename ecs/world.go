package ecs

import (
	"sort"

	"github.com/milk9111/hexfield/ecs/component"
)

// World owns entities, their components and the parent/child hierarchy.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
	tick     uint64
	changes  uint64

	parents  map[Entity]Entity
	children map[Entity][]Entity
}

// NewWorld creates an empty ECS world. Frame ticks start at 1.
func NewWorld() *World {
	return &World{
		stores:   make(map[component.ComponentID]*SparseSet),
		tick:     1,
		parents:  make(map[Entity]Entity),
		children: make(map[Entity][]Entity),
	}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity removes every component of e, detaches it from the hierarchy
// (children become roots) and frees its id. It reports whether e was alive.
func (w *World) DestroyEntity(e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, s := range w.stores {
		s.Remove(e)
	}
	w.detach(e)
	for _, c := range w.children[e] {
		delete(w.parents, c)
	}
	delete(w.children, e)
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns all live entities in id order.
func (w *World) Entities() []Entity {
	if w == nil {
		return nil
	}
	out := make([]Entity, 0, w.entities.count)
	w.entities.each(func(e Entity) { out = append(out, e) })
	return out
}

// EntityCount returns the number of live entities.
func (w *World) EntityCount() int {
	if w == nil {
		return 0
	}
	return w.entities.count
}

// Tick returns the current world tick.
func (w *World) Tick() uint64 {
	if w == nil {
		return 0
	}
	return w.tick
}

// Advance ends the current tick.
func (w *World) Advance() {
	if w == nil {
		return
	}
	w.tick++
}

func (w *World) store(id component.ComponentID, create bool) *SparseSet {
	s, ok := w.stores[id]
	if !ok && create {
		s = newSparseSet()
		w.stores[id] = s
	}
	return s
}

// ChangeTick returns a counter that grows with every component insert. A
// system that stores it after running can pass it to ForEachAdded next time
// to see exactly the components inserted in between.
func (w *World) ChangeTick() uint64 {
	if w == nil {
		return 0
	}
	return w.changes
}

// ComponentCount returns how many component kinds e carries. Used by debug
// tooling.
func (w *World) ComponentCount(e Entity) int {
	n := 0
	for _, s := range w.stores {
		if s.Has(e) {
			n++
		}
	}
	return n
}

func sortEntities(ents []Entity) {
	sort.Slice(ents, func(i, j int) bool { return ents[i].id() < ents[j].id() })
}
