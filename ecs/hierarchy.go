package ecs

import "github.com/milk9111/hexfield/ecs/component"

// SetParent makes child a child of parent, detaching it from any previous
// parent first.
func (w *World) SetParent(child, parent Entity) error {
	if w == nil || !w.IsAlive(child) || !w.IsAlive(parent) {
		return component.ErrEntityNotAlive
	}
	if cur, ok := w.parents[child]; ok && cur == parent {
		return nil
	}
	w.detach(child)
	w.parents[child] = parent
	w.children[parent] = append(w.children[parent], child)
	return nil
}

// Parent returns the parent of e, if any.
func (w *World) Parent(e Entity) (Entity, bool) {
	if w == nil {
		return 0, false
	}
	p, ok := w.parents[e]
	return p, ok
}

// Children returns a copy of e's children in insertion order.
func (w *World) Children(e Entity) []Entity {
	if w == nil {
		return nil
	}
	kids := w.children[e]
	if len(kids) == 0 {
		return nil
	}
	out := make([]Entity, len(kids))
	copy(out, kids)
	return out
}

// DestroyRecursive destroys e and all of its descendants.
func (w *World) DestroyRecursive(e Entity) {
	if w == nil || !w.IsAlive(e) {
		return
	}
	for _, c := range w.Children(e) {
		w.DestroyRecursive(c)
	}
	w.DestroyEntity(e)
}

func (w *World) detach(child Entity) {
	p, ok := w.parents[child]
	if !ok {
		return
	}
	delete(w.parents, child)
	kids := w.children[p]
	for i, c := range kids {
		if c == child {
			w.children[p] = append(kids[:i], kids[i+1:]...)
			break
		}
	}
	if len(w.children[p]) == 0 {
		delete(w.children, p)
	}
}
