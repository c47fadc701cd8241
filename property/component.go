package property

import (
	"fmt"

	"github.com/milk9111/hexfield/ecs"
	"github.com/milk9111/hexfield/ecs/component"
)

// Access is a read-side cache of one property. Attach it with Bind; the
// maintenance pass fills Cache on the first tick the property exists and
// keeps it in step with every update after that.
type Access struct {
	Name  string
	Cache Value
}

var (
	ValueComponent  = component.NewComponent[Value]()
	AccessComponent = component.NewComponent[Access]()
)

// Bind attaches an accessor for name to e. Binding an entity that already
// has an accessor replaces it, and the new one is synced like a fresh bind.
func Bind(w *ecs.World, e ecs.Entity, name string) (*Access, error) {
	a := &Access{Name: name}
	// drop the old accessor so the insert gets a new change stamp
	ecs.Remove(w, e, AccessComponent.Kind())
	if err := ecs.Add(w, e, AccessComponent.Kind(), a); err != nil {
		return nil, fmt.Errorf("property: bind %s: %w", name, err)
	}
	return a, nil
}

// Spawn creates a property entity directly, bypassing the pending queue.
// DetectChanges links it into the registry on its next run.
func Spawn(w *ecs.World, name string, v Value) (ecs.Entity, error) {
	e := w.CreateEntity()
	if err := ecs.Add(w, e, component.NameComponent.Kind(), &component.Name{Value: name}); err != nil {
		w.DestroyEntity(e)
		return 0, fmt.Errorf("property: spawn %s: %w", name, err)
	}
	if err := ecs.Add(w, e, ValueComponent.Kind(), &v); err != nil {
		w.DestroyEntity(e)
		return 0, fmt.Errorf("property: spawn %s: %w", name, err)
	}
	return e, nil
}
