package property

import (
	"github.com/milk9111/hexfield/ecs"
	"github.com/milk9111/hexfield/ecs/component"
)

// Systems returns the maintenance pass in the order it must run.
func Systems(r *Registry) []ecs.System {
	return []ecs.System{
		NewCreatePendingSystem(r),
		NewDetectChangesSystem(r),
		NewApplyUpdatesSystem(r),
	}
}

// CreatePendingSystem materialises every pending name into an entity holding
// an absent value, parented under the registry root.
type CreatePendingSystem struct {
	reg *Registry
}

func NewCreatePendingSystem(r *Registry) *CreatePendingSystem {
	return &CreatePendingSystem{reg: r}
}

func (s *CreatePendingSystem) Update(w *ecs.World) {
	if s == nil || s.reg == nil || w == nil {
		return
	}
	names := s.reg.pending.take()
	if len(names) == 0 {
		return
	}
	root := s.reg.rootEntity(w)
	for _, name := range names {
		if s.reg.Status(name) == Resolved {
			// an entity spawned elsewhere claimed the name first
			continue
		}
		e := w.CreateEntity()
		if err := ecs.Add(w, e, component.NameComponent.Kind(), &component.Name{Value: name}); err != nil {
			s.reg.log.Error().Err(err).Str("property", name).Msg("add name")
		}
		if err := ecs.Add(w, e, ValueComponent.Kind(), &Value{}); err != nil {
			s.reg.log.Error().Err(err).Str("property", name).Msg("add value")
		}
		s.reg.resolve(name, e)
		if err := w.SetParent(e, root); err != nil {
			s.reg.log.Error().Err(err).Str("property", name).Msg("parent under root")
		}
		s.reg.log.Info().Str("property", name).Stringer("entity", e).Msg("spawn pending property entity")
	}
}

// DetectChangesSystem links property entities created since its last run
// into the registry and performs the initial pull for new accessors.
type DetectChangesSystem struct {
	reg     *Registry
	last    uint64
	waiting []ecs.Entity
}

func NewDetectChangesSystem(r *Registry) *DetectChangesSystem {
	return &DetectChangesSystem{reg: r}
}

func (s *DetectChangesSystem) Update(w *ecs.World) {
	if s == nil || s.reg == nil || w == nil {
		return
	}
	mark := w.ChangeTick()

	ecs.ForEachAdded(w, ValueComponent.Kind(), s.last, func(e ecs.Entity, v *Value) {
		name, ok := ecs.Get(w, e, component.NameComponent.Kind())
		if !ok {
			s.reg.log.Warn().Stringer("entity", e).Msg("property value without a name ignored")
			return
		}
		owner, ok := s.reg.link(name.Value, e)
		if !ok {
			s.reg.log.Error().Str("property", name.Value).Stringer("entity", e).Stringer("owner", owner).
				Msg("duplicate property name ignored")
			return
		}
		s.reg.log.Debug().Str("property", name.Value).Stringer("entity", e).Stringer("value", v).Msg("new property")
		if _, ok := w.Parent(e); !ok {
			if err := w.SetParent(e, s.reg.rootEntity(w)); err != nil {
				s.reg.log.Error().Err(err).Str("property", name.Value).Msg("parent under root")
			}
		}
	})

	ecs.ForEachAdded(w, AccessComponent.Kind(), s.last, func(e ecs.Entity, _ *Access) {
		s.waiting = append(s.waiting, e)
	})
	s.last = mark

	if len(s.waiting) == 0 {
		return
	}
	keep := s.waiting[:0]
	for _, e := range s.waiting {
		a, ok := ecs.Get(w, e, AccessComponent.Kind())
		if !ok {
			continue
		}
		if !s.pull(w, a) {
			keep = append(keep, e)
		}
	}
	s.waiting = keep
}

// pull copies the canonical value into a. It reports false while the
// property is not available yet.
func (s *DetectChangesSystem) pull(w *ecs.World, a *Access) bool {
	e, status := s.reg.Lookup(a.Name)
	if status != Resolved {
		return false
	}
	v, ok := ecs.Get(w, e, ValueComponent.Kind())
	if !ok {
		s.reg.fatal(a.Name, e)
	}
	a.Cache = *v
	s.reg.log.Debug().Str("property", a.Name).Stringer("value", v).Msg("new access, initial propagate")
	return true
}

// ApplyUpdatesSystem applies the tick's update events. When a name receives
// several updates in one tick only the last one counts. Updates for names
// without an entity yet are kept for the following tick and the name is
// registered for creation.
type ApplyUpdatesSystem struct {
	reg      *Registry
	deferred []UpdateEvent
}

func NewApplyUpdatesSystem(r *Registry) *ApplyUpdatesSystem {
	return &ApplyUpdatesSystem{reg: r}
}

func (s *ApplyUpdatesSystem) Update(w *ecs.World) {
	if s == nil || s.reg == nil || w == nil {
		return
	}
	events := append(s.deferred, s.reg.drainUpdates()...)
	s.deferred = nil
	if len(events) == 0 {
		return
	}

	updates := make(map[string]Value, len(events))
	for _, ev := range events {
		updates[ev.Name] = ev.Value
	}
	for name, nv := range updates {
		e, ok := s.reg.Get(name)
		if !ok {
			s.deferred = append(s.deferred, UpdateEvent{Name: name, Value: nv})
			delete(updates, name)
			continue
		}
		v, ok := ecs.Get(w, e, ValueComponent.Kind())
		if !ok {
			s.reg.fatal(name, e)
		}
		s.reg.log.Debug().Str("property", name).Stringer("value", nv).Msg("propagate update to property")
		*v = nv
	}

	ecs.ForEach(w, AccessComponent.Kind(), func(e ecs.Entity, a *Access) {
		if nv, ok := updates[a.Name]; ok {
			a.Cache = nv
		}
	})
}
