// Package property implements a reactive, name-keyed value store living in
// the ECS world.
//
// A name goes Unknown -> Pending on its first Lookup and Pending -> Resolved
// on the next maintenance pass, which creates the backing entity. The pass is
// three systems that must run once per tick in this order: CreatePending,
// DetectChanges, ApplyUpdates (see Systems).
package property

import (
	"errors"
	"sort"

	"github.com/rs/zerolog"
	"github.com/sasha-s/go-deadlock"

	"github.com/milk9111/hexfield/ecs"
	"github.com/milk9111/hexfield/ecs/component"
)

// RootName names the entity that groups all property entities.
const RootName = "properties"

// ErrPropertyGone is raised (as a panic) when a resolved property entity has
// been destroyed behind the registry's back.
var ErrPropertyGone = errors.New("property: resolved entity no longer exists")

// Status is the state of a name as observed by Lookup.
type Status uint8

const (
	Unknown Status = iota
	Pending
	Resolved
)

func (s Status) String() string {
	switch s {
	case Pending:
		return "pending"
	case Resolved:
		return "resolved"
	default:
		return "unknown"
	}
}

type entryState uint8

const (
	statePending entryState = iota + 1
	stateResolved
)

type entry struct {
	state  entryState
	entity ecs.Entity
}

// UpdateEvent requests that property Name take Value.
type UpdateEvent struct {
	Name  string
	Value Value
}

// Registry maps property names to entities. It is created once per world and
// handed to the maintenance systems and to every reader.
type Registry struct {
	mu      deadlock.RWMutex
	entries map[string]entry
	pending *pendingSet
	root    ecs.Entity

	updateMu deadlock.Mutex
	updates  ecs.Events[UpdateEvent]

	log zerolog.Logger
}

func NewRegistry(logger zerolog.Logger) *Registry {
	return &Registry{
		entries: make(map[string]entry),
		pending: newPendingSet(),
		log:     logger.With().Str("component", "property").Logger(),
	}
}

// Lookup returns the entity backing name. The returned status is the state
// before the call: for Unknown the name has now been registered as pending
// and will be created by the next CreatePending pass. Unknown and Pending
// both mean "not yet available, ask again next tick".
func (r *Registry) Lookup(name string) (ecs.Entity, Status) {
	r.mu.RLock()
	e, ok := r.entries[name]
	r.mu.RUnlock()
	if ok {
		if e.state == stateResolved {
			return e.entity, Resolved
		}
		return 0, Pending
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	// another reader may have registered it between the two locks
	if e, ok := r.entries[name]; ok {
		if e.state == stateResolved {
			return e.entity, Resolved
		}
		return 0, Pending
	}
	r.entries[name] = entry{state: statePending}
	r.pending.add(name)
	return 0, Unknown
}

// Get is Lookup reduced to "available or not".
func (r *Registry) Get(name string) (ecs.Entity, bool) {
	e, status := r.Lookup(name)
	return e, status == Resolved
}

// Status reports the state of name without registering it.
func (r *Registry) Status(name string) Status {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[name]
	switch {
	case !ok:
		return Unknown
	case e.state == stateResolved:
		return Resolved
	default:
		return Pending
	}
}

// Value returns the canonical value of name if it is resolved. Like Lookup
// it registers unknown names.
func (r *Registry) Value(w *ecs.World, name string) (Value, bool) {
	e, ok := r.Get(name)
	if !ok {
		return Value{}, false
	}
	v, ok := ecs.Get(w, e, ValueComponent.Kind())
	if !ok {
		r.fatal(name, e)
	}
	return *v, true
}

// Send queues an update for the next ApplyUpdates pass.
func (r *Registry) Send(ev UpdateEvent) {
	r.updateMu.Lock()
	r.updates.Push(ev)
	r.updateMu.Unlock()
}

// Set is shorthand for Send.
func (r *Registry) Set(name string, v Value) {
	r.Send(UpdateEvent{Name: name, Value: v})
}

// Root returns the grouping entity, if it has been created.
func (r *Registry) Root() (ecs.Entity, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.root, r.root.Valid()
}

// Names returns the resolved names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	out := make([]string, 0, len(r.entries))
	for name, e := range r.entries {
		if e.state == stateResolved {
			out = append(out, name)
		}
	}
	r.mu.RUnlock()
	sort.Strings(out)
	return out
}

// PendingNames returns the names waiting for creation, sorted.
func (r *Registry) PendingNames() []string {
	return r.pending.snapshot()
}

func (r *Registry) drainUpdates() []UpdateEvent {
	r.updateMu.Lock()
	defer r.updateMu.Unlock()
	return r.updates.Drain()
}

func (r *Registry) resolve(name string, e ecs.Entity) {
	r.mu.Lock()
	r.entries[name] = entry{state: stateResolved, entity: e}
	r.mu.Unlock()
}

// link records e for name unless name already resolves to another entity.
func (r *Registry) link(name string, e ecs.Entity) (ecs.Entity, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if cur, ok := r.entries[name]; ok && cur.state == stateResolved {
		return cur.entity, cur.entity == e
	}
	r.entries[name] = entry{state: stateResolved, entity: e}
	return e, true
}

func (r *Registry) rootEntity(w *ecs.World) ecs.Entity {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.root.Valid() && w.IsAlive(r.root) {
		return r.root
	}
	r.root = w.CreateEntity()
	if err := ecs.Add(w, r.root, component.NameComponent.Kind(), &component.Name{Value: RootName}); err != nil {
		r.log.Error().Err(err).Stringer("entity", r.root).Msg("name root entity")
	}
	return r.root
}

func (r *Registry) fatal(name string, e ecs.Entity) {
	r.log.Error().Str("property", name).Stringer("entity", e).Msg("resolved property entity is gone")
	panic(errors.Join(ErrPropertyGone, errors.New(name)))
}
