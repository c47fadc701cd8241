package asset

import (
	"github.com/rs/zerolog"

	"github.com/milk9111/hexfield/ecs"
)

// Handle identifies a mesh in a Store. Handles are comparable and can be used
// as map keys.
type Handle struct {
	name string
}

func (h Handle) Name() string {
	return h.name
}

func (h Handle) Valid() bool {
	return h.name != ""
}

func (h Handle) String() string {
	return h.name
}

type EventKind int

const (
	// Created is emitted once, on the tick a mesh becomes available.
	Created EventKind = iota + 1
)

// Event notifies consumers about mesh availability.
type Event struct {
	Kind   EventKind
	Handle Handle
}

// Builder produces a mesh when the store gets around to loading it.
type Builder func() (*Mesh, error)

// Store holds meshes. Load only registers a builder; meshes materialise on
// the following Update, mirroring an asynchronous asset server.
type Store struct {
	meshes  map[Handle]*Mesh
	loading map[Handle]Builder
	order   []Handle
	events  ecs.Events[Event]
	log     zerolog.Logger
}

func NewStore(logger zerolog.Logger) *Store {
	return &Store{
		meshes:  make(map[Handle]*Mesh),
		loading: make(map[Handle]Builder),
		log:     logger.With().Str("component", "asset").Logger(),
	}
}

// Load queues name for loading and returns its handle. Loading a name twice
// returns the same handle and keeps the first builder.
func (s *Store) Load(name string, build Builder) Handle {
	h := Handle{name: name}
	if _, ok := s.meshes[h]; ok {
		return h
	}
	if _, ok := s.loading[h]; ok {
		return h
	}
	s.loading[h] = build
	s.order = append(s.order, h)
	return h
}

// Get returns the mesh for h once it has been created.
func (s *Store) Get(h Handle) (*Mesh, bool) {
	m, ok := s.meshes[h]
	return m, ok
}

// Loaded reports whether h has been created.
func (s *Store) Loaded(h Handle) bool {
	_, ok := s.meshes[h]
	return ok
}

// Events returns the queue of Created notifications.
func (s *Store) Events() *ecs.Events[Event] {
	return &s.events
}

// Update builds every queued mesh. Failed builds are logged and dropped.
func (s *Store) Update(_ *ecs.World) {
	if len(s.order) == 0 {
		return
	}
	order := s.order
	s.order = nil
	for _, h := range order {
		build := s.loading[h]
		delete(s.loading, h)
		if build == nil {
			continue
		}
		mesh, err := build()
		if err != nil {
			s.log.Error().Err(err).Str("mesh", h.name).Msg("load failed")
			continue
		}
		s.meshes[h] = mesh
		s.log.Info().Str("mesh", h.name).Int("vertices", len(mesh.Outline)).Msg("mesh created")
		s.events.Push(Event{Kind: Created, Handle: h})
	}
}
