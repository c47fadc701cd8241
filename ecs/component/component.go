// Package component declares typed component handles and the hexfield
// component types: names, transforms, hex cells, tags, colliders, physics
// bodies and effect timers.
//
// Each handle is created once at package init with NewComponent and used
// through its Kind with the generic accessors in package ecs.
package component

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"
)

var (
	ErrEntityNotAlive       = errors.New("ecs: entity not alive")
	ErrNilComponent         = errors.New("ecs: component is nil")
	ErrInvalidComponentKind = errors.New("ecs: invalid component kind")
)

type ComponentID uint32

var (
	nextComponentID atomic.Uint32
	kindNames       sync.Map // ComponentID -> string
)

// ComponentKind is the storage key for components of type T. The zero value
// is invalid.
type ComponentKind[T any] struct {
	id ComponentID
}

func NewComponentKind[T any]() ComponentKind[T] {
	id := ComponentID(nextComponentID.Add(1))
	kindNames.Store(id, reflect.TypeFor[T]().String())
	return ComponentKind[T]{id: id}
}

func (k ComponentKind[T]) ID() ComponentID {
	return k.id
}

func (k ComponentKind[T]) Valid() bool {
	return k.id != 0
}

// String names the kind after its Go type, e.g. "component.Transform#4".
func (k ComponentKind[T]) String() string {
	return KindName(k.id)
}

// KindName returns the type name recorded for id.
func KindName(id ComponentID) string {
	if id == 0 {
		return "invalid"
	}
	if name, ok := kindNames.Load(id); ok {
		return fmt.Sprintf("%s#%d", name, id)
	}
	return fmt.Sprintf("kind#%d", id)
}

// ComponentHandle is the exported entry point for a component type.
type ComponentHandle[T any] struct {
	kind ComponentKind[T]
}

func NewComponent[T any]() ComponentHandle[T] {
	return ComponentHandle[T]{kind: NewComponentKind[T]()}
}

func (h ComponentHandle[T]) Kind() ComponentKind[T] {
	return h.kind
}
