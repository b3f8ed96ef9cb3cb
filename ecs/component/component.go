package component

import (
	"errors"
	"sync/atomic"
)

var (
	ErrEntityNotAlive       = errors.New("ecs: entity not alive")
	ErrNilComponent         = errors.New("ecs: component is nil")
	ErrInvalidComponentKind = errors.New("ecs: invalid component kind")
)

// ComponentID identifies a component type at runtime.
type ComponentID uint32

var nextComponentID atomic.Uint32

// Kind is the type-erased view of a ComponentKind, usable in mixed-kind
// queries.
type Kind interface {
	ID() ComponentID
}

// ComponentKind tags a component type T with a unique runtime id.
type ComponentKind[T any] struct {
	id ComponentID
}

// NewComponent registers a new component kind. Each component type declares
// one package-level kind next to its struct.
func NewComponent[T any]() ComponentKind[T] {
	return ComponentKind[T]{id: ComponentID(nextComponentID.Add(1))}
}

func (k ComponentKind[T]) ID() ComponentID {
	return k.id
}

func (k ComponentKind[T]) Valid() bool {
	return k.id != 0
}
