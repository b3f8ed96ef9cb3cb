package ecs

import (
	"fmt"

	"github.com/milk9111/firstperson/ecs/component"
)

// Add attaches a component value to an entity. Values are stored by pointer
// so later mutation through Get sticks.
func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	if !w.IsAlive(e) {
		return component.ErrEntityNotAlive
	}
	w.store(kind.ID()).Set(e, value)
	return nil
}

// Remove detaches a component from an entity.
func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if !kind.Valid() {
		return false
	}
	return w.store(kind.ID()).Remove(e)
}

// Has reports whether the entity carries the component.
func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	return kind.Valid() && w.store(kind.ID()).Has(e)
}

// Get returns the entity's component, or (nil, false).
func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	if !kind.Valid() {
		return nil, false
	}
	v := w.store(kind.ID()).Get(e)
	if v == nil {
		return nil, false
	}
	cast, ok := v.(*T)
	return cast, ok
}

// ForEach calls fn for every entity carrying the component.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(e Entity, v *T)) {
	if !kind.Valid() || fn == nil {
		return
	}
	s := w.store(kind.ID())
	for _, e := range s.Entities() {
		if v, ok := s.Get(e).(*T); ok {
			fn(e, v)
		}
	}
}

// Single returns the one entity carrying the component. Exactly-one
// cardinality is a precondition of every singleton query in this game; zero
// or multiple matches is a programming error, so it panics rather than
// degrading quietly.
func Single[T any](w *World, kind component.ComponentKind[T]) (Entity, *T) {
	s := w.store(kind.ID())
	if s.Len() != 1 {
		panic(fmt.Sprintf("ecs: singleton query matched %d entities for component %d", s.Len(), kind.ID()))
	}
	e := s.Entities()[0]
	v, _ := s.Get(e).(*T)
	return e, v
}
