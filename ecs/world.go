package ecs

import "github.com/milk9111/firstperson/ecs/component"

// System updates a world once per simulation frame.
type System interface {
	Update(w *World)
}

// World owns entities, component storage, and system order. All access is
// frame-synchronous on the game loop goroutine; nothing here locks.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
	systems  []System
	events   EventQueue
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*SparseSet)}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity removes an entity and all its components. Returns false for
// stale handles.
func (w *World) DestroyEntity(e Entity) bool {
	if !w.entities.destroy(e) {
		return false
	}
	for _, s := range w.stores {
		s.Remove(e)
	}
	return true
}

// IsAlive reports whether an entity handle is still valid.
func (w *World) IsAlive(e Entity) bool {
	return w.entities.isAlive(e)
}

// EntityCount returns the number of live entities.
func (w *World) EntityCount() int {
	return w.entities.count()
}

// AddSystem appends a system to the update order. Order is significant: the
// look update must run before locomotion reads the player orientation.
func (w *World) AddSystem(s System) {
	if s == nil {
		return
	}
	w.systems = append(w.systems, s)
}

// Update runs all systems once in registration order. Events pushed during
// the frame stay queued until the host drains them.
func (w *World) Update() {
	for _, s := range w.systems {
		s.Update(w)
	}
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	return &w.events
}

// Query returns entities carrying every given component kind.
func (w *World) Query(kinds ...component.Kind) []Entity {
	if len(kinds) == 0 {
		return nil
	}
	sets := make([]*SparseSet, 0, len(kinds))
	for _, k := range kinds {
		s, ok := w.stores[k.ID()]
		if !ok || s.Len() == 0 {
			return nil
		}
		sets = append(sets, s)
	}
	return intersect(sets)
}

func (w *World) store(id component.ComponentID) *SparseSet {
	s, ok := w.stores[id]
	if !ok {
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}
