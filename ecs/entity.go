package ecs

import "strconv"

// Entity is an opaque handle packing a 32-bit id with a 32-bit generation.
// A handle left over from a destroyed entity goes stale instead of aliasing
// whatever recycles its id.
type Entity uint64

type entityID uint32
type generation uint32

const entityIDBits = 32

func makeEntity(id entityID, gen generation) Entity {
	return Entity(uint64(gen)<<entityIDBits | uint64(id))
}

func (e Entity) id() entityID {
	return entityID(uint32(e))
}

func (e Entity) generation() generation {
	return generation(uint32(uint64(e) >> entityIDBits))
}

func (e Entity) String() string {
	return strconv.FormatUint(uint64(e), 10)
}

func (e Entity) Valid() bool {
	return e.id() != 0
}

// entityStore tracks generations and recycles freed ids. Id 0 is reserved as
// the invalid handle.
type entityStore struct {
	gens []generation
	free []entityID
}

func (s *entityStore) create() Entity {
	if len(s.gens) == 0 {
		s.gens = append(s.gens, 0)
	}
	var id entityID
	if n := len(s.free); n > 0 {
		id = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		s.gens = append(s.gens, 0)
		id = entityID(len(s.gens) - 1)
	}
	return makeEntity(id, s.gens[id])
}

func (s *entityStore) destroy(e Entity) bool {
	id := e.id()
	if id == 0 || int(id) >= len(s.gens) || s.gens[id] != e.generation() {
		return false
	}
	s.gens[id]++
	s.free = append(s.free, id)
	return true
}

func (s *entityStore) isAlive(e Entity) bool {
	id := e.id()
	return id != 0 && int(id) < len(s.gens) && s.gens[id] == e.generation()
}

func (s *entityStore) count() int {
	if len(s.gens) == 0 {
		return 0
	}
	return len(s.gens) - 1 - len(s.free)
}
