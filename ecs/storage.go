package ecs

import (
	"iter"
	"reflect"
)

// Storage is the entity store handed to every system. Entities are slot indices
// with a generation; components live in one column per component type, created
// the first time a value of that type is stored.
type Storage struct {
	generations []uint32
	alive       []bool
	freeIndices []uint32
	live        int

	columns  map[reflect.Type]iComponentStorage
	order    []reflect.Type
	commands *Commands
}

// NewStorage creates an empty entity store
func NewStorage() *Storage {
	return &Storage{
		columns:  make(map[reflect.Type]iComponentStorage),
		commands: newCommands(),
	}
}

// SpawnEmpty creates a new entity without any components
func (s *Storage) SpawnEmpty() EntityId {
	var index uint32
	if n := len(s.freeIndices); n > 0 {
		index = s.freeIndices[n-1]
		s.freeIndices = s.freeIndices[:n-1]
	} else {
		index = uint32(len(s.generations))
		s.generations = append(s.generations, 1)
		s.alive = append(s.alive, false)
	}

	s.alive[index] = true
	s.live++
	return NewEntityId(s.generations[index], index)
}

// Alive reports whether id refers to an entity that has not been despawned.
func (s *Storage) Alive(id EntityId) bool {
	index := id.Index()
	if int(index) >= len(s.generations) {
		return false
	}
	return s.alive[index] && s.generations[index] == id.Generation()
}

// Despawn removes the entity and all of its components. Stale or unknown ids are ignored.
func (s *Storage) Despawn(id EntityId) bool {
	if !s.Alive(id) {
		return false
	}

	index := id.Index()
	for _, typ := range s.order {
		s.columns[typ].Delete(index)
	}

	s.alive[index] = false
	s.generations[index]++
	if s.generations[index] == 0 {
		s.generations[index] = 1
	}
	s.freeIndices = append(s.freeIndices, index)
	s.live--
	return true
}

// Len returns the number of live entities
func (s *Storage) Len() int {
	return s.live
}

// Entities yields every live entity in slot order.
func (s *Storage) Entities() iter.Seq[EntityId] {
	return func(yield func(EntityId) bool) {
		for index, alive := range s.alive {
			if !alive {
				continue
			}
			if !yield(NewEntityId(s.generations[index], uint32(index))) {
				return
			}
		}
	}
}

// Commands returns the deferred command buffer flushed at the end of every stage.
func (s *Storage) Commands() *Commands {
	return s.commands
}

// Flush applies all queued commands.
func (s *Storage) Flush() {
	s.commands.Flush(s)
}

// Compact reorganizes every component column to eliminate empty slots.
// Component pointers obtained before the call must not be used afterwards.
func (s *Storage) Compact() {
	for _, typ := range s.order {
		s.columns[typ].Compact()
	}
}

// GetComponent returns a pointer to the component of the given type, or nil.
func (s *Storage) GetComponent(id EntityId, compType reflect.Type) any {
	if !s.Alive(id) {
		return nil
	}
	column, ok := s.columns[compType]
	if !ok {
		return nil
	}
	return column.GetAny(id.Index())
}

// HasComponent checks if an entity has a specific component type
func (s *Storage) HasComponent(id EntityId, compType reflect.Type) bool {
	if !s.Alive(id) {
		return false
	}
	column, ok := s.columns[compType]
	if !ok {
		return false
	}
	return column.Has(id.Index())
}

// ComponentTypes returns the types of all components attached to the entity,
// in column creation order.
func (s *Storage) ComponentTypes(id EntityId) []reflect.Type {
	if !s.Alive(id) {
		return nil
	}
	var types []reflect.Type
	for _, typ := range s.order {
		if s.columns[typ].Has(id.Index()) {
			types = append(types, typ)
		}
	}
	return types
}

func storageFor[T any](s *Storage, create bool) *genericComponentStorage[T] {
	typ := reflect.TypeFor[T]()
	if column, ok := s.columns[typ]; ok {
		return column.(*genericComponentStorage[T])
	}
	if !create {
		return nil
	}

	column := newGenericComponentStorage[T]()
	s.columns[typ] = column
	s.order = append(s.order, typ)
	return column
}

// Spawn creates a new entity holding a single component.
func Spawn[T any](s *Storage, component T) EntityId {
	id := s.SpawnEmpty()
	storageFor[T](s, true).Put(id, component)
	return id
}

// Insert attaches component to a live entity, replacing any existing component
// of the same type. It returns false if the entity is not alive.
func Insert[T any](s *Storage, id EntityId, component T) bool {
	if !s.Alive(id) {
		return false
	}
	storageFor[T](s, true).Put(id, component)
	return true
}

// Remove detaches the component of type T from the entity and returns it.
func Remove[T any](s *Storage, id EntityId) (T, bool) {
	var zero T
	if !s.Alive(id) {
		return zero, false
	}
	column := storageFor[T](s, false)
	if column == nil {
		return zero, false
	}
	return column.Take(id.Index())
}

// Get returns a pointer to the entity's component of type T.
func Get[T any](s *Storage, id EntityId) (*T, bool) {
	if !s.Alive(id) {
		return nil, false
	}
	column := storageFor[T](s, false)
	if column == nil {
		return nil, false
	}
	ptr := column.Get(id.Index())
	return ptr, ptr != nil
}

// Has reports whether the entity has a component of type T.
func Has[T any](s *Storage, id EntityId) bool {
	_, ok := Get[T](s, id)
	return ok
}
