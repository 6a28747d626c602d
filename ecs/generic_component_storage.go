package ecs

import (
	"iter"
	"reflect"

	"github.com/kamstrup/intmap"
)

const (
	genericBlockSize = 64
)

// genericComponentStorage stores components of a specific type `T` in blocks.
// Blocks are allocated individually so pointers handed out by Get stay valid
// while the column grows. Compact invalidates them.
type genericComponentStorage[T any] struct {
	blocks    []*[genericBlockSize]T
	owners    []EntityId
	freeSlots []int
	nextIndex int
	slots     *intmap.Map[uint32, int]
	typ       reflect.Type
}

func newGenericComponentStorage[T any]() *genericComponentStorage[T] {
	return &genericComponentStorage[T]{
		slots: intmap.New[uint32, int](64),
		typ:   reflect.TypeFor[T](),
	}
}

// ComponentType returns the reflect.Type of T.
func (cs *genericComponentStorage[T]) ComponentType() reflect.Type {
	return cs.typ
}

// Put stores the component for the entity, overwriting any existing value,
// and returns a pointer to the stored copy.
func (cs *genericComponentStorage[T]) Put(id EntityId, item T) *T {
	if slot, ok := cs.slots.Get(id.Index()); ok {
		ptr := cs.at(slot)
		*ptr = item
		cs.owners[slot] = id
		return ptr
	}

	var slot int
	if n := len(cs.freeSlots); n > 0 {
		slot = cs.freeSlots[n-1]
		cs.freeSlots = cs.freeSlots[:n-1]
		cs.owners[slot] = id
	} else {
		slot = cs.nextIndex
		cs.nextIndex++
		if slot/genericBlockSize >= len(cs.blocks) {
			cs.blocks = append(cs.blocks, new([genericBlockSize]T))
		}
		cs.owners = append(cs.owners, id)
	}

	ptr := cs.at(slot)
	*ptr = item
	cs.slots.Put(id.Index(), slot)
	return ptr
}

func (cs *genericComponentStorage[T]) at(slot int) *T {
	return &cs.blocks[slot/genericBlockSize][slot%genericBlockSize]
}

// Get returns a pointer to the component of the entity at index, or nil.
func (cs *genericComponentStorage[T]) Get(index uint32) *T {
	slot, ok := cs.slots.Get(index)
	if !ok {
		return nil
	}
	return cs.at(slot)
}

// GetAny is Get behind an interface; it returns an untyped nil when absent.
func (cs *genericComponentStorage[T]) GetAny(index uint32) any {
	if ptr := cs.Get(index); ptr != nil {
		return ptr
	}
	return nil
}

// Take removes the component of the entity at index and returns it.
func (cs *genericComponentStorage[T]) Take(index uint32) (T, bool) {
	var zero T
	slot, ok := cs.slots.Get(index)
	if !ok {
		return zero, false
	}

	ptr := cs.at(slot)
	item := *ptr
	*ptr = zero // Zero out the value
	cs.owners[slot] = 0
	cs.freeSlots = append(cs.freeSlots, slot)
	cs.slots.Del(index)
	return item, true
}

// Delete removes the component of the entity at index, if any.
func (cs *genericComponentStorage[T]) Delete(index uint32) bool {
	_, ok := cs.Take(index)
	return ok
}

// Has checks if a component exists for the entity at index.
func (cs *genericComponentStorage[T]) Has(index uint32) bool {
	_, ok := cs.slots.Get(index)
	return ok
}

// Len returns the number of stored components.
func (cs *genericComponentStorage[T]) Len() int {
	return cs.slots.Len()
}

// Compact moves live components down over empty slots and drops unused blocks.
func (cs *genericComponentStorage[T]) Compact() {
	write := 0
	for read := 0; read < cs.nextIndex; read++ {
		owner := cs.owners[read]
		if owner == 0 {
			continue
		}
		if read != write {
			*cs.at(write) = *cs.at(read)
			cs.owners[write] = owner
			cs.slots.Put(owner.Index(), write)
		}
		write++
	}

	var zero T
	for slot := write; slot < cs.nextIndex; slot++ {
		*cs.at(slot) = zero
	}

	keep := (write + genericBlockSize - 1) / genericBlockSize
	clear(cs.blocks[keep:])
	cs.blocks = cs.blocks[:keep]
	cs.owners = cs.owners[:write]
	cs.freeSlots = cs.freeSlots[:0]
	cs.nextIndex = write
}

// Iter yields every stored component in slot order together with its owner.
func (cs *genericComponentStorage[T]) Iter() iter.Seq2[EntityId, *T] {
	return func(yield func(EntityId, *T) bool) {
		for slot := 0; slot < cs.nextIndex; slot++ {
			owner := cs.owners[slot]
			if owner == 0 {
				continue
			}
			if !yield(owner, cs.at(slot)) {
				return
			}
		}
	}
}
