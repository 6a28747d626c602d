package ecs

import (
	"iter"
)

// QueryRef iterates every entity holding a T and yields a copy of the component.
// Each call starts a fresh pass over the column.
func QueryRef[T any](s *Storage) iter.Seq2[EntityId, T] {
	return func(yield func(EntityId, T) bool) {
		column := storageFor[T](s, false)
		if column == nil {
			return
		}
		for id, ptr := range column.Iter() {
			if !yield(id, *ptr) {
				return
			}
		}
	}
}

// QueryMut iterates every entity holding a T and yields a pointer to the stored component.
func QueryMut[T any](s *Storage) iter.Seq2[EntityId, *T] {
	return func(yield func(EntityId, *T) bool) {
		column := storageFor[T](s, false)
		if column == nil {
			return
		}
		for id, ptr := range column.Iter() {
			if !yield(id, ptr) {
				return
			}
		}
	}
}

// Pair holds pointers to two components of the same entity.
type Pair[A, B any] struct {
	First  *A
	Second *B
}

// Join iterates entities that hold both an A and a B, in the order of the A column.
func Join[A, B any](s *Storage) iter.Seq2[EntityId, Pair[A, B]] {
	return func(yield func(EntityId, Pair[A, B]) bool) {
		first := storageFor[A](s, false)
		second := storageFor[B](s, false)
		if first == nil || second == nil {
			return
		}
		for id, a := range first.Iter() {
			b := second.Get(id.Index())
			if b == nil {
				continue
			}
			if !yield(id, Pair[A, B]{First: a, Second: b}) {
				return
			}
		}
	}
}

// Count returns the number of entities holding a T.
func Count[T any](s *Storage) int {
	column := storageFor[T](s, false)
	if column == nil {
		return 0
	}
	return column.Len()
}
