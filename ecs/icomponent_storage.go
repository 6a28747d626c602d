package ecs

import "reflect"

// iComponentStorage is the type-erased view of a single component column.
// Storage uses it for operations that do not know the component type statically.
type iComponentStorage interface {
	ComponentType() reflect.Type
	Delete(index uint32) bool
	Has(index uint32) bool
	GetAny(index uint32) any
	Len() int
	Compact()
}
