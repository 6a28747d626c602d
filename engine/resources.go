package engine

import (
	"reflect"
	"sort"
)

// Resources is a type-keyed store holding at most one value per type.
// Every value lives in its own heap box, so pointers returned by separate
// GetMut calls are independent of each other and of the map itself.
type Resources struct {
	values map[reflect.Type]any
}

// NewResources creates an empty registry.
func NewResources() *Resources {
	return &Resources{
		values: make(map[reflect.Type]any),
	}
}

// Insert stores value as the resource of type T, replacing any previous value.
// Pointers obtained earlier keep referring to the replaced value.
func Insert[T any](r *Resources, value T) {
	r.values[reflect.TypeFor[T]()] = &value
}

// Get returns a copy of the resource of type T.
func Get[T any](r *Resources) (T, bool) {
	if ptr, ok := GetMut[T](r); ok {
		return *ptr, true
	}
	var zero T
	return zero, false
}

// GetMut returns a pointer to the stored resource of type T.
func GetMut[T any](r *Resources) (*T, bool) {
	boxed, ok := r.values[reflect.TypeFor[T]()]
	if !ok {
		return nil, false
	}
	ptr, ok := boxed.(*T)
	return ptr, ok
}

// GetOrInsert returns the resource of type T, inserting fallback first if absent.
func GetOrInsert[T any](r *Resources, fallback T) *T {
	if ptr, ok := GetMut[T](r); ok {
		return ptr
	}
	Insert(r, fallback)
	ptr, _ := GetMut[T](r)
	return ptr
}

// Remove deletes the resource of type T and returns it.
func Remove[T any](r *Resources) (T, bool) {
	ptr, ok := GetMut[T](r)
	if !ok {
		var zero T
		return zero, false
	}
	delete(r.values, reflect.TypeFor[T]())
	return *ptr, true
}

// Contains reports whether a resource of type T is present.
func Contains[T any](r *Resources) bool {
	_, ok := r.values[reflect.TypeFor[T]()]
	return ok
}

// Len returns the number of stored resources.
func (r *Resources) Len() int {
	return len(r.values)
}

// Clear drops every stored resource.
func (r *Resources) Clear() {
	clear(r.values)
}

// Each calls fn for every resource, ordered by type name. value is the pointer
// to the stored box.
func (r *Resources) Each(fn func(typ reflect.Type, value any)) {
	types := make([]reflect.Type, 0, len(r.values))
	for typ := range r.values {
		types = append(types, typ)
	}
	sort.Slice(types, func(i, j int) bool {
		return types[i].String() < types[j].String()
	})
	for _, typ := range types {
		fn(typ, r.values[typ])
	}
}
