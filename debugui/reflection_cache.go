package debugui

import (
	"reflect"
	"sync"
)

// FieldInfo describes one exported struct field as the inspectors see it.
// Type and Kind are of the pointed-to value when Pointer is set.
type FieldInfo struct {
	Name    string
	Index   int
	Type    reflect.Type
	Kind    reflect.Kind
	Pointer bool
}

// ReflectionCache memoizes the exported fields of inspected struct types.
type ReflectionCache struct {
	fields sync.Map // reflect.Type -> []FieldInfo
}

func NewReflectionCache() *ReflectionCache {
	return &ReflectionCache{}
}

// Fields returns the exported fields of t, or nil if t is not a struct.
func (rc *ReflectionCache) Fields(t reflect.Type) []FieldInfo {
	if cached, ok := rc.fields.Load(t); ok {
		return cached.([]FieldInfo)
	}

	var fields []FieldInfo
	if t.Kind() == reflect.Struct {
		for i := range t.NumField() {
			sf := t.Field(i)
			if !sf.IsExported() {
				continue
			}
			info := FieldInfo{Name: sf.Name, Index: i, Type: sf.Type}
			if sf.Type.Kind() == reflect.Pointer {
				info.Pointer = true
				info.Type = sf.Type.Elem()
			}
			info.Kind = info.Type.Kind()
			fields = append(fields, info)
		}
	}

	actual, _ := rc.fields.LoadOrStore(t, fields)
	return actual.([]FieldInfo)
}

// Len returns the number of cached types.
func (rc *ReflectionCache) Len() int {
	n := 0
	rc.fields.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

var fieldCache = NewReflectionCache()
