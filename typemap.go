package variantfsm

import (
	"errors"
	"fmt"
	"reflect"
)

// Binding pairs a key type with the value stored under it.
type Binding struct {
	key   reflect.Type
	data  reflect.Type
	value any
}

// Bind associates v with the key type K.
func Bind[K, D any](v D) Binding {
	return Binding{
		key:   reflect.TypeFor[K](),
		data:  reflect.TypeFor[D](),
		value: v,
	}
}

type layout struct {
	keys  []reflect.Type
	data  []reflect.Type
	index map[reflect.Type]int
}

// TypeMap is a fixed list of values retrieved by the key type they were
// bound to. The key list is fixed at construction; copies share it and
// Assign replaces values without touching other copies.
type TypeMap struct {
	layout *layout
	values []any
}

// NewTypeMap builds a map from bindings. Key types must be distinct.
func NewTypeMap(bindings ...Binding) (TypeMap, error) {
	l := &layout{
		keys:  make([]reflect.Type, len(bindings)),
		data:  make([]reflect.Type, len(bindings)),
		index: make(map[reflect.Type]int, len(bindings)),
	}
	values := make([]any, len(bindings))

	var errs []error
	for i, b := range bindings {
		if _, ok := l.index[b.key]; ok {
			errs = append(errs, fmt.Errorf("%w: %s", ErrDuplicateKey, typeName(b.key)))
			continue
		}
		l.index[b.key] = i
		l.keys[i] = b.key
		l.data[i] = b.data
		values[i] = b.value
	}
	if err := errors.Join(errs...); err != nil {
		return TypeMap{}, err
	}

	return TypeMap{layout: l, values: values}, nil
}

// Assign replaces every value. bindings must repeat the key types and
// data types of the map in the same order.
func (m *TypeMap) Assign(bindings ...Binding) error {
	if len(bindings) != m.Len() {
		return fmt.Errorf("%w: have %d keys, got %d", ErrKeyMismatch, m.Len(), len(bindings))
	}
	values := make([]any, len(bindings))
	for i, b := range bindings {
		if b.key != m.layout.keys[i] {
			return fmt.Errorf("%w: position %d is %s, got %s", ErrKeyMismatch, i, typeName(m.layout.keys[i]), typeName(b.key))
		}
		if b.data != m.layout.data[i] {
			return fmt.Errorf("%w: %s holds %s, got %s", ErrTypeMismatch, typeName(b.key), typeName(m.layout.data[i]), typeName(b.data))
		}
		values[i] = b.value
	}
	m.values = values
	return nil
}

// Len returns the number of bound keys.
func (m TypeMap) Len() int {
	if m.layout == nil {
		return 0
	}
	return len(m.layout.keys)
}

// Keys returns the key type names in binding order.
func (m TypeMap) Keys() []string {
	names := make([]string, m.Len())
	for i := range names {
		names[i] = typeName(m.layout.keys[i])
	}
	return names
}

// Accessor reads the value bound to K from maps sharing the key list it
// was resolved against.
type Accessor[K, D any] struct {
	key   reflect.Type
	index int
}

// Resolve finds the position of K in m and checks that it holds a D.
func Resolve[K, D any](m TypeMap) (Accessor[K, D], error) {
	key := reflect.TypeFor[K]()
	if m.layout == nil {
		return Accessor[K, D]{}, fmt.Errorf("%w: %s", ErrKeyNotFound, typeName(key))
	}
	i, ok := m.layout.index[key]
	if !ok {
		return Accessor[K, D]{}, fmt.Errorf("%w: %s", ErrKeyNotFound, typeName(key))
	}
	if want := reflect.TypeFor[D](); m.layout.data[i] != want {
		return Accessor[K, D]{}, fmt.Errorf("%w: %s holds %s, not %s", ErrTypeMismatch, typeName(key), typeName(m.layout.data[i]), typeName(want))
	}
	return Accessor[K, D]{key: key, index: i}, nil
}

// Get returns the value bound to K in m. It panics if m does not bind K to
// a D at the resolved position.
func (a Accessor[K, D]) Get(m TypeMap) D {
	if a.key == nil || m.Len() <= a.index || m.layout.keys[a.index] != a.key {
		panic(fmt.Errorf("%w: %s", ErrKeyNotFound, typeName(reflect.TypeFor[K]())))
	}
	if want := reflect.TypeFor[D](); m.layout.data[a.index] != want {
		panic(fmt.Errorf("%w: %s holds %s, not %s", ErrTypeMismatch, typeName(a.key), typeName(m.layout.data[a.index]), typeName(want)))
	}
	v, _ := m.values[a.index].(D)
	return v
}

// Get resolves K and returns its value.
func Get[K, D any](m TypeMap) (D, error) {
	a, err := Resolve[K, D](m)
	if err != nil {
		var zero D
		return zero, err
	}
	return a.Get(m), nil
}

// MustGet is like Get but panics on error.
func MustGet[K, D any](m TypeMap) D {
	return Must(Resolve[K, D](m)).Get(m)
}
