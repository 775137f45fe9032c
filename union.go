package variantfsm

import (
	"errors"
	"fmt"
	"reflect"
)

// Union is a closed set of typed alternatives with exactly one member active.
// It is implemented by Union2 through Union5 and cannot be implemented
// outside this package.
type Union interface {
	// Variant returns the position of the active member.
	Variant() Variant
	// VariantName returns the type name of the active member.
	VariantName() string
	// Value returns the active payload.
	Value() any
	// Is reports whether the active member is one of variants. It is false
	// for an empty list and panics on a tag the union does not have.
	Is(variants ...Variant) bool

	variantTypes() []reflect.Type
}

// Holds reports whether the active member of u has exactly the type S.
func Holds[S any](u Union) bool {
	return u.variantTypes()[u.Variant()] == reflect.TypeFor[S]()
}

// VariantNames lists the member type names of u in declaration order.
func VariantNames(u Union) []string {
	types := u.variantTypes()
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = typeName(t)
	}
	return names
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	if name := t.Name(); name != "" {
		return name
	}
	return t.String()
}

func nameOf[T any]() string {
	return typeName(reflect.TypeFor[T]())
}

// isOneOf reports whether active is in variants. Every tag must be below n,
// the member count of the union.
func isOneOf(active Variant, n int, variants []Variant) bool {
	found := false
	for _, v := range variants {
		if int(v) >= n {
			panic(fmt.Errorf("%w: %s on a union of %d members", ErrUnknownVariant, v, n))
		}
		if v == active {
			found = true
		}
	}
	return found
}

// checkHandlers reports every variant of u whose handler is absent.
func checkHandlers(u Union, present ...bool) error {
	types := u.variantTypes()
	var errs []error
	for i, ok := range present {
		if !ok {
			errs = append(errs, fmt.Errorf("%w for %s (%s)", ErrMissingHandler, Variant(i), typeName(types[i])))
		}
	}
	return errors.Join(errs...)
}

func mustHandlers(u Union, present ...bool) {
	if err := checkHandlers(u, present...); err != nil {
		panic(err)
	}
}
