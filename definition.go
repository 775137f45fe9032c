package variantfsm

import (
	"errors"
	"fmt"
	"reflect"
)

// Validate checks that the member types of u are pairwise distinct.
func Validate(u Union) error {
	types := u.variantTypes()
	seen := make(map[reflect.Type]Variant, len(types))
	var errs []error
	for i, t := range types {
		if first, ok := seen[t]; ok {
			errs = append(errs, fmt.Errorf("%w: %s used by %s and %s", ErrDuplicateVariant, typeName(t), first, Variant(i)))
			continue
		}
		seen[t] = Variant(i)
	}
	return errors.Join(errs...)
}
