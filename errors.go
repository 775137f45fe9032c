package variantfsm

import "errors"

var (
	// ErrMissingHandler is returned when a handler set lacks a function for a variant.
	ErrMissingHandler = errors.New("missing handler")

	// ErrDuplicateVariant is returned when a union lists the same type twice.
	ErrDuplicateVariant = errors.New("duplicate variant type")

	// ErrUnknownVariant is the panic value for a tag a union does not have.
	ErrUnknownVariant = errors.New("unknown variant")

	// ErrNoTarget is returned by RunUntil when nothing could end the run.
	ErrNoTarget = errors.New("no target variant and no step limit")

	// ErrStepLimit is returned by RunUntil when the step budget runs out.
	ErrStepLimit = errors.New("step limit reached")

	// ErrDuplicateKey is returned when a TypeMap binds the same key type twice.
	ErrDuplicateKey = errors.New("duplicate key type")

	// ErrKeyNotFound is returned when a key type is not bound in a TypeMap.
	ErrKeyNotFound = errors.New("key type not found")

	// ErrTypeMismatch is returned when a key is bound to a different data type.
	ErrTypeMismatch = errors.New("data type mismatch")

	// ErrKeyMismatch is returned when Assign does not repeat the original key list.
	ErrKeyMismatch = errors.New("key list mismatch")
)
