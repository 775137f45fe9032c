package variantfsm

import "reflect"

// Union3 is a closed union over three variant types. The zero value
// holds the zero A. Values are replaced whole; use the With methods to
// build a union holding a different member.
type Union3[A, B, C any] struct {
	tag Variant
	v1  A
	v2  B
	v3  C
}

// With1 returns a union holding v as its first member.
func (Union3[A, B, C]) With1(v A) Union3[A, B, C] {
	return Union3[A, B, C]{tag: V1, v1: v}
}

// With2 returns a union holding v as its second member.
func (Union3[A, B, C]) With2(v B) Union3[A, B, C] {
	return Union3[A, B, C]{tag: V2, v2: v}
}

// With3 returns a union holding v as its third member.
func (Union3[A, B, C]) With3(v C) Union3[A, B, C] {
	return Union3[A, B, C]{tag: V3, v3: v}
}

// Get1 returns the first member's payload and whether it is active.
func (u Union3[A, B, C]) Get1() (A, bool) {
	if u.tag != V1 {
		var zero A
		return zero, false
	}
	return u.v1, true
}

// Get2 returns the second member's payload and whether it is active.
func (u Union3[A, B, C]) Get2() (B, bool) {
	if u.tag != V2 {
		var zero B
		return zero, false
	}
	return u.v2, true
}

// Get3 returns the third member's payload and whether it is active.
func (u Union3[A, B, C]) Get3() (C, bool) {
	if u.tag != V3 {
		var zero C
		return zero, false
	}
	return u.v3, true
}

func (u Union3[A, B, C]) Variant() Variant { return u.tag }

func (u Union3[A, B, C]) Value() any {
	switch u.tag {
	case V1:
		return u.v1
	case V2:
		return u.v2
	default:
		return u.v3
	}
}

func (u Union3[A, B, C]) VariantName() string {
	switch u.tag {
	case V1:
		return nameOf[A]()
	case V2:
		return nameOf[B]()
	default:
		return nameOf[C]()
	}
}

func (u Union3[A, B, C]) Is(variants ...Variant) bool { return isOneOf(u.tag, 3, variants) }

func (Union3[A, B, C]) variantTypes() []reflect.Type {
	return []reflect.Type{
		reflect.TypeFor[A](),
		reflect.TypeFor[B](),
		reflect.TypeFor[C](),
	}
}

// Match3 calls the function matching the active member of u and returns
// its result. Every function must be non-nil.
func Match3[A, B, C, R any](u Union3[A, B, C], f1 func(A) R, f2 func(B) R, f3 func(C) R) R {
	mustHandlers(u, f1 != nil, f2 != nil, f3 != nil)
	switch u.tag {
	case V1:
		return f1(u.v1)
	case V2:
		return f2(u.v2)
	default:
		return f3(u.v3)
	}
}

// Next3 builds the next-state handlers for a Union3 machine. Each function
// receives the active payload by value and returns the union to move to.
// A nil function is reported as ErrMissingHandler.
func Next3[A, B, C any](f1 func(A) Union3[A, B, C], f2 func(B) Union3[A, B, C], f3 func(C) Union3[A, B, C]) (Transition[Union3[A, B, C]], error) {
	if err := checkHandlers(Union3[A, B, C]{}, f1 != nil, f2 != nil, f3 != nil); err != nil {
		return Transition[Union3[A, B, C]]{}, err
	}
	return Transition[Union3[A, B, C]]{apply: func(u Union3[A, B, C]) Union3[A, B, C] {
		switch u.tag {
		case V1:
			return f1(u.v1)
		case V2:
			return f2(u.v2)
		default:
			return f3(u.v3)
		}
	}}, nil
}

// Act3 builds the in-place handlers for a Union3 machine. Each function
// receives a pointer to the active payload; use Stay for members that
// need no work.
func Act3[A, B, C any](f1 func(*A), f2 func(*B), f3 func(*C)) (Action[Union3[A, B, C]], error) {
	if err := checkHandlers(Union3[A, B, C]{}, f1 != nil, f2 != nil, f3 != nil); err != nil {
		return Action[Union3[A, B, C]]{}, err
	}
	return Action[Union3[A, B, C]]{apply: func(u *Union3[A, B, C]) {
		switch u.tag {
		case V1:
			f1(&u.v1)
		case V2:
			f2(&u.v2)
		default:
			f3(&u.v3)
		}
	}}, nil
}
