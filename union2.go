package variantfsm

import "reflect"

// Union2 is a closed union over two variant types. The zero value
// holds the zero A. Values are replaced whole; use the With methods to
// build a union holding a different member.
type Union2[A, B any] struct {
	tag Variant
	v1  A
	v2  B
}

// With1 returns a union holding v as its first member.
func (Union2[A, B]) With1(v A) Union2[A, B] {
	return Union2[A, B]{tag: V1, v1: v}
}

func (Union2[A, B]) With2(v B) Union2[A, B] {
	return Union2[A, B]{tag: V2, v2: v}
}

// Get1 returns the first member's payload and whether it is active.
func (u Union2[A, B]) Get1() (A, bool) {
	if u.tag != V1 {
		var zero A
		return zero, false
	}
	return u.v1, true
}

func (u Union2[A, B]) Get2() (B, bool) {
	if u.tag != V2 {
		var zero B
		return zero, false
	}
	return u.v2, true
}

func (u Union2[A, B]) Variant() Variant { return u.tag }

func (u Union2[A, B]) Value() any {
	switch u.tag {
	case V1:
		return u.v1
	default:
		return u.v2
	}
}

func (u Union2[A, B]) VariantName() string {
	switch u.tag {
	case V1:
		return nameOf[A]()
	default:
		return nameOf[B]()
	}
}

func (u Union2[A, B]) Is(variants ...Variant) bool { return isOneOf(u.tag, 2, variants) }

func (Union2[A, B]) variantTypes() []reflect.Type {
	return []reflect.Type{
		reflect.TypeFor[A](),
		reflect.TypeFor[B](),
	}
}

// Match2 is Match3 for Union2.
func Match2[A, B, R any](u Union2[A, B], f1 func(A) R, f2 func(B) R) R {
	mustHandlers(u, f1 != nil, f2 != nil)
	switch u.tag {
	case V1:
		return f1(u.v1)
	default:
		return f2(u.v2)
	}
}

// Next2 builds the next-state handlers for a Union2 machine.
func Next2[A, B any](f1 func(A) Union2[A, B], f2 func(B) Union2[A, B]) (Transition[Union2[A, B]], error) {
	if err := checkHandlers(Union2[A, B]{}, f1 != nil, f2 != nil); err != nil {
		return Transition[Union2[A, B]]{}, err
	}
	return Transition[Union2[A, B]]{apply: func(u Union2[A, B]) Union2[A, B] {
		switch u.tag {
		case V1:
			return f1(u.v1)
		default:
			return f2(u.v2)
		}
	}}, nil
}

// Act2 builds the in-place handlers for a Union2 machine.
func Act2[A, B any](f1 func(*A), f2 func(*B)) (Action[Union2[A, B]], error) {
	if err := checkHandlers(Union2[A, B]{}, f1 != nil, f2 != nil); err != nil {
		return Action[Union2[A, B]]{}, err
	}
	return Action[Union2[A, B]]{apply: func(u *Union2[A, B]) {
		switch u.tag {
		case V1:
			f1(&u.v1)
		default:
			f2(&u.v2)
		}
	}}, nil
}
