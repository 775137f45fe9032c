package variantfsm

import "reflect"

// Union4 is a closed union over four variant types. The zero value
// holds the zero A. Values are replaced whole; use the With methods to
// build a union holding a different member.
type Union4[A, B, C, D any] struct {
	tag Variant
	v1  A
	v2  B
	v3  C
	v4  D
}

// With1 returns a union holding v as its first member.
func (Union4[A, B, C, D]) With1(v A) Union4[A, B, C, D] {
	return Union4[A, B, C, D]{tag: V1, v1: v}
}

func (Union4[A, B, C, D]) With2(v B) Union4[A, B, C, D] {
	return Union4[A, B, C, D]{tag: V2, v2: v}
}

func (Union4[A, B, C, D]) With3(v C) Union4[A, B, C, D] {
	return Union4[A, B, C, D]{tag: V3, v3: v}
}

func (Union4[A, B, C, D]) With4(v D) Union4[A, B, C, D] {
	return Union4[A, B, C, D]{tag: V4, v4: v}
}

// Get1 returns the first member's payload and whether it is active.
func (u Union4[A, B, C, D]) Get1() (A, bool) {
	if u.tag != V1 {
		var zero A
		return zero, false
	}
	return u.v1, true
}

func (u Union4[A, B, C, D]) Get2() (B, bool) {
	if u.tag != V2 {
		var zero B
		return zero, false
	}
	return u.v2, true
}

func (u Union4[A, B, C, D]) Get3() (C, bool) {
	if u.tag != V3 {
		var zero C
		return zero, false
	}
	return u.v3, true
}

func (u Union4[A, B, C, D]) Get4() (D, bool) {
	if u.tag != V4 {
		var zero D
		return zero, false
	}
	return u.v4, true
}

func (u Union4[A, B, C, D]) Variant() Variant { return u.tag }

func (u Union4[A, B, C, D]) Value() any {
	switch u.tag {
	case V1:
		return u.v1
	case V2:
		return u.v2
	case V3:
		return u.v3
	default:
		return u.v4
	}
}

func (u Union4[A, B, C, D]) VariantName() string {
	switch u.tag {
	case V1:
		return nameOf[A]()
	case V2:
		return nameOf[B]()
	case V3:
		return nameOf[C]()
	default:
		return nameOf[D]()
	}
}

func (u Union4[A, B, C, D]) Is(variants ...Variant) bool { return isOneOf(u.tag, 4, variants) }

func (Union4[A, B, C, D]) variantTypes() []reflect.Type {
	return []reflect.Type{
		reflect.TypeFor[A](),
		reflect.TypeFor[B](),
		reflect.TypeFor[C](),
		reflect.TypeFor[D](),
	}
}

// Match4 is Match3 for Union4.
func Match4[A, B, C, D, R any](u Union4[A, B, C, D], f1 func(A) R, f2 func(B) R, f3 func(C) R, f4 func(D) R) R {
	mustHandlers(u, f1 != nil, f2 != nil, f3 != nil, f4 != nil)
	switch u.tag {
	case V1:
		return f1(u.v1)
	case V2:
		return f2(u.v2)
	case V3:
		return f3(u.v3)
	default:
		return f4(u.v4)
	}
}

// Next4 builds the next-state handlers for a Union4 machine.
func Next4[A, B, C, D any](f1 func(A) Union4[A, B, C, D], f2 func(B) Union4[A, B, C, D], f3 func(C) Union4[A, B, C, D], f4 func(D) Union4[A, B, C, D]) (Transition[Union4[A, B, C, D]], error) {
	if err := checkHandlers(Union4[A, B, C, D]{}, f1 != nil, f2 != nil, f3 != nil, f4 != nil); err != nil {
		return Transition[Union4[A, B, C, D]]{}, err
	}
	return Transition[Union4[A, B, C, D]]{apply: func(u Union4[A, B, C, D]) Union4[A, B, C, D] {
		switch u.tag {
		case V1:
			return f1(u.v1)
		case V2:
			return f2(u.v2)
		case V3:
			return f3(u.v3)
		default:
			return f4(u.v4)
		}
	}}, nil
}

// Act4 builds the in-place handlers for a Union4 machine.
func Act4[A, B, C, D any](f1 func(*A), f2 func(*B), f3 func(*C), f4 func(*D)) (Action[Union4[A, B, C, D]], error) {
	if err := checkHandlers(Union4[A, B, C, D]{}, f1 != nil, f2 != nil, f3 != nil, f4 != nil); err != nil {
		return Action[Union4[A, B, C, D]]{}, err
	}
	return Action[Union4[A, B, C, D]]{apply: func(u *Union4[A, B, C, D]) {
		switch u.tag {
		case V1:
			f1(&u.v1)
		case V2:
			f2(&u.v2)
		case V3:
			f3(&u.v3)
		default:
			f4(&u.v4)
		}
	}}, nil
}
