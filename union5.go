package variantfsm

import "reflect"

// Union5 is a closed union over five variant types. The zero value
// holds the zero A. Values are replaced whole; use the With methods to
// build a union holding a different member.
type Union5[A, B, C, D, E any] struct {
	tag Variant
	v1  A
	v2  B
	v3  C
	v4  D
	v5  E
}

// With1 returns a union holding v as its first member.
func (Union5[A, B, C, D, E]) With1(v A) Union5[A, B, C, D, E] {
	return Union5[A, B, C, D, E]{tag: V1, v1: v}
}

func (Union5[A, B, C, D, E]) With2(v B) Union5[A, B, C, D, E] {
	return Union5[A, B, C, D, E]{tag: V2, v2: v}
}

func (Union5[A, B, C, D, E]) With3(v C) Union5[A, B, C, D, E] {
	return Union5[A, B, C, D, E]{tag: V3, v3: v}
}

func (Union5[A, B, C, D, E]) With4(v D) Union5[A, B, C, D, E] {
	return Union5[A, B, C, D, E]{tag: V4, v4: v}
}

func (Union5[A, B, C, D, E]) With5(v E) Union5[A, B, C, D, E] {
	return Union5[A, B, C, D, E]{tag: V5, v5: v}
}

// Get1 returns the first member's payload and whether it is active.
func (u Union5[A, B, C, D, E]) Get1() (A, bool) {
	if u.tag != V1 {
		var zero A
		return zero, false
	}
	return u.v1, true
}

func (u Union5[A, B, C, D, E]) Get2() (B, bool) {
	if u.tag != V2 {
		var zero B
		return zero, false
	}
	return u.v2, true
}

func (u Union5[A, B, C, D, E]) Get3() (C, bool) {
	if u.tag != V3 {
		var zero C
		return zero, false
	}
	return u.v3, true
}

func (u Union5[A, B, C, D, E]) Get4() (D, bool) {
	if u.tag != V4 {
		var zero D
		return zero, false
	}
	return u.v4, true
}

func (u Union5[A, B, C, D, E]) Get5() (E, bool) {
	if u.tag != V5 {
		var zero E
		return zero, false
	}
	return u.v5, true
}

func (u Union5[A, B, C, D, E]) Variant() Variant { return u.tag }

func (u Union5[A, B, C, D, E]) Value() any {
	switch u.tag {
	case V1:
		return u.v1
	case V2:
		return u.v2
	case V3:
		return u.v3
	case V4:
		return u.v4
	default:
		return u.v5
	}
}

func (u Union5[A, B, C, D, E]) VariantName() string {
	switch u.tag {
	case V1:
		return nameOf[A]()
	case V2:
		return nameOf[B]()
	case V3:
		return nameOf[C]()
	case V4:
		return nameOf[D]()
	default:
		return nameOf[E]()
	}
}

func (u Union5[A, B, C, D, E]) Is(variants ...Variant) bool { return isOneOf(u.tag, 5, variants) }

func (Union5[A, B, C, D, E]) variantTypes() []reflect.Type {
	return []reflect.Type{
		reflect.TypeFor[A](),
		reflect.TypeFor[B](),
		reflect.TypeFor[C](),
		reflect.TypeFor[D](),
		reflect.TypeFor[E](),
	}
}

// Match5 is Match3 for Union5.
func Match5[A, B, C, D, E, R any](u Union5[A, B, C, D, E], f1 func(A) R, f2 func(B) R, f3 func(C) R, f4 func(D) R, f5 func(E) R) R {
	mustHandlers(u, f1 != nil, f2 != nil, f3 != nil, f4 != nil, f5 != nil)
	switch u.tag {
	case V1:
		return f1(u.v1)
	case V2:
		return f2(u.v2)
	case V3:
		return f3(u.v3)
	case V4:
		return f4(u.v4)
	default:
		return f5(u.v5)
	}
}

// Next5 builds the next-state handlers for a Union5 machine.
func Next5[A, B, C, D, E any](f1 func(A) Union5[A, B, C, D, E], f2 func(B) Union5[A, B, C, D, E], f3 func(C) Union5[A, B, C, D, E], f4 func(D) Union5[A, B, C, D, E], f5 func(E) Union5[A, B, C, D, E]) (Transition[Union5[A, B, C, D, E]], error) {
	if err := checkHandlers(Union5[A, B, C, D, E]{}, f1 != nil, f2 != nil, f3 != nil, f4 != nil, f5 != nil); err != nil {
		return Transition[Union5[A, B, C, D, E]]{}, err
	}
	return Transition[Union5[A, B, C, D, E]]{apply: func(u Union5[A, B, C, D, E]) Union5[A, B, C, D, E] {
		switch u.tag {
		case V1:
			return f1(u.v1)
		case V2:
			return f2(u.v2)
		case V3:
			return f3(u.v3)
		case V4:
			return f4(u.v4)
		default:
			return f5(u.v5)
		}
	}}, nil
}

// Act5 builds the in-place handlers for a Union5 machine.
func Act5[A, B, C, D, E any](f1 func(*A), f2 func(*B), f3 func(*C), f4 func(*D), f5 func(*E)) (Action[Union5[A, B, C, D, E]], error) {
	if err := checkHandlers(Union5[A, B, C, D, E]{}, f1 != nil, f2 != nil, f3 != nil, f4 != nil, f5 != nil); err != nil {
		return Action[Union5[A, B, C, D, E]]{}, err
	}
	return Action[Union5[A, B, C, D, E]]{apply: func(u *Union5[A, B, C, D, E]) {
		switch u.tag {
		case V1:
			f1(&u.v1)
		case V2:
			f2(&u.v2)
		case V3:
			f3(&u.v3)
		case V4:
			f4(&u.v4)
		default:
			f5(&u.v5)
		}
	}}, nil
}
