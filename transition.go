package variantfsm

// Transition is an exhaustive set of next-state handlers for the union U,
// built by Next2 through Next5.
type Transition[U Union] struct {
	apply  func(U) U
	guard  func(U) bool
	action func(from, to U)
}

// TransitionOption is a functional option for configuring a Transition
type TransitionOption[U Union] func(*Transition[U])

// WithGuard sets a guard condition for the transition. A rejected guard
// leaves the machine untouched.
func WithGuard[U Union](fn func(U) bool) TransitionOption[U] {
	return func(t *Transition[U]) {
		t.guard = fn
	}
}

// WithGuards sets multiple guard conditions that must ALL pass (AND logic)
func WithGuards[U Union](guards ...func(U) bool) TransitionOption[U] {
	return func(t *Transition[U]) {
		t.guard = func(u U) bool {
			for _, g := range guards {
				if !g(u) {
					return false
				}
			}
			return true
		}
	}
}

// WithAction sets an action to execute between computing the next state
// and storing it.
func WithAction[U Union](fn func(from, to U)) TransitionOption[U] {
	return func(t *Transition[U]) {
		t.action = fn
	}
}

// With returns a copy of t with opts applied.
func (t Transition[U]) With(opts ...TransitionOption[U]) Transition[U] {
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

// Action is an exhaustive set of in-place handlers for the union U,
// built by Act2 through Act5.
type Action[U Union] struct {
	apply func(*U)
}

// Stay is an Act handler that leaves the payload as it is.
func Stay[T any](*T) {}

// Must panics if err is non-nil and returns set otherwise. It is meant
// for handler sets declared at package level or in constructors.
func Must[T any](set T, err error) T {
	if err != nil {
		panic(err)
	}
	return set
}
