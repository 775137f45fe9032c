package variantfsm

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// Machine holds the current state of a union-typed FSM and the
// description of its last transition. A Machine is not safe for
// concurrent use.
type Machine[U Union] struct {
	id      string
	current U
	last    string
	steps   uint64

	logger              *slog.Logger
	stateChangeCallback func(from, to string)
}

type machineConfig struct {
	id                  string
	logger              *slog.Logger
	stateChangeCallback func(from, to string)
}

// MachineOption is a functional option for configuring a Machine
type MachineOption func(*machineConfig)

// WithLogger sets the logger for the machine
func WithLogger(logger *slog.Logger) MachineOption {
	return func(c *machineConfig) {
		c.logger = logger
	}
}

// WithID sets the identifier used in logs and snapshots. A random UUID
// is used by default.
func WithID(id string) MachineOption {
	return func(c *machineConfig) {
		c.id = id
	}
}

// WithStateChangeCallback sets a callback invoked after each transition
// that changes the active variant.
func WithStateChangeCallback(fn func(from, to string)) MachineOption {
	return func(c *machineConfig) {
		c.stateChangeCallback = fn
	}
}

// NewMachine creates a machine in the initial state.
func NewMachine[U Union](initial U, opts ...MachineOption) (*Machine[U], error) {
	if err := Validate(initial); err != nil {
		return nil, fmt.Errorf("invalid union: %w", err)
	}

	cfg := machineConfig{logger: Logger}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.id == "" {
		cfg.id = uuid.NewString()
	}
	if cfg.logger == nil {
		cfg.logger = Logger
	}

	return &Machine[U]{
		id:                  cfg.id,
		current:             initial,
		logger:              cfg.logger,
		stateChangeCallback: cfg.stateChangeCallback,
	}, nil
}

// OnStateChange sets a callback invoked after each transition that
// changes the active variant.
func (m *Machine[U]) OnStateChange(fn func(from, to string)) {
	m.stateChangeCallback = fn
}

// ID returns the machine identifier.
func (m *Machine[U]) ID() string {
	return m.id
}

// State returns a copy of the current state.
func (m *Machine[U]) State() U {
	return m.current
}

// CurrentState returns the type name of the active variant.
func (m *Machine[U]) CurrentState() string {
	return m.current.VariantName()
}

// IsState reports whether the active variant is one of variants.
// It is always false for an empty list and panics on a tag outside the
// union (V4 on a Union3).
func (m *Machine[U]) IsState(variants ...Variant) bool {
	return m.current.Is(variants...)
}

// LastTransition describes the most recent transition as "from -> to".
// It is empty until Next succeeds once.
func (m *Machine[U]) LastTransition() string {
	return m.last
}

// Steps returns the number of transitions taken so far.
func (m *Machine[U]) Steps() uint64 {
	return m.steps
}

// Next replaces the current state with the result of the handler for the
// active variant. It returns false, leaving the machine untouched, when
// the transition's guard rejects the current state.
func (m *Machine[U]) Next(t Transition[U]) bool {
	if t.apply == nil {
		panic(fmt.Errorf("%w: transition was not built with a Next constructor", ErrMissingHandler))
	}

	from := m.current
	if t.guard != nil && !t.guard(from) {
		m.logger.Debug("guard rejected transition", "machine", m.id, "state", from.VariantName())
		return false
	}

	to := t.apply(from)
	if t.action != nil {
		t.action(from, to)
	}

	fromName, toName := from.VariantName(), to.VariantName()
	m.last = fromName + " -> " + toName
	m.current = to
	m.steps++

	m.logger.Debug("transition", "machine", m.id, "from", fromName, "to", toName, "step", m.steps)

	if m.stateChangeCallback != nil && from.Variant() != to.Variant() {
		m.stateChangeCallback(fromName, toName)
	}

	return true
}

// Act runs the handler for the active variant against the current payload
// in place. The active variant and the last transition are unchanged.
func (m *Machine[U]) Act(a Action[U]) {
	if a.apply == nil {
		panic(fmt.Errorf("%w: action was not built with an Act constructor", ErrMissingHandler))
	}
	a.apply(&m.current)
}

// Step calls Next followed by Act and reports whether Next moved.
func (m *Machine[U]) Step(t Transition[U], a Action[U]) bool {
	moved := m.Next(t)
	m.Act(a)
	return moved
}

// RunUntil steps the machine until it is in one of the until variants and
// returns the number of steps taken. A positive limit caps the number of
// steps; RunUntil then returns ErrStepLimit. Without until variants a
// positive limit is required, otherwise ErrNoTarget is returned at once.
// With limit <= 0 the handlers must be able to reach one of until.
func (m *Machine[U]) RunUntil(t Transition[U], a Action[U], limit int, until ...Variant) (int, error) {
	if len(until) == 0 && limit <= 0 {
		return 0, ErrNoTarget
	}

	n := 0
	for !m.IsState(until...) {
		if limit > 0 && n >= limit {
			return n, fmt.Errorf("%w: %d steps, state %s", ErrStepLimit, n, m.current.VariantName())
		}
		m.Step(t, a)
		n++
	}

	m.logger.Debug("run finished", "machine", m.id, "state", m.current.VariantName(), "steps", n)
	return n, nil
}
