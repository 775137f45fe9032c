package variantfsm

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Snapshot is a point-in-time description of a machine for diagnostics.
// Payload is rendered by yaml.v3, which only sees exported fields: a
// payload without any renders as {}. Variant and Tag always identify the
// active member.
type Snapshot struct {
	ID             string `json:"id" yaml:"id"`
	Variant        string `json:"variant" yaml:"variant"`
	Tag            string `json:"tag" yaml:"tag"`
	LastTransition string `json:"last_transition,omitempty" yaml:"last_transition,omitempty"`
	Steps          uint64 `json:"steps" yaml:"steps"`
	Payload        any    `json:"payload,omitempty" yaml:"payload,omitempty"`
}

// Snapshot captures the machine's current state.
func (m *Machine[U]) Snapshot() Snapshot {
	return Snapshot{
		ID:             m.id,
		Variant:        m.current.VariantName(),
		Tag:            m.current.Variant().String(),
		LastTransition: m.last,
		Steps:          m.steps,
		Payload:        m.current.Value(),
	}
}

// SnapshotYAML renders Snapshot as YAML.
func (m *Machine[U]) SnapshotYAML() ([]byte, error) {
	data, err := yaml.Marshal(m.Snapshot())
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}
	return data, nil
}
