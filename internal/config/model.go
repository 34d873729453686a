package config

import (
	"errors"
	"fmt"
	"strings"
)

// Model is the unified representation of a production plan request.
type Model struct {
	Targets []Target
}

// Target is one requested output rate in units per minute.
type Target struct {
	Name  string
	Speed float64
}

// Append adds targets to the model in order.
func (m *Model) Append(targets ...Target) {
	m.Targets = append(m.Targets, targets...)
}

// Names returns the target names in order.
func (m *Model) Names() []string {
	out := make([]string, 0, len(m.Targets))
	for _, t := range m.Targets {
		out = append(out, t.Name)
	}
	return out
}

// Validate checks that the model names at least one well-formed target.
// Rate checks are left to the propagator.
func (m *Model) Validate() error {
	if len(m.Targets) == 0 {
		return errors.New("no targets given: pass NAME=SPEED arguments or a plan file")
	}
	for i, t := range m.Targets {
		if t.Name == "" {
			return fmt.Errorf("target #%d has an empty name", i+1)
		}
		if strings.ContainsAny(t.Name, " \t\r\n") {
			return fmt.Errorf("target name %q must not contain whitespace", t.Name)
		}
	}
	return nil
}
