package propagate

import (
	"fmt"
	"strings"
)

// AlreadyFixedError is returned when a speed is declared on a node whose
// speed was already fixed in this run.
type AlreadyFixedError struct {
	Name  string
	Speed float64
}

func (e *AlreadyFixedError) Error() string {
	return fmt.Sprintf("speed of '%s' is already fixed at %g/min", e.Name, e.Speed)
}

// TargetConflictError is returned when a target is also an ingredient of
// another node in the graph, so its rate would be both declared and derived.
type TargetConflictError struct {
	Name      string
	Consumers []string
}

func (e *TargetConflictError) Error() string {
	return fmt.Sprintf("target '%s' is also consumed by %s; declare the consumers as targets instead",
		e.Name, strings.Join(e.Consumers, ", "))
}

// DuplicateTargetError is returned when the same resource is listed twice
// as a target.
type DuplicateTargetError struct {
	Name string
}

func (e *DuplicateTargetError) Error() string {
	return fmt.Sprintf("target '%s' is listed more than once", e.Name)
}

// InvalidSpeedError is returned for a negative or non-finite target speed.
type InvalidSpeedError struct {
	Name  string
	Speed float64
}

func (e *InvalidSpeedError) Error() string {
	return fmt.Sprintf("invalid speed %g for '%s': must be a finite, non-negative rate", e.Speed, e.Name)
}

// StalledError is returned when propagation finishes with nodes whose
// consumers never all became fixed.
type StalledError struct {
	Pending []string
}

func (e *StalledError) Error() string {
	return fmt.Sprintf("propagation stalled with %d unresolved node(s): %s", len(e.Pending), strings.Join(e.Pending, ", "))
}

// StaleGraphError is returned when a consumer edge reaches a node that was
// already fixed, which happens if the graph grew after propagation began.
type StaleGraphError struct {
	Name string
}

func (e *StaleGraphError) Error() string {
	return fmt.Sprintf("node '%s' gained a consumer after its speed was fixed; reset the graph and plan again", e.Name)
}
