package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// ConvergenceStatus – immutable value object
// ---------------------------------------------------------------------------

// ConvergenceStatus represents the lifecycle stage of a fixed-point
// affordability calculation.
type ConvergenceStatus struct {
	value string
}

const (
	convergenceStatusInitial       = "INITIAL"
	convergenceStatusIterating     = "ITERATING"
	convergenceStatusConverged     = "CONVERGED"
	convergenceStatusMaxIterations = "MAX_ITERATIONS_REACHED"
)

var (
	ConvergenceStatusInitial       = ConvergenceStatus{value: convergenceStatusInitial}
	ConvergenceStatusIterating     = ConvergenceStatus{value: convergenceStatusIterating}
	ConvergenceStatusConverged     = ConvergenceStatus{value: convergenceStatusConverged}
	ConvergenceStatusMaxIterations = ConvergenceStatus{value: convergenceStatusMaxIterations}
)

var validConvergenceStatuses = map[string]ConvergenceStatus{
	convergenceStatusInitial:       ConvergenceStatusInitial,
	convergenceStatusIterating:     ConvergenceStatusIterating,
	convergenceStatusConverged:     ConvergenceStatusConverged,
	convergenceStatusMaxIterations: ConvergenceStatusMaxIterations,
}

// NewConvergenceStatus creates a ConvergenceStatus from a raw string.
func NewConvergenceStatus(s string) (ConvergenceStatus, error) {
	v, ok := validConvergenceStatuses[s]
	if !ok {
		return ConvergenceStatus{}, fmt.Errorf("invalid convergence status: %q", s)
	}
	return v, nil
}

// String returns the string representation of the status.
func (s ConvergenceStatus) String() string { return s.value }

// IsZero returns true if the status has not been initialised.
func (s ConvergenceStatus) IsZero() bool { return s.value == "" }

// IsTerminal returns true when the calculation has finished, whether or not
// the DTI ceiling actually converged.
func (s ConvergenceStatus) IsTerminal() bool {
	return s.value == convergenceStatusConverged || s.value == convergenceStatusMaxIterations
}

// Equal returns true when both statuses carry the same value.
func (s ConvergenceStatus) Equal(other ConvergenceStatus) bool {
	return s.value == other.value
}
