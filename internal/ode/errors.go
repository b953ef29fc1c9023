package ode

import (
	"errors"
	"fmt"
)

// Domain errors for integration calls.
var (
	// ErrInvalidTimeSpan indicates the end time precedes the start time.
	ErrInvalidTimeSpan = errors.New("ode: end time before start time")

	// ErrInvalidStepSize indicates a zero or negative step size.
	ErrInvalidStepSize = errors.New("ode: step size must be positive")

	// ErrEmptyState indicates an initial state with no components.
	ErrEmptyState = errors.New("ode: initial state is empty")

	// ErrDimensionMismatch indicates the derivative function returned a
	// vector whose dimension differs from the state's.
	ErrDimensionMismatch = errors.New("ode: derivative dimension differs from state")

	// ErrNoConvergence indicates the stage solver exhausted its
	// iteration budget without meeting tolerance.
	ErrNoConvergence = errors.New("ode: stage solver did not converge")
)

// StepError attributes a condition to a specific step of an
// integration, so callers can decide whether the trajectory is still
// usable past that point.
type StepError struct {
	Method string
	Step   int
	Time   float64
	Err    error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s: step %d (t=%.6g): %v", e.Method, e.Step, e.Time, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}
