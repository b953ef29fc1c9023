package integrators

import (
	"fmt"

	"github.com/odelab/odelab/internal/ode"
)

// Method is a fixed-step integrator. Integrate builds the uniform time
// grid for [t0, tf] with spacing h and fills the trajectory step by
// step; States[0] of the result is always a copy of x0 with no
// arithmetic applied.
//
// Parameter and dimension errors are fatal: no partial trajectory is
// returned. Stage-solver non-convergence is not fatal; it is recorded
// on Result.Errors with the step it belongs to.
type Method interface {
	Name() string
	Order() int
	Integrate(f ode.Func, x0 ode.State, t0, tf, h float64) (*ode.Result, error)
}

// All returns one instance of each method, reference-quality first.
func All() []Method {
	return []Method{NewAB4(), NewAB2(), NewAM2(), NewDIRK()}
}

// ByName looks a method up by its Name string.
func ByName(name string) (Method, error) {
	for _, m := range All() {
		if m.Name() == name {
			return m, nil
		}
	}
	return nil, fmt.Errorf("unknown method: %q", name)
}

func validate(x0 ode.State, t0, tf, h float64) error {
	if len(x0) == 0 {
		return ode.ErrEmptyState
	}
	if tf < t0 {
		return fmt.Errorf("%w: t0=%g, tf=%g", ode.ErrInvalidTimeSpan, t0, tf)
	}
	if h <= 0 {
		return fmt.Errorf("%w: h=%g", ode.ErrInvalidStepSize, h)
	}
	return nil
}

// eval calls the derivative function and checks the returned dimension
// on every evaluation, so a misbehaving f cannot silently broadcast.
func eval(f ode.Func, x ode.State, t float64) (ode.State, error) {
	dx := f(x, t)
	if len(dx) != len(x) {
		return nil, err2dim(len(x), len(dx))
	}
	return dx, nil
}

func err2dim(state, deriv int) error {
	return fmt.Errorf("%w: state %d, derivative %d", ode.ErrDimensionMismatch, state, deriv)
}

func fatal(method string, step int, t float64, err error) error {
	return &ode.StepError{Method: method, Step: step, Time: t, Err: err}
}
