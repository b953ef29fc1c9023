package integrators

import "github.com/odelab/odelab/internal/ode"

// Multistep formulas need history the first steps cannot supply; these
// single-step schemes generate it.

// eulerStep advances one explicit Euler step. First order, which caps
// the accuracy of the very first interval for the 2-step methods.
func eulerStep(f ode.Func, x ode.State, t, h float64) (ode.State, error) {
	dx, err := eval(f, x, t)
	if err != nil {
		return nil, err
	}
	return x.AddScaled(h, dx), nil
}

// rk4Step advances one classical 4-stage Runge-Kutta step with the
// (1,2,2,1)/6 weights. Fourth order, matching the AB4 main formula.
func rk4Step(f ode.Func, x ode.State, t, h float64) (ode.State, error) {
	n := len(x)

	k1, err := eval(f, x, t)
	if err != nil {
		return nil, err
	}
	k2, err := eval(f, x.AddScaled(0.5*h, k1), t+0.5*h)
	if err != nil {
		return nil, err
	}
	k3, err := eval(f, x.AddScaled(0.5*h, k2), t+0.5*h)
	if err != nil {
		return nil, err
	}
	k4, err := eval(f, x.AddScaled(h, k3), t+h)
	if err != nil {
		return nil, err
	}

	result := make(ode.State, n)
	h6 := h / 6.0
	for i := 0; i < n; i++ {
		result[i] = x[i] + h6*(k1[i]+2*k2[i]+2*k3[i]+k4[i])
	}
	return result, nil
}
