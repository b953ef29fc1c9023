package integrators

import "github.com/odelab/odelab/internal/ode"

// AB2 is the explicit 2-step Adams-Bashforth method (order 2),
// bootstrapped with a single Euler step.
type AB2 struct{}

func NewAB2() *AB2 {
	return &AB2{}
}

func (m *AB2) Name() string { return "adams-bashforth-2" }
func (m *AB2) Order() int   { return 2 }

func (m *AB2) Integrate(f ode.Func, x0 ode.State, t0, tf, h float64) (*ode.Result, error) {
	if err := validate(x0, t0, tf, h); err != nil {
		return nil, err
	}

	ts := Grid(t0, tf, h)
	xs := make([]ode.State, len(ts))
	xs[0] = x0.Clone()
	res := &ode.Result{Times: ts, States: xs}

	if len(ts) == 1 {
		return res, nil
	}

	x1, err := eulerStep(f, xs[0], ts[0], h)
	if err != nil {
		return nil, fatal(m.Name(), 1, ts[0], err)
	}
	xs[1] = x1

	for i := 2; i < len(ts); i++ {
		k1, err := eval(f, xs[i-1], ts[i-1])
		if err != nil {
			return nil, fatal(m.Name(), i, ts[i], err)
		}
		k0, err := eval(f, xs[i-2], ts[i-2])
		if err != nil {
			return nil, fatal(m.Name(), i, ts[i], err)
		}

		x := make(ode.State, len(x0))
		for j := range x {
			x[j] = xs[i-1][j] + h*(1.5*k1[j]-0.5*k0[j])
		}
		xs[i] = x
	}

	return res, nil
}
