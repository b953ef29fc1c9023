package integrators

import (
	"github.com/odelab/odelab/internal/ode"
	"github.com/odelab/odelab/internal/solve"
)

// AM2 is the implicit 2-step Adams-Moulton method (order 2) run as a
// predictor-corrector: an explicit AB2 step predicts the next state,
// then the trapezoidal corrector equation
//
//	x - (x_prev + h*(0.5*f(x, t) + 0.5*f_prev)) = 0
//
// is solved for x with the predictor as initial guess. Euler bootstrap,
// same as AB2.
type AM2 struct {
	solver solve.Options
}

func NewAM2() *AM2 {
	return &AM2{solver: solve.DefaultOptions()}
}

// NewAM2WithSolver overrides the stage solver's tolerance and
// iteration budget.
func NewAM2WithSolver(opt solve.Options) *AM2 {
	return &AM2{solver: opt}
}

func (m *AM2) Name() string { return "adams-moulton-2" }
func (m *AM2) Order() int   { return 2 }

func (m *AM2) Integrate(f ode.Func, x0 ode.State, t0, tf, h float64) (*ode.Result, error) {
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

	n := len(x0)
	for i := 2; i < len(ts); i++ {
		kPrev, err := eval(f, xs[i-1], ts[i-1])
		if err != nil {
			return nil, fatal(m.Name(), i, ts[i], err)
		}
		kPrev2, err := eval(f, xs[i-2], ts[i-2])
		if err != nil {
			return nil, fatal(m.Name(), i, ts[i], err)
		}

		// AB2 predictor, used as the corrector's initial guess.
		pred := make(ode.State, n)
		for j := range pred {
			pred[j] = xs[i-1][j] + h*(1.5*kPrev[j]-0.5*kPrev2[j])
		}

		// Captured by value so the residual cannot alias loop state.
		xPrev := xs[i-1]
		tNext := ts[i]

		var evalErr error
		residual := func(x ode.State) ode.State {
			kNext := f(x, tNext)
			if len(kNext) != n {
				evalErr = fatal(m.Name(), i, tNext, err2dim(n, len(kNext)))
				return make(ode.State, n)
			}
			r := make(ode.State, n)
			for j := range r {
				r[j] = x[j] - (xPrev[j] + h*(0.5*kNext[j]+0.5*kPrev[j]))
			}
			return r
		}

		x, ok := solve.Newton(residual, pred, m.solver)
		if evalErr != nil {
			return nil, evalErr
		}
		if !ok {
			res.Errors = append(res.Errors, &ode.StepError{
				Method: m.Name(), Step: i, Time: ts[i], Err: ode.ErrNoConvergence,
			})
		}
		xs[i] = x
	}

	return res, nil
}
