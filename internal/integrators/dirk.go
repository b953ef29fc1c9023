package integrators

import (
	"math"

	"github.com/odelab/odelab/internal/ode"
	"github.com/odelab/odelab/internal/solve"
)

// Radau-IIA-flavored stage abscissa.
var dirkGamma = (3 - math.Sqrt(3)) / 6

// DIRK is a single-stage diagonally implicit Runge-Kutta method. Each
// step solves the stage equation
//
//	f(x_prev + h*gamma*k1, t_prev + h*gamma) - k1 = 0
//
// for the stage derivative k1, with f(x_prev, t_prev) as initial
// guess, then advances directly: x = x_prev + h*k1. The update is a
// plain assignment once k1 is known; only the stage equation needs the
// nonlinear solver.
type DIRK struct {
	solver solve.Options
}

func NewDIRK() *DIRK {
	return &DIRK{solver: solve.DefaultOptions()}
}

// NewDIRKWithSolver overrides the stage solver's tolerance and
// iteration budget.
func NewDIRKWithSolver(opt solve.Options) *DIRK {
	return &DIRK{solver: opt}
}

func (m *DIRK) Name() string { return "dirk-radau" }

// Order reports the observed convergence order: with a single stage at
// gamma != 1/2 the scheme is first order.
func (m *DIRK) Order() int { return 1 }

func (m *DIRK) Integrate(f ode.Func, x0 ode.State, t0, tf, h float64) (*ode.Result, error) {
	if err := validate(x0, t0, tf, h); err != nil {
		return nil, err
	}

	ts := Grid(t0, tf, h)
	xs := make([]ode.State, len(ts))
	xs[0] = x0.Clone()
	res := &ode.Result{Times: ts, States: xs}

	n := len(x0)
	for i := 1; i < len(ts); i++ {
		// Captured by value so the stage residual cannot alias loop
		// state.
		xPrev := xs[i-1]
		tPrev := ts[i-1]
		tStage := tPrev + h*dirkGamma

		guess, err := eval(f, xPrev, tPrev)
		if err != nil {
			return nil, fatal(m.Name(), i, tPrev, err)
		}

		var evalErr error
		residual := func(k ode.State) ode.State {
			fk := f(xPrev.AddScaled(h*dirkGamma, k), tStage)
			if len(fk) != n {
				evalErr = fatal(m.Name(), i, tStage, err2dim(n, len(fk)))
				return make(ode.State, n)
			}
			r := make(ode.State, n)
			for j := range r {
				r[j] = fk[j] - k[j]
			}
			return r
		}

		k1, ok := solve.Newton(residual, guess, m.solver)
		if evalErr != nil {
			return nil, evalErr
		}
		if !ok {
			res.Errors = append(res.Errors, &ode.StepError{
				Method: m.Name(), Step: i, Time: ts[i], Err: ode.ErrNoConvergence,
			})
		}

		xs[i] = xPrev.AddScaled(h, k1)
	}

	return res, nil
}
