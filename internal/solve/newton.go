package solve

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/odelab/odelab/internal/ode"
)

const (
	DefaultTolerance = 1e-10
	DefaultMaxIter   = 50
)

// Options bounds a single nonlinear solve.
type Options struct {
	Tolerance float64
	MaxIter   int
}

func DefaultOptions() Options {
	return Options{Tolerance: DefaultTolerance, MaxIter: DefaultMaxIter}
}

func (o Options) withDefaults() Options {
	if o.Tolerance <= 0 {
		o.Tolerance = DefaultTolerance
	}
	if o.MaxIter <= 0 {
		o.MaxIter = DefaultMaxIter
	}
	return o
}

// Newton finds a root of the vector residual g starting from guess,
// using Newton iteration with a forward-difference Jacobian and a
// dense LU solve. It returns the last iterate together with a flag
// reporting whether the residual met tolerance within the iteration
// budget; it never returns an iterate silently as converged.
//
// The residual must map a vector to a vector of the same dimension.
// If the Jacobian turns out singular at some iterate, the update falls
// back to a scaled residual step rather than aborting.
func Newton(g func(ode.State) ode.State, guess ode.State, opt Options) (ode.State, bool) {
	opt = opt.withDefaults()

	y := guess.Clone()
	r := g(y)

	for iter := 0; iter < opt.MaxIter; iter++ {
		if r.MaxAbs() < opt.Tolerance {
			return y, true
		}

		dy := newtonStep(g, y, r)

		yNext := y.AddScaled(1, dy)
		rNext := g(yNext)

		// Halve the step while it makes the residual worse. Bounded:
		// after a few halvings the step is accepted as-is so the outer
		// budget stays the only loop that can run long.
		for damp := 0; damp < 4 && rNext.MaxAbs() > r.MaxAbs(); damp++ {
			dy = dy.Scale(0.5)
			yNext = y.AddScaled(1, dy)
			rNext = g(yNext)
		}

		y, r = yNext, rNext
	}

	return y, r.MaxAbs() < opt.Tolerance
}

// newtonStep solves J(y)*dy = -g(y) for dy, approximating the Jacobian
// column by column with forward differences.
func newtonStep(g func(ode.State) ode.State, y, r ode.State) ode.State {
	n := len(y)
	jac := mat.NewDense(n, n, nil)

	for j := 0; j < n; j++ {
		step := fdStep(y[j])
		yp := y.Clone()
		yp[j] += step
		rp := g(yp)
		for i := 0; i < n; i++ {
			jac.Set(i, j, (rp[i]-r[i])/step)
		}
	}

	rhs := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		rhs.SetVec(i, -r[i])
	}

	var lu mat.LU
	lu.Factorize(jac)

	var sol mat.VecDense
	if err := lu.SolveVecTo(&sol, false, rhs); err != nil {
		// Singular Jacobian at this iterate: take a short step against
		// the residual and let the next iteration re-linearize.
		return r.Scale(-0.1)
	}

	dy := make(ode.State, n)
	for i := 0; i < n; i++ {
		dy[i] = sol.AtVec(i)
	}
	return dy
}

// fdStep picks a forward-difference perturbation scaled to the
// component magnitude.
func fdStep(v float64) float64 {
	const sqrtEps = 1.4901161193847656e-08 // sqrt(machine epsilon)
	return sqrtEps * math.Max(1, math.Abs(v))
}
