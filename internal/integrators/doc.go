// Package integrators implements fixed-step numerical methods for
// first-order vector ODEs, all sharing one calling convention:
// derivative function, initial state, time span and step size in,
// uniform time grid and trajectory out.
//
//   - [AB2]: explicit 2-step Adams-Bashforth, Euler bootstrap
//   - [AB4]: explicit 4-step Adams-Bashforth, RK4 bootstrap
//   - [AM2]: implicit 2-step Adams-Moulton, predictor-corrector
//   - [DIRK]: single-stage diagonally implicit Runge-Kutta
//
// Steps are strictly sequential: every recurrence reads one or more
// previous trajectory entries, so there is nothing to parallelize
// across time. The implicit methods delegate each step's stage
// equation to the solver in internal/solve and record non-convergence
// per step on the result instead of masking it.
package integrators
