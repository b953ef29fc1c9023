// Package ode defines the core types shared by the fixed-step
// integrators:
//
//   - [State]: vector representing system state
//   - [Func]: right-hand side of the ODE (dx/dt = f(x, t))
//   - [Result]: time grid plus trajectory returned by every method
//   - [StepError]: per-step error attribution
//
// The package holds no algorithms; the methods themselves live in
// internal/integrators and the nonlinear stage solver in
// internal/solve.
package ode
