// Package solve provides the nonlinear stage solver used by the
// implicit integrators. It exposes a single entry point, [Newton],
// which finds a root of a vector residual from an initial guess under
// a fixed iteration budget and reports whether it actually converged.
package solve
