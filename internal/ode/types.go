package ode

import "math"

// State is a fixed-dimension vector of real values. The dimension is
// established by the initial state of an integration and stays constant
// for the whole call.
type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Norm returns the Euclidean norm.
func (s State) Norm() float64 {
	sum := 0.0
	for _, v := range s {
		sum += v * v
	}
	return math.Sqrt(sum)
}

// MaxAbs returns the infinity norm.
func (s State) MaxAbs() float64 {
	m := 0.0
	for _, v := range s {
		if a := math.Abs(v); a > m {
			m = a
		}
	}
	return m
}

func (s State) Sub(other State) State {
	result := make(State, len(s))
	for i := range s {
		result[i] = s[i] - other[i]
	}
	return result
}

func (s State) Scale(factor float64) State {
	result := make(State, len(s))
	for i := range s {
		result[i] = s[i] * factor
	}
	return result
}

// AddScaled returns s + factor*other.
func (s State) AddScaled(factor float64, other State) State {
	result := make(State, len(s))
	for i := range s {
		result[i] = s[i] + factor*other[i]
	}
	return result
}

// Func is the right-hand side of the ODE dx/dt = f(x, t). It must
// return a vector of the same dimension as x and be safe to call any
// number of times: the implicit methods evaluate it repeatedly while
// solving each step's stage equation.
type Func func(x State, t float64) State

// Result holds the output of one integration call: the uniform time
// grid, one state per grid point (States[0] is the initial state,
// untouched by arithmetic), and any per-step conditions that did not
// abort the run. The caller owns all three slices.
type Result struct {
	Times  []float64
	States []State

	// Errors collects recoverable per-step conditions, currently only
	// stage-solver non-convergence. The trajectory is still complete
	// when this is non-empty; entries identify the affected steps.
	Errors []error
}

// Final returns the state at the last grid point.
func (r *Result) Final() State {
	return r.States[len(r.States)-1]
}

// Component extracts one state component across the whole trajectory,
// for plotting and export.
func (r *Result) Component(idx int) []float64 {
	out := make([]float64, len(r.States))
	for i, s := range r.States {
		out[i] = s[idx]
	}
	return out
}
