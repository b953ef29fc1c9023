package integrators

import "math"

// Grid returns the uniform time grid over [t0, tf] with spacing h. Its
// length is floor((tf-t0)/h)+1 and its first element is exactly t0;
// the last point may fall short of tf when the span is not a multiple
// of h.
func Grid(t0, tf, h float64) []float64 {
	n := int(math.Floor((tf-t0)/h)) + 1
	ts := make([]float64, n)
	for i := range ts {
		ts[i] = t0 + float64(i)*h
	}
	return ts
}
