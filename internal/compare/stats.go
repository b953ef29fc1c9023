// Package compare computes pairwise error statistics between
// trajectories produced by different integration methods over the same
// grid. It is strictly downstream of the integrators: it never
// formats, prints or plots.
package compare

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/odelab/odelab/internal/ode"
)

// epsilon guards the relative-error denominator where the reference
// trajectory passes through zero.
const epsilon = 1e-12

// Stats summarizes the pointwise deviation of a trajectory from a
// reference trajectory of the same shape.
type Stats struct {
	MaxAbs  float64
	MeanAbs float64
	MaxRel  float64
	MeanRel float64

	// ArgMaxAbs is the grid index where MaxAbs occurs.
	ArgMaxAbs int
}

// Against compares got to ref pointwise. The two trajectories must
// have the same length and state dimension; absolute error is the
// elementwise difference, relative error divides by |ref|+epsilon.
func Against(ref, got *ode.Result) (Stats, error) {
	if len(ref.States) != len(got.States) {
		return Stats{}, fmt.Errorf("trajectory length mismatch: reference %d, candidate %d",
			len(ref.States), len(got.States))
	}
	if len(ref.States) == 0 {
		return Stats{}, fmt.Errorf("empty trajectories")
	}

	dim := len(ref.States[0])
	diff := make([]float64, dim)

	var s Stats
	count := 0
	for i := range ref.States {
		if len(got.States[i]) != dim {
			return Stats{}, fmt.Errorf("state dimension mismatch at point %d: reference %d, candidate %d",
				i, dim, len(got.States[i]))
		}

		floats.SubTo(diff, got.States[i], ref.States[i])
		for j := 0; j < dim; j++ {
			abs := math.Abs(diff[j])
			rel := abs / (math.Abs(ref.States[i][j]) + epsilon)

			if abs > s.MaxAbs {
				s.MaxAbs = abs
				s.ArgMaxAbs = i
			}
			if rel > s.MaxRel {
				s.MaxRel = rel
			}
			s.MeanAbs += abs
			s.MeanRel += rel
			count++
		}
	}

	s.MeanAbs /= float64(count)
	s.MeanRel /= float64(count)
	return s, nil
}
