// Package viz renders trajectories and comparison reports for the
// terminal. Strictly downstream of the integrators.
package viz

import (
	"github.com/guptarohit/asciigraph"

	"github.com/odelab/odelab/internal/ode"
)

// Component plots one state component of a trajectory against time.
func Component(res *ode.Result, idx int, caption string) string {
	return asciigraph.Plot(res.Component(idx),
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(caption),
	)
}
