package compare_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/odelab/odelab/internal/compare"
	"github.com/odelab/odelab/internal/ode"
)

func trajectory(states ...ode.State) *ode.Result {
	ts := make([]float64, len(states))
	for i := range ts {
		ts[i] = float64(i) * 0.1
	}
	return &ode.Result{Times: ts, States: states}
}

var _ = Describe("Against", func() {
	It("reports the largest elementwise absolute difference", func() {
		ref := trajectory(ode.State{1, 2}, ode.State{3, 4}, ode.State{5, 6})
		got := trajectory(ode.State{1, 2}, ode.State{3.5, 4}, ode.State{5, 5.8})

		stats, err := compare.Against(ref, got)
		Expect(err).NotTo(HaveOccurred())
		Expect(stats.MaxAbs).To(BeNumerically("~", 0.5, 1e-12))
		Expect(stats.ArgMaxAbs).To(Equal(1))
	})

	It("averages absolute error over every component of every point", func() {
		ref := trajectory(ode.State{0}, ode.State{0})
		got := trajectory(ode.State{1}, ode.State{3})

		stats, err := compare.Against(ref, got)
		Expect(err).NotTo(HaveOccurred())
		Expect(stats.MeanAbs).To(BeNumerically("~", 2.0, 1e-12))
	})

	It("never divides by zero where the reference is zero", func() {
		ref := trajectory(ode.State{0}, ode.State{0})
		got := trajectory(ode.State{0.001}, ode.State{0})

		stats, err := compare.Against(ref, got)
		Expect(err).NotTo(HaveOccurred())
		Expect(stats.MaxRel).NotTo(BeNumerically(">", 1e12))
		Expect(stats.MeanRel).NotTo(BeNumerically("<", 0))
	})

	It("returns zero stats for identical trajectories", func() {
		ref := trajectory(ode.State{1, -1}, ode.State{2, -2})

		stats, err := compare.Against(ref, ref)
		Expect(err).NotTo(HaveOccurred())
		Expect(stats.MaxAbs).To(BeZero())
		Expect(stats.MeanRel).To(BeZero())
	})

	It("rejects trajectories of different length", func() {
		ref := trajectory(ode.State{1}, ode.State{2})
		got := trajectory(ode.State{1})

		_, err := compare.Against(ref, got)
		Expect(err).To(HaveOccurred())
	})

	It("rejects mismatched state dimensions", func() {
		ref := trajectory(ode.State{1, 2}, ode.State{3, 4})
		got := trajectory(ode.State{1, 2}, ode.State{3})

		_, err := compare.Against(ref, got)
		Expect(err).To(HaveOccurred())
	})
})
