package ode

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestStateClone(t *testing.T) {
	s := State{1, 2, 3}
	c := s.Clone()

	c[0] = 99
	if s[0] != 1 {
		t.Error("clone should not share backing array")
	}
}

func TestStateIsValid(t *testing.T) {
	if !(State{1, -2, 0}).IsValid() {
		t.Error("finite state should be valid")
	}
	if (State{1, math.NaN()}).IsValid() {
		t.Error("NaN state should be invalid")
	}
	if (State{math.Inf(1)}).IsValid() {
		t.Error("Inf state should be invalid")
	}
}

func TestStateArithmetic(t *testing.T) {
	a := State{1, 2}
	b := State{3, -1}

	d := a.Sub(b)
	if d[0] != -2 || d[1] != 3 {
		t.Errorf("Sub: got %v", d)
	}

	s := a.AddScaled(2, b)
	if s[0] != 7 || s[1] != 0 {
		t.Errorf("AddScaled: got %v", s)
	}

	if got := (State{3, 4}).Norm(); math.Abs(got-5) > 1e-12 {
		t.Errorf("Norm: got %g", got)
	}
	if got := (State{-3, 2}).MaxAbs(); got != 3 {
		t.Errorf("MaxAbs: got %g", got)
	}
}

func TestResultHelpers(t *testing.T) {
	r := &Result{
		Times:  []float64{0, 1},
		States: []State{{1, 10}, {2, 20}},
	}

	if f := r.Final(); f[0] != 2 || f[1] != 20 {
		t.Errorf("Final: got %v", f)
	}
	comp := r.Component(1)
	if len(comp) != 2 || comp[0] != 10 || comp[1] != 20 {
		t.Errorf("Component: got %v", comp)
	}
}

func TestStepError(t *testing.T) {
	err := &StepError{Method: "adams-moulton-2", Step: 7, Time: 0.7, Err: ErrNoConvergence}

	if !errors.Is(err, ErrNoConvergence) {
		t.Error("StepError should unwrap to its cause")
	}
	msg := err.Error()
	if !strings.Contains(msg, "step 7") || !strings.Contains(msg, "adams-moulton-2") {
		t.Errorf("message should name method and step: %q", msg)
	}
}
