package poly

import (
	"math"
	"testing"
)

const tolerance = 1e-12

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestEval_Horner(t *testing.T) {
	// p(x) = 1 - 2x + 3x^2.
	p := New(1, -2, 3)

	cases := []struct {
		x, want float64
	}{
		{0, 1},
		{1, 2},
		{-1, 6},
		{2, 9},
		{0.5, 0.75},
	}

	for _, tc := range cases {
		if got := p.Eval(tc.x); !almostEqual(got, tc.want, tolerance) {
			t.Errorf("p(%v): expected %v, got %v", tc.x, tc.want, got)
		}
	}
}

func TestEval_Empty(t *testing.T) {
	var p Polynomial
	if got := p.Eval(3.7); got != 0 {
		t.Errorf("empty polynomial evaluated to %v", got)
	}
}

func TestDerivative(t *testing.T) {
	// d/dx (1 + 2x + 3x^2 + 4x^3) = 2 + 6x + 12x^2.
	d := New(1, 2, 3, 4).Derivative()

	want := []float64{2, 6, 12}
	if len(d) != len(want) {
		t.Fatalf("expected %d coefficients, got %d", len(want), len(d))
	}

	for i := range want {
		if !almostEqual(d[i], want[i], tolerance) {
			t.Errorf("coefficient %d: expected %v, got %v", i, want[i], d[i])
		}
	}
}

func TestDerivative_ConstantIsEmpty(t *testing.T) {
	if d := New(5).Derivative(); len(d) != 0 {
		t.Errorf("expected empty derivative, got %v", d)
	}
}

func TestDerivativeN(t *testing.T) {
	p := New(0, 0, 0, 1) // x^3

	d2 := p.DerivativeN(2)
	if len(d2) != 2 || d2[0] != 0 || d2[1] != 6 {
		t.Errorf("expected [0 6], got %v", d2)
	}

	d0 := p.DerivativeN(0)
	d0[0] = 99
	if p[0] == 99 {
		t.Error("DerivativeN(0) aliased the receiver")
	}
}

func TestTaylorAt_BinomialExpansion(t *testing.T) {
	// p(x) = x^3 about x=1: (1+h)^3 = 1 + 3h + 3h^2 + h^3.
	p := New(0, 0, 0, 1)

	got := p.TaylorAt(1, 4)
	want := []float64{1, 3, 3, 1}

	for i := range want {
		if !almostEqual(got[i], want[i], tolerance) {
			t.Errorf("term %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestTaylorAt_PastDegreeIsZero(t *testing.T) {
	got := New(2, -1).TaylorAt(0.5, 5)

	for i := 2; i < len(got); i++ {
		if got[i] != 0 {
			t.Errorf("term %d: expected 0, got %v", i, got[i])
		}
	}
}

func TestShift_MatchesEvaluation(t *testing.T) {
	p := New(1.5, -0.5, 2, 0.25)
	q := p.Shift(0.7)

	for _, x := range []float64{-2, -0.3, 0, 1, 4.2} {
		if !almostEqual(q.Eval(x), p.Eval(x+0.7), 1e-10) {
			t.Errorf("q(%v) != p(%v)", x, x+0.7)
		}
	}
}

func TestShift_Inverse(t *testing.T) {
	p := New(3, 1, -2, 0.5)
	back := p.Shift(1.3).Shift(-1.3)

	for i := range p {
		if !almostEqual(back[i], p[i], 1e-10) {
			t.Errorf("coefficient %d: expected %v, got %v", i, p[i], back[i])
		}
	}
}

func TestTrim(t *testing.T) {
	p := Polynomial{1, 2, 0, 0}
	if got := p.Trim(); len(got) != 2 {
		t.Errorf("expected length 2, got %v", got)
	}

	if got := (Polynomial{0, 0}).Trim(); len(got) != 0 {
		t.Errorf("expected empty, got %v", got)
	}
}

func TestDegree(t *testing.T) {
	if New(1, 2, 3).Degree() != 2 {
		t.Error("wrong degree for quadratic")
	}

	var p Polynomial
	if p.Degree() != -1 {
		t.Error("empty polynomial should have degree -1")
	}
}
