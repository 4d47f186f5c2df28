package sample

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-spectro/curve/fit"
	"github.com/cwbudde/algo-spectro/internal/testutil"
)

func fitted(t *testing.T) fit.Result {
	t.Helper()

	r, e := testutil.HarmonicCurve(-0.5, 0.2, 2.0, 1.5, 2.5, 11)

	res, err := fit.Polynomial(r, e, 2)
	if err != nil {
		t.Fatalf("fit failed: %v", err)
	}

	return res
}

func TestCurve_SpansRangeWithMargin(t *testing.T) {
	res := fitted(t)

	pts, err := Curve(res, 101)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(pts.R) != 101 || len(pts.E) != 101 {
		t.Fatalf("expected 101 points, got %d/%d", len(pts.R), len(pts.E))
	}

	testutil.RequireNearlyEqual(t, pts.R[0], res.RMin-0.05, 1e-12)
	testutil.RequireNearlyEqual(t, pts.R[100], res.RMax+0.05, 1e-12)
}

func TestCurve_MatchesEval(t *testing.T) {
	res := fitted(t)

	pts, err := Curve(res, 25)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := range pts.R {
		testutil.RequireNearlyEqual(t, pts.E[i], res.Eval(pts.R[i]), 1e-12)
	}

	testutil.RequireFinite(t, pts.E)
}

func TestCurve_UniformSpacing(t *testing.T) {
	res := fitted(t)

	pts, err := Curve(res, 11)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	step := pts.R[1] - pts.R[0]
	for i := 2; i < len(pts.R); i++ {
		if math.Abs(pts.R[i]-pts.R[i-1]-step) > 1e-12 {
			t.Errorf("non-uniform spacing at %d", i)
		}
	}
}

func TestRange_CustomWindow(t *testing.T) {
	res := fitted(t)

	pts, err := Range(res, 1.8, 2.2, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.RequireNearlyEqual(t, pts.R[0], 1.8, 1e-12)
	testutil.RequireNearlyEqual(t, pts.R[4], 2.2, 1e-12)
}

func TestRange_TooFewPoints(t *testing.T) {
	res := fitted(t)

	for _, n := range []int{1, 0, -3} {
		if _, err := Range(res, 1, 2, n); !errors.Is(err, ErrTooFewPoints) {
			t.Errorf("n=%d: expected ErrTooFewPoints, got %v", n, err)
		}
	}
}

func TestRange_InvalidRange(t *testing.T) {
	res := fitted(t)

	if _, err := Range(res, 2.5, 1.5, 10); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("expected ErrInvalidRange, got %v", err)
	}
}

func TestRange_RejectsInvalidResult(t *testing.T) {
	if _, err := Range(fit.Result{}, 1, 2, 10); !errors.Is(err, fit.ErrInvalidOrder) {
		t.Errorf("expected fit.ErrInvalidOrder, got %v", err)
	}
}
