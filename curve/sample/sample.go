// Package sample evaluates fitted potential curves on dense grids for
// plotting and export.
package sample

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-spectro/curve/fit"
)

var (
	// ErrTooFewPoints indicates a grid of fewer than two points.
	ErrTooFewPoints = errors.New("sample: need at least two grid points")

	// ErrInvalidRange indicates an empty or inverted sampling range.
	ErrInvalidRange = errors.New("sample: invalid range")
)

// gridMargin extends the sampled range slightly past the observations
// on each side, in Bohr, so the curve's edges are visible in plots.
const gridMargin = 0.05

// Points is a sampled curve: aligned separation (Bohr) and energy
// (Hartree) axes.
type Points struct {
	R []float64
	E []float64
}

// Curve samples the fitted curve on n uniform points spanning the
// observed separation range plus a small margin.
func Curve(res fit.Result, n int) (Points, error) {
	return Range(res, res.RMin-gridMargin, res.RMax+gridMargin, n)
}

// Range samples the fitted curve on n uniform points over [lo, hi] in
// Bohr. Sampling outside the observed range is allowed but the fit is
// only trustworthy near its data.
func Range(res fit.Result, lo, hi float64, n int) (Points, error) {
	if err := res.Validate(); err != nil {
		return Points{}, err
	}

	if n < 2 {
		return Points{}, fmt.Errorf("%w: got %d", ErrTooFewPoints, n)
	}

	if hi <= lo {
		return Points{}, fmt.Errorf("%w: [%g, %g]", ErrInvalidRange, lo, hi)
	}

	step := (hi - lo) / float64(n-1)

	pts := Points{
		R: make([]float64, n),
		E: make([]float64, n),
	}

	for i := range pts.R {
		r := lo + float64(i)*step

		pts.R[i] = r
		pts.E[i] = res.Eval(r)
	}

	return pts, nil
}
