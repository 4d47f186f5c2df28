// Package fit performs least-squares polynomial regression of
// potential energy on internuclear separation.
//
// Fits are computed in atomic units: separations in Bohr, energies in
// Hartree. Inputs in Angstrom are converted up front (WithUnit). The
// separation axis is re-centered on the lowest-energy sample before
// the design matrix is built, which keeps the Vandermonde columns well
// scaled at high orders; Result.Center records the offset and Eval
// applies it transparently.
package fit

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-spectro/curve/poly"
	"github.com/cwbudde/algo-spectro/curve/table"
	"github.com/cwbudde/algo-spectro/internal/lsq"
	"github.com/cwbudde/algo-spectro/unit"
)

var (
	// ErrInvalidOrder indicates a polynomial order below one.
	ErrInvalidOrder = errors.New("fit: polynomial order must be at least 1")

	// ErrLengthMismatch indicates separation and energy slices of
	// different lengths.
	ErrLengthMismatch = errors.New("fit: separation/energy length mismatch")

	// ErrInsufficientData indicates fewer distinct separations than the
	// order+1 coefficients being determined.
	ErrInsufficientData = errors.New("fit: insufficient distinct separations")

	// ErrSingularFit indicates a numerically singular design matrix.
	ErrSingularFit = errors.New("fit: singular design matrix")

	// ErrWeightLength indicates a weight slice whose length differs from
	// the data.
	ErrWeightLength = errors.New("fit: weight length mismatch")

	// ErrColumnRange indicates an energy column index outside the table.
	ErrColumnRange = errors.New("fit: column index out of range")
)

// Result is a fitted potential curve. Coeffs are ascending powers of
// (r - Center) with r in Bohr and energies in Hartree.
type Result struct {
	Label  string
	Order  int
	Coeffs poly.Polynomial
	Center float64

	// Unit is the separation unit of Coeffs, Center and the range
	// fields. Inputs are converted on the way in, so it is always Bohr.
	Unit unit.Length

	// RMin and RMax are the observed separation range in Bohr.
	RMin float64
	RMax float64

	// RMS and MaxResidual summarize the unweighted fit residuals in
	// Hartree. Cond is the solver's estimate of the conditioning of the
	// design matrix.
	RMS         float64
	MaxResidual float64
	Cond        float64
}

// Eval returns the fitted energy at separation r in Bohr.
func (r Result) Eval(x float64) float64 {
	return r.Coeffs.Eval(x - r.Center)
}

// Expanded returns the fit polynomial re-expanded in absolute
// separation, so Expanded()[i] multiplies r^i directly.
func (r Result) Expanded() poly.Polynomial {
	return r.Coeffs.Shift(-r.Center)
}

// Validate checks that the result is structurally usable: a positive
// order with a matching coefficient count and a nonempty range.
func (r Result) Validate() error {
	if r.Order < 1 {
		return ErrInvalidOrder
	}

	if len(r.Coeffs) != r.Order+1 {
		return fmt.Errorf("fit: result has %d coefficients, want %d", len(r.Coeffs), r.Order+1)
	}

	if r.RMax < r.RMin {
		return fmt.Errorf("fit: result range [%g, %g] is inverted", r.RMin, r.RMax)
	}

	return nil
}

type config struct {
	label   string
	unit    unit.Length
	weights []float64
}

// Option adjusts a fit.
type Option func(*config)

// WithLabel attaches a name to the fit, used in diagnostics.
func WithLabel(label string) Option {
	return func(cfg *config) {
		cfg.label = label
	}
}

// WithUnit declares the unit of the separation inputs. The default is
// Bohr; Angstrom inputs are converted before fitting.
func WithUnit(u unit.Length) Option {
	return func(cfg *config) {
		cfg.unit = u
	}
}

// WithWeights applies per-point weights to the residuals, typically
// 1/sigma of each observation. Points with weight zero are ignored by
// the solver but still counted in the residual summary.
func WithWeights(w []float64) Option {
	return func(cfg *config) {
		cfg.weights = w
	}
}

// Polynomial fits energies e against separations r with a polynomial
// of the given order. The returned error wraps ErrInsufficientData
// when the distinct separations cannot determine order+1 coefficients,
// and ErrSingularFit when the solver rejects the design matrix.
func Polynomial(r, e []float64, order int, opts ...Option) (Result, error) {
	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if order < 1 {
		return Result{}, fmt.Errorf("%w: got %d", ErrInvalidOrder, order)
	}

	if len(r) != len(e) {
		return Result{}, fmt.Errorf("%w: %d separations, %d energies", ErrLengthMismatch, len(r), len(e))
	}

	if cfg.weights != nil && len(cfg.weights) != len(r) {
		return Result{}, fmt.Errorf("%w: %d weights for %d points", ErrWeightLength, len(cfg.weights), len(r))
	}

	distinct := table.DistinctCount(r)
	if distinct < order+1 {
		return Result{}, fmt.Errorf("%w: %s order %d needs %d, have %d",
			ErrInsufficientData, labelOr(cfg.label, "fit"), order, order+1, distinct)
	}

	rb := unit.ToBohr(r, cfg.unit)

	center := rb[argmin(e)]

	xs := make([]float64, len(rb))
	rmin, rmax := rb[0], rb[0]
	for i, v := range rb {
		xs[i] = v - center

		if v < rmin {
			rmin = v
		}
		if v > rmax {
			rmax = v
		}
	}

	cols := designColumns(xs, order)

	rhs := append([]float64(nil), e...)
	if cfg.weights != nil {
		for _, col := range cols {
			vecmath.MulBlockInPlace(col, cfg.weights)
		}
		vecmath.MulBlockInPlace(rhs, cfg.weights)
	}

	coeffs, cond, err := lsq.Solve(cols, rhs)
	if err != nil {
		if errors.Is(err, lsq.ErrRankDeficient) {
			return Result{}, fmt.Errorf("%w: %s order %d (condition %.3g): %v",
				ErrSingularFit, labelOr(cfg.label, "fit"), order, cond, err)
		}

		return Result{}, fmt.Errorf("fit: %s: %w", labelOr(cfg.label, "solve"), err)
	}

	out := Result{
		Label:  cfg.label,
		Order:  order,
		Coeffs: poly.Polynomial(coeffs),
		Center: center,
		Unit:   unit.Bohr,
		RMin:   rmin,
		RMax:   rmax,
		Cond:   cond,
	}

	sumSq := 0.0
	for i, x := range xs {
		res := out.Coeffs.Eval(x) - e[i]

		sumSq += res * res
		if abs := math.Abs(res); abs > out.MaxResidual {
			out.MaxResidual = abs
		}
	}
	out.RMS = math.Sqrt(sumSq / float64(len(xs)))

	return out, nil
}

// Column fits one energy column of a table. The column name becomes
// the fit label unless WithLabel overrides it.
func Column(tbl table.Table, index, order int, opts ...Option) (Result, error) {
	if err := tbl.Validate(); err != nil {
		return Result{}, fmt.Errorf("fit: %w", err)
	}

	if index < 0 || index >= len(tbl.Columns) {
		return Result{}, fmt.Errorf("%w: %d of %d", ErrColumnRange, index, len(tbl.Columns))
	}

	col := tbl.Columns[index]

	merged := append([]Option{WithLabel(col.Name)}, opts...)

	return Polynomial(tbl.R, col.E, order, merged...)
}

// designColumns builds the Vandermonde columns 1, x, x^2, ... by
// repeated elementwise multiplication.
func designColumns(xs []float64, order int) [][]float64 {
	cols := make([][]float64, order+1)

	ones := make([]float64, len(xs))
	for i := range ones {
		ones[i] = 1
	}
	cols[0] = ones

	for k := 1; k <= order; k++ {
		cols[k] = make([]float64, len(xs))
		vecmath.MulBlock(cols[k], cols[k-1], xs)
	}

	return cols
}

func argmin(e []float64) int {
	best := 0
	for i, v := range e {
		if v < e[best] {
			best = i
		}
	}

	return best
}

func labelOr(label, fallback string) string {
	if label == "" {
		return fallback
	}

	return label
}
