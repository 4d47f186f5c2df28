// Package morse implements the Morse potential: closed-form
// spectroscopic constants and a nonlinear fit of Morse parameters to
// sampled curves. It complements the polynomial pipeline as a
// reference model with known analytic behavior.
package morse

import (
	"errors"
	"fmt"
	"math"

	"github.com/maorshutman/lm"

	"github.com/cwbudde/algo-spectro/unit"
)

var (
	// ErrInvalidParams indicates Morse parameters outside the physical
	// domain (De, A, Re must be positive).
	ErrInvalidParams = errors.New("morse: invalid potential parameters")

	// ErrInvalidMass indicates a non-positive reduced mass.
	ErrInvalidMass = errors.New("morse: reduced mass must be positive")

	// ErrInsufficientData indicates fewer samples than the four Morse
	// parameters.
	ErrInsufficientData = errors.New("morse: need at least four samples")

	// ErrLengthMismatch indicates separation and energy slices of
	// different lengths.
	ErrLengthMismatch = errors.New("morse: separation/energy length mismatch")

	// ErrFitFailed indicates the nonlinear solver did not produce a
	// usable parameter set.
	ErrFitFailed = errors.New("morse: fit did not converge")

	// ErrTooFewPoints indicates a sampling grid of fewer than two points.
	ErrTooFewPoints = errors.New("morse: need at least two grid points")

	// ErrInvalidRange indicates an empty or inverted sampling range.
	ErrInvalidRange = errors.New("morse: invalid range")
)

// Morse is the potential V(r) = E0 + De*(1 - exp(-A*(r-Re)))^2 in
// atomic units: E0 and De in Hartree, A in 1/Bohr, Re in Bohr.
type Morse struct {
	E0 float64
	De float64
	A  float64
	Re float64
}

// Validate checks that the well is physically meaningful.
func (m Morse) Validate() error {
	if m.De <= 0 || m.A <= 0 || m.Re <= 0 {
		return fmt.Errorf("%w: De=%g A=%g Re=%g", ErrInvalidParams, m.De, m.A, m.Re)
	}

	return nil
}

// Eval returns the potential at separation r in Bohr.
func (m Morse) Eval(r float64) float64 {
	g := 1 - math.Exp(-m.A*(r-m.Re))
	return m.E0 + m.De*g*g
}

// Sample evaluates the potential on n uniform points over [lo, hi].
func (m Morse) Sample(lo, hi float64, n int) ([]float64, []float64, error) {
	if n < 2 {
		return nil, nil, fmt.Errorf("%w: got %d", ErrTooFewPoints, n)
	}

	if hi <= lo {
		return nil, nil, fmt.Errorf("%w: [%g, %g]", ErrInvalidRange, lo, hi)
	}

	step := (hi - lo) / float64(n-1)

	r := make([]float64, n)
	e := make([]float64, n)

	for i := range r {
		r[i] = lo + float64(i)*step
		e[i] = m.Eval(r[i])
	}

	return r, e, nil
}

// Constants holds the closed-form spectroscopic constants of a Morse
// well, in cm⁻¹.
type Constants struct {
	We     float64
	WeXe   float64
	Be     float64
	AlphaE float64
}

// Constants returns the analytic constants for a reduced mass mu in
// unified atomic mass units. AlphaE uses the Pekeris relation, which
// is exact for a Morse well.
func (m Morse) Constants(mu float64) (Constants, error) {
	if err := m.Validate(); err != nil {
		return Constants{}, err
	}

	if mu <= 0 {
		return Constants{}, fmt.Errorf("%w: got %g", ErrInvalidMass, mu)
	}

	em := mu * unit.ElectronMassPerAMU

	we := unit.InvCmPerHartree * m.A * math.Sqrt(2*m.De/em)
	wexe := we * we / (4 * m.De * unit.InvCmPerHartree)
	be := unit.InvCmPerHartree * 0.5 / (em * m.Re * m.Re)
	alpha := 6*math.Sqrt(wexe*be*be*be)/we - 6*be*be/we

	return Constants{We: we, WeXe: wexe, Be: be, AlphaE: alpha}, nil
}

// Fit determines Morse parameters from sampled energies by
// Levenberg-Marquardt. A zero-valued init is replaced by a guess from
// the data: the minimum sample for E0 and Re, the well span for De.
func Fit(r, e []float64, init Morse) (Morse, error) {
	if len(r) != len(e) {
		return Morse{}, fmt.Errorf("%w: %d separations, %d energies", ErrLengthMismatch, len(r), len(e))
	}

	if len(r) < 4 {
		return Morse{}, fmt.Errorf("%w: have %d", ErrInsufficientData, len(r))
	}

	if init == (Morse{}) {
		init = guess(r, e)
	}

	residuals := func(dst, params []float64) {
		m := Morse{E0: params[0], De: params[1], A: params[2], Re: params[3]}
		for i := range dst {
			dst[i] = m.Eval(r[i]) - e[i]
		}
	}

	jacobian := lm.NumJac{Func: residuals}

	problem := lm.LMProblem{
		Dim:        4,
		Size:       len(r),
		Func:       residuals,
		Jac:        jacobian.Jac,
		InitParams: []float64{init.E0, init.De, init.A, init.Re},
		Tau:        1e-6,
		Eps1:       1e-8,
		Eps2:       1e-8,
	}

	results, err := lm.LM(problem, &lm.Settings{Iterations: 200, ObjectiveTol: 1e-16})
	if err != nil {
		return Morse{}, fmt.Errorf("%w: %v", ErrFitFailed, err)
	}

	out := Morse{
		E0: results.X[0],
		De: results.X[1],
		A:  results.X[2],
		Re: results.X[3],
	}

	for _, v := range results.X {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Morse{}, fmt.Errorf("%w: non-finite parameters", ErrFitFailed)
		}
	}

	return out, nil
}

// guess builds a starting point from the sampled well shape.
func guess(r, e []float64) Morse {
	minIdx := 0
	maxE := e[0]

	for i, v := range e {
		if v < e[minIdx] {
			minIdx = i
		}
		if v > maxE {
			maxE = v
		}
	}

	depth := maxE - e[minIdx]
	if depth <= 0 {
		depth = 0.1
	}

	return Morse{
		E0: e[minIdx],
		De: depth,
		A:  1,
		Re: r[minIdx],
	}
}
