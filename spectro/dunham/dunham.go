package dunham

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-spectro/curve/fit"
	"github.com/cwbudde/algo-spectro/internal/polyroot"
	"github.com/cwbudde/algo-spectro/unit"
)

// Errors returned by the Dunham analysis.
var (
	ErrInvalidMass       = errors.New("dunham: reduced mass must be positive")
	ErrNoEquilibrium     = errors.New("dunham: no bound-state minimum in range")
	ErrInsufficientOrder = errors.New("dunham: fit order too low for constant")
	ErrUnknownConstant   = errors.New("dunham: unknown constant name")
)

const (
	// minOrderAlphaE and minOrderAnharmonic gate the constants that need
	// higher Taylor terms than low-order fits provide.
	minOrderAlphaE     = 3
	minOrderAnharmonic = 6

	// rootImagTol is the absolute imaginary tolerance below which a
	// derivative root counts as real.
	rootImagTol = 1e-8

	// rangeMargin extends the equilibrium search past the observed
	// separation range, in Bohr.
	rangeMargin = 0.1
)

// Config holds the analysis parameters.
type Config struct {
	// Mu is the reduced mass of the diatomic in unified atomic mass
	// units.
	Mu float64

	// DissociationLimit is the asymptotic energy of the curve in
	// Hartree. When nonzero, the dissociation energies Ediss and D0 are
	// reported; when zero they are omitted.
	DissociationLimit float64
}

// Equilibrium is a located potential minimum.
type Equilibrium struct {
	R      float64 // Bohr
	Energy float64 // Hartree
}

// Omission records a constant that was not derived and why.
type Omission struct {
	Constant string
	Reason   string

	// MinOrder is the fit order that would supply the constant; zero
	// when the omission is not order-related.
	MinOrder int
}

// Result holds the spectroscopic constants of one fitted curve.
// Constants that could not be derived are zero-valued and listed in
// Omissions; use Has to distinguish a genuine zero from an omission.
type Result struct {
	Label string
	Order int

	Re         float64 // equilibrium separation in Bohr
	ReAngstrom float64 // equilibrium separation in Angstrom
	EMin       float64 // potential minimum in Hartree

	Be     float64 // rotational constant in cm⁻¹
	AlphaE float64 // vibration-rotation coupling in cm⁻¹
	We     float64 // harmonic wavenumber in cm⁻¹
	WeXe   float64 // first anharmonicity in cm⁻¹
	WeYe   float64 // second anharmonicity in cm⁻¹
	De     float64 // centrifugal distortion in cm⁻¹

	Ediss float64 // dissociation energy from the minimum in eV
	D0    float64 // dissociation energy from the zero-point level in eV

	Omissions []Omission
}

// constantNames lists every constant a full analysis can report, in
// presentation order.
var constantNames = []string{"re", "Emin", "Be", "alpha_e", "we", "wexe", "weye", "De", "Ediss", "D0"}

// Has reports whether the named constant was derived.
func (r Result) Has(name string) bool {
	for _, om := range r.Omissions {
		if om.Constant == name {
			return false
		}
	}

	for _, known := range constantNames {
		if known == name {
			return true
		}
	}

	return false
}

// OmissionReason returns why the named constant was omitted.
func (r Result) OmissionReason(name string) (string, bool) {
	for _, om := range r.Omissions {
		if om.Constant == name {
			return om.Reason, true
		}
	}

	return "", false
}

// Constant returns the named constant's value. Omitted constants
// return ErrInsufficientOrder when a higher fit order would supply
// them, or a descriptive error otherwise.
func (r Result) Constant(name string) (float64, error) {
	for _, om := range r.Omissions {
		if om.Constant != name {
			continue
		}

		if om.MinOrder > 0 {
			return 0, fmt.Errorf("%w: %s %s", ErrInsufficientOrder, name, om.Reason)
		}

		return 0, fmt.Errorf("dunham: %s omitted: %s", name, om.Reason)
	}

	value, ok := r.Constants()[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownConstant, name)
	}

	return value, nil
}

// Constants returns the derived constants keyed by name. Omitted
// constants are absent from the map, never zero-filled.
func (r Result) Constants() map[string]float64 {
	values := map[string]float64{
		"re":      r.Re,
		"Emin":    r.EMin,
		"Be":      r.Be,
		"alpha_e": r.AlphaE,
		"we":      r.We,
		"wexe":    r.WeXe,
		"weye":    r.WeYe,
		"De":      r.De,
		"Ediss":   r.Ediss,
		"D0":      r.D0,
	}

	for _, om := range r.Omissions {
		delete(values, om.Constant)
	}

	return values
}

// Analyzer derives spectroscopic constants from fitted curves.
type Analyzer struct {
	cfg Config
}

// NewAnalyzer creates an analyzer with the given configuration.
func NewAnalyzer(cfg Config) *Analyzer {
	return &Analyzer{cfg: cfg}
}

// Analyze is a one-shot analysis of a fitted curve.
func Analyze(res fit.Result, cfg Config) (Result, error) {
	return NewAnalyzer(cfg).Analyze(res)
}

// FindEquilibrium locates the bound-state minimum of a fitted curve:
// the real root of V'(r) with positive curvature and the lowest energy,
// at a positive separation within the observed range plus a small
// margin. Curves without such a root (repulsive or monotonic data)
// return ErrNoEquilibrium.
func FindEquilibrium(res fit.Result) (Equilibrium, error) {
	if err := res.Validate(); err != nil {
		return Equilibrium{}, err
	}

	deriv := res.Coeffs.Derivative()

	roots, err := polyroot.RealRoots(deriv, rootImagTol)
	if err != nil {
		// A degenerate derivative means the curve has no usable
		// stationary point.
		return Equilibrium{}, noEquilibrium(res)
	}

	lo := res.RMin - rangeMargin - res.Center
	hi := res.RMax + rangeMargin - res.Center

	curvature := deriv.Derivative()

	bestX := math.NaN()
	bestE := math.Inf(1)

	for _, x := range roots {
		if x < lo || x > hi {
			continue
		}

		if res.Center+x <= 0 {
			continue
		}

		if curvature.Eval(x) <= 0 {
			continue
		}

		if e := res.Coeffs.Eval(x); e < bestE {
			bestE = e
			bestX = x
		}
	}

	if math.IsNaN(bestX) {
		return Equilibrium{}, noEquilibrium(res)
	}

	return Equilibrium{R: res.Center + bestX, Energy: bestE}, nil
}

func noEquilibrium(res fit.Result) error {
	return fmt.Errorf("%w: %q over [%.4f, %.4f] Bohr",
		ErrNoEquilibrium, res.Label, res.RMin-rangeMargin, res.RMax+rangeMargin)
}

// Analyze derives the spectroscopic constants of a fitted curve. An
// error is returned only when no constants can be derived at all; a
// fit order too low for some constant yields a partial Result with the
// omissions recorded.
func (a *Analyzer) Analyze(res fit.Result) (Result, error) {
	if a.cfg.Mu <= 0 {
		return Result{}, fmt.Errorf("%w: got %g", ErrInvalidMass, a.cfg.Mu)
	}

	eq, err := FindEquilibrium(res)
	if err != nil {
		return Result{}, err
	}

	// Taylor coefficients of the potential about the minimum, in the
	// shifted frame of the fit.
	pt := res.Coeffs.TaylorAt(eq.R-res.Center, 7)

	mu := a.cfg.Mu * unit.ElectronMassPerAMU

	out := Result{
		Label:      res.Label,
		Order:      res.Order,
		Re:         eq.R,
		ReAngstrom: eq.R * unit.AngstromPerBohr,
		EMin:       eq.Energy,
	}

	out.Be = unit.InvCmPerHartree * 0.5 / (mu * eq.R * eq.R)
	out.We = unit.InvCmPerHartree * math.Sqrt(2*math.Abs(pt[2])/mu)

	// Dunham potential coefficients a1..a4 from the Taylor terms.
	var acoef [5]float64
	for i := 1; i <= 4; i++ {
		acoef[i] = pt[i+2] / pt[2] * math.Pow(eq.R, float64(i))
	}

	if res.Order >= minOrderAlphaE {
		out.AlphaE = -6 * out.Be * out.Be * (1 + acoef[1]) / out.We
	} else {
		out.omitOrder("alpha_e", minOrderAlphaE, res.Order)
	}

	if res.Order >= minOrderAnharmonic {
		a1, a2, a3, a4 := acoef[1], acoef[2], acoef[3], acoef[4]

		out.WeXe = -1.5 * (a2 - 1.25*a1*a1) * out.Be
		out.WeYe = 0.5 * (10*a4 - 35*a1*a3 - 8.5*a2*a2 + 56.125*a2*a1*a1 -
			22.03125*a1*a1*a1*a1) * out.Be * out.Be / out.We
	} else {
		out.omitOrder("wexe", minOrderAnharmonic, res.Order)
		out.omitOrder("weye", minOrderAnharmonic, res.Order)
	}

	out.De = 4 * out.Be * out.Be * out.Be / (out.We * out.We)

	if a.cfg.DissociationLimit != 0 {
		out.Ediss = (a.cfg.DissociationLimit - out.EMin) * unit.EVPerHartree

		// Zero-point correction uses wexe when available; at low orders
		// the harmonic half-quantum stands alone.
		zpe := 0.5 * (out.We - 0.5*out.WeXe) * unit.EVPerHartree / unit.InvCmPerHartree
		out.D0 = out.Ediss - zpe
	} else {
		out.omit("Ediss", "no dissociation limit supplied")
		out.omit("D0", "no dissociation limit supplied")
	}

	return out, nil
}

func (r *Result) omit(name, reason string) {
	r.Omissions = append(r.Omissions, Omission{Constant: name, Reason: reason})
}

func (r *Result) omitOrder(name string, need, have int) {
	r.Omissions = append(r.Omissions, Omission{
		Constant: name,
		Reason:   fmt.Sprintf("requires fit order >= %d, have %d", need, have),
		MinOrder: need,
	})
}
