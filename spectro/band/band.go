// Package band synthesizes vibrational band spectra from derived
// spectroscopic constants: fundamental and hot-band line positions
// weighted by thermal populations, plus Gaussian broadening onto a
// uniform wavenumber grid via FFT convolution.
package band

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-spectro/spectro/dunham"
	"github.com/cwbudde/algo-spectro/unit"
)

var (
	// ErrNoHarmonic indicates a result without a positive harmonic
	// wavenumber, so no term values can be formed.
	ErrNoHarmonic = errors.New("band: result has no harmonic wavenumber")

	// ErrNoLines indicates that no transition with a positive wavenumber
	// exists below the requested vibrational ceiling.
	ErrNoLines = errors.New("band: no lines to synthesize")
)

const (
	defaultTemperature = 296.0 // K
	defaultMaxV        = 4
	defaultFWHM        = 20.0 // cm⁻¹
	defaultGridStep    = 1.0  // cm⁻¹

	// gridPad extends the spectrum grid past the outermost lines, in
	// multiples of the FWHM, far enough that Gaussian tails are
	// negligible at the edges.
	gridPad = 3.0
)

// Config holds the synthesis parameters. Zero values select the
// defaults.
type Config struct {
	// Temperature in kelvin sets the Boltzmann populations of the
	// vibrational levels.
	Temperature float64

	// MaxV is the highest lower-state vibrational quantum number; the
	// synthesis emits the transitions v -> v+1 for v = 0..MaxV.
	MaxV int

	// FWHM is the Gaussian linewidth in cm⁻¹.
	FWHM float64

	// GridStep is the spectrum grid spacing in cm⁻¹.
	GridStep float64
}

func normalizeConfig(cfg Config) Config {
	if cfg.Temperature <= 0 {
		cfg.Temperature = defaultTemperature
	}

	if cfg.MaxV <= 0 {
		cfg.MaxV = defaultMaxV
	}

	if cfg.FWHM <= 0 {
		cfg.FWHM = defaultFWHM
	}

	if cfg.GridStep <= 0 {
		cfg.GridStep = defaultGridStep
	}

	return cfg
}

// Line is one vibrational transition v -> v+1.
type Line struct {
	V          int     // lower-state quantum number
	Wavenumber float64 // cm⁻¹
	Intensity  float64 // population relative to v=0
}

// Spectrum is a broadened band spectrum on a uniform wavenumber grid.
type Spectrum struct {
	Wavenumber []float64
	Absorbance []float64
}

// termValue evaluates G(v) from the anharmonic term expression. Omitted
// anharmonicities are zero on the Result, which degrades gracefully to
// the harmonic ladder.
func termValue(res dunham.Result, v int) float64 {
	x := float64(v) + 0.5
	return res.We*x - res.WeXe*x*x + res.WeYe*x*x*x
}

// Lines returns the v -> v+1 transitions up to the configured ceiling.
// The ladder stops early when anharmonicity closes the gap between
// adjacent levels.
func Lines(res dunham.Result, cfg Config) ([]Line, error) {
	if !res.Has("we") || res.We <= 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoHarmonic, res.Label)
	}

	cfg = normalizeConfig(cfg)

	kT := unit.BoltzmannInvCm * cfg.Temperature
	g0 := termValue(res, 0)

	lines := make([]Line, 0, cfg.MaxV+1)

	for v := 0; v <= cfg.MaxV; v++ {
		wn := termValue(res, v+1) - termValue(res, v)
		if wn <= 0 {
			break
		}

		lines = append(lines, Line{
			V:          v,
			Wavenumber: wn,
			Intensity:  math.Exp(-(termValue(res, v) - g0) / kT),
		})
	}

	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoLines, res.Label)
	}

	return lines, nil
}

// Broaden convolves stick lines with a normalized Gaussian of the
// configured FWHM, returning the spectrum on a uniform grid that spans
// all lines plus a tail margin.
func Broaden(lines []Line, cfg Config) (Spectrum, error) {
	if len(lines) == 0 {
		return Spectrum{}, ErrNoLines
	}

	cfg = normalizeConfig(cfg)

	lo, hi := lines[0].Wavenumber, lines[0].Wavenumber
	for _, line := range lines[1:] {
		if line.Wavenumber < lo {
			lo = line.Wavenumber
		}
		if line.Wavenumber > hi {
			hi = line.Wavenumber
		}
	}

	lo -= gridPad * cfg.FWHM
	hi += gridPad * cfg.FWHM

	n := int(math.Ceil((hi-lo)/cfg.GridStep)) + 1

	sticks := make([]float64, n)
	for _, line := range lines {
		// Split each stick between its two neighbouring bins so the
		// deposited intensity is independent of grid alignment.
		pos := (line.Wavenumber - lo) / cfg.GridStep
		idx := int(pos)
		frac := pos - float64(idx)

		if idx >= 0 && idx < n {
			sticks[idx] += line.Intensity * (1 - frac)
		}
		if idx+1 >= 0 && idx+1 < n {
			sticks[idx+1] += line.Intensity * frac
		}
	}

	kernel := gaussianKernel(cfg.FWHM, cfg.GridStep)

	absorbance, err := convolveSame(sticks, kernel)
	if err != nil {
		return Spectrum{}, err
	}

	grid := make([]float64, n)
	for i := range grid {
		grid[i] = lo + float64(i)*cfg.GridStep
	}

	return Spectrum{Wavenumber: grid, Absorbance: absorbance}, nil
}

// Synthesize combines Lines and Broaden.
func Synthesize(res dunham.Result, cfg Config) (Spectrum, error) {
	lines, err := Lines(res, cfg)
	if err != nil {
		return Spectrum{}, err
	}

	return Broaden(lines, cfg)
}

// gaussianKernel returns a unit-area Gaussian sampled at the grid
// step, truncated at four standard deviations.
func gaussianKernel(fwhm, step float64) []float64 {
	sigma := fwhm / (2 * math.Sqrt(2*math.Ln2))

	half := int(math.Ceil(4 * sigma / step))
	kernel := make([]float64, 2*half+1)

	sum := 0.0
	for i := range kernel {
		x := float64(i-half) * step
		kernel[i] = math.Exp(-x * x / (2 * sigma * sigma))
		sum += kernel[i]
	}

	for i := range kernel {
		kernel[i] /= sum
	}

	return kernel
}

// convolveSame returns the central part of the linear convolution of
// signal and kernel, aligned with the signal grid. The kernel length
// must be odd.
func convolveSame(signal, kernel []float64) ([]float64, error) {
	n := len(signal)
	half := len(kernel) / 2

	fftSize := nextPowerOf2(n + len(kernel) - 1)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("band: failed to create FFT plan: %w", err)
	}

	sigPadded := make([]complex128, fftSize)
	for i, v := range signal {
		sigPadded[i] = complex(v, 0)
	}

	kerPadded := make([]complex128, fftSize)
	for i, v := range kernel {
		kerPadded[i] = complex(v, 0)
	}

	if err := plan.Forward(sigPadded, sigPadded); err != nil {
		return nil, fmt.Errorf("band: forward FFT failed: %w", err)
	}

	if err := plan.Forward(kerPadded, kerPadded); err != nil {
		return nil, fmt.Errorf("band: forward FFT failed: %w", err)
	}

	for i := range sigPadded {
		sigPadded[i] *= kerPadded[i]
	}

	if err := plan.Inverse(sigPadded, sigPadded); err != nil {
		return nil, fmt.Errorf("band: inverse FFT failed: %w", err)
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = real(sigPadded[i+half])
	}

	return out, nil
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	size := 1
	for size < n {
		size *= 2
	}

	return size
}
