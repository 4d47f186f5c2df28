// Package polyroot finds the real and complex roots of the low-degree
// polynomials produced by potential-curve fits.
//
// Coefficients are in ascending power order throughout: c[0] + c[1]*x +
// ... + c[n]*x^n. Degrees one through four are solved in closed form
// (linear, quadratic, Cardano, Ferrari); higher degrees fall back to
// Durand-Kerner simultaneous iteration. Every root is polished with
// guarded Newton steps afterwards.
package polyroot

import (
	"errors"
	"math"
	"math/cmplx"
	"sort"
)

// ErrDegeneratePolynomial is returned when a polynomial has degenerate
// coefficients (all coefficients zero, convergence failure, etc.).
var ErrDegeneratePolynomial = errors.New("polyroot: degenerate polynomial")

// Roots returns all complex roots of c[0] + c[1]*x + ... + c[n]*x^n.
// Trailing zero coefficients are ignored, so the effective degree is
// that of the highest power with a nonzero coefficient. A nonzero
// constant has no roots; the zero polynomial is degenerate.
func Roots(c []float64) ([]complex128, error) {
	cc := trim(c)

	switch len(cc) {
	case 0:
		return nil, ErrDegeneratePolynomial
	case 1:
		return nil, nil
	}

	var roots []complex128

	switch len(cc) {
	case 2:
		roots = []complex128{complex(-cc[0]/cc[1], 0)}
	case 3:
		roots = quadratic(cc[0], cc[1], cc[2])
	case 4:
		roots = cubic(cc[0], cc[1], cc[2], cc[3])
	case 5:
		var ok bool
		if roots, ok = quartic(cc[0], cc[1], cc[2], cc[3], cc[4]); ok {
			break
		}

		fallthrough
	default:
		r, err := durandKerner(descending(cc))
		if err != nil {
			return nil, err
		}

		roots = r
	}

	polish(cc, roots)

	return roots, nil
}

// RealRoots returns the real roots of the polynomial in ascending
// order. A root counts as real when the magnitude of its imaginary
// part is at most imagTol.
func RealRoots(c []float64, imagTol float64) ([]float64, error) {
	roots, err := Roots(c)
	if err != nil {
		return nil, err
	}

	out := make([]float64, 0, len(roots))
	for _, z := range roots {
		if math.Abs(imag(z)) <= imagTol {
			out = append(out, real(z))
		}
	}

	sort.Float64s(out)

	return out, nil
}

// trim drops trailing zero coefficients so the slice length reflects
// the effective degree. Only exact zeros are dropped; small residual
// coefficients from a fit are part of the polynomial.
func trim(c []float64) []float64 {
	n := len(c)
	for n > 0 && c[n-1] == 0 {
		n--
	}

	return c[:n]
}

// quadratic solves c2*x^2 + c1*x + c0 using the cancellation-free form.
func quadratic(c0, c1, c2 float64) []complex128 {
	disc := c1*c1 - 4*c2*c0

	if disc < 0 {
		re := -c1 / (2 * c2)
		im := math.Sqrt(-disc) / (2 * c2)

		return []complex128{complex(re, im), complex(re, -im)}
	}

	q := -(c1 + math.Copysign(math.Sqrt(disc), c1)) / 2
	if q == 0 {
		// c1 == 0 and disc == 0, so c0 == 0: double root at zero.
		return []complex128{0, 0}
	}

	return []complex128{complex(q/c2, 0), complex(c0/q, 0)}
}

// cubic solves c3*x^3 + ... + c0 by Cardano's method, switching to the
// trigonometric form when all three roots are real.
func cubic(c0, c1, c2, c3 float64) []complex128 {
	b := c2 / c3
	c := c1 / c3
	d := c0 / c3

	// Depress to t^3 + p*t + q with x = t - b/3.
	p := c - b*b/3
	q := 2*b*b*b/27 - b*c/3 + d
	shift := -b / 3

	disc := q*q/4 + p*p*p/27

	switch {
	case disc > 0:
		// One real root and a conjugate pair.
		s := math.Sqrt(disc)
		u := math.Cbrt(-q/2 + s)
		v := math.Cbrt(-q/2 - s)

		re := -(u+v)/2 + shift
		im := math.Sqrt(3) * (u - v) / 2

		return []complex128{
			complex(u+v+shift, 0),
			complex(re, im),
			complex(re, -im),
		}

	case p == 0:
		// disc <= 0 with p == 0 forces q == 0: a triple root.
		return []complex128{
			complex(shift, 0),
			complex(shift, 0),
			complex(shift, 0),
		}

	default:
		// Three real roots (disc <= 0 implies p < 0 here).
		m := 2 * math.Sqrt(-p/3)

		arg := 3 * q / (p * m)
		if arg > 1 {
			arg = 1
		} else if arg < -1 {
			arg = -1
		}

		theta := math.Acos(arg) / 3

		roots := make([]complex128, 3)
		for k := range 3 {
			t := m * math.Cos(theta-2*math.Pi*float64(k)/3)
			roots[k] = complex(t+shift, 0)
		}

		return roots
	}
}

// quartic solves c4*x^4 + ... + c0 by Ferrari's method, factoring the
// depressed quartic into two quadratics via the resolvent cubic. It
// reports ok=false when no usable resolvent root is found, in which
// case the caller should fall back to iteration.
func quartic(c0, c1, c2, c3, c4 float64) ([]complex128, bool) {
	b := c3 / c4
	c := c2 / c4
	d := c1 / c4
	e := c0 / c4

	// Depress to t^4 + p*t^2 + q*t + r with x = t - b/4.
	p := c - 3*b*b/8
	q := d - b*c/2 + b*b*b/8
	r := e - b*d/4 + b*b*c/16 - 3*b*b*b*b/256
	shift := complex(-b/4, 0)

	var roots []complex128

	if math.Abs(q) <= 1e-14*(1+math.Abs(p)+math.Abs(r)) {
		// Biquadratic: y^2 + p*y + r with y = t^2.
		ys := quadratic(r, p, 1)
		s0 := cmplx.Sqrt(ys[0])
		s1 := cmplx.Sqrt(ys[1])
		roots = []complex128{s0, -s0, s1, -s1}
	} else {
		// The resolvent z^3 + 2p*z^2 + (p^2-4r)*z - q^2 always has a
		// positive real root when q != 0; pick the largest for the most
		// stable split.
		zr := cubic(-q*q, p*p-4*r, 2*p, 1)

		z := 0.0
		for _, root := range zr {
			if math.Abs(imag(root)) <= 1e-9*(1+cmplx.Abs(root)) && real(root) > z {
				z = real(root)
			}
		}

		if z <= 0 {
			return nil, false
		}

		m := math.Sqrt(z)
		s1 := (p + z - q/m) / 2
		s2 := (p + z + q/m) / 2

		roots = append(quadratic(s1, m, 1), quadratic(s2, -m, 1)...)
	}

	for i := range roots {
		roots[i] += shift
	}

	return roots, true
}

// polish runs up to two Newton iterations on each root, accepting a
// step only when it reduces the residual. This tightens the closed
// forms near multiple roots without risking divergence.
func polish(c []float64, roots []complex128) {
	for i, z := range roots {
		for range 2 {
			p, dp := evalWithDerivative(c, z)
			if dp == 0 {
				break
			}

			next := z - p/dp

			np, _ := evalWithDerivative(c, next)
			if cmplx.Abs(np) >= cmplx.Abs(p) {
				break
			}

			z = next
		}

		roots[i] = z
	}
}

// evalWithDerivative evaluates the polynomial and its derivative at x
// with a single Horner pass. Coefficients are in ascending order.
func evalWithDerivative(c []float64, x complex128) (complex128, complex128) {
	p := complex(c[len(c)-1], 0)
	dp := complex(0, 0)

	for i := len(c) - 2; i >= 0; i-- {
		dp = dp*x + p
		p = p*x + complex(c[i], 0)
	}

	return p, dp
}

// descending converts ascending real coefficients to the descending
// complex layout used by the Durand-Kerner iteration.
func descending(c []float64) []complex128 {
	out := make([]complex128, len(c))
	for i, v := range c {
		out[len(c)-1-i] = complex(v, 0)
	}

	return out
}

// durandKerner finds all roots of a polynomial using the Durand-Kerner
// (Weierstrass) simultaneous iteration method. Coefficients are in
// descending power order: coeff[0]*z^n + coeff[1]*z^(n-1) + ... + coeff[n].
//
//nolint:cyclop
func durandKerner(coeff []complex128) ([]complex128, error) {
	if len(coeff) < 2 {
		return nil, ErrDegeneratePolynomial
	}

	lead := coeff[0]
	if lead == 0 {
		return nil, ErrDegeneratePolynomial
	}

	n := len(coeff) - 1

	norm := make([]complex128, len(coeff))
	for i := range coeff {
		norm[i] = coeff[i] / lead
	}

	radius := 0.0
	for i := 1; i <= n; i++ {
		if r := cmplx.Abs(norm[i]); r > radius {
			radius = r
		}
	}

	if radius < 1 {
		radius = 1
	}

	roots := make([]complex128, n)
	for i := range n {
		angle := 2*math.Pi*float64(i)/float64(n) + 0.3
		r := radius * (1 + 0.1*float64(i)/float64(n))
		roots[i] = complex(r*math.Cos(angle), r*math.Sin(angle))
	}

	const (
		maxIter = 500
		tol     = 1e-12
	)

	for range maxIter {
		maxDelta := 0.0

		for i := range n {
			den := complex(1, 0)

			for j := range n {
				if i == j {
					continue
				}

				den *= roots[i] - roots[j]
			}

			if cmplx.Abs(den) == 0 {
				roots[i] += complex(1e-10, 1e-10)
				continue
			}

			f := horner(norm, roots[i])
			delta := f / den

			roots[i] -= delta
			if d := cmplx.Abs(delta); d > maxDelta {
				maxDelta = d
			}
		}

		if maxDelta < tol {
			return roots, nil
		}
	}

	maxResidual := 0.0

	for _, r := range roots {
		res := cmplx.Abs(horner(norm, r))
		if res > maxResidual {
			maxResidual = res
		}
	}

	if maxResidual < 1e-6 {
		return roots, nil
	}

	return nil, ErrDegeneratePolynomial
}

// horner evaluates a descending-order polynomial at x.
func horner(coeff []complex128, x complex128) complex128 {
	v := coeff[0]
	for i := 1; i < len(coeff); i++ {
		v = v*x + coeff[i]
	}

	return v
}
