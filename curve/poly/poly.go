// Package poly implements the dense real polynomials produced by
// potential-curve fits: Horner evaluation, differentiation, Taylor
// re-expansion about a point.
package poly

// Polynomial holds coefficients in ascending power order: p[i] is the
// coefficient of x^i. The zero value is the empty polynomial.
type Polynomial []float64

// New returns a polynomial with the given ascending coefficients. The
// arguments are copied.
func New(coeffs ...float64) Polynomial {
	return append(Polynomial(nil), coeffs...)
}

// Degree returns the nominal degree, len(p)-1. Trailing zero
// coefficients still count; use Trim to drop them. The empty
// polynomial has degree -1.
func (p Polynomial) Degree() int {
	return len(p) - 1
}

// Eval evaluates the polynomial at x by Horner's method. The empty
// polynomial evaluates to zero.
func (p Polynomial) Eval(x float64) float64 {
	v := 0.0
	for i := len(p) - 1; i >= 0; i-- {
		v = v*x + p[i]
	}

	return v
}

// Derivative returns the first derivative. The derivative of a
// constant or empty polynomial is empty.
func (p Polynomial) Derivative() Polynomial {
	if len(p) < 2 {
		return Polynomial{}
	}

	out := make(Polynomial, len(p)-1)
	for i := 1; i < len(p); i++ {
		out[i-1] = float64(i) * p[i]
	}

	return out
}

// DerivativeN returns the n-th derivative. DerivativeN(0) returns a
// copy of p.
func (p Polynomial) DerivativeN(n int) Polynomial {
	out := append(Polynomial(nil), p...)
	for range n {
		out = out.Derivative()
	}

	return out
}

// TaylorAt returns the leading Taylor coefficients of p about x:
// out[i] = p⁽ⁱ⁾(x)/i! for i < terms. Coefficients beyond the degree of
// p are zero.
func (p Polynomial) TaylorAt(x float64, terms int) []float64 {
	out := make([]float64, terms)

	cur := p
	factorial := 1.0

	for i := range terms {
		if i > 0 {
			factorial *= float64(i)
		}

		out[i] = cur.Eval(x) / factorial
		cur = cur.Derivative()
	}

	return out
}

// Shift returns the polynomial q with q(x) = p(x + dx). The Taylor
// coefficients of p about dx are exactly the coefficients of q.
func (p Polynomial) Shift(dx float64) Polynomial {
	if len(p) == 0 {
		return Polynomial{}
	}

	return Polynomial(p.TaylorAt(dx, len(p)))
}

// Trim returns p without trailing zero coefficients.
func (p Polynomial) Trim() Polynomial {
	n := len(p)
	for n > 0 && p[n-1] == 0 {
		n--
	}

	return p[:n]
}
