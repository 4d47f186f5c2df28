package testutil

// Grid returns n uniformly spaced values covering [lo, hi] inclusive.
func Grid(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = lo
		return out
	}
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	return out
}

// HarmonicCurve samples e0 + k*(r-r0)^2 over [lo, hi] at n points,
// returning the separation and energy axes.
func HarmonicCurve(e0, k, r0, lo, hi float64, n int) ([]float64, []float64) {
	r := Grid(lo, hi, n)
	e := make([]float64, n)
	for i, x := range r {
		d := x - r0
		e[i] = e0 + k*d*d
	}
	return r, e
}
