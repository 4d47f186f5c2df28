// Package lsq solves dense linear least-squares problems by Householder
// QR factorization.
//
// The column-major interface matches how fitting code builds design
// matrices: one slice per basis function. QR is used instead of the
// normal equations because the design matrices of high-order polynomial
// fits are poorly conditioned, and forming AᵀA squares the condition
// number.
package lsq

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrEmptySystem indicates a system with no columns or no rows.
	ErrEmptySystem = errors.New("lsq: empty system")

	// ErrUnderdetermined indicates fewer rows than columns.
	ErrUnderdetermined = errors.New("lsq: fewer rows than columns")

	// ErrLengthMismatch indicates a column whose length differs from the
	// right-hand side.
	ErrLengthMismatch = errors.New("lsq: column length mismatch")

	// ErrRankDeficient indicates a numerically rank-deficient system.
	ErrRankDeficient = errors.New("lsq: rank-deficient system")
)

// rankTol is the relative threshold on the diagonal of R below which a
// pivot is treated as zero.
const rankTol = 1e-12

// Solve returns the least-squares solution x minimizing ‖A·x − rhs‖₂,
// where column j of A is cols[j]. It also returns the ratio of the
// largest to the smallest diagonal magnitude of R, a cheap estimate of
// the conditioning of the system.
//
// The inputs are not modified. Solve returns ErrRankDeficient when a
// diagonal of R vanishes relative to the largest one; the condition
// estimate is still returned for diagnostics.
func Solve(cols [][]float64, rhs []float64) ([]float64, float64, error) {
	n := len(cols)
	m := len(rhs)

	if n == 0 || m == 0 {
		return nil, 0, ErrEmptySystem
	}

	if m < n {
		return nil, 0, fmt.Errorf("%w: %d rows, %d columns", ErrUnderdetermined, m, n)
	}

	a := make([][]float64, n)
	for j, col := range cols {
		if len(col) != m {
			return nil, 0, fmt.Errorf("%w: column %d has %d rows, want %d", ErrLengthMismatch, j, len(col), m)
		}

		a[j] = append([]float64(nil), col...)
	}

	b := append([]float64(nil), rhs...)

	v := make([]float64, m)

	for k := range n {
		norm := 0.0
		for i := k; i < m; i++ {
			norm += a[k][i] * a[k][i]
		}
		norm = math.Sqrt(norm)

		if norm == 0 {
			// Column k is zero below the diagonal; leave the zero pivot
			// for the rank check.
			a[k][k] = 0
			continue
		}

		// Reflect so the pivot keeps its magnitude without cancellation.
		alpha := -norm
		if a[k][k] < 0 {
			alpha = norm
		}

		for i := k; i < m; i++ {
			v[i] = a[k][i]
		}
		v[k] -= alpha

		vNormSq := 0.0
		for i := k; i < m; i++ {
			vNormSq += v[i] * v[i]
		}

		a[k][k] = alpha

		for j := k + 1; j < n; j++ {
			dot := 0.0
			for i := k; i < m; i++ {
				dot += v[i] * a[j][i]
			}

			f := 2 * dot / vNormSq
			for i := k; i < m; i++ {
				a[j][i] -= f * v[i]
			}
		}

		dot := 0.0
		for i := k; i < m; i++ {
			dot += v[i] * b[i]
		}

		f := 2 * dot / vNormSq
		for i := k; i < m; i++ {
			b[i] -= f * v[i]
		}
	}

	maxDiag, minDiag := 0.0, math.Inf(1)
	for k := range n {
		d := math.Abs(a[k][k])
		if d > maxDiag {
			maxDiag = d
		}
		if d < minDiag {
			minDiag = d
		}
	}

	cond := math.Inf(1)
	if minDiag > 0 {
		cond = maxDiag / minDiag
	}

	if minDiag <= rankTol*maxDiag {
		return nil, cond, fmt.Errorf("%w: diagonal ratio %.3g", ErrRankDeficient, cond)
	}

	x := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		sum := b[i]
		for j := i + 1; j < n; j++ {
			sum -= a[j][i] * x[j]
		}

		x[i] = sum / a[i][i]
	}

	return x, cond, nil
}
