package polyroot

import (
	"fmt"
	"testing"
)

// productPoly returns the ascending coefficients of prod_{k=1..deg} (x - k/2).
func productPoly(deg int) []float64 {
	c := []float64{1}
	for k := 1; k <= deg; k++ {
		root := float64(k) / 2

		next := make([]float64, len(c)+1)
		for i, ci := range c {
			next[i] -= root * ci
			next[i+1] += ci
		}

		c = next
	}

	return c
}

func BenchmarkRoots(b *testing.B) {
	for _, deg := range []int{2, 3, 4, 6, 9} {
		c := productPoly(deg)

		b.Run(fmt.Sprintf("degree=%d", deg), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = Roots(c)
			}
		})
	}
}
