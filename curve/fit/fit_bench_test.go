package fit

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-spectro/internal/testutil"
)

func BenchmarkPolynomial(b *testing.B) {
	sizes := []struct {
		points int
		order  int
	}{
		{16, 4},
		{16, 8},
		{64, 6},
		{64, 10},
		{256, 6},
		{256, 12},
	}

	for _, size := range sizes {
		r, e := testutil.HarmonicCurve(-0.5, 0.25, 2.2, 1.2, 4.0, size.points)

		b.Run(fmt.Sprintf("points=%d_order=%d", size.points, size.order), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = Polynomial(r, e, size.order)
			}
		})
	}
}
