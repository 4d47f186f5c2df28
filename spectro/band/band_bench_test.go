package band

import (
	"fmt"
	"testing"
)

func BenchmarkBroaden(b *testing.B) {
	sizes := []struct {
		lines int
		step  float64
	}{
		{5, 1.0},
		{5, 0.1},
		{20, 0.5},
	}

	for _, size := range sizes {
		lines := make([]Line, size.lines)
		for i := range lines {
			lines[i] = Line{V: i, Wavenumber: 1500 + 60*float64(i), Intensity: 1 / float64(i+1)}
		}

		cfg := Config{FWHM: 20, GridStep: size.step}

		b.Run(fmt.Sprintf("lines=%d_step=%g", size.lines, size.step), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = Broaden(lines, cfg)
			}
		})
	}
}
