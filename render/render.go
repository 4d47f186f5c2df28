// Package render draws observed potential points and fitted curves to
// an image file with gonum.org/v1/plot. The output format follows the
// file extension (.png, .svg, .pdf, ...).
package render

import (
	"errors"
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Errors returned by the renderer.
var (
	ErrNoSeries       = errors.New("render: no series to draw")
	ErrLengthMismatch = errors.New("render: series x/y length mismatch")
)

// Series is one named data set: scatter glyphs for observations, a
// connected line for sampled fit curves.
type Series struct {
	Name string
	X    []float64
	Y    []float64
	Line bool
}

type config struct {
	xLabel string
	yLabel string
	width  vg.Length
	height vg.Length
}

func defaultConfig() config {
	return config{
		xLabel: "R (Bohr)",
		yLabel: "Energy (Ha)",
		width:  8 * vg.Inch,
		height: 6 * vg.Inch,
	}
}

// Option adjusts the plot.
type Option func(*config)

// WithAxisLabels overrides the default axis labels.
func WithAxisLabels(x, y string) Option {
	return func(cfg *config) {
		cfg.xLabel = x
		cfg.yLabel = y
	}
}

// WithSize sets the saved image size.
func WithSize(width, height vg.Length) Option {
	return func(cfg *config) {
		if width > 0 && height > 0 {
			cfg.width = width
			cfg.height = height
		}
	}
}

// palette cycles through the per-series colors.
var palette = []color.Color{
	color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
	color.RGBA{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff},
	color.RGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
	color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff},
	color.RGBA{R: 0x94, G: 0x67, B: 0xbd, A: 0xff},
	color.RGBA{R: 0x8c, G: 0x56, B: 0x4b, A: 0xff},
}

func seriesColor(i int) color.Color {
	return palette[i%len(palette)]
}

// Save draws the series into a single figure and writes it to path.
func Save(path, title string, series []Series, opts ...Option) error {
	if len(series) == 0 {
		return ErrNoSeries
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = cfg.xLabel
	p.Y.Label.Text = cfg.yLabel
	p.Legend.Top = true

	for i, s := range series {
		if len(s.X) != len(s.Y) {
			return fmt.Errorf("%w: %q has %d x values and %d y values",
				ErrLengthMismatch, s.Name, len(s.X), len(s.Y))
		}

		xys := make(plotter.XYs, len(s.X))
		for j := range s.X {
			xys[j].X = s.X[j]
			xys[j].Y = s.Y[j]
		}

		if s.Line {
			line, err := plotter.NewLine(xys)
			if err != nil {
				return fmt.Errorf("render: %q: %w", s.Name, err)
			}

			line.LineStyle.Width = vg.Points(1.5)
			line.LineStyle.Color = seriesColor(i)

			p.Add(line)

			if s.Name != "" {
				p.Legend.Add(s.Name, line)
			}

			continue
		}

		scatter, err := plotter.NewScatter(xys)
		if err != nil {
			return fmt.Errorf("render: %q: %w", s.Name, err)
		}

		scatter.GlyphStyle.Radius = vg.Points(2)
		scatter.GlyphStyle.Shape = draw.CircleGlyph{}
		scatter.GlyphStyle.Color = seriesColor(i)

		p.Add(scatter)

		if s.Name != "" {
			p.Legend.Add(s.Name, scatter)
		}
	}

	if err := p.Save(cfg.width, cfg.height, path); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	return nil
}
