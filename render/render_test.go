package render

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func testSeries() []Series {
	return []Series{
		{
			Name: "X",
			X:    []float64{1.5, 1.7, 1.9, 2.1, 2.3},
			Y:    []float64{-0.598, -0.617, -0.620, -0.615, -0.604},
		},
		{
			Name: "X fit",
			X:    []float64{1.5, 1.6, 1.7, 1.8, 1.9, 2.0, 2.1, 2.2, 2.3},
			Y:    []float64{-0.598, -0.609, -0.617, -0.620, -0.620, -0.618, -0.615, -0.610, -0.604},
			Line: true,
		},
	}
}

func TestSave_WritesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "curves.png")

	if err := Save(path, "Potential curves", testSeries()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("output missing: %v", err)
	}

	if info.Size() == 0 {
		t.Fatal("output file is empty")
	}
}

func TestSave_SVG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "curves.svg")

	if err := Save(path, "", testSeries(), WithAxisLabels("R (Ang)", "E (eV)")); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("output missing: %v", err)
	}
}

func TestSave_NoSeries(t *testing.T) {
	err := Save(filepath.Join(t.TempDir(), "empty.png"), "t", nil)
	if !errors.Is(err, ErrNoSeries) {
		t.Fatalf("expected ErrNoSeries, got %v", err)
	}
}

func TestSave_LengthMismatch(t *testing.T) {
	series := []Series{{Name: "bad", X: []float64{1, 2, 3}, Y: []float64{1, 2}}}

	err := Save(filepath.Join(t.TempDir(), "bad.png"), "t", series)
	if !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("expected ErrLengthMismatch, got %v", err)
	}
}

func TestSeriesColor_Cycles(t *testing.T) {
	if seriesColor(0) != seriesColor(len(palette)) {
		t.Error("palette should wrap around")
	}

	if seriesColor(0) == seriesColor(1) {
		t.Error("adjacent series share a color")
	}
}
