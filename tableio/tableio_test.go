package tableio

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cwbudde/algo-spectro/internal/testutil"
)

const sampleInput = `r	X	A
1.5	-0.5981	-0.3120
1.7	-0.6170	-0.3391
1.9	-0.6201	-0.3402
2.1	-0.6148	-0.3333
`

func TestParse_MultiColumn(t *testing.T) {
	tbl, err := Parse(strings.NewReader(sampleInput))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if err := tbl.Validate(); err != nil {
		t.Fatalf("parsed table invalid: %v", err)
	}

	if len(tbl.Columns) != 2 {
		t.Fatalf("expected 2 energy columns, got %d", len(tbl.Columns))
	}

	if tbl.Columns[0].Name != "X" || tbl.Columns[1].Name != "A" {
		t.Errorf("column names = %q, %q", tbl.Columns[0].Name, tbl.Columns[1].Name)
	}

	testutil.RequireSliceNearlyEqual(t, tbl.R, []float64{1.5, 1.7, 1.9, 2.1}, 0)
	testutil.RequireSliceNearlyEqual(t, tbl.Columns[1].E,
		[]float64{-0.3120, -0.3391, -0.3402, -0.3333}, 0)
}

func TestParse_SkipsBlankLines(t *testing.T) {
	input := "\n\nr X\n1.0 -0.5\n\n2.0 -0.6\n\n"

	tbl, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if len(tbl.R) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(tbl.R))
	}
}

func TestParse_ScientificNotation(t *testing.T) {
	input := "r X\n1.0e0 -6.2E-1\n2.5e0 -5.9e-1\n"

	tbl, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, tbl.Columns[0].E, []float64{-0.62, -0.59}, 1e-15)
}

func TestParse_MissingHeader(t *testing.T) {
	for _, input := range []string{"", "\n\n\n"} {
		if _, err := Parse(strings.NewReader(input)); !errors.Is(err, ErrMissingHeader) {
			t.Errorf("input %q: expected ErrMissingHeader, got %v", input, err)
		}
	}
}

func TestParse_TooFewColumns(t *testing.T) {
	_, err := Parse(strings.NewReader("r\n1.0\n"))
	if !errors.Is(err, ErrTooFewColumns) {
		t.Fatalf("expected ErrTooFewColumns, got %v", err)
	}
}

func TestParse_ShortRow(t *testing.T) {
	input := "r X A\n1.0 -0.5 -0.3\n1.5 -0.6\n"

	_, err := Parse(strings.NewReader(input))
	if !errors.Is(err, ErrBadRow) {
		t.Fatalf("expected ErrBadRow, got %v", err)
	}

	if !strings.Contains(err.Error(), "line 3") {
		t.Errorf("expected line number in error, got %v", err)
	}
}

func TestParse_BadNumber(t *testing.T) {
	input := "r X\n1.0 -0.5\n2.0 oops\n"

	_, err := Parse(strings.NewReader(input))
	if !errors.Is(err, ErrBadRow) {
		t.Fatalf("expected ErrBadRow, got %v", err)
	}

	if !strings.Contains(err.Error(), "oops") {
		t.Errorf("expected offending field in error, got %v", err)
	}
}

func TestParse_NoData(t *testing.T) {
	_, err := Parse(strings.NewReader("r X A\n"))
	if !errors.Is(err, ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
}

func TestLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "curves.dat")
	if err := os.WriteFile(path, []byte(sampleInput), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	tbl, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(tbl.R) != 4 {
		t.Errorf("expected 4 rows, got %d", len(tbl.R))
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.dat"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}

	if !strings.Contains(err.Error(), "tableio") {
		t.Errorf("expected wrapped error, got %v", err)
	}
}
