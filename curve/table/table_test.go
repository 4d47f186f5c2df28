package table

import (
	"errors"
	"testing"
)

func validTable() Table {
	return Table{
		R: []float64{1.0, 1.5, 2.0},
		Columns: []Column{
			{Name: "X1Sigma", E: []float64{-0.5, -0.6, -0.55}},
			{Name: "A1Pi", E: []float64{-0.3, -0.35, -0.32}},
		},
	}
}

func TestValidate_OK(t *testing.T) {
	if err := validTable().Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidate_NoRows(t *testing.T) {
	tbl := Table{Columns: []Column{{Name: "a"}}}

	if err := tbl.Validate(); !errors.Is(err, ErrNoRows) {
		t.Errorf("expected ErrNoRows, got %v", err)
	}
}

func TestValidate_NoColumns(t *testing.T) {
	tbl := Table{R: []float64{1, 2}}

	if err := tbl.Validate(); !errors.Is(err, ErrNoColumns) {
		t.Errorf("expected ErrNoColumns, got %v", err)
	}
}

func TestValidate_LengthMismatch(t *testing.T) {
	tbl := validTable()
	tbl.Columns[1].E = tbl.Columns[1].E[:2]

	err := tbl.Validate()
	if !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("expected ErrLengthMismatch, got %v", err)
	}
}

func TestNames(t *testing.T) {
	names := validTable().Names()

	if len(names) != 2 || names[0] != "X1Sigma" || names[1] != "A1Pi" {
		t.Errorf("unexpected names %v", names)
	}
}

func TestDistinctCount(t *testing.T) {
	cases := []struct {
		in   []float64
		want int
	}{
		{nil, 0},
		{[]float64{1}, 1},
		{[]float64{1, 1, 1}, 1},
		{[]float64{3, 1, 2, 1, 3}, 3},
		{[]float64{1, 2, 3, 4}, 4},
	}

	for _, tc := range cases {
		if got := DistinctCount(tc.in); got != tc.want {
			t.Errorf("DistinctCount(%v): expected %d, got %d", tc.in, tc.want, got)
		}
	}
}

func TestDistinctCount_DoesNotModifyInput(t *testing.T) {
	in := []float64{3, 1, 2}
	DistinctCount(in)

	if in[0] != 3 || in[1] != 1 || in[2] != 2 {
		t.Error("input was sorted in place")
	}
}
