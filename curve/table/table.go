// Package table defines the observation tables consumed by the curve
// fitter: a shared separation axis and one or more named energy
// columns.
package table

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrNoRows indicates a table without data rows.
	ErrNoRows = errors.New("table: no rows")

	// ErrNoColumns indicates a table without energy columns.
	ErrNoColumns = errors.New("table: no energy columns")

	// ErrLengthMismatch indicates an energy column whose length differs
	// from the separation axis.
	ErrLengthMismatch = errors.New("table: column length mismatch")
)

// Column is one named energy column, in Hartree, aligned with the
// separation axis of its Table.
type Column struct {
	Name string
	E    []float64
}

// Table is a set of potential-energy observations: separations R with
// one energy value per column at each separation. The separation unit
// is whatever the producer used; the fitter converts to Bohr.
type Table struct {
	R       []float64
	Columns []Column
}

// Validate checks the structural invariants: at least one row, at
// least one column, and every column as long as the separation axis.
func (t Table) Validate() error {
	if len(t.R) == 0 {
		return ErrNoRows
	}

	if len(t.Columns) == 0 {
		return ErrNoColumns
	}

	for i, col := range t.Columns {
		if len(col.E) != len(t.R) {
			return fmt.Errorf("%w: column %d (%q) has %d values, want %d",
				ErrLengthMismatch, i, col.Name, len(col.E), len(t.R))
		}
	}

	return nil
}

// Names returns the energy column names in order.
func (t Table) Names() []string {
	out := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		out[i] = col.Name
	}

	return out
}

// DistinctCount returns the number of distinct values in r. The fitter
// uses it to decide whether a requested polynomial order is supported
// by the data: duplicated separations add rows but not rank.
func DistinctCount(r []float64) int {
	if len(r) == 0 {
		return 0
	}

	sorted := append([]float64(nil), r...)
	sort.Float64s(sorted)

	count := 1
	for i := 1; i < len(sorted); i++ {
		if sorted[i] != sorted[i-1] {
			count++
		}
	}

	return count
}
