package dunham

import (
	"fmt"

	"github.com/cwbudde/algo-spectro/curve/fit"
	"github.com/cwbudde/algo-spectro/curve/table"
	"github.com/cwbudde/algo-spectro/unit"
)

// defaultOrder is the fit order used when TableConfig leaves it zero.
// Order six is the lowest that yields the full constant set.
const defaultOrder = 6

// TableConfig holds the parameters of a batch analysis.
type TableConfig struct {
	// Mu is the reduced mass in unified atomic mass units.
	Mu float64

	// Order is the polynomial fit order; zero means defaultOrder.
	Order int

	// Unit is the unit of the table's separation axis.
	Unit unit.Length

	// Columns selects energy columns by index; empty means all.
	Columns []int

	// DissociationLimit enables Ediss/D0 when nonzero, in Hartree.
	DissociationLimit float64
}

// ColumnAnalysis is the outcome for one energy column. Err is set when
// the column failed to fit or analyze; the other fields hold whatever
// was produced before the failure.
type ColumnAnalysis struct {
	Name      string
	Fit       fit.Result
	Constants Result
	Err       error
}

// AnalyzeTable fits and analyzes the selected energy columns of a
// table. Failures are per-column: one bad column reports its error in
// its ColumnAnalysis and leaves the others untouched. The returned
// error is reserved for problems with the table or configuration as a
// whole.
func AnalyzeTable(tbl table.Table, cfg TableConfig) ([]ColumnAnalysis, error) {
	if err := tbl.Validate(); err != nil {
		return nil, fmt.Errorf("dunham: %w", err)
	}

	if cfg.Mu <= 0 {
		return nil, fmt.Errorf("%w: got %g", ErrInvalidMass, cfg.Mu)
	}

	order := cfg.Order
	if order == 0 {
		order = defaultOrder
	}

	selected := cfg.Columns
	if len(selected) == 0 {
		selected = make([]int, len(tbl.Columns))
		for i := range selected {
			selected[i] = i
		}
	}

	analyzer := NewAnalyzer(Config{
		Mu:                cfg.Mu,
		DissociationLimit: cfg.DissociationLimit,
	})

	out := make([]ColumnAnalysis, len(selected))

	for i, idx := range selected {
		entry := &out[i]

		if idx < 0 || idx >= len(tbl.Columns) {
			entry.Name = fmt.Sprintf("column %d", idx)
			entry.Err = fmt.Errorf("%w: %d of %d", fit.ErrColumnRange, idx, len(tbl.Columns))

			continue
		}

		entry.Name = tbl.Columns[idx].Name

		fr, err := fit.Column(tbl, idx, order, fit.WithUnit(cfg.Unit))
		if err != nil {
			entry.Err = err
			continue
		}

		entry.Fit = fr

		constants, err := analyzer.Analyze(fr)
		if err != nil {
			entry.Err = err
			continue
		}

		entry.Constants = constants
	}

	return out, nil
}
