// Package tableio loads whitespace-delimited potential-curve tables.
//
// The expected layout is a header line of column names (the separation
// axis label followed by one name per energy column) and one row of
// floating-point values per observed separation. Blank lines are
// skipped; rows with a wrong field count or unparseable values are
// reported with their line number.
package tableio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-spectro/curve/table"
)

// Errors returned by the table loader.
var (
	ErrMissingHeader = errors.New("tableio: missing header line")
	ErrTooFewColumns = errors.New("tableio: need a separation column and at least one energy column")
	ErrBadRow        = errors.New("tableio: malformed data row")
	ErrNoData        = errors.New("tableio: no data rows")
)

// Load reads a table from a file.
func Load(path string) (table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return table.Table{}, fmt.Errorf("tableio: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads a table from r.
func Parse(r io.Reader) (table.Table, error) {
	scanner := bufio.NewScanner(r)

	var names []string

	lineNum := 0
	for scanner.Scan() {
		lineNum++

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		names = fields

		break
	}

	if names == nil {
		if err := scanner.Err(); err != nil {
			return table.Table{}, fmt.Errorf("tableio: reading input: %w", err)
		}

		return table.Table{}, ErrMissingHeader
	}

	if len(names) < 2 {
		return table.Table{}, fmt.Errorf("%w: header has %d", ErrTooFewColumns, len(names))
	}

	tbl := table.Table{Columns: make([]table.Column, len(names)-1)}
	for i, name := range names[1:] {
		tbl.Columns[i].Name = name
	}

	for scanner.Scan() {
		lineNum++

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		if len(fields) != len(names) {
			return table.Table{}, fmt.Errorf("%w: line %d has %d fields, want %d",
				ErrBadRow, lineNum, len(fields), len(names))
		}

		row := make([]float64, len(fields))
		for i, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return table.Table{}, fmt.Errorf("%w: line %d: %q is not a number",
					ErrBadRow, lineNum, field)
			}

			row[i] = v
		}

		tbl.R = append(tbl.R, row[0])
		for i := range tbl.Columns {
			tbl.Columns[i].E = append(tbl.Columns[i].E, row[i+1])
		}
	}

	if err := scanner.Err(); err != nil {
		return table.Table{}, fmt.Errorf("tableio: reading input: %w", err)
	}

	if len(tbl.R) == 0 {
		return table.Table{}, ErrNoData
	}

	return tbl, nil
}
