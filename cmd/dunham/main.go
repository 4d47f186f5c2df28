// Command dunham fits diatomic potential-energy curves and derives
// spectroscopic constants from the fits.
//
// Usage:
//
//	dunham -f curves.dat -mu 0.9796 [flags]
//
// The input file holds a header line of column names (the separation
// axis label followed by one name per energy column) and rows of
// whitespace-separated floating-point values, separations in Bohr and
// energies in Hartree.
//
// Examples:
//
//	dunham -f hcl.dat -mu 0.9796
//	dunham -f hcl.dat -isotopes 1H,35Cl -order 8 -emax -0.45
//	dunham -f curves.dat -mu 0.5 -angstrom -plot 1,2 -plot-out fit.png
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-spectro/curve/sample"
	"github.com/cwbudde/algo-spectro/curve/table"
	"github.com/cwbudde/algo-spectro/render"
	"github.com/cwbudde/algo-spectro/spectro/dunham"
	"github.com/cwbudde/algo-spectro/spectro/mass"
	"github.com/cwbudde/algo-spectro/tableio"
	"github.com/cwbudde/algo-spectro/unit"
)

func main() {
	file := flag.String("f", "", "input file with a table of potential curves (required)")
	mu := flag.Float64("mu", 0, "reduced mass of the diatomic in atomic mass units")
	isotopes := flag.String("isotopes", "", "isotope pair for the reduced mass, e.g. 1H,35Cl (alternative to -mu)")
	order := flag.Int("order", 6, "polynomial fit order (>= 6 for wexe and weye)")
	angstrom := flag.Bool("angstrom", false, "separations are in Angstrom instead of Bohr")
	emax := flag.Float64("emax", 0, "dissociation limit in Hartree; enables Ediss and D0")
	plotCols := flag.String("plot", "", "comma-separated 1-based energy column indices to plot")
	plotOut := flag.String("plot-out", "curves.png", "plot output path (extension selects the format)")
	points := flag.Int("points", 100, "samples per fitted curve in the plot")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: dunham -f file (-mu mass | -isotopes pair) [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Fits polynomials to potential-energy curves and prints the\n")
		fmt.Fprintf(os.Stderr, "spectroscopic constants of each energy column.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  dunham -f hcl.dat -mu 0.9796\n")
		fmt.Fprintf(os.Stderr, "  dunham -f hcl.dat -isotopes 1H,35Cl -order 8 -emax -0.45\n")
		fmt.Fprintf(os.Stderr, "  dunham -f curves.dat -mu 0.5 -plot 1,2 -plot-out fit.svg\n")
	}
	flag.Parse()

	if *file == "" {
		fmt.Fprintf(os.Stderr, "error: -f is required\n\n")
		flag.Usage()
		os.Exit(2)
	}

	reduced, err := reducedMass(*mu, *isotopes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	tbl, err := tableio.Load(*file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	u := unit.Bohr
	if *angstrom {
		u = unit.Angstrom
	}

	entries, err := dunham.AnalyzeTable(tbl, dunham.TableConfig{
		Mu:                reduced,
		Order:             *order,
		Unit:              u,
		DissociationLimit: *emax,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	failed := printConstants(entries, *emax != 0)
	if failed == len(entries) {
		fmt.Fprintln(os.Stderr, "error: no column could be analyzed")
		os.Exit(1)
	}

	if *plotCols != "" {
		if err := plotColumns(tbl, entries, u, *plotCols, *plotOut, *points); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}
}

// reducedMass resolves the -mu / -isotopes pair into one value.
func reducedMass(mu float64, isotopes string) (float64, error) {
	switch {
	case isotopes != "" && mu != 0:
		return 0, fmt.Errorf("-mu and -isotopes are mutually exclusive")
	case isotopes != "":
		parts := strings.Split(isotopes, ",")
		if len(parts) != 2 {
			return 0, fmt.Errorf("-isotopes wants two comma-separated symbols, got %q", isotopes)
		}

		return mass.ReducedOf(strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]))
	case mu > 0:
		return mu, nil
	default:
		return 0, fmt.Errorf("a reduced mass is required: pass -mu or -isotopes")
	}
}

// printConstants tabulates one row per analyzed column, lists the
// omitted constants after the table and returns the number of columns
// that failed outright.
func printConstants(entries []dunham.ColumnAnalysis, withDissociation bool) int {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	header := []string{
		"Name", "Emin (Ha)", "Re (Bohr)", "Re (Ang)", "Be (cm-1)",
		"alpha_e (cm-1)", "we (cm-1)", "wexe (cm-1)", "weye (cm-1)", "De (cm-1)",
	}
	if withDissociation {
		header = append(header, "Ediss (eV)", "D0 (eV)")
	}

	fmt.Fprintln(tw, strings.Join(header, "\t"))

	rule := make([]string, len(header))
	for i, h := range header {
		rule[i] = strings.Repeat("-", len(h))
	}

	fmt.Fprintln(tw, strings.Join(rule, "\t"))

	failed := 0

	for _, entry := range entries {
		if entry.Err != nil {
			failed++

			fmt.Fprintf(os.Stderr, "warning: column %q skipped: %v\n", entry.Name, entry.Err)

			continue
		}

		res := entry.Constants

		row := []string{
			entry.Name,
			fmt.Sprintf("%.6f", res.EMin),
			fmt.Sprintf("%.6f", res.Re),
			fmt.Sprintf("%.6f", res.ReAngstrom),
			fmt.Sprintf("%.6f", res.Be),
			cell(res, "alpha_e"),
			fmt.Sprintf("%.6f", res.We),
			cell(res, "wexe"),
			cell(res, "weye"),
			fmt.Sprintf("%.6f", res.De),
		}
		if withDissociation {
			row = append(row, cell(res, "Ediss"), cell(res, "D0"))
		}

		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}

	for _, entry := range entries {
		if entry.Err != nil {
			continue
		}

		for _, om := range entry.Constants.Omissions {
			if !withDissociation && (om.Constant == "Ediss" || om.Constant == "D0") {
				continue
			}

			fmt.Printf("note: %s: %s omitted, %s\n", entry.Name, om.Constant, om.Reason)
		}
	}

	return failed
}

// cell formats one constant, or "n/a" when the analysis omitted it.
func cell(res dunham.Result, name string) string {
	value, err := res.Constant(name)
	if err != nil {
		return "n/a"
	}

	return fmt.Sprintf("%.6f", value)
}

func plotColumns(tbl table.Table, entries []dunham.ColumnAnalysis, u unit.Length, list, out string, points int) error {
	indices, err := parseIndices(list)
	if err != nil {
		return err
	}

	rb := unit.ToBohr(tbl.R, u)

	var series []render.Series

	for _, ix := range indices {
		if ix < 1 || ix > len(entries) {
			fmt.Fprintf(os.Stderr, "warning: -plot index %d out of range (1..%d)\n", ix, len(entries))
			continue
		}

		entry := entries[ix-1]
		if entry.Err != nil {
			fmt.Fprintf(os.Stderr, "warning: column %q not plotted: %v\n", entry.Name, entry.Err)
			continue
		}

		series = append(series, render.Series{
			Name: entry.Name,
			X:    rb,
			Y:    tbl.Columns[ix-1].E,
		})

		pts, err := sample.Curve(entry.Fit, points)
		if err != nil {
			return fmt.Errorf("sampling %q: %w", entry.Name, err)
		}

		series = append(series, render.Series{
			Name: entry.Name + " fit",
			X:    pts.R,
			Y:    pts.E,
			Line: true,
		})
	}

	if len(series) == 0 {
		return fmt.Errorf("no plottable columns in -plot %q", list)
	}

	if err := render.Save(out, "Potential curves", series); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "wrote %s\n", out)

	return nil
}

func parseIndices(list string) ([]int, error) {
	parts := strings.Split(list, ",")

	indices := make([]int, 0, len(parts))

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		ix, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("bad -plot index %q", part)
		}

		indices = append(indices, ix)
	}

	if len(indices) == 0 {
		return nil, fmt.Errorf("-plot got no indices in %q", list)
	}

	return indices, nil
}
