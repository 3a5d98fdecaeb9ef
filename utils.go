package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"bwestbro.com/orcaout/orca"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
)

// ZipGeom combines a list of names with a list of coordinates to
// yield a string geometry
func ZipGeom(names []string, coords []float64) string {
	var geom strings.Builder
	for i := range names {
		fmt.Fprintf(&geom, "%-2s%20.12f%20.12f%20.12f\n",
			names[i],
			coords[3*i],
			coords[3*i+1],
			coords[3*i+2],
		)
	}
	return geom.String()
}

// WriteXYZ writes mol in the XYZ format with comment as the title line
func WriteXYZ(w io.Writer, comment string, mol *orca.Molecule) {
	fmt.Fprintf(w, "%d\n%s\n", mol.Len(), comment)
	fmt.Fprint(w, ZipGeom(mol.Labels(), mol.Coords()))
}

// WriteTable writes the population table in plain fixed-width columns,
// one row per molecular orbital
func WriteTable(w io.Writer, t *orca.PopulationTable) {
	r, _ := t.Dims()
	fmt.Fprintf(w, "%5s", "MO")
	for _, col := range t.Columns() {
		fmt.Fprintf(w, "%14s", col)
	}
	fmt.Fprint(w, "\n")
	mos := t.MOs()
	for i := 0; i < r; i++ {
		fmt.Fprintf(w, "%5d", mos[i])
		for _, v := range t.Row(i) {
			fmt.Fprintf(w, "%14.6f", v)
		}
		fmt.Fprint(w, "\n")
	}
	fmt.Fprint(w, "\n")
}

// renderTable draws headers and rows as a rounded box table, with every
// column after the first right-aligned
func renderTable(headers []string, rows [][]string) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	// orbital labels and units are case sensitive
	tw.Style().Format.Header = text.FormatDefault
	header := make(table.Row, columns)
	for i := range headers {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)
	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			}
		}
		tw.AppendRow(r)
	}
	configs := make([]table.ColumnConfig, 0, columns)
	for i := 1; i < columns; i++ {
		configs = append(configs, table.ColumnConfig{
			Number:      i + 1,
			Align:       text.AlignRight,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(configs)
	return tw.Render()
}

// PrettyTable renders the population table for a terminal
func PrettyTable(t *orca.PopulationTable) string {
	headers := append([]string{"MO"}, t.Columns()...)
	r, _ := t.Dims()
	mos := t.MOs()
	rows := make([][]string, r)
	for i := 0; i < r; i++ {
		row := []string{strconv.Itoa(mos[i])}
		for _, v := range t.Row(i) {
			row = append(row, strconv.FormatFloat(v, 'f', 6, 64))
		}
		rows[i] = row
	}
	return renderTable(headers, rows)
}

// scalarRows lists the scalar results as name, value pairs. Unset
// values are shown as "-".
func scalarRows(s orca.Scalars) [][]string {
	return [][]string{
		{"runtime [s]", fmtFloat(s.Runtime)},
		{"final energy [Eh]", fmtFloat(s.FinalEnergy)},
		{"finished normally", strconv.FormatBool(s.FinishedNormally)},
		{"electrons", fmtInt(s.Electrons)},
		{"HOMO [eV]", fmtFloat(s.HOMO)},
		{"LUMO [eV]", fmtFloat(s.LUMO)},
		{"imaginary frequency", fmtBool(s.ImaginaryFreq)},
		{"Gibbs free energy [Eh]", fmtFloat(s.GibbsFreeEnergy)},
	}
}

func WriteScalars(w io.Writer, s orca.Scalars, pretty bool) {
	rows := scalarRows(s)
	if pretty {
		fmt.Fprintln(w, renderTable([]string{"Property", "Value"}, rows))
		return
	}
	for _, row := range rows {
		fmt.Fprintf(w, "%-24s%20s\n", row[0], row[1])
	}
}

func fmtFloat(v *float64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func fmtInt(v *int) string {
	if v == nil {
		return "-"
	}
	return strconv.Itoa(*v)
}

func fmtBool(v *bool) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatBool(*v)
}

// isTerminal reports whether w is an interactive terminal, in which
// case tables are drawn with box characters
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
