package main

import (
	"fmt"
	"io"

	"bwestbro.com/orcaout/orca"
	"gopkg.in/yaml.v3"
)

// Result holds everything extracted from one transcript. Fields are
// nil when the corresponding scanner was not requested.
type Result struct {
	Path     string
	Scalars  *orca.Scalars
	Molecule *orca.Molecule
	Loewdin  *orca.PopulationTable
}

type yamlAtom struct {
	Label string    `yaml:"label"`
	XYZ   []float64 `yaml:"xyz,flow"`
}

type yamlTable struct {
	MOs     []int       `yaml:"mos,flow"`
	Columns []string    `yaml:"columns,flow"`
	Rows    [][]float64 `yaml:"rows"`
}

type yamlReport struct {
	Path     string             `yaml:"path"`
	Scalars  *orca.Scalars      `yaml:"scalars,omitempty"`
	Geometry []yamlAtom         `yaml:"geometry,omitempty"`
	Loewdin  *yamlTable         `yaml:"loewdin,omitempty"`
	Gross    map[string]float64 `yaml:"gross_populations,omitempty"`
}

func (r *Result) yaml(gross bool) yamlReport {
	ret := yamlReport{
		Path:    r.Path,
		Scalars: r.Scalars,
	}
	if r.Molecule != nil {
		ret.Geometry = make([]yamlAtom, 0, r.Molecule.Len())
		for _, a := range r.Molecule.Atoms {
			ret.Geometry = append(ret.Geometry, yamlAtom{
				Label: a.Label,
				XYZ:   []float64{a.Coord.X, a.Coord.Y, a.Coord.Z},
			})
		}
	}
	if r.Loewdin != nil {
		n, _ := r.Loewdin.Dims()
		tab := &yamlTable{
			MOs:     r.Loewdin.MOs(),
			Columns: r.Loewdin.Columns(),
			Rows:    make([][]float64, n),
		}
		for i := range tab.Rows {
			tab.Rows[i] = r.Loewdin.Row(i)
		}
		ret.Loewdin = tab
		if gross {
			labels, pops := GrossPopulations(r.Loewdin)
			if len(labels) > 0 {
				ret.Gross = make(map[string]float64, len(labels))
				for i, l := range labels {
					ret.Gross[l] = pops.AtVec(i)
				}
			}
		}
	}
	return ret
}

// WriteResults renders results to w in conf.Format. pretty selects box
// tables for the text format.
func WriteResults(w io.Writer, results []*Result, conf Config, pretty bool) error {
	switch conf.Format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		for _, r := range results {
			if err := enc.Encode(r.yaml(conf.Gross)); err != nil {
				return err
			}
		}
		return enc.Close()
	case FormatXYZ:
		for _, r := range results {
			if r.Molecule == nil {
				continue
			}
			WriteXYZ(w, r.Path, r.Molecule)
		}
		return nil
	case FormatText, "":
		for _, r := range results {
			writeText(w, r, conf, pretty)
		}
		return nil
	}
	return errUnknownFormat(conf.Format)
}

func writeText(w io.Writer, r *Result, conf Config, pretty bool) {
	fmt.Fprintf(w, "== %s\n", r.Path)
	if r.Scalars != nil {
		WriteScalars(w, *r.Scalars, pretty)
		fmt.Fprint(w, "\n")
	}
	if r.Molecule != nil {
		fmt.Fprintf(w, "%d atoms\n", r.Molecule.Len())
		fmt.Fprint(w, ZipGeom(r.Molecule.Labels(), r.Molecule.Coords()))
		fmt.Fprint(w, "\n")
	}
	if r.Loewdin != nil {
		if pretty {
			fmt.Fprintln(w, PrettyTable(r.Loewdin))
		} else {
			WriteTable(w, r.Loewdin)
		}
		if conf.Gross {
			labels, pops := GrossPopulations(r.Loewdin)
			for i, l := range labels {
				fmt.Fprintf(w, "%-14s%12.6f\n", l, pops.AtVec(i))
			}
			fmt.Fprintf(w, "%-14s%12.6f\n\n", "total", Total(pops))
		}
	}
}
