package orca

import (
	"gonum.org/v1/gonum/mat"
)

const (
	EnergyColumn     = "energy [Ha]"
	OccupationColumn = "occupation"
)

// PopulationTable is a dense table of Loewdin reduced orbital
// populations. Rows are molecular orbitals, columns are the orbital
// energy, its occupation and one column per atom_element_label.
type PopulationTable struct {
	mos  []int
	cols []string
	rows map[int]int
	idx  map[string]int
	data *mat.Dense
}

func newPopulationTable() *PopulationTable {
	return &PopulationTable{
		rows: make(map[int]int),
		idx:  make(map[string]int),
	}
}

// MOs returns the row index: molecular orbital numbers in the order
// they were first seen
func (p *PopulationTable) MOs() []int {
	return append([]int(nil), p.mos...)
}

func (p *PopulationTable) Columns() []string {
	return append([]string(nil), p.cols...)
}

// Dims returns the number of rows and columns
func (p *PopulationTable) Dims() (r, c int) {
	return len(p.mos), len(p.cols)
}

// At returns the value for molecular orbital mo in column col. ok is
// false if either is not in the table.
func (p *PopulationTable) At(mo int, col string) (v float64, ok bool) {
	i, ok := p.rows[mo]
	if !ok {
		return 0, false
	}
	j, ok := p.idx[col]
	if !ok {
		return 0, false
	}
	return p.data.At(i, j), true
}

// Column returns a copy of the named column in row order, or nil if it
// does not exist
func (p *PopulationTable) Column(col string) []float64 {
	j, ok := p.idx[col]
	if !ok {
		return nil
	}
	ret := make([]float64, len(p.mos))
	if p.data != nil {
		mat.Col(ret, j, p.data)
	}
	return ret
}

// Row returns a copy of row i
func (p *PopulationTable) Row(i int) []float64 {
	ret := make([]float64, len(p.cols))
	if p.data != nil {
		mat.Row(ret, i, p.data)
	}
	return ret
}

// Matrix exposes the values as a read-only gonum matrix. It is nil
// for an empty table.
func (p *PopulationTable) Matrix() mat.Matrix {
	if p.data == nil {
		return nil
	}
	return p.data
}

// group is the block of columns under one header line, before it is
// merged into the running table
type group struct {
	mos    []int
	cols   []string
	values map[string][]float64
}

func newGroup(mos []int) *group {
	return &group{
		mos:    mos,
		values: make(map[string][]float64),
	}
}

func (g *group) set(col string, vals []float64) {
	if _, ok := g.values[col]; !ok {
		g.cols = append(g.cols, col)
	}
	g.values[col] = vals
}

func (g *group) empty() bool {
	return g == nil || len(g.mos) == 0
}

// mergeGroup returns a new table holding acc extended by g. Rows are
// matched on MO number, values in g overwrite those in acc, and cells
// neither provides are zero.
func mergeGroup(acc *PopulationTable, g *group) *PopulationTable {
	ret := newPopulationTable()
	if acc != nil {
		for _, mo := range acc.mos {
			ret.addRow(mo)
		}
		for _, col := range acc.cols {
			ret.addCol(col)
		}
	}
	if !g.empty() {
		for _, mo := range g.mos {
			ret.addRow(mo)
		}
		for _, col := range g.cols {
			ret.addCol(col)
		}
	}
	r, c := len(ret.mos), len(ret.cols)
	if r == 0 || c == 0 {
		return ret
	}
	ret.data = mat.NewDense(r, c, nil)
	if acc != nil && acc.data != nil {
		for i, mo := range acc.mos {
			for j, col := range acc.cols {
				ret.data.Set(ret.rows[mo], ret.idx[col], acc.data.At(i, j))
			}
		}
	}
	if !g.empty() {
		for _, col := range g.cols {
			j := ret.idx[col]
			for i, v := range g.values[col] {
				ret.data.Set(ret.rows[g.mos[i]], j, v)
			}
		}
	}
	return ret
}

func (p *PopulationTable) addRow(mo int) {
	if _, ok := p.rows[mo]; ok {
		return
	}
	p.rows[mo] = len(p.mos)
	p.mos = append(p.mos, mo)
}

func (p *PopulationTable) addCol(col string) {
	if _, ok := p.idx[col]; ok {
		return
	}
	p.idx[col] = len(p.cols)
	p.cols = append(p.cols, col)
}
