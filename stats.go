package main

import (
	"bwestbro.com/orcaout/orca"
	"gonum.org/v1/gonum/mat"
)

// GrossPopulations sums each orbital column of t weighted by the
// occupation of every MO. Reduced populations are percentages, so the
// result is in electrons. labels gives the column name of each entry of
// pops; both are nil if t has no occupations or no orbital columns.
func GrossPopulations(t *orca.PopulationTable) (labels []string, pops *mat.VecDense) {
	r, _ := t.Dims()
	occ := t.Column(orca.OccupationColumn)
	if r == 0 || occ == nil {
		return nil, nil
	}
	w := mat.NewVecDense(r, occ)
	w.ScaleVec(0.01, w)
	var all mat.VecDense
	all.MulVec(t.Matrix().T(), w)
	vals := make([]float64, 0, all.Len())
	for j, col := range t.Columns() {
		if col == orca.EnergyColumn || col == orca.OccupationColumn {
			continue
		}
		labels = append(labels, col)
		vals = append(vals, all.AtVec(j))
	}
	if len(labels) == 0 {
		return nil, nil
	}
	return labels, mat.NewVecDense(len(vals), vals)
}

// Total returns the sum of the gross populations
func Total(pops *mat.VecDense) float64 {
	if pops == nil {
		return 0
	}
	return mat.Sum(pops)
}
