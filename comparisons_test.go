package main

import (
	"math"
	"testing"

	"bwestbro.com/orcaout/orca"
)

const h2oOut = "orca/testfiles/h2o.out"

func compFloat(a, b []float64, eps float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > eps {
			return false
		}
	}
	return true
}

func h2oLoewdin(t *testing.T) *orca.PopulationTable {
	t.Helper()
	tr, err := orca.ReadTranscript(h2oOut)
	if err != nil {
		t.Fatal(err)
	}
	tab, err := orca.ReadLoewdin(tr, orca.LoewdinOptions{})
	if err != nil {
		t.Fatal(err)
	}
	return tab
}
