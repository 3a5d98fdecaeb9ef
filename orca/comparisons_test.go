package orca

import (
	"math"
	"testing"
)

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

func ptrEqual(got *float64, want float64, eps float64) bool {
	return got != nil && math.Abs(*got-want) <= eps
}

func load(t *testing.T, filename string) *Transcript {
	t.Helper()
	tr, err := ReadTranscript(filename)
	if err != nil {
		t.Fatalf("loading %s: %v", filename, err)
	}
	return tr
}
