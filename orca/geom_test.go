package orca

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestReadMolecule(t *testing.T) {
	got, err := ReadMolecule(load(t, "testfiles/h2o.out"))
	if err != nil {
		t.Fatal(err)
	}
	want := &Molecule{Atoms: []Atom{
		{"O", r3.Vec{X: 0, Y: 0, Z: 0.117790}},
		{"H", r3.Vec{X: 0, Y: 0.755453, Z: -0.471161}},
		{"H", r3.Vec{X: 0, Y: -0.755453, Z: -0.471161}},
	}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, wanted %v\n", got, want)
	}
	if !reflect.DeepEqual(got.Labels(), []string{"O", "H", "H"}) {
		t.Errorf("got %v, wanted %v\n", got.Labels(), []string{"O", "H", "H"})
	}
	wantCoords := []float64{
		0, 0, 0.117790,
		0, 0.755453, -0.471161,
		0, -0.755453, -0.471161,
	}
	if !reflect.DeepEqual(got.Coords(), wantCoords) {
		t.Errorf("got %v, wanted %v\n", got.Coords(), wantCoords)
	}
}

func TestDistance(t *testing.T) {
	mol, _ := ReadMolecule(load(t, "testfiles/h2o.out"))
	got := mol.Distance(0, 1)
	want := math.Sqrt(0.755453*0.755453 + 0.588951*0.588951)
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("got %v, wanted %v\n", got, want)
	}
}

func TestReadMoleculeNoBlock(t *testing.T) {
	got, err := ReadMolecule(FromString("none", "FINAL SINGLE POINT ENERGY  -1.0\n"))
	if err != nil {
		t.Fatal(err)
	}
	if got.Len() != 0 {
		t.Errorf("got %d atoms, wanted 0\n", got.Len())
	}
}

func TestReadMoleculeLastBlock(t *testing.T) {
	text := `CARTESIAN COORDINATES (ANGSTROEM)
---------------------------------
  H      0.0    0.0    0.0
  H      0.0    0.0    0.8

GEOMETRY OPTIMIZATION CYCLE   2
CARTESIAN COORDINATES (ANGSTROEM)
---------------------------------
  H      0.0    0.0    0.0
  H      0.0    0.0    0.74

`
	got, err := ReadMolecule(FromString("opt", text))
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{0, 0, 0, 0, 0, 0.74}
	if !reflect.DeepEqual(got.Coords(), want) {
		t.Errorf("got %v, wanted %v\n", got.Coords(), want)
	}
}

func TestReadMoleculeMalformed(t *testing.T) {
	tests := []string{
		"CARTESIAN COORDINATES (ANGSTROEM)\n  O  0.0  1.0\n",
		"CARTESIAN COORDINATES (ANGSTROEM)\n  O  0.0  abc  1.0\n",
	}
	for _, test := range tests {
		_, err := ReadMolecule(FromString("bad", test))
		if !errors.Is(err, ErrMalformedGeometryLine) {
			t.Errorf("got %v, wanted %v\n", err, ErrMalformedGeometryLine)
		}
	}
}

func TestReadMoleculeRules(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []float64
	}{
		{
			name: "rule under the marker",
			text: "CARTESIAN COORDINATES (ANGSTROEM)\n" +
				"---------------------------------\n" +
				"  H      0.0    0.0    0.0\n" +
				"  H      0.0    0.0    0.74\n\n",
			want: []float64{0, 0, 0, 0, 0, 0.74},
		},
		{
			name: "rule inside the block",
			text: "CARTESIAN COORDINATES (ANGSTROEM)\n" +
				"---------------------------------\n" +
				"  H      0.0    0.0    0.0\n" +
				"---------------------------------\n" +
				"  H      0.0    0.0    0.74\n\n",
			want: []float64{0, 0, 0, 0, 0, 0.74},
		},
		{
			name: "blank line ends the block",
			text: "CARTESIAN COORDINATES (ANGSTROEM)\n" +
				"  H      0.0    0.0    0.0\n" +
				"\n" +
				"  not a coordinate line\n",
			want: []float64{0, 0, 0},
		},
	}
	for _, test := range tests {
		got, err := ReadMolecule(FromString("rules", test.text))
		if err != nil {
			t.Fatalf("%s: %v", test.name, err)
		}
		if !reflect.DeepEqual(got.Coords(), test.want) {
			t.Errorf("%s: got %v, wanted %v\n", test.name, got.Coords(), test.want)
		}
	}
}

func TestReadMoleculeIdempotent(t *testing.T) {
	tr := load(t, "testfiles/h2o.out")
	a, err := ReadMolecule(tr)
	if err != nil {
		t.Fatal(err)
	}
	b, err := ReadMolecule(tr)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Errorf("got %v, wanted %v\n", b, a)
	}
}
