package orca

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

const (
	geomMarker = "CARTESIAN COORDINATES (ANGSTROEM)"
	ruleMarker = "--------"
)

// Atom is a labeled point, in Angstrom
type Atom struct {
	Label string
	Coord r3.Vec
}

// Molecule is an ordered list of Atoms in the order ORCA printed them
type Molecule struct {
	Atoms []Atom
}

func (m *Molecule) Len() int { return len(m.Atoms) }

func (m *Molecule) Labels() []string {
	ret := make([]string, len(m.Atoms))
	for i, a := range m.Atoms {
		ret[i] = a.Label
	}
	return ret
}

// Coords returns the coordinates flattened as x1, y1, z1, x2, ...
func (m *Molecule) Coords() []float64 {
	ret := make([]float64, 0, 3*len(m.Atoms))
	for _, a := range m.Atoms {
		ret = append(ret, a.Coord.X, a.Coord.Y, a.Coord.Z)
	}
	return ret
}

// Distance returns the distance in Angstrom between atoms i and j
func (m *Molecule) Distance(i, j int) float64 {
	a, b := m.Atoms[i].Coord, m.Atoms[j].Coord
	return r3.Norm(r3.Vec{X: a.X - b.X, Y: a.Y - b.Y, Z: a.Z - b.Z})
}

type geomState int

const (
	geomOutside geomState = iota
	geomInBlock
)

// ReadMolecule returns the geometry printed in the last CARTESIAN
// COORDINATES block of t. A transcript without one yields an empty
// Molecule.
func ReadMolecule(t *Transcript) (*Molecule, error) {
	mol := new(Molecule)
	state := geomOutside
	for i, line := range t.Lines {
		if strings.Contains(line, geomMarker) {
			state = geomInBlock
			mol = new(Molecule)
			continue
		}
		if strings.Contains(line, ruleMarker) {
			continue
		}
		if len(line) < 2 {
			state = geomOutside
		}
		if state == geomOutside {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 4 {
			return nil, parseErr(MalformedGeometryLine, t, i,
				fmt.Errorf("want at least 4 fields, got %d", len(fields)))
		}
		xyz, err := toFloat(fields[len(fields)-3:])
		if err != nil {
			return nil, parseErr(MalformedGeometryLine, t, i, err)
		}
		mol.Atoms = append(mol.Atoms, Atom{
			Label: fields[0],
			Coord: r3.Vec{X: xyz[0], Y: xyz[1], Z: xyz[2]},
		})
	}
	return mol, nil
}
