package orca

import (
	"log/slog"
	"math"
	"strings"
)

const (
	finalEnergyMarker  = "FINAL SINGLE POINT ENERGY"
	notConvergedMarker = "Wavefunction not fully converged!"
	runtimeMarker      = "Sum of individual times"
	terminatedMarker   = "****ORCA TERMINATED NORMALLY****"
	electronsMarker    = "N(Total)"
	gibbsMarker        = "Final Gibbs free energy"
	moHeaderMarker     = "NO   OCC          E(Eh)            E(eV)"
	frequencyMarker    = "frequencies"
	imaginaryMarker    = "***imaginary mode***"
)

// Scalars holds the single-valued results of a run. Nil pointers mean
// the corresponding section was not found.
type Scalars struct {
	Runtime          *float64 `yaml:"runtime"`
	FinalEnergy      *float64 `yaml:"final_energy"`
	FinishedNormally bool     `yaml:"finished_normally"`
	Electrons        *int     `yaml:"electron_count"`
	HOMO             *float64 `yaml:"homo_energy_ev"`
	LUMO             *float64 `yaml:"lumo_energy_ev"`
	ImaginaryFreq    *bool    `yaml:"has_imaginary_frequency"`
	GibbsFreeEnergy  *float64 `yaml:"gibbs_free_energy"`
}

type scalarField int

const (
	fieldFinalEnergy scalarField = iota
	fieldRuntime
	fieldElectrons
	fieldGibbs
)

// scalarRule maps a marker to the token holding its value. Negative
// indices count from the end of the line.
type scalarRule struct {
	marker string
	index  int
	field  scalarField
}

var scalarRules = []scalarRule{
	{finalEnergyMarker, 4, fieldFinalEnergy},
	{runtimeMarker, 5, fieldRuntime},
	{electronsMarker, -2, fieldElectrons},
	{gibbsMarker, -2, fieldGibbs},
}

func (s *Scalars) set(f scalarField, v float64) {
	switch f {
	case fieldFinalEnergy:
		s.FinalEnergy = &v
	case fieldRuntime:
		s.Runtime = &v
	case fieldElectrons:
		n := int(math.Floor(v))
		s.Electrons = &n
	case fieldGibbs:
		s.GibbsFreeEnergy = &v
	}
}

type moState int

const (
	moOutside moState = iota
	moInBlock
)

// ReadScalars makes one pass over t collecting the Scalars. A nil
// logger uses slog.Default.
func ReadScalars(t *Transcript, logger *slog.Logger) (Scalars, error) {
	if logger == nil {
		logger = slog.Default()
	}
	var (
		ret       Scalars
		mo        = moOutside
		freqCalc  bool
		imaginary bool
	)
	for i, line := range t.Lines {
		fields := strings.Fields(line)
		for _, rule := range scalarRules {
			if !strings.Contains(line, rule.marker) {
				continue
			}
			v, err := floatField(fields, rule.index)
			if err != nil {
				return Scalars{}, parseErr(MalformedScalarLine, t, i, err)
			}
			if rule.field == fieldFinalEnergy &&
				strings.Contains(line, notConvergedMarker) {
				logger.Warn("SCF did not fully converge",
					"path", t.Path, "line", i+1)
			}
			ret.set(rule.field, v)
		}
		if strings.Contains(line, terminatedMarker) {
			ret.FinishedNormally = true
		}
		if strings.Contains(line, moHeaderMarker) {
			mo = moInBlock
			continue
		}
		if mo == moInBlock {
			if len(fields) == 0 {
				mo = moOutside
			} else {
				occ, err := floatField(fields, 1)
				if err != nil {
					return Scalars{}, parseErr(MalformedScalarLine, t, i, err)
				}
				energy, err := floatField(fields, -1)
				if err != nil {
					return Scalars{}, parseErr(MalformedScalarLine, t, i, err)
				}
				if occ == 1 {
					ret.HOMO = &energy
				} else {
					ret.LUMO = &energy
					mo = moOutside
				}
			}
		}
		if strings.Contains(strings.ToLower(line), frequencyMarker) {
			freqCalc = true
			continue
		}
		if freqCalc && strings.Contains(line, imaginaryMarker) {
			imaginary = true
		}
	}
	if freqCalc {
		ret.ImaginaryFreq = &imaginary
	}
	return ret, nil
}
