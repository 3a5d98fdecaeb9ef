package orca

import (
	"fmt"
	"strings"
)

const (
	loewdinMarker = "LOEWDIN REDUCED ORBITAL POPULATIONS PER MO"
	closeMarker   = "****************"
	spinUpText    = "SPIN UP"
	spinDownText  = "SPIN DOWN"
	// number of MO columns ORCA prints per group
	groupWidth = 6
)

// Spin selects one channel of an unrestricted calculation
type Spin int

const (
	SpinNone Spin = iota
	SpinUp
	SpinDown
)

func (s Spin) String() string {
	switch s {
	case SpinUp:
		return "UP"
	case SpinDown:
		return "DOWN"
	default:
		return ""
	}
}

// ParseSpin accepts "up" or "down" in any case, and "" for SpinNone
func ParseSpin(s string) (Spin, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "":
		return SpinNone, nil
	case "UP":
		return SpinUp, nil
	case "DOWN":
		return SpinDown, nil
	}
	return SpinNone, fmt.Errorf("unrecognized spin %q, want UP or DOWN", s)
}

type spinMarker string

func (m spinMarker) spin() Spin {
	if m == spinDownText {
		return SpinDown
	}
	return SpinUp
}

func (s Spin) markers() (want, opposite spinMarker) {
	if s == SpinDown {
		return spinDownText, spinUpText
	}
	return spinUpText, spinDownText
}

// LoewdinOptions restrict which part of the population analysis is
// kept. Orbitals holds element_label keys like "O_px"; empty keeps
// everything.
type LoewdinOptions struct {
	Orbitals []string
	Spin     Spin
}

type popState int

const (
	popOutside popState = iota
	popInBlock
	popInHeaderGroup
	popInTableBody
)

// popScanner carries the state of one ReadLoewdin call
type popScanner struct {
	t       *Transcript
	focus   map[string]struct{}
	state   popState
	since   int // lines since the last header, -1 before the first
	current Spin
	result  *PopulationTable
	pending *group
}

func (s *popScanner) accumulated() bool {
	r, _ := s.result.Dims()
	return r > 0 || !s.pending.empty()
}

func (s *popScanner) flush() {
	if !s.pending.empty() {
		s.result = mergeGroup(s.result, s.pending)
	}
	s.pending = nil
}

func (s *popScanner) reset() {
	s.result = newPopulationTable()
	s.pending = nil
	s.since = -1
	if s.state != popOutside {
		s.state = popInBlock
	}
}

func (s *popScanner) isHeader(fields []string) bool {
	return len(fields) == groupWidth && (s.since < 0 || s.since > 3)
}

// ReadLoewdin collects the LOEWDIN REDUCED ORBITAL POPULATIONS PER MO
// section of t. ORCA only prints it with the NormalPrint option, so an
// absent section gives an empty table.
func ReadLoewdin(t *Transcript, opts LoewdinOptions) (*PopulationTable, error) {
	s := &popScanner{t: t}
	s.reset()
	if len(opts.Orbitals) > 0 {
		s.focus = make(map[string]struct{}, len(opts.Orbitals))
		for _, o := range opts.Orbitals {
			s.focus[o] = struct{}{}
		}
	}
scan:
	for i, line := range t.Lines {
		if s.since >= 0 {
			s.since++
		}
		if strings.Contains(line, loewdinMarker) {
			if s.state == popOutside {
				s.state = popInBlock
			}
			continue
		}
		if opts.Spin != SpinNone {
			want, opposite := opts.Spin.markers()
			switch {
			case strings.Contains(line, string(opposite)):
				if s.accumulated() {
					break scan
				}
				s.current = opposite.spin()
			case strings.Contains(line, string(want)):
				// rows already read under the wanted spin are complete,
				// only the other channel's rows are thrown away
				if s.accumulated() {
					if s.current == opts.Spin {
						break scan
					}
					s.reset()
				}
				s.current = opts.Spin
			}
		}
		if s.state == popOutside {
			continue
		}
		if err := s.line(i, line); err != nil {
			return nil, err
		}
	}
	s.flush()
	return s.result, nil
}

func (s *popScanner) line(i int, line string) error {
	fields := strings.Fields(line)
	if s.isHeader(fields) {
		mos, err := toInt(fields)
		if err != nil {
			return parseErr(MalformedPopulationRow, s.t, i, err)
		}
		s.flush()
		s.pending = newGroup(mos)
		s.since = 0
		s.state = popInHeaderGroup
		return nil
	}
	switch s.state {
	case popInHeaderGroup:
		switch s.since {
		case 1:
			return s.column(i, EnergyColumn, fields)
		case 2:
			return s.column(i, OccupationColumn, fields)
		case 3:
			s.state = popInTableBody
		}
	case popInTableBody:
		switch {
		case len(fields) == 0:
			s.state = popInBlock
		case strings.Contains(line, closeMarker):
			s.close()
		default:
			return s.body(i, fields)
		}
	case popInBlock:
		if strings.Contains(line, closeMarker) {
			s.close()
		}
	}
	return nil
}

func (s *popScanner) close() {
	s.flush()
	s.state = popOutside
}

// column stores a whole-group row such as the orbital energies
func (s *popScanner) column(i int, name string, fields []string) error {
	if len(fields) != len(s.pending.mos) {
		return parseErr(MalformedPopulationRow, s.t, i,
			fmt.Errorf("want %d values, got %d",
				len(s.pending.mos), len(fields)))
	}
	vals, err := toFloat(fields)
	if err != nil {
		return parseErr(MalformedPopulationRow, s.t, i, err)
	}
	s.pending.set(name, vals)
	return nil
}

// body handles a line like "0 O  px   0.0  34.6 ..."
func (s *popScanner) body(i int, fields []string) error {
	if len(fields) < 3 {
		return parseErr(MalformedPopulationRow, s.t, i,
			fmt.Errorf("want atom, element and orbital, got %d fields",
				len(fields)))
	}
	if s.focus != nil {
		if _, ok := s.focus[strings.Join(fields[1:3], "_")]; !ok {
			return nil
		}
	}
	return s.column(i, strings.Join(fields[:3], "_"), fields[3:])
}
