package orca

import (
	"errors"
	"fmt"
)

// Kind classifies a fatal parse failure
type Kind int

const (
	MalformedScalarLine Kind = iota + 1
	MalformedGeometryLine
	MalformedPopulationRow
)

func (k Kind) String() string {
	switch k {
	case MalformedScalarLine:
		return "malformed scalar line"
	case MalformedGeometryLine:
		return "malformed geometry line"
	case MalformedPopulationRow:
		return "malformed population row"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

var (
	ErrMalformedScalarLine    = errors.New(MalformedScalarLine.String())
	ErrMalformedGeometryLine  = errors.New(MalformedGeometryLine.String())
	ErrMalformedPopulationRow = errors.New(MalformedPopulationRow.String())
)

func (k Kind) sentinel() error {
	switch k {
	case MalformedScalarLine:
		return ErrMalformedScalarLine
	case MalformedGeometryLine:
		return ErrMalformedGeometryLine
	case MalformedPopulationRow:
		return ErrMalformedPopulationRow
	}
	return nil
}

// ParseError reports a marker line that matched but could not be
// parsed. Line is 1-based.
type ParseError struct {
	Kind Kind
	Path string
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("%s:%d: %s: %q", e.Path, e.Line, e.Kind, e.Text)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() error { return e.Err }

// Is lets errors.Is match a ParseError against the sentinel for its
// Kind
func (e *ParseError) Is(target error) bool {
	return target != nil && target == e.Kind.sentinel()
}

func parseErr(kind Kind, t *Transcript, i int, err error) *ParseError {
	return &ParseError{
		Kind: kind,
		Path: t.Path,
		Line: i + 1,
		Text: t.Lines[i],
		Err:  err,
	}
}
