// Package orca extracts results from ORCA output files by scanning
// for the textual markers ORCA prints around each section.
package orca

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

var (
	ErrFileNotFound = errors.New("output file not found")
	ErrBlankOutput  = errors.New("blank output")
)

// maximum line length accepted by the scanner, ORCA lines are short
// but basis set echoes can be long
const maxLine = 1 << 20

// Transcript is the full text of one ORCA run, split into lines
type Transcript struct {
	Path  string
	Lines []string
}

// ReadTranscript loads the whole of filename into memory
func ReadTranscript(filename string) (*Transcript, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFileNotFound, err)
	}
	defer f.Close()
	return NewTranscript(filename, f)
}

// NewTranscript reads r to the end. name is only used to label errors
// and warnings.
func NewTranscript(name string, r io.Reader) (*Transcript, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLine)
	t := &Transcript{Path: name}
	for scanner.Scan() {
		t.Lines = append(t.Lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	if len(t.Lines) == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrBlankOutput)
	}
	return t, nil
}

// FromString is a convenience for building a Transcript from literal
// text
func FromString(name, text string) *Transcript {
	text = strings.TrimSuffix(text, "\n")
	return &Transcript{
		Path:  name,
		Lines: strings.Split(text, "\n"),
	}
}
