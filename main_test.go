package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"bwestbro.com/orcaout/orca"
)

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

func allConf() Config {
	return Config{
		Scalars: true,
		Geom:    true,
		Loewdin: true,
		Gross:   true,
		Format:  FormatText,
		Jobs:    2,
	}
}

func TestExtract(t *testing.T) {
	got, err := Extract(h2oOut, allConf(), quiet)
	if err != nil {
		t.Fatal(err)
	}
	if got.Scalars == nil || got.Scalars.FinalEnergy == nil ||
		*got.Scalars.FinalEnergy != -76.326436522651 {
		t.Errorf("got %+v, wanted final energy %v\n", got.Scalars, -76.326436522651)
	}
	if got.Molecule.Len() != 3 {
		t.Errorf("got %d atoms, wanted 3\n", got.Molecule.Len())
	}
	if r, c := got.Loewdin.Dims(); r != 12 || c != 8 {
		t.Errorf("got %dx%d, wanted 12x8\n", r, c)
	}
}

func TestExtractSelected(t *testing.T) {
	got, err := Extract(h2oOut, Config{Geom: true, Jobs: 1}, quiet)
	if err != nil {
		t.Fatal(err)
	}
	if got.Scalars != nil || got.Loewdin != nil {
		t.Errorf("got %+v, wanted geometry only\n", got)
	}
}

func TestExtractAll(t *testing.T) {
	paths := []string{h2oOut, h2oOut, h2oOut}
	got, err := ExtractAll(context.Background(), paths, allConf(), quiet)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(paths) {
		t.Fatalf("got %d results, wanted %d\n", len(got), len(paths))
	}
	for i, r := range got {
		if r.Path != paths[i] {
			t.Errorf("got %v, wanted %v\n", r.Path, paths[i])
		}
	}
}

func TestExtractAllErrors(t *testing.T) {
	_, err := ExtractAll(context.Background(),
		[]string{h2oOut, "testfiles/missing.out"}, allConf(), quiet)
	if !errors.Is(err, orca.ErrFileNotFound) {
		t.Errorf("got %v, wanted %v\n", err, orca.ErrFileNotFound)
	}
	_, err = ExtractAll(context.Background(), nil, allConf(), quiet)
	if !errors.Is(err, ErrNoInput) {
		t.Errorf("got %v, wanted %v\n", err, ErrNoInput)
	}
}

func TestWriteResults(t *testing.T) {
	res, err := Extract(h2oOut, allConf(), quiet)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		format string
		want   []string
	}{
		{
			format: FormatText,
			want: []string{
				"== " + h2oOut,
				"3 atoms",
				"final energy [Eh]",
				"0_O_py            2.000000",
			},
		},
		{
			format: FormatYAML,
			want: []string{
				"path: " + h2oOut,
				"final_energy: -76.326436522651",
				"homo_energy_ev: null",
				"has_imaginary_frequency: false",
				"gross_populations:",
			},
		},
		{
			format: FormatXYZ,
			want:   []string{"3\n" + h2oOut + "\nO "},
		},
	}
	for _, test := range tests {
		conf := allConf()
		conf.Format = test.format
		var buf bytes.Buffer
		if err := WriteResults(&buf, []*Result{res}, conf, false); err != nil {
			t.Fatal(err)
		}
		for _, w := range test.want {
			if !strings.Contains(buf.String(), w) {
				t.Errorf("%s: %q not found in\n%s\n", test.format, w, buf.String())
			}
		}
	}
	conf := allConf()
	conf.Format = "csv"
	err = WriteResults(io.Discard, []*Result{res}, conf, false)
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("got %v, wanted %v\n", err, ErrUnknownFormat)
	}
}
