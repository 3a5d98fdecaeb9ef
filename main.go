package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"runtime"
	"runtime/pprof"

	"bwestbro.com/orcaout/orca"
	"golang.org/x/sync/errgroup"
)

// Errors
var (
	ErrUnknownFormat = errors.New("unknown output format")
	ErrNoInput       = errors.New("no output files given")
)

func errUnknownFormat(f string) error {
	return fmt.Errorf("%w %q", ErrUnknownFormat, f)
}

// Flags
var (
	confFile   = flag.String("config", "", "TOML file of default settings")
	scalars    = flag.Bool("scalars", true, "extract energies, runtime and other scalars")
	geom       = flag.Bool("geom", true, "extract the Cartesian geometry")
	loewdin    = flag.Bool("loewdin", false, "extract the Loewdin reduced orbital populations per MO")
	gross      = flag.Bool("gross", false, "sum the Loewdin populations per orbital")
	orbitals   = flag.String("orbitals", "", "space-separated element_orbital labels to keep, like \"O_px C_pz\"")
	spin       = flag.String("spin", "", "spin channel for unrestricted runs, UP or DOWN")
	format     = flag.String("format", FormatText, "output format: text, yaml or xyz")
	jobs       = flag.Int("j", 0, "number of files to process at once, 0 for one per CPU")
	debug      = flag.Bool("debug", false, "toggle debugging information")
	cpuprofile = flag.String("cpu", "", "write a CPU profile")
)

// Extract runs the scanners selected in conf over the file at path
func Extract(path string, conf Config, logger *slog.Logger) (*Result, error) {
	t, err := orca.ReadTranscript(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded transcript", "path", path, "lines", len(t.Lines))
	res := &Result{Path: path}
	if conf.Scalars {
		s, err := orca.ReadScalars(t, logger)
		if err != nil {
			return nil, err
		}
		res.Scalars = &s
	}
	if conf.Geom {
		res.Molecule, err = orca.ReadMolecule(t)
		if err != nil {
			return nil, err
		}
	}
	if conf.Loewdin {
		res.Loewdin, err = orca.ReadLoewdin(t, conf.LoewdinOptions())
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

// ExtractAll processes paths concurrently, at most conf.Jobs at a
// time, and returns the results in the order of paths. The first error
// stops the remaining files.
func ExtractAll(ctx context.Context, paths []string, conf Config,
	logger *slog.Logger) ([]*Result, error) {
	if len(paths) == 0 {
		return nil, ErrNoInput
	}
	results := make([]*Result, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	if conf.Jobs > 0 {
		g.SetLimit(conf.Jobs)
	}
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := Extract(path, conf, logger)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// buildConfig layers flags the user set explicitly over the config
// file, or over the defaults when there is none
func buildConfig() (Config, error) {
	rc := DefaultConf()
	if *confFile != "" {
		var err error
		rc, err = LoadRawConf(*confFile)
		if err != nil {
			return Config{}, fmt.Errorf("loading %s: %w", *confFile, err)
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "scalars":
			rc.Scalars = *scalars
		case "geom":
			rc.Geom = *geom
		case "loewdin":
			rc.Loewdin = *loewdin
		case "gross":
			rc.Gross = *gross
		case "orbitals":
			rc.Orbitals = *orbitals
		case "spin":
			rc.Spin = *spin
		case "format":
			rc.Format = *format
		case "j":
			rc.Jobs = *jobs
			if rc.Jobs < 1 {
				rc.Jobs = runtime.NumCPU()
			}
		}
	})
	return rc.ToConfig()
}

func main() {
	flag.Parse()
	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr,
		&slog.HandlerOptions{Level: level}))
	conf, err := buildConfig()
	if err != nil {
		log.Fatalf("configuration: %v\n", err)
	}
	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			panic(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}
	results, err := ExtractAll(context.Background(), flag.Args(), conf, logger)
	if err != nil {
		log.Fatalf("%v\n", err)
	}
	if err := WriteResults(os.Stdout, results, conf, isTerminal(os.Stdout)); err != nil {
		log.Fatalf("writing results: %v\n", err)
	}
}
