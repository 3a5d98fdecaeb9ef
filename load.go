package main

import (
	"io"
	"os"
	"runtime"
	"strings"

	"bwestbro.com/orcaout/orca"
	"github.com/BurntSushi/toml"
)

const (
	FormatText = "text"
	FormatYAML = "yaml"
	FormatXYZ  = "xyz"
)

type RawConf struct {
	Orbitals string `toml:"orbitals"`
	Spin     string `toml:"spin"`
	Scalars  bool   `toml:"scalars"`
	Geom     bool   `toml:"geom"`
	Loewdin  bool   `toml:"loewdin"`
	Gross    bool   `toml:"gross"`
	Format   string `toml:"format"`
	Jobs     int    `toml:"jobs"`
}

// DefaultConf returns the settings used when no config file or flag
// says otherwise
func DefaultConf() RawConf {
	return RawConf{
		Scalars: true,
		Geom:    true,
		Format:  FormatText,
		Jobs:    runtime.NumCPU(),
	}
}

func (rc RawConf) ToConfig() (conf Config, err error) {
	if orbs := strings.Fields(rc.Orbitals); len(orbs) > 0 {
		conf.Orbitals = orbs
	}
	conf.Spin, err = orca.ParseSpin(rc.Spin)
	if err != nil {
		return
	}
	conf.Scalars = rc.Scalars
	conf.Geom = rc.Geom
	// gross populations are computed from the Loewdin table
	conf.Loewdin = rc.Loewdin || rc.Gross
	conf.Gross = rc.Gross
	switch rc.Format {
	case FormatText, FormatYAML, FormatXYZ:
		conf.Format = rc.Format
	case "":
		conf.Format = FormatText
	default:
		return conf, errUnknownFormat(rc.Format)
	}
	conf.Jobs = rc.Jobs
	if conf.Jobs < 1 {
		conf.Jobs = 1
	}
	return
}

type Config struct {
	Orbitals []string
	Spin     orca.Spin
	Scalars  bool
	Geom     bool
	Loewdin  bool
	Gross    bool
	Format   string
	Jobs     int
}

// LoewdinOptions returns the population table filters from conf
func (c Config) LoewdinOptions() orca.LoewdinOptions {
	return orca.LoewdinOptions{
		Orbitals: c.Orbitals,
		Spin:     c.Spin,
	}
}

// LoadRawConf decodes the TOML file filename on top of the defaults
func LoadRawConf(filename string) (RawConf, error) {
	rc := DefaultConf()
	f, err := os.Open(filename)
	if err != nil {
		return rc, err
	}
	defer f.Close()
	cont, err := io.ReadAll(f)
	if err != nil {
		return rc, err
	}
	err = toml.Unmarshal(cont, &rc)
	return rc, err
}

func LoadConfig(filename string) (Config, error) {
	rc, err := LoadRawConf(filename)
	if err != nil {
		return Config{}, err
	}
	return rc.ToConfig()
}
