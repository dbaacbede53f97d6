// Package config holds the converter settings and the layers that fill
// them: defaults, an optional YAML or TOML file, and SIG2GMT_* variables.
// Command-line flags are applied last by the caller.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/komkom/toml"

	"github.com/ib-77/sig2gmt/pkg/naming"
	"github.com/ib-77/sig2gmt/pkg/signature"
)

// DefaultInput is the dump location relative to the working directory.
const DefaultInput = "../data/bioqc_geo_oracle_dump/BIOQC_SIGNATURES_DATA_TABLE.csv"

const envPrefix = "SIG2GMT_"

type Config struct {
	Input   string `yaml:"input" json:"input"`
	OutDir  string `yaml:"out_dir" json:"out_dir"`
	Key     string `yaml:"key" json:"key"`
	Ext     string `yaml:"ext" json:"ext"`
	Naming  string `yaml:"naming" json:"naming"`
	DryRun  bool   `yaml:"dry_run" json:"dry_run"`
	Quiet   bool   `yaml:"quiet" json:"quiet"`
	Verbose bool   `yaml:"verbose" json:"verbose"`
	NoColor bool   `yaml:"no_color" json:"no_color"`
}

// Default reproduces a bare run: the fixed dump path, grouped by SOURCE,
// written verbatim into the working directory.
func Default() Config {
	return Config{
		Input:  DefaultInput,
		OutDir: ".",
		Key:    signature.ColSource,
		Naming: string(naming.Verbatim),
	}
}

// LoadFile overlays the settings found in path onto c. The format follows
// the extension: .yaml/.yml or .toml. Unknown keys are an error.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.UnmarshalWithOptions(data, c, yaml.DisallowUnknownField())
	case ".toml":
		dec := json.NewDecoder(toml.New(bytes.NewReader(data)))
		dec.DisallowUnknownFields()
		err = dec.Decode(c)
	default:
		return fmt.Errorf("config %s: unsupported format %q", path, ext)
	}
	if err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overlays SIG2GMT_INPUT, SIG2GMT_OUT_DIR and SIG2GMT_KEY.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	for name, dst := range map[string]*string{
		"INPUT":   &c.Input,
		"OUT_DIR": &c.OutDir,
		"KEY":     &c.Key,
	} {
		if v, ok := lookup(envPrefix + name); ok && v != "" {
			*dst = v
		}
	}
}

func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Input) == "" {
		errs = append(errs, errors.New("input path is empty"))
	}
	if strings.TrimSpace(c.Key) == "" {
		errs = append(errs, errors.New("key column is empty"))
	}
	if _, err := naming.ParsePolicy(c.Naming); err != nil {
		errs = append(errs, err)
	}
	if c.Quiet && c.Verbose {
		errs = append(errs, errors.New("quiet and verbose are mutually exclusive"))
	}
	return errors.Join(errs...)
}

// Resolver builds the output naming for c. Call Validate first.
func (c Config) Resolver() naming.Resolver {
	p, _ := naming.ParsePolicy(c.Naming)
	return naming.Resolver{Dir: c.OutDir, Ext: c.Ext, Policy: p}
}
