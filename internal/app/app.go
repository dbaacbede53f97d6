// Package app is the sig2gmt command: flag parsing, configuration layering,
// and mapping a conversion outcome onto an exit code.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/ib-77/sig2gmt/internal/config"
	"github.com/ib-77/sig2gmt/internal/logging"
	"github.com/ib-77/sig2gmt/pkg/convert"
	"github.com/ib-77/sig2gmt/pkg/rop/solo"
)

const (
	ExitOK        = 0
	ExitFailure   = 1
	ExitUsage     = 2
	ExitInterrupt = 130
)

const usageHead = `sig2gmt: split a signature table into one GMT file per source

Usage: sig2gmt [flags]

With no flags the table is read from
  %s
and one file per SOURCE value is written to the working directory.

Flags:
`

type flags struct {
	configPath string
	cfg        config.Config
}

func newFlagSet(f *flags) *pflag.FlagSet {
	fs := pflag.NewFlagSet("sig2gmt", pflag.ContinueOnError)
	fs.SortFlags = false

	fs.StringVarP(&f.configPath, "config", "c", "", "YAML or TOML config file")
	fs.StringVarP(&f.cfg.Input, "input", "i", f.cfg.Input, "signature table (CSV, optionally gzipped)")
	fs.StringVarP(&f.cfg.OutDir, "out-dir", "o", f.cfg.OutDir, "directory for the GMT files")
	fs.StringVarP(&f.cfg.Key, "key", "k", f.cfg.Key, "column to group by; its values name the files")
	fs.StringVar(&f.cfg.Ext, "ext", f.cfg.Ext, "extension appended to every file name")
	fs.StringVar(&f.cfg.Naming, "naming", f.cfg.Naming, "file naming policy: verbatim or sanitize")
	fs.BoolVar(&f.cfg.DryRun, "dry-run", f.cfg.DryRun, "report what would be written without writing")
	fs.BoolVarP(&f.cfg.Quiet, "quiet", "q", f.cfg.Quiet, "log warnings and errors only")
	fs.BoolVarP(&f.cfg.Verbose, "verbose", "v", f.cfg.Verbose, "log debug detail")
	fs.BoolVar(&f.cfg.NoColor, "no-color", f.cfg.NoColor, "disable coloured status output")
	return fs
}

// Run executes the command and returns its exit code.
func Run(ctx context.Context, argv []string, stderr io.Writer) int {
	cfg, err := resolveConfig(argv, os.LookupEnv, stderr)
	if errors.Is(err, pflag.ErrHelp) {
		return ExitOK
	}
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "sig2gmt: %v\n", err)
		return ExitUsage
	}

	console := logging.NewConsole(stderr, cfg.NoColor)
	log := logging.New(stderr, logging.Level(cfg.Quiet, cfg.Verbose))

	res := convert.New(convert.Options{
		Input:    cfg.Input,
		Key:      cfg.Key,
		Resolver: cfg.Resolver(),
		DryRun:   cfg.DryRun,
		Logger:   log,
	}).Run(ctx)

	return solo.Finally(ctx, res,
		func(ctx context.Context, s convert.Summary) int {
			verb := "wrote"
			if s.DryRun {
				verb = "would write"
			}
			if !cfg.Quiet {
				console.Done("%s %s to %s from %s", verb,
					logging.Count(s.Rows, "signature"), logging.Count(len(s.Files), "file"), s.Input)
			}
			return ExitOK
		},
		func(ctx context.Context, err error) int {
			console.Fail("%s: %v", res.Stage(), err)
			return ExitFailure
		},
		func(ctx context.Context, err error) int {
			console.Warn("interrupted during %s", res.Stage())
			return ExitInterrupt
		})
}

// resolveConfig layers defaults, the config file, the environment and the
// command line, in increasing precedence.
func resolveConfig(argv []string, lookup func(string) (string, bool), stderr io.Writer) (config.Config, error) {
	// first pass only finds --config; flag defaults are irrelevant here
	probe := &flags{cfg: config.Default()}
	pfs := newFlagSet(probe)
	pfs.SetOutput(io.Discard)
	pfs.Usage = func() {}
	if err := pfs.Parse(argv); err != nil && !errors.Is(err, pflag.ErrHelp) {
		return config.Config{}, err
	}

	base := config.Default()
	if probe.configPath != "" {
		if err := base.LoadFile(probe.configPath); err != nil {
			return config.Config{}, err
		}
	}
	base.ApplyEnv(lookup)

	f := &flags{cfg: base}
	fs := newFlagSet(f)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		_, _ = fmt.Fprintf(stderr, usageHead, config.DefaultInput)
		fs.PrintDefaults()
	}
	if err := fs.Parse(argv); err != nil {
		return config.Config{}, err
	}
	if fs.NArg() > 0 {
		return config.Config{}, fmt.Errorf("unexpected arguments %q", fs.Args())
	}

	if err := f.cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return f.cfg, nil
}
