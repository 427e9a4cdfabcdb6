// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"gcalc/internal/config"
)

type Options struct {
	trace        bool
	format       rune
	showClass    bool
	showIdentity bool
	oneline      bool
	workers      int
	registry     bool
	registryPath string
}

var options = Options{
	format: 'C',
}

// flagValues holds raw flag input until it is merged over the config file.
type flagValues struct {
	configPath   string
	format       string
	showClass    bool
	showIdentity bool
	oneline      bool
	trace        bool
	registry     string
	workers      int
}

func bindFlags(cmd *cobra.Command, flags *flagValues) {
	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", config.DefaultPath(), "Path to YAML configuration")
	pf.StringVarP(&flags.format, "format", "f", "", "Display format: C canonical, R raw, I improper, M mixed")
	pf.BoolVarP(&flags.showClass, "class", "c", false, "Show the number class of each value")
	pf.BoolVarP(&flags.showIdentity, "uuid", "u", false, "Show the identity URI of each value")
	pf.BoolVarP(&flags.oneline, "oneline", "o", false, "Show final stack on one line")
	pf.BoolVarP(&flags.trace, "trace", "t", false, "Trace operations")
	pf.StringVar(&flags.registry, "registry", "", "Record printed identities in this sqlite database")
	pf.IntVar(&flags.workers, "workers", 0, "Workers for batch identity derivation (0: one per CPU)")
}

// resolveOptions merges command-line flags over the configuration.
func resolveOptions(cmd *cobra.Command, flags *flagValues) (*config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, err
	}

	changed := cmd.Flags().Changed
	if changed("format") {
		cfg.Format = flags.format
	}
	if changed("class") {
		cfg.ShowClass = flags.showClass
	}
	if changed("uuid") {
		cfg.ShowIdentity = flags.showIdentity
	}
	if changed("workers") {
		cfg.Workers = flags.workers
	}
	if changed("registry") {
		cfg.Registry.Enabled = true
		cfg.Registry.Path = flags.registry
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	options = Options{
		trace:        flags.trace,
		format:       cfg.FormatCode(),
		showClass:    cfg.ShowClass,
		showIdentity: cfg.ShowIdentity,
		oneline:      flags.oneline,
		workers:      cfg.Workers,
		registry:     cfg.Registry.Enabled,
		registryPath: cfg.Registry.Path,
	}
	return cfg, nil
}

func heredoc(text string) string {
	lines := strings.Split(strings.TrimRight(text, " \t\n"), "\n")

	// Find the minimum leading whitespace for non-empty lines
	minIndent := -1
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" {
			leadingSpaces := len(line) - len(strings.TrimLeft(line, " "))
			if minIndent == -1 || leadingSpaces < minIndent {
				minIndent = leadingSpaces
			}
		}
	}

	// Remove the minimum leading whitespace from each line
	for i, line := range lines {
		if len(line) >= minIndent {
			lines[i] = line[minIndent:]
		}
	}

	return strings.TrimLeft(strings.Join(lines, "\n"), "\n")
}

func longHelp() string {
	return fmt.Sprintf("%s\n", heredoc(`
        Exact reverse-Polish calculator over the Gaussian rationals a/b + (c/d)i.
        Arguments are evaluated left to right; the stack is printed at the end.
        Put '--' before the first argument if it starts with '-'.

        Numbers:
          A,B,C,D      canonical form of A/B + (C/D)i
          <A,B,C,D>    raw form
          5, -3/4      integers and fractions
          i            the imaginary unit

        Stack Operations:
          x: exchange top 2 elements of the stack
          d: duplicate top element of the stack (aliased as dup)
          p: pop top element off of the stack (aliased as pop)

        Binary numerical operations (prepend with '@' to reduce the stack):
          + - * /
          *   (aliased as . and •)
          %   (modulo, real values only)
          **  (aliased as pow, integer exponents only)

        Unary numerical operations:
          chs   (change sign)
          conj  (complex conjugate)
          r     (reciprocal)
          norm  (magnitude squared)
          re    (real part)
          im    (imaginary part)

        Gaussian integer operations:
          gcd     (greatest common divisor)
          xgcd    (pushes gcd, x, y with gcd = a·x + b·y)
          divmod  (pushes quotient and remainder)

        Formats (-f):
          C  canonical   3,4,0,1
          R  raw         <3,4,0,1>
          I  improper    7/2 + 3/4 i
          M  mixed       3 & 1/2 + 3/4 i
    `))
}
