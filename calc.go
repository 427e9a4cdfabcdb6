// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var logger = zap.NewNop()

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v, exiting\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &flagValues{}

	root := &cobra.Command{
		Use:           "gcalc [flags] [--] ARGUMENTS",
		Short:         "Exact reverse-Polish calculator over the Gaussian rationals",
		Long:          longHelp(),
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveOptions(cmd, flags)
			if err != nil {
				return err
			}
			logger, err = cfg.Logging.NewLogger(options.trace)
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCalc(cmd.OutOrStdout(), args)
		},
	}

	bindFlags(root, flags)
	root.AddCommand(newIDCmd(), newClassifyCmd(), newPrimeCmd(), newPrimesCmd(), newRegistryCmd())
	return root
}

// runCalc evaluates args as a reverse-Polish program and prints the stack.
func runCalc(w io.Writer, args []string) error {
	stack := newStack()
	for _, arg := range args {
		if err := apply(stack, arg); err != nil {
			return err
		}
		if top, err := stack.peek(); err == nil {
			logger.Debug("applied", zap.String("arg", arg), zap.Stringer("top", top), zap.Int("depth", stack.size()))
		}
	}

	if err := recordAll(stack.values); err != nil {
		return err
	}

	if options.oneline {
		line, err := stack.oneline()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, line)
		return err
	}
	return stack.print(w)
}

func apply(stack *Stack, arg string) error {
	value, ok, err := parseValue(arg)
	if err != nil {
		return err
	}
	if ok {
		stack.push(value)
		return nil
	}

	if alias, ok := STACKALIAS[arg]; ok {
		arg = alias
	}
	if op, ok := STACKOP[arg]; ok {
		return op(stack)
	}
	if _, ok := INTEGEROP[arg]; ok {
		return stack.integerOp(arg)
	}

	switch arg {
	case "+", "-", "*", "•", ".", "/", "%", "**", "pow":
		return stack.binaryOp(arg)
	case "chs", "conj", "r", "norm", "re", "im", "abs":
		return stack.unaryOp(arg)
	}

	if len(arg) > 1 && strings.HasPrefix(arg, "@") {
		return stack.reduce(arg[1:])
	}

	return fmt.Errorf("unrecognized argument '%s'", arg)
}

// recordAll stores the identities of values when the registry is enabled.
func recordAll(values []Value) error {
	if !options.registry {
		return nil
	}

	registry, err := openRegistry(options.registryPath)
	if err != nil {
		return err
	}
	defer registry.Close()

	for _, v := range values {
		id, err := registry.Record(v.number)
		if err != nil {
			return err
		}
		logger.Debug("recorded", zap.String("canonical", v.number.Canonical()), zap.Stringer("uuid", id))
	}
	return nil
}
