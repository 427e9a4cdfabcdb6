// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"gcalc/enumerable"
	"gcalc/gaussian"
	"gcalc/identity"
)

// valuesOf parses every argument as a number, accepting "num:" value URIs.
func valuesOf(args []string) ([]Value, error) {
	return enumerable.MapErr(args, func(arg string) (Value, error) {
		text := arg
		if prefix, body, err := identity.ParseURI(arg); err == nil && prefix == identity.NumberScheme.Prefix {
			text = body
		}
		v, ok, err := parseValue(text)
		if err != nil {
			return Value{}, err
		}
		if !ok {
			return Value{}, fmt.Errorf("%w: not a number '%s'", gaussian.ErrFormat, arg)
		}
		return v, nil
	})
}

func newIDCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "id [--] VALUE...",
		Short: "Print the identity URI of each value",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := valuesOf(args)
			if err != nil {
				return err
			}

			canonicals := enumerable.Map(values, func(v Value) string { return v.number.Canonical() })
			ids, err := identity.Batch(cmd.Context(), identity.NumberScheme.Namespace, canonicals, options.workers)
			if err != nil {
				return err
			}
			logger.Debug("derived identities", zap.Int("count", len(ids)), zap.Int("workers", options.workers))

			if err := recordAll(values); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, id := range ids {
				fmt.Fprintf(out, "%s  %s:%s\n", identity.NumberScheme.ValueURI(canonicals[i]), identity.NumberScheme.Prefix, id)
			}
			return nil
		},
	}
}

func newClassifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify [--] VALUE...",
		Short: "Print the narrowest number class of each value",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := valuesOf(args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, v := range values {
				text, err := v.number.Render(options.format)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s  %s\n", text, v.number.Classify())
			}
			return nil
		},
	}
}

func newPrimeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prime [--] VALUE...",
		Short: "Test Gaussian integers for primality",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := valuesOf(args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, v := range values {
				z, err := v.integer()
				if err != nil {
					return fmt.Errorf("'%s': %w", v, err)
				}
				fmt.Fprintf(out, "%s  %t\n", z.Canonical(), z.IsPrime())
			}
			return nil
		},
	}
}

// newPrimesCmd lists the Gaussian primes a+bi with a > 0, b >= 0 and both
// parts at most the bound, one per associate class.
func newPrimesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "primes BOUND",
		Short: "List first-quadrant Gaussian primes up to a bound",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bound, err := strconv.Atoi(args[0])
			if err != nil || bound < 0 {
				return fmt.Errorf("%w: bound must be a non-negative integer, got '%s'", gaussian.ErrArgument, args[0])
			}

			var candidates []gaussian.Integer
			for re := int64(1); re <= int64(bound); re++ {
				for im := int64(0); im <= int64(bound); im++ {
					candidates = append(candidates, gaussian.NewInteger64(re, im))
				}
			}
			primes := enumerable.Filter(candidates, gaussian.Integer.IsPrime)
			logger.Debug("sieved", zap.Int("candidates", len(candidates)), zap.Int("primes", len(primes)))

			texts, err := enumerable.MapErr(primes, func(z gaussian.Integer) (string, error) {
				return z.Rational().Render(options.format)
			})
			if err != nil {
				return err
			}
			if options.oneline {
				fmt.Fprintln(cmd.OutOrStdout(), strings.Join(texts, " "))
				return nil
			}
			for _, text := range texts {
				fmt.Fprintln(cmd.OutOrStdout(), text)
			}
			return nil
		},
	}
}

func newRegistryCmd() *cobra.Command {
	registry := &cobra.Command{
		Use:   "registry",
		Short: "Inspect the identity registry",
	}

	registry.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List recorded identities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := openExistingRegistry()
			if err != nil {
				return err
			}
			defer reg.Close()

			entries, err := reg.List()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, e := range entries {
				fmt.Fprintf(out, "%s  %s  %s\n", e.ID, e.Canonical, e.Class)
			}
			return nil
		},
	})

	registry.AddCommand(&cobra.Command{
		Use:   "lookup UUID",
		Short: "Find the value recorded under an identity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := args[0]
			if prefix, body, err := identity.ParseURI(text); err == nil && prefix == identity.NumberScheme.Prefix {
				text = body
			}
			id, err := uuid.Parse(text)
			if err != nil {
				return fmt.Errorf("%w: %s", identity.ErrBadURI, args[0])
			}

			reg, err := openExistingRegistry()
			if err != nil {
				return err
			}
			defer reg.Close()

			v, found, err := reg.Lookup(id)
			if err != nil {
				return err
			}
			if !found {
				return fmt.Errorf("no value recorded for %s", id)
			}
			rendered, err := v.Render(options.format)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return nil
		},
	})

	return registry
}

