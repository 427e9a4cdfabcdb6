// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package gaussian

import (
	"fmt"
	"math"
	"math/big"
)

const (
	floatIterations = 64
	floatTolerance  = 1e-12
)

// FromFloat64 returns the simplest continued-fraction convergent of f within
// floatTolerance (relative for |f| > 1), stopping after floatIterations terms.
func FromFloat64(f float64) (Rational, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Rational{}, fmt.Errorf("%w: %v is not finite", ErrInvalidOperation, f)
	}

	exact := new(big.Rat).SetFloat64(f)
	bound := new(big.Rat).SetFloat64(floatTolerance * math.Max(1, math.Abs(f)))

	x := new(big.Rat).Set(exact)
	h0, h1 := big.NewInt(0), big.NewInt(1)
	k0, k1 := big.NewInt(1), big.NewInt(0)
	approx := new(big.Rat)
	diff := new(big.Rat)

	for i := 0; i < floatIterations; i++ {
		// Denom is positive, so Euclidean division is floor
		term := newInt().Div(x.Num(), x.Denom())

		h := newInt().Mul(term, h1)
		h.Add(h, h0)
		k := newInt().Mul(term, k1)
		k.Add(k, k0)
		h0, h1 = h1, h
		k0, k1 = k1, k

		approx.SetFrac(h1, k1)
		if diff.Sub(exact, approx).Abs(diff).Cmp(bound) <= 0 {
			break
		}

		x.Sub(x, new(big.Rat).SetInt(term))
		if x.Sign() == 0 {
			break
		}
		x.Inv(x)
	}

	return FromFrac(h1, k1)
}

// Float64 returns r as a float64 when r is real and exactly representable.
func (r Rational) Float64() (float64, error) {
	q, err := r.Rat()
	if err != nil {
		return 0, err
	}
	f, exact := q.Float64()
	if !exact {
		return 0, fmt.Errorf("float64 of %s: %w", r, ErrUnsupported)
	}
	return f, nil
}

// Magnitude is not provided: |r| is irrational in general.
func (r Rational) Magnitude() (Rational, error) {
	return Rational{}, fmt.Errorf("magnitude of %s: %w", r, ErrUnsupported)
}

// Phase is not provided: arg(r) is irrational in general.
func (r Rational) Phase() (Rational, error) {
	return Rational{}, fmt.Errorf("phase of %s: %w", r, ErrUnsupported)
}

// Polar is not provided; see Magnitude and Phase.
func (r Rational) Polar() (Rational, Rational, error) {
	return Rational{}, Rational{}, fmt.Errorf("polar form of %s: %w", r, ErrUnsupported)
}
