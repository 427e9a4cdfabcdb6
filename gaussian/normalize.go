// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package gaussian

import (
	"math/big"
)

var (
	bigZero = big.NewInt(0)
	bigOne  = big.NewInt(1)
)

func newInt() *big.Int {
	return new(big.Int)
}

// Normalize reduces num/den to lowest terms with a positive denominator.
// A zero numerator always yields 0/1. The arguments are not modified.
func Normalize(num, den *big.Int) (*big.Int, *big.Int, error) {
	if den == nil || den.Sign() == 0 {
		return nil, nil, ErrDivisionByZero
	}
	if num == nil || num.Sign() == 0 {
		return newInt(), big.NewInt(1), nil
	}

	n := newInt().Set(num)
	d := newInt().Set(den)
	if d.Sign() < 0 {
		n.Neg(n)
		d.Neg(d)
	}

	g := newInt().GCD(nil, nil, newInt().Abs(n), d)
	if g.Cmp(bigOne) != 0 {
		n.Quo(n, g)
		d.Quo(d, g)
	}

	return n, d, nil
}

// mustNormalize is used where the denominator is known to be non-zero,
// i.e. a product of denominators that already satisfy the invariant.
func mustNormalize(num, den *big.Int) (*big.Int, *big.Int) {
	n, d, err := Normalize(num, den)
	if err != nil {
		panic(err)
	}
	return n, d
}
