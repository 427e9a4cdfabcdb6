// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package gaussian

import (
	"fmt"
	"slices"
)

// Cmp orders values by real part, then by imaginary part. It is a total order
// for sorting and bucketing only; for non-real values it says nothing about
// magnitude. Use CmpReal when the comparison must be meaningful.
func (r Rational) Cmp(other Rational) int {
	if c := r.re().cmp(other.re()); c != 0 {
		return c
	}
	return r.im().cmp(other.im())
}

func (r Rational) Less(other Rational) bool {
	return r.Cmp(other) < 0
}

// CmpReal compares two real values and fails for anything else.
func (r Rational) CmpReal(other Rational) (int, error) {
	if !r.IsReal() || !other.IsReal() {
		return 0, fmt.Errorf("compare %s with %s: %w: ordering requires real operands", r, other, ErrInvalidOperation)
	}
	return r.re().cmp(other.re()), nil
}

// Sort sorts values in place by Cmp.
func Sort(values []Rational) {
	slices.SortFunc(values, Rational.Cmp)
}
