// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package gaussian

import (
	"fmt"
	"math/big"
)

// trialDivisionBits bounds the integers IsPrimeInt factors by trial division.
const trialDivisionBits = 40

// GCD returns a greatest common divisor of a and b by the Euclidean algorithm
// over DivMod. It is unique only up to a unit; see CanonicalAssociate.
func GCD(a, b Integer) (Integer, error) {
	if a.IsZero() && b.IsZero() {
		return Integer{}, fmt.Errorf("%w: gcd(0, 0) is undefined", ErrArgument)
	}
	for !b.IsZero() {
		_, r, err := a.DivMod(b)
		if err != nil {
			return Integer{}, err
		}
		a, b = b, r
	}
	return a, nil
}

// XGCD returns g = GCD(a, b) together with Bézout coefficients x, y such
// that g = a·x + b·y. It follows the same quotient sequence as GCD, so g is
// the same associate GCD returns.
func XGCD(a, b Integer) (g, x, y Integer, err error) {
	if a.IsZero() && b.IsZero() {
		return Integer{}, Integer{}, Integer{}, fmt.Errorf("%w: xgcd(0, 0) is undefined", ErrArgument)
	}

	oldR, r := a, b
	oldS, s := NewInteger64(1, 0), NewInteger64(0, 0)
	oldT, t := NewInteger64(0, 0), NewInteger64(1, 0)

	for !r.IsZero() {
		q, _, err := oldR.DivMod(r)
		if err != nil {
			return Integer{}, Integer{}, Integer{}, err
		}
		oldR, r = r, oldR.Sub(q.Mul(r))
		oldS, s = s, oldS.Sub(q.Mul(s))
		oldT, t = t, oldT.Sub(q.Mul(t))
	}

	return oldR, oldS, oldT, nil
}

// IsPrime reports whether z is a Gaussian prime: with both parts non-zero
// the norm must be a rational prime, otherwise the non-zero part must be a
// rational prime congruent to 3 mod 4.
func (z Integer) IsPrime() bool {
	re, im := z.parts()
	switch {
	case re.Sign() != 0 && im.Sign() != 0:
		return IsPrimeInt(z.Norm())
	case re.Sign() == 0 && im.Sign() == 0:
		return false
	}

	p := newInt().Abs(re)
	if re.Sign() == 0 {
		p.Abs(im)
	}
	if !IsPrimeInt(p) {
		return false
	}
	return newInt().Mod(p, big.NewInt(4)).Cmp(big.NewInt(3)) == 0
}

// IsPrimeInt tests a rational integer for primality by trial division up to
// its square root. Beyond 2^40 it uses Baillie-PSW, which has no known
// counterexample and is exact below 2^64.
func IsPrimeInt(n *big.Int) bool {
	if n.Sign() <= 0 {
		return false
	}
	if n.BitLen() > trialDivisionBits {
		return n.ProbablyPrime(20)
	}

	v := n.Uint64()
	switch {
	case v < 2:
		return false
	case v < 4:
		return true
	case v%2 == 0:
		return false
	}
	for f := uint64(3); f*f <= v; f += 2 {
		if v%f == 0 {
			return false
		}
	}
	return true
}

// Congruent reports whether a ≡ b (mod c), i.e. whether (a-b)/c is a
// Gaussian integer.
func Congruent(a, b, c Integer) (bool, error) {
	if c.IsZero() {
		return false, fmt.Errorf("%s ≡ %s (mod 0): %w", a, b, ErrDivisionByZero)
	}
	q, err := a.Sub(b).Div(c)
	if err != nil {
		return false, err
	}
	return q.IsGaussianInteger(), nil
}

// NormsDivide divides the larger of N(a), N(b) by the smaller. It reports
// false when the division is inexact or the smaller norm is zero.
func NormsDivide(a, b Integer) (*big.Int, bool) {
	small, large := a.Norm(), b.Norm()
	if small.Cmp(large) > 0 {
		small, large = large, small
	}
	if small.Sign() == 0 {
		return nil, false
	}
	q, rem := newInt().QuoRem(large, small, newInt())
	if rem.Sign() != 0 {
		return nil, false
	}
	return q, true
}
