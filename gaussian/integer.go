// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package gaussian

import (
	"fmt"
	"math/big"
)

// Integer is the Gaussian integer Re + Im·i. The zero value is 0.
type Integer struct {
	re, im *big.Int
}

func NewInteger(re, im *big.Int) Integer {
	z := Integer{re: newInt(), im: newInt()}
	if re != nil {
		z.re.Set(re)
	}
	if im != nil {
		z.im.Set(im)
	}
	return z
}

func NewInteger64(re, im int64) Integer {
	return Integer{re: big.NewInt(re), im: big.NewInt(im)}
}

func (z Integer) parts() (re, im *big.Int) {
	re, im = z.re, z.im
	if re == nil {
		re = bigZero
	}
	if im == nil {
		im = bigZero
	}
	return re, im
}

func (z Integer) Re() *big.Int {
	re, _ := z.parts()
	return newInt().Set(re)
}

func (z Integer) Im() *big.Int {
	_, im := z.parts()
	return newInt().Set(im)
}

// Rational lifts z to (Re, 1, Im, 1).
func (z Integer) Rational() Rational {
	re, im := z.parts()
	return Rational{a: re, b: bigOne, c: im, d: bigOne}
}

// Canonical is the canonical form of the lifted value, so an integer and the
// equal rational share an identity.
func (z Integer) Canonical() string {
	return z.Rational().Canonical()
}

func (z Integer) String() string {
	return z.Canonical()
}

func (z Integer) Add(w Integer) Integer {
	a, b := z.parts()
	c, d := w.parts()
	return Integer{re: newInt().Add(a, c), im: newInt().Add(b, d)}
}

func (z Integer) Sub(w Integer) Integer {
	a, b := z.parts()
	c, d := w.parts()
	return Integer{re: newInt().Sub(a, c), im: newInt().Sub(b, d)}
}

func (z Integer) Mul(w Integer) Integer {
	a, b := z.parts()
	c, d := w.parts()
	re := newInt().Mul(a, c)
	re.Sub(re, newInt().Mul(b, d))
	im := newInt().Mul(a, d)
	im.Add(im, newInt().Mul(b, c))
	return Integer{re: re, im: im}
}

func (z Integer) Neg() Integer {
	a, b := z.parts()
	return Integer{re: newInt().Neg(a), im: newInt().Neg(b)}
}

func (z Integer) Conj() Integer {
	a, b := z.parts()
	return Integer{re: newInt().Set(a), im: newInt().Neg(b)}
}

// Norm returns Re² + Im².
func (z Integer) Norm() *big.Int {
	a, b := z.parts()
	n := newInt().Mul(a, a)
	return n.Add(n, newInt().Mul(b, b))
}

func (z Integer) Equal(w Integer) bool {
	a, b := z.parts()
	c, d := w.parts()
	return a.Cmp(c) == 0 && b.Cmp(d) == 0
}

func (z Integer) IsZero() bool {
	a, b := z.parts()
	return a.Sign() == 0 && b.Sign() == 0
}

func (z Integer) IsUnit() bool {
	return z.Norm().Cmp(bigOne) == 0
}

// Units returns 1, -1, i and -i, in that order.
func Units() []Integer {
	return []Integer{
		NewInteger64(1, 0),
		NewInteger64(-1, 0),
		NewInteger64(0, 1),
		NewInteger64(0, -1),
	}
}

// Associates returns z multiplied by each of the units, z itself first.
func (z Integer) Associates() []Integer {
	units := Units()
	result := make([]Integer, len(units))
	for i, u := range units {
		result[i] = z.Mul(u)
	}
	return result
}

// IsAssociate reports whether z = w·u for some unit u.
func (z Integer) IsAssociate(w Integer) bool {
	if w.IsZero() {
		return z.IsZero()
	}
	q, err := z.Quo(w)
	if err != nil {
		return false
	}
	return w.Mul(q).Equal(z) && q.IsUnit()
}

// CanonicalAssociate returns the associate with Re > 0 and Im >= 0.
func (z Integer) CanonicalAssociate() Integer {
	if z.IsZero() {
		return z
	}
	for _, w := range z.Associates() {
		re, im := w.parts()
		if re.Sign() > 0 && im.Sign() >= 0 {
			return w
		}
	}
	panic("unreachable: no first-quadrant associate")
}

// CanonicalUnit returns the unit u for which z·u is the canonical associate
// of z. Zero yields 1.
func (z Integer) CanonicalUnit() Integer {
	units := Units()
	if z.IsZero() {
		return units[0]
	}
	for _, u := range units {
		re, im := z.Mul(u).parts()
		if re.Sign() > 0 && im.Sign() >= 0 {
			return u
		}
	}
	panic("unreachable: no first-quadrant associate")
}

// Div divides in the Gaussian rationals; the quotient of two integers is
// generally not an integer.
func (z Integer) Div(w Integer) (Rational, error) {
	return z.Rational().Div(w.Rational())
}

// Quo returns the quotient z/w with each component rounded toward negative
// infinity.
func (z Integer) Quo(w Integer) (Integer, error) {
	q, err := z.Div(w)
	if err != nil {
		return Integer{}, err
	}
	a, b, c, d := q.parts()
	return Integer{re: newInt().Div(a, b), im: newInt().Div(c, d)}, nil
}

// DivMod performs Euclidean division with the quotient z·conj(w)/N(w)
// rounded to the nearest Gaussian integer, ties away from zero, and returns
// q, r with z = w·q + r and 2·N(r) <= N(w).
func (z Integer) DivMod(w Integer) (q, r Integer, err error) {
	if w.IsZero() {
		return Integer{}, Integer{}, fmt.Errorf("divmod %s by %s: %w", z, w, ErrDivisionByZero)
	}

	n := w.Norm()
	p := z.Mul(w.Conj())
	pre, pim := p.parts()
	q = Integer{re: roundQuo(pre, n), im: roundQuo(pim, n)}
	r = z.Sub(w.Mul(q))

	return q, r, nil
}

// roundQuo rounds num/den to the nearest integer, ties away from zero.
// den must be positive.
func roundQuo(num, den *big.Int) *big.Int {
	q, rem := newInt().QuoRem(num, den, newInt())
	twice := rem.Abs(rem)
	twice.Lsh(twice, 1)
	if twice.Cmp(den) >= 0 {
		if num.Sign() < 0 {
			q.Sub(q, bigOne)
		} else {
			q.Add(q, bigOne)
		}
	}
	return q
}
