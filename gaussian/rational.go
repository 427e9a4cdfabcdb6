// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

// Package gaussian implements exact arithmetic over the Gaussian rationals
// a/b + (c/d)i and their integer subring, the Gaussian integers.
//
// Values are immutable. Every constructor reduces the real and imaginary
// parts independently to lowest terms with positive denominators, so two
// values are equal exactly when their four components are equal. Nothing in
// this package approximates: operations whose result could be irrational
// return ErrUnsupported instead.
package gaussian

import (
	"fmt"
	"math/big"
)

// Rational is the Gaussian rational A/B + (C/D)i.
// The zero value is the number 0.
type Rational struct {
	a, b, c, d *big.Int
}

// frac is a normalized real fraction used for component arithmetic.
type frac struct {
	num, den *big.Int
}

func newFrac(num, den *big.Int) frac {
	n, d := mustNormalize(num, den)
	return frac{num: n, den: d}
}

func (x frac) add(y frac) frac {
	left := newInt().Mul(x.num, y.den)
	right := newInt().Mul(y.num, x.den)
	return newFrac(left.Add(left, right), newInt().Mul(x.den, y.den))
}

func (x frac) sub(y frac) frac {
	return x.add(y.neg())
}

func (x frac) mul(y frac) frac {
	return newFrac(newInt().Mul(x.num, y.num), newInt().Mul(x.den, y.den))
}

// quo panics on a zero divisor; callers check first.
func (x frac) quo(y frac) frac {
	return newFrac(newInt().Mul(x.num, y.den), newInt().Mul(x.den, y.num))
}

func (x frac) neg() frac {
	return frac{num: newInt().Neg(x.num), den: x.den}
}

func (x frac) isZero() bool {
	return x.num.Sign() == 0
}

// cmp relies on both denominators being positive.
func (x frac) cmp(y frac) int {
	left := newInt().Mul(x.num, y.den)
	right := newInt().Mul(y.num, x.den)
	return left.Cmp(right)
}

func fromFracs(re, im frac) Rational {
	return Rational{a: re.num, b: re.den, c: im.num, d: im.den}
}

// parts substitutes 0/1 for the missing components of the zero value.
// The returned integers must not be modified.
func (r Rational) parts() (a, b, c, d *big.Int) {
	a, b, c, d = r.a, r.b, r.c, r.d
	if a == nil {
		a = bigZero
	}
	if b == nil {
		b = bigOne
	}
	if c == nil {
		c = bigZero
	}
	if d == nil {
		d = bigOne
	}
	return a, b, c, d
}

func (r Rational) re() frac {
	a, b, _, _ := r.parts()
	return frac{num: a, den: b}
}

func (r Rational) im() frac {
	_, _, c, d := r.parts()
	return frac{num: c, den: d}
}

// New returns a/b + (c/d)i in canonical form.
func New(a, b, c, d *big.Int) (Rational, error) {
	na, nb, err := Normalize(a, b)
	if err != nil {
		return Rational{}, fmt.Errorf("real part %v/%v: %w", a, b, err)
	}
	nc, nd, err := Normalize(c, d)
	if err != nil {
		return Rational{}, fmt.Errorf("imaginary part %v/%v: %w", c, d, err)
	}
	return Rational{a: na, b: nb, c: nc, d: nd}, nil
}

// NewInt64 is New for machine integers.
func NewInt64(a, b, c, d int64) (Rational, error) {
	return New(big.NewInt(a), big.NewInt(b), big.NewInt(c), big.NewInt(d))
}

// MustInt64 is like NewInt64 but panics if a denominator is zero.
func MustInt64(a, b, c, d int64) Rational {
	r, err := NewInt64(a, b, c, d)
	if err != nil {
		panic(err)
	}
	return r
}

// FromInt returns the real integer n.
func FromInt(n *big.Int) Rational {
	return Rational{a: newInt().Set(n), b: big.NewInt(1), c: newInt(), d: big.NewInt(1)}
}

func FromInt64(n int64) Rational {
	return FromInt(big.NewInt(n))
}

// FromFrac returns the real number num/den.
func FromFrac(num, den *big.Int) (Rational, error) {
	return New(num, den, bigZero, bigOne)
}

// FromBigRat returns re + im·i. A nil part is zero.
func FromBigRat(re, im *big.Rat) Rational {
	var r Rational
	if re != nil {
		r.a, r.b = newInt().Set(re.Num()), newInt().Set(re.Denom())
	}
	if im != nil {
		r.c, r.d = newInt().Set(im.Num()), newInt().Set(im.Denom())
	}
	return r
}

// FromSlice converts the four components [A, B, C, D].
func FromSlice(parts []*big.Int) (Rational, error) {
	if len(parts) != 4 {
		return Rational{}, fmt.Errorf("%w: need 4 components, got %d", ErrArgument, len(parts))
	}
	return New(parts[0], parts[1], parts[2], parts[3])
}

func Zero() Rational {
	return FromInt64(0)
}

func One() Rational {
	return FromInt64(1)
}

// I returns the imaginary unit.
func I() Rational {
	return MustInt64(0, 1, 1, 1)
}

// A returns a copy of the real numerator.
func (r Rational) A() *big.Int {
	a, _, _, _ := r.parts()
	return newInt().Set(a)
}

// B returns a copy of the real denominator.
func (r Rational) B() *big.Int {
	_, b, _, _ := r.parts()
	return newInt().Set(b)
}

// C returns a copy of the imaginary numerator.
func (r Rational) C() *big.Int {
	_, _, c, _ := r.parts()
	return newInt().Set(c)
}

// D returns a copy of the imaginary denominator.
func (r Rational) D() *big.Int {
	_, _, _, d := r.parts()
	return newInt().Set(d)
}

// Slice returns copies of [A, B, C, D].
func (r Rational) Slice() []*big.Int {
	return []*big.Int{r.A(), r.B(), r.C(), r.D()}
}

// Real returns the real part as a real value.
func (r Rational) Real() Rational {
	return fromFracs(r.re(), frac{num: bigZero, den: bigOne})
}

// Imag returns the imaginary part as a real value.
func (r Rational) Imag() Rational {
	return fromFracs(r.im(), frac{num: bigZero, den: bigOne})
}

func (r Rational) RealRat() *big.Rat {
	a, b, _, _ := r.parts()
	return new(big.Rat).SetFrac(a, b)
}

func (r Rational) ImagRat() *big.Rat {
	_, _, c, d := r.parts()
	return new(big.Rat).SetFrac(c, d)
}

func (r Rational) IsReal() bool {
	return r.im().isZero()
}

func (r Rational) IsPurelyImaginary() bool {
	return r.re().isZero() && !r.im().isZero()
}

// IsInteger reports whether r is a real integer.
func (r Rational) IsInteger() bool {
	_, b, _, _ := r.parts()
	return r.IsReal() && b.Cmp(bigOne) == 0
}

func (r Rational) IsGaussianInteger() bool {
	_, b, _, d := r.parts()
	return b.Cmp(bigOne) == 0 && d.Cmp(bigOne) == 0
}

func (r Rational) IsZero() bool {
	return r.re().isZero() && r.im().isZero()
}

func (r Rational) IsOne() bool {
	a, b, _, _ := r.parts()
	return r.IsReal() && a.Cmp(bigOne) == 0 && b.Cmp(bigOne) == 0
}

// IsPositive is false for every non-real value.
func (r Rational) IsPositive() bool {
	return r.IsReal() && r.re().num.Sign() > 0
}

// IsNegative is false for every non-real value.
func (r Rational) IsNegative() bool {
	return r.IsReal() && r.re().num.Sign() < 0
}

// Equal compares canonical components.
func (r Rational) Equal(other Rational) bool {
	a, b, c, d := r.parts()
	oa, ob, oc, od := other.parts()
	return a.Cmp(oa) == 0 && b.Cmp(ob) == 0 && c.Cmp(oc) == 0 && d.Cmp(od) == 0
}

// Key returns the canonical string, suitable as a map key.
func (r Rational) Key() string {
	return r.Canonical()
}

// Integer narrows r to a Gaussian integer. Both denominators must be 1.
func (r Rational) Integer() (Integer, error) {
	a, _, c, _ := r.parts()
	if !r.IsGaussianInteger() {
		return Integer{}, fmt.Errorf("%w: %s is not a Gaussian integer", ErrNarrowing, r)
	}
	return NewInteger(a, c), nil
}

// Int narrows r to a real integer.
func (r Rational) Int() (*big.Int, error) {
	if !r.IsInteger() {
		return nil, fmt.Errorf("%w: %s is not an integer", ErrNarrowing, r)
	}
	return r.A(), nil
}

// Rat narrows r to a real rational.
func (r Rational) Rat() (*big.Rat, error) {
	if !r.IsReal() {
		return nil, fmt.Errorf("%w: %s is not real", ErrNarrowing, r)
	}
	return r.RealRat(), nil
}
