// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package gaussian

import (
	"fmt"
)

func (r Rational) Add(other Rational) Rational {
	return fromFracs(r.re().add(other.re()), r.im().add(other.im()))
}

func (r Rational) Sub(other Rational) Rational {
	return fromFracs(r.re().sub(other.re()), r.im().sub(other.im()))
}

func (r Rational) Neg() Rational {
	return fromFracs(r.re().neg(), r.im().neg())
}

// Mul computes (x+yi)(u+vi) = (xu-yv) + (xv+yu)i.
func (r Rational) Mul(other Rational) Rational {
	x, y := r.re(), r.im()
	u, v := other.re(), other.im()
	return fromFracs(x.mul(u).sub(y.mul(v)), x.mul(v).add(y.mul(u)))
}

// Conj negates the imaginary part.
func (r Rational) Conj() Rational {
	return fromFracs(r.re(), r.im().neg())
}

// MagnitudeSquared returns |r|² exactly, as a real value.
func (r Rational) MagnitudeSquared() Rational {
	return fromFracs(r.magnitudeSquared(), frac{num: bigZero, den: bigOne})
}

func (r Rational) magnitudeSquared() frac {
	x, y := r.re(), r.im()
	return x.mul(x).add(y.mul(y))
}

// Div multiplies by the conjugate of the divisor and divides by its
// magnitude squared.
func (r Rational) Div(other Rational) (Rational, error) {
	m := other.magnitudeSquared()
	if m.isZero() {
		return Rational{}, fmt.Errorf("%s / %s: %w", r, other, ErrDivisionByZero)
	}
	p := r.Mul(other.Conj())
	return fromFracs(p.re().quo(m), p.im().quo(m)), nil
}

func (r Rational) Reciprocal() (Rational, error) {
	return One().Div(r)
}

// Mod is defined for real operands only. For a/b and c/f it returns
// (a·f rem c·b) / (b·f); the remainder truncates toward zero, so the result
// takes the sign of r.
func (r Rational) Mod(other Rational) (Rational, error) {
	if !r.IsReal() || !other.IsReal() {
		return Rational{}, fmt.Errorf("%s %% %s: %w: modulo requires real operands", r, other, ErrInvalidOperation)
	}
	x, y := r.re(), other.re()
	if y.isZero() {
		return Rational{}, fmt.Errorf("%s %% %s: %w", r, other, ErrDivisionByZero)
	}

	left := newInt().Mul(x.num, y.den)
	right := newInt().Mul(y.num, x.den)
	rem := newInt().Rem(left, right)

	return fromFracs(newFrac(rem, newInt().Mul(x.den, y.den)), frac{num: bigZero, den: bigOne}), nil
}

// Pow raises r to an integer power by repeated squaring. A negative exponent
// inverts r first, which fails for zero.
func (r Rational) Pow(n int) (Rational, error) {
	if n == 0 {
		return One(), nil
	}

	base := r
	e := uint(n)
	if n < 0 {
		inv, err := r.Reciprocal()
		if err != nil {
			return Rational{}, fmt.Errorf("%s ** %d: %w", r, n, ErrDivisionByZero)
		}
		base = inv
		e = uint(-n)
	}

	result := One()
	for e > 0 {
		if e&1 == 1 {
			result = result.Mul(base)
		}
		e >>= 1
		if e > 0 {
			base = base.Mul(base)
		}
	}

	return result, nil
}
