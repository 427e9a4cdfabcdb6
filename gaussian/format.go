// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package gaussian

import (
	"fmt"
	"math/big"
	"strings"
)

// Format codes accepted by Render.
const (
	FormatCanonical = 'C'
	FormatRaw       = 'R'
	FormatImproper  = 'I'
	FormatMixed     = 'M'
)

// Canonical returns "A,B,C,D". This exact text is what identities are
// derived from.
func (r Rational) Canonical() string {
	a, b, c, d := r.parts()
	return fmt.Sprintf("%s,%s,%s,%s", a, b, c, d)
}

func (r Rational) String() string {
	return r.Canonical()
}

// Raw returns "<A,B,C,D>".
func (r Rational) Raw() string {
	return "<" + r.Canonical() + ">"
}

// Improper renders both parts as improper fractions, e.g. "7/2 + 3/4 i".
func (r Rational) Improper() string {
	return r.display(fractionText)
}

// Mixed renders both parts as mixed fractions, e.g. "3 & 1/2 + 3/4 i".
func (r Rational) Mixed() string {
	return r.display(mixedText)
}

// Render selects a representation by format code; lowercase is accepted.
func (r Rational) Render(code rune) (string, error) {
	switch code {
	case FormatCanonical, 'c':
		return r.Canonical(), nil
	case FormatRaw, 'r':
		return r.Raw(), nil
	case FormatImproper, 'i':
		return r.Improper(), nil
	case FormatMixed, 'm':
		return r.Mixed(), nil
	default:
		return "", fmt.Errorf("%w: unknown format code %q", ErrFormat, code)
	}
}

func (r Rational) display(part func(num, den *big.Int) string) string {
	x, y := r.re(), r.im()
	switch {
	case y.isZero():
		return part(x.num, x.den)
	case x.isZero():
		return part(y.num, y.den) + " i"
	}

	sign := "+"
	imag := y.num
	if imag.Sign() < 0 {
		sign = "-"
		imag = newInt().Neg(imag)
	}
	return fmt.Sprintf("%s %s %s i", part(x.num, x.den), sign, part(imag, y.den))
}

func fractionText(num, den *big.Int) string {
	if den.Cmp(bigOne) == 0 {
		return num.String()
	}
	return num.String() + "/" + den.String()
}

func mixedText(num, den *big.Int) string {
	if den.Cmp(bigOne) == 0 {
		return num.String()
	}
	whole, rem := newInt().QuoRem(num, den, newInt())
	if whole.Sign() == 0 {
		return fractionText(num, den)
	}
	return fmt.Sprintf("%s & %s/%s", whole, rem.Abs(rem), den)
}

// Parse reads the canonical "A,B,C,D" or raw "<A,B,C,D>" form. Surrounding
// whitespace is ignored; the components need not be in lowest terms.
func Parse(s string) (Rational, error) {
	text := strings.TrimSpace(s)
	if strings.HasPrefix(text, "<") {
		if !strings.HasSuffix(text, ">") {
			return Rational{}, fmt.Errorf("%w: unterminated %q", ErrFormat, s)
		}
		text = text[1 : len(text)-1]
	}

	fields := strings.Split(text, ",")
	if len(fields) != 4 {
		return Rational{}, fmt.Errorf("%w: expected 4 comma-separated integers in %q", ErrFormat, s)
	}

	parts := make([]*big.Int, len(fields))
	for i, field := range fields {
		n, ok := newInt().SetString(strings.TrimSpace(field), 10)
		if !ok {
			return Rational{}, fmt.Errorf("%w: %q is not an integer in %q", ErrFormat, field, s)
		}
		parts[i] = n
	}

	return FromSlice(parts)
}

// TryParse is Parse without the error; on failure it returns zero and false.
func TryParse(s string) (Rational, bool) {
	r, err := Parse(s)
	if err != nil {
		return Rational{}, false
	}
	return r, true
}

func (r Rational) MarshalText() ([]byte, error) {
	return []byte(r.Canonical()), nil
}

func (r *Rational) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*r = v
	return nil
}
