// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package gaussian

// Class is the most specific set in the number hierarchy a value belongs to.
type Class int

const (
	NaturalNumber Class = iota
	WholeNumber
	IntegerNumber
	RationalNumber
	GaussianRational
)

var classNames = [...]string{
	NaturalNumber:    "Natural Number",
	WholeNumber:      "Whole Number",
	IntegerNumber:    "Integer",
	RationalNumber:   "Rational Number",
	GaussianRational: "Gaussian Rational",
}

func (c Class) String() string {
	if c < 0 || int(c) >= len(classNames) {
		return "Unknown"
	}
	return classNames[c]
}

// Contains reports whether every value of class other is also in c.
func (c Class) Contains(other Class) bool {
	return other <= c
}

// Classify tests the predicates in order of precedence; the first one that
// holds decides.
func (r Rational) Classify() Class {
	a, b, _, _ := r.parts()
	switch {
	case !r.IsReal():
		return GaussianRational
	case b.Cmp(bigOne) != 0:
		return RationalNumber
	case a.Sign() < 0:
		return IntegerNumber
	case a.Sign() == 0:
		return WholeNumber
	default:
		return NaturalNumber
	}
}
