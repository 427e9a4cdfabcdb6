// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package main

import (
	"fmt"
	"math/big"
	"strings"

	"gcalc/gaussian"
)

type Value struct {
	number gaussian.Rational
}

func (v Value) String() string {
	return v.number.String()
}

// parseValue accepts the canonical and raw forms, integers, fractions such as
// "3/4", and "i". ok is false for input that is not a number at all; a
// malformed number, such as one with a zero denominator, is an error.
func parseValue(input string) (Value, bool, error) {
	if input == "i" {
		return Value{number: gaussian.I()}, true, nil
	}
	if strings.Contains(input, ",") {
		number, err := gaussian.Parse(input)
		if err != nil {
			return Value{}, false, err
		}
		return Value{number: number}, true, nil
	}
	if !isRationalLiteral(input) {
		return Value{}, false, nil
	}

	numText, denText, fraction := strings.Cut(input, "/")
	num, _ := new(big.Int).SetString(numText, 10)
	den := big.NewInt(1)
	if fraction {
		den, _ = new(big.Int).SetString(denText, 10)
	}
	number, err := gaussian.FromFrac(num, den)
	if err != nil {
		return Value{}, false, fmt.Errorf("'%s': %w", input, err)
	}
	return Value{number: number}, true, nil
}

// isRationalLiteral rejects the decimal and exponent forms big.Rat would
// otherwise accept: operands are exact.
func isRationalLiteral(input string) bool {
	body := strings.TrimPrefix(strings.TrimPrefix(input, "-"), "+")
	num, den, fraction := strings.Cut(body, "/")
	return isDigits(num) && (!fraction || isDigits(den))
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func (v Value) binaryOp(op string, other Value) (Value, error) {
	left, right := v.number, other.number

	var result gaussian.Rational
	var err error
	switch op {
	case "+":
		result = left.Add(right)
	case "-":
		result = left.Sub(right)
	case "*", ".", "•":
		result = left.Mul(right)
	case "/":
		result, err = left.Div(right)
	case "%":
		result, err = left.Mod(right)
	case "**", "pow":
		var exponent int
		exponent, err = smallInt(right)
		if err == nil {
			result, err = left.Pow(exponent)
		}
	default:
		return Value{}, fmt.Errorf("unrecognized binary operation '%s'", op)
	}
	if err != nil {
		return Value{}, err
	}

	return Value{number: result}, nil
}

func (v Value) unaryOp(op string) (Value, error) {
	n := v.number

	var result gaussian.Rational
	var err error
	switch op {
	case "chs":
		result = n.Neg()
	case "conj":
		result = n.Conj()
	case "r":
		result, err = n.Reciprocal()
	case "norm":
		result = n.MagnitudeSquared()
	case "re":
		result = n.Real()
	case "im":
		result = n.Imag()
	case "abs":
		result, err = n.Magnitude()
	default:
		return Value{}, fmt.Errorf("unrecognized unary operation '%s'", op)
	}
	if err != nil {
		return Value{}, err
	}

	return Value{number: result}, nil
}

// smallInt narrows an exponent to a machine integer.
func smallInt(n gaussian.Rational) (int, error) {
	i, err := n.Int()
	if err != nil {
		return 0, fmt.Errorf("%w: exponent must be a real integer, got %s", gaussian.ErrArgument, n)
	}
	if !i.IsInt64() || int64(int(i.Int64())) != i.Int64() {
		return 0, fmt.Errorf("%w: exponent %s out of range", gaussian.ErrArgument, i)
	}
	return int(i.Int64()), nil
}

func (v Value) integer() (gaussian.Integer, error) {
	return v.number.Integer()
}

func integerValue(z gaussian.Integer) Value {
	return Value{number: z.Rational()}
}
