// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package main

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"gcalc/enumerable"
	"gcalc/gaussian"
	"gcalc/identity"
)

type Stack struct {
	values []Value
}

func newStack() *Stack {
	return &Stack{values: []Value{}}
}

var STACKALIAS = map[string]string{
	"dup": "d",
	"pop": "p",
}

var STACKOP = map[string]func(*Stack) error{
	"x": func(s *Stack) error { return s.exchange() },
	"d": func(s *Stack) error { return s.dup() },
	"p": func(s *Stack) error {
		if _, err := s.pop(); err != nil {
			return fmt.Errorf("stack is empty for '%s'", "pop")
		}
		return nil
	},
}

// INTEGEROP pops two Gaussian integers and pushes the results in order.
// Greatest common divisors are pushed as their canonical associate.
var INTEGEROP = map[string]func(a, b gaussian.Integer) ([]gaussian.Integer, error){
	"gcd": func(a, b gaussian.Integer) ([]gaussian.Integer, error) {
		g, err := gaussian.GCD(a, b)
		if err != nil {
			return nil, err
		}
		return []gaussian.Integer{g.CanonicalAssociate()}, nil
	},
	"xgcd": func(a, b gaussian.Integer) ([]gaussian.Integer, error) {
		g, x, y, err := gaussian.XGCD(a, b)
		if err != nil {
			return nil, err
		}
		// rotating all three by one unit keeps g = a·x + b·y
		u := g.CanonicalUnit()
		return []gaussian.Integer{g.Mul(u), x.Mul(u), y.Mul(u)}, nil
	},
	"divmod": func(a, b gaussian.Integer) ([]gaussian.Integer, error) {
		q, r, err := a.DivMod(b)
		return []gaussian.Integer{q, r}, err
	},
}

func (s *Stack) binaryOp(op string) error {
	if len(s.values) < 2 {
		return fmt.Errorf("not enough arguments for binary operation '%s'", op)
	}
	right, _ := s.pop()
	left, _ := s.pop()

	result, err := left.binaryOp(op, right)
	if err != nil {
		s.push(left)
		s.push(right)
		return fmt.Errorf("'%s': %w", op, err)
	}
	s.push(result)
	return nil
}

func (s *Stack) unaryOp(op string) error {
	value, err := s.pop()
	if err != nil {
		return fmt.Errorf("not enough arguments for unary operation '%s'", op)
	}

	result, err := value.unaryOp(op)
	if err != nil {
		s.push(value)
		return fmt.Errorf("'%s': %w", op, err)
	}
	s.push(result)
	return nil
}

func (s *Stack) integerOp(op string) error {
	fn, ok := INTEGEROP[op]
	if !ok {
		return fmt.Errorf("unrecognized integer operation '%s'", op)
	}
	if len(s.values) < 2 {
		return fmt.Errorf("not enough arguments for integer operation '%s'", op)
	}

	right, _ := s.pop()
	left, _ := s.pop()
	restore := func(err error) error {
		s.push(left)
		s.push(right)
		return fmt.Errorf("'%s': %w", op, err)
	}

	a, err := left.integer()
	if err != nil {
		return restore(err)
	}
	b, err := right.integer()
	if err != nil {
		return restore(err)
	}
	results, err := fn(a, b)
	if err != nil {
		return restore(err)
	}

	for _, z := range results {
		s.push(integerValue(z))
	}
	return nil
}

func (s *Stack) reduce(op string) error {
	if len(s.values) < 2 {
		return fmt.Errorf("not enough arguments for reduction operation '@%s'", op)
	}

	// Start with the bottom value and apply the operation left-to-right
	result := s.values[0]
	for i := 1; i < len(s.values); i++ {
		var err error
		if result, err = result.binaryOp(op, s.values[i]); err != nil {
			return fmt.Errorf("'@%s': %w", op, err)
		}
	}

	s.values = []Value{result}
	return nil
}

func (s *Stack) push(v Value) {
	s.values = append(s.values, v)
}

func (s *Stack) pop() (Value, error) {
	if len(s.values) == 0 {
		return Value{}, fmt.Errorf("stack is empty")
	}
	v := s.values[len(s.values)-1]
	s.values = s.values[:len(s.values)-1]

	return v, nil
}

func (s *Stack) peek() (Value, error) {
	if len(s.values) == 0 {
		return Value{}, fmt.Errorf("stack is empty")
	}

	return s.values[len(s.values)-1], nil
}

// dup shares the top value; values are immutable so no copy is needed.
func (s *Stack) dup() error {
	if len(s.values) < 1 {
		return fmt.Errorf("stack is empty for '%s'", "duplicate")
	}

	s.values = append(s.values, s.values[len(s.values)-1])
	return nil
}

func (s *Stack) exchange() error {
	if len(s.values) < 2 {
		return fmt.Errorf("not enough arguments for '%s'", "exchange")
	}

	s.values[len(s.values)-1], s.values[len(s.values)-2] = s.values[len(s.values)-2], s.values[len(s.values)-1]
	return nil
}

func (s *Stack) size() int {
	return len(s.values)
}

func (s *Stack) oneline() (string, error) {
	rows, err := s.rows()
	if err != nil {
		return "", err
	}
	return strings.Join(enumerable.Map(rows, func(r row) string { return r.text }), " "), nil
}

// row is one printed line: the rendered value plus optional columns.
type row struct {
	text     string
	class    string
	identity string
}

func (s *Stack) rows() ([]row, error) {
	return enumerable.MapErr(s.values, func(v Value) (row, error) {
		text, err := v.number.Render(options.format)
		if err != nil {
			return row{}, err
		}
		r := row{text: text}
		if options.showClass {
			r.class = v.number.Classify().String()
		}
		if options.showIdentity {
			r.identity = identity.NumberScheme.IdentityURI(v.number.Canonical())
		}
		return r, nil
	})
}

// print writes the stack top-last, one value per line, with the value column
// right-aligned.
func (s *Stack) print(w io.Writer) error {
	rows, err := s.rows()
	if err != nil {
		return err
	}

	valueWidth, classWidth := 0, 0
	for _, r := range rows {
		valueWidth = max(valueWidth, utf8.RuneCountInString(r.text))
		classWidth = max(classWidth, utf8.RuneCountInString(r.class))
	}

	for _, r := range rows {
		line := fmt.Sprintf("%*s", valueWidth, r.text)
		if r.class != "" {
			line += fmt.Sprintf("  %-*s", classWidth, r.class)
		}
		if r.identity != "" {
			line += "  " + r.identity
		}
		if _, err := fmt.Fprintln(w, strings.TrimRight(line, " ")); err != nil {
			return err
		}
	}
	return nil
}
