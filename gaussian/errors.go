// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package gaussian

import (
	"errors"
	"fmt"
)

// Every error returned by this package wraps exactly one of these.
var (
	ErrDivisionByZero   = errors.New("division by zero")
	ErrInvalidOperation = errors.New("invalid operation")
	ErrNarrowing        = errors.New("invalid cast")
	ErrFormat           = errors.New("invalid format")
	ErrArgument         = errors.New("invalid argument")

	// ErrUnsupported is returned by operations whose exact result may be irrational.
	ErrUnsupported = fmt.Errorf("%w: unsupported: would lose exactness", ErrInvalidOperation)
)
