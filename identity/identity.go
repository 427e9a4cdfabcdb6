// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

// Package identity derives stable, namespaced identifiers from canonical
// value strings.
//
// An identity is the RFC 4122 name-based (version 5, SHA-1) UUID of the
// canonical string within a fixed namespace. uuid.UUID holds its bytes in
// network order, so the result is the same 128-bit value, and the same
// text, that any conforming implementation produces for the same input.
package identity

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Published namespaces. Number covers the Gaussian rationals and integers;
// the others are reserved for the sibling value domains and use the same
// derivation.
var (
	Number     = uuid.MustParse("6f2d5c1e-8a3b-4e7f-9c41-2b7d0e5a9f13")
	Date       = uuid.MustParse("0c1f6a52-3d4e-4b8a-a7c9-5e21f8d04b36")
	Time       = uuid.MustParse("94b7e3d0-6a15-4c2f-8e3b-71d9c0a5f248")
	Interval   = uuid.MustParse("3e8a0f17-b2c4-45d9-9a6e-c4f15b7d2e80")
	Coordinate = uuid.MustParse("d5a9c3b1-7e02-4f68-b1d4-0a8e6c2f9b57")
	Chemical   = uuid.MustParse("71c4e8f2-0b9d-4a36-8f5c-e3b2a1d07c94")
	Element    = uuid.MustParse("a2f06d3b-94e1-4c7a-b58d-2c6e0f9a13b5")
)

var ErrBadURI = errors.New("malformed identity URI")

// Canonical is implemented by values that have a canonical text form.
type Canonical interface {
	Canonical() string
}

// New derives the identity of canonical within namespace. The string is
// hashed exactly as given; callers must not trim or reformat it.
func New(namespace uuid.UUID, canonical string) uuid.UUID {
	return uuid.NewSHA1(namespace, []byte(canonical))
}

// Of derives the identity of a number-domain value.
func Of(v Canonical) uuid.UUID {
	return New(Number, v.Canonical())
}

// Scheme pairs a URI prefix with its namespace.
type Scheme struct {
	Prefix    string
	Namespace uuid.UUID
}

var NumberScheme = Scheme{Prefix: "num", Namespace: Number}

// ValueURI references a value by its canonical string, e.g. "num:3,4,0,1".
func (s Scheme) ValueURI(canonical string) string {
	return s.Prefix + ":" + canonical
}

// IdentityURI references a value by its identity, e.g. "num:<uuid>".
func (s Scheme) IdentityURI(canonical string) string {
	return s.Prefix + ":" + New(s.Namespace, canonical).String()
}

// Resolve maps a value URI of this scheme to the identity URI.
func (s Scheme) Resolve(uri string) (string, error) {
	prefix, body, err := ParseURI(uri)
	if err != nil {
		return "", err
	}
	if prefix != s.Prefix {
		return "", fmt.Errorf("%w: scheme %q, want %q", ErrBadURI, prefix, s.Prefix)
	}
	return s.IdentityURI(body), nil
}

// ParseURI splits "prefix:body".
func ParseURI(uri string) (prefix, body string, err error) {
	prefix, body, found := strings.Cut(uri, ":")
	if !found || prefix == "" || body == "" {
		return "", "", fmt.Errorf("%w: %q", ErrBadURI, uri)
	}
	return prefix, body, nil
}
