// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package identity

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var ErrAlreadyAssigned = errors.New("identity already assigned")

// Slot holds an identity that is assigned at most once. The zero value is
// unassigned. Slots are values: Assign returns the assigned slot and leaves
// the receiver untouched.
type Slot struct {
	id       uuid.UUID
	assigned bool
}

// Assigned returns a slot already holding id.
func Assigned(id uuid.UUID) Slot {
	return Slot{id: id, assigned: true}
}

// Assign moves an unassigned slot to the assigned state. Assigning an
// assigned slot fails, even with the same identity.
func (s Slot) Assign(id uuid.UUID) (Slot, error) {
	if s.assigned {
		return s, fmt.Errorf("%w: holds %s, refusing %s", ErrAlreadyAssigned, s.id, id)
	}
	return Slot{id: id, assigned: true}, nil
}

// ID returns the identity and whether one has been assigned.
func (s Slot) ID() (uuid.UUID, bool) {
	return s.id, s.assigned
}

func (s Slot) IsAssigned() bool {
	return s.assigned
}
