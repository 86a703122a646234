// File: arrayvec/errors.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Error definitions for arrayvec operations.

package arrayvec

import (
	"fmt"

	"github.com/momentics/arrayvec/api"
)

// CapacityError is returned when an element does not fit. Item is the
// rejected value, handed back so the caller can store it elsewhere.
type CapacityError[T any] struct {
	Item T
	Cap  int
}

func (e *CapacityError[T]) Error() string {
	return fmt.Sprintf("arrayvec: capacity %d exceeded", e.Cap)
}

// Unwrap returns api.ErrCapacityExceeded.
func (e *CapacityError[T]) Unwrap() error { return api.ErrCapacityExceeded }

// IndexError is returned when an index falls outside the live range.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("arrayvec: index %d out of bounds for length %d", e.Index, e.Len)
}

// Unwrap returns api.ErrIndexOutOfBounds.
func (e *IndexError) Unwrap() error { return api.ErrIndexOutOfBounds }
