// File: arrayvec/arrayvec.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Inline storage, length bookkeeping and the low-level primitives the
// checked operations are layered on.

package arrayvec

import (
	"reflect"
	"unsafe"

	"github.com/momentics/arrayvec/api"
)

// Ensure compile-time interface compliance.
var _ api.Vector[int] = (*ArrayVec[int, [1]int])(nil)

// ArrayVec is a vector of at most N elements stored in A, which must be
// the array type [N]T. The zero value is an empty vector.
//
// Slots [0, Len()) are live. Slots [Len(), Cap()) hold the zero value of T
// and are never handed out by the checked API.
//
// Assignment copies the vector shallowly; use Take to move ownership.
// ArrayVec is not safe for concurrent mutation.
type ArrayVec[T any, A any] struct {
	n   int
	buf A
}

// New returns an empty vector. It panics if A is not [N]T.
func New[T any, A any]() ArrayVec[T, A] {
	checkLayout[T, A]()
	return ArrayVec[T, A]{}
}

// FromSlice returns a vector holding a copy of items.
func FromSlice[T any, A any](items []T) (ArrayVec[T, A], error) {
	v := New[T, A]()
	if err := v.TryExtendFromSlice(items); err != nil {
		return v, err
	}
	return v, nil
}

// checkLayout returns N, panicking unless A is [N]T. Every path to the
// backing array goes through it, so mismatched storage never reaches
// unsafe.Slice.
func checkLayout[T any, A any]() int {
	at := reflect.TypeFor[A]()
	et := reflect.TypeFor[T]()
	if at.Kind() != reflect.Array || at.Elem() != et {
		panic("arrayvec: storage " + at.String() + " is not an array of " + et.String())
	}
	return at.Len()
}

// Len returns the number of live elements.
func (v *ArrayVec[T, A]) Len() int { return v.n }

// Cap returns N. It panics if A is not [N]T.
func (v *ArrayVec[T, A]) Cap() int { return checkLayout[T, A]() }

func (v *ArrayVec[T, A]) IsEmpty() bool { return v.n == 0 }

func (v *ArrayVec[T, A]) IsFull() bool { return v.n == v.Cap() }

// Remaining returns how many more elements fit.
func (v *ArrayVec[T, A]) Remaining() int { return v.Cap() - v.n }

// slots views the whole backing array, live and vacant.
func (v *ArrayVec[T, A]) slots() []T {
	return unsafe.Slice((*T)(unsafe.Pointer(&v.buf)), v.Cap())
}

// SetLen forces the length to n without touching storage.
//
// The caller guarantees 0 <= n <= Cap() and that every slot below n holds
// a value it wants live, typically written through SpareCapacity. Shrinking
// with SetLen skips Release and leaves the old values in the vacated slots
// until they are overwritten; Truncate is the checked way to shrink.
// Breaking the precondition panics under the arrayvec_debug tag and
// leaves the vector inconsistent otherwise.
func (v *ArrayVec[T, A]) SetLen(n int) {
	debugAssert(n >= 0 && n <= v.Cap(), "SetLen outside [0, Cap()]")
	v.n = n
}

// SpareCapacity returns the vacant slots [Len(), Cap()). Values written
// there become live only after a matching SetLen.
func (v *ArrayVec[T, A]) SpareCapacity() []T {
	return v.slots()[v.n:]
}
