// File: api/vector.go
// Author: momentics <momentics@gmail.com>
//
// Bounded sequence contract and element lifetime hooks.

package api

// Releaser is implemented by elements that own a resource which must be
// given back exactly once when a container drops them.
type Releaser interface {
	Release()
}

// Vector is a capacity-bounded, contiguous sequence.
//
// Implementations never grow past Cap. Failed Push and TryInsert calls
// report ErrCapacityExceeded or ErrIndexOutOfBounds and leave the
// sequence unmodified.
type Vector[T any] interface {
	// Len returns the number of live elements.
	Len() int
	// Cap returns the fixed maximum element count.
	Cap() int
	IsEmpty() bool
	IsFull() bool

	// Push appends item; fails when full.
	Push(item T) error
	// Pop removes and returns the last element; false if empty.
	Pop() (T, bool)
	// TryInsert places item at index, shifting the tail right.
	TryInsert(index int, item T) error
	// Remove deletes the element at index, shifting the tail left.
	// Ownership of the returned element passes to the caller.
	Remove(index int) (T, error)
	// Truncate releases every element at or past n.
	Truncate(n int)
	Clear()

	// AsSlice exposes the live prefix. The view is only valid until the
	// next mutation.
	AsSlice() []T
	AsMutSlice() []T

	// Release drops all live elements. The vector stays usable.
	Release()
}

// ReleaseValue invokes Release on v if it implements Releaser.
func ReleaseValue(v any) {
	if r, ok := v.(Releaser); ok {
		r.Release()
	}
}
