// File: arrayvec/clone.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package arrayvec

import (
	"fmt"
	"slices"
)

// Take moves all elements into the returned vector and leaves v empty.
// Nothing is released.
func (v *ArrayVec[T, A]) Take() ArrayVec[T, A] {
	out := *v
	*v = ArrayVec[T, A]{}
	return out
}

// Clone returns a shallow copy of v. Pointers and Releasers inside are
// shared with v afterwards, so only one of the two may release them.
func (v *ArrayVec[T, A]) Clone() ArrayVec[T, A] {
	return *v
}

// Equal reports whether a and b hold equal elements in the same order.
func Equal[T comparable, A any](a, b *ArrayVec[T, A]) bool {
	return slices.Equal(a.AsSlice(), b.AsSlice())
}

// EqualFunc is Equal with a custom element comparison.
func EqualFunc[T any, A any](a, b *ArrayVec[T, A], eq func(T, T) bool) bool {
	return slices.EqualFunc(a.AsSlice(), b.AsSlice(), eq)
}

func (v *ArrayVec[T, A]) String() string {
	return fmt.Sprint(v.AsSlice())
}
