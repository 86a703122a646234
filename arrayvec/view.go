// File: arrayvec/view.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Read and in-place access to the live prefix.

package arrayvec

import "iter"

// AsSlice returns the live elements. The slice capacity is clipped to
// Len(), so appending to it reallocates rather than writing into vacant
// slots. The view is invalidated by the next mutation of v.
func (v *ArrayVec[T, A]) AsSlice() []T {
	return v.slots()[:v.n:v.n]
}

// AsMutSlice returns the live elements for in-place modification.
// Writes through it change v; the clipping rules of AsSlice apply.
func (v *ArrayVec[T, A]) AsMutSlice() []T {
	return v.slots()[:v.n:v.n]
}

// Get returns the element at i.
func (v *ArrayVec[T, A]) Get(i int) (item T, ok bool) {
	if i < 0 || i >= v.n {
		return item, false
	}
	return v.slots()[i], true
}

// Last returns the final element.
func (v *ArrayVec[T, A]) Last() (T, bool) {
	return v.Get(v.n - 1)
}

// All iterates index/element pairs front to back. The length is re-read
// on every step, so elements dropped mid-iteration are never yielded.
func (v *ArrayVec[T, A]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.n; i++ {
			if !yield(i, v.slots()[i]) {
				return
			}
		}
	}
}

// Values iterates elements front to back.
func (v *ArrayVec[T, A]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.n; i++ {
			if !yield(v.slots()[i]) {
				return
			}
		}
	}
}

// Backward iterates index/element pairs back to front.
func (v *ArrayVec[T, A]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.n - 1; i >= 0; i-- {
			if i >= v.n {
				continue
			}
			if !yield(i, v.slots()[i]) {
				return
			}
		}
	}
}
