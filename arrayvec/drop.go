// File: arrayvec/drop.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Operations that end element lifetimes.
//
// The length is always updated before any element is released, so a
// panicking Release never exposes a released element through the vector.
// The sweep continues past a panic; the first panic value is re-raised
// once every slot is cleared and later ones are dropped.

package arrayvec

import "github.com/momentics/arrayvec/api"

// Truncate releases the elements at [n, Len()) and shortens the vector to
// n. It is a no-op when n >= Len(). Negative n is treated as 0.
func (v *ArrayVec[T, A]) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	if n >= v.n {
		return
	}
	old := v.n
	v.n = n
	dropSlots(v.slots()[n:old])
}

// Clear releases every element.
func (v *ArrayVec[T, A]) Clear() { v.Truncate(0) }

// Release ends the lifetime of all live elements. The vector is empty and
// reusable afterwards, and it implements api.Releaser so vectors nest.
func (v *ArrayVec[T, A]) Release() { v.Clear() }

// Retain keeps the elements for which keep returns true, in order, and
// releases the rest. If keep panics, v still holds all of its elements,
// possibly reordered.
func (v *ArrayVec[T, A]) Retain(keep func(*T) bool) {
	s := v.slots()[:v.n]
	w := 0
	for r := range s {
		if !keep(&s[r]) {
			continue
		}
		if w != r {
			s[w], s[r] = s[r], s[w]
		}
		w++
	}
	v.n = w
	dropSlots(s[w:])
}

func dropSlots[T any](s []T) {
	var (
		first    any
		panicked bool
	)
	for i := range s {
		if p, ok := releaseSlot(&s[i]); ok && !panicked {
			first, panicked = p, true
		}
	}
	if panicked {
		panic(first)
	}
}

// releaseSlot releases *p if it is a Releaser (through either the value or
// its address) and zeroes the slot, recovering any panic from Release.
func releaseSlot[T any](p *T) (recovered any, panicked bool) {
	defer func() {
		var zero T
		*p = zero
		if r := recover(); r != nil {
			recovered, panicked = r, true
		}
	}()
	if r, ok := any(p).(api.Releaser); ok {
		r.Release()
		return
	}
	api.ReleaseValue(*p)
	return
}
