// File: arrayvec/mutate.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Element insertion and removal. Removal here transfers ownership to the
// caller; see drop.go for operations that release.

package arrayvec

import "github.com/momentics/arrayvec/api"

// Push appends item. On a full vector it returns a *CapacityError carrying
// item and leaves the vector unchanged.
func (v *ArrayVec[T, A]) Push(item T) error {
	if v.IsFull() {
		return &CapacityError[T]{Item: item, Cap: v.Cap()}
	}
	v.PushUnchecked(item)
	return nil
}

// PushUnchecked appends item without a capacity check.
//
// The caller guarantees !IsFull(). Violating that panics with an assertion
// under the arrayvec_debug tag and with a runtime index error otherwise.
func (v *ArrayVec[T, A]) PushUnchecked(item T) {
	debugAssert(v.n < v.Cap(), "PushUnchecked on full vector")
	v.slots()[v.n] = item
	v.n++
}

// Pop removes and returns the last element; ok is false if v is empty.
func (v *ArrayVec[T, A]) Pop() (item T, ok bool) {
	if v.n == 0 {
		return item, false
	}
	v.n--
	s := v.slots()
	item = s[v.n]
	var zero T
	s[v.n] = zero
	return item, true
}

// TryInsert places item at index and shifts [index, Len()) one slot right.
// The index is checked first: index > Len() yields *IndexError, a full
// vector yields *CapacityError carrying item. Either way v is unchanged.
func (v *ArrayVec[T, A]) TryInsert(index int, item T) error {
	if index < 0 || index > v.n {
		return &IndexError{Index: index, Len: v.n}
	}
	if v.IsFull() {
		return &CapacityError[T]{Item: item, Cap: v.Cap()}
	}
	s := v.slots()
	// Source and destination overlap; copy is a memmove.
	copy(s[index+1:v.n+1], s[index:v.n])
	s[index] = item
	v.n++
	return nil
}

// Remove deletes the element at index, shifting the tail left, and
// returns it.
func (v *ArrayVec[T, A]) Remove(index int) (item T, err error) {
	if index < 0 || index >= v.n {
		return item, &IndexError{Index: index, Len: v.n}
	}
	s := v.slots()
	item = s[index]
	copy(s[index:v.n-1], s[index+1:v.n])
	v.n--
	var zero T
	s[v.n] = zero
	return item, nil
}

// SwapRemove deletes the element at index by moving the last element into
// its slot. Order is not preserved.
func (v *ArrayVec[T, A]) SwapRemove(index int) (item T, err error) {
	if index < 0 || index >= v.n {
		return item, &IndexError{Index: index, Len: v.n}
	}
	s := v.slots()
	item = s[index]
	v.n--
	s[index] = s[v.n]
	var zero T
	s[v.n] = zero
	return item, nil
}

// TryExtendFromSlice appends all of items or none of them.
func (v *ArrayVec[T, A]) TryExtendFromSlice(items []T) error {
	if len(items) > v.Remaining() {
		return api.NewError(api.ErrCodeCapacityExceeded, "arrayvec: extend exceeds capacity").
			WithContext("len", v.n).
			WithContext("cap", v.Cap()).
			WithContext("items", len(items))
	}
	copy(v.slots()[v.n:], items)
	v.n += len(items)
	return nil
}
