// Package arrayvec
// Author: momentics <momentics@gmail.com>
//
// Fixed-capacity vector backed by an inline array.
//
// ArrayVec[T, [N]T] offers the usual vector operations (push, pop, insert,
// remove, truncate) over storage embedded in the value itself, so the
// container never calls make or append and is usable on hot paths and in
// allocation-averse code. Capacity is part of the type:
//
//	var path arrayvec.ArrayVec[Waypoint, [16]Waypoint]
//	if err := path.Push(wp); err != nil {
//		var full *arrayvec.CapacityError[Waypoint]
//		if errors.As(err, &full) {
//			spill(full.Item)
//		}
//	}
//
// Elements implementing api.Releaser are released exactly once when the
// vector drops them (Truncate, Clear, Retain, Release). Pop and Remove hand
// ownership back to the caller instead.
//
// Unchecked primitives (PushUnchecked, SetLen, SpareCapacity) carry
// caller-verified preconditions. Build with -tags arrayvec_debug to turn
// those preconditions into assertions.
package arrayvec
