//go:build arrayvec_debug

// File: arrayvec/debug_on.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package arrayvec

func debugAssert(cond bool, msg string) {
	if !cond {
		panic("arrayvec: assertion failed: " + msg)
	}
}
