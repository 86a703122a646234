//go:build !arrayvec_debug

// File: arrayvec/debug_off.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package arrayvec

func debugAssert(bool, string) {}
