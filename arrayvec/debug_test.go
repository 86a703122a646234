//go:build arrayvec_debug

package arrayvec

import (
	"strings"
	"testing"
)

func expectAssertion(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		msg, _ := r.(string)
		if !strings.HasPrefix(msg, "arrayvec: assertion failed") {
			t.Errorf("expected assertion panic, got %v", r)
		}
	}()
	fn()
}

func TestDebugPushUncheckedOnFull(t *testing.T) {
	var v ArrayVec[int, [2]int]
	v.PushUnchecked(1)
	v.PushUnchecked(2)
	expectAssertion(t, func() { v.PushUnchecked(3) })
	if v.n != 2 {
		t.Errorf("length changed to %d", v.n)
	}
}

func TestDebugSetLenBeyondCapacity(t *testing.T) {
	var v ArrayVec[int, [2]int]
	expectAssertion(t, func() { v.SetLen(3) })
	expectAssertion(t, func() { v.SetLen(-1) })
}
