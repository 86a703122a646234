package spill_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/momentics/arrayvec/api"
	"github.com/momentics/arrayvec/arrayvec"
	"github.com/momentics/arrayvec/control"
	"github.com/momentics/arrayvec/fake"
	"github.com/momentics/arrayvec/spill"
)

func newIntBuffer() (*spill.Buffer[int], *arrayvec.ArrayVec[int, [3]int]) {
	window := &arrayvec.ArrayVec[int, [3]int]{}
	return spill.New[int](window), window
}

func TestPushSpillsInOrder(t *testing.T) {
	b, window := newIntBuffer()
	for i := 1; i <= 7; i++ {
		if err := b.Push(i); err != nil {
			t.Fatalf("Push(%d): %v", i, err)
		}
	}
	if !slices.Equal(b.Window(), []int{1, 2, 3}) {
		t.Errorf("window = %v", b.Window())
	}
	if b.Len() != 7 || b.Spilled() != 4 || window.Len() != 3 {
		t.Errorf("len=%d spilled=%d window=%d", b.Len(), b.Spilled(), window.Len())
	}

	var out []int
	for {
		x, ok := b.Shift()
		if !ok {
			break
		}
		out = append(out, x)
	}
	if !slices.Equal(out, []int{1, 2, 3, 4, 5, 6, 7}) {
		t.Errorf("shift order = %v", out)
	}

	st := b.Stats()
	if st.Pushed != 7 || st.Spilled != 4 || st.Refilled != 4 || st.Shifted != 7 {
		t.Errorf("stats = %+v", st)
	}
}

func TestPushAfterSpillKeepsFIFO(t *testing.T) {
	b, _ := newIntBuffer()
	for i := 1; i <= 4; i++ {
		b.Push(i)
	}
	if x, _ := b.Shift(); x != 1 {
		t.Fatalf("Shift = %d", x)
	}
	// 4 was refilled into the window; 5 must land behind it.
	b.Push(5)
	if !slices.Equal(b.Window(), []int{2, 3, 4}) || b.Spilled() != 1 {
		t.Errorf("window=%v spilled=%d", b.Window(), b.Spilled())
	}
}

func TestShiftEmpty(t *testing.T) {
	b, _ := newIntBuffer()
	if _, ok := b.Shift(); ok {
		t.Error("Shift on empty buffer returned a value")
	}
}

// rejectingVector fails every push with a non-capacity error.
type rejectingVector struct {
	arrayvec.ArrayVec[int, [1]int]
}

var errRejected = errors.New("rejected")

func (r *rejectingVector) Push(int) error { return errRejected }

func TestPushPropagatesOtherErrors(t *testing.T) {
	b := spill.New[int](&rejectingVector{})
	if err := b.Push(1); !errors.Is(err, errRejected) {
		t.Errorf("Push: %v", err)
	}
	if b.Len() != 0 {
		t.Errorf("len = %d", b.Len())
	}
}

func TestReleaseDropsWindowAndOverflow(t *testing.T) {
	c := fake.NewCounter()
	var window arrayvec.ArrayVec[fake.Tracked, [2]fake.Tracked]
	b := spill.New[fake.Tracked](&window)
	for i := 0; i < 5; i++ {
		b.Push(c.Track(i))
	}
	b.Release()
	if c.Total() != 5 || len(c.Multiple()) != 0 {
		t.Errorf("total=%d multiple=%v", c.Total(), c.Multiple())
	}
	if b.Len() != 0 {
		t.Errorf("len = %d after Release", b.Len())
	}
}

func TestShiftTransfersOwnership(t *testing.T) {
	c := fake.NewCounter()
	var window arrayvec.ArrayVec[fake.Tracked, [2]fake.Tracked]
	b := spill.New[fake.Tracked](&window)
	b.Push(c.Track(0))
	b.Push(c.Track(1))
	b.Push(c.Track(2))
	if x, _ := b.Shift(); x.ID != 0 {
		t.Fatalf("Shift = %d", x.ID)
	}
	if c.Total() != 0 {
		t.Errorf("Shift released %d elements", c.Total())
	}
}

func TestProbesAndMetrics(t *testing.T) {
	b, _ := newIntBuffer()
	for i := 0; i < 5; i++ {
		b.Push(i)
	}

	dp := control.NewDebugProbes()
	b.RegisterProbes(dp, "plan")
	state := dp.DumpState()
	if state["plan.window.len"] != 3 || state["plan.window.cap"] != 3 ||
		state["plan.window.fill"] != 1.0 || state["plan.overflow.len"] != 2 {
		t.Errorf("probes = %v", state)
	}

	mr := control.NewMetricsRegistry()
	b.Publish(mr, "plan")
	if v, _ := mr.Get("plan.spilled"); v != uint64(2) {
		t.Errorf("plan.spilled = %v", v)
	}
	if v, _ := mr.Get("plan.len"); v != 5 {
		t.Errorf("plan.len = %v", v)
	}
	if v, _ := mr.Get("plan.window.len"); v != 3 {
		t.Errorf("plan.window.len = %v", v)
	}
}

var _ api.Vector[int] = (*rejectingVector)(nil)

func TestNilInterfaceItemsSurviveSpill(t *testing.T) {
	var window arrayvec.ArrayVec[error, [1]error]
	b := spill.New[error](&window)
	errBoom := errors.New("boom")
	for _, e := range []error{nil, nil, errBoom, nil} {
		if err := b.Push(e); err != nil {
			t.Fatalf("Push: %v", err)
		}
	}
	var got []error
	for {
		e, ok := b.Shift()
		if !ok {
			break
		}
		got = append(got, e)
	}
	if !slices.Equal(got, []error{nil, nil, errBoom, nil}) {
		t.Errorf("shifted %v", got)
	}
}

func TestZeroCapacityWindowDrainsOverflow(t *testing.T) {
	var window arrayvec.ArrayVec[int, [0]int]
	b := spill.New[int](&window)
	b.Push(1)
	b.Push(2)
	if b.Len() != 2 || b.Spilled() != 2 {
		t.Fatalf("len=%d spilled=%d", b.Len(), b.Spilled())
	}
	for _, want := range []int{1, 2} {
		x, ok := b.Shift()
		if !ok || x != want {
			t.Fatalf("Shift = %d, %v; want %d", x, ok, want)
		}
	}
	if _, ok := b.Shift(); ok || b.Len() != 0 {
		t.Errorf("buffer not drained: len=%d", b.Len())
	}
	if st := b.Stats(); st.Shifted != 2 || st.Refilled != 0 {
		t.Errorf("stats = %+v", st)
	}
}
