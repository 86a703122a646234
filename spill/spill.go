// File: spill/spill.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// FIFO window over a bounded vector that catches rejected items in an
// unbounded overflow queue.

package spill

import (
	"errors"
	"fmt"

	"github.com/eapache/queue"

	"github.com/momentics/arrayvec/api"
	"github.com/momentics/arrayvec/arrayvec"
	"github.com/momentics/arrayvec/control"
)

// Stats counts traffic through a Buffer.
type Stats struct {
	Pushed   uint64 // items accepted by Push
	Spilled  uint64 // items routed to the overflow queue
	Refilled uint64 // items moved from overflow into the window
	Shifted  uint64 // items removed by Shift
}

// Buffer keeps the oldest items in a fixed-capacity window and the rest in
// arrival order in an overflow queue. The window is the hot, allocation
// free part; the overflow only grows when producers outrun the consumer.
//
// Buffer is not safe for concurrent use.
type Buffer[T any] struct {
	window   api.Vector[T]
	overflow *queue.Queue
	stats    Stats
}

// New wraps window, which keeps any elements it already holds.
func New[T any](window api.Vector[T]) *Buffer[T] {
	return &Buffer[T]{
		window:   window,
		overflow: queue.New(),
	}
}

// Push appends item behind everything already buffered.
func (b *Buffer[T]) Push(item T) error {
	if b.overflow.Length() > 0 {
		b.spill(item)
		return nil
	}
	err := b.window.Push(item)
	if err == nil {
		b.stats.Pushed++
		return nil
	}
	var full *arrayvec.CapacityError[T]
	if errors.As(err, &full) {
		b.spill(full.Item)
		return nil
	}
	return fmt.Errorf("spill: push: %w", err)
}

func (b *Buffer[T]) spill(item T) {
	b.overflow.Add(item)
	b.stats.Pushed++
	b.stats.Spilled++
}

// Shift removes and returns the oldest item, then tops the window up from
// the overflow queue. A window that cannot hold anything (Cap() == 0)
// leaves every item in the overflow, which is then drained directly.
func (b *Buffer[T]) Shift() (item T, ok bool) {
	if b.window.IsEmpty() {
		if b.overflow.Length() == 0 {
			return item, false
		}
		// Nil interface values come back from the queue as untyped nil.
		item, _ = b.overflow.Remove().(T)
		b.stats.Shifted++
		return item, true
	}
	item, err := b.window.Remove(0)
	if err != nil {
		return item, false
	}
	b.stats.Shifted++
	b.refill()
	return item, true
}

func (b *Buffer[T]) refill() {
	for !b.window.IsFull() && b.overflow.Length() > 0 {
		next, _ := b.overflow.Peek().(T)
		if err := b.window.Push(next); err != nil {
			return
		}
		b.overflow.Remove()
		b.stats.Refilled++
	}
}

// Window returns the buffered items currently held in the window, oldest
// first. It is invalidated by the next Push or Shift.
func (b *Buffer[T]) Window() []T { return b.window.AsSlice() }

// Len returns the total number of buffered items.
func (b *Buffer[T]) Len() int { return b.window.Len() + b.overflow.Length() }

// Spilled returns how many items are waiting in the overflow queue.
func (b *Buffer[T]) Spilled() int { return b.overflow.Length() }

// Stats returns the traffic counters.
func (b *Buffer[T]) Stats() Stats { return b.stats }

// Release drops every buffered item, window first, then overflow in
// arrival order.
func (b *Buffer[T]) Release() {
	b.window.Release()
	for b.overflow.Length() > 0 {
		api.ReleaseValue(b.overflow.Remove())
	}
}

// RegisterProbes exposes occupancy under prefix.
func (b *Buffer[T]) RegisterProbes(dp api.Debug, prefix string) {
	control.RegisterOccupancyProbes(dp, prefix+".window", b.window)
	dp.RegisterProbe(prefix+".overflow.len", func() any { return b.overflow.Length() })
}

// Publish writes occupancy and traffic counters to mr under prefix.
func (b *Buffer[T]) Publish(mr *control.MetricsRegistry, prefix string) {
	mr.Set(prefix+".len", b.Len())
	mr.SetOccupancy(prefix+".window", b.window)
	mr.SetCounters(prefix, map[string]uint64{
		"pushed":   b.stats.Pushed,
		"spilled":  b.stats.Spilled,
		"refilled": b.stats.Refilled,
		"shifted":  b.stats.Shifted,
	})
}
