// Package fake
// Author: momentics <momentics@gmail.com>
//
// Release-counting element doubles for testing container lifetimes.

package fake

import (
	"fmt"
	"sort"
	"sync"
)

// Counter records how many times each tracked element was released.
type Counter struct {
	mu       sync.Mutex
	releases map[int]int
	panicOn  map[int]bool
}

// NewCounter creates an empty release counter.
func NewCounter() *Counter {
	return &Counter{
		releases: make(map[int]int),
		panicOn:  make(map[int]bool),
	}
}

// Track returns a value-receiver Releaser bound to c.
func (c *Counter) Track(id int) Tracked {
	return Tracked{ID: id, counter: c}
}

// Handle returns a pointer-receiver Releaser bound to c.
func (c *Counter) Handle(id int) Handle {
	return Handle{ID: id, counter: c}
}

// PanicOn makes the release of id panic after it has been counted.
func (c *Counter) PanicOn(id int) {
	c.mu.Lock()
	c.panicOn[id] = true
	c.mu.Unlock()
}

func (c *Counter) record(id int) {
	c.mu.Lock()
	c.releases[id]++
	shouldPanic := c.panicOn[id]
	c.mu.Unlock()
	if shouldPanic {
		panic(fmt.Sprintf("fake: release of %d failed", id))
	}
}

// Released returns the release count of id.
func (c *Counter) Released(id int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.releases[id]
}

// Total returns the number of releases across all ids.
func (c *Counter) Total() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := 0
	for _, n := range c.releases {
		total += n
	}
	return total
}

// Multiple returns the ids released more than once, sorted.
func (c *Counter) Multiple() []int {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []int
	for id, n := range c.releases {
		if n > 1 {
			out = append(out, id)
		}
	}
	sort.Ints(out)
	return out
}

// Tracked is released by value.
type Tracked struct {
	ID      int
	counter *Counter
}

func (t Tracked) Release() {
	if t.counter != nil {
		t.counter.record(t.ID)
	}
}

// Handle is released through its address and remembers it.
type Handle struct {
	ID       int
	Released bool
	counter  *Counter
}

func (h *Handle) Release() {
	h.Released = true
	if h.counter != nil {
		h.counter.record(h.ID)
	}
}
