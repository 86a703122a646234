// Package control
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics and debug introspection layer for arrayvec containers.
//
// Provides concurrent-safe state handling primitives including:
//   - Metrics registry with snapshot reads
//   - State export, debug hooks, and probe registration
//   - Platform probes (CPU features, cache line size)
//
// The containers themselves are not synchronized; probes registered here
// must only be dumped from the goroutine that owns the container.
package control
