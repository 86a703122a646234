// Package api
// Author: momentics
//
// Live debug and state introspection contract.

package api

// Debug exposes runtime introspection of containers and buffers.
type Debug interface {
	// DumpState emits a snapshot of registered probes for diagnostics.
	DumpState() map[string]any

	// RegisterProbe dynamically registers new debug probes.
	RegisterProbe(name string, fn func() any)
}
