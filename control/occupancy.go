// control/occupancy.go
// Author: momentics <momentics@gmail.com>
//
// Occupancy probes and metrics for bounded containers.

package control

import "github.com/momentics/arrayvec/api"

// Occupancy is the read side of a bounded container.
type Occupancy interface {
	Len() int
	Cap() int
}

// Fill returns Len/Cap in [0, 1]; a zero-capacity container reports 1.
func Fill(o Occupancy) float64 {
	c := o.Cap()
	if c == 0 {
		return 1
	}
	return float64(o.Len()) / float64(c)
}

// RegisterOccupancyProbes registers len, cap and fill probes for o under
// prefix. The probes read o on every dump.
func RegisterOccupancyProbes(dp api.Debug, prefix string, o Occupancy) {
	dp.RegisterProbe(prefix+".len", func() any { return o.Len() })
	dp.RegisterProbe(prefix+".cap", func() any { return o.Cap() })
	dp.RegisterProbe(prefix+".fill", func() any { return Fill(o) })
}

// SetOccupancy publishes the current len, cap and fill of o under prefix.
func (mr *MetricsRegistry) SetOccupancy(prefix string, o Occupancy) {
	mr.Set(prefix+".len", o.Len())
	mr.Set(prefix+".cap", o.Cap())
	mr.Set(prefix+".fill", Fill(o))
}

// SetCounters publishes each counter as prefix.name.
func (mr *MetricsRegistry) SetCounters(prefix string, counters map[string]uint64) {
	for name, v := range counters {
		mr.Set(prefix+"."+name, v)
	}
}
