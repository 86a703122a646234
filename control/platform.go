// control/platform.go
// Author: momentics <momentics@gmail.com>
//
// Platform debug probes: CPU count, cache line size, SIMD features.

package control

import (
	"runtime"
	"unsafe"

	"golang.org/x/sys/cpu"
)

// CacheLineSize is the padding x/sys/cpu uses for the build architecture.
const CacheLineSize = int(unsafe.Sizeof(cpu.CacheLinePad{}))

// RegisterPlatformProbes sets platform-specific debug metrics.
func RegisterPlatformProbes(dp *DebugProbes) {
	dp.RegisterProbe("platform.cpus", func() any {
		return runtime.NumCPU()
	})
	dp.RegisterProbe("platform.arch", func() any {
		return runtime.GOARCH
	})
	dp.RegisterProbe("platform.cacheline", func() any {
		return CacheLineSize
	})
	dp.RegisterProbe("platform.simd", func() any {
		switch runtime.GOARCH {
		case "amd64", "386":
			return map[string]bool{
				"sse2": cpu.X86.HasSSE2,
				"avx2": cpu.X86.HasAVX2,
			}
		case "arm64":
			return map[string]bool{
				"asimd": cpu.ARM64.HasASIMD,
			}
		}
		return map[string]bool{}
	})
}
