package alloc

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// DefaultGroupWidth hints at a lane-batch width for the group-local
// prefix-sum allocator based on detected SIMD capability. Group size is an
// implementation tuning knob, not something that changes the built tree's
// shape; this just picks a default proportional to whatever batching the
// host CPU naturally does (see Config.GroupSize for the override).
func DefaultGroupWidth() int {
	switch runtime.GOARCH {
	case "amd64":
		if cpu.X86.HasAVX512F {
			return 16
		}
		if cpu.X86.HasAVX2 {
			return 8
		}
		return 4
	case "arm64":
		if cpu.ARM64.HasASIMD {
			return 8
		}
		return 4
	default:
		return 4
	}
}
