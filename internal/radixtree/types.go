// Package radixtree builds a binary radix tree over a sorted array of 32-bit
// Morton codes using a breadth-first, level-by-level, data-parallel splitter.
// Every leaf of the resulting tree covers a contiguous range of the input
// array and every internal node partitions its range on one bit of the code.
//
// The package does not sort codes, deduplicate them, compute bounding boxes,
// or balance the tree, and it does not define the 3D<->Morton mapping. It
// only builds the tree's topology.
package radixtree

import (
	"runtime"

	"github.com/arborix/radixtree/internal/radixtree/alloc"
)

// Task is a pending split: node id `Node` owns the half-open code range
// [Begin, End) and will next discriminate on bit `Bit`. Bit can be driven
// below zero by the bit-skip heuristic, at which point the task collapses to
// a leaf rather than splitting further.
type Task struct {
	Node  uint32
	Begin uint32
	End   uint32
	Bit   int32
}

// Config controls one Build invocation. It is validated once, up front.
type Config struct {
	// Bits is the number of significant bits to consider, 1..=32. Bit indices
	// run from 0 (LSB) to Bits-1 (MSB).
	Bits uint32 `json:"bits"`

	// MaxLeafSize is the largest code range that is still written as a leaf
	// rather than split further. Must be >= 1.
	MaxLeafSize uint32 `json:"max_leaf_size"`

	// KeepSingletons disables the bit-skip optimisation and instead emits
	// explicit singleton-forwarder nodes (exactly one child) whenever a split
	// bit does not actually partition the range.
	KeepSingletons bool `json:"keep_singletons"`

	// GroupSize is the batch width for the group-local prefix-sum allocator:
	// how many tasks are locally prefix-summed before a single atomic add
	// claims the group's output slots. It is a tuning knob only; it never
	// changes the resulting tree. Defaults to runtime.NumCPU() *
	// alloc.DefaultGroupWidth() when <= 0.
	GroupSize int `json:"group_size,omitempty"`

	// Logger, when non-nil, receives one line per driver level transition.
	Logger Logger `json:"-"`
}

// Logger is the narrow structured-logging surface the Driver writes to. The
// standard library's *log.Logger satisfies it directly.
type Logger interface {
	Printf(format string, args ...any)
}

func (c Config) groupSize() int {
	if c.GroupSize > 0 {
		return c.GroupSize
	}
	n := runtime.NumCPU()
	if n <= 0 {
		n = 1
	}
	return n * alloc.DefaultGroupWidth()
}

// Validate checks the malformed-input conditions spec'd as fatal programmer
// errors: bits outside 1..=32, zero max leaf size, and a code count n of zero.
// It does not check that the codes are sorted.
func (c Config) Validate(n int) error {
	if c.Bits == 0 || c.Bits > 32 {
		return ErrValidation("bits", "must be in 1..=32")
	}
	if c.MaxLeafSize == 0 {
		return ErrValidation("max_leaf_size", "must be >= 1")
	}
	if n == 0 {
		return ErrValidation("codes", "must be non-empty")
	}
	return nil
}

// Stats summarizes a completed build.
type Stats struct {
	TotalNodes int
	TotalLeaves int
}
