// Package alloc is the group-local prefix-sum allocator the radix tree
// builder uses to hand out node and leaf slots: every group of concurrent
// lanes computes its own exclusive prefix sum over a small per-lane count,
// then issues exactly one atomic add against a shared cursor to claim a
// contiguous slot range for the whole group. Contention is therefore
// O(groups), not O(lanes).
//
// Adapted from a size-classed bump allocator's bookkeeping and its CAS/atomic
// primitives; this version drops the byte-size-class machinery entirely and
// keeps only the index-cursor shape, since every reservation here is "N
// slots of a fixed-size record", never an arbitrary byte span.
package alloc

import "sync/atomic"

// Cursor is a monotonically increasing index counter over a fixed-capacity
// array. It never reuses a slot and never moves backward.
type Cursor struct {
	next atomic.Uint32
	cap  uint32
}

// NewCursor creates a cursor over an array of the given capacity.
func NewCursor(capacity uint32) *Cursor {
	return &Cursor{cap: capacity}
}

// Len reports how many slots have been claimed so far.
func (c *Cursor) Len() uint32 {
	return c.next.Load()
}

// Cap reports the array's capacity.
func (c *Cursor) Cap() uint32 {
	return c.cap
}

// Grow raises the cursor's capacity; it never shrinks it.
func (c *Cursor) Grow(capacity uint32) {
	if capacity > c.cap {
		c.cap = capacity
	}
}

// Reserve atomically claims n contiguous slots and returns the base index of
// the reservation. It reports false when the array's capacity would be
// exceeded; the caller must treat that as a fatal capacity-exhaustion
// condition, not retry.
func (c *Cursor) Reserve(n uint32) (base uint32, ok bool) {
	if n == 0 {
		return c.next.Load(), true
	}
	for {
		cur := c.next.Load()
		next := cur + n
		if next > c.cap || next < cur { // overflow or capacity check
			return 0, false
		}
		if c.next.CompareAndSwap(cur, next) {
			return cur, true
		}
	}
}

// GroupReserve implements the warp-local prefix-sum idiom: counts holds each
// lane's local output count (0, 1, or 2 in the split-worker's case). It
// computes the exclusive prefix sum of counts locally (no shared state touched
// yet), then performs exactly one Reserve for the group's total, and returns
// each lane's absolute base slot by adding the local prefix to the group base.
//
// This is the "one atomic per group, contiguous slot range per group"
// contract called out in the design notes; the caller supplies "lanes" as
// whatever batch size its scheduling model uses (a SIMD width, a goroutine
// batch, or all of one level's tasks at once).
func (c *Cursor) GroupReserve(counts []int) (bases []int, total int, ok bool) {
	bases = make([]int, len(counts))
	sum := 0
	for i, n := range counts {
		bases[i] = sum
		sum += n
	}
	groupBase, reserved := c.Reserve(uint32(sum))
	if !reserved {
		return nil, 0, false
	}
	for i := range bases {
		bases[i] += int(groupBase)
	}
	return bases, sum, true
}
