package radixtree

import (
	"context"

	"github.com/arborix/radixtree/internal/radixtree/alloc"
)

// Build runs the host-side driver loop: it seeds the root task, ping-pongs two
// task queues through one split pass per bit level, and finalizes any tasks
// still outstanding once the bit budget is exhausted. codes must already be
// sorted ascending; Build does not sort, deduplicate, or validate sortedness.
func Build(ctx context.Context, codes []uint32, cfg Config, sink TreeSink) (Stats, error) {
	n := len(codes)
	if err := cfg.Validate(n); err != nil {
		return Stats{}, err
	}

	if err := sink.ReserveLeaves(n); err != nil {
		return Stats{}, ErrBackend("reserve_leaves", err)
	}

	nodeCap := 2 * ceilDiv(n, int(cfg.MaxLeafSize))
	if nodeCap < 1 {
		nodeCap = 1
	}
	if err := sink.ReserveNodes(nodeCap); err != nil {
		return Stats{}, ErrBackend("reserve_nodes", err)
	}

	bufA := make([]Task, n)
	bufB := make([]Task, n)
	bufA[0] = Task{Node: 0, Begin: 0, End: uint32(n), Bit: int32(cfg.Bits) - 1}

	in := bufA[:1]
	out := bufB

	leafCursor := alloc.NewCursor(uint32(n))
	nNodes := uint32(1)
	level := int32(cfg.Bits) - 1

	for len(in) > 0 && level >= 0 {
		growTo := int(nNodes) + 2*len(in)
		if growTo > nodeCap {
			nodeCap = growTo
			if err := sink.ReserveNodes(nodeCap); err != nil {
				return Stats{}, ErrBackend("reserve_nodes", err)
			}
		}

		outCursor := alloc.NewCursor(uint32(n))
		delta, err := splitWorker(ctx, codes, in, out, outCursor, leafCursor, nNodes, cfg, sink)
		if err != nil {
			return Stats{}, err
		}

		nNodes += uint32(delta)

		if cfg.Logger != nil {
			cfg.Logger.Printf("radixtree: level=%d active=%d nodes=%d leaves=%d", level, delta, nNodes, leafCursor.Len())
		}

		// Ping-pong: this level's output becomes next level's input; the
		// buffer that used to hold the input is free to serve as the next
		// output.
		prevIn := in
		in = out[:delta]
		out = prevIn[:n]
		level--
	}

	if len(in) > 0 {
		if err := leafFinalizer(ctx, in, leafCursor, cfg, sink); err != nil {
			return Stats{}, err
		}
	}

	return Stats{TotalNodes: int(nNodes), TotalLeaves: int(leafCursor.Len())}, nil
}

func ceilDiv(a, b int) int {
	if b <= 0 {
		return a
	}
	return (a + b - 1) / b
}
