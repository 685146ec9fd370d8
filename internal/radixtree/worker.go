package radixtree

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/arborix/radixtree/internal/radixtree/alloc"
)

// lane is the local, race-free computation for one task: what it would emit,
// decided entirely from read-only inputs (codes, the task itself, config).
// Nothing here touches shared state; that happens only after the group-local
// prefix sum has told a lane its absolute output slots.
type lane struct {
	task      Task
	isLeaf    bool
	children  [2]Task // valid entries are children[:outCount]
	outCount  int     // 0 (leaf) or 1 (singleton forwarder) or 2 (proper split)
	pivot     uint32  // only set when outCount == 2
	hasLeft   bool
	hasRight  bool
}

// planLane decides a single task's fate without allocating anything or
// touching the sink: bit-skip first, then the leaf-or-split decision, then
// (for a split) the pivot search that picks where the range divides.
func planLane(codes []uint32, t Task, cfg Config) lane {
	bit := t.Bit
	if !cfg.KeepSingletons {
		bit = bitSkip(bit, codes[t.Begin], codes[t.End-1])
	}

	if t.End-t.Begin <= cfg.MaxLeafSize || bit < 0 {
		return lane{task: t, isLeaf: true}
	}

	mask := uint32(1) << uint(bit)
	p := pivot(codes, int(t.Begin), int(t.End), mask)

	if p == int(t.Begin) || p == int(t.End) {
		if cfg.KeepSingletons {
			hasLeft := p != int(t.Begin)
			hasRight := p != int(t.End)
			l := lane{task: t, outCount: 1, hasLeft: hasLeft, hasRight: hasRight}
			l.children[0] = Task{Begin: t.Begin, End: t.End, Bit: bit - 1}
			return l
		}
		// bit-skip should have already prevented a degenerate split at this
		// bit; treat the range as terminal rather than splitting into an
		// empty side.
		return lane{task: t, isLeaf: true}
	}

	l := lane{task: t, outCount: 2, hasLeft: true, hasRight: true, pivot: uint32(p)}
	l.children[0] = Task{Begin: t.Begin, End: uint32(p), Bit: bit - 1}
	l.children[1] = Task{Begin: uint32(p), End: t.End, Bit: bit - 1}
	return l
}

// splitWorker consumes exactly in[0:len(in)] and produces up to 2*len(in)
// entries into out[0:outCursor capacity), plus up to len(in) leaves via
// leafCursor, plus exactly len(in) node writes. outNodesBase is the node
// index the first child task produced by this invocation will receive.
//
// Returns the number of output tasks written (Δ in the driver's notation).
func splitWorker(
	ctx context.Context,
	codes []uint32,
	in []Task,
	out []Task,
	outCursor *alloc.Cursor,
	leafCursor *alloc.Cursor,
	outNodesBase uint32,
	cfg Config,
	sink TreeSink,
) (int, error) {
	groupSize := cfg.groupSize()
	if groupSize > len(in) && len(in) > 0 {
		groupSize = len(in)
	}
	if groupSize <= 0 {
		groupSize = 1
	}

	g, gctx := errgroup.WithContext(ctx)

	for start := 0; start < len(in); start += groupSize {
		start := start
		end := start + groupSize
		if end > len(in) {
			end = len(in)
		}
		g.Go(func() error {
			return runGroup(gctx, codes, in[start:end], out, outCursor, leafCursor, outNodesBase, cfg, sink)
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}
	return int(outCursor.Len()), nil
}

// runGroup is the group-parallel unit: plan every lane locally, then perform
// exactly one atomic add against outCursor and (if any lane produces a leaf)
// exactly one against leafCursor, then commit writes for this group.
func runGroup(
	ctx context.Context,
	codes []uint32,
	tasks []Task,
	out []Task,
	outCursor *alloc.Cursor,
	leafCursor *alloc.Cursor,
	outNodesBase uint32,
	cfg Config,
	sink TreeSink,
) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	lanes := make([]lane, len(tasks))
	outCounts := make([]int, len(tasks))
	leafFlags := make([]int, len(tasks))
	for i, t := range tasks {
		l := planLane(codes, t, cfg)
		lanes[i] = l
		if l.isLeaf {
			leafFlags[i] = 1
		} else {
			outCounts[i] = l.outCount
		}
	}

	outBases, _, ok := outCursor.GroupReserve(outCounts)
	if !ok {
		return ErrCapacity("split-worker output task queue", len(tasks), int(outCursor.Cap()))
	}
	leafBases, _, ok := leafCursor.GroupReserve(leafFlags)
	if !ok {
		return ErrCapacity("leaf array", len(tasks), int(leafCursor.Cap()))
	}

	for i, l := range lanes {
		if l.isLeaf {
			leafIdx := uint32(leafBases[i])
			if err := sink.WriteLeaf(leafIdx, l.task.Begin, l.task.End); err != nil {
				return ErrBackend("write_leaf", err)
			}
			if err := sink.WriteNode(l.task.Node, false, false, leafIdx); err != nil {
				return ErrBackend("write_node", err)
			}
			continue
		}

		base := outBases[i]
		childID := outNodesBase + uint32(base)
		for c := 0; c < l.outCount; c++ {
			child := l.children[c]
			child.Node = childID + uint32(c)
			out[base+c] = child
		}

		first := childID
		if l.outCount == 1 {
			// Singleton forwarder: the single emitted child occupies the
			// base slot regardless of which side it represents.
			if err := sink.WriteNode(l.task.Node, l.hasLeft, l.hasRight, first); err != nil {
				return ErrBackend("write_node", err)
			}
			continue
		}
		if err := sink.WriteNode(l.task.Node, true, true, first); err != nil {
			return ErrBackend("write_node", err)
		}
	}
	return nil
}
