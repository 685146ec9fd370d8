package radixtree

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/arborix/radixtree/internal/radixtree/alloc"
)

// leafFinalizer is invoked once, after the main loop, for any tasks still
// outstanding when the bit counter has run out (for example the Bit -1
// children emitted by splits on bit 0). Every remaining task becomes a leaf;
// no further tasks are produced.
func leafFinalizer(ctx context.Context, tasks []Task, leafCursor *alloc.Cursor, cfg Config, sink TreeSink) error {
	groupSize := cfg.groupSize()
	if groupSize > len(tasks) && len(tasks) > 0 {
		groupSize = len(tasks)
	}
	if groupSize <= 0 {
		groupSize = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	for start := 0; start < len(tasks); start += groupSize {
		start := start
		end := start + groupSize
		if end > len(tasks) {
			end = len(tasks)
		}
		batch := tasks[start:end]
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			flags := make([]int, len(batch))
			for i := range batch {
				flags[i] = 1
			}
			bases, _, ok := leafCursor.GroupReserve(flags)
			if !ok {
				return ErrCapacity("leaf array", len(batch), int(leafCursor.Cap()))
			}
			for i, t := range batch {
				leafIdx := uint32(bases[i])
				if err := sink.WriteLeaf(leafIdx, t.Begin, t.End); err != nil {
					return ErrBackend("write_leaf", err)
				}
				if err := sink.WriteNode(t.Node, false, false, leafIdx); err != nil {
					return ErrBackend("write_node", err)
				}
			}
			return nil
		})
	}
	return g.Wait()
}
