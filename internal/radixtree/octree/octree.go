// Package octree implements the downstream octree-collapse pass spec'd as an
// external consumer of the core: it walks three consecutive binary levels of
// a built radix tree and folds them into one 8-way octree level, packing an
// 8-bit active-child mask alongside the first child index exactly as
// described ("packed = (first_child_index << 8) | mask").
//
// The radixtree core never produces this representation itself; it only
// guarantees that three consecutive binary levels correspond to one octree
// level, which is what makes the collapse below valid.
package octree

import (
	"math/bits"

	"github.com/arborix/radixtree/internal/radixtree/binsink"
)

// KInvalid is the sentinel GetOctant returns for an absent octant.
const KInvalid = ^uint32(0)

// Node is one octree entry. An entry with a non-zero mask is interior: its
// FirstChild points at a contiguous block of 8-and-fewer further entries. An
// entry with a zero mask is a leaf: FirstChild is a leaf index into the
// binary tree's leaf array, not another octree entry.
type Node struct {
	Packed uint32
}

func pack(firstChild uint32, mask uint8) Node {
	return Node{Packed: (firstChild << 8) | uint32(mask)}
}

// Mask returns the 8-bit active-child mask.
func (n Node) Mask() uint8 { return uint8(n.Packed & 0xFF) }

// FirstChild returns the base index of the first present child (interior
// entries) or the leaf index (leaf entries, Mask()==0).
func (n Node) FirstChild() uint32 { return n.Packed >> 8 }

// GetOctant returns the absolute entry index for octant i (0..7) of an
// interior node, or KInvalid if that octant is not present. Children are
// stored contiguously in mask-bit order, so the i-th present octant's offset
// from FirstChild is the popcount of the mask bits below i.
func (n Node) GetOctant(i int) uint32 {
	if i < 0 || i > 7 || n.Mask()&(1<<uint(i)) == 0 {
		return KInvalid
	}
	below := n.Mask() & ((1 << uint(i)) - 1)
	return n.FirstChild() + uint32(bits.OnesCount8(below))
}

// Collapse folds a binary radix tree, built with binsink.Sink and
// KeepSingletons=true so every level down to the leaves is explicit, into an
// octree rooted at the binary node `root`. It returns the flat octree array
// and the binary-node-id -> octree-entry-id root mapping (useful for
// collapsing several disjoint subtrees independently). Branches that reach a
// leaf before three binary levels are exhausted simply reference that same
// leaf from every octant their prefix covers, matching how a range that
// collapsed early in the binary tree still spans the corresponding octree
// quadrant.
func Collapse(sink *binsink.Sink, root uint32) ([]Node, map[uint32]uint32) {
	var out []Node
	memo := make(map[uint32]uint32)

	var build func(nodeID uint32) uint32
	build = func(nodeID uint32) uint32 {
		if idx, ok := memo[nodeID]; ok {
			return idx
		}
		n := sink.Nodes[nodeID]
		if !n.HasLeft && !n.HasRight {
			idx := uint32(len(out))
			out = append(out, Node{Packed: n.Index << 8})
			memo[nodeID] = idx
			return idx
		}

		var mask uint8
		var triple [8]uint32
		collectTriple(sink, nodeID, 0, 0, &mask, &triple)

		childIdx := make([]uint32, 0, 8)
		for octant := 0; octant < 8; octant++ {
			if mask&(1<<uint(octant)) == 0 {
				continue
			}
			childIdx = append(childIdx, build(triple[octant]))
		}

		childBase := uint32(len(out))
		for _, ci := range childIdx {
			out = append(out, out[ci])
		}
		idx := uint32(len(out))
		out = append(out, pack(childBase, mask))
		memo[nodeID] = idx
		return idx
	}

	rootIdx := build(root)
	memo[root] = rootIdx
	return out, memo
}

// collectTriple descends exactly 3 binary levels from nodeID, recording which
// of the 8 octants are present and which binary node id occupies each.
func collectTriple(sink *binsink.Sink, nodeID uint32, depth int, octant uint8, mask *uint8, triple *[8]uint32) {
	n := sink.Nodes[nodeID]

	if depth == 3 {
		*mask |= 1 << octant
		triple[octant] = nodeID
		return
	}

	if !n.HasLeft && !n.HasRight {
		span := uint8(1) << uint(3-depth)
		base := octant << uint(3-depth)
		for i := uint8(0); i < span; i++ {
			o := base | i
			*mask |= 1 << o
			triple[o] = nodeID
		}
		return
	}

	if n.HasLeft {
		collectTriple(sink, n.Index, depth+1, octant<<1, mask, triple)
	}
	if n.HasRight {
		idx := n.Index
		if n.HasLeft {
			idx++
		}
		collectTriple(sink, idx, depth+1, (octant<<1)|1, mask, triple)
	}
}
