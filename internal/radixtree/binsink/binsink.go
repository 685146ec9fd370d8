// Package binsink is the reference TreeSink implementation: a flat array of
// nodes and a flat array of leaves, exactly the "(nodes[], leaves[])" output
// shape spec'd for the core. It is what the Driver's own tests build against,
// and what cmd/radixtree-build uses by default.
package binsink

import "fmt"

// Node is either internal (HasLeft and/or HasRight set, Index names the first
// child) or a leaf forwarder (neither set, Index names a leaf).
type Node struct {
	HasLeft  bool
	HasRight bool
	Index    uint32
}

// Packed returns the single-word encoding mentioned in the source material:
// the two child-presence bits alongside the 30-bit child-or-leaf index.
func (n Node) Packed() uint32 {
	var flags uint32
	if n.HasLeft {
		flags |= 1 << 31
	}
	if n.HasRight {
		flags |= 1 << 30
	}
	return flags | (n.Index &^ (uint32(0b11) << 30))
}

// Leaf is a half-open range into the original code array.
type Leaf struct {
	Begin, End uint32
}

// Sink is an in-memory flat-array tree sink. Nodes[0] is always the root once
// a build has completed. Reserve calls may leave Nodes/Leaves longer than the
// counts radixtree.Stats reports; callers slice by the returned TotalNodes /
// TotalLeaves rather than len(Nodes) / len(Leaves).
type Sink struct {
	Nodes  []Node
	Leaves []Leaf
}

// New returns an empty sink ready for a single Build call.
func New() *Sink {
	return &Sink{}
}

func (s *Sink) ReserveNodes(n int) error {
	if n <= len(s.Nodes) {
		return nil
	}
	grown := make([]Node, n)
	copy(grown, s.Nodes)
	s.Nodes = grown
	return nil
}

func (s *Sink) ReserveLeaves(n int) error {
	if n <= len(s.Leaves) {
		return nil
	}
	grown := make([]Leaf, n)
	copy(grown, s.Leaves)
	s.Leaves = grown
	return nil
}

func (s *Sink) WriteNode(nodeID uint32, hasLeft, hasRight bool, firstChildOrLeaf uint32) error {
	if int(nodeID) >= len(s.Nodes) {
		return fmt.Errorf("node id %d out of reserved range [0,%d)", nodeID, len(s.Nodes))
	}
	s.Nodes[nodeID] = Node{HasLeft: hasLeft, HasRight: hasRight, Index: firstChildOrLeaf}
	return nil
}

func (s *Sink) WriteLeaf(leafID uint32, begin, end uint32) error {
	if int(leafID) >= len(s.Leaves) {
		return fmt.Errorf("leaf id %d out of reserved range [0,%d)", leafID, len(s.Leaves))
	}
	s.Leaves[leafID] = Leaf{Begin: begin, End: end}
	return nil
}
