package binsink

import "testing"

func TestReserveIsMonotonic(t *testing.T) {
	s := New()
	if err := s.ReserveNodes(10); err != nil {
		t.Fatalf("ReserveNodes: %v", err)
	}
	if len(s.Nodes) != 10 {
		t.Fatalf("len(Nodes) = %d, want 10", len(s.Nodes))
	}
	if err := s.ReserveNodes(4); err != nil {
		t.Fatalf("ReserveNodes: %v", err)
	}
	if len(s.Nodes) != 10 {
		t.Fatalf("ReserveNodes(4) after ReserveNodes(10) shrank storage to %d", len(s.Nodes))
	}
}

func TestReservePreservesExistingWrites(t *testing.T) {
	s := New()
	if err := s.ReserveNodes(2); err != nil {
		t.Fatalf("ReserveNodes: %v", err)
	}
	if err := s.WriteNode(0, true, false, 5); err != nil {
		t.Fatalf("WriteNode: %v", err)
	}
	if err := s.ReserveNodes(8); err != nil {
		t.Fatalf("ReserveNodes: %v", err)
	}
	if got := s.Nodes[0]; got != (Node{HasLeft: true, Index: 5}) {
		t.Fatalf("Nodes[0] = %+v after growth, want preserved write", got)
	}
}

func TestWriteNodeOutOfRange(t *testing.T) {
	s := New()
	if err := s.ReserveNodes(1); err != nil {
		t.Fatalf("ReserveNodes: %v", err)
	}
	if err := s.WriteNode(1, false, false, 0); err == nil {
		t.Fatal("expected an out-of-range error")
	}
}

func TestWriteLeafOutOfRange(t *testing.T) {
	s := New()
	if err := s.ReserveLeaves(1); err != nil {
		t.Fatalf("ReserveLeaves: %v", err)
	}
	if err := s.WriteLeaf(3, 0, 1); err == nil {
		t.Fatal("expected an out-of-range error")
	}
}

func TestNodePacked(t *testing.T) {
	n := Node{HasLeft: true, HasRight: true, Index: 42}
	p := n.Packed()
	if p>>31&1 != 1 {
		t.Fatal("Packed() must set the HasLeft bit")
	}
	if p>>30&1 != 1 {
		t.Fatal("Packed() must set the HasRight bit")
	}
	lowMask := (uint32(1) << 30) - 1
	if p&lowMask != 42 {
		t.Fatalf("Packed() index bits = %d, want 42", p&lowMask)
	}
}

func TestNodePackedLeaf(t *testing.T) {
	n := Node{Index: 7}
	p := n.Packed()
	if p>>30 != 0 {
		t.Fatal("a leaf forwarder must have both flag bits clear")
	}
	if p != 7 {
		t.Fatalf("Packed() = %d, want 7", p)
	}
}
