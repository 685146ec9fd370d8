package radixtree

import "testing"

func TestBitSkipNoAgreement(t *testing.T) {
	if k := bitSkip(7, 0b0000_0000, 0b1111_1111); k != 7 {
		t.Fatalf("bitSkip = %d, want 7 (endpoints disagree at the starting bit)", k)
	}
}

func TestBitSkipFullAgreement(t *testing.T) {
	if k := bitSkip(7, 0b0101_0101, 0b0101_0101); k != -1 {
		t.Fatalf("bitSkip = %d, want -1 (identical endpoints)", k)
	}
}

func TestBitSkipPartialAgreement(t *testing.T) {
	// Endpoints agree on bits 7..3 (both 0), first differ at bit 2.
	first := uint32(0b0000_0000)
	last := uint32(0b0000_0100)
	if k := bitSkip(7, first, last); k != 2 {
		t.Fatalf("bitSkip = %d, want 2", k)
	}
}

func TestBitSkipStartsBelowFirstDifference(t *testing.T) {
	// Even though bit 5 differs, starting the search at bit 2 must not look above it.
	first := uint32(0b0010_0000)
	last := uint32(0b0000_0000)
	if k := bitSkip(2, first, last); k != -1 {
		t.Fatalf("bitSkip = %d, want -1 (only differs above the starting bit)", k)
	}
}
