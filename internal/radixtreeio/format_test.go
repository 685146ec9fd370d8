package radixtreeio

import (
	"bytes"
	"strings"
	"testing"

	"github.com/arborix/radixtree/internal/radixtree/binsink"
)

func sampleSink() *binsink.Sink {
	return &binsink.Sink{
		Nodes: []binsink.Node{
			{HasLeft: true, HasRight: true, Index: 1},
			{Index: 0},
			{Index: 1},
		},
		Leaves: []binsink.Leaf{{Begin: 0, End: 1}, {Begin: 1, End: 2}},
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	sink := sampleSink()
	meta := Meta{Bits: 8, MaxLeafSize: 1, KeepSingletons: false, CodeCount: 2}

	var buf bytes.Buffer
	if err := Save(&buf, sink, 3, 2, meta); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, gotMeta, err := Load(&buf, "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if gotMeta != meta {
		t.Fatalf("meta = %+v, want %+v", gotMeta, meta)
	}
	if len(got.Nodes) != 3 || len(got.Leaves) != 2 {
		t.Fatalf("got %d nodes / %d leaves, want 3/2", len(got.Nodes), len(got.Leaves))
	}
	for i, n := range sink.Nodes {
		if got.Nodes[i] != n {
			t.Fatalf("node[%d] = %+v, want %+v", i, got.Nodes[i], n)
		}
	}
}

func TestLoadRejectsIncompatibleVersion(t *testing.T) {
	doc := `{"format_version":"2.0.0","bits":8,"max_leaf_size":1,"keep_singletons":false,"code_count":1,"nodes":[],"leaves":[]}`
	if _, _, err := Load(strings.NewReader(doc), ""); err == nil {
		t.Fatal("expected a format-version mismatch error for a 2.x document")
	}
}

func TestLoadRejectsMalformedVersion(t *testing.T) {
	doc := `{"format_version":"not-a-version","bits":8,"max_leaf_size":1,"keep_singletons":false,"code_count":1,"nodes":[],"leaves":[]}`
	if _, _, err := Load(strings.NewReader(doc), ""); err == nil {
		t.Fatal("expected a malformed format_version error")
	}
}

func TestLoadHonorsExplicitConstraint(t *testing.T) {
	sink := sampleSink()
	var buf bytes.Buffer
	if err := Save(&buf, sink, 3, 2, Meta{Bits: 8, MaxLeafSize: 1, CodeCount: 2}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, _, err := Load(&buf, "^2.0.0"); err == nil {
		t.Fatal("expected the saved 1.x document to fail a ^2.0.0 constraint")
	}
}

func TestLoadRejectsInvalidConstraint(t *testing.T) {
	sink := sampleSink()
	var buf bytes.Buffer
	if err := Save(&buf, sink, 3, 2, Meta{Bits: 8, MaxLeafSize: 1, CodeCount: 2}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, _, err := Load(&buf, "not a constraint"); err == nil {
		t.Fatal("expected an invalid-constraint error")
	}
}
