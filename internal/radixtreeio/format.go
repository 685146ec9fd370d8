// Package radixtreeio persists a built radix tree so it can be cached or
// shipped across a process boundary without rebuilding it. The core itself
// has no notion of files or host/device transfer; this package is additive,
// on-host persistence layered on top of binsink's flat arrays.
package radixtreeio

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Masterminds/semver/v3"

	"github.com/arborix/radixtree/internal/radixtree/binsink"
)

// FormatVersion is stamped into every file this package writes. It follows
// semver so a reader can express which versions it accepts.
const FormatVersion = "1.0.0"

// Accepted is the default compatibility constraint this package's Load
// enforces: any 1.x file.
const Accepted = "^1.0.0"

type document struct {
	FormatVersion  string         `json:"format_version"`
	Bits           uint32         `json:"bits"`
	MaxLeafSize    uint32         `json:"max_leaf_size"`
	KeepSingletons bool           `json:"keep_singletons"`
	CodeCount      int            `json:"code_count"`
	Nodes          []binsink.Node `json:"nodes"`
	Leaves         []binsink.Leaf `json:"leaves"`
}

// Meta carries the build parameters a serialized tree was produced with and
// the number of codes it was built over.
type Meta struct {
	Bits           uint32
	MaxLeafSize    uint32
	KeepSingletons bool
	CodeCount      int
}

// Save writes sink's first totalNodes nodes and totalLeaves leaves, tagged
// with meta and the current FormatVersion.
func Save(w io.Writer, sink *binsink.Sink, totalNodes, totalLeaves int, meta Meta) error {
	doc := document{
		FormatVersion:  FormatVersion,
		Bits:           meta.Bits,
		MaxLeafSize:    meta.MaxLeafSize,
		KeepSingletons: meta.KeepSingletons,
		CodeCount:      meta.CodeCount,
		Nodes:          sink.Nodes[:totalNodes],
		Leaves:         sink.Leaves[:totalLeaves],
	}
	enc := json.NewEncoder(w)
	return enc.Encode(&doc)
}

// Load reads a serialized tree and checks its format version against
// constraint (an empty constraint defaults to Accepted). A version outside
// the constraint is a hard error: the caller must not attempt to interpret
// node/leaf records from an incompatible format.
func Load(r io.Reader, constraint string) (*binsink.Sink, Meta, error) {
	if constraint == "" {
		constraint = Accepted
	}
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return nil, Meta{}, fmt.Errorf("radixtreeio: invalid version constraint %q: %w", constraint, err)
	}

	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, Meta{}, fmt.Errorf("radixtreeio: decode: %w", err)
	}

	v, err := semver.NewVersion(doc.FormatVersion)
	if err != nil {
		return nil, Meta{}, fmt.Errorf("radixtreeio: malformed format_version %q: %w", doc.FormatVersion, err)
	}
	if !c.Check(v) {
		return nil, Meta{}, fmt.Errorf("radixtreeio: file format %s does not satisfy %s", doc.FormatVersion, constraint)
	}

	sink := &binsink.Sink{Nodes: doc.Nodes, Leaves: doc.Leaves}
	meta := Meta{
		Bits:           doc.Bits,
		MaxLeafSize:    doc.MaxLeafSize,
		KeepSingletons: doc.KeepSingletons,
		CodeCount:      doc.CodeCount,
	}
	return sink, meta, nil
}
