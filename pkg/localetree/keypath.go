package localetree

import (
	"strconv"
	"strings"
)

// Segment is a single step of a KeyPath: either a mapping key or a sequence
// index.
type Segment struct {
	key     string
	index   int
	isIndex bool
}

// Key creates a mapping-key segment.
func Key(name string) Segment {
	return Segment{key: name}
}

// Index creates a sequence-index segment.
func Index(i int) Segment {
	return Segment{index: i, isIndex: true}
}

// IsIndex reports whether the segment addresses a sequence position.
func (s Segment) IsIndex() bool {
	return s.isIndex
}

// Key returns the mapping key of a key segment, or "" for an index segment.
func (s Segment) Key() string {
	if s.isIndex {
		return ""
	}
	return s.key
}

// Index returns the sequence position of an index segment, or -1 for a key
// segment.
func (s Segment) Index() int {
	if !s.isIndex {
		return -1
	}
	return s.index
}

// String renders the segment on its own: the key itself, or "[i]".
func (s Segment) String() string {
	if s.isIndex {
		return "[" + strconv.Itoa(s.index) + "]"
	}
	return s.key
}

// KeyPath addresses one node within a tree as an ordered list of segments.
// The zero-length path addresses the root.
type KeyPath []Segment

// WithKey returns a new path extended by a mapping-key segment.
// The receiver is not modified.
func (p KeyPath) WithKey(name string) KeyPath {
	return p.extend(Key(name))
}

// WithIndex returns a new path extended by a sequence-index segment.
// The receiver is not modified.
func (p KeyPath) WithIndex(i int) KeyPath {
	return p.extend(Index(i))
}

func (p KeyPath) extend(s Segment) KeyPath {
	// Copy to full capacity so sibling paths never alias the same backing array.
	next := make(KeyPath, len(p), len(p)+1)
	copy(next, p)
	return append(next, s)
}

// IsRoot reports whether the path addresses the root node.
func (p KeyPath) IsRoot() bool {
	return len(p) == 0
}

// String renders the path in dotted form with bracketed indices, e.g.
// "nav.items[2].label". Index segments attach directly to the preceding
// segment without a dot; the root path renders as "".
func (p KeyPath) String() string {
	var b strings.Builder
	for i, seg := range p {
		if seg.isIndex {
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(seg.index))
			b.WriteByte(']')
			continue
		}
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(seg.key)
	}
	return b.String()
}
