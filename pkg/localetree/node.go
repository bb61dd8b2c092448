package localetree

// Kind discriminates the three node variants.
type Kind int

const (
	KindLeaf Kind = iota + 1
	KindSequence
	KindMapping
)

// String returns a human-readable kind name for error messages and reports.
func (k Kind) String() string {
	switch k {
	case KindLeaf:
		return "leaf"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return "unknown"
	}
}

// Node is a single node of a locale tree. A node is exactly one of a Leaf
// holding a scalar, a Sequence of child nodes, or a Mapping of unique string
// keys to child nodes with insertion order preserved.
//
// Nodes are treated as immutable once handed to a consumer; none of the
// accessors mutate the node.
type Node struct {
	kind     Kind
	value    any
	items    []*Node
	keys     []string
	children map[string]*Node
}

// MapEntry is a single key/value pair used to construct a Mapping node.
type MapEntry struct {
	Key  string
	Node *Node
}

// NewLeaf creates a Leaf node holding the given scalar value.
// Valid scalar types are string, int64, float64, bool, and nil.
func NewLeaf(value any) *Node {
	return &Node{kind: KindLeaf, value: value}
}

// NewString creates a Leaf node holding a string value.
func NewString(s string) *Node {
	return &Node{kind: KindLeaf, value: s}
}

// NewSequence creates a Sequence node with the given items.
func NewSequence(items ...*Node) *Node {
	return &Node{kind: KindSequence, items: items}
}

// NewMapping creates a Mapping node from the given entries, preserving
// entry order. If a key repeats, the last entry wins and the key keeps its
// first position.
func NewMapping(entries ...MapEntry) *Node {
	n := &Node{
		kind:     KindMapping,
		keys:     make([]string, 0, len(entries)),
		children: make(map[string]*Node, len(entries)),
	}
	for _, e := range entries {
		if _, exists := n.children[e.Key]; !exists {
			n.keys = append(n.keys, e.Key)
		}
		n.children[e.Key] = e.Node
	}
	return n
}

// Kind returns the node variant.
func (n *Node) Kind() Kind {
	return n.kind
}

// Value returns the scalar value of a Leaf node.
// It returns nil for Sequence and Mapping nodes.
func (n *Node) Value() any {
	if n.kind != KindLeaf {
		return nil
	}
	return n.value
}

// StringValue returns the leaf's string value and true when the node is a
// Leaf holding a string.
func (n *Node) StringValue() (string, bool) {
	if n.kind != KindLeaf {
		return "", false
	}
	s, ok := n.value.(string)
	return s, ok
}

// Len returns the number of items of a Sequence or entries of a Mapping,
// and 0 for a Leaf.
func (n *Node) Len() int {
	switch n.kind {
	case KindSequence:
		return len(n.items)
	case KindMapping:
		return len(n.keys)
	default:
		return 0
	}
}

// Items returns the children of a Sequence node in order.
// The returned slice must not be modified.
func (n *Node) Items() []*Node {
	if n.kind != KindSequence {
		return nil
	}
	return n.items
}

// At returns the i-th item of a Sequence node, or nil when the node is not
// a Sequence or the index is out of range.
func (n *Node) At(i int) *Node {
	if n.kind != KindSequence || i < 0 || i >= len(n.items) {
		return nil
	}
	return n.items[i]
}

// Keys returns the Mapping keys in insertion order.
// The returned slice must not be modified.
func (n *Node) Keys() []string {
	if n.kind != KindMapping {
		return nil
	}
	return n.keys
}

// Child returns the child node for the given Mapping key.
func (n *Node) Child(key string) (*Node, bool) {
	if n.kind != KindMapping {
		return nil, false
	}
	c, ok := n.children[key]
	return c, ok
}

// CountLeaves returns the number of Leaf nodes reachable from n, n included
// when it is itself a Leaf. A nil node counts as zero.
func CountLeaves(n *Node) int {
	if n == nil {
		return 0
	}
	switch n.kind {
	case KindLeaf:
		return 1
	case KindSequence:
		total := 0
		for _, item := range n.items {
			total += CountLeaves(item)
		}
		return total
	case KindMapping:
		total := 0
		for _, key := range n.keys {
			total += CountLeaves(n.children[key])
		}
		return total
	default:
		return 0
	}
}
