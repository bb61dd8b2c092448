// Package localetree provides the tree representation shared by all locale
// catalog tooling: a tagged Leaf/Sequence/Mapping node with order-preserving
// mappings, dotted/bracketed key-path addressing, JSON/YAML parsing and
// serialization, and traversal primitives.
//
// # Node Model
//
// A Node is exactly one of three kinds:
//
//   - Leaf: a scalar value (string, integer, float, boolean, or null)
//   - Sequence: an ordered list of child nodes
//   - Mapping: an ordered association of unique string keys to child nodes
//
// Mapping key order is preserved from the source document so a round trip
// through Parse and MarshalJSON/MarshalYAML does not reorder keys. Order is
// irrelevant to structural comparison.
//
// # Key Paths
//
// Every node in a tree is addressed by a KeyPath: mapping keys joined with
// dots, sequence positions rendered as bracketed indices.
//
//	nav.items[2].label
//
// # Parsing
//
// Parse accepts both YAML and JSON documents (YAML is a superset of JSON)
// and preserves mapping key order:
//
//	tree, err := localetree.Parse(data)
//	if err != nil {
//	    return err
//	}
//	title, ok := tree.Child("title")
//
// # Traversal
//
// Walk visits every node of a tree with its path. CoWalk visits every node
// of a primary tree paired with the node at the same path in a secondary
// tree, or nil when the secondary tree has no node there. A nil counterpart
// is distinct from a null leaf. Both traversals enforce a depth limit to
// guard against pathological nesting.
package localetree
