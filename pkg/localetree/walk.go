package localetree

// WalkFunc receives every visited node with its path. Returning an error
// stops the traversal and propagates the error to the caller.
type WalkFunc func(path KeyPath, node *Node) error

// CoWalkFunc receives every node of the primary tree paired with the node
// at the same path in the secondary tree. The counterpart is nil when the
// secondary tree has no node at that path; a nil counterpart is distinct
// from a Leaf holding null.
type CoWalkFunc func(path KeyPath, node, counterpart *Node) error

// Walk traverses the tree in document order (parents before children),
// invoking fn for every node including the root.
func Walk(root *Node, fn WalkFunc) error {
	if root == nil {
		return ErrNilNode
	}
	return walk(root, nil, 0, fn)
}

func walk(n *Node, path KeyPath, depth int, fn WalkFunc) error {
	if depth > MaxDepth {
		return ErrMaxDepth
	}
	if err := fn(path, n); err != nil {
		return err
	}

	switch n.kind {
	case KindSequence:
		for i, item := range n.items {
			if err := walk(item, path.WithIndex(i), depth+1, fn); err != nil {
				return err
			}
		}
	case KindMapping:
		for _, key := range n.keys {
			if err := walk(n.children[key], path.WithKey(key), depth+1, fn); err != nil {
				return err
			}
		}
	}
	return nil
}

// CoWalk traverses the primary tree in document order, invoking fn for
// every node together with its counterpart in the secondary tree. Children
// only receive a counterpart when the secondary node at the parent path has
// the same kind and actually contains the child key or index.
func CoWalk(primary, secondary *Node, fn CoWalkFunc) error {
	if primary == nil {
		return ErrNilNode
	}
	return coWalk(primary, secondary, nil, 0, fn)
}

func coWalk(n, counterpart *Node, path KeyPath, depth int, fn CoWalkFunc) error {
	if depth > MaxDepth {
		return ErrMaxDepth
	}
	if err := fn(path, n, counterpart); err != nil {
		return err
	}

	switch n.kind {
	case KindSequence:
		for i, item := range n.items {
			var other *Node
			if counterpart != nil && counterpart.kind == KindSequence {
				other = counterpart.At(i)
			}
			if err := coWalk(item, other, path.WithIndex(i), depth+1, fn); err != nil {
				return err
			}
		}
	case KindMapping:
		for _, key := range n.keys {
			var other *Node
			if counterpart != nil && counterpart.kind == KindMapping {
				other, _ = counterpart.Child(key)
			}
			if err := coWalk(n.children[key], other, path.WithKey(key), depth+1, fn); err != nil {
				return err
			}
		}
	}
	return nil
}
