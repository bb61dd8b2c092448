package diff

import (
	"sort"

	"github.com/dmitrymomot/localesync/pkg/localetree"
)

// AllKeyPaths returns the rendered path of every node reachable from the
// root, containers and leaves alike, sorted lexicographically. The root
// itself (the empty path) is not included.
func AllKeyPaths(tree *localetree.Node) ([]string, error) {
	set, err := keyPathSet(tree)
	if err != nil {
		return nil, err
	}
	return sortedPaths(set), nil
}

func keyPathSet(tree *localetree.Node) (map[string]struct{}, error) {
	set := make(map[string]struct{})
	err := localetree.Walk(tree, func(path localetree.KeyPath, _ *localetree.Node) error {
		if !path.IsRoot() {
			set[path.String()] = struct{}{}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return set, nil
}

// StructureDiff is the outcome of comparing tree A against tree B.
type StructureDiff struct {
	// Paths present in both trees.
	Common []string
	// Paths present in A but absent from B.
	MissingInB []string
	// Paths present in B but absent from A.
	ExtraInB []string
}

// CompareStructures computes the common paths of A and B and the
// differences in both directions. All result slices are sorted.
func CompareStructures(a, b *localetree.Node) (StructureDiff, error) {
	aPaths, err := keyPathSet(a)
	if err != nil {
		return StructureDiff{}, err
	}
	bPaths, err := keyPathSet(b)
	if err != nil {
		return StructureDiff{}, err
	}

	common := make(map[string]struct{})
	missing := make(map[string]struct{})
	for p := range aPaths {
		if _, ok := bPaths[p]; ok {
			common[p] = struct{}{}
		} else {
			missing[p] = struct{}{}
		}
	}

	extra := make(map[string]struct{})
	for p := range bPaths {
		if _, ok := aPaths[p]; !ok {
			extra[p] = struct{}{}
		}
	}

	return StructureDiff{
		Common:     sortedPaths(common),
		MissingInB: sortedPaths(missing),
		ExtraInB:   sortedPaths(extra),
	}, nil
}

func sortedPaths(set map[string]struct{}) []string {
	paths := make([]string, 0, len(set))
	for p := range set {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}
