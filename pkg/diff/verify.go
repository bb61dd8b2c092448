package diff

import (
	"github.com/dmitrymomot/localesync/pkg/localetree"
)

// Report statuses.
const (
	StatusSynchronized   = "synchronized"
	StatusIssuesDetected = "issues_detected"
)

// DefaultMinLeafLength is the minimum string leaf length considered by the
// untranslated-leaf heuristic. Short values ("OK", "FAQ", currency symbols)
// are legitimately identical across locales.
const DefaultMinLeafLength = 3

// LeafWarning flags one string leaf that is byte-identical in both trees
// and therefore looks untranslated.
type LeafWarning struct {
	Path  string `json:"path"`
	Value string `json:"value"`
}

// Report is the outcome of verifying an output catalog against its
// reference. It contains nothing that is not derivable from the two input
// trees.
type Report struct {
	Status                 string        `json:"status"`
	ReferenceKeyCount      int           `json:"reference_key_count"`
	OutputKeyCount         int           `json:"output_key_count"`
	CommonKeys             int           `json:"common_keys"`
	MissingInOutput        []string      `json:"missing_in_output"`
	ExtraInOutput          []string      `json:"extra_in_output"`
	UnmodifiedLeafWarnings []LeafWarning `json:"unmodified_leaf_warnings"`
}

// VerifyOption configures Verify and FindUnmodifiedLeaves defaults.
type VerifyOption func(*verifyOptions)

type verifyOptions struct {
	allowlist []string
	minLength int
}

// WithAllowList sets locale-invariant literals (brand names, currency
// codes, proper nouns) that may legitimately stay identical across
// locales. Matching is against the whole leaf value only.
func WithAllowList(values ...string) VerifyOption {
	return func(o *verifyOptions) {
		o.allowlist = values
	}
}

// WithMinLeafLength overrides the minimum leaf length for the
// untranslated-leaf heuristic. Default: DefaultMinLeafLength.
func WithMinLeafLength(n int) VerifyOption {
	return func(o *verifyOptions) {
		if n > 0 {
			o.minLength = n
		}
	}
}

// FindUnmodifiedLeaves walks both trees in lockstep, restricted to the
// paths present in both, and returns every pair of string leaves that is
// byte-identical, longer than the minimum length, and not allow-listed.
// Non-string leaves are never compared; identical numbers, booleans, and
// nulls are expected across locales.
func FindUnmodifiedLeaves(a, b *localetree.Node, opts ...VerifyOption) ([]LeafWarning, error) {
	o := &verifyOptions{minLength: DefaultMinLeafLength}
	for _, opt := range opts {
		opt(o)
	}

	allowed := make(map[string]struct{}, len(o.allowlist))
	for _, v := range o.allowlist {
		allowed[v] = struct{}{}
	}

	var warnings []LeafWarning
	err := localetree.CoWalk(a, b, func(path localetree.KeyPath, node, counterpart *localetree.Node) error {
		if counterpart == nil {
			return nil
		}
		aValue, aOK := node.StringValue()
		bValue, bOK := counterpart.StringValue()
		if !aOK || !bOK {
			return nil
		}
		if aValue != bValue || len(aValue) <= o.minLength {
			return nil
		}
		if _, ok := allowed[aValue]; ok {
			return nil
		}
		warnings = append(warnings, LeafWarning{Path: path.String(), Value: aValue})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return warnings, nil
}

// Verify compares an output tree against its reference and produces the
// full synchronization report. Status is StatusSynchronized iff no path is
// missing from or extra in the output; leaf warnings are advisory and do
// not affect the status.
func Verify(reference, output *localetree.Node, opts ...VerifyOption) (*Report, error) {
	structure, err := CompareStructures(reference, output)
	if err != nil {
		return nil, err
	}

	warnings, err := FindUnmodifiedLeaves(reference, output, opts...)
	if err != nil {
		return nil, err
	}
	if warnings == nil {
		warnings = []LeafWarning{}
	}

	status := StatusSynchronized
	if len(structure.MissingInB) > 0 || len(structure.ExtraInB) > 0 {
		status = StatusIssuesDetected
	}

	return &Report{
		Status:                 status,
		ReferenceKeyCount:      len(structure.Common) + len(structure.MissingInB),
		OutputKeyCount:         len(structure.Common) + len(structure.ExtraInB),
		CommonKeys:             len(structure.Common),
		MissingInOutput:        structure.MissingInB,
		ExtraInOutput:          structure.ExtraInB,
		UnmodifiedLeafWarnings: warnings,
	}, nil
}
