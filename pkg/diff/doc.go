// Package diff compares two locale trees structurally and heuristically:
// which key paths exist in one but not the other, and which string leaves
// look untranslated because they are byte-identical across both trees.
//
// All operations are pure functions of their inputs. CompareStructures
// satisfies the symmetry law
//
//	CompareStructures(A, B).MissingInB == CompareStructures(B, A).ExtraInB
//
// and Verify bundles both checks into a machine-readable Report:
//
//	report, err := diff.Verify(reference, output,
//	    diff.WithAllowList("Call a Star", "EUR", "USD"),
//	)
//	if report.Status == diff.StatusSynchronized {
//	    // every reference path exists in the output and vice versa
//	}
//
// Identity between numeric, boolean, or null leaves is expected and never
// flagged; allow-listed values match against the whole leaf value only,
// never as substrings.
package diff
