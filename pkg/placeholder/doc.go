// Package placeholder protects {name}-style format tokens from mutation by
// external text-transforming services such as machine translation.
//
// Protect swaps every token for an opaque marker that a translator has no
// reason to touch; Restore swaps the markers back after the transformed
// text returns:
//
//	guarded, markers := placeholder.Protect("Welcome {name} to {place}")
//	translated, err := provider.Translate(ctx, guarded)
//	// ...
//	final := placeholder.Restore(translated, markers)
//
// Round trip is exact when the text between Protect and Restore is left
// unchanged. If the external transform alters or deletes a marker, Restore
// leaves the corrupted marker in place; that is an accepted limitation of
// handing text to an uncontrolled service, detectable downstream by the
// diff validator.
package placeholder
