// Package syncer implements structure-preserving synchronization of locale
// catalogs: given a canonical reference tree and a legacy tree of prior
// translations, it produces an output tree whose structure mirrors the
// reference exactly, reusing legacy values where they are valid and filling
// the gaps through a translation provider.
//
// # Algorithm
//
// The reference and legacy trees are co-traversed recursively. For every
// node of the reference:
//
//   - Mapping: each reference key is merged with the legacy child under the
//     same key (or with absence); the output mapping has exactly the
//     reference's keys in the reference's order.
//   - Sequence: each reference index is merged with the legacy item at the
//     same index when in range; the output sequence has exactly the
//     reference's length.
//   - String leaf: when the legacy counterpart is a non-empty string (after
//     trimming) it is reused verbatim; otherwise the reference text is sent
//     to the translation provider.
//   - Non-string leaf: copied from the reference unchanged, not counted in
//     the reuse/translate statistics.
//
// Placeholder tokens in translated text are protected with pkg/placeholder
// so the provider cannot mangle them.
//
// # Failure Policy
//
// Provider calls are retried up to the configured attempt limit with a
// fixed delay between attempts. When all attempts for one leaf fail, the
// output keeps the untranslated reference text and the result records a
// fallback warning; a failing provider never aborts the merge. A fixed
// pacing delay follows every provider invocation regardless of outcome, to
// stay within external rate limits.
//
// Provider calls are strictly sequential, so statistics ordering is
// deterministic and pacing assumptions hold. Context cancellation is the
// only way to abort a run early.
//
// # Usage
//
//	s, err := syncer.New(provider,
//	    syncer.WithMaxAttempts(3),
//	    syncer.WithRetryDelay(500*time.Millisecond),
//	    syncer.WithPaceDelay(300*time.Millisecond),
//	)
//	if err != nil {
//	    return err
//	}
//
//	result, err := s.Sync(ctx, reference, legacy)
//	if err != nil {
//	    return err
//	}
//	// result.Tree mirrors the reference structure exactly.
//	// result.Stats reports total/reused/translated leaf counts.
//	// result.Warnings lists leaves that fell back to untranslated text.
package syncer
