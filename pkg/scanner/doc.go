// Package scanner detects hardcoded, user-facing text in a source tree:
// literal strings inside markup elements and attributes that should be
// going through the translation catalog instead, and files that never call
// the translation hooks at all.
//
// Detection is plain pattern matching over source lines; it is a
// best-effort reviewing aid, not a parser. Files are scanned concurrently,
// results are reported in deterministic file order.
package scanner
