package placeholder

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// tokenPattern matches a non-empty {...} token; tokens never nest, so the
// first closing brace after an opening brace terminates the token.
var tokenPattern = regexp.MustCompile(`\{[^}]+\}`)

// Protect replaces every {...} token in text with a unique opaque marker,
// in left-to-right order, and returns the guarded text together with the
// marker-to-token map needed to undo the substitution. Repeated tokens
// share one marker. Markers are generated so they collide neither with any
// substring of the input nor with each other.
func Protect(text string) (string, map[string]string) {
	tokens := tokenPattern.FindAllString(text, -1)
	if len(tokens) == 0 {
		return text, nil
	}

	markers := make(map[string]string, len(tokens))
	guarded := text
	seen := make(map[string]bool, len(tokens))

	for _, token := range tokens {
		if seen[token] {
			continue
		}
		seen[token] = true

		marker := newMarker(text, markers)
		markers[marker] = token
		guarded = strings.ReplaceAll(guarded, token, marker)
	}

	return guarded, markers
}

// Restore replaces every marker produced by Protect with its original
// token. Markers absent from the text (corrupted by the external
// transform) are simply not restored.
func Restore(text string, markers map[string]string) string {
	restored := text
	for marker, token := range markers {
		restored = strings.ReplaceAll(restored, marker, token)
	}
	return restored
}

// newMarker returns a marker that occurs neither in the original text nor
// among the markers already issued. A random 8-hex-digit core makes a
// collision vanishingly unlikely; the loop makes it impossible.
func newMarker(text string, issued map[string]string) string {
	for {
		id := uuid.New()
		marker := "X" + strings.ToUpper(strings.ReplaceAll(id.String(), "-", "")[:8]) + "X"
		if strings.Contains(text, marker) {
			continue
		}
		if _, taken := issued[marker]; taken {
			continue
		}
		return marker
	}
}
