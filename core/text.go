package core

import "strings"

// NormalizeText canonicalizes free text for matching: lowercase, trim
// surrounding whitespace, then collapse any run of two or more identical
// consecutive runes to a single occurrence ("eventtt" -> "event").
//
// Run collapsing is a lossy typo heuristic, not a spelling corrector: it also
// collapses legitimately doubled letters ("coool" -> "col"). It is idempotent,
// which keeps the normalized-name index stable under re-normalization.
func NormalizeText(text string) string {
	text = strings.ToLower(strings.TrimSpace(text))

	var b strings.Builder
	b.Grow(len(text))
	// Not a valid rune, so the first input rune never matches it.
	prev := rune(-1)
	for _, r := range text {
		if r == prev {
			continue
		}
		b.WriteRune(r)
		prev = r
	}
	return b.String()
}

// Sentinel placeholders for absent attribute values. The catalog intake stores
// "NaN" for empty optional fields; older rows may carry "none" or "null".
var sentinelValues = map[string]bool{
	"":     true,
	"nan":  true,
	"none": true,
	"null": true,
}

// IsSentinel reports whether an attribute value represents "no value".
// Matching is case-insensitive.
func IsSentinel(value string) bool {
	return sentinelValues[strings.ToLower(strings.TrimSpace(value))]
}
