package query

import (
	"regexp"
	"strings"
)

// namePatterns are tried in order against the full question text; the
// first that matches wins and its suffix becomes the candidate name.
var namePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\bof (.+)$`),
	regexp.MustCompile(`\bfor (.+)$`),
	regexp.MustCompile(`\babout (.+)$`),
}

// ExtractEventName pulls an explicit event-name fragment from the
// question, e.g. "details of hackathon 2024" yields "hackathon 2024".
// Returns "" when no pattern matches.
func ExtractEventName(text string) string {
	for _, p := range namePatterns {
		if m := p.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}
