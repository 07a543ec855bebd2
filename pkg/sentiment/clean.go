package sentiment

import (
	"regexp"
	"strings"
)

var (
	markupTag = regexp.MustCompile(`<[^>]+>`)
	// Anything that is not a word character, whitespace or . , ! ? ; :
	disallowedChars = regexp.MustCompile(`[^\p{L}\p{M}\p{N}_\s.,!?;:]`)
)

// Clean strips markup, replaces disallowed characters with spaces, collapses
// whitespace and lower-cases the result.
func Clean(text string) string {
	text = markupTag.ReplaceAllString(text, "")
	text = disallowedChars.ReplaceAllString(text, " ")
	text = strings.Join(strings.Fields(text), " ")
	return strings.ToLower(text)
}
