package engine

import (
	"regexp"
	"strings"
)

var (
	// Punctuation and sentence terminators dropped before matching. The set
	// includes the Devanagari danda (।), which ends Hindi sentences.
	punctuationPattern = regexp.MustCompile(`[।,.\-_!?]`)
	whitespacePattern  = regexp.MustCompile(`\s+`)
)

// Normalize canonicalizes raw input for matching: lower-cases, replaces
// punctuation with spaces, collapses whitespace runs and trims the ends.
// Idempotent: Normalize(Normalize(x)) == Normalize(x).
func Normalize(text string) string {
	text = strings.ToLower(text)
	text = punctuationPattern.ReplaceAllString(text, " ")
	text = whitespacePattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
