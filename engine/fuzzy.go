package engine

import (
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// DefaultFuzzyThreshold is the similarity ratio above which a keyword is
// considered present. Tunable via config, not derived.
const DefaultFuzzyThreshold = 0.7

// similarity returns a normalized edit-similarity ratio in [0, 1] where 1.0
// means identical. Operates on runes so Devanagari text compares correctly.
func similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	la, lb := utf8.RuneCountInString(a), utf8.RuneCountInString(b)
	longest := la
	if lb > longest {
		longest = lb
	}
	if longest == 0 {
		return 1.0
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1.0 - float64(dist)/float64(longest)
}

// MatchesKeyword reports whether any keyword from the list is present in the
// text, tolerating transliteration spelling drift. Cheap literal containment
// is tried first; longer keywords additionally get a similarity comparison
// against the whole text and against each token. Short-circuits on first hit.
func MatchesKeyword(text string, keywords []string, threshold float64) bool {
	textNorm := Normalize(text)

	for _, keyword := range keywords {
		keywordNorm := Normalize(keyword)
		if keywordNorm == "" {
			continue
		}

		if strings.Contains(textNorm, keywordNorm) {
			return true
		}

		if utf8.RuneCountInString(keywordNorm) > 3 {
			if similarity(keywordNorm, textNorm) >= threshold {
				return true
			}

			for _, word := range strings.Fields(textNorm) {
				if utf8.RuneCountInString(word) > 2 && similarity(keywordNorm, word) >= threshold {
					return true
				}
			}
		}
	}

	return false
}
