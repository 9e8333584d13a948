package engine

import (
	"regexp"
	"strconv"
	"strings"
)

// Field extractors. Each is a pure function returning (value, ok); a miss is
// not an error, the conversation just asks again.

// Age bounds accepted by the age extractor. Bare numerals outside the range
// (house numbers, years, ...) are not treated as ages.
const (
	minAge = 15
	maxAge = 100
)

// agePatterns anchor a 1-2 digit numeral to a contextual cue, tried in
// priority order. The bare-number pattern is the last resort and only
// trusted inside the valid age range.
var agePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(\d{1,2})\s*(?:saal|sal|year|years|yrs|साल|वर्ष)`),
	regexp.MustCompile(`(?:main|mai|मैं)\s*(\d{1,2})`),
	regexp.MustCompile(`(?:age|umr|umar|उम्र)\s*(\d{1,2})`),
	regexp.MustCompile(`(\d{1,2})\s*(?:ka|ki|है|हूं|हूँ|hun|hoon)`),
	regexp.MustCompile(`\b(\d{1,2})\b`),
}

func validAge(n int) bool {
	return n >= minAge && n <= maxAge
}

// extractAge pulls an age from free-form text. Spelled-out numbers win over
// numerals; numeral patterns must pass the validity range.
func extractAge(text string) (int, bool) {
	norm := Normalize(text)

	for _, nw := range numberWords {
		if strings.Contains(norm, nw.word) {
			return nw.value, true
		}
	}

	for _, pattern := range agePatterns {
		m := pattern.FindStringSubmatch(norm)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if validAge(n) {
			return n, true
		}
	}

	return 0, false
}

// extractProfession matches the text against each profession category's
// keyword list in fixed priority order; the first hit wins.
func extractProfession(text string, threshold float64) (string, bool) {
	for _, cat := range professionCategories {
		if MatchesKeyword(text, cat.keywords, threshold) {
			return cat.tag, true
		}
	}
	return "", false
}

// extractSettlement matches rural before urban, first hit wins.
func extractSettlement(text string, threshold float64) (string, bool) {
	for _, st := range settlementTypes {
		if MatchesKeyword(text, st.keywords, threshold) {
			return st.tag, true
		}
	}
	return "", false
}

// Income parsing. The floor value stands in for "below poverty line" answers
// that carry no number at all.
const (
	lowIncomeFloor = 30000
	minIncome      = 1000
	maxIncome      = 50000000
)

var currencySymbolPattern = regexp.MustCompile(`[₹$¢€£]`)

// incomePatterns pair a numeric pattern with its magnitude multiplier, tried
// in order: lakh, thousand, crore suffixes, then comma-grouped integers,
// then bare 4-8 digit numbers.
var incomePatterns = []struct {
	pattern    *regexp.Regexp
	multiplier float64
}{
	{regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:lakh|lakhs|लाख|लाखों|l)`), 100000},
	{regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:thousand|thousands|हजार|हज़ार|k)`), 1000},
	{regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:crore|crores|करोड़|करोड़ों)`), 10000000},
	{regexp.MustCompile(`(\d{1,3}(?:,\d{3})+)`), 1},
	{regexp.MustCompile(`(\d{4,8})`), 1},
}

// extractIncome parses an annual income in rupees. Works on the lower-cased
// raw text rather than the normalized form so decimal points and digit
// grouping survive. A parse failure or out-of-range total moves on to the
// next pattern.
func extractIncome(text string) (int, bool) {
	lower := strings.ToLower(text)

	for _, phrase := range lowIncomePhrases {
		if strings.Contains(lower, phrase) {
			return lowIncomeFloor, true
		}
	}

	cleaned := currencySymbolPattern.ReplaceAllString(lower, "")

	for _, ip := range incomePatterns {
		m := ip.pattern.FindStringSubmatch(cleaned)
		if m == nil {
			continue
		}
		amountStr := strings.ReplaceAll(m[1], ",", "")
		amount, err := strconv.ParseFloat(amountStr, 64)
		if err != nil {
			continue
		}
		total := int(amount * ip.multiplier)
		if total >= minIncome && total <= maxIncome {
			return total, true
		}
	}

	return 0, false
}

// Household size bounds.
const (
	minHouseholdSize = 1
	maxHouseholdSize = 20
)

var bareNumberPattern = regexp.MustCompile(`^\s*(\d{1,2})\s*$`)

// householdPatterns find a small number near a family keyword, in either
// order, or after a first-person-plural pronoun.
var householdPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:family|parivar|परिवार|ghar|घर).*?(\d{1,2})`),
	regexp.MustCompile(`(\d{1,2}).*?(?:members|sadasya|सदस्य|log|लोग)`),
	regexp.MustCompile(`(?:hum|हम|main|मैं)\s*(\d{1,2})`),
	regexp.MustCompile(`(\d{1,2})\s*(?:log|लोग|member|sadasya|सदस्य)`),
}

// extractHouseholdSize pulls a household member count. Only meaningful once
// age is known: a bare numeral equal to the known age is rejected, since it
// is most likely a repeated answer to the age question.
func extractHouseholdSize(text string, age int) (int, bool) {
	norm := Normalize(text)

	size := 0
	found := false
	if m := bareNumberPattern.FindStringSubmatch(norm); m != nil {
		size, _ = strconv.Atoi(m[1])
		found = true
	} else {
		for _, pattern := range householdPatterns {
			if m := pattern.FindStringSubmatch(norm); m != nil {
				size, _ = strconv.Atoi(m[1])
				found = true
				break
			}
		}
	}

	if found && size != age && size >= minHouseholdSize && size <= maxHouseholdSize {
		return size, true
	}
	return 0, false
}
