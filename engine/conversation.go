package engine

import (
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// officeQueryPatterns recognize explicit "offices in <place>" requests in
// the common Hindi/Hinglish/English word orders.
var officeQueryPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:offices?|कार्यालय) (?:in|mein|में) ([a-zA-Z\x{0900}-\x{097F}\s]+)`),
	regexp.MustCompile(`([a-zA-Z\x{0900}-\x{097F}\s]+) (?:mein|में) (?:offices?|कार्यालय)`),
	regexp.MustCompile(`([a-zA-Z\x{0900}-\x{097F}\s]+) (?:ke|का|की) (?:offices?|कार्यालय)`),
}

// placeFillerWords are connective words stripped from a captured place name.
var placeFillerWords = map[string]bool{
	"mein": true, "में": true, "ke": true, "का": true, "की": true,
	"office": true, "offices": true, "कार्यालय": true,
}

// cityRegions maps known cities to their state for office lookups. Unknown
// cities fall back to the city name itself.
var cityRegions = map[string]string{
	"mumbai": "Maharashtra", "delhi": "Delhi", "bangalore": "Karnataka",
	"chennai": "Tamil Nadu", "kolkata": "West Bengal", "hyderabad": "Telangana",
	"pune": "Maharashtra", "ahmedabad": "Gujarat", "jaipur": "Rajasthan",
	"lucknow": "Uttar Pradesh", "kanpur": "Uttar Pradesh", "nagpur": "Maharashtra",
	"indore": "Madhya Pradesh", "thane": "Maharashtra", "bhopal": "Madhya Pradesh",
	"visakhapatnam": "Andhra Pradesh", "patna": "Bihar", "vadodara": "Gujarat",
	"ghaziabad": "Uttar Pradesh", "ludhiana": "Punjab", "agra": "Uttar Pradesh",
	"nashik": "Maharashtra", "faridabad": "Haryana", "meerut": "Uttar Pradesh",
	"rajkot": "Gujarat", "kalyan": "Maharashtra",
}

const detailPrefix = "details"

// Process handles one conversational turn and returns the response text.
// Side-intents are checked before stage dispatch and never change the stage.
func (e *Engine) Process(message string, lang Language) string {
	trimmed := strings.TrimSpace(message)
	lower := strings.ToLower(trimmed)

	// A previous turn asked for a place name; this turn is that answer.
	if e.pending == pendingPlaceName {
		e.pending = pendingNone
		return e.officesFor(titleCase(trimmed), lang)
	}

	if place, ok := matchOfficeQuery(lower); ok {
		return e.officesFor(titleCase(place), lang)
	}

	if strings.HasPrefix(lower, detailPrefix) {
		arg := strings.TrimSpace(strings.TrimPrefix(lower, detailPrefix))
		pos, err := strconv.Atoi(arg)
		if err != nil {
			return invalidSelectionMessage(lang)
		}
		return e.ShowDetails(pos, lang)
	}

	if isNearMeIntent(lower) {
		return e.locationServices(lang)
	}

	switch e.stage {
	case StageInitial:
		return e.handleInitial(message, lang)
	case StageGathering:
		return e.handleGathering(message, lang)
	default:
		return e.recommendationSummary(lang)
	}
}

// handleInitial extracts whatever the opening message already contains and
// starts the question sequence.
func (e *Engine) handleInitial(message string, lang Language) string {
	e.extractInto(message)

	if !e.profile.Has(FieldAge) {
		e.stage = StageGathering
		return questionFor(FieldAge, lang)
	}

	e.stage = StageGathering
	return e.continueQuestioning(lang)
}

// handleGathering processes an answer to the current question and asks the
// next one. Income and household size get a second extraction pass over the
// raw message: both accept bare-number answers that the generic pass can
// misread right after their question was asked.
func (e *Engine) handleGathering(message string, lang Language) string {
	var current Field
	if missing := e.profile.Missing(); len(missing) > 0 {
		current = missing[0]
	}

	e.extractInto(message)

	if current == FieldIncome && !e.profile.Has(FieldIncome) {
		if income, ok := extractIncome(message); ok {
			e.profile.setIncome(income)
			e.logger.Debug("Extracted income from raw answer", zap.Int("income", income))
		}
	}

	if current == FieldHouseholdSize && !e.profile.Has(FieldHouseholdSize) {
		if m := rawNumberPattern.FindStringSubmatch(strings.TrimSpace(message)); m != nil {
			size, _ := strconv.Atoi(m[1])
			if size != e.profile.Age() && size >= minHouseholdSize && size <= maxHouseholdSize {
				e.profile.setHouseholdSize(size)
				e.logger.Debug("Extracted household size from raw answer", zap.Int("household_size", size))
			}
		}
	}

	return e.continueQuestioning(lang)
}

var rawNumberPattern = regexp.MustCompile(`\b(\d{1,2})\b`)

// continueQuestioning asks the first missing question, or switches to the
// recommending stage when the profile is complete.
func (e *Engine) continueQuestioning(lang Language) string {
	if missing := e.profile.Missing(); len(missing) > 0 {
		return questionFor(missing[0], lang)
	}

	e.stage = StageRecommending
	e.logger.Info("Profile complete, recommending",
		zap.String("profession", e.profile.Profession()),
		zap.Int("income", e.profile.Income()))
	return e.recommendationSummary(lang)
}

// locationServices answers a "near me" request. When no ambient location is
// available the next turn is reserved for a place name.
func (e *Engine) locationServices(lang Language) string {
	place, ok := e.locator.Locate()
	if ok && place.City != "" && place.City != "Unknown" {
		offices := e.locator.Offices(place.City, place.Region)
		return officesResponse(place.City, place.Region, offices, lang)
	}

	e.pending = pendingPlaceName
	return askPlaceNameMessage(lang)
}

// officesFor answers an office query for an explicitly named place.
func (e *Engine) officesFor(place string, lang Language) string {
	region := regionFor(place)
	offices := e.locator.Offices(place, region)
	return officesResponse(place, region, offices, lang)
}

func regionFor(place string) string {
	if region, ok := cityRegions[strings.ToLower(place)]; ok {
		return region
	}
	return place
}

// matchOfficeQuery extracts a place name from an explicit office request.
func matchOfficeQuery(lower string) (string, bool) {
	for _, pattern := range officeQueryPatterns {
		m := pattern.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		place := cleanPlaceName(m[1])
		if place != "" {
			return place, true
		}
	}
	return "", false
}

// cleanPlaceName drops connective words that the capture group may have
// swallowed ("jaipur mein" -> "jaipur").
func cleanPlaceName(raw string) string {
	var kept []string
	for _, word := range strings.Fields(raw) {
		if !placeFillerWords[strings.ToLower(word)] {
			kept = append(kept, word)
		}
	}
	return strings.Join(kept, " ")
}

func isNearMeIntent(lower string) bool {
	return strings.Contains(lower, "near me") ||
		strings.Contains(lower, "office address") ||
		lower == "offices near me"
}

func titleCase(s string) string {
	return cases.Title(language.Und).String(s)
}
