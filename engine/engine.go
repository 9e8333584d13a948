package engine

import (
	"sahayak-agent/catalog"

	"go.uber.org/zap"
)

// Language selects the response language for a turn.
type Language string

const (
	LanguageEnglish Language = "english"
	LanguageHindi   Language = "hindi"
)

// ParseLanguage maps user-facing language labels onto the enum, defaulting
// to English.
func ParseLanguage(s string) Language {
	switch s {
	case "hindi", "हिंदी", "hi":
		return LanguageHindi
	default:
		return LanguageEnglish
	}
}

// Stage is the conversation stage. Side-intents (office lookups, scheme
// details) are handled without changing the stage.
type Stage string

const (
	StageInitial      Stage = "initial"
	StageGathering    Stage = "gathering"
	StageRecommending Stage = "recommending"
)

// pendingAction marks a side-intent that reserved the next turn. Explicit
// state rather than a lone boolean so that another side-intent arriving in
// the same turn cannot corrupt stage tracking.
type pendingAction int

const (
	pendingNone pendingAction = iota
	pendingPlaceName
)

// Place is a best-effort geolocation result.
type Place struct {
	City    string
	Region  string
	Country string
}

// Locator is the external lookup collaborator. Implementations must absorb
// their own failures: Locate reports ok=false instead of erroring, and
// Offices always returns at least one entry.
type Locator interface {
	Locate() (Place, bool)
	Offices(place, region string) []string
}

// Config carries the engine tunables.
type Config struct {
	FuzzyThreshold     float64
	MaxRecommendations int
}

// Engine is one conversation: a profile being filled, the current stage and
// the collaborators needed to answer. One engine per user session; engines
// share nothing but the read-only catalog.
type Engine struct {
	cfg     Config
	catalog *catalog.Catalog
	locator Locator
	logger  *zap.Logger

	profile *Profile
	stage   Stage
	pending pendingAction
}

// New constructs an engine with an empty profile in the initial stage.
func New(cfg Config, cat *catalog.Catalog, loc Locator, logger *zap.Logger) *Engine {
	if cfg.FuzzyThreshold <= 0 {
		cfg.FuzzyThreshold = DefaultFuzzyThreshold
	}
	if cfg.MaxRecommendations <= 0 {
		cfg.MaxRecommendations = 3
	}
	return &Engine{
		cfg:     cfg,
		catalog: cat,
		locator: loc,
		logger:  logger,
		profile: NewProfile(),
		stage:   StageInitial,
	}
}

// Stage returns the current conversation stage.
func (e *Engine) Stage() Stage {
	return e.stage
}

// Profile returns the accumulating profile.
func (e *Engine) Profile() *Profile {
	return e.profile
}

// CompletedFields returns how many profile fields are filled.
func (e *Engine) CompletedFields() int {
	return e.profile.Completed()
}

// MissingFields returns the unfilled fields in question order.
func (e *Engine) MissingFields() []Field {
	return e.profile.Missing()
}

// Ranked returns the programs matching the profile, in catalog order.
// Stable for an unchanged profile and catalog.
func (e *Engine) Ranked() []catalog.Program {
	return e.catalog.Rank(e.profile.Profession(), e.profile.Income())
}

// extractInto runs every extractor whose field is still missing and merges
// the results into the profile. Fields already present are never touched.
// Household size is only attempted once age is known, since it uses the age
// to disambiguate bare numerals.
func (e *Engine) extractInto(text string) {
	p := e.profile

	if !p.Has(FieldAge) {
		if age, ok := extractAge(text); ok {
			p.setAge(age)
			e.logger.Debug("Extracted age", zap.Int("age", age))
		}
	}

	if !p.Has(FieldProfession) {
		if tag, ok := extractProfession(text, e.cfg.FuzzyThreshold); ok {
			p.setProfession(tag)
			e.logger.Debug("Extracted profession", zap.String("profession", tag))
		}
	}

	if !p.Has(FieldSettlement) {
		if tag, ok := extractSettlement(text, e.cfg.FuzzyThreshold); ok {
			p.setSettlement(tag)
			e.logger.Debug("Extracted settlement", zap.String("settlement", tag))
		}
	}

	if !p.Has(FieldIncome) {
		if income, ok := extractIncome(text); ok {
			p.setIncome(income)
			e.logger.Debug("Extracted income", zap.Int("income", income))
		}
	}

	if !p.Has(FieldHouseholdSize) && p.Has(FieldAge) {
		if size, ok := extractHouseholdSize(text, p.Age()); ok {
			p.setHouseholdSize(size)
			e.logger.Debug("Extracted household size", zap.Int("household_size", size))
		}
	}
}
