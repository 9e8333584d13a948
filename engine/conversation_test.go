package engine

import (
	"strings"
	"testing"

	"sahayak-agent/catalog"

	"go.uber.org/zap"
)

// stubLocator satisfies Locator without any network access.
type stubLocator struct {
	place   Place
	located bool
}

func (s *stubLocator) Locate() (Place, bool) {
	return s.place, s.located
}

func (s *stubLocator) Offices(place, region string) []string {
	return []string{
		"District Collector Office, " + place,
		"Municipal Corporation Office, " + place,
	}
}

func newTestEngine(t *testing.T, loc Locator) *Engine {
	t.Helper()
	if loc == nil {
		loc = &stubLocator{}
	}
	cat := catalog.Load("nonexistent.json", zap.NewNop())
	return New(Config{FuzzyThreshold: DefaultFuzzyThreshold, MaxRecommendations: 3}, cat, loc, zap.NewNop())
}

func TestFullIntakeFlow(t *testing.T) {
	e := newTestEngine(t, nil)

	if e.Stage() != StageInitial {
		t.Fatalf("initial stage = %q, want %q", e.Stage(), StageInitial)
	}

	reply := e.Process("25", LanguageEnglish)
	if e.Stage() != StageGathering {
		t.Fatalf("after age: stage = %q, want %q", e.Stage(), StageGathering)
	}
	if !strings.Contains(reply, "What do you do?") {
		t.Errorf("after age: reply = %q, want profession question", reply)
	}

	reply = e.Process("farmer", LanguageEnglish)
	if !strings.Contains(reply, "Where do you live?") {
		t.Errorf("after profession: reply = %q, want settlement question", reply)
	}

	reply = e.Process("village", LanguageEnglish)
	if !strings.Contains(reply, "income") {
		t.Errorf("after settlement: reply = %q, want income question", reply)
	}

	reply = e.Process("2 lakh", LanguageEnglish)
	if !strings.Contains(reply, "family members") {
		t.Errorf("after income: reply = %q, want household question", reply)
	}

	reply = e.Process("4", LanguageEnglish)
	if e.Stage() != StageRecommending {
		t.Fatalf("after household: stage = %q, want %q", e.Stage(), StageRecommending)
	}
	if !strings.Contains(reply, "PM Kisan Samman Nidhi") {
		t.Errorf("summary = %q, want PM Kisan listed", reply)
	}

	p := e.Profile()
	if p.Age() != 25 || p.Profession() != "farmer" || p.Settlement() != "rural" ||
		p.Income() != 200000 || p.HouseholdSize() != 4 {
		t.Errorf("profile = age %d, profession %q, settlement %q, income %d, household %d",
			p.Age(), p.Profession(), p.Settlement(), p.Income(), p.HouseholdSize())
	}

	// Income of exactly 2 lakh is not below the health ceiling, so only the
	// profession match and the housing fallback remain.
	ranked := e.Ranked()
	wantIDs := []string{"pm_kisan", "pm_awas_urban"}
	if len(ranked) != len(wantIDs) {
		t.Fatalf("ranked = %d programs, want %d", len(ranked), len(wantIDs))
	}
	for i, want := range wantIDs {
		if ranked[i].ID != want {
			t.Errorf("ranked[%d] = %q, want %q", i, ranked[i].ID, want)
		}
	}

	detail := e.Process("details 1", LanguageEnglish)
	if !strings.Contains(detail, "PM Kisan Samman Nidhi") || !strings.Contains(detail, "Eligibility") {
		t.Errorf("details 1 = %q, want PM Kisan detail card", detail)
	}
}

func TestFieldsWriteOnce(t *testing.T) {
	e := newTestEngine(t, nil)

	e.Process("25", LanguageEnglish)
	e.Process("main 40 saal ka kisan hun", LanguageEnglish)

	if got := e.Profile().Age(); got != 25 {
		t.Errorf("age after second mention = %d, want 25", got)
	}
	if got := e.Profile().Profession(); got != "farmer" {
		t.Errorf("profession = %q, want farmer", got)
	}
}

func TestOfficeQuerySideIntent(t *testing.T) {
	e := newTestEngine(t, nil)
	e.Process("25", LanguageEnglish)

	reply := e.Process("offices in jaipur", LanguageEnglish)
	if !strings.Contains(reply, "Jaipur, Rajasthan") {
		t.Errorf("reply = %q, want offices for Jaipur, Rajasthan", reply)
	}
	if e.Stage() != StageGathering {
		t.Errorf("stage after side-intent = %q, want %q", e.Stage(), StageGathering)
	}
	if e.Profile().Has(FieldProfession) {
		t.Error("office query should not fill profile fields")
	}
}

func TestOfficeQueryUnknownCity(t *testing.T) {
	e := newTestEngine(t, nil)

	reply := e.Process("offices in ramgarh", LanguageEnglish)
	if !strings.Contains(reply, "Ramgarh, Ramgarh") {
		t.Errorf("reply = %q, want city name used as region fallback", reply)
	}
}

func TestNearMeWithAmbientLocation(t *testing.T) {
	loc := &stubLocator{place: Place{City: "Pune", Region: "Maharashtra"}, located: true}
	e := newTestEngine(t, loc)

	reply := e.Process("offices near me", LanguageEnglish)
	if !strings.Contains(reply, "Pune, Maharashtra") {
		t.Errorf("reply = %q, want offices for Pune", reply)
	}
}

func TestNearMeAsksForCity(t *testing.T) {
	e := newTestEngine(t, &stubLocator{located: false})
	e.Process("25", LanguageEnglish)

	reply := e.Process("offices near me", LanguageEnglish)
	if !strings.Contains(reply, "Tell me your city name") {
		t.Fatalf("reply = %q, want city name prompt", reply)
	}

	// Next turn is consumed as the place name, not as a profile answer.
	reply = e.Process("mumbai", LanguageEnglish)
	if !strings.Contains(reply, "Mumbai, Maharashtra") {
		t.Errorf("reply = %q, want offices for Mumbai, Maharashtra", reply)
	}
	if e.Stage() != StageGathering {
		t.Errorf("stage = %q, want %q", e.Stage(), StageGathering)
	}

	// The reservation only covers a single turn.
	reply = e.Process("student", LanguageEnglish)
	if got := e.Profile().Profession(); got != "student" {
		t.Errorf("profession after place turn = %q, want student", got)
	}
}

func TestDetailsInvalidSelection(t *testing.T) {
	e := newTestEngine(t, nil)

	for _, msg := range []string{"details 99", "details abc", "details 0"} {
		reply := e.Process(msg, LanguageEnglish)
		if !strings.Contains(reply, "valid scheme number") {
			t.Errorf("Process(%q) = %q, want invalid selection message", msg, reply)
		}
	}
}

func TestHindiQuestions(t *testing.T) {
	e := newTestEngine(t, nil)

	reply := e.Process("25", LanguageHindi)
	if !strings.Contains(reply, "आप क्या करते हैं?") {
		t.Errorf("reply = %q, want Hindi profession question", reply)
	}
}

func TestRecommendingStageRepeatsSummary(t *testing.T) {
	e := newTestEngine(t, nil)
	for _, msg := range []string{"25", "farmer", "village", "50000", "4"} {
		e.Process(msg, LanguageEnglish)
	}
	if e.Stage() != StageRecommending {
		t.Fatalf("stage = %q, want %q", e.Stage(), StageRecommending)
	}

	first := e.Process("anything else", LanguageEnglish)
	second := e.Process("more text", LanguageEnglish)
	if first != second {
		t.Error("summary should be stable across turns with an unchanged profile")
	}
}

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		input string
		want  Language
	}{
		{"hindi", LanguageHindi},
		{"हिंदी", LanguageHindi},
		{"hi", LanguageHindi},
		{"english", LanguageEnglish},
		{"", LanguageEnglish},
		{"french", LanguageEnglish},
	}
	for _, tt := range tests {
		if got := ParseLanguage(tt.input); got != tt.want {
			t.Errorf("ParseLanguage(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
