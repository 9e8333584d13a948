package catalog

import "testing"

func rankedIDs(programs []Program) []string {
	ids := make([]string, len(programs))
	for i, p := range programs {
		ids[i] = p.ID
	}
	return ids
}

func TestRank(t *testing.T) {
	cat := NewFromPrograms(builtinPrograms())

	tests := []struct {
		name       string
		profession string
		income     int
		want       []string
	}{
		{
			name:       "low_income_farmer",
			profession: "farmer",
			income:     50000,
			want:       []string{"pm_kisan", "ayushman_bharat", "pm_awas_urban"},
		},
		{
			name:       "mid_income_student",
			profession: "student",
			income:     300000,
			want:       []string{"pm_awas_urban", "nsp_scholarship"},
		},
		{
			name:       "employee_matches_by_tag",
			profession: "employee",
			income:     2500000,
			want:       []string{"ayushman_bharat", "pm_awas_urban"},
		},
		{
			name:       "health_ceiling_is_exclusive",
			profession: "farmer",
			income:     200000,
			want:       []string{"pm_kisan", "pm_awas_urban"},
		},
		{
			name:       "housing_ceiling_is_exclusive",
			profession: "farmer",
			income:     1800000,
			want:       []string{"pm_kisan"},
		},
		{
			name:       "unknown_profession_income_fallbacks_only",
			profession: "",
			income:     0,
			want:       []string{"ayushman_bharat", "pm_awas_urban"},
		},
		{
			name:       "high_income_business_owner",
			profession: "business_owner",
			income:     5000000,
			want:       nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rankedIDs(cat.Rank(tt.profession, tt.income))
			if len(got) != len(tt.want) {
				t.Fatalf("Rank(%q, %d) = %v, want %v", tt.profession, tt.income, got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("Rank(%q, %d)[%d] = %q, want %q", tt.profession, tt.income, i, got[i], tt.want[i])
				}
			}
		})
	}
}

// A program matching both a profession tag and an income rule appears once.
func TestRankNoDuplicates(t *testing.T) {
	cat := NewFromPrograms(builtinPrograms())
	got := cat.Rank("unemployed", 100000)

	seen := map[string]bool{}
	for _, p := range got {
		if seen[p.ID] {
			t.Errorf("program %q listed more than once", p.ID)
		}
		seen[p.ID] = true
	}
}

func TestRankStable(t *testing.T) {
	cat := NewFromPrograms(builtinPrograms())
	first := rankedIDs(cat.Rank("farmer", 50000))
	second := rankedIDs(cat.Rank("farmer", 50000))

	if len(first) != len(second) {
		t.Fatalf("rank lengths differ: %v vs %v", first, second)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("rank order changed between calls: %v vs %v", first, second)
		}
	}
}
