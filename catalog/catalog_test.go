package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

func TestLoadFallsBackToBuiltin(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"missing_file", filepath.Join(t.TempDir(), "absent.json")},
		{"malformed_file", writeFile(t, "not json at all")},
		{"empty_program_list", writeFile(t, `{"programs":[]}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat := Load(tt.path, zap.NewNop())
			if cat.Len() != len(builtinPrograms()) {
				t.Errorf("Len() = %d, want builtin count %d", cat.Len(), len(builtinPrograms()))
			}
			if cat.Programs()[0].ID != "pm_kisan" {
				t.Errorf("first builtin program = %q, want pm_kisan", cat.Programs()[0].ID)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	path := writeFile(t, `{
		"programs": [
			{
				"id": "test_scheme",
				"name_english": "Test Scheme",
				"name_hindi": "परीक्षण योजना",
				"category": "test",
				"benefit_amount": 1000,
				"target_users": ["farmer"]
			}
		]
	}`)

	cat := Load(path, zap.NewNop())
	if cat.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", cat.Len())
	}
	p := cat.Programs()[0]
	if p.ID != "test_scheme" || p.NameHindi != "परीक्षण योजना" || p.BenefitAmount != 1000 {
		t.Errorf("loaded program = %+v", p)
	}
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}
