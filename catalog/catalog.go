package catalog

import (
	"encoding/json"
	"os"

	apperrors "sahayak-agent/errors"

	"go.uber.org/zap"
)

// Program is a single benefit scheme in the catalog. Entries are read-only
// after load; the engine never mutates them.
type Program struct {
	ID                        string   `json:"id"`
	NameEnglish               string   `json:"name_english"`
	NameHindi                 string   `json:"name_hindi"`
	Category                  string   `json:"category"`
	BenefitAmount             int      `json:"benefit_amount"`
	BenefitSummaryEnglish     string   `json:"benefit_summary_english"`
	BenefitSummaryHindi       string   `json:"benefit_summary_hindi"`
	EligibilitySummaryEnglish string   `json:"eligibility_summary_english"`
	EligibilitySummaryHindi   string   `json:"eligibility_summary_hindi"`
	TargetUsers               []string `json:"target_users"`
	Website                   string   `json:"website"`
	Helpline                  string   `json:"helpline"`
	DocsEnglish               []string `json:"quick_docs_english"`
	DocsHindi                 []string `json:"quick_docs_hindi"`
}

// Catalog holds the ordered set of programs. Iteration order is the load
// order and is part of the ranking contract.
type Catalog struct {
	programs []Program
}

type catalogFile struct {
	Programs []Program `json:"programs"`
}

// Load reads the catalog from the given JSON file. A missing or malformed
// file is not fatal: the built-in catalog is used instead so the service
// always has something to recommend.
func Load(path string, logger *zap.Logger) *Catalog {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("Could not read scheme catalog, using built-in data",
			zap.String("path", path),
			zap.Error(apperrors.WrapError(err, "read catalog")))
		return &Catalog{programs: builtinPrograms()}
	}

	var file catalogFile
	if err := json.Unmarshal(data, &file); err != nil || len(file.Programs) == 0 {
		logger.Warn("Scheme catalog file invalid, using built-in data",
			zap.String("path", path),
			zap.Error(apperrors.WrapErrorf(apperrors.ErrCatalogLoad, "decode %s", path)))
		return &Catalog{programs: builtinPrograms()}
	}

	logger.Info("Loaded scheme catalog",
		zap.String("path", path),
		zap.Int("programs", len(file.Programs)))
	return &Catalog{programs: file.Programs}
}

// NewFromPrograms builds a catalog directly from a program list. Used by tests
// and by callers that assemble the catalog themselves.
func NewFromPrograms(programs []Program) *Catalog {
	return &Catalog{programs: programs}
}

// Programs returns the catalog entries in load order.
func (c *Catalog) Programs() []Program {
	return c.programs
}

// Len returns the number of programs in the catalog.
func (c *Catalog) Len() int {
	return len(c.programs)
}
