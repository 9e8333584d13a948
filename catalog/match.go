package catalog

// IDs of the programs included by the income fallback rules. A catalog
// without them simply yields fewer fallback matches.
const (
	healthProgramID  = "ayushman_bharat"
	housingProgramID = "pm_awas_urban"
)

// Income ceilings for the fallback inclusion rules, in rupees per year.
const (
	healthIncomeCeiling  = 200000
	housingIncomeCeiling = 1800000
)

// Rank returns the programs matching the given profession and annual income,
// in catalog order. A program is included at most once: profession membership
// is checked first, then the income-gated health and housing fallbacks. The
// result is stable for fixed inputs.
func (c *Catalog) Rank(profession string, income int) []Program {
	var matched []Program
	for _, p := range c.programs {
		switch {
		case containsTag(p.TargetUsers, profession):
			matched = append(matched, p)
		case p.ID == healthProgramID && income < healthIncomeCeiling:
			matched = append(matched, p)
		case p.ID == housingProgramID && income < housingIncomeCeiling:
			matched = append(matched, p)
		}
	}
	return matched
}

func containsTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}
