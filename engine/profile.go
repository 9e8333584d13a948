package engine

// Field names the profile in the fixed question order.
type Field string

const (
	FieldAge           Field = "age"
	FieldProfession    Field = "profession"
	FieldSettlement    Field = "settlement"
	FieldIncome        Field = "income"
	FieldHouseholdSize Field = "household_size"
)

// fieldOrder is the question sequence. Fields are asked and filled in this
// order only.
var fieldOrder = []Field{
	FieldAge,
	FieldProfession,
	FieldSettlement,
	FieldIncome,
	FieldHouseholdSize,
}

// Profile accumulates the five demographic attributes over the conversation.
// Every field is write-once: a setter on a field that already holds a value
// is a no-op, which encodes the "ask once, keep forever" rule.
type Profile struct {
	age           int
	profession    string
	settlement    string
	income        int
	householdSize int

	set map[Field]bool
}

// NewProfile returns an empty profile.
func NewProfile() *Profile {
	return &Profile{set: make(map[Field]bool, len(fieldOrder))}
}

// Has reports whether the field has been filled.
func (p *Profile) Has(f Field) bool {
	return p.set[f]
}

func (p *Profile) setAge(n int) {
	if p.set[FieldAge] {
		return
	}
	p.age = n
	p.set[FieldAge] = true
}

func (p *Profile) setProfession(tag string) {
	if p.set[FieldProfession] {
		return
	}
	p.profession = tag
	p.set[FieldProfession] = true
}

func (p *Profile) setSettlement(tag string) {
	if p.set[FieldSettlement] {
		return
	}
	p.settlement = tag
	p.set[FieldSettlement] = true
}

func (p *Profile) setIncome(n int) {
	if p.set[FieldIncome] {
		return
	}
	p.income = n
	p.set[FieldIncome] = true
}

func (p *Profile) setHouseholdSize(n int) {
	if p.set[FieldHouseholdSize] {
		return
	}
	p.householdSize = n
	p.set[FieldHouseholdSize] = true
}

// Age returns the stored age, zero if unset.
func (p *Profile) Age() int { return p.age }

// Profession returns the stored profession tag, empty if unset.
func (p *Profile) Profession() string { return p.profession }

// Settlement returns the stored settlement tag, empty if unset.
func (p *Profile) Settlement() string { return p.settlement }

// Income returns the stored annual income in rupees, zero if unset.
func (p *Profile) Income() int { return p.income }

// HouseholdSize returns the stored household member count, zero if unset.
func (p *Profile) HouseholdSize() int { return p.householdSize }

// Missing returns the unfilled fields in question order.
func (p *Profile) Missing() []Field {
	var missing []Field
	for _, f := range fieldOrder {
		if !p.set[f] {
			missing = append(missing, f)
		}
	}
	return missing
}

// Completed returns the number of filled fields.
func (p *Profile) Completed() int {
	return len(p.set)
}

// Complete reports whether every required field has been gathered.
func (p *Profile) Complete() bool {
	return len(p.set) == len(fieldOrder)
}
