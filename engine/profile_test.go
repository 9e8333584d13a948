package engine

import "testing"

func TestProfileMissingOrder(t *testing.T) {
	p := NewProfile()

	missing := p.Missing()
	want := []Field{FieldAge, FieldProfession, FieldSettlement, FieldIncome, FieldHouseholdSize}
	if len(missing) != len(want) {
		t.Fatalf("Missing() = %v, want %v", missing, want)
	}
	for i := range want {
		if missing[i] != want[i] {
			t.Errorf("Missing()[%d] = %q, want %q", i, missing[i], want[i])
		}
	}

	p.setSettlement("rural")
	missing = p.Missing()
	if len(missing) != 4 || missing[2] != FieldIncome {
		t.Errorf("Missing() after settlement = %v", missing)
	}
}

func TestProfileSettersWriteOnce(t *testing.T) {
	p := NewProfile()

	p.setAge(25)
	p.setAge(40)
	if p.Age() != 25 {
		t.Errorf("Age() = %d, want 25", p.Age())
	}

	p.setProfession("farmer")
	p.setProfession("student")
	if p.Profession() != "farmer" {
		t.Errorf("Profession() = %q, want farmer", p.Profession())
	}

	p.setIncome(50000)
	p.setIncome(200000)
	if p.Income() != 50000 {
		t.Errorf("Income() = %d, want 50000", p.Income())
	}
}

func TestProfileCompletion(t *testing.T) {
	p := NewProfile()
	if p.Complete() {
		t.Error("empty profile reports complete")
	}
	if p.Completed() != 0 {
		t.Errorf("Completed() = %d, want 0", p.Completed())
	}

	p.setAge(25)
	p.setProfession("farmer")
	p.setSettlement("rural")
	p.setIncome(50000)
	if p.Complete() {
		t.Error("profile complete with household size missing")
	}

	p.setHouseholdSize(4)
	if !p.Complete() {
		t.Error("full profile reports incomplete")
	}
	if p.Completed() != 5 {
		t.Errorf("Completed() = %d, want 5", p.Completed())
	}
	if len(p.Missing()) != 0 {
		t.Errorf("Missing() = %v, want empty", p.Missing())
	}
}
