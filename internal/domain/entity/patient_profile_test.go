package entity

import "testing"

func TestValidGender(t *testing.T) {
	for _, g := range []string{GenderMale, GenderFemale, GenderOther} {
		if !ValidGender(g) {
			t.Errorf("expected %q to be a valid gender code", g)
		}
	}
	if ValidGender("X") {
		t.Error("expected X to be rejected")
	}
	if ValidGender("m") {
		t.Error("gender codes are uppercase, expected m to be rejected")
	}
}

func TestValidBloodGroup(t *testing.T) {
	for _, g := range BloodGroups {
		if !ValidBloodGroup(g) {
			t.Errorf("expected %q to be a valid blood group", g)
		}
	}
	if ValidBloodGroup("C+") {
		t.Error("expected C+ to be rejected")
	}
	if ValidBloodGroup("") {
		t.Error("expected empty blood group to be rejected")
	}
}
