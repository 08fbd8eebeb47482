package entity

import "testing"

func TestValidSpecialization(t *testing.T) {
	for _, s := range Specializations {
		if !ValidSpecialization(s) {
			t.Errorf("expected %q to be a valid specialization", s)
		}
	}
	if ValidSpecialization("astrology") {
		t.Error("expected astrology to be rejected")
	}
	if ValidSpecialization("") {
		t.Error("expected empty specialization to be rejected")
	}
}

func TestAcceptsBookings(t *testing.T) {
	available := true
	unavailable := false

	if !(&DoctorProfile{IsAvailable: &available}).AcceptsBookings() {
		t.Error("available doctor should accept bookings")
	}
	if (&DoctorProfile{IsAvailable: &unavailable}).AcceptsBookings() {
		t.Error("unavailable doctor should not accept bookings")
	}
	if (&DoctorProfile{}).AcceptsBookings() {
		t.Error("doctor without availability flag should not accept bookings")
	}
}
