package entity

import "testing"

func TestCanTransitionTo(t *testing.T) {
	tests := []struct {
		name   string
		from   AppointmentStatus
		to     AppointmentStatus
		expect bool
	}{
		{"scheduled to completed", AppointmentStatusScheduled, AppointmentStatusCompleted, true},
		{"scheduled to cancelled", AppointmentStatusScheduled, AppointmentStatusCancelled, true},
		{"scheduled to no_show", AppointmentStatusScheduled, AppointmentStatusNoShow, true},
		{"scheduled to scheduled", AppointmentStatusScheduled, AppointmentStatusScheduled, false},
		{"completed to cancelled", AppointmentStatusCompleted, AppointmentStatusCancelled, false},
		{"cancelled to completed", AppointmentStatusCancelled, AppointmentStatusCompleted, false},
		{"no_show to completed", AppointmentStatusNoShow, AppointmentStatusCompleted, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Appointment{Status: tt.from}
			if got := a.CanTransitionTo(tt.to); got != tt.expect {
				t.Errorf("CanTransitionTo(%s) from %s = %v, want %v", tt.to, tt.from, got, tt.expect)
			}
		})
	}
}

func TestIsTerminal(t *testing.T) {
	scheduled := &Appointment{Status: AppointmentStatusScheduled}
	if scheduled.IsTerminal() {
		t.Error("scheduled appointment reported terminal")
	}
	if !scheduled.IsScheduled() {
		t.Error("scheduled appointment not reported scheduled")
	}

	for _, s := range []AppointmentStatus{AppointmentStatusCompleted, AppointmentStatusCancelled, AppointmentStatusNoShow} {
		a := &Appointment{Status: s}
		if !a.IsTerminal() {
			t.Errorf("%s appointment not reported terminal", s)
		}
	}
}

func TestValidAppointmentType(t *testing.T) {
	for _, v := range []AppointmentType{AppointmentTypeConsultation, AppointmentTypeFollowUp, AppointmentTypeEmergency, AppointmentTypeRoutine} {
		if !ValidAppointmentType(v) {
			t.Errorf("expected %s to be valid", v)
		}
	}
	if ValidAppointmentType("walk_in") {
		t.Error("expected walk_in to be invalid")
	}
}

func TestValidAppointmentStatus(t *testing.T) {
	if !ValidAppointmentStatus(AppointmentStatusNoShow) {
		t.Error("expected no_show to be valid")
	}
	if ValidAppointmentStatus("pending") {
		t.Error("expected pending to be invalid")
	}
}
