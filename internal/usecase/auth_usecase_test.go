package usecase

import (
	"context"
	"regexp"
	"testing"

	"go-hospital-management/internal/delivery/dto"
)

func TestGeneratePatientNumberFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^PAT\d{5}$`)

	for i := 0; i < 100; i++ {
		number := generatePatientNumber()
		if !pattern.MatchString(number) {
			t.Fatalf("patient number %q does not match PAT + five digits", number)
		}
	}
}

func TestParseConsultationFee(t *testing.T) {
	fee, err := parseConsultationFee("")
	if err != nil {
		t.Fatalf("unexpected error for empty fee: %v", err)
	}
	if fee.String() != "100" {
		t.Errorf("expected default fee 100, got %s", fee)
	}

	fee, err = parseConsultationFee("250.50")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fee.String() != "250.5" {
		t.Errorf("expected 250.5, got %s", fee)
	}

	if _, err := parseConsultationFee("not-a-number"); err != ErrInvalidFeeFormat {
		t.Errorf("expected ErrInvalidFeeFormat, got %v", err)
	}
	if _, err := parseConsultationFee("-10"); err != ErrInvalidFeeFormat {
		t.Errorf("expected ErrInvalidFeeFormat for negative fee, got %v", err)
	}
}

func TestDefaultString(t *testing.T) {
	if got := defaultString("", "09:00"); got != "09:00" {
		t.Errorf("expected fallback, got %q", got)
	}
	if got := defaultString("10:30", "09:00"); got != "10:30" {
		t.Errorf("expected original value, got %q", got)
	}
}

func TestRegisterPatientRejectsInvalidProfileCodes(t *testing.T) {
	u := &authUsecase{}

	_, err := u.RegisterPatient(context.Background(), &dto.RegisterPatientRequest{Gender: "X"})
	if err != ErrInvalidGender {
		t.Errorf("expected ErrInvalidGender, got %v", err)
	}

	_, err = u.RegisterPatient(context.Background(), &dto.RegisterPatientRequest{BloodGroup: "C+"})
	if err != ErrInvalidBloodGroup {
		t.Errorf("expected ErrInvalidBloodGroup, got %v", err)
	}
}

func TestRegisterDoctorRejectsUnknownSpecialization(t *testing.T) {
	u := &authUsecase{}

	_, err := u.RegisterDoctor(context.Background(), &dto.RegisterDoctorRequest{Specialization: "astrology"})
	if err != ErrInvalidSpecialization {
		t.Errorf("expected ErrInvalidSpecialization, got %v", err)
	}
}
