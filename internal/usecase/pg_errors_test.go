package usecase

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func pgError(code, constraint string) error {
	return &pgconn.PgError{Code: code, ConstraintName: constraint}
}

func TestIsDuplicateKeyError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		constraint string
		want       bool
	}{
		{"appointment slot", pgError("23505", "uniq_appointment_slot"), "appointment_slot", true},
		{"bill per appointment", pgError("23505", "uniq_bills_appointment_id"), "appointment_id", true},
		{"patient number", pgError("23505", "uniq_patient_profiles_patient_number"), "patient_number", true},
		{"case insensitive", pgError("23505", "UNIQ_USERS_EMAIL"), "users_email", true},
		{"wrapped", fmt.Errorf("create appointment: %w", pgError("23505", "uniq_appointment_slot")), "appointment_slot", true},
		{"other constraint", pgError("23505", "uniq_users_email"), "appointment_slot", false},
		{"foreign key code", pgError("23503", "uniq_appointment_slot"), "appointment_slot", false},
		{"not a pg error", errors.New("duplicate key value violates unique constraint"), "appointment_slot", false},
		{"nil", nil, "appointment_slot", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isDuplicateKeyError(tt.err, tt.constraint); got != tt.want {
				t.Errorf("isDuplicateKeyError(%v, %q) = %v, want %v", tt.err, tt.constraint, got, tt.want)
			}
		})
	}
}

func TestIsForeignKeyError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		constraint string
		want       bool
	}{
		{"bill appointment fk", pgError("23503", "bills_appointment_id_fkey"), "appointment", true},
		{"wrapped", fmt.Errorf("create bill: %w", pgError("23503", "bills_appointment_id_fkey")), "appointment", true},
		{"other constraint", pgError("23503", "appointments_patient_id_fkey"), "doctor", false},
		{"unique code", pgError("23505", "bills_appointment_id_fkey"), "appointment", false},
		{"not a pg error", errors.New("foreign key violation"), "appointment", false},
		{"nil", nil, "appointment", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isForeignKeyError(tt.err, tt.constraint); got != tt.want {
				t.Errorf("isForeignKeyError(%v, %q) = %v, want %v", tt.err, tt.constraint, got, tt.want)
			}
		})
	}
}
