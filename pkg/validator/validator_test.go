package validator

import "testing"

type registerForm struct {
	Username   string `validate:"required,min=3"`
	Email      string `validate:"required,email"`
	BloodGroup string `validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	BirthDate  string `validate:"omitempty,datetime=2006-01-02"`
}

func TestValidatePasses(t *testing.T) {
	cv := NewValidator()
	form := registerForm{
		Username:   "jdoe",
		Email:      "jdoe@example.com",
		BloodGroup: "O+",
		BirthDate:  "1990-05-20",
	}
	if err := cv.Validate(&form); err != nil {
		t.Errorf("expected valid form, got %v", err)
	}
}

func TestFormatValidationErrors(t *testing.T) {
	cv := NewValidator()
	form := registerForm{
		Username:   "ab",
		Email:      "not-an-email",
		BloodGroup: "X+",
		BirthDate:  "20-05-1990",
	}

	err := cv.Validate(&form)
	if err == nil {
		t.Fatal("expected validation to fail")
	}

	formatted := cv.FormatValidationErrors(err)
	if len(formatted) != 4 {
		t.Fatalf("expected 4 field errors, got %d: %v", len(formatted), formatted)
	}
	if formatted["Username"] != "Username must be at least 3 characters" {
		t.Errorf("unexpected min message: %q", formatted["Username"])
	}
	if formatted["Email"] != "Email must be a valid email address" {
		t.Errorf("unexpected email message: %q", formatted["Email"])
	}
	if formatted["BloodGroup"] == "" || formatted["BirthDate"] == "" {
		t.Errorf("missing oneof/datetime messages: %v", formatted)
	}
}
