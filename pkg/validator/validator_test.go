package validator

import (
	"testing"
)

type sampleRequest struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
	Status   string `validate:"omitempty,oneof=pending confirmed"`
}

func TestValidate_Passes(t *testing.T) {
	v := NewValidator()
	req := sampleRequest{Email: "jane@example.com", Password: "secret123"}
	if err := v.Validate(&req); err != nil {
		t.Fatalf("expected valid request, got %v", err)
	}
}

func TestFormatValidationErrors(t *testing.T) {
	v := NewValidator()
	req := sampleRequest{Email: "not-an-email", Password: "short", Status: "done"}
	err := v.Validate(&req)
	if err == nil {
		t.Fatal("expected validation error")
	}

	formatted := v.FormatValidationErrors(err)
	if got := formatted["Email"]; got != "Email must be a valid email address" {
		t.Errorf("Email message = %q", got)
	}
	if got := formatted["Password"]; got != "Password must be at least 8 characters" {
		t.Errorf("Password message = %q", got)
	}
	if got := formatted["Status"]; got != "Status must be one of: pending confirmed" {
		t.Errorf("Status message = %q", got)
	}
}
