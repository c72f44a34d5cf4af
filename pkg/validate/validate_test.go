package validate_test

import (
	"testing"

	"github.com/shashiranjanraj/vyapari/pkg/validate"
)

type registerInput struct {
	Name                 string `json:"name"                  validate:"required,min=2,max=50"`
	Email                string `json:"email"                 validate:"required,email"`
	Password             string `json:"password"              validate:"required,min=8,confirmed"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required"`
	Phone                string `json:"phone"                 validate:"nullable,max=50"`
	Status               string `json:"status"                validate:"nullable,in=UNPAID,PARTIAL,PAID"`
	Stock                int    `json:"stock"                 validate:"nullable,integer,gte=0"`
}

func TestValidInput(t *testing.T) {
	errs := validate.Struct(registerInput{
		Name:                 "Asha",
		Email:                "asha@example.com",
		Password:             "secret-pass",
		PasswordConfirmation: "secret-pass",
		Phone:                "", // nullable
		Status:               "PARTIAL",
		Stock:                3,
	})
	if validate.HasErrors(errs) {
		t.Errorf("expected no errors, got: %v", errs)
	}
}

func TestRequiredFails(t *testing.T) {
	errs := validate.Struct(registerInput{})
	if !validate.HasErrors(errs) {
		t.Fatal("expected required errors")
	}
	for _, field := range []string{"name", "email", "password"} {
		if _, ok := errs[field]; !ok {
			t.Errorf("expected %s to be required", field)
		}
	}
}

func TestEmailRule(t *testing.T) {
	errs := validate.Struct(registerInput{
		Name: "Asha", Email: "not-an-email",
		Password: "secret-pass", PasswordConfirmation: "secret-pass",
	})
	if _, ok := errs["email"]; !ok {
		t.Error("expected email format error")
	}
}

func TestConfirmedMismatch(t *testing.T) {
	errs := validate.Struct(registerInput{
		Name: "Asha", Email: "asha@example.com",
		Password: "secret-pass", PasswordConfirmation: "different",
	})
	if _, ok := errs["password"]; !ok {
		t.Errorf("expected password confirmation error, got %v", errs)
	}
}

func TestInRule(t *testing.T) {
	errs := validate.Struct(registerInput{
		Name: "Asha", Email: "asha@example.com",
		Password: "secret-pass", PasswordConfirmation: "secret-pass",
		Status: "MAYBE",
	})
	if _, ok := errs["status"]; !ok {
		t.Errorf("expected status in-list error, got %v", errs)
	}
}

func TestMinOnStringsAndNumbers(t *testing.T) {
	errs := validate.Struct(registerInput{
		Name: "A", Email: "a@example.com",
		Password: "secret-pass", PasswordConfirmation: "secret-pass",
	})
	if _, ok := errs["name"]; !ok {
		t.Error("expected name min-length error")
	}

	type stocked struct {
		Stock int `json:"stock" validate:"required,gte=0"`
	}
	errs = validate.Struct(stocked{Stock: -1})
	if _, ok := errs["stock"]; !ok {
		t.Error("expected stock gte error")
	}
}

func TestNullableSkipsRules(t *testing.T) {
	type optional struct {
		Email string `json:"email" validate:"nullable,email"`
	}
	if errs := validate.Struct(optional{}); validate.HasErrors(errs) {
		t.Errorf("empty nullable field should pass, got %v", errs)
	}
	if errs := validate.Struct(optional{Email: "bad"}); !validate.HasErrors(errs) {
		t.Error("present nullable field is still validated")
	}
}

func TestDateRule(t *testing.T) {
	type dated struct {
		Date string `json:"date" validate:"required,date"`
	}

	for _, ok := range []string{"2026-08-28", "2026-08-28 10:30:00", "28/08/2026"} {
		if errs := validate.Struct(dated{Date: ok}); validate.HasErrors(errs) {
			t.Errorf("date %q should pass, got %v", ok, errs)
		}
	}
	if errs := validate.Struct(dated{Date: "yesterday"}); !validate.HasErrors(errs) {
		t.Error("expected invalid date error")
	}
}

func TestParseDateLayouts(t *testing.T) {
	if _, err := validate.ParseDate("2026-08-28"); err != nil {
		t.Errorf("ParseDate: %v", err)
	}
	if _, err := validate.ParseDate("junk"); err == nil {
		t.Error("expected ParseDate failure")
	}
}
