package validate

import (
	"testing"
)

func TestSignup_AllFieldsInvalid(t *testing.T) {
	// Every rule violated at once — and every violation reported at once.
	violations := Signup(SignupInput{
		Name:     "A",
		Email:    "bad",
		Password: "short",
		Phone:    "123",
	})

	for _, field := range []string{"name", "email", "password", "phone"} {
		if _, ok := violations[field]; !ok {
			t.Errorf("expected a violation for %q, got none", field)
		}
	}

	// confirmPassword was not supplied, so it must NOT be flagged.
	if msg, ok := violations["confirmPassword"]; ok {
		t.Errorf("unexpected confirmPassword violation: %q", msg)
	}

	if len(violations) != 4 {
		t.Errorf("got %d violations, want 4: %v", len(violations), violations)
	}
}

func TestSignup_ValidInput(t *testing.T) {
	violations := Signup(SignupInput{
		Name:            "Jane Doe",
		Email:           "jane@example.com",
		Password:        "Passw0rd",
		ConfirmPassword: "Passw0rd",
		Phone:           "5551234567",
	})

	if len(violations) != 0 {
		t.Errorf("valid input produced violations: %v", violations)
	}
}

func TestSignup_ConfirmPasswordMismatch(t *testing.T) {
	violations := Signup(SignupInput{
		Name:            "Jane Doe",
		Email:           "jane@example.com",
		Password:        "Passw0rd",
		ConfirmPassword: "different",
	})

	if len(violations) != 1 {
		t.Fatalf("got %d violations, want exactly 1: %v", len(violations), violations)
	}
	if _, ok := violations["confirmPassword"]; !ok {
		t.Errorf("the single violation should be on confirmPassword, got %v", violations)
	}
}

func TestSignup_NameRules(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantValid bool
	}{
		{"empty", "", false},
		{"whitespace only", "   ", false},
		{"single char after trim", " A ", false},
		{"two chars", "Jo", true},
		{"normal name", "Jane Doe", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Signup(SignupInput{Name: tt.input, Email: "a@b.co", Password: "Passw0rd"})
			_, violated := v["name"]
			if violated == tt.wantValid {
				t.Errorf("name %q: violation=%v, wantValid=%v", tt.input, violated, tt.wantValid)
			}
		})
	}
}

func TestSignup_EmailRules(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantValid bool
	}{
		{"empty", "", false},
		{"no at sign", "janeexample.com", false},
		{"no dot in domain", "jane@example", false},
		{"whitespace in local part", "ja ne@example.com", false},
		{"double at", "jane@@example.com", false},
		{"plain address", "jane@example.com", true},
		{"subdomain", "jane@mail.example.co.uk", true},
		{"plus tag", "jane+notes@example.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Signup(SignupInput{Name: "Jane", Email: tt.input, Password: "Passw0rd"})
			_, violated := v["email"]
			if violated == tt.wantValid {
				t.Errorf("email %q: violation=%v, wantValid=%v", tt.input, violated, tt.wantValid)
			}
		})
	}
}

func TestSignup_PhoneRules(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantValid bool
	}{
		{"omitted entirely", "", true}, // optional
		{"too few digits", "123", false},
		{"ten digits", "5551234567", true},
		{"formatted", "(555) 123-4567", true},
		{"international", "+1 555 123 4567", true},
		{"fifteen digits", "555123456789012", true},
		{"sixteen digits", "5551234567890123", false},
		{"letters only", "call-me-maybe", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Signup(SignupInput{Name: "Jane", Email: "a@b.co", Password: "Passw0rd", Phone: tt.input})
			_, violated := v["phone"]
			if violated == tt.wantValid {
				t.Errorf("phone %q: violation=%v, wantValid=%v", tt.input, violated, tt.wantValid)
			}
		})
	}
}

func TestSignup_PasswordRules(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantValid bool
	}{
		{"empty", "", false},
		{"too short", "Pw0rd", false},
		{"no uppercase", "passw0rd", false},
		{"no lowercase", "PASSW0RD", false},
		{"no digit", "Password", false},
		{"all three classes", "Passw0rd", true},
		{"classes in any order", "0passWORD", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Signup(SignupInput{Name: "Jane", Email: "a@b.co", Password: tt.input})
			_, violated := v["password"]
			if violated == tt.wantValid {
				t.Errorf("password %q: violation=%v, wantValid=%v", tt.input, violated, tt.wantValid)
			}
		})
	}
}
