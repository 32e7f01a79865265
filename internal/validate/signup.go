// Package validate holds the local signup form rules.
//
// These rules run on the client before any network call — rejecting an
// obviously bad form without a round trip — and again on the server, which
// stays the authority. Keeping them in one package guarantees the two sides
// can never drift apart.
package validate

import (
	"regexp"
	"strings"
	"unicode"
)

// emailShape is deliberately loose: something before an @, something after,
// and at least one dot in the domain. Real address validation is the mail
// system's job — the only emails this rule rejects are ones that cannot
// possibly be deliverable.
var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// SignupInput is the raw form as the user typed it. No trimming or
// normalization has happened yet — the rules decide what whitespace means
// per field.
type SignupInput struct {
	Name            string
	Email           string
	Password        string
	Phone           string // optional
	ConfirmPassword string // optional; checked only when non-empty
}

// Signup evaluates every rule against the input and returns a map of field
// name to violation message. An empty map means the input is valid.
//
// ALL RULES, EVERY TIME:
// The rules are independent and none short-circuits the others, so the
// caller can show the user every problem at once instead of drip-feeding
// one error per submit. The result is deterministic and the function does
// no I/O.
func Signup(in SignupInput) map[string]string {
	violations := make(map[string]string)

	// Name: required, at least 2 characters after trimming.
	name := strings.TrimSpace(in.Name)
	if name == "" {
		violations["name"] = "Name is required"
	} else if len(name) < 2 {
		violations["name"] = "Name must be at least 2 characters"
	}

	// Email: required, must look like local@domain.tld.
	if in.Email == "" {
		violations["email"] = "Email is required"
	} else if !emailShape.MatchString(in.Email) {
		violations["email"] = "Please enter a valid email address"
	}

	// Phone: optional. When given, strip every non-digit (so "(555) 123-4567"
	// is fine) and require 10-15 digits — the E.164 length range.
	if in.Phone != "" {
		digits := countDigits(in.Phone)
		if digits < 10 || digits > 15 {
			violations["phone"] = "Please enter a valid 10-15 digit phone number"
		}
	}

	// Password: required, 8+ chars, and at least one lowercase letter, one
	// uppercase letter, and one digit — in any order.
	if in.Password == "" {
		violations["password"] = "Password is required"
	} else if len(in.Password) < 8 {
		violations["password"] = "Password must be at least 8 characters"
	} else if !hasRequiredClasses(in.Password) {
		violations["password"] = "Password must contain uppercase, lowercase, and a number"
	}

	// Confirm-password: only checked when the caller supplied one. API
	// callers may omit it entirely.
	if in.ConfirmPassword != "" && in.ConfirmPassword != in.Password {
		violations["confirmPassword"] = "Passwords do not match"
	}

	return violations
}

// countDigits returns how many decimal digits the string contains,
// ignoring everything else (spaces, dashes, parentheses, a leading +).
func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}

// hasRequiredClasses reports whether s contains at least one lowercase
// letter, one uppercase letter, and one digit.
func hasRequiredClasses(s string) bool {
	var lower, upper, digit bool
	for _, r := range s {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return lower && upper && digit
}
