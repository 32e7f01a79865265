// Package auth — password hashing utilities.
//
// WHY BCRYPT?
// bcrypt is a password hashing function designed to be slow, and that
// slowness is the security feature: it makes offline brute-force expensive.
// It also generates and embeds a random salt automatically, so two users
// with the same password get different hashes and no separate salt column
// is needed.
//
// NEVER store passwords in plain text or with fast hashes (MD5, SHA-256) —
// those fall to GPU rigs in minutes. bcrypt at cost 12 takes ~250ms per
// attempt: negligible for a login, brutal for an attacker.
package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// defaultCost is the bcrypt work factor.
//
// Rule of thumb: pick the cost so hashing takes ~200-300ms on production
// hardware. Too low → cheap to crack. Too high → signups and logins crawl
// and the server burns all its CPU on bcrypt under load.
const defaultCost = 12

// PasswordService provides bcrypt hashing and verification.
//
// It's a struct (not free functions) so the cost can be injected in tests —
// cost 4 makes each hash take microseconds instead of a quarter second,
// without changing the logic under test.
type PasswordService struct {
	cost int
}

// NewPasswordService creates a PasswordService with the default cost (12).
func NewPasswordService() *PasswordService {
	return &PasswordService{cost: defaultCost}
}

// NewPasswordServiceForTest creates a PasswordService with a caller-chosen
// (low) cost. Do NOT use in production — bcrypt's minimum cost of 4 is far
// too weak for real passwords.
func NewPasswordServiceForTest(cost int) *PasswordService {
	return &PasswordService{cost: cost}
}

// Hash hashes the given plaintext password with bcrypt.
//
// The output is self-contained ($2a$12$<salt><hash>) and includes the salt
// and cost — store it directly; CompareHashAndPassword knows how to decode it.
//
// Returns an error for plaintexts over 72 bytes: bcrypt silently truncates
// longer inputs, and we'd rather reject than mislead the user about how much
// of their password actually counts.
func (p *PasswordService) Hash(plaintext string) (string, error) {
	if len(plaintext) > 72 {
		return "", fmt.Errorf("auth: password must be 72 bytes or fewer")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), p.cost)
	if err != nil {
		return "", fmt.Errorf("auth: hashing password: %w", err)
	}

	return string(hashed), nil
}

// Verify checks whether a plaintext password matches a stored bcrypt hash.
// Returns nil on match. The comparison is constant-time internally, so
// response timing leaks nothing about how close a guess was.
func (p *PasswordService) Verify(hash, plaintext string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return fmt.Errorf("auth: invalid password")
		}
		return fmt.Errorf("auth: comparing password hash: %w", err)
	}
	return nil
}
