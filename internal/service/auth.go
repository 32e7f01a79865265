// Package service contains the business logic layer of the application.
//
// THE THREE-LAYER ARCHITECTURE:
//
//	Handler (HTTP layer)     → parses requests, writes the response envelope
//	Service (business layer) → validates, enforces rules, orchestrates
//	Repository (data layer)  → reads/writes the database
//
// Services accept primitives and return domain errors — never *http.Request,
// never status codes. That keeps them callable from the HTTP handlers, a CLI,
// or a test with equal ease, and testable with plain function calls.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sakif/notekeeper/internal/apperror"
	"github.com/sakif/notekeeper/internal/auth"
	"github.com/sakif/notekeeper/internal/model"
	"github.com/sakif/notekeeper/internal/repository"
	"github.com/sakif/notekeeper/internal/validate"
)

// AuthService handles signup, login, and profile lookups.
//
// DEPENDENCIES (injected via NewAuthService):
//   - users     repository.UserRepository → read/write user records
//   - tokens    *auth.TokenService        → issue JWTs
//   - passwords *auth.PasswordService     → bcrypt hashing/verification
//   - logger    *slog.Logger              → structured logging
type AuthService struct {
	users     repository.UserRepository
	tokens    *auth.TokenService
	passwords *auth.PasswordService
	logger    *slog.Logger
}

// NewAuthService creates an AuthService with all required dependencies.
// Called from server.go when wiring the dependency graph.
func NewAuthService(
	users repository.UserRepository,
	tokens *auth.TokenService,
	passwords *auth.PasswordService,
	logger *slog.Logger,
) *AuthService {
	return &AuthService{
		users:     users,
		tokens:    tokens,
		passwords: passwords,
		logger:    logger,
	}
}

// AuthResult bundles the user record and the issued token, so the handler
// can build the {user, token} response payload in one step.
type AuthResult struct {
	User  *model.User
	Token string
}

// Signup registers a new account and issues its first token.
//
// The server re-runs the same field rules the client checks locally
// (validate.Signup): the client-side check only exists to save a round
// trip, the server remains the authority. Only the first violation is
// reported here — the client already showed the user the full list.
func (s *AuthService) Signup(ctx context.Context, name, email, password, phone string) (*AuthResult, error) {
	// Normalize before validating: stray whitespace and letter case are
	// presentation noise, not validation failures. "  Jane@Example.COM "
	// must sign up as jane@example.com, not bounce off the email regexp.
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	phone = strings.TrimSpace(phone)

	violations := validate.Signup(validate.SignupInput{
		Name:     name,
		Email:    email,
		Password: password,
		Phone:    phone,
	})
	for _, field := range []string{"name", "email", "password", "phone"} {
		if msg, ok := violations[field]; ok {
			return nil, apperror.ValidationFailed(field, msg)
		}
	}

	hash, err := s.passwords.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("service/auth: hashing password: %w", err)
	}

	user := &model.User{
		Name:         name,
		Email:        email,
		Phone:        phone,
		PasswordHash: hash,
	}

	// CreateUser fills in ID and CreatedAt; a duplicate email comes back
	// as apperror.ErrConflict and propagates to the handler as 409.
	if err := s.users.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user registered",
		slog.String("userID", user.ID),
		slog.String("email", user.Email),
	)

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, fmt.Errorf("service/auth: generating token for user %s: %w", user.ID, err)
	}

	return &AuthResult{User: user, Token: token}, nil
}

// Login verifies credentials and issues a fresh token.
//
// UNIFORM FAILURE:
// "No such account" and "wrong password" both come back as the same
// Unauthorized error with the same message. Distinguishing them would let
// an attacker enumerate which emails have accounts.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, apperror.ValidationFailed("email", "email and password are required")
	}

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.Unauthorized("invalid email or password")
		}
		return nil, fmt.Errorf("service/auth: looking up %s: %w", email, err)
	}

	if err := s.passwords.Verify(user.PasswordHash, password); err != nil {
		s.logger.Warn("failed login attempt", slog.String("email", email))
		return nil, apperror.Unauthorized("invalid email or password")
	}

	s.logger.Info("user logged in", slog.String("userID", user.ID))

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, fmt.Errorf("service/auth: generating token for user %s: %w", user.ID, err)
	}

	return &AuthResult{User: user, Token: token}, nil
}

// Profile returns the account record for the given internal user ID.
// Used by the /auth/profile handler after the middleware has validated the
// bearer token and extracted the userID from its subject claim.
func (s *AuthService) Profile(ctx context.Context, userID string) (*model.User, error) {
	if userID == "" {
		return nil, fmt.Errorf("service/auth: user ID must not be empty")
	}

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return user, nil
}
