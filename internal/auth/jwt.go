// Package auth provides JWT token issuance/validation and password hashing
// for the notekeeper API.
//
// AUTHENTICATION FLOW OVERVIEW:
// 1. Client POSTs /auth/signup or /auth/login with credentials
// 2. Server verifies (bcrypt) and issues a signed JWT in the response body
// 3. The client stores the token and sends it back on every call as
//    "Authorization: Bearer <token>"
// 4. Middleware validates the JWT and puts the userID in the request context
//
// WHY JWT?
// JWT is stateless — the server keeps no session table. Everything needed
// (userID, expiry) lives inside the signed token, and the HMAC signature
// guarantees nobody can alter it without the secret key. The flip side:
// logout is purely a client-side act (forget the token); the token itself
// stays valid until it expires.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// issuer identifies tokens minted by this service. Validation rejects
// tokens issued by anything else, even if signed with the same secret.
const issuer = "notekeeper"

// TokenService handles JWT creation and validation.
//
// It holds the HMAC secret and the token lifetime. The same secret must be
// used for both signing and verifying — keep it out of version control and
// rotate it periodically in production.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a TokenService with the given secret and token
// lifetime. The secret should be at least 32 bytes of random data in
// production, e.g. JWT_SECRET=$(openssl rand -hex 32).
func NewTokenService(secret string, ttl time.Duration) (*TokenService, error) {
	if len(secret) < 16 {
		return nil, errors.New("auth: JWT secret must be at least 16 characters")
	}
	if ttl <= 0 {
		return nil, errors.New("auth: token TTL must be positive")
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}, nil
}

// claims is the JWT payload. jwt.RegisteredClaims carries the standard
// fields (Subject, ExpiresAt, IssuedAt, Issuer); we store the internal
// user ID in "sub", the standard claim for token ownership.
type claims struct {
	jwt.RegisteredClaims
}

// Generate creates and signs a new JWT access token for the given userID.
//
// Signing algorithm: HS256 (HMAC-SHA256) — symmetric, fast, and the right
// choice for a single-service deployment where issuer and verifier share
// one secret.
func (s *TokenService) Generate(userID string) (string, error) {
	return s.generate(userID, s.ttl)
}

// GenerateWithDuration creates a token with a custom expiry. Used in tests
// to mint already-expired tokens without sleeping.
func (s *TokenService) GenerateWithDuration(userID string, d time.Duration) (string, error) {
	return s.generate(userID, d)
}

func (s *TokenService) generate(userID string, d time.Duration) (string, error) {
	now := time.Now()

	c := claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(d)),
			Issuer:    issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("auth: signing token: %w", err)
	}

	return signed, nil
}

// Validate parses and verifies a JWT string and returns the userID it
// encodes (the "sub" claim).
//
// VALIDATION CHECKS (performed by the jwt library):
//   - Signature is valid (token wasn't tampered with)
//   - Token is not expired
//   - Issuer matches "notekeeper" (rejects tokens from other apps)
//   - Algorithm is HS256
//
// The jwt.WithValidMethods option matters: without pinning the algorithm,
// an attacker could present a token claiming alg "none" and some parsers
// would wave it through (the classic algorithm-confusion attack).
func (s *TokenService) Validate(tokenStr string) (string, error) {
	token, err := jwt.ParseWithClaims(
		tokenStr,
		&claims{},
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("auth: unexpected signing method: %v", token.Header["alg"])
			}
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", fmt.Errorf("auth: token expired")
		}
		return "", fmt.Errorf("auth: invalid token: %w", err)
	}

	c, ok := token.Claims.(*claims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("auth: invalid token claims")
	}

	if c.Subject == "" {
		return "", fmt.Errorf("auth: token has no subject")
	}

	return c.Subject, nil
}
