package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/sakif/notekeeper/internal/apperror"
	"github.com/sakif/notekeeper/internal/auth"
	"github.com/sakif/notekeeper/internal/model"
	"github.com/sakif/notekeeper/internal/service"
)

// AuthHandler exposes the authentication endpoints.
//
//	POST /auth/signup  → register, returns {user, token}
//	POST /auth/login   → authenticate, returns {user, token}
//	GET  /auth/profile → current user's profile (requires bearer token)
//
// The handler's whole job is HTTP translation: decode the body, call the
// service, pick a status, write the envelope. Business rules live one
// layer down.
type AuthHandler struct {
	auth   *service.AuthService
	logger *slog.Logger
}

// NewAuthHandler creates an AuthHandler. Dependencies are injected; the
// handler knows nothing about how they were built.
func NewAuthHandler(authSvc *service.AuthService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{auth: authSvc, logger: logger}
}

// signupRequest is the expected body for POST /auth/signup.
// confirmPassword is accepted (browser frontends send it) but ignored here —
// equality with password is a client-side rule; the server only ever sees
// and stores one password.
type signupRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	Phone           string `json:"phone"`
	ConfirmPassword string `json:"confirmPassword"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// authPayload is the data field for signup/login responses.
type authPayload struct {
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

// HandleSignup registers a new account.
//
// HTTP: POST /auth/signup
func (h *AuthHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid signup JSON", slog.String("error", err.Error()))
		writeError(w, apperror.ValidationFailed("body", "invalid JSON body"))
		return
	}

	result, err := h.auth.Signup(r.Context(), req.Name, req.Email, req.Password, req.Phone)
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusCreated, "Account created successfully", authPayload{
		User:  result.User,
		Token: result.Token,
	})
}

// HandleLogin authenticates an existing account.
//
// HTTP: POST /auth/login
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid login JSON", slog.String("error", err.Error()))
		writeError(w, apperror.ValidationFailed("body", "invalid JSON body"))
		return
	}

	result, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusOK, "Logged in successfully", authPayload{
		User:  result.User,
		Token: result.Token,
	})
}

// HandleProfile returns the authenticated user's profile.
//
// HTTP: GET /auth/profile
// Auth: required — auth.Middleware has already validated the token and put
// the userID in the context before this runs.
func (h *AuthHandler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		// Unreachable on a protected route, but don't panic if the
		// route table ever changes.
		writeError(w, apperror.Unauthorized("authentication required"))
		return
	}

	user, err := h.auth.Profile(r.Context(), userID)
	if err != nil {
		h.logger.Error("profile lookup failed", slog.String("userID", userID))
		writeError(w, err)
		return
	}

	writeData(w, http.StatusOK, "", user)
}
