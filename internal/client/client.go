// Package client implements the HTTP client for the notekeeper API.
//
// Every operation goes through one request pipeline:
//
//  1. attach the stored session token as a bearer credential (if present)
//  2. send JSON to the fixed base URL
//  3. on success, unwrap the {success, message, data} envelope
//  4. on failure, normalize to *APIError{Message, Status} — and if the
//     status is 401, clear the session store before returning
//
// The pipeline lives in exactly two places — the bearerTransport
// RoundTripper (step 1) and the do method (steps 2-4) — so no operation
// can forget a step or do it differently.
//
// The session store is injected, never global: whoever constructs the
// Client decides where the token lives, and tests hand in a throwaway.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/sakif/notekeeper/internal/model"
	"github.com/sakif/notekeeper/internal/session"
)

// Client talks to the notekeeper API. Construct with New; the zero value
// has no base URL or session and will not work.
//
// A Client is safe for concurrent use: operations only read its fields,
// and the session store is the lone piece of mutable state (written on
// login/signup/logout and on a 401).
type Client struct {
	baseURL string
	http    *http.Client
	session *session.Store
}

// New creates a Client for the API at baseURL, storing and reading the
// session token through store.
//
// No timeout is set here — callers control deadlines per-operation through
// context, and the transport's defaults apply otherwise.
func New(baseURL string, store *session.Store) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Transport: &bearerTransport{
				session: store,
				next:    http.DefaultTransport,
			},
		},
		session: store,
	}
}

// bearerTransport is the request interceptor: it attaches the stored token
// to every outgoing request, uniformly, no matter which operation built it.
//
// WHY A ROUNDTRIPPER?
// http.RoundTripper is Go's middleware seam for HTTP clients — the same
// role axios request interceptors play in a browser app. Putting the
// Authorization header here means `do` never thinks about tokens, and any
// future request (new endpoint, streaming download, ...) gets it for free.
type bearerTransport struct {
	session *session.Store
	next    http.RoundTripper
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if token, ok := t.session.Token(); ok {
		// Clone before modifying — RoundTrippers must not mutate the
		// caller's request.
		req = req.Clone(req.Context())
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return t.next.RoundTrip(req)
}

// envelope mirrors the server's uniform response shape. Data stays raw
// until the caller says what type it holds.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Count   int             `json:"count"`
	Data    json.RawMessage `json:"data"`
}

// do executes one API call end to end: encode the body, send, classify the
// response, decode the payload into out (which may be nil for calls whose
// payload the caller doesn't need).
//
// FAILURE NORMALIZATION:
// Every way a call can fail comes back as *APIError:
//   - transport failure (connection refused, DNS, ...) → the transport's
//     message, status 500 (there is no response to take a status from)
//   - non-2xx with an envelope → the envelope's message and the HTTP status
//   - non-2xx without a parseable body → generic message, the HTTP status
//
// And the one stateful rule: a 401 clears the session store before the
// error is returned, whoever triggered it. The next operation starts
// unauthenticated instead of replaying a dead token forever.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("client: encoding request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("client: building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		// No response at all — classify as a server error (500) with the
		// transport's own message.
		return &APIError{Message: err.Error(), Status: http.StatusInternalServerError}
	}
	defer resp.Body.Close()

	var env envelope
	decodeErr := json.NewDecoder(resp.Body).Decode(&env)

	if resp.StatusCode >= 400 || (decodeErr == nil && !env.Success) {
		message := env.Message
		if message == "" {
			message = "Request failed"
		}
		apiErr := &APIError{Message: message, Status: resp.StatusCode}

		if resp.StatusCode == http.StatusUnauthorized {
			// Session is dead. Drop the token regardless of which
			// operation tripped over it. A failed removal rides along
			// with the APIError instead of vanishing — the caller needs
			// to know the dead token is still on disk.
			if clearErr := c.session.Clear(); clearErr != nil {
				return errors.Join(apiErr, clearErr)
			}
		}

		return apiErr
	}

	if decodeErr != nil {
		return fmt.Errorf("client: decoding response: %w", decodeErr)
	}

	if out != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("client: decoding response data: %w", err)
		}
	}

	return nil
}

// AuthResult is the payload of signup and login: the account record plus
// its freshly issued session token.
type AuthResult struct {
	User  model.User `json:"user"`
	Token string     `json:"token"`
}

// SignupParams carries the signup form. Validate it with validate.Signup
// before calling — the client itself sends whatever it's given and lets
// the server be the authority.
type SignupParams struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone,omitempty"`
}

// Signup registers a new account. On success the returned token is saved
// to the session store, so the caller is immediately logged in.
func (c *Client) Signup(ctx context.Context, params SignupParams) (*AuthResult, error) {
	var result AuthResult
	if err := c.do(ctx, http.MethodPost, "/auth/signup", params, &result); err != nil {
		return nil, err
	}

	if result.Token != "" {
		if err := c.session.Save(result.Token); err != nil {
			return nil, err
		}
	}

	return &result, nil
}

// Login authenticates with email and password. On success the returned
// token is saved to the session store, replacing any previous session.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	body := map[string]string{"email": email, "password": password}

	var result AuthResult
	if err := c.do(ctx, http.MethodPost, "/auth/login", body, &result); err != nil {
		return nil, err
	}

	if result.Token != "" {
		if err := c.session.Save(result.Token); err != nil {
			return nil, err
		}
	}

	return &result, nil
}

// Logout ends the session by clearing the stored token. Purely local — the
// server keeps no session state to tear down, so no network call is made.
func (c *Client) Logout() error {
	return c.session.Clear()
}

// Profile fetches the authenticated user's account record.
func (c *Client) Profile(ctx context.Context) (*model.User, error) {
	var user model.User
	if err := c.do(ctx, http.MethodGet, "/auth/profile", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Notes fetches the user's note collection in the server's order (newest
// first).
func (c *Client) Notes(ctx context.Context) ([]model.Note, error) {
	var notes []model.Note
	if err := c.do(ctx, http.MethodGet, "/note/notes", nil, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// CreateNote creates a note. Title is required (the server rejects an
// empty one); description may be empty. The returned note carries the
// server-assigned ID and timestamp.
func (c *Client) CreateNote(ctx context.Context, title, description string) (*model.Note, error) {
	body := map[string]string{"title": title, "description": description}

	var note model.Note
	if err := c.do(ctx, http.MethodPost, "/note/notes", body, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

// UpdateNote replaces the note's title and description. ID and creation
// timestamp never change.
func (c *Client) UpdateNote(ctx context.Context, id, title, description string) (*model.Note, error) {
	body := map[string]string{"title": title, "description": description}

	var note model.Note
	if err := c.do(ctx, http.MethodPut, "/note/notes/"+url.PathEscape(id), body, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

// DeleteNote deletes a note and returns its last-known representation —
// what the note looked like just before it went away.
func (c *Client) DeleteNote(ctx context.Context, id string) (*model.Note, error) {
	var note model.Note
	if err := c.do(ctx, http.MethodDelete, "/note/notes/"+url.PathEscape(id), nil, &note); err != nil {
		return nil, err
	}
	return &note, nil
}
