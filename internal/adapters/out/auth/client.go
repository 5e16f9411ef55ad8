// Package auth provides the HTTP client for the external authentication
// service. The service wraps every response in a {success, message, data}
// envelope; tokens are bearer credentials the caller persists and attaches
// to subsequent requests.
package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"courierdesk/internal/pkg/errs"
)

// ErrNotAuthenticated is returned when the service rejects the credentials
// or the bearer token.
var ErrNotAuthenticated = errors.New("not authenticated")

// User is the authentication service's user payload.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Session is a logged-in user plus the bearer token to attach to requests.
type Session struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// envelope is the service's uniform response wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Client calls the authentication service's REST API under /api/auth.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates an authentication service client.
func NewClient(baseURL string, httpClient *http.Client) (*Client, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}
	if httpClient == nil {
		return nil, errs.NewValueIsRequiredError("httpClient")
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
	}, nil
}

// Login exchanges credentials for a session.
func (c *Client) Login(ctx context.Context, email string, password string) (Session, error) {
	var session Session
	body := map[string]string{"email": email, "password": password}
	err := c.do(ctx, http.MethodPost, "/api/auth/login", "", body, &session)
	return session, err
}

// Register creates a new account and returns its session.
func (c *Client) Register(ctx context.Context, name string, email string, password string) (Session, error) {
	var session Session
	body := map[string]string{"name": name, "email": email, "password": password}
	err := c.do(ctx, http.MethodPost, "/api/auth/register", "", body, &session)
	return session, err
}

// Logout invalidates the token server-side.
func (c *Client) Logout(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodPost, "/api/auth/logout", token, nil, nil)
}

// GetProfile retrieves the profile behind the token.
func (c *Client) GetProfile(ctx context.Context, token string) (User, error) {
	var user User
	err := c.do(ctx, http.MethodGet, "/api/auth/profile", token, nil, &user)
	return user, err
}

// UpdateProfile updates the profile behind the token.
func (c *Client) UpdateProfile(ctx context.Context, token string, user User) (User, error) {
	var updated User
	err := c.do(ctx, http.MethodPut, "/api/auth/profile", token, user, &updated)
	return updated, err
}

// ForgotPassword starts a password reset for the email.
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return c.do(ctx, http.MethodPost, "/api/auth/forgot-password", "", body, nil)
}

// ResetPassword completes a password reset with the emailed reset token.
func (c *Client) ResetPassword(ctx context.Context, resetToken string, password string) error {
	body := map[string]string{"token": resetToken, "password": password}
	return c.do(ctx, http.MethodPost, "/api/auth/reset-password", "", body, nil)
}

// VerifyToken reports whether the bearer token is still valid and returns
// the user it belongs to.
func (c *Client) VerifyToken(ctx context.Context, token string) (User, error) {
	var user User
	err := c.do(ctx, http.MethodGet, "/api/auth/verify-token", token, nil, &user)
	return user, err
}

func (c *Client) do(ctx context.Context, method string, path string, token string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return ErrNotAuthenticated
	}

	var env envelope
	if err = json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("auth service: %s %s returned %d with unreadable body: %w",
			method, path, resp.StatusCode, err)
	}
	if !env.Success {
		return fmt.Errorf("auth service: %s %s failed: %s", method, path, env.Message)
	}

	if out == nil {
		return nil
	}
	return json.Unmarshal(env.Data, out)
}
