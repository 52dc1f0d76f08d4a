// Package client is a small HTTP client for the auth service API, used by
// the command-line client.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrUnavailable reports that the server could not be reached at all, as
// opposed to the server answering with a failure.
var ErrUnavailable = errors.New("server unavailable")

// Account mirrors the sanitized user object in API responses.
type Account struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// AuthResult is the payload of successful register/login calls.
type AuthResult struct {
	User  Account `json:"user"`
	Token string  `json:"token"`
}

// envelope is the server's response wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Register creates an account and returns the sanitized user plus its first
// bearer token.
func (c *Client) Register(ctx context.Context, username, password, role string) (*AuthResult, error) {
	body := map[string]string{"username": username, "password": password}
	if role != "" {
		body["role"] = role
	}

	var out AuthResult
	if err := c.call(ctx, http.MethodPost, "/api/auth/register", body, "", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login verifies credentials and returns a fresh bearer token.
func (c *Client) Login(ctx context.Context, username, password string) (*AuthResult, error) {
	body := map[string]string{"username": username, "password": password}

	var out AuthResult
	if err := c.call(ctx, http.MethodPost, "/api/auth/login", body, "", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Profile fetches the caller's account using the given token.
func (c *Client) Profile(ctx context.Context, token string) (*Account, error) {
	var out struct {
		User Account `json:"user"`
	}
	if err := c.call(ctx, http.MethodGet, "/api/auth/profile", nil, token, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

// Users lists all registered accounts (requires a valid token).
func (c *Client) Users(ctx context.Context, token string) ([]Account, error) {
	var out struct {
		Users []Account `json:"users"`
	}
	if err := c.call(ctx, http.MethodGet, "/api/auth/getAllUsers", nil, token, &out); err != nil {
		return nil, err
	}
	return out.Users, nil
}

func (c *Client) call(ctx context.Context, method, path string, body any, token string, out any) error {
	var reader *bytes.Buffer
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewBuffer(encoded)
	} else {
		reader = &bytes.Buffer{}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}

	if !env.Success {
		return fmt.Errorf("server: %s", env.Message)
	}
	if out != nil && env.Data != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decoding response data: %w", err)
		}
	}
	return nil
}
