// Package common defines shared constants and sentinel errors used across
// client and server layers of the auth service. Callers should use errors.Is
// to match these values; errors may be wrapped with additional detail.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound      = errors.New("not found")
	ErrUsernameTaken = errors.New("username already exists")

	// Validation errors (malformed or policy-violating input).
	ErrValidation = errors.New("validation failed")

	// Credential errors. Unknown username and wrong password deliberately
	// share this single value so callers cannot probe which usernames exist.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// Token errors. ErrInvalidToken covers bad signature, malformed input
	// and expiry alike.
	ErrMissingToken = errors.New("authentication token required")
	ErrInvalidToken = errors.New("invalid authentication token")

	// Generic/internal flow control.
	ErrInternal = errors.New("internal error")
)
