// Package common defines shared constants and sentinel errors used across
// docboard components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Credential/directory errors. All of these are expected,
	// user-correctable conditions, not defects; each one is terminal for
	// the invocation (no retries).
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrWeakPassword       = errors.New("password too short")
)
