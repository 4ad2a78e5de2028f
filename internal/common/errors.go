// Package common defines shared constants and sentinel errors used across
// client and server layers of the meal planner. Callers should use errors.Is
// to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal      = errors.New("internal error")
	ErrorAlreadyExists = errors.New("already exists")
	ErrorValidation    = errors.New("validation error")

	// ErrorInvalidCredentials is returned for both an unknown email and a
	// wrong password so that login responses cannot be used to enumerate
	// accounts.
	ErrorInvalidCredentials = errors.New("invalid credentials")

	// Auth errors (invalid, malformed or expired token).
	ErrorInvalidToken = errors.New("invalid token")
)
