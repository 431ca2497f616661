// Package common defines shared constants and sentinel errors used across
// Courtside client components. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Auth errors. ErrBadCredentials means the login attempt itself was
	// rejected; ErrSessionExpired means a previously valid session is no
	// longer accepted. The two must never be conflated: a failed login
	// attempt is not a reason to tear the current session down.
	ErrBadCredentials = errors.New("invalid credentials")
	ErrSessionExpired = errors.New("session expired")

	// ErrTokenInvalid marks a malformed or undecodable token. The session
	// layer treats it the same as an expired session.
	ErrTokenInvalid = errors.New("invalid token")

	// Transport-level errors.
	ErrUnavailable = errors.New("server unavailable")
)
