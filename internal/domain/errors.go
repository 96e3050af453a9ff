package domain

import "errors"

// Sentinel errors shared across managers. Handlers map these to HTTP status
// codes; services wrap them with entity context via fmt.Errorf and %w.
var (
	ErrNotFound          = errors.New("not found")
	ErrDuplicateUsername = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionNotFound   = errors.New("session not found")
	ErrSessionInvalid    = errors.New("session invalid or expired")
	ErrInvalidTransition = errors.New("invalid status transition")
)
