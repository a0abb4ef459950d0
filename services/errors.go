package services

import "errors"

// Shared service errors, mapped to HTTP statuses in the handlers layer.
var (
	// Lookups that resolved to nothing.
	ErrNotFound       = errors.New("requested resource not found")
	ErrPlayerNotFound = errors.New("player not found")

	// Invalid caller input, surfaced immediately and never retried.
	ErrPlayerNameRequired = errors.New("player name is required")
	ErrInvalidPlayerID    = errors.New("player id must be a positive integer")
	ErrInvalidScope       = errors.New("tournament id must not be negative")

	// Authentication.
	ErrAuthInvalidCredentials = errors.New("invalid email or password")
)
