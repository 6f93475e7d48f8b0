package model

import "errors"

// Common errors used across the application
var (
	// User errors
	ErrUserNotFound = errors.New("user not found")
	ErrEmailExists  = errors.New("a user with that email already exists")

	// Profile errors
	ErrProfileNotFound = errors.New("profile not found")

	// Game errors
	ErrGameNotFound       = errors.New("game not found")
	ErrRegistrationClosed = errors.New("registration for this game is closed")
	ErrInvalidGameName    = errors.New("game name must be non-empty and at most 20 characters")
	ErrEmptyFinalTeam     = errors.New("final team must not be empty")

	// Authorization errors
	ErrNotAdmin = errors.New("user is not an administrator")
)
