package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/oldthorntonians/matchday/internal/model"
	"github.com/oldthorntonians/matchday/internal/services/auth"
)

// APIError is a single client-facing error message
type APIError struct {
	Code string `json:"code"`
	Msg  string `json:"msg"`
}

// ErrorResponse is the failure envelope: a success flag, the HTTP status
// and the list of error messages.
type ErrorResponse struct {
	Success bool       `json:"success"`
	Status  int        `json:"status"`
	Errors  []APIError `json:"errors"`
}

// Common error codes
const (
	CodeValidationFailed   = "VALIDATION_FAILED"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeNotAdmin           = "NOT_ADMIN"
	CodeUserNotFound       = "USER_NOT_FOUND"
	CodeProfileNotFound    = "PROFILE_NOT_FOUND"
	CodeGameNotFound       = "GAME_NOT_FOUND"
	CodeRegistrationClosed = "REGISTRATION_CLOSED"
	CodeEmailExists        = "EMAIL_EXISTS"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeInternalError      = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Msg
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		Success: false,
		Status:  he.status,
		Errors:  []APIError{he.apiError},
	})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map domain errors
	switch {
	case errors.Is(err, model.ErrUserNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeUserNotFound, "User not found"}}
	case errors.Is(err, model.ErrProfileNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeProfileNotFound, "Profile not found"}}
	case errors.Is(err, model.ErrGameNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeGameNotFound, "Game not found"}}
	case errors.Is(err, model.ErrRegistrationClosed):
		return &httpError{http.StatusConflict, APIError{CodeRegistrationClosed, "Registration for this game is now closed"}}
	case errors.Is(err, model.ErrNotAdmin):
		return &httpError{http.StatusForbidden, APIError{CodeNotAdmin, "User not authorised"}}
	case errors.Is(err, model.ErrEmailExists):
		return &httpError{http.StatusConflict, APIError{CodeEmailExists, "A user with that email already exists"}}
	case errors.Is(err, model.ErrInvalidGameName):
		return &httpError{http.StatusBadRequest, APIError{CodeValidationFailed, "Game name must be non-empty and at most 20 characters"}}
	case errors.Is(err, model.ErrEmptyFinalTeam):
		return &httpError{http.StatusBadRequest, APIError{CodeValidationFailed, "finalTeam must not be empty"}}

	// Map auth errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		return &httpError{http.StatusUnauthorized, APIError{CodeInvalidCredentials, "Invalid email or password"}}
	case errors.Is(err, auth.ErrInvalidToken):
		return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Token is not valid"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewValidationError creates a validation error rejected before the engine
func NewValidationError(msg string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeValidationFailed, msg}}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Authentication required"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
