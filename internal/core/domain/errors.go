package domain

import (
	"errors"
	"strings"
)

var (
	ErrUserExists         = errors.New("User already exists")
	ErrUserNotFound       = errors.New("User not found")
	ErrInvalidCredentials = errors.New("Invalid Credentials")
	ErrInvalidToken       = errors.New("Token is not valid")

	ErrNoProfile          = errors.New("There is no profile for this user")
	ErrProfileNotFound    = errors.New("Profile not found")
	ErrProfileExists      = errors.New("profile already exists")
	ErrExperienceNotFound = errors.New("Experience not found")
	ErrEducationNotFound  = errors.New("Education not found")

	ErrPostNotFound    = errors.New("Post not found")
	ErrCommentNotFound = errors.New("Comment does not exist")
	ErrAlreadyLiked    = errors.New("Post already liked")
	ErrNotLiked        = errors.New("Post has not yet liked")

	// ErrNotAuthorized is returned when an authenticated user acts on
	// something owned by another user.
	ErrNotAuthorized = errors.New("User not authorized")

	ErrGitHubProfileNotFound = errors.New("No Github profile found")
	ErrConcurrentUpdate      = errors.New("resource was modified concurrently, retry the request")
	// ErrRequestInFlight is returned while an earlier request with the same
	// Idempotency-Key has not finished.
	ErrRequestInFlight = errors.New("A request with this Idempotency-Key is already in progress")

	ErrValidation = errors.New("validation failed")
)

// FieldError describes one rejected input field.
type FieldError struct {
	Field   string `json:"param,omitempty"`
	Message string `json:"msg"`
}

// ValidationError aggregates field errors. errors.Is(err, ErrValidation)
// holds for every *ValidationError.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return strings.Join(msgs, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// Add appends a field error.
func (e *ValidationError) Add(field, msg string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: msg})
}

// OrNil returns e when it holds at least one field error.
func (e *ValidationError) OrNil() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e
}

// NewValidationError builds a single-field validation error.
func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: msg}}}
}
