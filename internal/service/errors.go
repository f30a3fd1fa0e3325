package service

import (
	"errors"
	"fmt"
)

// Service operations fail with one of three terminal error classes. The
// transport layer maps them to 400, 404 and 409; anything else is an
// infrastructure failure and surfaces as 500.

type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// ErrInvalidCredentials is returned by Login when the username is
// unknown or the password does not match. Both cases collapse into one
// error so the response does not leak which usernames exist.
var ErrInvalidCredentials = errors.New("invalid username or password")

func validationf(format string, a ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, a...)}
}

func notFoundf(format string, a ...any) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf(format, a...)}
}

func conflictf(format string, a ...any) *ConflictError {
	return &ConflictError{Message: fmt.Sprintf(format, a...)}
}
