// Package common defines shared sentinel errors and small helpers used across
// the interviewdesk client layers. Callers should use errors.Is to match the
// error values.
package common

import "errors"

var (
	// Lookup errors.
	ErrorNotFound = errors.New("not found")

	// Credential errors.
	ErrorUnauthorized = errors.New("unauthorized")

	// Uniqueness errors (e.g. email already registered).
	ErrorConflict = errors.New("conflict")

	// Validation errors.
	ErrorInvalidInput = errors.New("invalid input")

	// Storage or other unexpected failures.
	ErrorInternal = errors.New("internal error")
)
