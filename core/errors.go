package core

import (
	"errors"
)

// ErrNotFound is a sentinel error for "not found" cases
var ErrNotFound = errors.New("not found")

var (
	// ErrMissingSignature is returned when a delivery carries no x-hub-signature header
	ErrMissingSignature = errors.New("missing request signature")
	// ErrSignatureMismatch is returned when the x-hub-signature header does not match the body
	ErrSignatureMismatch = errors.New("request signature mismatch")
	// ErrMissingField is returned when fetched content lacks a field the relay needs
	ErrMissingField = errors.New("missing required field")
)

// IsNotFoundError checks if an error is a "not found" error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}
