package domain

import "errors"

var (
	// ErrNotFound is returned when a referenced event does not exist.
	ErrNotFound = errors.New("event not found")
	// ErrInvalidInput is returned when a required field is missing or malformed.
	ErrInvalidInput = errors.New("invalid input")
)
