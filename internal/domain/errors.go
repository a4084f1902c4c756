package domain

import "errors"

var (
	// ErrNotFound covers a product, history entry, brand or location id that
	// does not resolve. Kept distinct from validation and store failures so
	// handlers can map it to 404.
	ErrNotFound = errors.New("not found")

	// ErrValidation marks a malformed or missing required field.
	ErrValidation = errors.New("invalid input")
)
