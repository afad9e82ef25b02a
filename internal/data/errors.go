package data

import "errors"

// Shared sentinel errors for data-layer repositories.
var (
	ErrInvalidID       = errors.New("id must be positive")
	ErrInvalidStatus   = errors.New("unsupported status")
	ErrMissingToken    = errors.New("login response did not contain a token")
	ErrMissingUpload   = errors.New("banner upload has no content")
	ErrUnexpectedShape = errors.New("unexpected response shape")
)
