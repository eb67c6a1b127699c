package common

import "errors"

var (
	// ErrInvalidID is returned when an identifier is not a valid native id.
	ErrInvalidID = errors.New("invalid id")

	// ErrInvalidURI is returned when a connection URI has no scheme separator.
	ErrInvalidURI = errors.New("invalid connection uri")

	ErrInvalidOptions = errors.New("invalid options")

	// ErrConnection covers URI parsing, client construction and the liveness check.
	ErrConnection = errors.New("connection failed")
)
