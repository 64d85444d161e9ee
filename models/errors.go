package models

import "errors"

var (
	// ErrInvalidPriority is returned when a to-do priority is not one of
	// low, medium or high.
	ErrInvalidPriority = errors.New("invalid todo priority")

	// ErrUnknownEndpoint is returned by [ParseEndpoint] for paths outside the
	// journal API.
	ErrUnknownEndpoint = errors.New("unknown endpoint")
)
