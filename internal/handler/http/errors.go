// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced while decoding requests. Callers can match against
// them with [errors.Is].
var (
	// ErrInvalidJSON is returned when the request body is not valid JSON for
	// the target type.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidID is returned when the {id} path parameter is not a
	// positive integer.
	ErrInvalidID = errors.New("invalid id path parameter")

	// ErrBodyTooLarge is returned when the request body exceeds the
	// configured limit.
	ErrBodyTooLarge = errors.New("request body too large")

	// ErrInvalidGzip is returned when a body declared as gzip cannot be
	// decompressed.
	ErrInvalidGzip = errors.New("invalid gzip body")
)
