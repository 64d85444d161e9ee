package adapter

import "errors"

var (
	// ErrServerUnreachable wraps every failure that happened before an HTTP
	// response was received: refused connections, DNS errors, timeouts.
	ErrServerUnreachable = errors.New("server unreachable")

	// ErrMalformedResponse is returned when the server answered but the body
	// is not a JSON envelope.
	ErrMalformedResponse = errors.New("malformed server response")

	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedStatus    = errors.New("unexpected status")
)
