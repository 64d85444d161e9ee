package service

import "errors"

var (
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// Client-side errors.
var (
	// ErrInvalidRequestBody is returned by the dispatcher when the request
	// body cannot be encoded as JSON.
	ErrInvalidRequestBody = errors.New("request body cannot be encoded")

	// ErrOffline is returned by operations that need the server while the
	// connectivity monitor reports offline.
	ErrOffline = errors.New("client is offline")

	// ErrUnexpectedResponse is returned by typed client calls when the
	// server answered with success but the payload does not decode.
	ErrUnexpectedResponse = errors.New("unexpected response payload")
)
