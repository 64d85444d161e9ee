// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer used by the journal client to
// talk to the journal server.
//
// The primary abstraction is [ServerAdapter], which decouples the service layer
// from the underlying protocol. The package ships an HTTP/JSON implementation
// ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go let callers tell a transport failure
// ([ErrServerUnreachable]) from a server that answered with an error status
// ([ErrBadRequest], [ErrNotFound], ...), using [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-journal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the journal
// server.
type ServerAdapter interface {
	// Do sends one API call. path is relative to the API root (for example
	// "/todos/42"); body is an already encoded JSON document or nil.
	//
	// On a 2xx answer it returns the decoded envelope and nil. On a non-2xx
	// answer it returns the decoded envelope (when the body is one) and an
	// error wrapping the status sentinel whose text carries the server
	// message. When the server cannot be reached at all the error wraps
	// [ErrServerUnreachable].
	Do(ctx context.Context, method, path string, body []byte) (models.RawEnvelope, error)

	// Health calls GET /api/health and returns its payload.
	Health(ctx context.Context) (models.Health, error)
}
