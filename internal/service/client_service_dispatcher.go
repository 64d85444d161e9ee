// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-journal/internal/adapter"
	"github.com/MKhiriev/go-journal/internal/app"
	"github.com/MKhiriev/go-journal/internal/logger"
	"github.com/MKhiriev/go-journal/models"
)

type requestDispatcher struct {
	adapter  adapter.ServerAdapter
	status   ConnectivityStatus
	handlers map[models.Resource]OfflineHandler

	logger *logger.Logger
}

// NewRequestDispatcher builds a dispatcher that falls back to handlers, keyed
// by resource family, when the server is unreachable.
func NewRequestDispatcher(
	serverAdapter adapter.ServerAdapter,
	status ConnectivityStatus,
	handlers map[models.Resource]OfflineHandler,
	logger *logger.Logger,
) RequestDispatcher {
	return &requestDispatcher{
		adapter:  serverAdapter,
		status:   status,
		handlers: handlers,
		logger:   logger,
	}
}

func (d *requestDispatcher) Dispatch(ctx context.Context, req models.Request) (models.RawEnvelope, error) {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	var body []byte
	if req.Body != nil {
		encoded, err := json.Marshal(req.Body)
		if err != nil {
			d.logger.Err(err).Str("func", "requestDispatcher.Dispatch").Msg("request body cannot be encoded")
			return models.Fail[json.RawMessage](app.MsgInvalidRequestBody), fmt.Errorf("%w: %w", ErrInvalidRequestBody, err)
		}
		body = encoded
	}

	path := req.Endpoint.Path()
	envelope, err := d.adapter.Do(ctx, method, path, body)
	if err == nil {
		return envelope, nil
	}

	// the caller gave up; local storage must not answer for it
	if ctxErr := ctx.Err(); ctxErr != nil {
		if !errors.Is(err, ctxErr) {
			err = fmt.Errorf("%w: %w", ctxErr, err)
		}
		return models.Fail[json.RawMessage](err.Error()), err
	}

	if errors.Is(err, adapter.ErrServerUnreachable) || !d.status.IsOnline() {
		d.logger.Info().
			Str("func", "requestDispatcher.Dispatch").
			Str("method", method).
			Str("path", path).
			Msg("server unavailable, using local storage")
		return d.fallback(ctx, method, req.Endpoint, body), nil
	}

	d.logger.Err(err).
		Str("func", "requestDispatcher.Dispatch").
		Str("method", method).
		Str("path", path).
		Msg("server request failed")

	envelope.Success = false
	envelope.Data = nil
	if envelope.Message == "" {
		envelope.Message = err.Error()
	}
	return envelope, err
}

func (d *requestDispatcher) fallback(ctx context.Context, method string, endpoint models.Endpoint, body []byte) models.RawEnvelope {
	handler, ok := d.handlers[endpoint.Resource]
	if !endpoint.Resource.IsFamily() || !ok {
		return models.Fail[json.RawMessage](app.MsgServerUnreachable)
	}

	return handler.Handle(ctx, method, endpoint, body)
}
