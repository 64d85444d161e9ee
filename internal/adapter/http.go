package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-journal/internal/config"
	"github.com/MKhiriev/go-journal/internal/logger"
	"github.com/MKhiriev/go-journal/internal/utils"
	"github.com/MKhiriev/go-journal/models"
)

const apiPrefix = "/api"

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) Do(ctx context.Context, method, path string, body []byte) (models.RawEnvelope, error) {
	log := logger.FromContext(ctx)

	req := h.client.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, apiPrefix+path)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return models.RawEnvelope{}, fmt.Errorf("%s %s: %w", method, path, ctxErr)
		}

		log.Debug().Err(err).Str("func", "httpServerAdapter.Do").Str("path", path).Msg("server is not reachable")
		return models.RawEnvelope{}, fmt.Errorf("%w: %s %s: %w", ErrServerUnreachable, method, path, err)
	}

	var envelope models.RawEnvelope
	if decodeErr := json.Unmarshal(resp.Body(), &envelope); decodeErr != nil {
		if mapped := mapHTTPError(resp, ""); mapped != nil {
			return models.RawEnvelope{}, mapped
		}
		log.Err(decodeErr).Str("func", "httpServerAdapter.Do").Str("path", path).Msg("response is not an envelope")
		return models.RawEnvelope{}, fmt.Errorf("%w: %w", ErrMalformedResponse, decodeErr)
	}

	if err = mapHTTPError(resp, envelope.Message); err != nil {
		return envelope, err
	}

	return envelope, nil
}

func (h *httpServerAdapter) Health(ctx context.Context) (models.Health, error) {
	raw, err := h.Do(ctx, http.MethodGet, "/health", nil)
	if err != nil {
		return models.Health{}, err
	}

	envelope, err := models.DecodeEnvelope[models.Health](raw)
	if err != nil {
		return models.Health{}, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	if !envelope.Success {
		return models.Health{}, errors.New(envelope.Message)
	}

	return envelope.Data, nil
}
