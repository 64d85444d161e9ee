// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
)

// Envelope is the uniform wrapper returned by every journal operation, both
// by the HTTP API and by the client-side offline fallback.
//
// A false Success is a recoverable failure: Message carries a human-facing
// explanation and Data is usually absent.
type Envelope[T any] struct {
	// Success reports whether the operation completed.
	Success bool `json:"success"`

	// Data holds the operation result. It is omitted from JSON when empty.
	Data T `json:"data,omitempty"`

	// Message is a human-facing status string.
	Message string `json:"message"`
}

// RawEnvelope is an [Envelope] whose payload has not been decoded yet. It is
// what the request dispatcher hands back to its callers.
type RawEnvelope = Envelope[json.RawMessage]

// OK builds a successful envelope carrying data.
func OK[T any](data T, message string) Envelope[T] {
	return Envelope[T]{Success: true, Data: data, Message: message}
}

// Fail builds a failed envelope with no payload.
func Fail[T any](message string) Envelope[T] {
	return Envelope[T]{Success: false, Message: message}
}

// NewRawEnvelope marshals data and wraps it into a successful [RawEnvelope].
// A nil data produces an envelope without payload.
func NewRawEnvelope(data any, message string) (RawEnvelope, error) {
	if data == nil {
		return RawEnvelope{Success: true, Message: message}, nil
	}

	payload, err := json.Marshal(data)
	if err != nil {
		return RawEnvelope{}, fmt.Errorf("marshal envelope data: %w", err)
	}

	return RawEnvelope{Success: true, Data: payload, Message: message}, nil
}

// DecodeEnvelope converts a [RawEnvelope] into a typed one. An empty payload
// leaves Data at its zero value.
func DecodeEnvelope[T any](raw RawEnvelope) (Envelope[T], error) {
	out := Envelope[T]{Success: raw.Success, Message: raw.Message}
	if len(raw.Data) == 0 || string(raw.Data) == "null" {
		return out, nil
	}

	if err := json.Unmarshal(raw.Data, &out.Data); err != nil {
		return out, fmt.Errorf("decode envelope data: %w", err)
	}

	return out, nil
}
