// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/go-journal/internal/adapter"
	"github.com/MKhiriev/go-journal/internal/service"
)

func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, service.ErrOffline), errors.Is(err, adapter.ErrServerUnreachable):
		return "Отсутствует сеть или Сервер недоступен"
	case errors.Is(err, context.DeadlineExceeded):
		return "Сервер не ответил вовремя"
	case errors.Is(err, context.Canceled):
		return "Операция отменена"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") {
		return "Отсутствует сеть или Сервер недоступен"
	}

	return err.Error()
}
