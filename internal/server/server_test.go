package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-journal/internal/config"
	"github.com/MKhiriev/go-journal/internal/handler"
	myHTTP "github.com/MKhiriev/go-journal/internal/handler/http"
	"github.com/MKhiriev/go-journal/internal/logger"
	"github.com/MKhiriev/go-journal/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freeAddress(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())
	return addr
}

func testHandlers() *handler.Handlers {
	return &handler.Handlers{HTTP: myHTTP.NewHandler(&service.Services{}, logger.Nop())}
}

func TestNewServer_NoHandlers(t *testing.T) {
	_, err := NewServer(&handler.Handlers{}, config.Server{HTTPAddress: ":3000"}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)

	_, err = NewServer(testHandlers(), config.Server{}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestServer_RunAndShutdown(t *testing.T) {
	addr := freeAddress(t)
	srv, err := NewServer(testHandlers(), config.Server{HTTPAddress: addr, RequestTimeout: time.Second}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	// неизвестный маршрут отвечает 404 — значит сервер поднялся
	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/api/unknown")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusNotFound
	}, 2*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err = <-done:
		assert.NoError(t, err)
	case <-time.After(shutdownTimeout + time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServer_AddressInUse(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	srv, err := NewServer(testHandlers(), config.Server{HTTPAddress: ln.Addr().String()}, logger.Nop())
	require.NoError(t, err)

	assert.Error(t, srv.Run(context.Background()))
}
