// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-journal/internal/app"
	"github.com/MKhiriev/go-journal/internal/logger"
	"github.com/MKhiriev/go-journal/internal/utils"
	"github.com/MKhiriev/go-journal/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestHandler создаёт Handler с nop-логгером (без вывода в stdout).
func newTestHandler() *Handler {
	return &Handler{logger: logger.Nop(), traceIDs: utils.NewTraceIDGenerator()}
}

// ---- withTraceID ----

func TestWithTraceID(t *testing.T) {
	tests := []struct {
		name           string
		requestTraceID string
	}{
		{name: "trace ID from request header is reused", requestTraceID: "my-custom-trace-id"},
		{name: "no trace ID in request, one is generated"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler()

			var seen *logger.Logger
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = logger.FromRequest(r)
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
			if tt.requestTraceID != "" {
				req.Header.Set(traceIDHeader, tt.requestTraceID)
			}
			rr := httptest.NewRecorder()
			h.withTraceID(next).ServeHTTP(rr, req)

			got := rr.Header().Get(traceIDHeader)
			if tt.requestTraceID != "" {
				assert.Equal(t, tt.requestTraceID, got)
			} else {
				_, err := uuid.Parse(got)
				assert.NoError(t, err, "сгенерированный trace ID должен быть UUID")
			}
			assert.NotNil(t, seen)
		})
	}
}

func TestWithTraceID_AddsTraceIDToLogger(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{
		logger:   &logger.Logger{Logger: zerolog.New(&buf)},
		traceIDs: utils.NewTraceIDGenerator(),
	}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("inside")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(traceIDHeader, "trace-123")
	h.withTraceID(next).ServeHTTP(httptest.NewRecorder(), req)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "trace-123", line["trace_id"])
}

// ---- withLogging / responseWriter ----

func TestWithLogging_CapturesStatusAndSize(t *testing.T) {
	var buf bytes.Buffer
	log := &logger.Logger{Logger: zerolog.New(&buf)}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.WriteHeader(http.StatusTeapot) // повторный вызов игнорируется
		_, _ = w.Write([]byte("hello"))
	})

	req := httptest.NewRequest(http.MethodPost, "/api/diary", nil)
	req = req.WithContext(log.WithContext(req.Context()))
	rr := httptest.NewRecorder()
	newTestHandler().withLogging(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, float64(http.StatusCreated), line["status"])
	assert.Equal(t, float64(5), line["size"])
	assert.Equal(t, http.MethodPost, line["method"])
	assert.Equal(t, "/api/diary", line["uri"])
}

func TestResponseWriter_ImplicitOK(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	n, err := w.Write([]byte("abc"))
	require.NoError(t, err)
	_, _ = w.Write([]byte("de"))

	assert.Equal(t, 3, n)
	assert.Equal(t, http.StatusOK, w.status)
	assert.Equal(t, 5, w.size)
	assert.True(t, w.wroteHeader)
}

// ---- withRecover ----

func TestWithRecover_PanicBecomesEnvelope(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	rr := httptest.NewRecorder()
	newTestHandler().withRecover(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/diary", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)

	var envelope models.Envelope[any]
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &envelope))
	assert.False(t, envelope.Success)
	assert.Equal(t, app.MsgInternalServerError, envelope.Message)
}

func TestWithRecover_AbortHandlerIsRepanicked(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic(http.ErrAbortHandler)
	})

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		newTestHandler().withRecover(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}

// ---- CheckHTTPMethod ----

func TestCheckHTTPMethod(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/api/items", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("items"))
	})
	router.Post("/api/items", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	tests := []struct {
		method     string
		wantStatus int
	}{
		{http.MethodGet, http.StatusOK},
		{http.MethodPost, http.StatusCreated},
		{http.MethodDelete, http.StatusNotFound},
		{http.MethodPatch, http.StatusNotFound},
		{http.MethodPut, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tt.method, "/api/items", nil))

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rr.Code)
			if tt.wantStatus == http.StatusNotFound {
				assert.JSONEq(t, `{"success":false,"message":"`+app.MsgEndpointNotFound+`"}`, rr.Body.String())
			}
		})
	}
}

// ---- withGZip ----

// echoMoodHandler декодирует тело запроса и возвращает его в конверте.
func echoMoodHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var in models.MoodInput
		if err := decodeJSON(r, &in); err != nil {
			writeError(w, r, err, app.MsgInvalidDataProvided, "echo")
			return
		}
		writeOK(w, r, in, "echo", "echo")
	})
}

func gzipBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestWithGZip_CompressedResponse(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/mood", bytes.NewBufferString(`{"mood":"🙂","text":"ok"}`))
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()

	withGZip(echoMoodHandler()).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))

	zr, err := gzip.NewReader(rr.Body)
	require.NoError(t, err)
	body, err := io.ReadAll(zr)
	require.NoError(t, err)

	env, err := models.DecodeEnvelope[models.MoodInput](decodeRaw(t, body))
	require.NoError(t, err)
	assert.True(t, env.Success)
	assert.Equal(t, models.MoodInput{Mood: "🙂", Text: "ok"}, env.Data)
}

func TestWithGZip_CompressedRequest(t *testing.T) {
	body := gzipBytes(t, []byte(`{"mood":"😐","text":"meh"}`))
	req := httptest.NewRequest(http.MethodPost, "/api/mood", bytes.NewReader(body))
	req.Header.Set("Content-Encoding", "gzip")
	rr := httptest.NewRecorder()

	withGZip(echoMoodHandler()).ServeHTTP(rr, req)

	// без Accept-Encoding ответ не сжимается
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, rr.Header().Get("Content-Encoding"))

	env, err := models.DecodeEnvelope[models.MoodInput](decodeRaw(t, rr.Body.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, models.MoodInput{Mood: "😐", Text: "meh"}, env.Data)
}

func TestWithGZip_InvalidGzipBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/mood", bytes.NewBufferString("not gzip at all"))
	req.Header.Set("Content-Encoding", "gzip")
	rr := httptest.NewRecorder()

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })
	withGZip(next).ServeHTTP(rr, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	var env models.RawEnvelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	assert.False(t, env.Success)
	assert.Equal(t, app.MsgInvalidDataProvided, env.Message)
}

func decodeRaw(t *testing.T, body []byte) models.RawEnvelope {
	t.Helper()
	var env models.RawEnvelope
	require.NoError(t, json.Unmarshal(body, &env))
	return env
}
