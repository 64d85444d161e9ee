package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-journal/internal/app"
	"github.com/MKhiriev/go-journal/internal/logger"
	"github.com/MKhiriev/go-journal/internal/service"
	"github.com/MKhiriev/go-journal/internal/store"
	"github.com/MKhiriev/go-journal/internal/utils"
	"github.com/MKhiriev/go-journal/models"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:  http.StatusBadRequest,
	ErrInvalidID:    http.StatusBadRequest,
	ErrBodyTooLarge: http.StatusRequestEntityTooLarge,
	ErrInvalidGzip:  http.StatusBadRequest,

	service.ErrInvalidDataProvided: http.StatusBadRequest,
	models.ErrInvalidPriority:      http.StatusBadRequest,

	store.ErrDiaryEntryNotFound: http.StatusNotFound,
	store.ErrTodoNotFound:       http.StatusNotFound,

	store.ErrReadingDocument: http.StatusInternalServerError,
	store.ErrWritingDocument: http.StatusInternalServerError,
}

// errorMessages is checked in order; the first match wins. Errors can wrap
// more than one sentinel, so the more specific ones come first.
var errorMessages = []struct {
	target  error
	message string
}{
	{models.ErrInvalidPriority, app.MsgInvalidPriority},
	{ErrInvalidID, app.MsgInvalidID},
	{ErrBodyTooLarge, http.StatusText(http.StatusRequestEntityTooLarge)},
	{ErrInvalidJSON, app.MsgInvalidDataProvided},
	{ErrInvalidGzip, app.MsgInvalidDataProvided},
	{service.ErrInvalidDataProvided, app.MsgInvalidDataProvided},
	{store.ErrDiaryEntryNotFound, app.MsgDiaryEntryNotFound},
	{store.ErrTodoNotFound, app.MsgTodoNotFound},
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the client-facing message for err. Server-side
// failures get fallback so storage details never leak into responses.
func messageFromError(err error, fallback string) string {
	for _, m := range errorMessages {
		if errors.Is(err, m.target) {
			return m.message
		}
	}
	return fallback
}

// writeError logs err and answers with a failed envelope.
func writeError(w http.ResponseWriter, r *http.Request, err error, fallback, funcName string) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	message := messageFromError(err, fallback)

	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", funcName).Int("status", status).Msg(message)
	} else {
		log.Warn().Err(err).Str("func", funcName).Int("status", status).Msg(message)
	}

	if _, writeErr := utils.WriteJSON(w, models.Fail[any](message), status); writeErr != nil {
		log.Err(writeErr).Str("func", funcName).Msg("error writing response")
	}
}

// writeOK answers with a successful envelope. data may be nil.
func writeOK(w http.ResponseWriter, r *http.Request, data any, message, funcName string) {
	if _, err := utils.WriteJSON(w, models.OK(data, message), http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", funcName).Msg("error writing response")
	}
}
