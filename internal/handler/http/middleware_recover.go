package http

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/go-journal/internal/app"
	"github.com/MKhiriev/go-journal/internal/logger"
	"github.com/MKhiriev/go-journal/internal/utils"
	"github.com/MKhiriev/go-journal/models"
)

// withRecover turns a panic in a downstream handler into a 500 envelope.
// http.ErrAbortHandler is re-panicked so the server can abort the connection.
func (h *Handler) withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			logger.FromRequest(r).Error().
				Str("func", "*Handler.withRecover").
				Str("panic", fmt.Sprint(rec)).
				Bytes("stack", debug.Stack()).
				Msg("recovered from panic")

			utils.WriteJSON(w, models.Fail[any](app.MsgInternalServerError), http.StatusInternalServerError)
		}()

		next.ServeHTTP(w, r)
	})
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.Fail[any](app.MsgEndpointNotFound), http.StatusNotFound)
}
