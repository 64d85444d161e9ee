package http

import (
	"net/http"

	"github.com/MKhiriev/go-journal/internal/app"
)

func (h *Handler) getAllData(w http.ResponseWriter, r *http.Request) {
	doc, err := h.services.DataService.GetAll(r.Context())
	if err != nil {
		writeError(w, r, err, app.MsgDataFetchError, "*Handler.getAllData")
		return
	}

	writeOK(w, r, doc, app.MsgDataFetched, "*Handler.getAllData")
}
