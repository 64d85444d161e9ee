package http

import (
	"net/http"

	"github.com/MKhiriev/go-journal/internal/app"
	"github.com/MKhiriev/go-journal/models"
)

func (h *Handler) listMood(w http.ResponseWriter, r *http.Request) {
	history, err := h.services.MoodService.List(r.Context())
	if err != nil {
		writeError(w, r, err, app.MsgMoodFetchError, "*Handler.listMood")
		return
	}

	writeOK(w, r, history, app.MsgMoodFetched, "*Handler.listMood")
}

func (h *Handler) addMood(w http.ResponseWriter, r *http.Request) {
	var in models.MoodInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, r, err, app.MsgMoodSaveError, "*Handler.addMood")
		return
	}

	record, err := h.services.MoodService.Add(r.Context(), in)
	if err != nil {
		writeError(w, r, err, app.MsgMoodSaveError, "*Handler.addMood")
		return
	}

	writeOK(w, r, record, app.MsgMoodSaved, "*Handler.addMood")
}

func (h *Handler) clearMood(w http.ResponseWriter, r *http.Request) {
	if err := h.services.MoodService.Clear(r.Context()); err != nil {
		writeError(w, r, err, app.MsgMoodClearError, "*Handler.clearMood")
		return
	}

	writeOK(w, r, nil, app.MsgMoodCleared, "*Handler.clearMood")
}
