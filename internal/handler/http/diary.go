package http

import (
	"net/http"

	"github.com/MKhiriev/go-journal/internal/app"
	"github.com/MKhiriev/go-journal/models"
)

func (h *Handler) listDiary(w http.ResponseWriter, r *http.Request) {
	entries, err := h.services.DiaryService.List(r.Context())
	if err != nil {
		writeError(w, r, err, app.MsgDiaryFetchError, "*Handler.listDiary")
		return
	}

	writeOK(w, r, entries, app.MsgDiaryFetched, "*Handler.listDiary")
}

func (h *Handler) addDiary(w http.ResponseWriter, r *http.Request) {
	var in models.DiaryInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, r, err, app.MsgDiarySaveError, "*Handler.addDiary")
		return
	}

	entry, err := h.services.DiaryService.Add(r.Context(), in)
	if err != nil {
		writeError(w, r, err, app.MsgDiarySaveError, "*Handler.addDiary")
		return
	}

	writeOK(w, r, entry, app.MsgDiarySaved, "*Handler.addDiary")
}

func (h *Handler) deleteDiary(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r)
	if err != nil {
		writeError(w, r, err, app.MsgDiaryDeleteError, "*Handler.deleteDiary")
		return
	}

	if err = h.services.DiaryService.Delete(r.Context(), id); err != nil {
		writeError(w, r, err, app.MsgDiaryDeleteError, "*Handler.deleteDiary")
		return
	}

	writeOK(w, r, nil, app.MsgDiaryDeleted, "*Handler.deleteDiary")
}
