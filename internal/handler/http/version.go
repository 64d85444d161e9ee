package http

import (
	"net/http"

	"github.com/MKhiriev/go-journal/internal/app"
)

func (h *Handler) getHealth(w http.ResponseWriter, r *http.Request) {
	health := h.services.AppInfoService.Health(r.Context())
	writeOK(w, r, health, app.MsgServerHealthy, "*Handler.getHealth")
}

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(serverVersion))
}
