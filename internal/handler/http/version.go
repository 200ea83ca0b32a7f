package http

import (
	"net/http"

	"github.com/MKhiriev/go-notes-book/internal/app"
	"github.com/MKhiriev/go-notes-book/internal/logger"
	"github.com/MKhiriev/go-notes-book/internal/utils"
	"github.com/MKhiriev/go-notes-book/models"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.appInfo.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(serverVersion))
}

// getStatus is the liveness route answering GET /.
func (h *Handler) getStatus(w http.ResponseWriter, r *http.Request) {
	status := models.StatusResponse{OK: true, Message: app.MsgBackendRunning}

	if _, err := utils.WriteJSON(w, status, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getStatus").Msg("error writing response")
	}
}
