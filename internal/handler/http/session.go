package http

import (
	"net/http"

	"github.com/MKhiriev/go-eas-sync/internal/service"
	"github.com/MKhiriev/go-eas-sync/internal/utils"
)

type statusResponse struct {
	Sessions []service.SessionSnapshot `json:"sessions"`
}

// pingSession wakes the account worker if it is waiting for push.
func (h *Handler) pingSession(w http.ResponseWriter, r *http.Request) {
	h.engine.Ping()
	w.WriteHeader(http.StatusAccepted)
}

func (h *Handler) sessionStatus(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, statusResponse{Sessions: h.engine.Snapshot()}, http.StatusOK)
}
