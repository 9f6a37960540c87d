package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-eas-sync/internal/logger"
	"github.com/MKhiriev/go-eas-sync/internal/utils"
)

type syncResponse struct {
	CollectionID int64  `json:"collection_id"`
	ServerID     string `json:"server_id"`
}

// syncCollection queues a manual sync of the collection with the given
// server id.
func (h *Handler) syncCollection(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	serverID := chi.URLParam(r, "serverID")

	collection, err := h.collections.FindCollectionByServerID(ctx, h.engine.Account().ID, serverID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.scheduler.StartManualSync(ctx, collection.ID); err != nil {
		writeError(w, r, err)
		return
	}
	logger.FromRequest(r).Info().
		Str("server_id", serverID).
		Int64("collection_id", collection.ID).
		Msg("manual sync requested")

	_, _ = utils.WriteJSON(w, syncResponse{CollectionID: collection.ID, ServerID: serverID}, http.StatusAccepted)
}
