package http

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-eas-sync/internal/logger"
	"github.com/MKhiriev/go-eas-sync/internal/utils"
	"github.com/MKhiriev/go-eas-sync/models"
)

type fetchResponse struct {
	AttachmentID int64  `json:"attachment_id"`
	ContentURI   string `json:"content_uri"`
	Bytes        int64  `json:"bytes"`
}

// fetchAttachment downloads an attachment of a message in the collection
// given by the collection_id query parameter into the attachment directory.
func (h *Handler) fetchAttachment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	attachmentID, err := strconv.ParseInt(chi.URLParam(r, "attachmentID"), 10, 64)
	if err != nil || attachmentID <= 0 {
		writeError(w, r, ErrInvalidAttachmentID)
		return
	}
	collectionID, err := strconv.ParseInt(r.URL.Query().Get("collection_id"), 10, 64)
	if err != nil || collectionID <= 0 {
		writeError(w, r, ErrInvalidCollectionID)
		return
	}

	attachment, err := h.attachments.GetAttachment(ctx, attachmentID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = os.MkdirAll(h.attachmentDir, 0o755); err != nil {
		writeError(w, r, fmt.Errorf("create attachment dir: %w", err))
		return
	}
	path := filepath.Join(h.attachmentDir, strconv.FormatInt(attachmentID, 10))
	file, err := os.Create(path)
	if err != nil {
		writeError(w, r, fmt.Errorf("create attachment file: %w", err))
		return
	}
	defer file.Close()

	sink := &countingWriter{w: file}
	err = h.engine.FetchAttachment(ctx, models.AttachmentRequest{
		Attachment:   attachment,
		CollectionID: collectionID,
		Progress: func(percent int) {
			log.Debug().Int64("attachment_id", attachmentID).Int("percent", percent).Msg("attachment progress")
		},
		Sink:        sink,
		StoragePath: path,
	})
	if err != nil {
		_ = os.Remove(path)
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, fetchResponse{
		AttachmentID: attachmentID,
		ContentURI:   path,
		Bytes:        sink.n,
	}, http.StatusOK)
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
