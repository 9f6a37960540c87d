package parser

import (
	"context"

	"github.com/MKhiriev/go-eas-sync/internal/logger"
	"github.com/MKhiriev/go-eas-sync/internal/service"
	"github.com/MKhiriev/go-eas-sync/models"
)

type pingResponse struct {
	Status  string   `xml:"Status"`
	Folders []string `xml:"Folders>Folder"`
}

// PingParser reads Ping responses. It touches no storage.
type PingParser struct{}

// NewPingParser creates a PingParser.
func NewPingParser() PingParser {
	return PingParser{}
}

// ParsePingResponse implements service.PingResponseParser.
func (PingParser) ParsePingResponse(ctx context.Context, body []byte) (models.PingResult, error) {
	var resp pingResponse
	if err := decode("Ping", body, &resp); err != nil {
		return models.PingResult{}, err
	}

	switch resp.Status {
	case pingStatusNoChanges:
		return models.PingResult{}, nil
	case pingStatusChanges:
		logger.FromContext(ctx).Debug().Strs("folders", resp.Folders).Msg("ping reported changes")
		return models.PingResult{
			HasChanges:       len(resp.Folders) > 0,
			ChangedServerIDs: resp.Folders,
		}, nil
	case pingStatusFolderStale:
		return models.PingResult{}, service.ErrStaleFolderList
	default:
		return models.PingResult{}, unexpectedStatus("Ping", resp.Status)
	}
}
