package parser

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-eas-sync/internal/logger"
	"github.com/MKhiriev/go-eas-sync/internal/service"
	"github.com/MKhiriev/go-eas-sync/internal/store"
	"github.com/MKhiriev/go-eas-sync/models"
)

type syncResponse struct {
	Status      string           `xml:"Status"`
	Collections []syncCollection `xml:"Collections>Collection"`
}

type syncCollection struct {
	Class         string       `xml:"Class"`
	SyncKey       string       `xml:"SyncKey"`
	CollectionID  string       `xml:"CollectionId"`
	Status        string       `xml:"Status"`
	MoreAvailable *struct{}    `xml:"MoreAvailable"`
	Commands      syncCommands `xml:"Commands"`
	Responses     struct {
		Add []syncAck `xml:"Add"`
	} `xml:"Responses"`
}

type syncCommand struct {
	ServerID        string `xml:"ServerId"`
	ApplicationData struct {
		Inner []byte `xml:",innerxml"`
	} `xml:"ApplicationData"`
}

type syncAck struct {
	ClientID string `xml:"ClientId"`
	ServerID string `xml:"ServerId"`
	Status   string `xml:"Status"`
}

// syncCommands keeps server commands in document order.
type syncCommands []models.Change

func (c *syncCommands) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			kind := models.ChangeKind(t.Name.Local)
			switch kind {
			case models.ChangeAdd, models.ChangeUpdate, models.ChangeDelete:
			default:
				if err = d.Skip(); err != nil {
					return err
				}
				continue
			}

			var cmd syncCommand
			if err = d.DecodeElement(&cmd, &t); err != nil {
				return err
			}
			if cmd.ServerID == "" {
				return fmt.Errorf("%s command without ServerId", kind)
			}
			*c = append(*c, models.Change{
				Kind:     kind,
				ServerID: cmd.ServerID,
				Data:     cmd.ApplicationData.Inner,
			})
		case xml.EndElement:
			return nil
		}
	}
}

// SyncParser applies Sync responses of one collection.
type SyncParser struct {
	items store.ItemRepository
}

// NewSyncParser creates a SyncParser.
func NewSyncParser(storages *store.ClientStorages) *SyncParser {
	return &SyncParser{items: storages.ItemRepository}
}

// ParseCollectionResponse implements service.CollectionResponseParser.
//
// Status 1 applies the server commands, the acks of sent changes and the
// new sync key in one transaction and returns whether more data is
// available. Status 3 resets the collection to "0" and returns true. Status
// 12 reports [service.ErrStaleFolderList].
func (p *SyncParser) ParseCollectionResponse(
	ctx context.Context,
	collection *models.Collection,
	body []byte,
	sentChangeIDs []int64,
) (bool, error) {
	log := logger.FromContext(ctx)

	var resp syncResponse
	if err := decode("Sync", body, &resp); err != nil {
		return false, err
	}
	if resp.Status == syncStatusFolderStale {
		return false, service.ErrStaleFolderList
	}

	var found *syncCollection
	for i := range resp.Collections {
		if resp.Collections[i].CollectionID == collection.ServerID {
			found = &resp.Collections[i]
			break
		}
	}
	if found == nil {
		return false, malformed("Sync", fmt.Errorf("no entry for collection %s", collection.ServerID))
	}

	switch found.Status {
	case statusOK:
	case syncStatusInvalidKey:
		log.Warn().
			Int64("collection_id", collection.ID).
			Str("sync_key", collection.SyncKey).
			Msg("collection sync key rejected, resetting collection")
		if err := p.items.ResetCollection(ctx, collection.ID); err != nil {
			return false, fmt.Errorf("reset collection: %w", err)
		}
		collection.SyncKey = models.InitialSyncKey
		return true, nil
	case syncStatusFolderStale:
		return false, service.ErrStaleFolderList
	default:
		return false, unexpectedStatus("Sync", found.Status)
	}

	if found.SyncKey == "" {
		return false, malformed("Sync", errors.New("missing SyncKey"))
	}

	result := models.SyncResult{
		SyncKey:       found.SyncKey,
		Changes:       found.Commands,
		SentChangeIDs: sentChangeIDs,
		MoreAvailable: found.MoreAvailable != nil,
	}
	for i := range result.Changes {
		result.Changes[i].CollectionID = collection.ID
	}
	for _, ack := range found.Responses.Add {
		result.Acks = append(result.Acks, models.ChangeAck{
			ClientID: ack.ClientID,
			ServerID: ack.ServerID,
			Status:   ack.Status,
		})
	}

	if err := p.items.ApplySyncResult(ctx, collection.ID, result); err != nil {
		return false, fmt.Errorf("apply sync result: %w", err)
	}

	log.Debug().
		Int64("collection_id", collection.ID).
		Int("changes", len(result.Changes)).
		Int("acks", len(result.Acks)).
		Str("sync_key", result.SyncKey).
		Bool("more", result.MoreAvailable).
		Msg("sync response applied")

	collection.SyncKey = result.SyncKey
	return result.MoreAvailable, nil
}
