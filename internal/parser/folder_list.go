package parser

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-eas-sync/internal/logger"
	"github.com/MKhiriev/go-eas-sync/internal/store"
	"github.com/MKhiriev/go-eas-sync/models"
)

type folderSyncResponse struct {
	Status  string `xml:"Status"`
	SyncKey string `xml:"SyncKey"`
	Changes struct {
		Add    []folderEntry `xml:"Add"`
		Update []folderEntry `xml:"Update"`
		Delete []folderEntry `xml:"Delete"`
	} `xml:"Changes"`
}

type folderEntry struct {
	ServerID    string `xml:"ServerId"`
	ParentID    string `xml:"ParentId"`
	DisplayName string `xml:"DisplayName"`
	Type        string `xml:"Type"`
}

// FolderListParser applies FolderSync responses.
type FolderListParser struct {
	collections store.CollectionRepository
}

// NewFolderListParser creates a FolderListParser.
func NewFolderListParser(storages *store.ClientStorages) *FolderListParser {
	return &FolderListParser{collections: storages.CollectionRepository}
}

// ParseFolderList implements service.FolderListParser.
//
// Status 1 applies the folder changes and the new sync key and returns
// false. Status 9 drops the local folder list, resets the key to "0" and
// returns true so that FolderSync is sent again at once.
func (p *FolderListParser) ParseFolderList(ctx context.Context, account *models.Account, body []byte) (bool, error) {
	log := logger.FromContext(ctx)

	var resp folderSyncResponse
	if err := decode("FolderSync", body, &resp); err != nil {
		return false, err
	}

	switch resp.Status {
	case statusOK:
	case folderStatusInvalidKey:
		log.Warn().Int64("account_id", account.ID).Msg("folder sync key rejected, resetting folder list")
		if err := p.collections.ResetFolders(ctx, account.ID); err != nil {
			return false, fmt.Errorf("reset folders: %w", err)
		}
		account.SyncKey = models.InitialSyncKey
		return true, nil
	default:
		return false, unexpectedStatus("FolderSync", resp.Status)
	}

	if resp.SyncKey == "" {
		return false, malformed("FolderSync", errors.New("missing SyncKey"))
	}

	changes, err := folderChanges(account.ID, resp)
	if err != nil {
		return false, err
	}
	if err = p.collections.ApplyFolderChanges(ctx, account.ID, changes); err != nil {
		return false, fmt.Errorf("apply folder changes: %w", err)
	}

	log.Debug().
		Int("added", len(changes.Added)).
		Int("updated", len(changes.Updated)).
		Int("deleted", len(changes.Deleted)).
		Str("sync_key", changes.SyncKey).
		Msg("folder list applied")

	account.SyncKey = changes.SyncKey
	return false, nil
}

func folderChanges(accountID int64, resp folderSyncResponse) (models.FolderChanges, error) {
	changes := models.FolderChanges{SyncKey: resp.SyncKey}

	for _, e := range resp.Changes.Add {
		c, err := e.collection(accountID)
		if err != nil {
			return models.FolderChanges{}, err
		}
		c.SyncMode = initialSyncMode(c.Type)
		changes.Added = append(changes.Added, c)
	}
	for _, e := range resp.Changes.Update {
		c, err := e.collection(accountID)
		if err != nil {
			return models.FolderChanges{}, err
		}
		changes.Updated = append(changes.Updated, c)
	}
	for _, e := range resp.Changes.Delete {
		if e.ServerID == "" {
			return models.FolderChanges{}, malformed("FolderSync", errors.New("delete without ServerId"))
		}
		changes.Deleted = append(changes.Deleted, e.ServerID)
	}

	return changes, nil
}

func (e folderEntry) collection(accountID int64) (models.Collection, error) {
	if e.ServerID == "" {
		return models.Collection{}, malformed("FolderSync", errors.New("folder without ServerId"))
	}
	folderType, err := strconv.Atoi(e.Type)
	if err != nil {
		return models.Collection{}, malformed("FolderSync", fmt.Errorf("folder %s type %q", e.ServerID, e.Type))
	}

	parent := e.ParentID
	if parent == "0" {
		parent = ""
	}

	return models.Collection{
		AccountID:      accountID,
		ServerID:       e.ServerID,
		ParentServerID: parent,
		DisplayName:    e.DisplayName,
		Type:           folderType,
		Class:          models.ClassForFolderType(folderType),
	}, nil
}

// initialSyncMode puts the default inbox, contacts and calendar folders in
// push mode; everything else is synced on demand.
func initialSyncMode(folderType int) models.SyncMode {
	switch folderType {
	case models.FolderTypeInbox, models.FolderTypeContacts, models.FolderTypeCalendar:
		return models.SyncModePush
	default:
		return models.SyncModeNever
	}
}
