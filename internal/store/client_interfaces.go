package store

import (
	"context"

	"github.com/MKhiriev/go-eas-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// AccountRepository persists the synchronized account and its FolderSync
// cursor.
type AccountRepository interface {
	// EnsureAccount loads the stored row for account.Host and
	// account.Username, creating it when missing, and fills in ID, SyncKey
	// and (when unset) Lookback.
	EnsureAccount(ctx context.Context, account *models.Account) error
	GetAccount(ctx context.Context, accountID int64) (models.Account, error)
	SaveFolderSyncKey(ctx context.Context, accountID int64, syncKey string) error
}

// CollectionRepository persists collections and their Sync cursors.
type CollectionRepository interface {
	ListCollections(ctx context.Context, accountID int64) ([]models.Collection, error)
	// ListPushCollections returns the account's collections in push mode.
	ListPushCollections(ctx context.Context, accountID int64) ([]models.Collection, error)
	GetCollection(ctx context.Context, collectionID int64) (models.Collection, error)
	FindCollectionByServerID(ctx context.Context, accountID int64, serverID string) (models.Collection, error)
	SaveCollectionSyncKey(ctx context.Context, collectionID int64, syncKey string) error
	SetCollectionSyncMode(ctx context.Context, collectionID int64, mode models.SyncMode) error
	// PromotePingCollections switches every collection of the account that
	// is in ping mode to push mode and returns how many changed.
	PromotePingCollections(ctx context.Context, accountID int64) (int64, error)
	// ApplyFolderChanges applies a FolderSync result and stores its sync key
	// on the account in one transaction.
	ApplyFolderChanges(ctx context.Context, accountID int64, changes models.FolderChanges) error
	// ResetFolders drops every collection of the account and resets the
	// account's FolderSync cursor to "0".
	ResetFolders(ctx context.Context, accountID int64) error
}

// ItemRepository persists collection content and the outbound change queue.
type ItemRepository interface {
	PendingChanges(ctx context.Context, collectionID int64) ([]models.Change, error)
	QueueChange(ctx context.Context, change models.Change) (int64, error)
	DeletePendingChanges(ctx context.Context, ids []int64) error
	// ApplySyncResult applies inbound changes and acks, deletes the sent
	// pending changes and stores the new collection sync key in one
	// transaction.
	ApplySyncResult(ctx context.Context, collectionID int64, result models.SyncResult) error
	// ResetCollection drops the collection's items and resets its sync key
	// to "0".
	ResetCollection(ctx context.Context, collectionID int64) error
}

// AttachmentRepository persists attachment metadata.
type AttachmentRepository interface {
	GetAttachment(ctx context.Context, attachmentID int64) (models.Attachment, error)
	// UpdateAttachment records ContentURI and MimeType after a download.
	UpdateAttachment(ctx context.Context, attachment models.Attachment) error
}
