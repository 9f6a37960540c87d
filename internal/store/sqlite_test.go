package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-eas-sync/internal/config"
	"github.com/MKhiriev/go-eas-sync/internal/logger"
	"github.com/MKhiriev/go-eas-sync/models"
)

func newSQLiteStorages(t *testing.T) *ClientStorages {
	t.Helper()

	cfg := config.ClientStorage{DB: config.ClientDB{DSN: filepath.Join(t.TempDir(), "nested", "eas.db")}}
	s, err := NewClientStorages(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func countRows(t *testing.T, s *ClientStorages, table string, collectionID int64) int {
	t.Helper()

	var n int
	err := s.db.QueryRow("SELECT COUNT(*) FROM "+table+" WHERE collection_id = ?", collectionID).Scan(&n)
	require.NoError(t, err)
	return n
}

func TestSQLite_AccountLifecycle(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()

	account := &models.Account{Host: "mail.example.com", Username: "alice", Lookback: models.Lookback2Weeks}
	require.NoError(t, s.AccountRepository.EnsureAccount(ctx, account))
	require.NotZero(t, account.ID)
	assert.Equal(t, "", account.SyncKey)

	require.NoError(t, s.AccountRepository.SaveFolderSyncKey(ctx, account.ID, "0"))

	again := &models.Account{Host: "mail.example.com", Username: "alice"}
	require.NoError(t, s.AccountRepository.EnsureAccount(ctx, again))
	assert.Equal(t, account.ID, again.ID)
	assert.Equal(t, "0", again.SyncKey)
	assert.Equal(t, models.Lookback2Weeks, again.Lookback)

	changed := &models.Account{Host: "mail.example.com", Username: "alice", Lookback: models.Lookback1Day}
	require.NoError(t, s.AccountRepository.EnsureAccount(ctx, changed))
	stored, err := s.AccountRepository.GetAccount(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, models.Lookback1Day, stored.Lookback)

	_, err = s.AccountRepository.GetAccount(ctx, account.ID+100)
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestSQLite_FolderChanges(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()

	account := &models.Account{Host: "mail.example.com", Username: "bob"}
	require.NoError(t, s.AccountRepository.EnsureAccount(ctx, account))

	err := s.CollectionRepository.ApplyFolderChanges(ctx, account.ID, models.FolderChanges{
		SyncKey: "f1",
		Added: []models.Collection{
			{ServerID: "5", DisplayName: "Inbox", Type: 2, Class: models.ClassEmail, SyncMode: models.SyncModePush},
			{ServerID: "6", DisplayName: "Contacts", Type: 9, Class: models.ClassContacts, SyncMode: models.SyncModePush},
			{ServerID: "7", DisplayName: "Sent", Type: 5, Class: models.ClassEmail, SyncMode: models.SyncModeNever},
		},
	})
	require.NoError(t, err)

	stored, err := s.AccountRepository.GetAccount(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, "f1", stored.SyncKey)

	push, err := s.CollectionRepository.ListPushCollections(ctx, account.ID)
	require.NoError(t, err)
	require.Len(t, push, 2)
	assert.Equal(t, "5", push[0].ServerID)
	assert.Equal(t, "6", push[1].ServerID)
	assert.Equal(t, "", push[0].SyncKey)

	err = s.CollectionRepository.ApplyFolderChanges(ctx, account.ID, models.FolderChanges{
		SyncKey: "f2",
		Updated: []models.Collection{{ServerID: "5", DisplayName: "Posteingang", Type: 2, Class: models.ClassEmail}},
		Deleted: []string{"7"},
	})
	require.NoError(t, err)

	all, err := s.CollectionRepository.ListCollections(ctx, account.ID)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Posteingang", all[0].DisplayName)
	assert.Equal(t, models.SyncModePush, all[0].SyncMode)

	_, err = s.CollectionRepository.FindCollectionByServerID(ctx, account.ID, "7")
	assert.ErrorIs(t, err, ErrCollectionNotFound)

	require.NoError(t, s.CollectionRepository.SetCollectionSyncMode(ctx, all[1].ID, models.SyncModePing))
	n, err := s.CollectionRepository.PromotePingCollections(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	require.NoError(t, s.CollectionRepository.ResetFolders(ctx, account.ID))
	all, err = s.CollectionRepository.ListCollections(ctx, account.ID)
	require.NoError(t, err)
	assert.Empty(t, all)

	stored, err = s.AccountRepository.GetAccount(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, models.InitialSyncKey, stored.SyncKey)
}

func TestSQLite_SyncResult(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()

	account := &models.Account{Host: "mail.example.com", Username: "carol"}
	require.NoError(t, s.AccountRepository.EnsureAccount(ctx, account))
	require.NoError(t, s.CollectionRepository.ApplyFolderChanges(ctx, account.ID, models.FolderChanges{
		SyncKey: "f1",
		Added:   []models.Collection{{ServerID: "6", DisplayName: "Contacts", Type: 9, Class: models.ClassContacts, SyncMode: models.SyncModePush}},
	}))
	contacts, err := s.CollectionRepository.FindCollectionByServerID(ctx, account.ID, "6")
	require.NoError(t, err)

	addID, err := s.ItemRepository.QueueChange(ctx, models.Change{
		CollectionID: contacts.ID, Kind: models.ChangeAdd, ClientID: "c1", Data: []byte("<FileAs>Dan</FileAs>"),
	})
	require.NoError(t, err)
	changeID, err := s.ItemRepository.QueueChange(ctx, models.Change{
		CollectionID: contacts.ID, Kind: models.ChangeUpdate, ServerID: "6:1", Data: []byte("<FileAs>Eve</FileAs>"),
	})
	require.NoError(t, err)

	pending, err := s.ItemRepository.PendingChanges(ctx, contacts.ID)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, addID, pending[0].ID)
	assert.Equal(t, models.ChangeAdd, pending[0].Kind)
	assert.Equal(t, "c1", pending[0].ClientID)

	err = s.ItemRepository.ApplySyncResult(ctx, contacts.ID, models.SyncResult{
		SyncKey: "s1",
		Changes: []models.Change{
			{Kind: models.ChangeAdd, ServerID: "6:1", Data: []byte("<FileAs>Eve</FileAs>")},
			{Kind: models.ChangeAdd, ServerID: "6:2", Data: []byte("<FileAs>Frank</FileAs>")},
		},
		Acks:          []models.ChangeAck{{ClientID: "c1", ServerID: "6:3", Status: "1"}},
		SentChangeIDs: []int64{addID, changeID},
	})
	require.NoError(t, err)

	pending, err = s.ItemRepository.PendingChanges(ctx, contacts.ID)
	require.NoError(t, err)
	assert.Empty(t, pending)
	assert.Equal(t, 3, countRows(t, s, "items", contacts.ID))

	var data []byte
	require.NoError(t, s.db.QueryRow("SELECT data FROM items WHERE collection_id = ? AND server_id = ?", contacts.ID, "6:3").Scan(&data))
	assert.Equal(t, "<FileAs>Dan</FileAs>", string(data))

	err = s.ItemRepository.ApplySyncResult(ctx, contacts.ID, models.SyncResult{
		SyncKey: "s2",
		Changes: []models.Change{{Kind: models.ChangeDelete, ServerID: "6:2"}},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, countRows(t, s, "items", contacts.ID))

	got, err := s.CollectionRepository.GetCollection(ctx, contacts.ID)
	require.NoError(t, err)
	assert.Equal(t, "s2", got.SyncKey)

	require.NoError(t, s.ItemRepository.ResetCollection(ctx, contacts.ID))
	assert.Equal(t, 0, countRows(t, s, "items", contacts.ID))
	got, err = s.CollectionRepository.GetCollection(ctx, contacts.ID)
	require.NoError(t, err)
	assert.Equal(t, models.InitialSyncKey, got.SyncKey)
}

func TestSQLite_Attachments(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()

	res, err := s.db.Exec("INSERT INTO attachments (item_server_id, location) VALUES (?, ?)", "5:1", "att/5:1/0")
	require.NoError(t, err)
	id, err := res.LastInsertId()
	require.NoError(t, err)

	a, err := s.AttachmentRepository.GetAttachment(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "att/5:1/0", a.Location)
	assert.Empty(t, a.ContentURI)

	a.ContentURI = "file:///tmp/a.png"
	a.MimeType = "image/png"
	require.NoError(t, s.AttachmentRepository.UpdateAttachment(ctx, a))

	got, err := s.AttachmentRepository.GetAttachment(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, a, got)

	_, err = s.AttachmentRepository.GetAttachment(ctx, id+1)
	assert.ErrorIs(t, err, ErrAttachmentNotFound)
	assert.ErrorIs(t, s.AttachmentRepository.UpdateAttachment(ctx, models.Attachment{ID: id + 1}), ErrAttachmentNotFound)
}
