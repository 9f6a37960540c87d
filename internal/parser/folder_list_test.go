package parser

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-eas-sync/internal/mock"
	"github.com/MKhiriev/go-eas-sync/internal/service"
	"github.com/MKhiriev/go-eas-sync/internal/store"
	"github.com/MKhiriev/go-eas-sync/models"
)

func newFolderParser(t *testing.T) (*FolderListParser, *mock.MockCollectionRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockCollectionRepository(ctrl)
	return NewFolderListParser(&store.ClientStorages{CollectionRepository: repo}), repo
}

const initialFolderSync = `<FolderSync>
  <Status>1</Status>
  <SyncKey>Syk1</SyncKey>
  <Changes>
    <Count>4</Count>
    <Add><ServerId>5</ServerId><ParentId>0</ParentId><DisplayName>Inbox</DisplayName><Type>2</Type></Add>
    <Add><ServerId>6</ServerId><ParentId>0</ParentId><DisplayName>Contacts</DisplayName><Type>9</Type></Add>
    <Add><ServerId>7</ServerId><ParentId>5</ParentId><DisplayName>Receipts</DisplayName><Type>12</Type></Add>
    <Update><ServerId>8</ServerId><ParentId>0</ParentId><DisplayName>Team calendar</DisplayName><Type>13</Type></Update>
    <Delete><ServerId>9</ServerId></Delete>
  </Changes>
</FolderSync>`

func TestFolderListParser_AppliesChanges(t *testing.T) {
	p, repo := newFolderParser(t)
	ctx := context.Background()
	account := &models.Account{ID: 1, SyncKey: models.InitialSyncKey}

	var applied models.FolderChanges
	repo.EXPECT().ApplyFolderChanges(ctx, int64(1), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, changes models.FolderChanges) error {
			applied = changes
			return nil
		})

	more, err := p.ParseFolderList(ctx, account, []byte(initialFolderSync))
	require.NoError(t, err)
	assert.False(t, more)
	assert.Equal(t, "Syk1", account.SyncKey)

	want := models.FolderChanges{
		SyncKey: "Syk1",
		Added: []models.Collection{
			{AccountID: 1, ServerID: "5", DisplayName: "Inbox", Type: 2, Class: models.ClassEmail, SyncMode: models.SyncModePush},
			{AccountID: 1, ServerID: "6", DisplayName: "Contacts", Type: 9, Class: models.ClassContacts, SyncMode: models.SyncModePush},
			{AccountID: 1, ServerID: "7", ParentServerID: "5", DisplayName: "Receipts", Type: 12, Class: models.ClassEmail, SyncMode: models.SyncModeNever},
		},
		Updated: []models.Collection{
			{AccountID: 1, ServerID: "8", DisplayName: "Team calendar", Type: 13, Class: models.ClassCalendar},
		},
		Deleted: []string{"9"},
	}
	if diff := cmp.Diff(want, applied); diff != "" {
		t.Errorf("folder changes mismatch (-want +got):\n%s", diff)
	}
}

func TestFolderListParser_UnchangedListIsIdempotent(t *testing.T) {
	p, repo := newFolderParser(t)
	ctx := context.Background()
	account := &models.Account{ID: 1, SyncKey: "Syk1"}

	repo.EXPECT().ApplyFolderChanges(ctx, int64(1), models.FolderChanges{SyncKey: "Syk1"}).Return(nil).Times(2)

	body := []byte(`<FolderSync><Status>1</Status><SyncKey>Syk1</SyncKey><Changes><Count>0</Count></Changes></FolderSync>`)
	for i := 0; i < 2; i++ {
		more, err := p.ParseFolderList(ctx, account, body)
		require.NoError(t, err)
		assert.False(t, more)
		assert.Equal(t, "Syk1", account.SyncKey)
	}
}

func TestFolderListParser_InvalidKeyResets(t *testing.T) {
	p, repo := newFolderParser(t)
	ctx := context.Background()
	account := &models.Account{ID: 1, SyncKey: "Syk7"}

	repo.EXPECT().ResetFolders(ctx, int64(1)).Return(nil)

	more, err := p.ParseFolderList(ctx, account, []byte(`<FolderSync><Status>9</Status></FolderSync>`))
	require.NoError(t, err)
	assert.True(t, more)
	assert.Equal(t, models.InitialSyncKey, account.SyncKey)
}

func TestFolderListParser_RejectsAndKeepsCursor(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not xml", `<FolderSync><Status>1`},
		{"server error status", `<FolderSync><Status>6</Status></FolderSync>`},
		{"missing sync key", `<FolderSync><Status>1</Status></FolderSync>`},
		{"bad folder type", `<FolderSync><Status>1</Status><SyncKey>S</SyncKey><Changes><Add><ServerId>1</ServerId><Type>x</Type></Add></Changes></FolderSync>`},
		{"folder without id", `<FolderSync><Status>1</Status><SyncKey>S</SyncKey><Changes><Add><Type>2</Type></Add></Changes></FolderSync>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := newFolderParser(t)
			account := &models.Account{ID: 1, SyncKey: "Syk1"}

			_, err := p.ParseFolderList(context.Background(), account, []byte(tt.body))
			require.ErrorIs(t, err, service.ErrProtocolViolation)
			assert.Equal(t, "Syk1", account.SyncKey)
		})
	}
}

func TestFolderListParser_StorageFailureKeepsCursor(t *testing.T) {
	p, repo := newFolderParser(t)
	ctx := context.Background()
	account := &models.Account{ID: 1, SyncKey: "Syk1"}

	repo.EXPECT().ApplyFolderChanges(ctx, int64(1), gomock.Any()).Return(errors.New("disk full"))

	_, err := p.ParseFolderList(ctx, account, []byte(`<FolderSync><Status>1</Status><SyncKey>Syk2</SyncKey></FolderSync>`))
	require.Error(t, err)
	assert.Equal(t, "Syk1", account.SyncKey)
}
