package service

import (
	"bytes"
	"io"
	"net/http"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-eas-sync/internal/adapter"
	"github.com/MKhiriev/go-eas-sync/internal/logger"
	"github.com/MKhiriev/go-eas-sync/internal/mock"
	"github.com/MKhiriev/go-eas-sync/internal/store"
	"github.com/MKhiriev/go-eas-sync/models"
)

type testDeps struct {
	ctrl *gomock.Controller

	adapter     *mock.MockServerAdapter
	accounts    *mock.MockAccountRepository
	collections *mock.MockCollectionRepository
	items       *mock.MockItemRepository
	attachments *mock.MockAttachmentRepository
	scheduler   *mock.MockScheduler
	storages    *store.ClientStorages
}

func newTestDeps(t *testing.T) *testDeps {
	t.Helper()
	ctrl := gomock.NewController(t)

	d := &testDeps{
		ctrl:        ctrl,
		adapter:     mock.NewMockServerAdapter(ctrl),
		accounts:    mock.NewMockAccountRepository(ctrl),
		collections: mock.NewMockCollectionRepository(ctrl),
		items:       mock.NewMockItemRepository(ctrl),
		attachments: mock.NewMockAttachmentRepository(ctrl),
		scheduler:   mock.NewMockScheduler(ctrl),
	}
	d.storages = &store.ClientStorages{
		AccountRepository:    d.accounts,
		CollectionRepository: d.collections,
		ItemRepository:       d.items,
		AttachmentRepository: d.attachments,
	}
	return d
}

func testAccount() *models.Account {
	return &models.Account{
		ID:       1,
		Host:     "mail.example.com",
		Username: "user",
		Lookback: models.Lookback1Week,
		SyncKey:  models.InitialSyncKey,
	}
}

func testIdentity() models.SessionIdentity {
	return models.SessionIdentity{DeviceID: "droid42", DeviceType: "Android"}
}

func newMainSession(account *models.Account) *Session {
	mailbox := models.AccountMailbox(account.ID)
	return NewSession(account, &mailbox, testIdentity(), logger.Nop())
}

func newCollectionSession(account *models.Account, collection *models.Collection) *Session {
	return NewSession(account, collection, testIdentity(), logger.Nop())
}

// response builds a 2xx-or-not response whose body declares its length.
func response(status int, body string) *adapter.Response {
	return &adapter.Response{
		StatusCode:    status,
		Header:        http.Header{},
		ContentLength: int64(len(body)),
		Body:          io.NopCloser(bytes.NewReader([]byte(body))),
	}
}

func chunkedResponse(status int, body string) *adapter.Response {
	resp := response(status, body)
	resp.ContentLength = -1
	resp.TransferEncoding = []string{"chunked"}
	return resp
}
