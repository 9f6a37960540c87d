package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-eas-sync/internal/adapter"
	"github.com/MKhiriev/go-eas-sync/internal/logger"
	"github.com/MKhiriev/go-eas-sync/internal/store"
	"github.com/MKhiriev/go-eas-sync/internal/wire"
	"github.com/MKhiriev/go-eas-sync/models"
)

// Dependencies are the collaborators an [Engine] is assembled from.
type Dependencies struct {
	Adapter   adapter.ServerAdapter
	Codec     wire.Codec
	Storages  *store.ClientStorages
	Scheduler Scheduler

	FolderParser     FolderListParser
	PingParser       PingResponseParser
	CollectionParser CollectionResponseParser

	PingPolicy    PingPolicy
	VersionPolicy VersionPolicy
	Identity      models.SessionIdentity
	Logger        *logger.Logger
}

// Engine runs the workers of one account. The account worker is created
// once; collection workers are created per scheduled sync and inherit the
// protocol version the account worker negotiated.
type Engine struct {
	account  *models.Account
	identity models.SessionIdentity
	storages *store.ClientStorages
	logger   *logger.Logger

	folders     *FolderSyncer
	collections *CollectionSyncer
	attachments *AttachmentFetcher

	mainOnce sync.Once
	main     *Worker

	mu      sync.Mutex
	running map[int64]*Worker
}

// NewEngine assembles an Engine for account.
func NewEngine(account *models.Account, deps Dependencies) *Engine {
	ping := NewPingLoop(deps.Adapter, deps.Codec, deps.Storages, deps.Scheduler, deps.PingParser, deps.PingPolicy)

	return &Engine{
		account:     account,
		identity:    deps.Identity,
		storages:    deps.Storages,
		logger:      deps.Logger,
		folders:     NewFolderSyncer(deps.Adapter, deps.Codec, deps.Storages, deps.Scheduler, deps.FolderParser, ping, deps.VersionPolicy),
		collections: NewCollectionSyncer(deps.Adapter, deps.Codec, deps.Storages, deps.CollectionParser),
		attachments: NewAttachmentFetcher(deps.Adapter, deps.Storages),
		running:     make(map[int64]*Worker),
	}
}

// Account returns the account the engine runs.
func (e *Engine) Account() *models.Account {
	return e.account
}

// MainWorker returns the account mailbox worker.
func (e *Engine) MainWorker() *Worker {
	e.mainOnce.Do(func() {
		mailbox := models.AccountMailbox(e.account.ID)
		sess := NewSession(e.account, &mailbox, e.identity, e.logger)
		e.main = newWorker(sess, e.folders.Run)
	})
	return e.main
}

// SyncCollection runs one collection worker to completion on the calling
// goroutine. An authentication failure also stops the account worker; a
// stale folder list is handed to the account worker to re-run FolderSync.
func (e *Engine) SyncCollection(ctx context.Context, collectionID int64) error {
	collection, err := e.storages.CollectionRepository.GetCollection(ctx, collectionID)
	if err != nil {
		return fmt.Errorf("load collection %d: %w", collectionID, err)
	}

	main := e.MainWorker().Session()
	sess := NewSession(e.account, &collection, e.identity, e.logger)
	sess.SetProtocolVersion(main.ProtocolVersion())
	worker := newWorker(sess, collectionLoop(e.collections))

	e.mu.Lock()
	if _, busy := e.running[collectionID]; busy {
		e.mu.Unlock()
		return nil
	}
	e.running[collectionID] = worker
	e.mu.Unlock()

	defer func() {
		e.mu.Lock()
		delete(e.running, collectionID)
		e.mu.Unlock()
	}()

	err = worker.Run(ctx)
	if sess.ExitStatus() == models.ExitLoginFailure {
		main.SetExitStatus(models.ExitLoginFailure)
		main.Stop()
		main.Ping()
	}
	if errors.Is(err, ErrStaleFolderList) {
		main.MarkFolderListStale()
		return nil
	}
	return err
}

// RequestSync hands a sync request to the running worker of the
// collection. It reports false when no worker is running for it.
func (e *Engine) RequestSync(collectionID int64) bool {
	e.mu.Lock()
	worker, ok := e.running[collectionID]
	e.mu.Unlock()

	if ok {
		worker.RequestSync()
	}
	return ok
}

// Ping wakes the account worker's push wait.
func (e *Engine) Ping() {
	e.MainWorker().Ping()
}

// FetchAttachment streams one attachment on a dedicated session.
func (e *Engine) FetchAttachment(ctx context.Context, req models.AttachmentRequest) error {
	collection, err := e.storages.CollectionRepository.GetCollection(ctx, req.CollectionID)
	if err != nil {
		return fmt.Errorf("load collection %d: %w", req.CollectionID, err)
	}

	sess := NewSession(e.account, &collection, e.identity, e.logger)
	sess.SetProtocolVersion(e.MainWorker().Session().ProtocolVersion())
	defer sess.setState(StateStopped)

	return e.attachments.Fetch(ctx, sess, req)
}

// Snapshot reports the account worker and the running collection workers.
func (e *Engine) Snapshot() []SessionSnapshot {
	snapshots := []SessionSnapshot{e.MainWorker().Session().Snapshot()}

	e.mu.Lock()
	defer e.mu.Unlock()
	for _, w := range e.running {
		snapshots = append(snapshots, w.Session().Snapshot())
	}
	return snapshots
}
