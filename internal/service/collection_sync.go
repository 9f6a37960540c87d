package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-eas-sync/internal/adapter"
	"github.com/MKhiriev/go-eas-sync/internal/store"
	"github.com/MKhiriev/go-eas-sync/internal/wire"
	"github.com/MKhiriev/go-eas-sync/models"
)

// Sync command constants.
const (
	syncWindowSize            = "10"
	bodyPreferenceText        = "1"
	bodyPreferenceTruncation  = "200000"
	deletesAsMovesEnabledFlag = "1"
)

// CollectionSyncer runs the incremental Sync loop of one collection.
type CollectionSyncer struct {
	adapter  adapter.ServerAdapter
	codec    wire.Codec
	storages *store.ClientStorages
	parser   CollectionResponseParser
}

// NewCollectionSyncer creates a CollectionSyncer.
func NewCollectionSyncer(
	serverAdapter adapter.ServerAdapter,
	codec wire.Codec,
	storages *store.ClientStorages,
	parser CollectionResponseParser,
) *CollectionSyncer {
	return &CollectionSyncer{
		adapter:  serverAdapter,
		codec:    codec,
		storages: storages,
		parser:   parser,
	}
}

// Sync synchronizes the session's mailbox until the server has nothing more
// or the session is stopped.
//
// A 401/403 aborts with [ErrAuthenticationFailure]. Any other non-2xx status
// is logged and ends this sync without an error; the collection keeps its
// cursor and is retried on its next opportunity.
func (c *CollectionSyncer) Sync(ctx context.Context, sess *Session) error {
	collection := sess.Mailbox()
	log := sess.Logger()
	sess.setState(StateSyncingCollection)

	if collection.SyncKey == "" {
		log.Info().Msg("collection sync key reset")
		if err := c.initialize(ctx, collection); err != nil {
			return err
		}
	}

	target := NewTarget(collection, c.storages, c.parser)

	more := true
	for more && !sess.Stopped() {
		var err error
		more, err = c.roundTrip(ctx, sess, target)
		if err != nil {
			return err
		}
	}

	return nil
}

func (c *CollectionSyncer) initialize(ctx context.Context, collection *models.Collection) error {
	collection.SyncKey = models.InitialSyncKey
	collection.SyncMode = models.SyncModePush

	if err := c.storages.CollectionRepository.SaveCollectionSyncKey(ctx, collection.ID, collection.SyncKey); err != nil {
		return fmt.Errorf("reset collection sync key: %w", err)
	}
	if err := c.storages.CollectionRepository.SetCollectionSyncMode(ctx, collection.ID, collection.SyncMode); err != nil {
		return fmt.Errorf("set collection push mode: %w", err)
	}
	return nil
}

// roundTrip sends one Sync command and reports whether more data is
// available.
func (c *CollectionSyncer) roundTrip(ctx context.Context, sess *Session, target Target) (bool, error) {
	collection := sess.Mailbox()
	log := sess.Logger()

	log.Debug().
		Str("class", target.ClassName()).
		Str("sync_key", collection.SyncKey).
		Msg("sending Sync")

	body, err := c.buildSync(ctx, sess, target)
	if err != nil {
		return false, err
	}

	resp, err := c.adapter.SendCommand(ctx, adapter.Command{
		Name:            adapter.CmdSync,
		Body:            body,
		ContentType:     c.codec.MimeType(),
		ProtocolVersion: sess.ProtocolVersion(),
	})
	if err != nil {
		return false, transportFailure(adapter.CmdSync, err)
	}
	defer resp.Close()

	if !resp.IsSuccess() {
		log.Warn().Int("status", resp.StatusCode).Msg("Sync response error")
		if resp.IsAuthFailure() {
			sess.SetExitStatus(models.ExitLoginFailure)
			return false, authFailure(adapter.CmdSync, resp.StatusCode)
		}
		return false, nil
	}

	if resp.IsChunked() {
		log.Warn().Msg("Sync response is chunked, ignoring it")
		return false, nil
	}

	data, err := adapter.DecodeBody(resp)
	if err != nil {
		return false, transportFailure(adapter.CmdSync, err)
	}
	if len(data) == 0 {
		return false, nil
	}

	more, err := target.ApplyServerResponse(ctx, data)
	if err != nil {
		return false, fmt.Errorf("apply Sync response: %w", err)
	}
	if err = target.Cleanup(ctx); err != nil {
		return false, fmt.Errorf("cleanup after Sync: %w", err)
	}

	return more, nil
}

func (c *CollectionSyncer) buildSync(ctx context.Context, sess *Session, target Target) ([]byte, error) {
	collection := sess.Mailbox()
	className := target.ClassName()

	b := c.codec.NewBuilder().
		Start("Sync").
		Start("Collections").
		Start("Collection").
		Data("Class", className).
		Data("SyncKey", collection.SyncKey).
		Data("CollectionId", collection.ServerID).
		Data("DeletesAsMoves", deletesAsMovesEnabledFlag)

	// the server rejects GetChanges together with the initial sync key
	if collection.SyncKey != models.InitialSyncKey {
		b.Tag("GetChanges")
	}
	b.Data("WindowSize", syncWindowSize)

	options := false
	if className != string(models.ClassContacts) {
		options = true
		b.Start("Options").
			Data("FilterType", sess.Account().Lookback.FilterType())
	}
	// only 12.0 knows BodyPreference; 2.5 truncates bodies on its own
	if sess.ProtocolVersion() == PreferredProtocolVersion && !options {
		options = true
		b.Start("Options").
			Start("BodyPreference").
			Data("Type", bodyPreferenceText).
			Data("TruncationSize", bodyPreferenceTruncation).
			End()
	}
	if options {
		b.End()
	}

	if err := target.AppendLocalChanges(ctx, b); err != nil {
		return nil, fmt.Errorf("append local changes: %w", err)
	}

	body, err := b.End().End().End().Bytes()
	if err != nil {
		return nil, fmt.Errorf("build Sync: %w", err)
	}
	return body, nil
}
