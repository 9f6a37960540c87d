package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-eas-sync/internal/adapter"
	"github.com/MKhiriev/go-eas-sync/internal/store"
	"github.com/MKhiriev/go-eas-sync/internal/wire"
	"github.com/MKhiriev/go-eas-sync/models"
)

// FolderSyncer runs the account mailbox: version negotiation, the
// FolderSync loop and the push wait between FolderSync cycles.
type FolderSyncer struct {
	adapter   adapter.ServerAdapter
	codec     wire.Codec
	storages  *store.ClientStorages
	scheduler Scheduler
	parser    FolderListParser
	ping      *PingLoop
	policy    VersionPolicy
}

// NewFolderSyncer creates a FolderSyncer. A nil policy means
// [PinnedVersionPolicy].
func NewFolderSyncer(
	serverAdapter adapter.ServerAdapter,
	codec wire.Codec,
	storages *store.ClientStorages,
	scheduler Scheduler,
	parser FolderListParser,
	ping *PingLoop,
	policy VersionPolicy,
) *FolderSyncer {
	if policy == nil {
		policy = PinnedVersionPolicy
	}
	return &FolderSyncer{
		adapter:   serverAdapter,
		codec:     codec,
		storages:  storages,
		scheduler: scheduler,
		parser:    parser,
		ping:      ping,
		policy:    policy,
	}
}

// Run loops until the session is stopped or a fatal error occurs.
func (f *FolderSyncer) Run(ctx context.Context, sess *Session) error {
	account := sess.Account()
	log := sess.Logger()

	if account.SyncKey == "" {
		account.SyncKey = models.InitialSyncKey
		if err := f.storages.AccountRepository.SaveFolderSyncKey(ctx, account.ID, account.SyncKey); err != nil {
			return fmt.Errorf("reset account sync key: %w", err)
		}
		log.Info().Msg("account sync key reset")
	}

	promoted, err := f.storages.CollectionRepository.PromotePingCollections(ctx, account.ID)
	if err != nil {
		return fmt.Errorf("promote ping collections: %w", err)
	}
	if promoted > 0 {
		log.Info().Int64("promoted", promoted).Msg("ping collections switched to push")
		f.scheduler.Kick()
	}

	log.Info().Str("sync_key", account.SyncKey).Msg("starting account mailbox")

	if err = negotiateVersion(ctx, sess, f.adapter, f.policy); err != nil {
		return err
	}

	for !sess.Stopped() {
		more, err := f.syncFolders(ctx, sess)
		if err != nil {
			return err
		}
		if more {
			continue
		}

		sess.setState(StateWaitingForPush)
		err = f.ping.Run(ctx, sess)
		if errors.Is(err, ErrStaleFolderList) {
			log.Info().Msg("ping interrupted, folder list requires sync")
			continue
		}
		if err != nil {
			return err
		}
	}

	sess.setState(StateStopped)
	return nil
}

// syncFolders sends one FolderSync and reports whether it must be repeated
// immediately.
func (f *FolderSyncer) syncFolders(ctx context.Context, sess *Session) (bool, error) {
	sess.setState(StateSyncingFolders)
	account := sess.Account()
	log := sess.Logger()

	body, err := f.codec.NewBuilder().
		Start("FolderSync").
		Data("SyncKey", account.SyncKey).
		End().
		Bytes()
	if err != nil {
		return false, fmt.Errorf("build FolderSync: %w", err)
	}

	resp, err := f.adapter.SendCommand(ctx, adapter.Command{
		Name:            adapter.CmdFolderSync,
		Body:            body,
		ContentType:     f.codec.MimeType(),
		ProtocolVersion: sess.ProtocolVersion(),
	})
	if err != nil {
		return false, transportFailure(adapter.CmdFolderSync, err)
	}
	defer resp.Close()

	switch {
	case resp.IsAuthFailure():
		sess.SetExitStatus(models.ExitLoginFailure)
		return false, authFailure(adapter.CmdFolderSync, resp.StatusCode)
	case !resp.IsSuccess():
		log.Warn().Int("status", resp.StatusCode).Msg("FolderSync response error")
		return false, nil
	case resp.IsChunked():
		log.Warn().Msg("FolderSync response is chunked, ignoring it")
		return false, nil
	}

	data, err := adapter.DecodeBody(resp)
	if err != nil {
		return false, transportFailure(adapter.CmdFolderSync, err)
	}
	if len(data) == 0 {
		return false, nil
	}

	more, err := f.parser.ParseFolderList(ctx, account, data)
	if err != nil {
		return false, fmt.Errorf("parse FolderSync: %w", err)
	}

	log.Debug().Str("sync_key", account.SyncKey).Bool("more", more).Msg("FolderSync applied")
	return more, nil
}
