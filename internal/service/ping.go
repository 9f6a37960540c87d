package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/go-eas-sync/internal/adapter"
	"github.com/MKhiriev/go-eas-sync/internal/store"
	"github.com/MKhiriev/go-eas-sync/internal/wire"
	"github.com/MKhiriev/go-eas-sync/models"
)

// PingPolicy holds the timing of the Ping loop.
type PingPolicy struct {
	// Window bounds one call of [PingLoop.Run].
	Window time.Duration
	// ShortSleep is used when push collections exist but none is ready.
	ShortSleep time.Duration
	// LongSleep is used when the account has no push collections.
	LongSleep time.Duration
	// Heartbeat is the HeartbeatInterval requested from the server.
	Heartbeat time.Duration
	// ReadMargin is added to Heartbeat to form the read budget of a Ping.
	ReadMargin time.Duration
}

// DefaultPingPolicy returns the stock Ping timings.
func DefaultPingPolicy() PingPolicy {
	return PingPolicy{
		Window:     30 * time.Minute,
		ShortSleep: 10 * time.Second,
		LongSleep:  10 * time.Minute,
		Heartbeat:  900 * time.Second,
		ReadMargin: 30 * time.Second,
	}
}

// PingLoop waits for server-side changes across all push collections of an
// account with a single outstanding Ping request.
type PingLoop struct {
	adapter   adapter.ServerAdapter
	codec     wire.Codec
	storages  *store.ClientStorages
	scheduler Scheduler
	parser    PingResponseParser
	policy    PingPolicy

	now  func() time.Time
	wait func(ctx context.Context, sess *Session, d time.Duration) error
}

// NewPingLoop creates a PingLoop.
func NewPingLoop(
	serverAdapter adapter.ServerAdapter,
	codec wire.Codec,
	storages *store.ClientStorages,
	scheduler Scheduler,
	parser PingResponseParser,
	policy PingPolicy,
) *PingLoop {
	return &PingLoop{
		adapter:   serverAdapter,
		codec:     codec,
		storages:  storages,
		scheduler: scheduler,
		parser:    parser,
		policy:    policy,
		now:       time.Now,
		wait: func(ctx context.Context, sess *Session, d time.Duration) error {
			return sess.Wait(ctx, d)
		},
	}
}

// Run cycles Ping requests until the window ends or the session stops. It
// returns [ErrStaleFolderList] when the folder hierarchy must be re-synced.
func (p *PingLoop) Run(ctx context.Context, sess *Session) error {
	deadline := p.now().Add(p.policy.Window)

	for {
		if sess.takeFolderListStale() {
			sess.Logger().Info().Msg("folder list marked stale by a collection sync")
			return ErrStaleFolderList
		}
		if sess.Stopped() || !p.now().Before(deadline) {
			return nil
		}

		ready, pushable, err := p.readyCollections(ctx, sess)
		if err != nil {
			return err
		}

		sess.updatePing(func(stats *PingStats) {
			stats.Pushable = pushable
			stats.Ready = len(ready)
		})

		if len(ready) == 0 {
			d := p.policy.LongSleep
			if pushable > 0 {
				d = p.policy.ShortSleep
			}
			if err = p.wait(ctx, sess, d); err != nil {
				return err
			}
			continue
		}

		if err = p.pingOnce(ctx, sess, ready); err != nil {
			return err
		}
	}
}

// readyCollections returns the push collections that may be pinged now,
// and how many push collections the account has.
func (p *PingLoop) readyCollections(ctx context.Context, sess *Session) ([]models.Collection, int, error) {
	collections, err := p.storages.CollectionRepository.ListPushCollections(ctx, sess.Account().ID)
	if err != nil {
		return nil, 0, fmt.Errorf("list push collections: %w", err)
	}

	ready := make([]models.Collection, 0, len(collections))
	for _, c := range collections {
		if !p.scheduler.CanSync(c.ID) || !c.HasBaseline() {
			continue
		}
		ready = append(ready, c)
	}

	return ready, len(collections), nil
}

func (p *PingLoop) pingOnce(ctx context.Context, sess *Session, ready []models.Collection) error {
	log := sess.Logger()

	b := p.codec.NewBuilder().
		Start("Ping").
		Data("HeartbeatInterval", strconv.Itoa(int(p.policy.Heartbeat/time.Second))).
		Start("Folders")
	for _, c := range ready {
		b.Start("Folder").
			Data("Id", c.ServerID).
			Data("Class", string(c.Class)).
			End()
	}
	body, err := b.End().End().Bytes()
	if err != nil {
		return fmt.Errorf("build Ping: %w", err)
	}

	readTimeout := p.policy.Heartbeat + p.policy.ReadMargin
	log.Debug().
		Int("folders", len(ready)).
		Dur("timeout", readTimeout).
		Msg("sending ping")

	resp, err := p.adapter.SendCommand(ctx, adapter.Command{
		Name:            adapter.CmdPing,
		Body:            body,
		ContentType:     p.codec.MimeType(),
		ProtocolVersion: sess.ProtocolVersion(),
		ReadTimeout:     readTimeout,
	})
	if err != nil {
		return transportFailure(adapter.CmdPing, err)
	}
	defer resp.Close()

	sess.updatePing(func(stats *PingStats) {
		stats.Sent++
		stats.LastPing = p.now()
	})
	log.Debug().Int("status", resp.StatusCode).Msg("ping response")

	switch {
	case resp.IsAuthFailure():
		sess.SetExitStatus(models.ExitLoginFailure)
		log.Error().Int("status", resp.StatusCode).Msg("authorization error during ping")
		return authFailure(adapter.CmdPing, resp.StatusCode)
	case !resp.IsSuccess():
		log.Warn().Int("status", resp.StatusCode).Msg("ping response error")
		return p.wait(ctx, sess, p.policy.ShortSleep)
	case resp.IsChunked():
		return protocolViolation(adapter.CmdPing, "chunked response")
	}

	data, err := adapter.DecodeBody(resp)
	if err != nil {
		return transportFailure(adapter.CmdPing, err)
	}
	if len(data) == 0 {
		return protocolViolation(adapter.CmdPing, "empty response body")
	}

	result, err := p.parser.ParsePingResponse(ctx, data)
	if err != nil {
		return err
	}
	if !result.HasChanges {
		return nil
	}

	return p.requestResyncs(ctx, sess, result.ChangedServerIDs)
}

func (p *PingLoop) requestResyncs(ctx context.Context, sess *Session, serverIDs []string) error {
	log := sess.Logger()
	accountID := sess.Account().ID

	for _, serverID := range serverIDs {
		c, err := p.storages.CollectionRepository.FindCollectionByServerID(ctx, accountID, serverID)
		if errors.Is(err, store.ErrCollectionNotFound) {
			log.Warn().Str("server_id", serverID).Msg("ping reported unknown collection")
			continue
		}
		if err != nil {
			return fmt.Errorf("find collection %s: %w", serverID, err)
		}

		sess.updatePing(func(stats *PingStats) {
			stats.Changes++
		})
		log.Info().Str("server_id", serverID).Int64("collection_id", c.ID).Msg("requesting resync")
		if err = p.scheduler.StartManualSync(ctx, c.ID); err != nil {
			return fmt.Errorf("start manual sync of %s: %w", serverID, err)
		}
	}

	return nil
}
