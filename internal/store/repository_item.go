package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-eas-sync/internal/logger"
	"github.com/MKhiriev/go-eas-sync/models"
)

// ackStatusOK is the status of an Add the server accepted.
const ackStatusOK = "1"

const upsertItem = "ON CONFLICT (collection_id, server_id) DO UPDATE SET data = excluded.data"

type itemRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewItemRepository returns an [ItemRepository] backed by db.
func NewItemRepository(db *DB, logger *logger.Logger) ItemRepository {
	return &itemRepository{db: db, logger: logger}
}

func (r *itemRepository) PendingChanges(ctx context.Context, collectionID int64) ([]models.Change, error) {
	rows, err := query(ctx, r.db, r.db.builder().
		Select("id", "collection_id", "kind", "server_id", "client_id", "data").
		From("pending_changes").
		Where(sq.Eq{"collection_id": collectionID}).
		OrderBy("id"))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var changes []models.Change
	for rows.Next() {
		var (
			c    models.Change
			kind string
		)
		if err = rows.Scan(&c.ID, &c.CollectionID, &kind, &c.ServerID, &c.ClientID, &c.Data); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		c.Kind = models.ChangeKind(kind)
		changes = append(changes, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return changes, nil
}

func (r *itemRepository) QueueChange(ctx context.Context, change models.Change) (int64, error) {
	row, err := queryRow(ctx, r.db, r.db.builder().
		Insert("pending_changes").
		Columns("collection_id", "kind", "server_id", "client_id", "data").
		Values(change.CollectionID, string(change.Kind), change.ServerID, change.ClientID, change.Data).
		Suffix("RETURNING id"))
	if err != nil {
		return 0, err
	}

	var id int64
	if err = row.Scan(&id); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "itemRepository.QueueChange").Msg("error queueing change")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return id, nil
}

func (r *itemRepository) DeletePendingChanges(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	_, err := exec(ctx, r.db, r.db.builder().
		Delete("pending_changes").
		Where(sq.Eq{"id": ids}))
	return err
}

func (r *itemRepository) ApplySyncResult(ctx context.Context, collectionID int64, result models.SyncResult) error {
	log := logger.FromContext(ctx)

	err := r.db.inTx(ctx, "itemRepository.ApplySyncResult", func(tx *sql.Tx) error {
		for _, c := range result.Changes {
			if err := r.applyChange(ctx, tx, collectionID, c); err != nil {
				return err
			}
		}

		for _, ack := range result.Acks {
			if ack.Status != ackStatusOK || ack.ServerID == "" {
				log.Warn().
					Str("client_id", ack.ClientID).
					Str("status", ack.Status).
					Msg("server rejected local add")
				continue
			}
			if err := r.applyAck(ctx, tx, collectionID, ack); err != nil {
				return err
			}
		}

		if len(result.SentChangeIDs) > 0 {
			if _, err := exec(ctx, tx, r.db.builder().
				Delete("pending_changes").
				Where(sq.Eq{"collection_id": collectionID, "id": result.SentChangeIDs})); err != nil {
				return err
			}
		}

		res, err := exec(ctx, tx, r.db.builder().
			Update("collections").
			Set("sync_key", result.SyncKey).
			Where(sq.Eq{"id": collectionID}))
		if err != nil {
			return err
		}
		return affectOne(res, ErrCollectionNotFound)
	})
	if err != nil {
		log.Err(err).Str("func", "itemRepository.ApplySyncResult").Msg("error applying sync result")
		return err
	}
	return nil
}

func (r *itemRepository) applyChange(ctx context.Context, tx *sql.Tx, collectionID int64, c models.Change) error {
	var b sq.Sqlizer
	switch c.Kind {
	case models.ChangeAdd, models.ChangeUpdate:
		b = r.db.builder().
			Insert("items").
			Columns("collection_id", "server_id", "data").
			Values(collectionID, c.ServerID, c.Data).
			Suffix(upsertItem)
	case models.ChangeDelete:
		b = r.db.builder().
			Delete("items").
			Where(sq.Eq{"collection_id": collectionID, "server_id": c.ServerID})
	default:
		return fmt.Errorf("unknown change kind %q", c.Kind)
	}

	_, err := exec(ctx, tx, b)
	return err
}

// applyAck stores a locally added item under the server id it was given.
func (r *itemRepository) applyAck(ctx context.Context, tx *sql.Tx, collectionID int64, ack models.ChangeAck) error {
	pending := sq.Select("collection_id").
		Column(sq.Expr("CAST(? AS TEXT)", ack.ServerID)).
		Column("data").
		From("pending_changes").
		Where(sq.Eq{"collection_id": collectionID, "client_id": ack.ClientID, "kind": string(models.ChangeAdd)})

	insert := r.db.builder().
		Insert("items").
		Columns("collection_id", "server_id", "data").
		Select(pending).
		Suffix(upsertItem)

	_, err := exec(ctx, tx, insert)
	return err
}

func (r *itemRepository) ResetCollection(ctx context.Context, collectionID int64) error {
	return r.db.inTx(ctx, "itemRepository.ResetCollection", func(tx *sql.Tx) error {
		if _, err := exec(ctx, tx, r.db.builder().
			Delete("items").
			Where(sq.Eq{"collection_id": collectionID})); err != nil {
			return err
		}

		res, err := exec(ctx, tx, r.db.builder().
			Update("collections").
			Set("sync_key", models.InitialSyncKey).
			Where(sq.Eq{"id": collectionID}))
		if err != nil {
			return err
		}
		return affectOne(res, ErrCollectionNotFound)
	})
}
