package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-eas-sync/internal/logger"
	"github.com/MKhiriev/go-eas-sync/models"
)

var collectionColumns = []string{
	"id", "account_id", "server_id", "parent_server_id", "display_name",
	"type", "class", "sync_key", "sync_mode",
}

type collectionRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewCollectionRepository returns a [CollectionRepository] backed by db.
func NewCollectionRepository(db *DB, logger *logger.Logger) CollectionRepository {
	return &collectionRepository{db: db, logger: logger}
}

func scanCollection(row scanner) (models.Collection, error) {
	var (
		c     models.Collection
		class string
		mode  int
	)
	err := row.Scan(&c.ID, &c.AccountID, &c.ServerID, &c.ParentServerID, &c.DisplayName,
		&c.Type, &class, &c.SyncKey, &mode)
	if err != nil {
		return models.Collection{}, err
	}
	c.Class = models.CollectionClass(class)
	c.SyncMode = models.SyncMode(mode)
	return c, nil
}

func (r *collectionRepository) list(ctx context.Context, where sq.Sqlizer) ([]models.Collection, error) {
	rows, err := query(ctx, r.db, r.db.builder().
		Select(collectionColumns...).
		From("collections").
		Where(where).
		OrderBy("id"))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var collections []models.Collection
	for rows.Next() {
		c, err := scanCollection(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		collections = append(collections, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return collections, nil
}

func (r *collectionRepository) ListCollections(ctx context.Context, accountID int64) ([]models.Collection, error) {
	return r.list(ctx, sq.Eq{"account_id": accountID})
}

func (r *collectionRepository) ListPushCollections(ctx context.Context, accountID int64) ([]models.Collection, error) {
	return r.list(ctx, sq.Eq{"account_id": accountID, "sync_mode": int(models.SyncModePush)})
}

func (r *collectionRepository) get(ctx context.Context, where sq.Sqlizer) (models.Collection, error) {
	row, err := queryRow(ctx, r.db, r.db.builder().
		Select(collectionColumns...).
		From("collections").
		Where(where))
	if err != nil {
		return models.Collection{}, err
	}

	c, err := scanCollection(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Collection{}, ErrCollectionNotFound
	}
	if err != nil {
		return models.Collection{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return c, nil
}

func (r *collectionRepository) GetCollection(ctx context.Context, collectionID int64) (models.Collection, error) {
	return r.get(ctx, sq.Eq{"id": collectionID})
}

func (r *collectionRepository) FindCollectionByServerID(ctx context.Context, accountID int64, serverID string) (models.Collection, error) {
	return r.get(ctx, sq.Eq{"account_id": accountID, "server_id": serverID})
}

func (r *collectionRepository) SaveCollectionSyncKey(ctx context.Context, collectionID int64, syncKey string) error {
	res, err := exec(ctx, r.db, r.db.builder().
		Update("collections").
		Set("sync_key", syncKey).
		Where(sq.Eq{"id": collectionID}))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "collectionRepository.SaveCollectionSyncKey").Msg("error saving sync key")
		return err
	}
	return affectOne(res, ErrCollectionNotFound)
}

func (r *collectionRepository) SetCollectionSyncMode(ctx context.Context, collectionID int64, mode models.SyncMode) error {
	res, err := exec(ctx, r.db, r.db.builder().
		Update("collections").
		Set("sync_mode", int(mode)).
		Where(sq.Eq{"id": collectionID}))
	if err != nil {
		return err
	}
	return affectOne(res, ErrCollectionNotFound)
}

func (r *collectionRepository) PromotePingCollections(ctx context.Context, accountID int64) (int64, error) {
	res, err := exec(ctx, r.db, r.db.builder().
		Update("collections").
		Set("sync_mode", int(models.SyncModePush)).
		Where(sq.Eq{"account_id": accountID, "sync_mode": int(models.SyncModePing)}))
	if err != nil {
		return 0, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return n, nil
}

func (r *collectionRepository) ApplyFolderChanges(ctx context.Context, accountID int64, changes models.FolderChanges) error {
	err := r.db.inTx(ctx, "collectionRepository.ApplyFolderChanges", func(tx *sql.Tx) error {
		for _, c := range changes.Added {
			insert := r.db.builder().
				Insert("collections").
				Columns("account_id", "server_id", "parent_server_id", "display_name", "type", "class", "sync_key", "sync_mode").
				Values(accountID, c.ServerID, c.ParentServerID, c.DisplayName, c.Type, string(c.Class), c.SyncKey, int(c.SyncMode)).
				Suffix("ON CONFLICT (account_id, server_id) DO UPDATE SET " +
					"parent_server_id = excluded.parent_server_id, display_name = excluded.display_name, " +
					"type = excluded.type, class = excluded.class")
			if _, err := exec(ctx, tx, insert); err != nil {
				return err
			}
		}

		for _, c := range changes.Updated {
			update := r.db.builder().
				Update("collections").
				Set("parent_server_id", c.ParentServerID).
				Set("display_name", c.DisplayName).
				Set("type", c.Type).
				Set("class", string(c.Class)).
				Where(sq.Eq{"account_id": accountID, "server_id": c.ServerID})
			if _, err := exec(ctx, tx, update); err != nil {
				return err
			}
		}

		if len(changes.Deleted) > 0 {
			del := r.db.builder().
				Delete("collections").
				Where(sq.Eq{"account_id": accountID, "server_id": changes.Deleted})
			if _, err := exec(ctx, tx, del); err != nil {
				return err
			}
		}

		res, err := exec(ctx, tx, r.db.builder().
			Update("accounts").
			Set("sync_key", changes.SyncKey).
			Where(sq.Eq{"id": accountID}))
		if err != nil {
			return err
		}
		return affectOne(res, ErrAccountNotFound)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "collectionRepository.ApplyFolderChanges").Msg("error applying folder changes")
		return err
	}
	return nil
}

func (r *collectionRepository) ResetFolders(ctx context.Context, accountID int64) error {
	return r.db.inTx(ctx, "collectionRepository.ResetFolders", func(tx *sql.Tx) error {
		if _, err := exec(ctx, tx, r.db.builder().
			Delete("collections").
			Where(sq.Eq{"account_id": accountID})); err != nil {
			return err
		}

		res, err := exec(ctx, tx, r.db.builder().
			Update("accounts").
			Set("sync_key", models.InitialSyncKey).
			Where(sq.Eq{"id": accountID}))
		if err != nil {
			return err
		}
		return affectOne(res, ErrAccountNotFound)
	})
}
