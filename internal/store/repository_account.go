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

type accountRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewAccountRepository returns an [AccountRepository] backed by db.
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	return &accountRepository{db: db, logger: logger}
}

func (r *accountRepository) EnsureAccount(ctx context.Context, account *models.Account) error {
	log := logger.FromContext(ctx)

	err := r.db.inTx(ctx, "accountRepository.EnsureAccount", func(tx *sql.Tx) error {
		insert := r.db.builder().
			Insert("accounts").
			Columns("host", "username", "lookback", "sync_key").
			Values(account.Host, account.Username, int(account.Lookback), "").
			Suffix("ON CONFLICT (host, username) DO NOTHING")
		if _, err := exec(ctx, tx, insert); err != nil {
			return err
		}

		row, err := queryRow(ctx, tx, r.db.builder().
			Select("id", "lookback", "sync_key").
			From("accounts").
			Where(sq.Eq{"host": account.Host, "username": account.Username}))
		if err != nil {
			return err
		}

		var (
			id       int64
			lookback int
			syncKey  string
		)
		if err = row.Scan(&id, &lookback, &syncKey); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		switch stored := models.Lookback(lookback); {
		case account.Lookback == models.LookbackUnset:
			account.Lookback = stored
		case account.Lookback != stored:
			update := r.db.builder().
				Update("accounts").
				Set("lookback", int(account.Lookback)).
				Where(sq.Eq{"id": id})
			if _, err = exec(ctx, tx, update); err != nil {
				return err
			}
		}

		account.ID = id
		account.SyncKey = syncKey
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "accountRepository.EnsureAccount").Msg("error loading account")
		return err
	}

	return nil
}

func (r *accountRepository) GetAccount(ctx context.Context, accountID int64) (models.Account, error) {
	row, err := queryRow(ctx, r.db, r.db.builder().
		Select("id", "host", "username", "lookback", "sync_key").
		From("accounts").
		Where(sq.Eq{"id": accountID}))
	if err != nil {
		return models.Account{}, err
	}

	var (
		account  models.Account
		lookback int
	)
	err = row.Scan(&account.ID, &account.Host, &account.Username, &lookback, &account.SyncKey)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Account{}, ErrAccountNotFound
	}
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	account.Lookback = models.Lookback(lookback)

	return account, nil
}

func (r *accountRepository) SaveFolderSyncKey(ctx context.Context, accountID int64, syncKey string) error {
	res, err := exec(ctx, r.db, r.db.builder().
		Update("accounts").
		Set("sync_key", syncKey).
		Where(sq.Eq{"id": accountID}))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "accountRepository.SaveFolderSyncKey").Msg("error saving folder sync key")
		return err
	}

	return affectOne(res, ErrAccountNotFound)
}
