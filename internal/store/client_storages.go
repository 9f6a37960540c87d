package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-eas-sync/internal/config"
	"github.com/MKhiriev/go-eas-sync/internal/logger"
)

// ClientStorages groups all storage repositories into a single value that
// can be passed around the engine.
type ClientStorages struct {
	AccountRepository    AccountRepository
	CollectionRepository CollectionRepository
	ItemRepository       ItemRepository
	AttachmentRepository AttachmentRepository

	db *DB
}

// NewClientStorages initialises the storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens a PostgreSQL connection when cfg.DB.DSN is a postgres:// URL,
//     an SQLite database file otherwise.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs the repositories on top of the connection.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := Open(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err := db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newClientStorages(db, logger), nil
}

func newClientStorages(db *DB, logger *logger.Logger) *ClientStorages {
	return &ClientStorages{
		AccountRepository:    NewAccountRepository(db, logger),
		CollectionRepository: NewCollectionRepository(db, logger),
		ItemRepository:       NewItemRepository(db, logger),
		AttachmentRepository: NewAttachmentRepository(db, logger),
		db:                   db,
	}
}

// Close closes the underlying database.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
