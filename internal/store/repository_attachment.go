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

type attachmentRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewAttachmentRepository returns an [AttachmentRepository] backed by db.
func NewAttachmentRepository(db *DB, logger *logger.Logger) AttachmentRepository {
	return &attachmentRepository{db: db, logger: logger}
}

func (r *attachmentRepository) GetAttachment(ctx context.Context, attachmentID int64) (models.Attachment, error) {
	row, err := queryRow(ctx, r.db, r.db.builder().
		Select("id", "item_server_id", "location", "content_uri", "mime_type").
		From("attachments").
		Where(sq.Eq{"id": attachmentID}))
	if err != nil {
		return models.Attachment{}, err
	}

	var a models.Attachment
	err = row.Scan(&a.ID, &a.ItemServerID, &a.Location, &a.ContentURI, &a.MimeType)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Attachment{}, ErrAttachmentNotFound
	}
	if err != nil {
		return models.Attachment{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return a, nil
}

func (r *attachmentRepository) UpdateAttachment(ctx context.Context, attachment models.Attachment) error {
	res, err := exec(ctx, r.db, r.db.builder().
		Update("attachments").
		Set("content_uri", attachment.ContentURI).
		Set("mime_type", attachment.MimeType).
		Where(sq.Eq{"id": attachment.ID}))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "attachmentRepository.UpdateAttachment").Msg("error updating attachment")
		return err
	}
	return affectOne(res, ErrAttachmentNotFound)
}
