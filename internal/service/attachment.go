package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-eas-sync/internal/adapter"
	"github.com/MKhiriev/go-eas-sync/internal/store"
	"github.com/MKhiriev/go-eas-sync/models"
)

// AttachmentChunkSize is the size of one read from the attachment body.
const AttachmentChunkSize = 16 * 1024

// AttachmentFetcher streams attachment content to a caller-supplied sink.
type AttachmentFetcher struct {
	adapter     adapter.ServerAdapter
	attachments store.AttachmentRepository
	chunkSize   int
}

// NewAttachmentFetcher creates an AttachmentFetcher.
func NewAttachmentFetcher(serverAdapter adapter.ServerAdapter, storages *store.ClientStorages) *AttachmentFetcher {
	return &AttachmentFetcher{
		adapter:     serverAdapter,
		attachments: storages.AttachmentRepository,
		chunkSize:   AttachmentChunkSize,
	}
}

// Fetch downloads one attachment into req.Sink, reporting progress after
// each chunk, and records the storage location and content type once every
// declared byte has been written.
func (f *AttachmentFetcher) Fetch(ctx context.Context, sess *Session, req models.AttachmentRequest) error {
	log := sess.Logger()
	sess.setState(StateFetchingAttachment)

	log.Info().
		Int64("attachment_id", req.Attachment.ID).
		Str("location", req.Attachment.Location).
		Msg("fetching attachment")

	resp, err := f.adapter.GetAttachment(ctx, req.Attachment.Location)
	if err != nil {
		return transportFailure(adapter.CmdGetAttachment, err)
	}
	defer resp.Close()

	if !resp.IsSuccess() {
		log.Warn().Int("status", resp.StatusCode).Msg("GetAttachment response error")
		if resp.IsAuthFailure() {
			sess.SetExitStatus(models.ExitLoginFailure)
			return authFailure(adapter.CmdGetAttachment, resp.StatusCode)
		}
		return transportFailure(adapter.CmdGetAttachment, adapter.StatusError(resp))
	}

	total := resp.ContentLength
	if total < 0 {
		return protocolViolation(adapter.CmdGetAttachment, "attachment length is not declared")
	}

	if total > 0 {
		if err = f.copy(resp.Body, req.Sink, total, req.Progress); err != nil {
			return err
		}
	}

	attachment := req.Attachment
	attachment.ContentURI = req.StoragePath
	attachment.MimeType = resp.ContentType()
	if err = f.attachments.UpdateAttachment(ctx, attachment); err != nil {
		return fmt.Errorf("update attachment: %w", err)
	}

	log.Info().
		Int64("attachment_id", attachment.ID).
		Int64("bytes", total).
		Msg("attachment fetched")
	return nil
}

// maxEmptyReads bounds consecutive (0, nil) reads of an attachment body.
const maxEmptyReads = 100

// copy moves exactly total bytes from body to sink. A short read is
// accounted by the bytes it actually returned.
func (f *AttachmentFetcher) copy(body io.Reader, sink io.Writer, total int64, progress models.ProgressFunc) error {
	buf := make([]byte, f.chunkSize)
	var (
		written    int64
		emptyReads int
	)

	for written < total {
		want := int64(len(buf))
		if remaining := total - written; remaining < want {
			want = remaining
		}

		n, err := body.Read(buf[:want])
		if n == 0 && err == nil {
			emptyReads++
			if emptyReads >= maxEmptyReads {
				return transportFailure(adapter.CmdGetAttachment, io.ErrNoProgress)
			}
			continue
		}
		emptyReads = 0
		if n > 0 {
			if _, werr := sink.Write(buf[:n]); werr != nil {
				return fmt.Errorf("write attachment: %w", werr)
			}
			written += int64(n)
			if progress != nil {
				progress(percent(written, total))
			}
		}
		if err != nil {
			if written == total && errors.Is(err, io.EOF) {
				break
			}
			if errors.Is(err, io.EOF) {
				return transportFailure(adapter.CmdGetAttachment,
					fmt.Errorf("body ended after %d of %d bytes", written, total))
			}
			return transportFailure(adapter.CmdGetAttachment, err)
		}
	}

	return nil
}

// percent rounds written*100/total to the nearest integer.
func percent(written, total int64) int {
	return int((written*100 + total/2) / total)
}
