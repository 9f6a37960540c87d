package service

import (
	"context"

	"github.com/MKhiriev/go-eas-sync/internal/adapter"
	"github.com/MKhiriev/go-eas-sync/internal/wire"
	"github.com/MKhiriev/go-eas-sync/models"
)

// Validate checks that the server behind serverAdapter accepts the
// account's credentials by sending a FolderSync with the initial sync key.
// Nothing is persisted.
//
// It returns nil on 2xx, an [ErrAuthenticationFailure] on 401/403 and an
// [ErrIO] for anything else.
func Validate(ctx context.Context, serverAdapter adapter.ServerAdapter, codec wire.Codec) error {
	body, err := codec.NewBuilder().
		Start("FolderSync").
		Data("SyncKey", models.InitialSyncKey).
		End().
		Bytes()
	if err != nil {
		return protocolViolation(adapter.CmdFolderSync, "build validation request: %s", err.Error())
	}

	resp, err := serverAdapter.SendCommand(ctx, adapter.Command{
		Name:            adapter.CmdFolderSync,
		Body:            body,
		ContentType:     codec.MimeType(),
		ProtocolVersion: PinnedProtocolVersion,
	})
	if err != nil {
		return transportFailure(adapter.CmdFolderSync, err)
	}
	defer resp.Close()

	switch {
	case resp.IsSuccess():
		return nil
	case resp.IsAuthFailure():
		return authFailure(adapter.CmdFolderSync, resp.StatusCode)
	default:
		return transportFailure(adapter.CmdFolderSync, adapter.StatusError(resp))
	}
}
