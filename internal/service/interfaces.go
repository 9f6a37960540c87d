// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the sync engine: the FolderSync bootstrap loop,
// the per-collection Sync loop, the Ping long-poll loop, attachment
// streaming and account validation.
//
// One [Worker] drives one [Session]. Everything a session does is strictly
// sequential: a command is only sent after the previous response has been
// fully consumed. Storage, response parsing and scheduling are collaborators
// behind the interfaces declared here.
package service

import (
	"context"

	"github.com/MKhiriev/go-eas-sync/internal/wire"
	"github.com/MKhiriev/go-eas-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// Scheduler starts collection workers on behalf of the engine.
type Scheduler interface {
	// StartManualSync requests a resync of the collection.
	StartManualSync(ctx context.Context, collectionID int64) error
	// CanSync reports whether the collection may be synced right now.
	CanSync(collectionID int64) bool
	// Kick wakes waiters after collections were switched to push mode in
	// bulk.
	Kick()
}

// FolderListParser consumes a FolderSync response body.
type FolderListParser interface {
	// ParseFolderList applies the response to storage and to account.SyncKey.
	// It returns true when FolderSync must be sent again immediately.
	ParseFolderList(ctx context.Context, account *models.Account, body []byte) (bool, error)
}

// PingResponseParser consumes a Ping response body. It returns
// [ErrStaleFolderList] when the server reports the folder hierarchy changed.
type PingResponseParser interface {
	ParsePingResponse(ctx context.Context, body []byte) (models.PingResult, error)
}

// CollectionResponseParser consumes a Sync response body for one
// collection.
type CollectionResponseParser interface {
	// ParseCollectionResponse applies the response to storage, updates
	// collection.SyncKey and returns whether more data is available.
	// sentChangeIDs are the pending changes the request carried.
	ParseCollectionResponse(ctx context.Context, collection *models.Collection, body []byte, sentChangeIDs []int64) (bool, error)
}

// Target is the class-specific part of a collection sync.
type Target interface {
	// ClassName is the Class value of Sync and Ping commands.
	ClassName() string
	// AppendLocalChanges writes queued outbound changes into the Sync
	// command being built.
	AppendLocalChanges(ctx context.Context, b wire.Builder) error
	// ApplyServerResponse hands the response to the parser and reports
	// whether more data is available.
	ApplyServerResponse(ctx context.Context, body []byte) (bool, error)
	// Cleanup runs after every applied response.
	Cleanup(ctx context.Context) error
}
