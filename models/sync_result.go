// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// FolderChanges is the content of one well-formed FolderSync response. It is
// applied to storage together with SyncKey or not at all.
type FolderChanges struct {
	SyncKey string
	Added   []Collection
	Updated []Collection
	// Deleted lists collection server ids.
	Deleted []string
}

// SyncResult is the content of one well-formed Sync response for a single
// collection. It is applied to storage together with SyncKey or not at all.
type SyncResult struct {
	SyncKey string
	Changes []Change
	Acks    []ChangeAck
	// SentChangeIDs are the pending outbound changes carried by the request
	// this result answers. They are deleted in the same transaction.
	SentChangeIDs []int64
	MoreAvailable bool
}
