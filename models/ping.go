// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// PingResult is the parsed outcome of one Ping response.
type PingResult struct {
	// HasChanges is false when the heartbeat expired without changes.
	HasChanges bool

	// ChangedServerIDs are the collection server ids the server reported as
	// changed.
	ChangedServerIDs []string
}
