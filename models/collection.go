// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AccountMailboxServerID is the server id of the pseudo-collection that
// represents an account's folder list. A worker started for it runs the
// FolderSync/Ping loop instead of a collection sync.
const AccountMailboxServerID = "_main"

// CollectionClass is the Class value sent in Sync and Ping commands.
type CollectionClass string

const (
	ClassEmail    CollectionClass = "Email"
	ClassContacts CollectionClass = "Contacts"
	ClassCalendar CollectionClass = "Calendar"
)

// Folder types reported by FolderSync.
const (
	FolderTypeGeneric      = 1
	FolderTypeInbox        = 2
	FolderTypeDrafts       = 3
	FolderTypeDeleted      = 4
	FolderTypeSent         = 5
	FolderTypeOutbox       = 6
	FolderTypeTasks        = 7
	FolderTypeCalendar     = 8
	FolderTypeContacts     = 9
	FolderTypeNotes        = 10
	FolderTypeJournal      = 11
	FolderTypeUserMail     = 12
	FolderTypeUserCalendar = 13
	FolderTypeUserContacts = 14
)

// ClassForFolderType returns the collection class used for a FolderSync
// folder type. Everything that is not a calendar or contacts folder is
// synchronized as mail.
func ClassForFolderType(folderType int) CollectionClass {
	switch folderType {
	case FolderTypeContacts, FolderTypeUserContacts:
		return ClassContacts
	case FolderTypeCalendar, FolderTypeUserCalendar:
		return ClassCalendar
	default:
		return ClassEmail
	}
}

// SyncMode is how a collection is kept up to date. Positive values are a
// polling interval in minutes.
type SyncMode int

const (
	// SyncModeNever disables automatic sync.
	SyncModeNever SyncMode = -1
	// SyncModePush means the collection is watched by the Ping loop.
	SyncModePush SyncMode = -2
	// SyncModePing is the configured "push" setting before the account
	// worker has started; it is promoted to SyncModePush on startup.
	SyncModePing SyncMode = -3
)

// IsPush reports whether the collection is aggregated into Ping requests.
func (m SyncMode) IsPush() bool {
	return m == SyncModePush
}

// Collection is a mailbox-like entity synchronized incrementally.
//
// SyncKey is "0" before the first successful Sync and is only ever replaced
// with a value the server returned in a well-formed response.
type Collection struct {
	ID             int64           `json:"id"`
	AccountID      int64           `json:"account_id"`
	ServerID       string          `json:"server_id"`
	ParentServerID string          `json:"parent_server_id,omitempty"`
	DisplayName    string          `json:"display_name"`
	Type           int             `json:"type"`
	Class          CollectionClass `json:"class"`
	SyncKey        string          `json:"sync_key"`
	SyncMode       SyncMode        `json:"sync_mode"`
}

// HasBaseline reports whether the server has a sync state for this
// collection to diff against.
func (c Collection) HasBaseline() bool {
	return c.SyncKey != "" && c.SyncKey != InitialSyncKey
}

// IsAccountMailbox reports whether c is the account's folder-list
// pseudo-collection.
func (c Collection) IsAccountMailbox() bool {
	return c.ServerID == AccountMailboxServerID
}

// AccountMailbox returns the folder-list pseudo-collection of an account.
// It is never stored; the account row carries its sync key.
func AccountMailbox(accountID int64) Collection {
	return Collection{
		AccountID:   accountID,
		ServerID:    AccountMailboxServerID,
		DisplayName: "Account",
		SyncMode:    SyncModePush,
	}
}
