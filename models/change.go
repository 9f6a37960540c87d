// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ChangeKind is the kind of a Sync command.
type ChangeKind string

const (
	ChangeAdd    ChangeKind = "Add"
	ChangeUpdate ChangeKind = "Change"
	ChangeDelete ChangeKind = "Delete"
)

// Change is one item mutation inside a collection. Outbound changes are
// queued locally and sent with the next Sync request; inbound changes are
// the server's Commands applied by the response parser.
type Change struct {
	// ID is the local row id of a pending outbound change. Zero for inbound
	// changes.
	ID           int64      `json:"id,omitempty"`
	CollectionID int64      `json:"collection_id"`
	Kind         ChangeKind `json:"kind"`

	// ServerID is empty for locally created items that the server has not
	// acknowledged yet.
	ServerID string `json:"server_id,omitempty"`

	// ClientID correlates a local Add with the server's response.
	ClientID string `json:"client_id,omitempty"`

	// Data is the serialized ApplicationData of the item.
	Data []byte `json:"data,omitempty"`
}

// ChangeAck is the server's answer to one outbound Add.
type ChangeAck struct {
	ClientID string
	ServerID string
	Status   string
}
