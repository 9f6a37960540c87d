// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "io"

// Attachment is the locally known metadata of one message attachment.
type Attachment struct {
	ID           int64  `json:"id"`
	ItemServerID string `json:"item_server_id"`

	// Location is the server-side attachment reference sent as
	// AttachmentName.
	Location string `json:"location"`

	// ContentURI is where the downloaded bytes were stored. Empty until the
	// first successful download.
	ContentURI string `json:"content_uri,omitempty"`
	MimeType   string `json:"mime_type,omitempty"`
}

// ProgressFunc receives the percent of an attachment written so far.
type ProgressFunc func(percent int)

// AttachmentRequest asks for one attachment to be downloaded into Sink.
// It only lives for the duration of a single download.
type AttachmentRequest struct {
	Attachment   Attachment
	CollectionID int64

	// Progress is optional.
	Progress ProgressFunc

	// Sink receives the attachment bytes chunk by chunk.
	Sink io.Writer

	// StoragePath is recorded as the attachment's ContentURI once the
	// download has completed.
	StoragePath string
}
