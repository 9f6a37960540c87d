// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package wire defines the command document builder the engine writes
// FolderSync, Sync and Ping bodies with.
//
// The engine only drives a [Builder]; the byte format belongs to the
// [Codec]. [XMLCodec] renders commands as plain XML.
package wire

// Builder assembles one hierarchical command document. Methods chain; the
// first error is kept and reported by Bytes.
type Builder interface {
	// Start opens element tag.
	Start(tag string) Builder
	// End closes the innermost open element.
	End() Builder
	// Text writes character data into the current element.
	Text(text string) Builder
	// Data writes a complete leaf element <tag>value</tag>.
	Data(tag, value string) Builder
	// Tag writes an empty flag element.
	Tag(tag string) Builder
	// Bytes closes any element still open and returns the document.
	Bytes() ([]byte, error)
}

// Codec creates builders for one serialization format.
type Codec interface {
	NewBuilder() Builder
	// MimeType is sent as the Content-Type of command requests.
	MimeType() string
}
