// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer used to talk to an
// ActiveSync-style server.
//
// The primary abstraction is [ServerAdapter], which decouples the engine from
// HTTP. Every protocol command is one request against the account's single
// endpoint; the adapter owns URL composition, the cached Basic auth header,
// the protocol-version header and the timeout policy. Responses are handed
// back unread so the engine can decide how to consume them (see
// [DecodeBody] and the attachment streamer).
//
// Transport-library failures never escape this package: they are folded into
// [ErrTransport] so callers can use [errors.Is] without knowing about resty
// or net/http.
package adapter

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter issues protocol commands against one account's endpoint.
//
// Implementations return a non-nil [*Response] for every completed HTTP
// exchange regardless of status; the caller must Close it. An error is
// returned only when no response could be obtained.
type ServerAdapter interface {
	// Options sends an OPTIONS request to the bare endpoint. The server lists
	// the protocol versions it supports in the MS-ASProtocolVersions header.
	Options(ctx context.Context) (*Response, error)

	// SendCommand POSTs cmd. The read budget is cmd.ReadTimeout, or the
	// adapter default when zero.
	SendCommand(ctx context.Context, cmd Command) (*Response, error)

	// GetAttachment requests the content of the attachment stored at
	// location on the server.
	GetAttachment(ctx context.Context, location string) (*Response, error)
}
