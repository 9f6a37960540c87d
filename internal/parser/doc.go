// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package parser turns command responses into storage updates.
//
// Each parser consumes one decoded response body produced by the XML codec
// of package wire. Well-formed responses are applied to storage in a single
// transaction together with the new sync key; malformed ones are reported as
// [service.ErrProtocolViolation] and leave every cursor untouched.
package parser
