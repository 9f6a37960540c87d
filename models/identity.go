// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SessionIdentity is the device identity a worker presents to the server.
// It is computed once at startup and shared read-only by every session.
type SessionIdentity struct {
	DeviceID   string `json:"device_id"`
	DeviceType string `json:"device_type"`
}
