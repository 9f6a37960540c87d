// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

// InitialSyncKey is the sync key of a collection or account that has never
// completed a round-trip with the server.
const InitialSyncKey = "0"

// Account is the local view of one Exchange ActiveSync account.
//
// Host, credentials and TLS flags come from configuration; ID, Lookback and
// SyncKey are owned by the storage layer. SyncKey is the FolderSync cursor and
// is replaced only by a successful FolderSync response.
type Account struct {
	// ID is the local identifier of the account row.
	ID int64 `json:"id"`

	// Host is the server address, optionally with a port ("mail.example.com:443").
	Host string `json:"host"`

	// Username is sent in the User query parameter and in Basic auth.
	Username string `json:"username"`

	// Password is never persisted by the engine.
	Password string `json:"-"`

	// UseSSL selects the https scheme.
	UseSSL bool `json:"use_ssl"`

	// TrustAllCerts disables certificate and host name verification.
	// It is an explicit opt-in for self-signed servers.
	TrustAllCerts bool `json:"trust_all_certs"`

	// Lookback is the mail sync window used for the Sync FilterType option.
	Lookback Lookback `json:"lookback"`

	// SyncKey is the account-level FolderSync cursor. Empty means unset.
	SyncKey string `json:"sync_key"`
}

// Lookback is the configured sync window of an account.
type Lookback int

const (
	LookbackUnset Lookback = iota
	Lookback1Day
	Lookback3Days
	Lookback1Week
	Lookback2Weeks
	Lookback1Month
	LookbackAll
)

// FilterType values understood by the server.
const (
	FilterAll     = "0"
	Filter1Day    = "1"
	Filter3Days   = "2"
	Filter1Week   = "3"
	Filter2Weeks  = "4"
	Filter1Month  = "5"
	DefaultFilter = Filter1Week
)

// FilterType maps the lookback window to the FilterType value of a Sync
// command. Unmapped values fall back to one week.
func (l Lookback) FilterType() string {
	switch l {
	case Lookback1Day:
		return Filter1Day
	case Lookback3Days:
		return Filter3Days
	case Lookback1Week:
		return Filter1Week
	case Lookback2Weeks:
		return Filter2Weeks
	case Lookback1Month:
		return Filter1Month
	case LookbackAll:
		return FilterAll
	default:
		return DefaultFilter
	}
}

func (l Lookback) String() string {
	switch l {
	case Lookback1Day:
		return "1d"
	case Lookback3Days:
		return "3d"
	case Lookback1Week:
		return "1w"
	case Lookback2Weeks:
		return "2w"
	case Lookback1Month:
		return "1m"
	case LookbackAll:
		return "all"
	default:
		return "none"
	}
}

// ParseLookback parses the configuration spelling of a lookback window.
// An empty string yields [LookbackUnset].
func ParseLookback(s string) (Lookback, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return LookbackUnset, nil
	case "1d":
		return Lookback1Day, nil
	case "3d":
		return Lookback3Days, nil
	case "1w":
		return Lookback1Week, nil
	case "2w":
		return Lookback2Weeks, nil
	case "1m":
		return Lookback1Month, nil
	case "all":
		return LookbackAll, nil
	}
	return LookbackUnset, fmt.Errorf("unknown lookback %q", s)
}
