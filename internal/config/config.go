// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the sync
// engine. It is populated by merging environment variables, command-line
// flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings: device identity, logging, mode.
	App App `envPrefix:"APP_"`

	// Account holds the server address and credentials of the account the
	// worker synchronizes.
	Account Account `envPrefix:"ACCOUNT_"`

	// Adapter holds transport timeouts and redirect policy.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the local database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the control API listen address.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds Ping loop and scheduler policy.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds process-level settings.
type App struct {
	// DeviceType is sent as the DeviceType query parameter and in the
	// User-Agent header.
	// Env: APP_DEVICE_TYPE
	DeviceType string `env:"DEVICE_TYPE"`

	// DeviceIDFile is where the generated device id is kept between runs.
	// Env: APP_DEVICE_ID_FILE
	DeviceIDFile string `env:"DEVICE_ID_FILE"`

	// AttachmentDir is where attachments fetched through the control API
	// are stored.
	// Env: APP_ATTACHMENT_DIR
	AttachmentDir string `env:"ATTACHMENT_DIR"`

	// LogFile redirects logs to a file when set.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// Version is reported in the User-Agent header.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// ValidateOnly sends one FolderSync to check the credentials and exits.
	// Env: APP_VALIDATE_ONLY
	ValidateOnly bool `env:"VALIDATE_ONLY"`
}

// Account holds the server address and credentials.
type Account struct {
	// Host is the server host, optionally with a port.
	// Env: ACCOUNT_HOST
	Host string `env:"HOST"`

	// Username is used for Basic auth and the User query parameter.
	// Env: ACCOUNT_USERNAME
	Username string `env:"USERNAME"`

	// Password is used for Basic auth. It is never written to storage.
	// Env: ACCOUNT_PASSWORD
	Password string `env:"PASSWORD"`

	// UseSSL selects https.
	// Env: ACCOUNT_SSL
	UseSSL bool `env:"SSL"`

	// TrustAllCerts accepts self-signed and mismatched-host certificates.
	// Env: ACCOUNT_TRUST_ALL_CERTS
	TrustAllCerts bool `env:"TRUST_ALL_CERTS"`

	// Lookback is the mail sync window: 1d, 3d, 1w, 2w, 1m or all.
	// Env: ACCOUNT_LOOKBACK
	Lookback string `env:"LOOKBACK"`
}

// Adapter holds transport settings.
type Adapter struct {
	// ConnectTimeout bounds TCP connect and TLS handshake.
	// Env: ADAPTER_CONNECT_TIMEOUT
	ConnectTimeout time.Duration `env:"CONNECT_TIMEOUT"`

	// ReadTimeout bounds every non-Ping command.
	// Env: ADAPTER_READ_TIMEOUT
	ReadTimeout time.Duration `env:"READ_TIMEOUT"`

	// PingReadMargin is added to the heartbeat to form the Ping read budget.
	// Env: ADAPTER_PING_READ_MARGIN
	PingReadMargin time.Duration `env:"PING_READ_MARGIN"`

	// MaxRedirects bounds redirect following.
	// Env: ADAPTER_MAX_REDIRECTS
	MaxRedirects int `env:"MAX_REDIRECTS"`
}

// Storage groups the configuration for the storage backend.
type Storage struct {
	// DB holds the database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the database backend.
type DB struct {
	// DSN is a SQLite file path or a postgres:// URL.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds the control API settings.
type Server struct {
	// HTTPAddress is the "host:port" the control API listens on. Empty
	// disables the control API.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`
}

// Workers holds Ping loop and scheduler policy.
type Workers struct {
	// PingHeartbeat is the HeartbeatInterval sent with Ping.
	// Env: WORKERS_PING_HEARTBEAT
	PingHeartbeat time.Duration `env:"PING_HEARTBEAT"`

	// PingWindow bounds how long the Ping loop runs before FolderSync.
	// Env: WORKERS_PING_WINDOW
	PingWindow time.Duration `env:"PING_WINDOW"`

	// PingShortSleep is the wait when push collections exist but none is
	// ready yet.
	// Env: WORKERS_PING_SHORT_SLEEP
	PingShortSleep time.Duration `env:"PING_SHORT_SLEEP"`

	// PingLongSleep is the wait when no collection is configured for push.
	// Env: WORKERS_PING_LONG_SLEEP
	PingLongSleep time.Duration `env:"PING_LONG_SLEEP"`

	// ManualSyncRate is the number of manual resyncs started per second.
	// Env: WORKERS_MANUAL_SYNC_RATE
	ManualSyncRate float64 `env:"MANUAL_SYNC_RATE"`

	// ManualSyncBurst is the burst size of manual resyncs.
	// Env: WORKERS_MANUAL_SYNC_BURST
	ManualSyncBurst int `env:"MANUAL_SYNC_BURST"`
}

// GetStructuredConfig loads, merges and validates the configuration from all
// sources in the following order (later non-zero fields win):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
