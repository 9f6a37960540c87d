package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAccountConfigs indicates a missing host or username, or an
	// unknown lookback value.
	ErrInvalidAccountConfigs = errors.New("invalid account configuration")
	// ErrInvalidAdapterConfigs indicates non-positive transport timeouts.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates an empty DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidWorkerConfigs indicates non-positive Ping or scheduler
	// settings.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
