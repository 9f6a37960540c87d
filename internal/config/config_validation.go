// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/MKhiriev/go-eas-sync/models"
)

// validate checks the merged [StructuredConfig] for values that cannot be
// parsed later. Missing values are filled with defaults by [GetClientConfig]
// and checked there.
func (cfg *StructuredConfig) validate() error {
	if _, err := models.ParseLookback(cfg.Account.Lookback); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAccountConfigs, err)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Account.Host == "" || cfg.Account.Username == "" {
		return ErrInvalidAccountConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.ConnectTimeout <= 0 || cfg.Adapter.ReadTimeout <= 0 || cfg.Adapter.MaxRedirects < 0 {
		return ErrInvalidAdapterConfigs
	}

	w := cfg.Workers
	if w.PingHeartbeat <= 0 || w.PingWindow <= 0 || w.PingShortSleep <= 0 || w.PingLongSleep <= 0 {
		return ErrInvalidWorkerConfigs
	}
	if w.ManualSyncRate <= 0 || w.ManualSyncBurst <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
