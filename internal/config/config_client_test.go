// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-eas-sync/models"
)

func minimalStructuredConfig() *StructuredConfig {
	return &StructuredConfig{
		Account: Account{Host: "mail.example.com", Username: "alice", Password: "secret"},
	}
}

func TestNewClientConfig_AppliesDefaults(t *testing.T) {
	cfg, err := newClientConfig(minimalStructuredConfig())
	require.NoError(t, err)

	assert.Equal(t, DefaultDeviceType, cfg.App.DeviceType)
	assert.Equal(t, DefaultDeviceIDFile, cfg.App.DeviceIDFile)
	assert.Equal(t, models.Lookback1Week, cfg.Account.Lookback)
	assert.Equal(t, DefaultDSN, cfg.Storage.DB.DSN)

	assert.Equal(t, 10*time.Second, cfg.Adapter.ConnectTimeout)
	assert.Equal(t, 20*time.Minute, cfg.Adapter.ReadTimeout)
	assert.Equal(t, DefaultMaxRedirects, cfg.Adapter.MaxRedirects)

	assert.Equal(t, 900*time.Second, cfg.Workers.PingHeartbeat)
	assert.Equal(t, 30*time.Minute, cfg.Workers.PingWindow)
	assert.Equal(t, 10*time.Second, cfg.Workers.PingShortSleep)
	assert.Equal(t, 10*time.Minute, cfg.Workers.PingLongSleep)
}

func TestNewClientConfig_KeepsExplicitValues(t *testing.T) {
	src := minimalStructuredConfig()
	src.Account.Lookback = "all"
	src.Adapter.ReadTimeout = time.Minute
	src.Workers.PingHeartbeat = 5 * time.Minute

	cfg, err := newClientConfig(src)
	require.NoError(t, err)

	assert.Equal(t, models.LookbackAll, cfg.Account.Lookback)
	assert.Equal(t, time.Minute, cfg.Adapter.ReadTimeout)
	assert.Equal(t, 5*time.Minute, cfg.Workers.PingHeartbeat)
}

func TestNewClientConfig_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{
			name:    "missing host",
			mutate:  func(cfg *StructuredConfig) { cfg.Account.Host = "" },
			wantErr: ErrInvalidAccountConfigs,
		},
		{
			name:    "missing username",
			mutate:  func(cfg *StructuredConfig) { cfg.Account.Username = "" },
			wantErr: ErrInvalidAccountConfigs,
		},
		{
			name:    "bad lookback",
			mutate:  func(cfg *StructuredConfig) { cfg.Account.Lookback = "5y" },
			wantErr: ErrInvalidAccountConfigs,
		},
		{
			name:    "negative read timeout",
			mutate:  func(cfg *StructuredConfig) { cfg.Adapter.ReadTimeout = -time.Second },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "negative redirects",
			mutate:  func(cfg *StructuredConfig) { cfg.Adapter.MaxRedirects = -1 },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "negative heartbeat",
			mutate:  func(cfg *StructuredConfig) { cfg.Workers.PingHeartbeat = -time.Second },
			wantErr: ErrInvalidWorkerConfigs,
		},
		{
			name:    "negative manual sync burst",
			mutate:  func(cfg *StructuredConfig) { cfg.Workers.ManualSyncBurst = -1 },
			wantErr: ErrInvalidWorkerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := minimalStructuredConfig()
			tt.mutate(src)

			_, err := newClientConfig(src)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
