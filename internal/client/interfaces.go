// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-eas-sync/models"
)

// Client defines the lifecycle contract of the sync process.
type Client interface {
	// Run blocks until the account worker ends or ctx is done and reports
	// how the worker ended.
	Run(ctx context.Context) (models.ExitStatus, error)
}
