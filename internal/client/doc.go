// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client assembles the sync process for one account.
//
// It opens the local store, loads the device identity, builds the transport,
// parsers, scheduler and engine, and runs the account worker, the scheduler
// and the optional control API until the account worker ends or the process
// is told to stop.
package client
