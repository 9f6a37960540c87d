// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the sync engine.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// [GetClientConfig] projects the merged values onto [ClientConfig], fills in
// protocol defaults (10s connect budget, 20m read budget, 900s heartbeat,
// 30m Ping window) and validates the result.
package config
