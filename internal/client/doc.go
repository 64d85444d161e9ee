// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive journal client runtime.
//
// It wires the local SQLite store, the HTTP server adapter, the connectivity
// monitor, the background workers and the terminal UI into a single process
// lifecycle.
package client
