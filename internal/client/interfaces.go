// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run() error

	// Close releases resources held by the client. It must be called once
	// Run has returned.
	Close() error
}

var _ Client = (*App)(nil)
