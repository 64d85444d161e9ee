// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// journal server and client. It is populated by merging environment
// variables, command-line flags, an optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string and
	// the client log file.
	App App `envPrefix:"APP_"`

	// Storage holds the server document file and the client local database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the listen address and timeouts of the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the address of the journal server as seen by the client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds the client background worker intervals.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version reported by the health endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogFile is where the client writes its log. Empty means a "logs" file
	// next to the executable.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Storage groups the persistence settings of both binaries.
type Storage struct {
	// File is the server-side JSON document.
	File File `envPrefix:"FILE_"`

	// DB is the client-side local database.
	DB DB `envPrefix:"DB_"`
}

// File holds the location of the server JSON document.
type File struct {
	// Path of the JSON document holding diary, mood and to-do lists.
	// Env: STORAGE_FILE_PATH
	Path string `env:"PATH"`
}

// DB holds connection settings of the client SQLite database.
type DB struct {
	// DSN is the SQLite file path or DSN.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address the HTTP server listens on, in
	// "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds the processing time of a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the outbound connection settings used by the client.
type Adapter struct {
	// HTTPAddress is the base address of the journal server, with or without
	// scheme (e.g. "localhost:3000" or "http://10.0.0.2:3000").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the transport timeout of every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for client background workers.
type Workers struct {
	// ProbeInterval is how often the connectivity watcher polls the health
	// endpoint.
	// Env: WORKERS_PROBE_INTERVAL
	ProbeInterval time.Duration `env:"PROBE_INTERVAL"`

	// SyncInterval is how often the sync job runs while online.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
}

// GetStructuredConfig loads and merges the configuration from all available
// sources. For every field the first non-zero value wins, in this order:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(commandLineArgs()).
		withJSON().
		withDefaults().
		build()
}
