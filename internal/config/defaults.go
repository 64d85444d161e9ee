package config

import "time"

// Built-in fallbacks used when no other source sets a value.
const (
	defaultHTTPAddress    = "localhost:3000"
	defaultDocumentPath   = "data/journal-data.json"
	defaultClientDSN      = "journal-local.db"
	defaultRequestTimeout = 10 * time.Second
	defaultProbeInterval  = 15 * time.Second
	defaultSyncInterval   = 5 * time.Minute
	defaultVersion        = "dev"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{Version: defaultVersion},
		Storage: Storage{
			File: File{Path: defaultDocumentPath},
			DB:   DB{DSN: defaultClientDSN},
		},
		Server: Server{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultRequestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultRequestTimeout,
		},
		Workers: Workers{
			ProbeInterval: defaultProbeInterval,
			SyncInterval:  defaultSyncInterval,
		},
	}
}
