package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestServerConfig_Validate(t *testing.T) {
	valid := func() *ServerConfig {
		return newServerConfig(defaultConfig())
	}

	tests := []struct {
		name    string
		mutate  func(cfg *ServerConfig)
		wantErr error
	}{
		{name: "defaults are valid", mutate: func(*ServerConfig) {}},
		{
			name:    "empty address",
			mutate:  func(cfg *ServerConfig) { cfg.Server.HTTPAddress = "" },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "empty document path",
			mutate:  func(cfg *ServerConfig) { cfg.Storage.Path = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "empty version",
			mutate:  func(cfg *ServerConfig) { cfg.App.Version = "" },
			wantErr: ErrInvalidAppConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClientConfig_Validate(t *testing.T) {
	valid := func() *ClientConfig {
		return newClientConfig(defaultConfig())
	}

	tests := []struct {
		name    string
		mutate  func(cfg *ClientConfig)
		wantErr error
	}{
		{name: "defaults are valid", mutate: func(*ClientConfig) {}},
		{
			name:    "empty dsn",
			mutate:  func(cfg *ClientConfig) { cfg.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "in-memory dsn",
			mutate:  func(cfg *ClientConfig) { cfg.Storage.DB.DSN = "file::memory:?cache=shared" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "empty adapter address",
			mutate:  func(cfg *ClientConfig) { cfg.Adapter.HTTPAddress = "" },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "zero adapter timeout",
			mutate:  func(cfg *ClientConfig) { cfg.Adapter.RequestTimeout = 0 },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "negative sync interval",
			mutate:  func(cfg *ClientConfig) { cfg.Workers.SyncInterval = -time.Second },
			wantErr: ErrInvalidWorkerConfigs,
		},
		{
			name:    "zero probe interval",
			mutate:  func(cfg *ClientConfig) { cfg.Workers.ProbeInterval = 0 },
			wantErr: ErrInvalidWorkerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewClientConfig_CopiesFields(t *testing.T) {
	cfg := defaultConfig()
	cfg.App.LogFile = "client.log"

	clientCfg := newClientConfig(cfg)

	assert.Equal(t, "client.log", clientCfg.App.LogFile)
	assert.Equal(t, cfg.Adapter.HTTPAddress, clientCfg.Adapter.HTTPAddress)
	assert.Equal(t, cfg.Storage.DB.DSN, clientCfg.Storage.DB.DSN)
	assert.Equal(t, cfg.Workers.SyncInterval, clientCfg.Workers.SyncInterval)
}
