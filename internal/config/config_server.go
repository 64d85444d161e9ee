// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// ServerConfig is the server view of [StructuredConfig].
type ServerConfig struct {
	App     App
	Storage File
	Server  Server
}

// GetServerConfig builds and validates the server configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := newServerConfig(cfg)
	return serverCfg, serverCfg.validate()
}

func newServerConfig(cfg *StructuredConfig) *ServerConfig {
	return &ServerConfig{
		App:     cfg.App,
		Storage: cfg.Storage.File,
		Server:  cfg.Server,
	}
}
