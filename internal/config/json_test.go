package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{
		"app": { "version": "1.0.0", "log_file": "/tmp/journal.log" },
		"server": {
			"http_address": "localhost:8080",
			"request_timeout": "30s"
		},
		"adapter": {
			"http_address": "http://localhost:8080",
			"request_timeout": "5s"
		},
		"storage": {
			"file": { "path": "/var/data/journal.json" },
			"db": { "dsn": "journal.db" }
		},
		"workers": {
			"probe_interval": "10s",
			"sync_interval": "1m"
		}
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "/tmp/journal.log", cfg.App.LogFile)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)

	assert.Equal(t, "http://localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)

	assert.Equal(t, "/var/data/journal.json", cfg.Storage.File.Path)
	assert.Equal(t, "journal.db", cfg.Storage.DB.DSN)

	assert.Equal(t, 10*time.Second, cfg.Workers.ProbeInterval)
	assert.Equal(t, time.Minute, cfg.Workers.SyncInterval)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	cfg, err := parseJSON("definitely-does-not-exist.json")

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(p, []byte(`{ this is not json }`), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "bad_duration.json")
	jsonBody := `{
		"workers": { "sync_interval": "not-a-duration" }
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_NumericDuration(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "numeric.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"server":{"request_timeout":1000000000}}`), 0o600))

	cfg, err := parseJSON(p)

	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.Server.RequestTimeout)
}

func TestParseJSON_EmptyObject(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "empty.json")
	require.NoError(t, os.WriteFile(p, []byte(`{}`), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, StructuredConfig{}, *cfg)
}

func TestParseJSON_PartialObject(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "partial.json")
	jsonBody := `{
		"server": { "http_address": "127.0.0.1:8000" }
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "127.0.0.1:8000", cfg.Server.HTTPAddress)
	assert.Zero(t, cfg.Server.RequestTimeout)

	assert.Equal(t, App{}, cfg.App)
	assert.Equal(t, Adapter{}, cfg.Adapter)
	assert.Equal(t, Storage{}, cfg.Storage)
	assert.Equal(t, Workers{}, cfg.Workers)
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(90 * time.Second).MarshalJSON()

	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(b))
}
