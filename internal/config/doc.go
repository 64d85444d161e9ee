// Package config provides configuration loading, merging, and validation
// facilities for the journal binaries.
//
// Configuration is assembled from multiple sources. For each field the first
// source that sets it wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The entry points are [GetServerConfig] for the server and
// [GetClientConfig] for the client.
package config
