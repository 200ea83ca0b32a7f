// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-notes-book binaries. It aggregates all sub-configurations and is
// populated by merging built-in defaults, environment variables,
// command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version and the
	// client log file.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the relational database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the listen address and timeout of the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the Notes API location used by the client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from defaults, environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for the storage backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the version string of the running application
	// (e.g. "1.2.3"). Exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogFile is the path of the rotating client log file.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:4000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the backend: a "postgres://" or "postgresql://" URL opens
	// PostgreSQL, anything else is treated as an SQLite database file
	// (e.g. "notes.db" or "file:notes.db?_foreign_keys=on").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds the settings the client uses to reach the Notes API.
type Adapter struct {
	// HTTPAddress is the base URL of the Notes API server
	// (e.g. "http://localhost:4000").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration of a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// DefaultVersion is reported when no version was configured or linked in.
const DefaultVersion = "dev"

// Built-in defaults. The port matches the one the web frontend expects.
const (
	defaultServerAddress        = "localhost:4000"
	defaultServerRequestTimeout = 30 * time.Second
	defaultDSN                  = "notes.db"
	defaultAdapterAddress       = "http://localhost:4000"
	defaultAdapterTimeout       = 10 * time.Second
	defaultClientLogFile        = "notes-client.log"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version: DefaultVersion,
			LogFile: defaultClientLogFile,
		},
		Storage: Storage{
			DB: DB{DSN: defaultDSN},
		},
		Server: Server{
			HTTPAddress:    defaultServerAddress,
			RequestTimeout: defaultServerRequestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    defaultAdapterAddress,
			RequestTimeout: defaultAdapterTimeout,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources in the following priority order (last source
// wins for non-zero fields):
//  0. Built-in defaults
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := loadStructuredConfig(os.Args[1:])
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}

func loadStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
