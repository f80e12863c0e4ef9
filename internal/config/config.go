// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// sentinel agent. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, an optional
// JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: the origin the agent fronts and
	// the request classes it recognises.
	App App `envPrefix:"APP_"`

	// Cache holds the partition identifiers and the install-time shell
	// manifest.
	Cache Cache `envPrefix:"CACHE_"`

	// Storage holds configuration for the local durable store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the listen address and timeout settings of the agent's
	// HTTP surface.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds configuration of the outbound connection to the origin.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background sync, backup and
	// connectivity probing.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds settings describing the application the agent serves.
type App struct {
	// Origin is the base URL of the FieldWise application origin
	// (e.g. "http://localhost:3000"). Requests to any other origin pass
	// through the agent untouched.
	// Env: APP_ORIGIN
	Origin string `env:"ORIGIN"`

	// APIPrefix is the path prefix of data/API requests (e.g. "/api/").
	// Env: APP_API_PREFIX
	APIPrefix string `env:"API_PREFIX"`

	// AppShellPath is the document served to navigations that fail with no
	// cached entry.
	// Env: APP_SHELL_PATH
	AppShellPath string `env:"SHELL_PATH"`

	// NotificationPath is the default target of a notification click.
	// Env: APP_NOTIFICATION_PATH
	NotificationPath string `env:"NOTIFICATION_PATH"`

	// LogLevel is the zerolog level name (debug, info, warn, error).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Cache holds cache partition settings.
type Cache struct {
	// AssetPartition is the version-stamped name of the static asset
	// partition.
	// Env: CACHE_ASSET_PARTITION
	AssetPartition string `env:"ASSET_PARTITION"`

	// DataPartition is the version-stamped name of the API data partition.
	// Env: CACHE_DATA_PARTITION
	DataPartition string `env:"DATA_PARTITION"`

	// BackupPartition is the name of the partition holding state backups.
	// Env: CACHE_BACKUP_PARTITION
	BackupPartition string `env:"BACKUP_PARTITION"`

	// ShellManifest is the comma-separated list of paths fetched and cached
	// on install.
	// Env: CACHE_SHELL_MANIFEST
	ShellManifest []string `env:"SHELL_MANIFEST"`

	// StaticExtensions lists file extensions served cache-first.
	// Env: CACHE_STATIC_EXTENSIONS
	StaticExtensions []string `env:"STATIC_EXTENSIONS"`

	// BackupRetention is the number of backups kept in the backup partition.
	// Env: CACHE_BACKUP_RETENTION
	BackupRetention int `env:"BACKUP_RETENTION"`
}

// Storage groups the configuration for the local storage backend.
type Storage struct {
	// DB holds the SQLite database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite file path or DSN (e.g. "sentinel.db").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the agent listens,
	// in "host:port" format (e.g. "127.0.0.1:8686").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds the handling of one control API request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds configuration of the outbound origin connection.
type Adapter struct {
	// RequestTimeout is the maximum duration of a single outbound request
	// (fetch, replay or probe).
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// HealthPath is the origin path probed for connectivity.
	// Env: ADAPTER_HEALTH_PATH
	HealthPath string `env:"HEALTH_PATH"`

	// Token is an optional bearer token used for authenticated replays until
	// one is observed on live traffic.
	// Env: ADAPTER_TOKEN
	Token string `env:"TOKEN"`
}

// Workers holds configuration for background workers.
type Workers struct {
	// DisableBackgroundSync turns off deferred background sync; every sync
	// request is then drained immediately (manual fallback).
	// Env: WORKERS_DISABLE_BACKGROUND_SYNC
	DisableBackgroundSync bool `env:"DISABLE_BACKGROUND_SYNC"`

	// AutoSync requests a sync on every offline-to-online transition.
	// Env: WORKERS_AUTO_SYNC
	AutoSync bool `env:"AUTO_SYNC"`

	// SyncRetryAttempts is the number of attempts of a deferred sync task
	// before its registration is dropped.
	// Env: WORKERS_SYNC_RETRY_ATTEMPTS
	SyncRetryAttempts int `env:"SYNC_RETRY_ATTEMPTS"`

	// SyncRetryBase is the base delay of the exponential retry backoff.
	// Env: WORKERS_SYNC_RETRY_BASE
	SyncRetryBase time.Duration `env:"SYNC_RETRY_BASE"`

	// BackupInterval is the period of the state backup task. Zero disables it.
	// Env: WORKERS_BACKUP_INTERVAL
	BackupInterval time.Duration `env:"BACKUP_INTERVAL"`

	// ProbeInterval is the period of the connectivity probe. Zero disables it.
	// Env: WORKERS_PROBE_INTERVAL
	ProbeInterval time.Duration `env:"PROBE_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the agent configuration
// from all available sources. For every field the first source that sets a
// non-zero value wins, in this order:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		withDefaults().
		build()
}
