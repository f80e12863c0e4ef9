// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilderFailsValidation verifies that a config without any
// source does not pass validation.
func TestBuild_EmptyBuilderFailsValidation(t *testing.T) {
	_, err := newConfigBuilder().build()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

// TestBuild_DefaultsAreValid verifies that built-in defaults alone form a
// valid configuration.
func TestBuild_DefaultsAreValid(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)
	assert.Equal(t, DefaultOrigin, cfg.App.Origin)
	assert.Equal(t, DefaultShellManifest, cfg.Cache.ShellManifest)
	assert.Equal(t, 5, cfg.Cache.BackupRetention)
	assert.False(t, cfg.Workers.DisableBackgroundSync)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_FirstSourceWins verifies that a field set by an earlier source is
// not overwritten by a later one, while empty fields are filled.
func TestBuild_FirstSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Origin: "http://first:1"}},
		&StructuredConfig{App: App{Origin: "http://second:2", LogLevel: "warn"}},
	)
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "http://first:1", cfg.App.Origin)
	assert.Equal(t, "warn", cfg.App.LogLevel)
	assert.Equal(t, DefaultAPIPrefix, cfg.App.APIPrefix)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up,
// including slices and durations.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_ORIGIN", "http://farm.local:8080")
	t.Setenv("CACHE_SHELL_MANIFEST", "/,/fields")
	t.Setenv("WORKERS_BACKUP_INTERVAL", "15m")
	t.Setenv("WORKERS_DISABLE_BACKGROUND_SYNC", "true")

	b := newConfigBuilder()
	b.withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "http://farm.local:8080", b.configs[0].App.Origin)
	assert.Equal(t, []string{"/", "/fields"}, b.configs[0].Cache.ShellManifest)
	assert.Equal(t, 15*time.Minute, b.configs[0].Workers.BackupInterval)
	assert.True(t, b.configs[0].Workers.DisableBackgroundSync)
}

// TestWithEnv_InvalidValueSetsError verifies that an unparsable value is
// recorded as a builder error.
func TestWithEnv_InvalidValueSetsError(t *testing.T) {
	t.Setenv("WORKERS_PROBE_INTERVAL", "not-a-duration")

	b := newConfigBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_NoPathIsNoop verifies that no JSON config is appended when no
// source names a file.
func TestWithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

// TestWithJSON_LoadsFile verifies that the file named by an earlier source is
// parsed and appended.
func TestWithJSON_LoadsFile(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app":     map[string]any{"origin": "https://fieldwise.example"},
		"workers": map[string]any{"sync_retry_base": "2s", "auto_sync": true},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "https://fieldwise.example", b.configs[1].App.Origin)
	assert.Equal(t, 2*time.Second, b.configs[1].Workers.SyncRetryBase)
	assert.True(t, b.configs[1].Workers.AutoSync)
}

// TestWithJSON_MissingFileSetsError verifies that an unreadable file is
// recorded as a builder error.
func TestWithJSON_MissingFileSetsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/does/not/exist.json"})
	b.withJSON()

	assert.Error(t, b.err)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

// TestGetStructuredConfig_EnvBeatsFlags verifies source priority end to end.
func TestGetStructuredConfig_EnvBeatsFlags(t *testing.T) {
	t.Setenv("APP_ORIGIN", "http://env-origin:3000")

	cfg, err := GetStructuredConfig([]string{"-o", "http://flag-origin:3000", "-d", "flag.db"})
	require.NoError(t, err)
	assert.Equal(t, "http://env-origin:3000", cfg.App.Origin)
	assert.Equal(t, "flag.db", cfg.Storage.DB.DSN)
	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
}
