// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// agent invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	origin, err := url.Parse(cfg.App.Origin)
	if err != nil || (origin.Scheme != "http" && origin.Scheme != "https") || origin.Host == "" {
		return fmt.Errorf("%w: origin %q must be an absolute http(s) URL", ErrInvalidAppConfigs, cfg.App.Origin)
	}
	if !strings.HasPrefix(cfg.App.APIPrefix, "/") || !strings.HasPrefix(cfg.App.AppShellPath, "/") {
		return fmt.Errorf("%w: api prefix and shell path must start with '/'", ErrInvalidAppConfigs)
	}

	if cfg.Cache.AssetPartition == "" || cfg.Cache.DataPartition == "" || cfg.Cache.BackupPartition == "" {
		return fmt.Errorf("%w: partition names must not be empty", ErrInvalidCacheConfigs)
	}
	if cfg.Cache.AssetPartition == cfg.Cache.DataPartition {
		return fmt.Errorf("%w: asset and data partitions must differ", ErrInvalidCacheConfigs)
	}
	if cfg.Cache.BackupRetention < 1 {
		return fmt.Errorf("%w: backup retention must be positive", ErrInvalidCacheConfigs)
	}
	for _, p := range cfg.Cache.ShellManifest {
		if !strings.HasPrefix(p, "/") {
			return fmt.Errorf("%w: shell manifest entry %q must start with '/'", ErrInvalidCacheConfigs, p)
		}
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	w := cfg.Workers
	if w.SyncRetryAttempts < 1 || w.SyncRetryBase < 0 || w.BackupInterval < 0 || w.ProbeInterval < 0 {
		return ErrInvalidWorkerConfigs
	}
	if cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative adapter timeout", ErrInvalidAppConfigs)
	}

	return nil
}
