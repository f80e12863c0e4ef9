package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/fieldwise-sentinel/internal/config"
	"github.com/MKhiriev/fieldwise-sentinel/internal/logger"
)

// Storages groups the agent's storage components into a single value passed
// to the service layer.
type Storages struct {
	// Cache holds the response cache partitions.
	Cache CacheStorage

	// KV holds the request queue slot and the UI's local state.
	KV KeyValueStore

	db *DB
}

// NewStorages opens the SQLite database named by cfg.DB.DSN, applies pending
// migrations and wires the cache and key-value storages to it.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		Cache: NewCacheStorage(db, logger),
		KV:    NewKeyValueStore(db, logger),
		db:    db,
	}, nil
}

// Close releases the database connection.
func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
