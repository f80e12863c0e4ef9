// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/fieldwise-sentinel/internal/logger"
	"github.com/MKhiriev/fieldwise-sentinel/models"
)

// cacheStorage is the SQLite implementation of [CacheStorage]. Partition
// names live in cache_partitions; entries in cache_entries with zstd
// compressed payloads.
type cacheStorage struct {
	db     *DB
	logger *logger.Logger
}

// NewCacheStorage returns a [CacheStorage] backed by db.
func NewCacheStorage(db *DB, logger *logger.Logger) CacheStorage {
	return &cacheStorage{
		db:     db,
		logger: logger,
	}
}

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (c *cacheStorage) Open(ctx context.Context, partition string) error {
	if err := insertPartition(ctx, c.db, partition); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "cacheStorage.Open").
			Str("partition", partition).
			Msg("failed to open cache partition")
		return err
	}

	return nil
}

func (c *cacheStorage) Put(ctx context.Context, entry models.CachedResponse) error {
	return c.PutAll(ctx, []models.CachedResponse{entry})
}

func (c *cacheStorage) PutAll(ctx context.Context, entries []models.CachedResponse) error {
	log := logger.FromContext(ctx)

	stored := make([]storedEntry, 0, len(entries))
	for _, entry := range entries {
		se, err := encodeEntry(entry)
		if err != nil {
			log.Err(err).
				Str("func", "cacheStorage.PutAll").
				Str("key", entry.Key).
				Msg("failed to encode cache entry")
			return err
		}
		stored = append(stored, se)
	}

	err := c.db.withTx(ctx, func(tx *sql.Tx) error {
		opened := make(map[string]struct{})
		for _, se := range stored {
			if _, ok := opened[se.Partition]; !ok {
				if err := insertPartition(ctx, tx, se.Partition); err != nil {
					return err
				}
				opened[se.Partition] = struct{}{}
			}

			query, args, err := buildUpsertEntryQuery(se)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
			}
			if _, err = tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "cacheStorage.PutAll").
			Int("entries", len(entries)).
			Msg("failed to store cache entries")
		return fmt.Errorf("failed to store %d cache entries: %w", len(entries), err)
	}

	return nil
}

func (c *cacheStorage) Match(ctx context.Context, partition, key string) (models.CachedResponse, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectEntryQuery(partition, key)
	if err != nil {
		return models.CachedResponse{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var se storedEntry
	err = c.db.QueryRowContext(ctx, query, args...).Scan(
		&se.Partition,
		&se.Key,
		&se.Method,
		&se.URL,
		&se.StatusCode,
		&se.ContentType,
		&se.Headers,
		&se.Payload,
		&se.CapturedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.CachedResponse{}, ErrCacheMiss
	}
	if err != nil {
		log.Err(err).
			Str("func", "cacheStorage.Match").
			Str("partition", partition).
			Str("key", key).
			Msg("failed to scan cache entry")
		return models.CachedResponse{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	entry, err := decodeEntry(se)
	if err != nil {
		log.Err(err).
			Str("func", "cacheStorage.Match").
			Str("key", key).
			Msg("failed to decode cache entry")
		return models.CachedResponse{}, err
	}

	return entry, nil
}

func (c *cacheStorage) Keys(ctx context.Context, partition string) ([]string, error) {
	query, args, err := buildSelectKeysQuery(partition)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	keys, err := c.queryStrings(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "cacheStorage.Keys").
			Str("partition", partition).
			Msg("failed to list cache keys")
		return nil, err
	}

	return keys, nil
}

func (c *cacheStorage) Delete(ctx context.Context, partition, key string) error {
	query, args, err := buildDeleteEntryQuery(partition, key)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = c.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "cacheStorage.Delete").
			Str("partition", partition).
			Str("key", key).
			Msg("failed to delete cache entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (c *cacheStorage) Partitions(ctx context.Context) ([]string, error) {
	query, args, err := buildSelectPartitionsQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	names, err := c.queryStrings(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "cacheStorage.Partitions").
			Msg("failed to list cache partitions")
		return nil, err
	}

	return names, nil
}

func (c *cacheStorage) DeletePartition(ctx context.Context, partition string) error {
	log := logger.FromContext(ctx)

	err := c.db.withTx(ctx, func(tx *sql.Tx) error {
		query, args, err := buildPartitionExistsQuery(partition)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		var count int
		if err = tx.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		if count == 0 {
			return ErrPartitionNotFound
		}

		query, args, err = buildDeletePartitionEntriesQuery(partition)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		query, args, err = buildDeletePartitionQuery(partition)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		return nil
	})
	if errors.Is(err, ErrPartitionNotFound) {
		return err
	}
	if err != nil {
		log.Err(err).
			Str("func", "cacheStorage.DeletePartition").
			Str("partition", partition).
			Msg("failed to delete cache partition")
		return fmt.Errorf("failed to delete partition %q: %w", partition, err)
	}

	return nil
}

func (c *cacheStorage) queryStrings(ctx context.Context, query string, args ...any) ([]string, error) {
	rows, err := c.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	result := make([]string, 0)
	for rows.Next() {
		var s string
		if err = rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		result = append(result, s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return result, nil
}

func insertPartition(ctx context.Context, ex execer, partition string) error {
	query, args, err := buildInsertPartitionQuery(partition)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = ex.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func encodeEntry(entry models.CachedResponse) (storedEntry, error) {
	var headers []byte
	if len(entry.Header) > 0 {
		var err error
		if headers, err = json.Marshal(entry.Header); err != nil {
			return storedEntry{}, fmt.Errorf("%w: %w", ErrEncodingPayload, err)
		}
	}

	capturedAt := entry.CapturedAt
	if capturedAt.IsZero() {
		capturedAt = time.Now()
	}

	return storedEntry{
		Partition:   entry.Partition,
		Key:         entry.Key,
		Method:      entry.Method,
		URL:         entry.URL,
		StatusCode:  entry.StatusCode,
		ContentType: entry.ContentType,
		Headers:     headers,
		Payload:     compressPayload(entry.Payload),
		CapturedAt:  capturedAt.UTC(),
	}, nil
}

func decodeEntry(se storedEntry) (models.CachedResponse, error) {
	payload, err := decompressPayload(se.Payload)
	if err != nil {
		return models.CachedResponse{}, err
	}

	var header http.Header
	if len(se.Headers) > 0 {
		if err = json.Unmarshal(se.Headers, &header); err != nil {
			return models.CachedResponse{}, fmt.Errorf("%w: %w", ErrDecodingPayload, err)
		}
	}

	return models.CachedResponse{
		Partition:   se.Partition,
		Key:         se.Key,
		Method:      se.Method,
		URL:         se.URL,
		StatusCode:  se.StatusCode,
		ContentType: se.ContentType,
		Header:      header,
		Payload:     payload,
		CapturedAt:  se.CapturedAt,
	}, nil
}
