package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/fieldwise-sentinel/internal/logger"
)

type keyValueStorage struct {
	db     *DB
	logger *logger.Logger
}

// NewKeyValueStore returns a [KeyValueStore] backed by the kv_slots table.
func NewKeyValueStore(db *DB, logger *logger.Logger) KeyValueStore {
	return &keyValueStorage{
		db:     db,
		logger: logger,
	}
}

func (k *keyValueStorage) Get(ctx context.Context, slot string) ([]byte, error) {
	query, args, err := buildSelectSlotQuery(slot)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value []byte
	err = k.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "keyValueStorage.Get").
			Str("slot", slot).
			Msg("failed to read slot")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return value, nil
}

func (k *keyValueStorage) Set(ctx context.Context, slot string, value []byte) error {
	if value == nil {
		value = []byte{}
	}

	query, args, err := buildUpsertSlotQuery(slot, value, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = k.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "keyValueStorage.Set").
			Str("slot", slot).
			Msg("failed to write slot")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (k *keyValueStorage) All(ctx context.Context) (map[string][]byte, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAllSlotsQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := k.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "keyValueStorage.All").Msg("failed to query slots")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	slots := make(map[string][]byte)
	for rows.Next() {
		var (
			slot  string
			value []byte
		)
		if err = rows.Scan(&slot, &value); err != nil {
			log.Err(err).Str("func", "keyValueStorage.All").Msg("failed to scan slot row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		slots[slot] = value
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "keyValueStorage.All").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return slots, nil
}

func (k *keyValueStorage) Delete(ctx context.Context, slot string) error {
	query, args, err := buildDeleteSlotQuery(slot)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = k.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "keyValueStorage.Delete").
			Str("slot", slot).
			Msg("failed to delete slot")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
