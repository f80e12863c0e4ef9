package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/fieldwise-sentinel/internal/config"
	"github.com/MKhiriev/fieldwise-sentinel/internal/logger"
	"github.com/MKhiriev/fieldwise-sentinel/internal/metrics"
	"github.com/MKhiriev/fieldwise-sentinel/internal/store"
	"github.com/MKhiriev/fieldwise-sentinel/models"
)

const (
	// BackupKeyPrefix prefixes every backup key in the backup partition.
	BackupKeyPrefix = "/backups/"
	// BackupTimeLayout formats backup versions; it sorts chronologically.
	BackupTimeLayout = "2006-01-02T15:04:05.000Z"
)

type backupService struct {
	kv          store.KeyValueStore
	cache       store.CacheStorage
	observer    NetworkObserver
	broadcaster Broadcaster

	partition string
	retention int

	now     func() time.Time
	metrics *metrics.Metrics
	logger  *logger.Logger
}

func NewBackupService(
	kv store.KeyValueStore,
	cache store.CacheStorage,
	observer NetworkObserver,
	broadcaster Broadcaster,
	cfg config.Cache,
	m *metrics.Metrics,
	logger *logger.Logger,
) BackupService {
	retention := cfg.BackupRetention
	if retention <= 0 {
		retention = config.DefaultBackupRetention
	}

	return &backupService{
		kv:          kv,
		cache:       cache,
		observer:    observer,
		broadcaster: broadcaster,
		partition:   cfg.BackupPartition,
		retention:   retention,
		now:         time.Now,
		metrics:     m,
		logger:      logger,
	}
}

// Backup snapshots every key-value slot, stores the envelope under
// /backups/<version>.json, prunes old backups and reports BACKUP_COMPLETED.
func (b *backupService) Backup(ctx context.Context) (string, error) {
	slots, err := b.kv.All(ctx)
	if err != nil {
		return "", fmt.Errorf("error reading local state: %w", err)
	}

	data := make(map[string]json.RawMessage, len(slots))
	for slot, value := range slots {
		if json.Valid(value) {
			data[slot] = json.RawMessage(value)
			continue
		}
		encoded, _ := json.Marshal(string(value))
		data[slot] = encoded
	}

	now := b.now().UTC()
	envelope := models.BackupEnvelope{
		Version:   now.Format(BackupTimeLayout),
		Timestamp: now,
		Data:      data,
	}

	payload, err := json.Marshal(envelope)
	if err != nil {
		return "", fmt.Errorf("error encoding backup: %w", err)
	}

	key := BackupKeyPrefix + envelope.Version + ".json"
	err = b.cache.Put(ctx, models.CachedResponse{
		Partition:   b.partition,
		Key:         key,
		Method:      http.MethodGet,
		URL:         key,
		StatusCode:  http.StatusOK,
		ContentType: "application/json",
		Payload:     payload,
		CapturedAt:  now,
	})
	if err != nil {
		return "", fmt.Errorf("error storing backup: %w", err)
	}

	if err = b.prune(ctx); err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "backupService.Backup").
			Msg("error pruning backups")
	}

	b.metrics.BackupsTotal.Inc()

	msg := models.Message{
		Type:      models.MessageBackupCompleted,
		Timestamp: now,
		Version:   envelope.Version,
	}
	b.observer.HandleMessage(msg)
	b.broadcaster.Publish(msg)

	logger.FromContext(ctx).Info().
		Str("func", "backupService.Backup").
		Str("key", key).
		Int("slots", len(data)).
		Msg("state backed up")

	return key, nil
}

func (b *backupService) List(ctx context.Context) ([]string, error) {
	keys, err := b.cache.Keys(ctx, b.partition)
	if err != nil {
		return nil, fmt.Errorf("error listing backups: %w", err)
	}

	backups := make([]string, 0, len(keys))
	for _, key := range keys {
		if strings.HasPrefix(key, BackupKeyPrefix) {
			backups = append(backups, key)
		}
	}
	return backups, nil
}

func (b *backupService) Get(ctx context.Context, key string) (models.BackupEnvelope, error) {
	entry, err := b.cache.Match(ctx, b.partition, key)
	if err != nil {
		return models.BackupEnvelope{}, err
	}

	var envelope models.BackupEnvelope
	if err = json.Unmarshal(entry.Payload, &envelope); err != nil {
		return models.BackupEnvelope{}, fmt.Errorf("error decoding backup %q: %w", key, err)
	}
	return envelope, nil
}

func (b *backupService) HandleBackupTask(ctx context.Context) error {
	_, err := b.Backup(ctx)
	return err
}

// prune keeps the most recent backups. Keys sort chronologically, so the
// oldest come first.
func (b *backupService) prune(ctx context.Context) error {
	backups, err := b.List(ctx)
	if err != nil {
		return err
	}
	if len(backups) <= b.retention {
		return nil
	}

	var errs []error
	for _, key := range backups[:len(backups)-b.retention] {
		if err = b.cache.Delete(ctx, b.partition, key); err != nil {
			errs = append(errs, fmt.Errorf("delete %s: %w", key, err))
		}
	}
	return errors.Join(errs...)
}
