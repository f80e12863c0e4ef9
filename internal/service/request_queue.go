// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/fieldwise-sentinel/internal/logger"
	"github.com/MKhiriev/fieldwise-sentinel/internal/metrics"
	"github.com/MKhiriev/fieldwise-sentinel/internal/store"
	"github.com/MKhiriev/fieldwise-sentinel/internal/utils"
	"github.com/MKhiriev/fieldwise-sentinel/models"
)

// QueueSlot is the key-value slot holding the persisted request queue.
const QueueSlot = "sentinel:sync-queue"

type requestQueue struct {
	kv      store.KeyValueStore
	ids     *utils.UUIDGenerator
	metrics *metrics.Metrics

	// mu guards items; drainMu serializes DrainAll.
	mu      sync.Mutex
	items   []models.QueuedRequest
	drainMu sync.Mutex

	now    func() time.Time
	logger *logger.Logger
}

func NewRequestQueue(kv store.KeyValueStore, m *metrics.Metrics, logger *logger.Logger) RequestQueue {
	return &requestQueue{
		kv:      kv,
		ids:     utils.NewUUIDGenerator(),
		metrics: m,
		now:     time.Now,
		logger:  logger,
	}
}

// Enqueue assigns an ID and timestamp when missing, appends the record and
// persists the queue. A persistence failure keeps the record in memory and is
// only logged.
func (q *requestQueue) Enqueue(ctx context.Context, item models.QueuedRequest) (models.QueuedRequest, error) {
	if item.ID == "" {
		item.ID = q.ids.Generate()
	}
	if item.EnqueuedAt.IsZero() {
		item.EnqueuedAt = q.now().UTC()
	}

	q.mu.Lock()
	q.items = append(q.items, item)
	q.persistLocked(ctx)
	q.mu.Unlock()

	q.logger.Debug().
		Str("func", "requestQueue.Enqueue").
		Str("id", item.ID).
		Str("method", item.Method).
		Str("url", item.URL).
		Msg("request queued")

	return item, nil
}

func (q *requestQueue) DrainAll(ctx context.Context, replay ReplayFunc) []models.SyncResult {
	q.drainMu.Lock()
	defer q.drainMu.Unlock()

	q.mu.Lock()
	batch := q.items
	q.items = nil
	if len(batch) > 0 {
		q.persistLocked(context.WithoutCancel(ctx))
	}
	q.mu.Unlock()

	if len(batch) == 0 {
		return nil
	}

	results := make([]models.SyncResult, 0, len(batch))
	var failed []models.QueuedRequest
	for i, item := range batch {
		if ctx.Err() != nil {
			failed = append(failed, batch[i:]...)
			break
		}

		result := replay(ctx, item)
		results = append(results, result)
		q.metrics.RecordReplay(result.Success)

		if !result.Success {
			item.Attempts++
			failed = append(failed, item)
		}
	}

	if len(failed) > 0 {
		q.mu.Lock()
		q.items = append(q.items, failed...)
		q.persistLocked(context.WithoutCancel(ctx))
		q.mu.Unlock()
	}

	q.logger.Info().
		Str("func", "requestQueue.DrainAll").
		Int("replayed", len(results)).
		Int("requeued", len(failed)).
		Msg("queue drained")

	return results
}

func (q *requestQueue) Clear(ctx context.Context) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.items = nil
	q.metrics.QueueLength.Set(0)

	if err := q.kv.Delete(ctx, QueueSlot); err != nil {
		return err
	}
	return nil
}

func (q *requestQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

func (q *requestQueue) Snapshot() []models.QueuedRequest {
	q.mu.Lock()
	defer q.mu.Unlock()
	return append([]models.QueuedRequest(nil), q.items...)
}

func (q *requestQueue) Rehydrate(ctx context.Context) error {
	raw, err := q.kv.Get(ctx, QueueSlot)
	if errors.Is(err, store.ErrSlotNotFound) {
		q.replace(nil)
		return nil
	}
	if err != nil {
		q.replace(nil)
		return err
	}

	var items []models.QueuedRequest
	if err = json.Unmarshal(raw, &items); err != nil {
		q.logger.Warn().Err(err).
			Str("func", "requestQueue.Rehydrate").
			Msg("persisted queue is corrupt, starting empty")
		q.replace(nil)
		return nil
	}

	q.replace(items)
	q.logger.Info().
		Str("func", "requestQueue.Rehydrate").
		Int("length", len(items)).
		Msg("queue rehydrated")

	return nil
}

func (q *requestQueue) replace(items []models.QueuedRequest) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.items = items
	q.metrics.QueueLength.Set(float64(len(items)))
}

// persistLocked writes the whole queue to its slot. Callers hold q.mu so
// that writes land in the order the queue changed.
func (q *requestQueue) persistLocked(ctx context.Context) {
	q.metrics.QueueLength.Set(float64(len(q.items)))

	items := q.items
	if items == nil {
		items = []models.QueuedRequest{}
	}

	raw, err := json.Marshal(items)
	if err != nil {
		q.logger.Error().Err(err).Str("func", "requestQueue.persist").Msg("error encoding queue")
		return
	}
	if err = q.kv.Set(ctx, QueueSlot, raw); err != nil {
		q.logger.Error().Err(err).Str("func", "requestQueue.persist").Msg("error persisting queue")
	}
}
