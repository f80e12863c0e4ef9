// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/fieldwise-sentinel/internal/adapter"
	"github.com/MKhiriev/fieldwise-sentinel/internal/config"
	"github.com/MKhiriev/fieldwise-sentinel/internal/logger"
	"github.com/MKhiriev/fieldwise-sentinel/internal/metrics"
	"github.com/MKhiriev/fieldwise-sentinel/internal/utils"
	"github.com/MKhiriev/fieldwise-sentinel/models"
)

// Deferred task tags.
const (
	SyncTag   = "sync-requests"
	BackupTag = "backup-state"
)

const (
	syncModeNative = "native"
	syncModeManual = "manual"

	syncOutcomeCompleted  = "completed"
	syncOutcomeIncomplete = "incomplete"
	syncOutcomeFailed     = "failed"
)

type syncCoordinator struct {
	queue       RequestQueue
	fetcher     adapter.OriginFetcher
	observer    NetworkObserver
	broadcaster Broadcaster
	manager     DeferredSyncManager

	autoSync bool

	mu            sync.Mutex
	pendingManual bool

	now     func() time.Time
	metrics *metrics.Metrics
	logger  *logger.Logger
}

// NewSyncCoordinator builds the coordinator. A nil manager, or a config
// disabling background sync, makes every sync a manual drain.
func NewSyncCoordinator(
	queue RequestQueue,
	fetcher adapter.OriginFetcher,
	observer NetworkObserver,
	broadcaster Broadcaster,
	manager DeferredSyncManager,
	cfg config.Workers,
	m *metrics.Metrics,
	logger *logger.Logger,
) SyncCoordinator {
	if cfg.DisableBackgroundSync {
		manager = nil
	}

	return &syncCoordinator{
		queue:       queue,
		fetcher:     fetcher,
		observer:    observer,
		broadcaster: broadcaster,
		manager:     manager,
		autoSync:    cfg.AutoSync,
		now:         time.Now,
		metrics:     m,
		logger:      logger,
	}
}

func (s *syncCoordinator) RequestSync(ctx context.Context) error {
	if s.manager != nil {
		err := s.manager.Register(ctx, SyncTag)
		if err == nil {
			return nil
		}
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "syncCoordinator.RequestSync").
			Msg("deferred sync registration failed, draining manually")
	}

	if !s.observer.IsOnline() {
		s.markPending(ctx, "offline")
		return nil
	}

	_, err := s.manualSync(ctx)
	return err
}

// SyncNow drains the queue right away. Offline, the drain is deferred to
// the next online transition and ErrSyncDeferred is returned.
func (s *syncCoordinator) SyncNow(ctx context.Context) ([]models.SyncResult, error) {
	if !s.observer.IsOnline() {
		s.markPending(ctx, "offline")
		return nil, ErrSyncDeferred
	}
	return s.manualSync(ctx)
}

func (s *syncCoordinator) HandleSyncTask(ctx context.Context) error {
	_, err := s.drain(ctx, syncModeNative)
	return err
}

func (s *syncCoordinator) OnNetworkTransition(ctx context.Context, online bool) {
	if !online {
		return
	}

	log := logger.FromContext(ctx)
	if s.takePending() {
		if _, err := s.manualSync(ctx); err != nil {
			log.Warn().Err(err).
				Str("func", "syncCoordinator.OnNetworkTransition").
				Msg("pending manual sync finished with errors")
		}
		return
	}

	if s.autoSync && s.queue.Len() > 0 {
		if err := s.RequestSync(ctx); err != nil {
			log.Warn().Err(err).
				Str("func", "syncCoordinator.OnNetworkTransition").
				Msg("auto sync finished with errors")
		}
	}
}

// manualSync drains the queue without the deferred-sync manager. A drain
// that leaves items behind is retried on the next online transition.
func (s *syncCoordinator) manualSync(ctx context.Context) ([]models.SyncResult, error) {
	s.takePending()
	if s.queue.Len() == 0 {
		return nil, nil
	}

	s.deliver(models.Message{Type: models.MessageSyncStarted, Timestamp: s.now().UTC()})
	results, err := s.drain(ctx, syncModeManual)
	if errors.Is(err, ErrSyncIncomplete) || errors.Is(err, ErrSyncAborted) {
		s.markPending(ctx, "drain left items queued")
	}
	return results, err
}

// drain replays the queue and reports the outcome. An empty drain reports
// nothing. A drain cut short by ctx reports SYNC_FAILED; otherwise
// SYNC_COMPLETED is reported even when some items failed, and the failures
// surface as ErrSyncIncomplete.
func (s *syncCoordinator) drain(ctx context.Context, mode string) ([]models.SyncResult, error) {
	if s.queue.Len() == 0 {
		return nil, nil
	}

	results := s.queue.DrainAll(ctx, s.replay)
	if len(results) == 0 && ctx.Err() == nil {
		return nil, nil
	}

	if err := ctx.Err(); err != nil {
		s.metrics.SyncRunsTotal.WithLabelValues(mode, syncOutcomeFailed).Inc()
		s.deliver(models.Message{
			Type:      models.MessageSyncFailed,
			Timestamp: s.now().UTC(),
			Error:     err.Error(),
		})
		return results, fmt.Errorf("%w: %w", ErrSyncAborted, err)
	}

	s.deliver(models.Message{
		Type:      models.MessageSyncCompleted,
		Timestamp: s.now().UTC(),
		Results:   results,
	})

	succeeded, failed := models.CountResults(results)
	logger.FromContext(ctx).Info().
		Str("func", "syncCoordinator.drain").
		Str("mode", mode).
		Int("succeeded", succeeded).
		Int("failed", failed).
		Msg("sync finished")

	if failed > 0 {
		s.metrics.SyncRunsTotal.WithLabelValues(mode, syncOutcomeIncomplete).Inc()
		return results, fmt.Errorf("%w: %d of %d", ErrSyncIncomplete, failed, len(results))
	}

	s.metrics.SyncRunsTotal.WithLabelValues(mode, syncOutcomeCompleted).Inc()
	return results, nil
}

// replay sends one queued request. Authenticated requests are not sent
// when the token at hand is already expired.
func (s *syncCoordinator) replay(ctx context.Context, item models.QueuedRequest) models.SyncResult {
	result := models.SyncResult{
		RequestID: item.ID,
		Method:    item.Method,
		URL:       item.URL,
	}

	if item.Auth && utils.TokenExpired(s.fetcher.Token(), s.now()) {
		result.Reason = ErrAuthTokenExpired.Error()
		return result
	}

	resp, err := s.fetcher.Replay(ctx, item)
	result.StatusCode = resp.StatusCode
	if err != nil {
		result.Reason = err.Error()
		return result
	}

	result.Success = true
	return result
}

func (s *syncCoordinator) deliver(msg models.Message) {
	s.observer.HandleMessage(msg)
	s.broadcaster.Publish(msg)
}

func (s *syncCoordinator) markPending(ctx context.Context, reason string) {
	s.mu.Lock()
	s.pendingManual = true
	s.mu.Unlock()

	logger.FromContext(ctx).Info().
		Str("func", "syncCoordinator.markPending").
		Str("reason", reason).
		Msg("sync deferred until the next online transition")
}

func (s *syncCoordinator) takePending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	pending := s.pendingManual
	s.pendingManual = false
	return pending
}
