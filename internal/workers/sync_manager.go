// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/fieldwise-sentinel/internal/config"
	"github.com/MKhiriev/fieldwise-sentinel/internal/logger"
	"github.com/MKhiriev/fieldwise-sentinel/internal/service"
)

const (
	defaultRetryAttempts = 3
	defaultRetryBase     = 5 * time.Second
	maxRetryDelay        = 5 * time.Minute
)

var _ service.DeferredSyncManager = (*SyncManager)(nil)

// SyncManager is the deferred-sync facility: a registered tag runs its task
// as soon as the agent is online, retrying with exponential backoff. A tag
// whose task keeps failing stays registered and runs again on the next
// online transition.
type SyncManager struct {
	online   func() bool
	attempts int
	base     time.Duration

	mu         sync.Mutex
	root       context.Context
	cancel     context.CancelFunc
	tasks      map[string]TaskFunc
	registered map[string]bool
	running    map[string]bool
	rerun      map[string]bool
	wg         sync.WaitGroup

	logger *logger.Logger
}

func NewSyncManager(cfg config.Workers, online func() bool, logger *logger.Logger) *SyncManager {
	attempts := cfg.SyncRetryAttempts
	if attempts <= 0 {
		attempts = defaultRetryAttempts
	}
	base := cfg.SyncRetryBase
	if base <= 0 {
		base = defaultRetryBase
	}

	root, cancel := context.WithCancel(context.Background())

	return &SyncManager{
		online:     online,
		attempts:   attempts,
		base:       base,
		root:       root,
		cancel:     cancel,
		tasks:      make(map[string]TaskFunc),
		registered: make(map[string]bool),
		running:    make(map[string]bool),
		rerun:      make(map[string]bool),
		logger:     logger,
	}
}

// Handle attaches the task run for tag.
func (m *SyncManager) Handle(tag string, fn TaskFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tasks[tag] = fn
}

// Register implements service.DeferredSyncManager. The task runs at once
// when the agent is online, otherwise on the next online transition.
func (m *SyncManager) Register(ctx context.Context, tag string) error {
	m.mu.Lock()
	if _, ok := m.tasks[tag]; !ok {
		m.mu.Unlock()
		return fmt.Errorf("%w: %q", ErrUnknownTag, tag)
	}
	m.registered[tag] = true
	m.mu.Unlock()

	logger.FromContext(ctx).Debug().
		Str("func", "SyncManager.Register").
		Str("tag", tag).
		Msg("sync registered")

	if m.online() {
		m.dispatch(tag)
	}
	return nil
}

// RegisterFunc returns a TaskFunc that registers tag, for use as the body of
// a PeriodicTask.
func (m *SyncManager) RegisterFunc(tag string) TaskFunc {
	return func(ctx context.Context) error {
		return m.Register(ctx, tag)
	}
}

// OnNetworkTransition dispatches every registered tag when the agent comes
// online.
func (m *SyncManager) OnNetworkTransition(_ context.Context, online bool) {
	if !online {
		return
	}

	m.mu.Lock()
	tags := make([]string, 0, len(m.registered))
	for tag := range m.registered {
		tags = append(tags, tag)
	}
	m.mu.Unlock()

	for _, tag := range tags {
		m.dispatch(tag)
	}
}

// Registered reports whether tag is waiting to run or retrying.
func (m *SyncManager) Registered(tag string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.registered[tag]
}

// Start implements Worker. Running tasks are bound to ctx.
func (m *SyncManager) Start(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.cancel()
	m.root, m.cancel = context.WithCancel(ctx)
}

// Stop implements Worker. It cancels running tasks and waits for them.
func (m *SyncManager) Stop() {
	m.mu.Lock()
	cancel := m.cancel
	m.mu.Unlock()

	cancel()
	m.wg.Wait()
}

// Wait blocks until no task is running.
func (m *SyncManager) Wait() {
	m.wg.Wait()
}

// dispatch starts tag unless it is already running; a running tag is run
// once more after the current run.
func (m *SyncManager) dispatch(tag string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.running[tag] {
		m.rerun[tag] = true
		return
	}
	if m.root.Err() != nil {
		return
	}

	m.running[tag] = true
	m.wg.Add(1)
	go m.run(m.root, tag, m.tasks[tag])
}

func (m *SyncManager) run(ctx context.Context, tag string, fn TaskFunc) {
	defer m.wg.Done()

	for {
		err := m.attempt(ctx, tag, fn)

		m.mu.Lock()
		if m.rerun[tag] && ctx.Err() == nil {
			m.rerun[tag] = false
			m.mu.Unlock()
			continue
		}
		if err == nil {
			delete(m.registered, tag)
		}
		m.running[tag] = false
		m.mu.Unlock()

		if err != nil {
			m.logger.Warn().Err(err).
				Str("func", "SyncManager.run").
				Str("tag", tag).
				Msg("sync task failed, kept registered")
		}
		return
	}
}

// attempt runs fn with exponential backoff up to the attempt limit. Going
// offline stops the retries.
func (m *SyncManager) attempt(ctx context.Context, tag string, fn TaskFunc) error {
	backoff := retry.NewExponential(m.base)
	backoff = retry.WithCappedDuration(maxRetryDelay, backoff)
	backoff = retry.WithMaxRetries(uint64(m.attempts-1), backoff)

	try := 0
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		if !m.online() {
			return errOffline
		}

		try++
		err := fn(ctx)
		if err == nil {
			return nil
		}
		if errors.Is(err, context.Canceled) || ctx.Err() != nil {
			return err
		}

		m.logger.Debug().Err(err).
			Str("func", "SyncManager.attempt").
			Str("tag", tag).
			Int("try", try).
			Msg("sync task attempt failed")
		return retry.RetryableError(err)
	})
}
