package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/fieldwise-sentinel/internal/config"
	"github.com/MKhiriev/fieldwise-sentinel/internal/logger"
)

func newTestManager(online *atomic.Bool, attempts int) *SyncManager {
	cfg := config.Workers{SyncRetryAttempts: attempts, SyncRetryBase: time.Millisecond}
	return NewSyncManager(cfg, online.Load, logger.Nop())
}

// ── Register ─────────────────────────────────────────────────────────────────

// An unknown tag is rejected.
func TestSyncManager_Register_UnknownTag(t *testing.T) {
	var online atomic.Bool
	m := newTestManager(&online, 1)

	err := m.Register(context.Background(), "sync-requests")

	assert.ErrorIs(t, err, ErrUnknownTag)
}

// Online, a registered task runs at once and is then unregistered.
func TestSyncManager_Register_OnlineRunsTask(t *testing.T) {
	var online atomic.Bool
	online.Store(true)
	m := newTestManager(&online, 1)
	var calls atomic.Int32
	m.Handle("sync-requests", func(context.Context) error {
		calls.Add(1)
		return nil
	})

	require.NoError(t, m.Register(context.Background(), "sync-requests"))
	m.Wait()

	assert.Equal(t, int32(1), calls.Load())
	assert.False(t, m.Registered("sync-requests"))
}

// Offline, the task waits for the next online transition.
func TestSyncManager_Register_OfflineWaitsForTransition(t *testing.T) {
	var online atomic.Bool
	m := newTestManager(&online, 1)
	var calls atomic.Int32
	m.Handle("sync-requests", func(context.Context) error {
		calls.Add(1)
		return nil
	})

	require.NoError(t, m.Register(context.Background(), "sync-requests"))
	m.Wait()
	assert.Zero(t, calls.Load())
	assert.True(t, m.Registered("sync-requests"))

	online.Store(true)
	m.OnNetworkTransition(context.Background(), true)
	m.Wait()

	assert.Equal(t, int32(1), calls.Load())
	assert.False(t, m.Registered("sync-requests"))
}

// A periodic task built on RegisterFunc runs the tagged task on every tick.
func TestSyncManager_RegisterFunc_DrivenByPeriodicTask(t *testing.T) {
	var online atomic.Bool
	online.Store(true)
	m := newTestManager(&online, 1)
	var calls atomic.Int32
	m.Handle("backup-state", func(context.Context) error {
		calls.Add(1)
		return nil
	})

	p := NewPeriodicTask("backup", 5*time.Millisecond, m.RegisterFunc("backup-state"), logger.Nop())
	p.Start(context.Background())

	assert.Eventually(t, func() bool { return calls.Load() >= 2 }, time.Second, time.Millisecond)
	p.Stop()
	m.Stop()
}

// RegisterFunc surfaces the error of an unknown tag.
func TestSyncManager_RegisterFunc_UnknownTag(t *testing.T) {
	var online atomic.Bool
	m := newTestManager(&online, 1)

	err := m.RegisterFunc("backup-state")(context.Background())

	assert.ErrorIs(t, err, ErrUnknownTag)
}

// Going offline dispatches nothing.
func TestSyncManager_OnNetworkTransition_Offline(t *testing.T) {
	var online atomic.Bool
	m := newTestManager(&online, 1)
	var calls atomic.Int32
	m.Handle("sync-requests", func(context.Context) error {
		calls.Add(1)
		return nil
	})
	require.NoError(t, m.Register(context.Background(), "sync-requests"))

	m.OnNetworkTransition(context.Background(), false)
	m.Wait()

	assert.Zero(t, calls.Load())
}

// ── retries ──────────────────────────────────────────────────────────────────

// A failing task is retried up to the attempt limit and stays registered.
func TestSyncManager_RetriesThenKeepsRegistration(t *testing.T) {
	var online atomic.Bool
	online.Store(true)
	m := newTestManager(&online, 3)
	var calls atomic.Int32
	m.Handle("sync-requests", func(context.Context) error {
		calls.Add(1)
		return errors.New("origin busy")
	})

	require.NoError(t, m.Register(context.Background(), "sync-requests"))
	m.Wait()

	assert.Equal(t, int32(3), calls.Load())
	assert.True(t, m.Registered("sync-requests"))
}

// A task succeeding on a retry is unregistered.
func TestSyncManager_SucceedsOnRetry(t *testing.T) {
	var online atomic.Bool
	online.Store(true)
	m := newTestManager(&online, 3)
	var calls atomic.Int32
	m.Handle("sync-requests", func(context.Context) error {
		if calls.Add(1) < 2 {
			return errors.New("transient")
		}
		return nil
	})

	require.NoError(t, m.Register(context.Background(), "sync-requests"))
	m.Wait()

	assert.Equal(t, int32(2), calls.Load())
	assert.False(t, m.Registered("sync-requests"))
}

// Losing connectivity stops the retries.
func TestSyncManager_OfflineStopsRetries(t *testing.T) {
	var online atomic.Bool
	online.Store(true)
	m := newTestManager(&online, 5)
	var calls atomic.Int32
	m.Handle("sync-requests", func(context.Context) error {
		calls.Add(1)
		online.Store(false)
		return errors.New("connection refused")
	})

	require.NoError(t, m.Register(context.Background(), "sync-requests"))
	m.Wait()

	assert.Equal(t, int32(1), calls.Load())
	assert.True(t, m.Registered("sync-requests"))
}

// A registration during a run triggers one more run afterwards.
func TestSyncManager_RegisterWhileRunning(t *testing.T) {
	var online atomic.Bool
	online.Store(true)
	m := newTestManager(&online, 1)

	release := make(chan struct{})
	var calls atomic.Int32
	m.Handle("sync-requests", func(context.Context) error {
		if calls.Add(1) == 1 {
			<-release
		}
		return nil
	})

	require.NoError(t, m.Register(context.Background(), "sync-requests"))
	assert.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, time.Millisecond)
	require.NoError(t, m.Register(context.Background(), "sync-requests"))
	require.NoError(t, m.Register(context.Background(), "sync-requests"))
	close(release)
	m.Wait()

	assert.Equal(t, int32(2), calls.Load())
}

// ── Start / Stop ─────────────────────────────────────────────────────────────

// Stop cancels running tasks and prevents new ones.
func TestSyncManager_Stop(t *testing.T) {
	var online atomic.Bool
	online.Store(true)
	m := newTestManager(&online, 1)
	m.Start(context.Background())

	started := make(chan struct{})
	var cancelled atomic.Bool
	m.Handle("sync-requests", func(ctx context.Context) error {
		close(started)
		<-ctx.Done()
		cancelled.Store(true)
		return ctx.Err()
	})
	require.NoError(t, m.Register(context.Background(), "sync-requests"))
	<-started

	m.Stop()

	assert.True(t, cancelled.Load())

	var calls atomic.Int32
	m.Handle("backup-state", func(context.Context) error {
		calls.Add(1)
		return nil
	})
	require.NoError(t, m.Register(context.Background(), "backup-state"))
	m.Wait()
	assert.Zero(t, calls.Load())
}
