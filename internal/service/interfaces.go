// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/fieldwise-sentinel/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/servicemock/service_mock.go -package=servicemock

// CacheStrategyService intercepts every request of a UI surface and answers
// it from the network, the cache or the offline queue.
type CacheStrategyService interface {
	// Handle routes req to its strategy. Until the engine is active every
	// request passes through to the network.
	Handle(ctx context.Context, req models.Request) (models.Response, error)
	// Install fetches the shell manifest and stores it atomically in the
	// asset partition.
	Install(ctx context.Context) error
	// Activate removes stale partitions and starts intercepting requests.
	Activate(ctx context.Context) error
	// Active reports whether Activate has completed.
	Active() bool
	// Wait blocks until background cache refreshes have finished.
	Wait()
}

// ReplayFunc sends one queued request to the origin and reports the outcome.
type ReplayFunc func(ctx context.Context, item models.QueuedRequest) models.SyncResult

// RequestQueue is the durable FIFO of mutations awaiting replay.
type RequestQueue interface {
	Enqueue(ctx context.Context, item models.QueuedRequest) (models.QueuedRequest, error)
	// DrainAll replays every queued request in insertion order. Failed
	// requests go back to the tail of the queue.
	DrainAll(ctx context.Context, replay ReplayFunc) []models.SyncResult
	Clear(ctx context.Context) error
	Len() int
	Snapshot() []models.QueuedRequest
	// Rehydrate loads the persisted queue. Missing or corrupt state yields
	// an empty queue.
	Rehydrate(ctx context.Context) error
}

// SyncCoordinator drains the request queue once connectivity allows it.
type SyncCoordinator interface {
	// RequestSync registers a deferred sync, or drains right away when
	// deferred sync is unavailable.
	RequestSync(ctx context.Context) error
	// SyncNow drains the queue on explicit user request.
	SyncNow(ctx context.Context) ([]models.SyncResult, error)
	// HandleSyncTask is the body of the deferred sync task.
	HandleSyncTask(ctx context.Context) error
	// OnNetworkTransition runs a pending manual sync after the agent comes
	// back online.
	OnNetworkTransition(ctx context.Context, online bool)
}

// DeferredSyncManager runs registered tasks once the agent is online.
type DeferredSyncManager interface {
	Register(ctx context.Context, tag string) error
}

// NetworkObserver owns the agent's NetworkState.
type NetworkObserver interface {
	SetOnline(ctx context.Context, online bool)
	IsOnline() bool
	State() models.NetworkState
	// HandleMessage applies a sync or backup message to the state. Unknown
	// message types are ignored.
	HandleMessage(msg models.Message)
	RefreshPending()
	// OnTransition adds a listener called after every online/offline
	// transition.
	OnTransition(listener func(ctx context.Context, online bool))
}

// Broadcaster fans messages out to every subscribed UI surface.
type Broadcaster interface {
	Subscribe() (<-chan models.Message, func())
	Publish(msg models.Message)
	Subscribers() int
}

type NotificationService interface {
	Show(ctx context.Context, payload models.PushPayload) (models.Message, error)
	ClickTarget(payload models.PushPayload) string
}

// LocalStateService stores the opaque JSON values a UI keeps locally.
type LocalStateService interface {
	Get(ctx context.Context, key string) (json.RawMessage, error)
	Put(ctx context.Context, key string, value json.RawMessage) error
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context) ([]string, error)
}

// LocalStateServiceWrapper defines middleware composition for
// LocalStateService.
type LocalStateServiceWrapper interface {
	Wrap(LocalStateService) LocalStateService
}

// BackupService snapshots every local state slot into the backup partition.
type BackupService interface {
	// Backup stores a new snapshot and returns its key.
	Backup(ctx context.Context) (string, error)
	// List returns the stored backup keys, oldest first.
	List(ctx context.Context) ([]string, error)
	Get(ctx context.Context, key string) (models.BackupEnvelope, error)
	HandleBackupTask(ctx context.Context) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
