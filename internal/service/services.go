package service

import (
	"github.com/MKhiriev/fieldwise-sentinel/internal/adapter"
	"github.com/MKhiriev/fieldwise-sentinel/internal/config"
	"github.com/MKhiriev/fieldwise-sentinel/internal/logger"
	"github.com/MKhiriev/fieldwise-sentinel/internal/metrics"
	"github.com/MKhiriev/fieldwise-sentinel/internal/store"
	"github.com/MKhiriev/fieldwise-sentinel/models"
)

type Services struct {
	Broadcaster   Broadcaster
	Queue         RequestQueue
	Observer      NetworkObserver
	Sync          SyncCoordinator
	Cache         CacheStrategyService
	Backup        BackupService
	Notifications NotificationService
	LocalState    LocalStateService
	AppInfo       AppInfoService
}

// NewServices wires the agent's services. The coordinator is subscribed to
// the observer's transitions; manager may be nil.
func NewServices(
	storages *store.Storages,
	fetcher adapter.OriginFetcher,
	manager DeferredSyncManager,
	cfg *config.StructuredConfig,
	buildInfo models.AppBuildInfo,
	m *metrics.Metrics,
	logger *logger.Logger,
) (*Services, error) {
	appInfo, err := NewAppInfoService(buildInfo, logger)
	if err != nil {
		return nil, err
	}

	broadcaster := NewBroadcaster(DefaultSubscriberBuffer, logger)
	queue := NewRequestQueue(storages.KV, m, logger)
	observer := NewNetworkObserver(queue, broadcaster, true, m, logger)
	coordinator := NewSyncCoordinator(queue, fetcher, observer, broadcaster, manager, cfg.Workers, m, logger)
	observer.OnTransition(coordinator.OnNetworkTransition)

	cache, err := NewCacheStrategyService(storages.Cache, fetcher, queue, observer, coordinator, cfg, m, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		Broadcaster:   broadcaster,
		Queue:         queue,
		Observer:      observer,
		Sync:          coordinator,
		Cache:         cache,
		Backup:        NewBackupService(storages.KV, storages.Cache, observer, broadcaster, cfg.Cache, m, logger),
		Notifications: NewNotificationService(broadcaster, cfg.App, logger),
		LocalState:    NewLocalStateValidationService().Wrap(NewLocalStateService(storages.KV, logger)),
		AppInfo:       appInfo,
	}, nil
}
