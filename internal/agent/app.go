package agent

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/fieldwise-sentinel/internal/adapter"
	"github.com/MKhiriev/fieldwise-sentinel/internal/config"
	"github.com/MKhiriev/fieldwise-sentinel/internal/handler"
	"github.com/MKhiriev/fieldwise-sentinel/internal/logger"
	"github.com/MKhiriev/fieldwise-sentinel/internal/metrics"
	"github.com/MKhiriev/fieldwise-sentinel/internal/server"
	"github.com/MKhiriev/fieldwise-sentinel/internal/service"
	"github.com/MKhiriev/fieldwise-sentinel/internal/store"
	"github.com/MKhiriev/fieldwise-sentinel/internal/workers"
	"github.com/MKhiriev/fieldwise-sentinel/models"
)

// BackupTaskName names the periodic backup task in logs.
const BackupTaskName = service.BackupTag

type App struct {
	storages *store.Storages
	services *service.Services
	workers  *workers.Workers
	server   server.Server

	logger *logger.Logger
}

var _ Runner = (*App)(nil)

// NewApp builds the agent from cfg. Storage is opened and migrated here and
// closed by Run.
func NewApp(ctx context.Context, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	m := metrics.NewProcessMetrics()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create storages: %w", err)
	}

	app, err := newApp(storages, cfg, buildInfo, m, log)
	if err != nil {
		storages.Close()
		return nil, err
	}
	return app, nil
}

func newApp(storages *store.Storages, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, m *metrics.Metrics, log *logger.Logger) (*App, error) {
	fetcher := adapter.NewHTTPOriginFetcher(cfg.Adapter, cfg.App, log)

	// the manager asks the observer, which only exists once services are built
	var observer service.NetworkObserver
	manager := workers.NewSyncManager(cfg.Workers, func() bool {
		return observer != nil && observer.IsOnline()
	}, log)

	services, err := service.NewServices(storages, fetcher, manager, cfg, buildInfo, m, log)
	if err != nil {
		return nil, fmt.Errorf("create services: %w", err)
	}
	observer = services.Observer

	manager.Handle(service.SyncTag, services.Sync.HandleSyncTask)
	manager.Handle(service.BackupTag, services.Backup.HandleBackupTask)
	services.Observer.OnTransition(manager.OnNetworkTransition)

	handlers, err := handler.NewHandlers(services, cfg, m.Handler(), log)
	if err != nil {
		return nil, fmt.Errorf("create handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		return nil, fmt.Errorf("create server: %w", err)
	}

	return &App{
		storages: storages,
		services: services,
		workers: workers.NewWorkers(
			manager,
			workers.NewConnectivityProbe(fetcher, services.Observer, cfg.Workers.ProbeInterval, cfg.Adapter.RequestTimeout, log),
			workers.NewPeriodicTask(BackupTaskName, cfg.Workers.BackupInterval, manager.RegisterFunc(service.BackupTag), log),
		),
		server: srv,
		logger: log,
	}, nil
}

// Run restores the queue, brings the cache strategy engine up and serves
// until ctx ends or a termination signal arrives. Background cache refreshes
// finish before storage is closed.
func (a *App) Run(ctx context.Context) error {
	defer func() {
		if err := a.storages.Close(); err != nil {
			a.logger.Error().Err(err).Msg("error closing storages")
		}
	}()
	defer a.services.Cache.Wait()

	if err := a.start(ctx); err != nil {
		return err
	}

	a.workers.Start(ctx)
	defer a.workers.Stop()

	return a.server.RunServer(ctx)
}

// start rehydrates the queue and installs and activates the cache. A failed
// install leaves the engine inactive, so requests pass through untouched.
func (a *App) start(ctx context.Context) error {
	if err := a.services.Queue.Rehydrate(ctx); err != nil {
		return fmt.Errorf("rehydrate queue: %w", err)
	}
	a.services.Observer.RefreshPending()
	a.logger.Info().Int("pending", a.services.Queue.Len()).Msg("request queue rehydrated")

	if err := a.services.Cache.Install(ctx); err != nil {
		if errors.Is(err, service.ErrInstallFailed) {
			a.logger.Error().Err(err).Msg("cache install failed, serving pass-through")
			return nil
		}
		return fmt.Errorf("install: %w", err)
	}

	if err := a.services.Cache.Activate(ctx); err != nil {
		return fmt.Errorf("activate: %w", err)
	}
	a.logger.Info().Msg("cache strategy engine active")

	return nil
}
