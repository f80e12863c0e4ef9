// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/fieldwise-sentinel/internal/adapter"
	"github.com/MKhiriev/fieldwise-sentinel/internal/config"
	"github.com/MKhiriev/fieldwise-sentinel/internal/logger"
	"github.com/MKhiriev/fieldwise-sentinel/internal/metrics"
	"github.com/MKhiriev/fieldwise-sentinel/internal/store"
	"github.com/MKhiriev/fieldwise-sentinel/internal/utils"
	"github.com/MKhiriev/fieldwise-sentinel/models"
)

// HeaderQueued carries the ID of a request accepted into the offline queue.
const HeaderQueued = "X-Sentinel-Queued"

const (
	strategyNetworkFirst = "network-first"
	strategyCacheFirst   = "cache-first"
	strategyQueue        = "queue"
	strategyPassThrough  = "pass-through"
)

// queuedBody is the JSON body answered for a queued mutation.
type queuedBody struct {
	Queued     bool      `json:"queued"`
	ID         string    `json:"id"`
	EnqueuedAt time.Time `json:"enqueued_at"`
}

type cacheStrategyService struct {
	cache    store.CacheStorage
	fetcher  adapter.OriginFetcher
	queue    RequestQueue
	observer NetworkObserver
	sync     SyncCoordinator

	router         *cacheRouter
	assetPartition string
	dataPartition  string
	shellPath      string
	manifest       []string
	refreshTimeout time.Duration

	active    atomic.Bool
	refreshes sync.WaitGroup

	now     func() time.Time
	metrics *metrics.Metrics
	logger  *logger.Logger
}

func NewCacheStrategyService(
	cache store.CacheStorage,
	fetcher adapter.OriginFetcher,
	queue RequestQueue,
	observer NetworkObserver,
	coordinator SyncCoordinator,
	cfg *config.StructuredConfig,
	m *metrics.Metrics,
	logger *logger.Logger,
) (CacheStrategyService, error) {
	router, err := newCacheRouter(cfg.App, cfg.Cache)
	if err != nil {
		return nil, err
	}

	return &cacheStrategyService{
		cache:          cache,
		fetcher:        fetcher,
		queue:          queue,
		observer:       observer,
		sync:           coordinator,
		router:         router,
		assetPartition: cfg.Cache.AssetPartition,
		dataPartition:  cfg.Cache.DataPartition,
		shellPath:      cfg.App.AppShellPath,
		manifest:       cfg.Cache.ShellManifest,
		refreshTimeout: cfg.Adapter.RequestTimeout,
		now:            time.Now,
		metrics:        m,
		logger:         logger,
	}, nil
}

func (s *cacheStrategyService) Handle(ctx context.Context, req models.Request) (models.Response, error) {
	kind := s.router.route(req)
	if !s.Active() || kind == routePassThrough {
		return s.passThrough(ctx, req)
	}

	switch kind {
	case routeData:
		if req.IsMutation() {
			return s.mutation(ctx, req)
		}
		return s.networkFirst(ctx, req, s.dataPartition)
	case routeStatic:
		return s.cacheFirst(ctx, req)
	default:
		return s.networkFirst(ctx, req, s.assetPartition)
	}
}

func (s *cacheStrategyService) Active() bool {
	return s.active.Load()
}

func (s *cacheStrategyService) passThrough(ctx context.Context, req models.Request) (models.Response, error) {
	resp, err := s.fetcher.Fetch(ctx, req)
	if err != nil {
		return models.Response{}, err
	}
	s.countResponse(strategyPassThrough, resp.Source)
	return resp, nil
}

// networkFirst answers from the origin and keeps a copy of every 200. When
// the origin is unreachable it falls back to the cached copy, then to the app
// shell for navigations.
func (s *cacheStrategyService) networkFirst(ctx context.Context, req models.Request, partition string) (models.Response, error) {
	resp, err := s.fetcher.Fetch(ctx, req)
	if err == nil {
		if resp.StatusCode == http.StatusOK {
			s.put(ctx, partition, req, resp)
		}
		if partition == s.dataPartition && isSuccess(resp.StatusCode) {
			s.rememberToken(req)
		}
		s.countResponse(strategyNetworkFirst, resp.Source)
		return resp, nil
	}

	log := logger.FromContext(ctx)
	log.Debug().Err(err).
		Str("func", "cacheStrategyService.networkFirst").
		Str("url", req.URL.String()).
		Msg("network failed, trying cache")

	if cached, ok := s.match(ctx, partition, req); ok {
		resp = cached.ToResponse()
		s.countResponse(strategyNetworkFirst, resp.Source)
		return resp, nil
	}

	if req.IsNavigation() {
		if shell, ok := s.match(ctx, s.assetPartition, s.shellRequest()); ok {
			resp = shell.ToResponse()
			resp.Source = models.SourceFallback
			s.countResponse(strategyNetworkFirst, resp.Source)
			return resp, nil
		}
	}

	return models.Response{}, fmt.Errorf("%w: %s %s: %w", ErrOfflineNoCache, req.Method, req.URL.Redacted(), err)
}

// cacheFirst answers from the asset partition and refreshes the hit in the
// background. A miss goes to the network.
func (s *cacheStrategyService) cacheFirst(ctx context.Context, req models.Request) (models.Response, error) {
	if cached, ok := s.match(ctx, s.assetPartition, req); ok {
		s.refresh(ctx, req)
		resp := cached.ToResponse()
		s.countResponse(strategyCacheFirst, resp.Source)
		return resp, nil
	}

	resp, err := s.fetcher.Fetch(ctx, req)
	if err != nil {
		return models.Response{}, fmt.Errorf("%w: %s %s: %w", ErrOfflineNoCache, req.Method, req.URL.Redacted(), err)
	}
	if resp.StatusCode == http.StatusOK {
		s.put(ctx, s.assetPartition, req, resp)
	}
	s.countResponse(strategyCacheFirst, resp.Source)

	return resp, nil
}

func (s *cacheStrategyService) Wait() {
	s.refreshes.Wait()
}

// refresh re-fetches req detached from the caller. Failures are logged only.
func (s *cacheStrategyService) refresh(ctx context.Context, req models.Request) {
	refreshCtx := context.WithoutCancel(ctx)
	var cancel context.CancelFunc = func() {}
	if s.refreshTimeout > 0 {
		refreshCtx, cancel = context.WithTimeout(refreshCtx, s.refreshTimeout)
	}

	s.refreshes.Add(1)
	go func() {
		defer s.refreshes.Done()
		defer cancel()

		resp, err := s.fetcher.Fetch(refreshCtx, req)
		if err != nil {
			s.logger.Debug().Err(err).
				Str("func", "cacheStrategyService.refresh").
				Str("url", req.URL.String()).
				Msg("background refresh failed")
			return
		}
		if resp.StatusCode == http.StatusOK {
			s.put(refreshCtx, s.assetPartition, req, resp)
		}
	}()
}

// mutation forwards an API write while online. Offline, or when the origin
// cannot be reached, the write is queued and a sync is requested.
func (s *cacheStrategyService) mutation(ctx context.Context, req models.Request) (models.Response, error) {
	if s.observer.IsOnline() {
		resp, err := s.fetcher.Fetch(ctx, req)
		if err == nil {
			if isSuccess(resp.StatusCode) {
				s.rememberToken(req)
			}
			s.countResponse(strategyNetworkFirst, resp.Source)
			return resp, nil
		}
		if !errors.Is(err, adapter.ErrNetwork) || ctx.Err() != nil {
			return models.Response{}, err
		}
	}

	item := models.QueuedRequest{
		URL:     req.URL.String(),
		Method:  req.Method,
		Body:    req.Body,
		Headers: req.Header.Clone(),
	}
	if token, err := utils.ParseBearerToken(req.Header.Get("Authorization")); err == nil {
		item.Auth = true
		item.Headers.Del("Authorization")
		s.fetcher.SetToken(token)
	}

	queued, err := s.queue.Enqueue(ctx, item)
	if err != nil {
		return models.Response{}, err
	}
	s.observer.RefreshPending()

	if err = s.sync.RequestSync(ctx); err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "cacheStrategyService.mutation").
			Msg("error requesting sync")
	}

	body, _ := json.Marshal(queuedBody{Queued: true, ID: queued.ID, EnqueuedAt: queued.EnqueuedAt})
	header := make(http.Header)
	header.Set("Content-Type", "application/json")
	header.Set(HeaderQueued, queued.ID)

	s.countResponse(strategyQueue, models.SourceQueued)

	return models.Response{
		StatusCode: http.StatusAccepted,
		Header:     header,
		Body:       body,
		Source:     models.SourceQueued,
	}, nil
}

func (s *cacheStrategyService) match(ctx context.Context, partition string, req models.Request) (models.CachedResponse, bool) {
	cached, err := s.cache.Match(ctx, partition, requestKey(req))
	if err != nil {
		if !errors.Is(err, store.ErrCacheMiss) {
			logger.FromContext(ctx).Warn().Err(err).
				Str("func", "cacheStrategyService.match").
				Str("partition", partition).
				Msg("cache lookup failed")
		}
		s.metrics.RecordLookup(partition, false)
		return models.CachedResponse{}, false
	}

	s.metrics.RecordLookup(partition, true)
	return cached, true
}

func (s *cacheStrategyService) put(ctx context.Context, partition string, req models.Request, resp models.Response) {
	if err := s.cache.Put(ctx, s.entry(partition, req, resp)); err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "cacheStrategyService.put").
			Str("partition", partition).
			Msg("error caching response")
		return
	}
	s.metrics.CacheWritesTotal.WithLabelValues(partition).Inc()
}

func (s *cacheStrategyService) entry(partition string, req models.Request, resp models.Response) models.CachedResponse {
	return models.CachedResponse{
		Partition:   partition,
		Key:         requestKey(req),
		Method:      req.Method,
		URL:         req.URL.String(),
		StatusCode:  resp.StatusCode,
		ContentType: resp.ContentType(),
		Header:      resp.Header.Clone(),
		Payload:     resp.Body,
		CapturedAt:  s.now().UTC(),
	}
}

// rememberToken keeps the bearer token of a successful API call for
// authenticated replays.
func (s *cacheStrategyService) rememberToken(req models.Request) {
	token, err := utils.ParseBearerToken(req.Header.Get("Authorization"))
	if err != nil {
		return
	}
	s.fetcher.SetToken(token)
}

func (s *cacheStrategyService) shellRequest() models.Request {
	return models.Request{
		Method: http.MethodGet,
		URL:    s.router.resolve(s.shellPath),
		Header: make(http.Header),
	}
}

func (s *cacheStrategyService) countResponse(strategy string, source models.ResponseSource) {
	s.metrics.ResponsesTotal.WithLabelValues(strategy, string(source)).Inc()
}

func requestKey(req models.Request) string {
	return utils.RequestKey(req.Method, req.URL.String(), req.Body)
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}
