// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/fieldwise-sentinel/internal/adapter"
	"github.com/MKhiriev/fieldwise-sentinel/internal/logger"
	"github.com/MKhiriev/fieldwise-sentinel/internal/store"
	"github.com/MKhiriev/fieldwise-sentinel/models"
)

type strategyFixture struct {
	svc         *cacheStrategyService
	storages    *store.Storages
	fetcher     *fakeFetcher
	queue       RequestQueue
	observer    *networkObserver
	coordinator *stubCoordinator
}

func newStrategyFixture(t *testing.T, active bool) *strategyFixture {
	t.Helper()
	storages := newTestStorages(t)
	fetcher := &fakeFetcher{}
	queue := NewRequestQueue(storages.KV, nopMetrics(), logger.Nop())
	observer, _ := newTestObserver(true, queue)
	coordinator := &stubCoordinator{}

	svc, err := NewCacheStrategyService(storages.Cache, fetcher, queue, observer, coordinator, testConfig(), nopMetrics(), logger.Nop())
	require.NoError(t, err)

	f := &strategyFixture{
		svc:         svc.(*cacheStrategyService),
		storages:    storages,
		fetcher:     fetcher,
		queue:       queue,
		observer:    observer,
		coordinator: coordinator,
	}
	if active {
		require.NoError(t, f.svc.Activate(context.Background()))
	}
	return f
}

func (f *strategyFixture) cached(t *testing.T, partition string, req models.Request) (models.CachedResponse, error) {
	t.Helper()
	return f.storages.Cache.Match(context.Background(), partition, requestKey(req))
}

// ── NewCacheStrategyService ──────────────────────────────────────────────────

// An origin that is not an absolute URL is rejected.
func TestNewCacheStrategyService_InvalidOrigin(t *testing.T) {
	cfg := testConfig()
	cfg.App.Origin = "localhost"

	_, err := NewCacheStrategyService(nil, &fakeFetcher{}, nil, nil, nil, cfg, nopMetrics(), logger.Nop())

	assert.ErrorIs(t, err, ErrInvalidAppOrigin)
}

// ── pass-through ─────────────────────────────────────────────────────────────

// Until activation every request goes to the network and nothing is cached.
func TestCacheStrategy_Inactive_PassesThrough(t *testing.T) {
	f := newStrategyFixture(t, false)
	f.fetcher.setFetch(func(models.Request) (models.Response, error) { return okResponse("live"), nil })
	req := getRequest(t, "/api/fields")

	resp, err := f.svc.Handle(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "live", string(resp.Body))
	_, err = f.cached(t, "fieldwise-data-v1", req)
	assert.ErrorIs(t, err, store.ErrCacheMiss)
}

// Foreign origins are forwarded untouched and never cached.
func TestCacheStrategy_ForeignOrigin_PassesThrough(t *testing.T) {
	f := newStrategyFixture(t, true)
	f.fetcher.setFetch(func(models.Request) (models.Response, error) { return okResponse("cdn"), nil })
	req := models.Request{Method: http.MethodGet, URL: mustURL(t, "https://cdn.example.com/lib.js"), Header: make(http.Header)}

	resp, err := f.svc.Handle(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "cdn", string(resp.Body))
	_, err = f.cached(t, "fieldwise-static-v1", req)
	assert.ErrorIs(t, err, store.ErrCacheMiss)
}

// ── network-first ────────────────────────────────────────────────────────────

// A 200 from the origin is cached in the data partition and served from
// there once the origin is unreachable.
func TestCacheStrategy_NetworkFirst_FallsBackToCache(t *testing.T) {
	f := newStrategyFixture(t, true)
	req := getRequest(t, "/api/fields")

	f.fetcher.setFetch(func(models.Request) (models.Response, error) { return okResponse(`{"fields":[1]}`), nil })
	resp, err := f.svc.Handle(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, models.SourceNetwork, resp.Source)

	f.fetcher.setFetch(offline)
	resp, err = f.svc.Handle(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, models.SourceCache, resp.Source)
	assert.Equal(t, `{"fields":[1]}`, string(resp.Body))
	assert.Equal(t, "text/plain", resp.ContentType())
}

// Non-200 answers are returned as-is and not cached.
func TestCacheStrategy_NetworkFirst_DoesNotCacheErrors(t *testing.T) {
	f := newStrategyFixture(t, true)
	req := getRequest(t, "/api/fields")
	f.fetcher.setFetch(func(models.Request) (models.Response, error) {
		return models.Response{StatusCode: http.StatusInternalServerError, Body: []byte("boom")}, nil
	})

	resp, err := f.svc.Handle(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	_, err = f.cached(t, "fieldwise-data-v1", req)
	assert.ErrorIs(t, err, store.ErrCacheMiss)
}

// An uncached navigation falls back to the app shell.
func TestCacheStrategy_NetworkFirst_NavigationGetsAppShell(t *testing.T) {
	f := newStrategyFixture(t, true)
	f.fetcher.setFetch(func(req models.Request) (models.Response, error) {
		return okResponse("shell:" + req.URL.Path), nil
	})
	require.NoError(t, f.svc.Install(context.Background()))

	f.fetcher.setFetch(offline)
	req := getRequest(t, "/fields/north-12")
	req.Mode = models.ModeNavigate

	resp, err := f.svc.Handle(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, models.SourceFallback, resp.Source)
	assert.Equal(t, "shell:/", string(resp.Body))
}

// An uncached data request with the origin down fails with ErrOfflineNoCache.
func TestCacheStrategy_NetworkFirst_OfflineNoCache(t *testing.T) {
	f := newStrategyFixture(t, true)
	f.fetcher.setFetch(offline)

	_, err := f.svc.Handle(context.Background(), getRequest(t, "/api/pests"))

	assert.ErrorIs(t, err, ErrOfflineNoCache)
	assert.ErrorIs(t, err, adapter.ErrNetwork)
}

// The bearer token of a successful API call is kept for replays.
func TestCacheStrategy_NetworkFirst_RemembersToken(t *testing.T) {
	f := newStrategyFixture(t, true)
	f.fetcher.setFetch(func(models.Request) (models.Response, error) { return okResponse("{}"), nil })
	req := getRequest(t, "/api/me")
	req.Header.Set("Authorization", "Bearer abc.def.ghi")

	_, err := f.svc.Handle(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", f.fetcher.Token())
}

// ── cache-first ──────────────────────────────────────────────────────────────

// Offline, a cached static asset is served byte-for-byte.
func TestCacheStrategy_CacheFirst_OfflineServesCachedBytes(t *testing.T) {
	f := newStrategyFixture(t, true)
	icon := []byte{0x89, 'P', 'N', 'G', 0x00, 0xff}
	f.fetcher.setFetch(func(req models.Request) (models.Response, error) {
		if req.URL.Path == "/icons/icon-192.png" {
			return models.Response{StatusCode: http.StatusOK, Header: http.Header{"Content-Type": []string{"image/png"}}, Body: icon}, nil
		}
		return okResponse("page"), nil
	})
	require.NoError(t, f.svc.Install(context.Background()))
	f.fetcher.setFetch(offline)

	resp, err := f.svc.Handle(context.Background(), getRequest(t, "/icons/icon-192.png"))
	f.svc.Wait()

	require.NoError(t, err)
	assert.Equal(t, icon, resp.Body)
	assert.Equal(t, "image/png", resp.ContentType())
	assert.Equal(t, models.SourceCache, resp.Source)
}

// A hit is refreshed in the background for the next request.
func TestCacheStrategy_CacheFirst_RefreshesInBackground(t *testing.T) {
	f := newStrategyFixture(t, true)
	req := getRequest(t, "/app.css")
	f.fetcher.setFetch(func(models.Request) (models.Response, error) { return okResponse("v1"), nil })

	resp, err := f.svc.Handle(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "v1", string(resp.Body))
	assert.Equal(t, models.SourceNetwork, resp.Source)

	f.fetcher.setFetch(func(models.Request) (models.Response, error) { return okResponse("v2"), nil })
	resp, err = f.svc.Handle(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "v1", string(resp.Body))

	f.svc.Wait()
	cached, err := f.cached(t, "fieldwise-static-v1", req)
	require.NoError(t, err)
	assert.Equal(t, "v2", string(cached.Payload))
}

// Wait returns only once a running background refresh has stored its
// result.
func TestCacheStrategy_Wait_BlocksOnRefresh(t *testing.T) {
	f := newStrategyFixture(t, true)
	req := getRequest(t, "/app.js")
	f.fetcher.setFetch(func(models.Request) (models.Response, error) { return okResponse("v1"), nil })
	_, err := f.svc.Handle(context.Background(), req)
	require.NoError(t, err)

	release := make(chan struct{})
	f.fetcher.setFetch(func(models.Request) (models.Response, error) {
		<-release
		return okResponse("v2"), nil
	})
	_, err = f.svc.Handle(context.Background(), req)
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		f.svc.Wait()
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("Wait returned while a refresh was in flight")
	case <-time.After(20 * time.Millisecond):
	}

	close(release)
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Wait did not return after the refresh finished")
	}

	cached, err := f.cached(t, "fieldwise-static-v1", req)
	require.NoError(t, err)
	assert.Equal(t, "v2", string(cached.Payload))
}

// A miss with the origin down fails with ErrOfflineNoCache.
func TestCacheStrategy_CacheFirst_MissOffline(t *testing.T) {
	f := newStrategyFixture(t, true)
	f.fetcher.setFetch(offline)
	req := getRequest(t, "/img/map.png")

	_, err := f.svc.Handle(context.Background(), req)

	assert.ErrorIs(t, err, ErrOfflineNoCache)
}

// ── mutations ────────────────────────────────────────────────────────────────

// Offline, an API write is queued and answered 202 with its queue ID.
func TestCacheStrategy_Mutation_OfflineIsQueued(t *testing.T) {
	f := newStrategyFixture(t, true)
	f.observer.SetOnline(context.Background(), false)
	req := models.Request{
		Method: http.MethodPost,
		URL:    mustURL(t, testOrigin+"/api/reports"),
		Header: http.Header{"Content-Type": []string{"application/json"}, "Authorization": []string{"Bearer tok"}},
		Body:   []byte(`{"pest":"aphid"}`),
	}

	resp, err := f.svc.Handle(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
	assert.Equal(t, models.SourceQueued, resp.Source)
	assert.Empty(t, f.fetcher.fetchedPaths())
	assert.Equal(t, 1, f.coordinator.count())

	queued := f.queue.Snapshot()
	require.Len(t, queued, 1)
	assert.Equal(t, queued[0].ID, resp.Header.Get(HeaderQueued))
	assert.True(t, queued[0].Auth)
	assert.Empty(t, queued[0].Headers.Get("Authorization"))
	assert.Equal(t, "application/json", queued[0].Headers.Get("Content-Type"))
	assert.Equal(t, `{"pest":"aphid"}`, string(queued[0].Body))
	assert.Equal(t, "tok", f.fetcher.Token())
	assert.Equal(t, 1, f.observer.State().PendingCount)

	var body queuedBody
	require.NoError(t, json.Unmarshal(resp.Body, &body))
	assert.True(t, body.Queued)
	assert.Equal(t, queued[0].ID, body.ID)
}

// Online, a write that cannot reach the origin is queued as well.
func TestCacheStrategy_Mutation_TransportErrorIsQueued(t *testing.T) {
	f := newStrategyFixture(t, true)
	f.fetcher.setFetch(offline)
	req := models.Request{Method: http.MethodDelete, URL: mustURL(t, testOrigin+"/api/reports/7"), Header: make(http.Header)}

	resp, err := f.svc.Handle(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
	assert.Equal(t, 1, f.queue.Len())
}

// Online writes are forwarded and never cached; origin errors come back as-is.
func TestCacheStrategy_Mutation_OnlineForwarded(t *testing.T) {
	f := newStrategyFixture(t, true)
	f.fetcher.setFetch(func(models.Request) (models.Response, error) {
		return models.Response{StatusCode: http.StatusConflict, Body: []byte("duplicate")}, nil
	})
	req := models.Request{Method: http.MethodPut, URL: mustURL(t, testOrigin+"/api/reports/7"), Header: make(http.Header), Body: []byte(`{}`)}

	resp, err := f.svc.Handle(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Zero(t, f.queue.Len())
	_, err = f.cached(t, "fieldwise-data-v1", req)
	assert.ErrorIs(t, err, store.ErrCacheMiss)
}

// Non-transport failures are returned instead of queued.
func TestCacheStrategy_Mutation_OtherErrorsReturned(t *testing.T) {
	f := newStrategyFixture(t, true)
	boom := errors.New("boom")
	f.fetcher.setFetch(func(models.Request) (models.Response, error) { return models.Response{}, boom })
	req := models.Request{Method: http.MethodPost, URL: mustURL(t, testOrigin+"/api/reports"), Header: make(http.Header)}

	_, err := f.svc.Handle(context.Background(), req)

	assert.ErrorIs(t, err, boom)
	assert.Zero(t, f.queue.Len())
}
