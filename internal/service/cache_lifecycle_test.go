package service

import (
	"context"
	"net/http"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/fieldwise-sentinel/models"
)

// ── Install ──────────────────────────────────────────────────────────────────

// Install fetches the whole manifest and stores it in the asset partition.
func TestCacheLifecycle_Install_StoresManifest(t *testing.T) {
	f := newStrategyFixture(t, false)
	f.fetcher.setFetch(func(req models.Request) (models.Response, error) {
		return okResponse(req.URL.Path), nil
	})

	require.NoError(t, f.svc.Install(context.Background()))

	fetched := f.fetcher.fetchedPaths()
	sort.Strings(fetched)
	assert.Equal(t, []string{"GET /", "GET /icons/icon-192.png", "GET /login", "GET /manifest.json"}, fetched)

	keys, err := f.storages.Cache.Keys(context.Background(), "fieldwise-static-v1")
	require.NoError(t, err)
	assert.Len(t, keys, 4)
}

// A single failed manifest fetch stores nothing.
func TestCacheLifecycle_Install_IsAtomic(t *testing.T) {
	tests := []struct {
		name  string
		fetch func(req models.Request) (models.Response, error)
	}{
		{
			name: "transport error",
			fetch: func(req models.Request) (models.Response, error) {
				if req.URL.Path == "/manifest.json" {
					return offline(req)
				}
				return okResponse("ok"), nil
			},
		},
		{
			name: "not found",
			fetch: func(req models.Request) (models.Response, error) {
				if req.URL.Path == "/login" {
					return models.Response{StatusCode: http.StatusNotFound}, nil
				}
				return okResponse("ok"), nil
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newStrategyFixture(t, false)
			f.fetcher.setFetch(tt.fetch)

			err := f.svc.Install(context.Background())

			assert.ErrorIs(t, err, ErrInstallFailed)
			keys, err := f.storages.Cache.Keys(context.Background(), "fieldwise-static-v1")
			require.NoError(t, err)
			assert.Empty(t, keys)
		})
	}
}

// ── Activate ─────────────────────────────────────────────────────────────────

// Activation leaves only the current asset and data partitions.
func TestCacheLifecycle_Activate_PrunesPartitions(t *testing.T) {
	f := newStrategyFixture(t, false)
	ctx := context.Background()
	for _, p := range []string{"fieldwise-static-v0", "fieldwise-data-v0", "fieldwise-static-v1", "fieldwise-data-v1", "fieldwise-backups"} {
		require.NoError(t, f.storages.Cache.Open(ctx, p))
	}

	require.NoError(t, f.svc.Activate(ctx))

	partitions, err := f.storages.Cache.Partitions(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"fieldwise-static-v1", "fieldwise-data-v1"}, partitions)
	assert.True(t, f.svc.Active())
}

// Activation makes the engine intercept requests.
func TestCacheLifecycle_Activate_StartsInterception(t *testing.T) {
	f := newStrategyFixture(t, false)
	assert.False(t, f.svc.Active())

	require.NoError(t, f.svc.Activate(context.Background()))

	assert.True(t, f.svc.Active())
}
