package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/fieldwise-sentinel/internal/config"
	"github.com/MKhiriev/fieldwise-sentinel/internal/logger"
	"github.com/MKhiriev/fieldwise-sentinel/internal/mock/servicemock"
	"github.com/MKhiriev/fieldwise-sentinel/internal/service"
)

// mockedServices holds the mocks behind a Handler built by newMockedHandler.
type mockedServices struct {
	cache         *servicemock.MockCacheStrategyService
	queue         *servicemock.MockRequestQueue
	sync          *servicemock.MockSyncCoordinator
	observer      *servicemock.MockNetworkObserver
	broadcaster   *servicemock.MockBroadcaster
	notifications *servicemock.MockNotificationService
	localState    *servicemock.MockLocalStateService
	backup        *servicemock.MockBackupService
	appInfo       *servicemock.MockAppInfoService
}

func newMockedHandler(t *testing.T) (*Handler, *mockedServices) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := &mockedServices{
		cache:         servicemock.NewMockCacheStrategyService(ctrl),
		queue:         servicemock.NewMockRequestQueue(ctrl),
		sync:          servicemock.NewMockSyncCoordinator(ctrl),
		observer:      servicemock.NewMockNetworkObserver(ctrl),
		broadcaster:   servicemock.NewMockBroadcaster(ctrl),
		notifications: servicemock.NewMockNotificationService(ctrl),
		localState:    servicemock.NewMockLocalStateService(ctrl),
		backup:        servicemock.NewMockBackupService(ctrl),
		appInfo:       servicemock.NewMockAppInfoService(ctrl),
	}

	svcs := &service.Services{
		Cache:         m.cache,
		Queue:         m.queue,
		Sync:          m.sync,
		Observer:      m.observer,
		Broadcaster:   m.broadcaster,
		Notifications: m.notifications,
		LocalState:    m.localState,
		Backup:        m.backup,
		AppInfo:       m.appInfo,
	}

	h, err := NewHandler(svcs, config.App{Origin: "http://origin.test"}, nil, logger.Nop())
	require.NoError(t, err)
	return h, m
}

// serve runs req through the full router.
func serve(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_StoresDependencies(t *testing.T) {
	svcs := &service.Services{}
	log := logger.Nop()
	metrics := http.NotFoundHandler()

	h, err := NewHandler(svcs, config.App{Origin: "http://localhost:3000"}, metrics, log)

	require.NoError(t, err)
	assert.Equal(t, svcs, h.services)
	assert.Equal(t, log, h.logger)
	assert.Equal(t, "localhost:3000", h.origin.Host)
	assert.NotNil(t, h.metrics)
}

func TestNewHandler_InvalidOrigin(t *testing.T) {
	for _, origin := range []string{"", "localhost:3000", "/relative", "http://"} {
		t.Run(origin, func(t *testing.T) {
			_, err := NewHandler(&service.Services{}, config.App{Origin: origin}, nil, logger.Nop())
			assert.ErrorIs(t, err, ErrInvalidOrigin)
		})
	}
}

// ─────────────────────────────────────────────
// Init: route registration
// ─────────────────────────────────────────────

// Unknown control paths are not proxied to the origin.
func TestInit_UnknownControlRouteReturns404(t *testing.T) {
	h, _ := newMockedHandler(t)

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/_sentinel/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// A known control path with the wrong method answers 405 with Allow.
func TestInit_WrongMethodOnControlRoute(t *testing.T) {
	h, _ := newMockedHandler(t)

	rec := serve(h, httptest.NewRequest(http.MethodPatch, "/_sentinel/queue", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "DELETE, GET", rec.Header().Get("Allow"))
}

// /metrics is served by the metrics handler when one is configured.
func TestInit_MetricsRoute(t *testing.T) {
	metrics := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("sentinel_up 1"))
	})
	h, err := NewHandler(&service.Services{}, config.App{Origin: "http://origin.test"}, metrics, logger.Nop())
	require.NoError(t, err)

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "sentinel_up 1", rec.Body.String())
}

// Every response carries a trace ID.
func TestInit_TraceIDOnEveryRoute(t *testing.T) {
	h, m := newMockedHandler(t)
	m.appInfo.EXPECT().GetBuildInfo(gomock.Any()).Return(testBuildInfo)
	m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.0.0")

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/_sentinel/version", nil))

	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}
