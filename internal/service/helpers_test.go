package service

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/fieldwise-sentinel/internal/adapter"
	"github.com/MKhiriev/fieldwise-sentinel/internal/config"
	"github.com/MKhiriev/fieldwise-sentinel/internal/logger"
	"github.com/MKhiriev/fieldwise-sentinel/internal/metrics"
	"github.com/MKhiriev/fieldwise-sentinel/internal/store"
	"github.com/MKhiriev/fieldwise-sentinel/models"
)

const testOrigin = "http://localhost:3000"

func newTestStorages(t *testing.T) *store.Storages {
	t.Helper()
	storages, err := store.NewStorages(context.Background(), config.Storage{DB: config.DB{DSN: ":memory:"}}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { storages.Close() })
	return storages
}

func testConfig() *config.StructuredConfig {
	return &config.StructuredConfig{
		App: config.App{
			Origin:           testOrigin,
			APIPrefix:        "/api/",
			AppShellPath:     "/",
			NotificationPath: "/dashboard",
		},
		Cache: config.Cache{
			AssetPartition:   "fieldwise-static-v1",
			DataPartition:    "fieldwise-data-v1",
			BackupPartition:  "fieldwise-backups",
			ShellManifest:    []string{"/", "/login", "/manifest.json", "/icons/icon-192.png"},
			StaticExtensions: []string{".css", ".js", ".png"},
			BackupRetention:  5,
		},
		Adapter: config.Adapter{RequestTimeout: time.Second},
		Workers: config.Workers{},
	}
}

// stepClock returns a clock advancing by step on every call.
func stepClock(start time.Time, step time.Duration) func() time.Time {
	var mu sync.Mutex
	current := start.Add(-step)
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		current = current.Add(step)
		return current
	}
}

func mustURL(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u
}

func getRequest(t *testing.T, path string) models.Request {
	t.Helper()
	return models.Request{
		Method: http.MethodGet,
		URL:    mustURL(t, testOrigin+path),
		Header: make(http.Header),
	}
}

func okResponse(body string) models.Response {
	return models.Response{
		StatusCode: http.StatusOK,
		Header:     http.Header{"Content-Type": []string{"text/plain"}},
		Body:       []byte(body),
		Source:     models.SourceNetwork,
	}
}

// fakeFetcher is a programmable OriginFetcher recording every call.
type fakeFetcher struct {
	mu       sync.Mutex
	fetchFn  func(req models.Request) (models.Response, error)
	replayFn func(item models.QueuedRequest) (models.Response, error)
	fetched  []string
	replayed []string
	token    string
}

func (f *fakeFetcher) Fetch(ctx context.Context, req models.Request) (models.Response, error) {
	f.mu.Lock()
	f.fetched = append(f.fetched, req.Method+" "+req.URL.Path)
	fn := f.fetchFn
	f.mu.Unlock()

	if fn == nil {
		return models.Response{}, fmt.Errorf("%w: no route", adapter.ErrNetwork)
	}
	return fn(req)
}

func (f *fakeFetcher) Replay(ctx context.Context, item models.QueuedRequest) (models.Response, error) {
	f.mu.Lock()
	f.replayed = append(f.replayed, item.ID)
	fn := f.replayFn
	f.mu.Unlock()

	if fn == nil {
		return models.Response{StatusCode: http.StatusOK}, nil
	}
	return fn(item)
}

func (f *fakeFetcher) Ping(ctx context.Context) error { return nil }

func (f *fakeFetcher) SetToken(token string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.token = token
}

func (f *fakeFetcher) Token() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.token
}

func (f *fakeFetcher) setFetch(fn func(req models.Request) (models.Response, error)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetchFn = fn
}

func (f *fakeFetcher) fetchedPaths() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.fetched...)
}

func (f *fakeFetcher) replayedIDs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.replayed...)
}

func offline(models.Request) (models.Response, error) {
	return models.Response{}, fmt.Errorf("%w: connection refused", adapter.ErrNetwork)
}

// stubManager is a DeferredSyncManager recording registrations.
type stubManager struct {
	mu   sync.Mutex
	tags []string
	err  error
}

func (m *stubManager) Register(_ context.Context, tag string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.tags = append(m.tags, tag)
	return nil
}

// stubCoordinator counts sync requests.
type stubCoordinator struct {
	mu       sync.Mutex
	requests int
}

func (c *stubCoordinator) RequestSync(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.requests++
	return nil
}

func (c *stubCoordinator) SyncNow(context.Context) ([]models.SyncResult, error) { return nil, nil }
func (c *stubCoordinator) HandleSyncTask(context.Context) error                 { return nil }
func (c *stubCoordinator) OnNetworkTransition(context.Context, bool)            {}

func (c *stubCoordinator) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.requests
}

// recorder collects every broadcast message.
type recorder struct {
	mu       sync.Mutex
	messages []models.Message
}

func (r *recorder) Subscribe() (<-chan models.Message, func()) {
	ch := make(chan models.Message)
	return ch, func() {}
}

func (r *recorder) Publish(msg models.Message) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, msg)
}

func (r *recorder) Subscribers() int { return 0 }

func (r *recorder) types() []models.MessageType {
	r.mu.Lock()
	defer r.mu.Unlock()
	types := make([]models.MessageType, 0, len(r.messages))
	for _, m := range r.messages {
		types = append(types, m.Type)
	}
	return types
}

func (r *recorder) last() models.Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.messages) == 0 {
		return models.Message{}
	}
	return r.messages[len(r.messages)-1]
}

func nopMetrics() *metrics.Metrics {
	return metrics.Nop()
}
