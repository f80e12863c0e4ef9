package adapter

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/fieldwise-sentinel/internal/config"
	"github.com/MKhiriev/fieldwise-sentinel/internal/logger"
	"github.com/MKhiriev/fieldwise-sentinel/internal/utils"
	"github.com/MKhiriev/fieldwise-sentinel/models"
)

// hopHeaders are connection-scoped and never forwarded. Accept-Encoding is
// dropped so the transport negotiates and decodes compression itself.
var hopHeaders = []string{
	"Connection",
	"Keep-Alive",
	"Proxy-Authenticate",
	"Proxy-Authorization",
	"Proxy-Connection",
	"Te",
	"Trailer",
	"Transfer-Encoding",
	"Upgrade",
	"Accept-Encoding",
	"Host",
}

// responseDropHeaders describe the wire encoding of the origin's response,
// which no longer applies once the body has been read and decoded.
var responseDropHeaders = []string{
	"Connection",
	"Keep-Alive",
	"Transfer-Encoding",
	"Content-Encoding",
	"Content-Length",
}

type httpOriginFetcher struct {
	client     *utils.HTTPClient
	healthPath string

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPOriginFetcher constructs the resty implementation of
// [OriginFetcher]. Relative URLs (health probe) resolve against appCfg.Origin;
// every request is bounded by adapterCfg.RequestTimeout.
func NewHTTPOriginFetcher(adapterCfg config.Adapter, appCfg config.App, logger *logger.Logger) OriginFetcher {
	client := utils.NewHTTPClient(strings.TrimRight(appCfg.Origin, "/"), adapterCfg.RequestTimeout)

	healthPath := adapterCfg.HealthPath
	if healthPath == "" {
		healthPath = "/"
	}

	return &httpOriginFetcher{
		client:     client,
		healthPath: healthPath,
		token:      strings.TrimSpace(adapterCfg.Token),
		logger:     logger,
	}
}

// SetToken implements [OriginFetcher]. Whitespace is trimmed.
func (h *httpOriginFetcher) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [OriginFetcher].
func (h *httpOriginFetcher) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpOriginFetcher) Fetch(ctx context.Context, req models.Request) (models.Response, error) {
	if req.URL == nil {
		return models.Response{}, fmt.Errorf("%w: request without URL", ErrNetwork)
	}

	r := h.client.R().
		SetContext(ctx).
		SetHeaderMultiValues(forwardHeaders(req.Header))
	if len(req.Body) > 0 {
		r.SetBody(req.Body)
	}
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		r.SetHeader(utils.TraceIDHeader, traceID)
	}

	resp, err := r.Execute(req.Method, req.URL.String())
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).
			Str("func", "httpOriginFetcher.Fetch").
			Str("method", req.Method).
			Str("url", req.URL.String()).
			Msg("origin unreachable")
		return models.Response{}, fmt.Errorf("%w: %s %s: %w", ErrNetwork, req.Method, req.URL.Redacted(), err)
	}

	return toResponse(resp), nil
}

func (h *httpOriginFetcher) Replay(ctx context.Context, item models.QueuedRequest) (models.Response, error) {
	r := h.client.R().
		SetContext(ctx).
		SetHeaderMultiValues(forwardHeaders(item.Headers))
	if len(item.Body) > 0 {
		r.SetBody(item.Body)
	}
	if item.Auth {
		if token := h.Token(); token != "" {
			r.SetAuthToken(token)
		}
	}

	resp, err := r.Execute(item.Method, item.URL)
	if err != nil {
		return models.Response{}, fmt.Errorf("%w: replay %s %s: %w", ErrNetwork, item.Method, item.URL, err)
	}

	response := toResponse(resp)
	if err = mapHTTPError(resp); err != nil {
		return response, err
	}

	return response, nil
}

func (h *httpOriginFetcher) Ping(ctx context.Context) error {
	if _, err := h.client.R().SetContext(ctx).Head(h.healthPath); err != nil {
		return fmt.Errorf("%w: probe %s: %w", ErrNetwork, h.healthPath, err)
	}
	return nil
}

func forwardHeaders(src http.Header) map[string][]string {
	out := make(map[string][]string, len(src))
	for k, v := range src {
		out[http.CanonicalHeaderKey(k)] = append([]string(nil), v...)
	}
	for _, k := range hopHeaders {
		delete(out, k)
	}
	return out
}

func toResponse(resp *resty.Response) models.Response {
	header := resp.Header().Clone()
	if header == nil {
		header = make(http.Header)
	}
	for _, k := range responseDropHeaders {
		header.Del(k)
	}

	return models.Response{
		StatusCode: resp.StatusCode(),
		Header:     header,
		Body:       resp.Body(),
		Source:     models.SourceNetwork,
	}
}
