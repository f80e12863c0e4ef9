package http

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/MKhiriev/fieldwise-sentinel/internal/config"
	"github.com/MKhiriev/fieldwise-sentinel/internal/logger"
	"github.com/MKhiriev/fieldwise-sentinel/internal/service"
)

// maxBodySize bounds the bodies the agent buffers for proxying and
// queueing.
const maxBodySize = 10 << 20

type Handler struct {
	services *service.Services
	origin   *url.URL
	metrics  http.Handler

	logger *logger.Logger
}

// NewHandler builds the HTTP handler. Relative request targets are resolved
// against cfg.Origin; metrics may be nil to leave /metrics unregistered.
func NewHandler(services *service.Services, cfg config.App, metrics http.Handler, logger *logger.Logger) (*Handler, error) {
	origin, err := url.Parse(cfg.Origin)
	if err != nil || origin.Scheme == "" || origin.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidOrigin, cfg.Origin)
	}

	logger.Info().Str("origin", origin.String()).Msg("http handler created")
	return &Handler{
		services: services,
		origin:   origin,
		metrics:  metrics,
		logger:   logger,
	}, nil
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodySize)).Decode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}
