package handler

import (
	stdhttp "net/http"

	"github.com/MKhiriev/fieldwise-sentinel/internal/config"
	"github.com/MKhiriev/fieldwise-sentinel/internal/handler/http"
	"github.com/MKhiriev/fieldwise-sentinel/internal/logger"
	"github.com/MKhiriev/fieldwise-sentinel/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers creates the transport handlers enabled by cfg.Server. metrics
// is served at /metrics when non-nil.
func NewHandlers(services *service.Services, cfg *config.StructuredConfig, metrics stdhttp.Handler, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		h, err := http.NewHandler(services, cfg.App, metrics, logger)
		if err != nil {
			return nil, err
		}
		handlers.HTTP = h
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
