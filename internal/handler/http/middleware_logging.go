package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/fieldwise-sentinel/internal/logger"
)

func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()
		lw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(lw, r)

		log.Info().
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Int("status", lw.status).
			Str("source", lw.Header().Get(headerSource)).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}
