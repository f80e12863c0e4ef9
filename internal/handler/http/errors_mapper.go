package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/fieldwise-sentinel/internal/adapter"
	"github.com/MKhiriev/fieldwise-sentinel/internal/logger"
	"github.com/MKhiriev/fieldwise-sentinel/internal/service"
	"github.com/MKhiriev/fieldwise-sentinel/internal/store"
)

// errorStatuses is ordered: wrapped errors may match several entries and
// the first match wins (ErrOfflineNoCache wraps adapter.ErrNetwork).
var errorStatuses = []struct {
	err    error
	status int
}{
	{service.ErrOfflineNoCache, http.StatusGatewayTimeout},
	{service.ErrSyncDeferred, http.StatusAccepted},
	{service.ErrSyncAborted, http.StatusServiceUnavailable},
	{service.ErrInvalidNotification, http.StatusBadRequest},
	{service.ErrInvalidStateKey, http.StatusBadRequest},
	{service.ErrInvalidStateValue, http.StatusBadRequest},
	{service.ErrReadOnlySlot, http.StatusForbidden},
	{service.ErrStateNotFound, http.StatusNotFound},

	{store.ErrCacheMiss, http.StatusNotFound},
	{store.ErrSlotNotFound, http.StatusNotFound},
	{store.ErrPartitionNotFound, http.StatusNotFound},

	{ErrInvalidJSON, http.StatusBadRequest},
	{ErrBodyTooLarge, http.StatusRequestEntityTooLarge},

	{adapter.ErrNetwork, http.StatusBadGateway},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err with the request-scoped logger and answers with the
// mapped status and a plain-text body.
func writeError(w http.ResponseWriter, r *http.Request, fn string, err error) {
	status := statusFromError(err)

	event := logger.FromRequest(r).Warn()
	if status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Str("func", fn).Int("status", status).Send()

	http.Error(w, err.Error(), status)
}
