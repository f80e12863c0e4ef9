package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/fieldwise-sentinel/internal/service"
	"github.com/MKhiriev/fieldwise-sentinel/internal/utils"
	"github.com/MKhiriev/fieldwise-sentinel/models"
)

type syncResponse struct {
	Results   []models.SyncResult `json:"results"`
	Succeeded int                 `json:"succeeded"`
	Failed    int                 `json:"failed"`
	Deferred  bool                `json:"deferred,omitempty"`
}

// syncNow drains the queue immediately. Per-item failures still answer 200
// with the results; an offline agent answers 202 and syncs on reconnect.
func (h *Handler) syncNow(w http.ResponseWriter, r *http.Request) {
	results, err := h.services.Sync.SyncNow(r.Context())
	switch {
	case errors.Is(err, service.ErrSyncDeferred):
		utils.WriteJSON(w, syncResponse{Results: []models.SyncResult{}, Deferred: true}, http.StatusAccepted)
		return
	case err != nil && !errors.Is(err, service.ErrSyncIncomplete):
		writeError(w, r, "*Handler.syncNow", err)
		return
	}

	if results == nil {
		results = []models.SyncResult{}
	}
	succeeded, failed := models.CountResults(results)
	utils.WriteJSON(w, syncResponse{Results: results, Succeeded: succeeded, Failed: failed}, http.StatusOK)
}

func (h *Handler) getQueue(w http.ResponseWriter, r *http.Request) {
	items := h.services.Queue.Snapshot()
	if items == nil {
		items = []models.QueuedRequest{}
	}
	utils.WriteJSON(w, items, http.StatusOK)
}

func (h *Handler) clearQueue(w http.ResponseWriter, r *http.Request) {
	if err := h.services.Queue.Clear(r.Context()); err != nil {
		writeError(w, r, "*Handler.clearQueue", err)
		return
	}
	h.services.Observer.RefreshPending()

	w.WriteHeader(http.StatusNoContent)
}
