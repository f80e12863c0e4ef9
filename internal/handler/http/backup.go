package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/fieldwise-sentinel/internal/service"
	"github.com/MKhiriev/fieldwise-sentinel/internal/utils"
)

func (h *Handler) createBackup(w http.ResponseWriter, r *http.Request) {
	key, err := h.services.Backup.Backup(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.createBackup", err)
		return
	}

	utils.WriteJSON(w, map[string]string{"key": key}, http.StatusCreated)
}

func (h *Handler) listBackups(w http.ResponseWriter, r *http.Request) {
	keys, err := h.services.Backup.List(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.listBackups", err)
		return
	}
	if keys == nil {
		keys = []string{}
	}

	utils.WriteJSON(w, keys, http.StatusOK)
}

func (h *Handler) getBackup(w http.ResponseWriter, r *http.Request) {
	key := service.BackupKeyPrefix + chi.URLParam(r, "name")

	envelope, err := h.services.Backup.Get(r.Context(), key)
	if err != nil {
		writeError(w, r, "*Handler.getBackup", err)
		return
	}

	utils.WriteJSON(w, envelope, http.StatusOK)
}
