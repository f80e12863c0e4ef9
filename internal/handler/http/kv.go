package http

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/fieldwise-sentinel/internal/utils"
)

func (h *Handler) listState(w http.ResponseWriter, r *http.Request) {
	keys, err := h.services.LocalState.Keys(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.listState", err)
		return
	}
	if keys == nil {
		keys = []string{}
	}

	utils.WriteJSON(w, keys, http.StatusOK)
}

func (h *Handler) getStateEntry(w http.ResponseWriter, r *http.Request) {
	value, err := h.services.LocalState.Get(r.Context(), stateKey(r))
	if err != nil {
		writeError(w, r, "*Handler.getStateEntry", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(value)
}

func (h *Handler) putStateEntry(w http.ResponseWriter, r *http.Request) {
	body, err := utils.ReadBody(r, maxBodySize)
	if err != nil {
		writeError(w, r, "*Handler.putStateEntry", ErrBodyTooLarge)
		return
	}

	if err = h.services.LocalState.Put(r.Context(), stateKey(r), json.RawMessage(body)); err != nil {
		writeError(w, r, "*Handler.putStateEntry", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteStateEntry(w http.ResponseWriter, r *http.Request) {
	if err := h.services.LocalState.Delete(r.Context(), stateKey(r)); err != nil {
		writeError(w, r, "*Handler.deleteStateEntry", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func stateKey(r *http.Request) string {
	key := chi.URLParam(r, "key")
	if unescaped, err := url.PathUnescape(key); err == nil {
		return unescaped
	}
	return key
}
