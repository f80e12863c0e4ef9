package http

import (
	"net/http"

	"github.com/MKhiriev/fieldwise-sentinel/internal/utils"
	"github.com/MKhiriev/fieldwise-sentinel/models"
)

// push accepts a push payload and shows it as a notification on every
// subscribed UI surface.
func (h *Handler) push(w http.ResponseWriter, r *http.Request) {
	var payload models.PushPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, r, "*Handler.push", err)
		return
	}

	msg, err := h.services.Notifications.Show(r.Context(), payload)
	if err != nil {
		writeError(w, r, "*Handler.push", err)
		return
	}

	utils.WriteJSON(w, msg, http.StatusAccepted)
}

// pushClick routes a notification click to its target page.
func (h *Handler) pushClick(w http.ResponseWriter, r *http.Request) {
	payload := models.PushPayload{
		Data: models.PushData{URL: r.URL.Query().Get("url")},
	}

	http.Redirect(w, r, h.services.Notifications.ClickTarget(payload), http.StatusFound)
}
