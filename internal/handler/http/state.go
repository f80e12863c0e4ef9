package http

import (
	"net/http"

	"github.com/MKhiriev/fieldwise-sentinel/internal/utils"
	"github.com/MKhiriev/fieldwise-sentinel/models"
)

type stateResponse struct {
	models.NetworkState
	Active      bool `json:"active"`
	Subscribers int  `json:"subscribers"`
}

type connectivityRequest struct {
	Online *bool `json:"online"`
}

func (h *Handler) getState(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.state(), http.StatusOK)
}

// setConnectivity feeds an online/offline signal to the observer, as the
// browser's online and offline events would.
func (h *Handler) setConnectivity(w http.ResponseWriter, r *http.Request) {
	var body connectivityRequest
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, r, "*Handler.setConnectivity", err)
		return
	}
	if body.Online == nil {
		writeError(w, r, "*Handler.setConnectivity", ErrInvalidJSON)
		return
	}

	h.services.Observer.SetOnline(r.Context(), *body.Online)

	utils.WriteJSON(w, h.state(), http.StatusOK)
}

func (h *Handler) state() stateResponse {
	return stateResponse{
		NetworkState: h.services.Observer.State(),
		Active:       h.services.Cache.Active(),
		Subscribers:  h.services.Broadcaster.Subscribers(),
	}
}
