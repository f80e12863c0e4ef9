package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/fieldwise-sentinel/internal/logger"
	"github.com/MKhiriev/fieldwise-sentinel/internal/utils"
	"github.com/MKhiriev/fieldwise-sentinel/models"
)

// headerSource tells the UI where a proxied response came from.
const headerSource = "X-Sentinel-Source"

// hopHeaders are connection-scoped and never forwarded. Accept-Encoding is
// dropped too: the agent negotiates encoding with the origin itself and
// stores decoded payloads.
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
}

func (h *Handler) proxy(w http.ResponseWriter, r *http.Request) {
	req, err := h.interceptedRequest(r)
	if err != nil {
		writeError(w, r, "*Handler.proxy", err)
		return
	}

	resp, err := h.services.Cache.Handle(r.Context(), req)
	if err != nil {
		writeError(w, r, "*Handler.proxy", err)
		return
	}

	writeResponse(w, r, resp)
}

// interceptedRequest converts an inbound request into the engine's view of
// it. Proxy-style absolute targets are kept; anything else is resolved
// against the configured origin.
func (h *Handler) interceptedRequest(r *http.Request) (models.Request, error) {
	body, err := utils.ReadBody(r, maxBodySize)
	if err != nil {
		return models.Request{}, fmt.Errorf("%w: %w", ErrBodyTooLarge, err)
	}

	target := *r.URL
	if !target.IsAbs() {
		target.Scheme = h.origin.Scheme
		target.Host = h.origin.Host
	}
	target.Fragment = ""

	header := r.Header.Clone()
	for _, name := range hopHeaders {
		header.Del(name)
	}

	return models.Request{
		Method:      r.Method,
		URL:         &target,
		Header:      header,
		Body:        body,
		Mode:        models.RequestMode(r.Header.Get("Sec-Fetch-Mode")),
		Destination: destination(r.Header.Get("Sec-Fetch-Dest")),
	}, nil
}

func destination(v string) models.Destination {
	if v == "empty" {
		return models.DestinationEmpty
	}
	return models.Destination(v)
}

func writeResponse(w http.ResponseWriter, r *http.Request, resp models.Response) {
	header := w.Header()
	for name, values := range resp.Header {
		header[name] = append([]string(nil), values...)
	}
	for _, name := range hopHeaders {
		header.Del(name)
	}
	header.Del("Content-Length")
	header.Del("Content-Encoding")
	header.Set(headerSource, string(resp.Source))

	status := resp.StatusCode
	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)

	if r.Method == http.MethodHead {
		return
	}
	if _, err := w.Write(resp.Body); err != nil && !errors.Is(err, http.ErrBodyNotAllowed) {
		logger.FromRequest(r).Warn().Err(err).Str("func", "writeResponse").Msg("error writing response body")
	}
}
