package http

import (
	"net/http"
)

func (h *Handler) getVersion(w http.ResponseWriter, r *http.Request) {
	info := h.services.AppInfo.GetBuildInfo(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Header().Set("X-Build-Date", info.BuildDate())
	w.Header().Set("X-Build-Commit", info.BuildCommit())
	w.Write([]byte(h.services.AppInfo.GetAppVersion(r.Context())))
}
