package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// ControlPrefix is the path prefix reserved for the agent's control API.
const ControlPrefix = "/_sentinel"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)

	control := chi.NewRouter()

	// the event stream must stay uncompressed to flush message by message
	control.Get("/events", h.events)

	control.Group(func(r chi.Router) {
		r.Use(withGZip)

		r.Get("/state", h.getState)
		r.Get("/version", h.getVersion)
		r.Post("/connectivity", h.setConnectivity)

		r.Post("/sync", h.syncNow)
		r.Get("/queue", h.getQueue)
		r.Delete("/queue", h.clearQueue)

		r.Post("/backup", h.createBackup)
		r.Get("/backups", h.listBackups)
		r.Get("/backups/{name}", h.getBackup)

		r.Post("/push", h.push)
		r.Get("/push/click", h.pushClick)

		r.Get("/kv", h.listState)
		r.Get("/kv/{key}", h.getStateEntry)
		r.Put("/kv/{key}", h.putStateEntry)
		r.Delete("/kv/{key}", h.deleteStateEntry)
	})
	control.NotFound(CheckHTTPMethod(control))
	control.MethodNotAllowed(CheckHTTPMethod(control))

	router.Mount(ControlPrefix, control)

	if h.metrics != nil {
		router.Method(http.MethodGet, "/metrics", h.metrics)
	}

	// everything else belongs to the application and goes through the
	// cache strategy engine
	router.With(withGZip).HandleFunc("/*", h.proxy)

	return router
}
