package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"shortcuts/shortcut"
)

func RegisterRoutes(sm *shortcut.Manager, log *zap.Logger) http.Handler {
	if log == nil {
		log = zap.NewNop()
	}

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	h := &handler{shortcuts: sm, log: log}

	// Shortcuts API
	r.Route("/api/shortcuts", func(r chi.Router) {
		r.Get("/", h.listShortcuts)
		r.Post("/", h.upsertShortcut)
		r.Delete("/", h.clearShortcuts)
		r.Get("/lookup", h.lookupShortcut)
		r.Post("/expand", h.expandShortcut)
	})
	r.Get("/api/recent", h.recentShortcuts)

	// Editor API
	r.Post("/api/editor/bold", h.toggleBold)
	r.Post("/api/editor/render", h.renderBold)
	r.Get("/api/editor/ws", h.handleWS)

	return r
}

type handler struct {
	shortcuts *shortcut.Manager
	log       *zap.Logger
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// warningText renders a non-fatal persistence warning for the client.
func warningText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
