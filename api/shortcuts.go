package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"shortcuts/shortcut"
)

type upsertRequest struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

type mutationResponse struct {
	Outcome  shortcut.Outcome   `json:"outcome"`
	Shortcut *shortcut.Shortcut `json:"shortcut,omitempty"`
	Warning  string             `json:"warning,omitempty"`
}

func (h *handler) listShortcuts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.shortcuts.List())
}

func (h *handler) upsertShortcut(w http.ResponseWriter, r *http.Request) {
	var req upsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	res, err := h.shortcuts.Upsert(req.Name, req.Content)
	if err != nil {
		if errors.Is(err, shortcut.ErrValidation) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.log.Error("upsert failed", zap.Error(err))
		http.Error(w, "failed to save shortcut", http.StatusInternalServerError)
		return
	}

	status := http.StatusOK
	if res.Outcome == shortcut.Created {
		status = http.StatusCreated
	}
	writeJSON(w, status, mutationResponse{
		Outcome:  res.Outcome,
		Shortcut: &res.Shortcut,
		Warning:  warningText(res.Warning),
	})
}

func (h *handler) lookupShortcut(w http.ResponseWriter, r *http.Request) {
	sc, ok := h.shortcuts.Lookup(r.URL.Query().Get("name"))
	if !ok {
		http.Error(w, "shortcut not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, sc)
}

func (h *handler) expandShortcut(w http.ResponseWriter, r *http.Request) {
	sc, ok := h.shortcuts.Expand(r.URL.Query().Get("name"))
	if !ok {
		http.Error(w, "shortcut not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, sc)
}

// clearShortcuts is unconditional; confirming with the user is the client's job.
func (h *handler) clearShortcuts(w http.ResponseWriter, r *http.Request) {
	res := h.shortcuts.ClearAll()
	writeJSON(w, http.StatusOK, mutationResponse{
		Outcome: res.Outcome,
		Warning: warningText(res.Warning),
	})
}

func (h *handler) recentShortcuts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"recentlyUsed": h.shortcuts.Recent()})
}
