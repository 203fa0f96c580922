package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"shortcuts/editor"
)

type boldRequest struct {
	Text  string `json:"text"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

func (h *handler) toggleBold(w http.ResponseWriter, r *http.Request) {
	var req boldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	e, err := editor.ToggleBold(req.Text, req.Start, req.End)
	if err != nil {
		if errors.Is(err, editor.ErrRange) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "failed to toggle bold", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

func (h *handler) renderBold(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"html": editor.RenderBold(req.Text)})
}
