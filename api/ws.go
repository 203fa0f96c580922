package api

import (
	"net/http"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"shortcuts/editor"
)

// upgrader uses the default origin check: a browser page from another
// origin must not read stored shortcuts through the editor channel.
var upgrader = websocket.Upgrader{}

// wsMessage is used in both directions on the editor channel.
//
// Client: toggle {text,start,end}, render {text}, expand {name}.
// Server: applied {text,caret}, rendered {html}, expansion {name,content},
// notfound {name}, error {error}.
type wsMessage struct {
	Type    string `json:"type"`
	Text    string `json:"text,omitempty"`
	Start   int    `json:"start,omitempty"`
	End     int    `json:"end,omitempty"`
	Caret   *int   `json:"caret,omitempty"`
	Name    string `json:"name,omitempty"`
	Content string `json:"content,omitempty"`
	HTML    string `json:"html,omitempty"`
	Error   string `json:"error,omitempty"`
}

// handleWS serves the live editor channel. Every request gets exactly one
// reply, written from this goroutine only.
func (h *handler) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("WS upgrade error", zap.Error(err))
		return
	}
	defer conn.Close()

	for {
		var msg wsMessage
		if err := conn.ReadJSON(&msg); err != nil {
			// Client went away.
			return
		}
		if err := conn.WriteJSON(h.reply(msg)); err != nil {
			h.log.Debug("WS write error", zap.Error(err))
			return
		}
	}
}

func (h *handler) reply(msg wsMessage) wsMessage {
	switch msg.Type {
	case "toggle":
		e, err := editor.ToggleBold(msg.Text, msg.Start, msg.End)
		if err != nil {
			return wsMessage{Type: "error", Error: err.Error()}
		}
		// The client applies Caret only after it has committed Text.
		return wsMessage{Type: "applied", Text: e.Text, Caret: &e.Caret}
	case "render":
		return wsMessage{Type: "rendered", HTML: editor.RenderBold(msg.Text)}
	case "expand":
		sc, ok := h.shortcuts.Expand(msg.Name)
		if !ok {
			return wsMessage{Type: "notfound", Name: msg.Name}
		}
		return wsMessage{Type: "expansion", Name: sc.Name, Content: sc.Content}
	default:
		return wsMessage{Type: "error", Error: "unknown message type " + msg.Type}
	}
}
