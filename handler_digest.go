package etadigest

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/theoremus-urban-solutions/eta-digest/digest"
)

// chatForm is the minimal operator page for relaying a message to a
// user chat.
const chatForm = `<!DOCTYPE html>
<html>
<head><title>eta-digest operator console</title></head>
<body>
<form action="/message" method="post">
  <label>Chat id <input type="text" name="chat_id"></label>
  <label>Message <input type="text" name="message" size="80"></label>
  <button type="submit">Send</button>
</form>
</body>
</html>
`

func (s *Server) handleRoutes(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(s.catalog.RouteNames())
}

func (s *Server) handleDigest(w http.ResponseWriter, r *http.Request) {
	route := mux.Vars(r)["route"]
	text, err := s.renderer.Render(route)
	if err != nil {
		if errors.Is(err, digest.ErrRouteNotFound) {
			http.Error(w, "no such route: "+route, http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(text))
}

func (s *Server) handleChatForm(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(chatForm))
}

func (s *Server) handleMessage(w http.ResponseWriter, r *http.Request) {
	if s.relay == nil {
		http.Error(w, "chat surface not configured", http.StatusServiceUnavailable)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form data", http.StatusBadRequest)
		return
	}
	rawChatID := r.PostFormValue("chat_id")
	if rawChatID == "" {
		http.Error(w, "Must specify chat_id", http.StatusBadRequest)
		return
	}
	text := r.PostFormValue("message")
	if text == "" {
		http.Error(w, "Must specify text", http.StatusBadRequest)
		return
	}
	chatID, err := strconv.ParseInt(rawChatID, 10, 64)
	if err != nil {
		http.Error(w, "chat_id must be numeric", http.StatusBadRequest)
		return
	}
	if err := s.relay(chatID, text); err != nil {
		log.Printf("message relay to %d failed: %v", chatID, err)
		http.Error(w, "relay failed", http.StatusBadGateway)
		return
	}
	log.Printf("relayed operator message to chat %d", chatID)
	_, _ = w.Write([]byte("Message sent"))
}
