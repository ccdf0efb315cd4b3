package etadigest

import (
	"encoding/json"
	"net/http"
)

type healthResponse struct {
	Status      string `json:"status"`
	Routes      int    `json:"routes"`
	Predictions int    `json:"prediction_entries"`
	Vehicles    int    `json:"vehicles"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	resp := healthResponse{
		Status:      "ok",
		Routes:      s.catalog.RouteCount(),
		Predictions: s.predictions.EntryCount(),
		Vehicles:    s.vehicles.Len(),
	}
	_ = json.NewEncoder(w).Encode(resp)
}
