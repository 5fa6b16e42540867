package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/DoyleJ11/paint-duel-backend/internal/hub"
)

type healthResponse struct {
	Status      string `json:"status"`
	Rooms       int    `json:"rooms"`
	Connections int    `json:"connections"`
}

// Health reports liveness plus live room/connection counts read from the
// hub.
func Health(h *hub.Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reply := make(chan hub.Stats, 1)
		h.Inbox() <- hub.GetStats{Reply: reply}
		stats := <-reply

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(healthResponse{
			Status:      "ok",
			Rooms:       stats.Rooms,
			Connections: stats.Connections,
		})
	}
}
