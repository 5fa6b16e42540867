package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/DoyleJ11/paint-duel-backend/internal/hub"
	"github.com/DoyleJ11/paint-duel-backend/internal/ws"
)

func SetupRoutes(h *hub.Hub, log *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// Public routes
	r.Get("/health", Health(h))
	r.Get("/ws", ws.Handler(h, log))
	return r
}
