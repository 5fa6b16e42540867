package main

import (
	"context"
	"log"
	"net/http"

	"go.uber.org/zap"

	"github.com/DoyleJ11/paint-duel-backend/internal/config"
	"github.com/DoyleJ11/paint-duel-backend/internal/httpapi"
	"github.com/DoyleJ11/paint-duel-backend/internal/hub"
)

func main() {
	cfg := config.Load()

	logger, err := config.NewLogger(cfg.Log)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	ctx := context.Background()
	h := hub.NewHub(ctx, logger)

	// Build the router *with* the hub injected
	handler := httpapi.SetupRoutes(h, logger)

	logger.Info("listening", zap.String("addr", cfg.Addr()))
	if err := http.ListenAndServe(cfg.Addr(), handler); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
