package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"retrorank/cmd/app"
	"retrorank/internal/config"
	handlers "retrorank/internal/handler"
	"retrorank/internal/middleware"
)

func main() {
	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY is not set in the .env file")
	}

	store, _, services, err := app.App(cfg)
	if err != nil {
		log.Fatalf("Failed to assemble the application: %v", err)
	}
	defer store.Close()

	if err := services.Seed(context.Background()); err != nil {
		log.Printf("Warning: seeding demo data: %v", err)
	}

	handler := handlers.NewHandlers(services, cfg)

	handlerChain := middleware.Chain(
		handler.Routes(),
		middleware.LoggingMiddleware,
		middleware.CORSMiddleware,
	)

	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	log.Printf("Server listening on %s", addr)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
