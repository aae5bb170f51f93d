package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"travelguide-backend/internal/config"
	"travelguide-backend/internal/handlers"
	"travelguide-backend/internal/middleware"
	"travelguide-backend/internal/router"
	"travelguide-backend/internal/services"
	"travelguide-backend/internal/session"
)

func main() {
	log.Println("🚀 Starting TravelGuide Backend...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	if cfg.GeminiAPIKey == "" {
		log.Println("⚠ GEMINI_API_KEY is not set; itinerary generation will return an error until it is configured")
	}

	// ──── Step 2: Initialize Session Store ────
	sessionStore := session.NewStore(time.Duration(cfg.SessionTTLMinutes) * time.Minute)
	sessions := middleware.NewSessionManager(sessionStore, cfg.SessionCookieName, cfg.Env == "production")
	log.Println("✓ Session store initialized")

	// ──── Step 3: Initialize Itinerary Service ────
	// The Gemini client itself is constructed lazily on the first generation.
	itineraryService := services.NewItineraryService(cfg.GeminiAPIKey, cfg.GeminiModel)
	defer itineraryService.Close()
	log.Printf("✓ Itinerary service ready (model: %s)", cfg.GeminiModel)

	// ──── Step 4: Initialize Handlers ────
	itineraryHandler := handlers.NewItineraryHandler(itineraryService)

	// ──── Step 5: Start HTTP Server ────
	r := router.New(sessions, itineraryHandler, cfg.FrontendURL)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("✓ TravelGuide Backend ready on http://localhost:%s", cfg.Port)
	log.Printf("  API: http://localhost:%s/api/v1", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
