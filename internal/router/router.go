package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"travelguide-backend/internal/handlers"
	"travelguide-backend/internal/middleware"
)

func New(
	sessions *middleware.SessionManager,
	itineraryHandler *handlers.ItineraryHandler,
	frontendURL string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(frontendURL))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/itinerary", func(r chi.Router) {
			r.Use(sessions.Middleware)
			r.Post("/", itineraryHandler.Generate)
			r.Get("/", itineraryHandler.Get)
			r.Get("/plain", itineraryHandler.Plain)
			r.Get("/download", itineraryHandler.Download)
		})
	})

	return r
}
