package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"travelguide-backend/internal/middleware"
	"travelguide-backend/internal/models"
	"travelguide-backend/internal/services"
)

// itineraryGenerator is the subset of ItineraryService the handler needs.
type itineraryGenerator interface {
	Generate(ctx context.Context, req models.TripRequest) (*models.ItineraryResult, error)
}

type ItineraryHandler struct {
	service itineraryGenerator
}

func NewItineraryHandler(service itineraryGenerator) *ItineraryHandler {
	return &ItineraryHandler{service: service}
}

// Generate handles POST /api/v1/itinerary. On success the session's stored
// result is replaced; on any failure the session is left exactly as it was.
func (h *ItineraryHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req models.TripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	if fields := validateBounds(req); len(fields) > 0 {
		writeJSON(w, http.StatusBadRequest, errorRespWithFields("VALIDATION_ERROR", "Validation failed", fields, r))
		return
	}

	sess := middleware.GetSession(r.Context())
	if sess == nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "No session", r))
		return
	}

	// Serialize generation per session: a second submission queues behind the
	// in-flight one rather than racing it for the stored result.
	sess.BeginGeneration()
	defer sess.EndGeneration()

	result, err := h.service.Generate(r.Context(), req)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	sess.Put(*result)
	writeJSON(w, http.StatusOK, models.ItineraryResponse{Result: *result})
}

// Get handles GET /api/v1/itinerary.
func (h *ItineraryHandler) Get(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r.Context())
	if sess == nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "No session", r))
		return
	}

	result, ok := sess.Get()
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", "No itinerary generated yet", r))
		return
	}

	writeJSON(w, http.StatusOK, models.ItineraryResponse{Result: result})
}

// Plain handles GET /api/v1/itinerary/plain. Returns the stored itinerary as
// raw text for copy-to-clipboard consumers.
func (h *ItineraryHandler) Plain(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r.Context())
	if sess == nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "No session", r))
		return
	}

	result, ok := sess.Get()
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", "No itinerary generated yet", r))
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(result.Itinerary))
}

// Download handles GET /api/v1/itinerary/download. Serves the stored
// itinerary as a text/plain attachment named {destination}_itinerary.txt.
func (h *ItineraryHandler) Download(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r.Context())
	if sess == nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "No session", r))
		return
	}

	result, ok := sess.Get()
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", "No itinerary generated yet", r))
		return
	}

	filename := fmt.Sprintf("%s_itinerary.txt", result.Destination)
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename="+strconv.Quote(filename))
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(result.Itinerary))
}

// validateBounds checks the range constraints owned by the input surface.
// Destination emptiness is the service's concern.
func validateBounds(req models.TripRequest) map[string]string {
	fields := make(map[string]string)
	if req.Days < models.MinDays || req.Days > models.MaxDays {
		fields["days"] = fmt.Sprintf("Days must be between %d and %d", models.MinDays, models.MaxDays)
	}
	if req.Nights < models.MinNights || req.Nights > models.MaxNights {
		fields["nights"] = fmt.Sprintf("Nights must be between %d and %d", models.MinNights, models.MaxNights)
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}

// Shared helpers

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func errorResp(code, message string, r *http.Request) models.ErrorResponse {
	return models.ErrorResponse{
		Error: models.APIError{
			Code:      code,
			Message:   message,
			RequestID: r.Header.Get("X-Request-ID"),
		},
	}
}

func errorRespWithFields(code, message string, fields map[string]string, r *http.Request) models.ErrorResponse {
	return models.ErrorResponse{
		Error: models.APIError{
			Code:      code,
			Message:   message,
			Fields:    fields,
			RequestID: r.Header.Get("X-Request-ID"),
		},
	}
}

func handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *services.ValidationError
	var initErr *services.ProviderInitError
	var genErr *services.GenerationError

	switch {
	case errors.As(err, &validationErr):
		writeJSON(w, http.StatusBadRequest, errorRespWithFields("VALIDATION_ERROR", "Validation failed", validationErr.Fields, r))
	case errors.Is(err, services.ErrMissingCredential):
		writeJSON(w, http.StatusServiceUnavailable, errorResp("MISSING_CREDENTIAL", err.Error(), r))
	case errors.As(err, &initErr):
		writeJSON(w, http.StatusServiceUnavailable, errorResp("PROVIDER_INIT_ERROR", initErr.Error(), r))
	case errors.As(err, &genErr):
		writeJSON(w, http.StatusBadGateway, errorResp("PROVIDER_ERROR", genErr.Error(), r))
	default:
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "An unexpected error occurred", r))
	}
}
