package models

import "time"

// Day/night bounds enforced by the input surface.
const (
	MinDays   = 1
	MaxDays   = 30
	MinNights = 0
	MaxNights = 30
)

// TripRequest is the payload sent to the itinerary generation endpoint.
// It is built fresh on every submission and never mutated afterwards.
type TripRequest struct {
	Destination string `json:"destination"`
	Days        int    `json:"days"`
	Nights      int    `json:"nights"`
	Interests   string `json:"interests,omitempty"`
}

// ItineraryResult is the generated itinerary text plus the destination it was
// generated for. The text comes back from the provider verbatim and is treated
// as opaque.
type ItineraryResult struct {
	Destination string    `json:"destination"`
	Itinerary   string    `json:"itinerary"`
	GeneratedAt time.Time `json:"generated_at"`
}

// ItineraryResponse wraps an ItineraryResult for JSON endpoints.
type ItineraryResponse struct {
	Result ItineraryResult `json:"result"`
}
