package services

import (
	"errors"
	"fmt"
)

// ErrMissingCredential is returned when no Gemini API key is configured.
// It is fatal to the generation feature but not to the process.
var ErrMissingCredential = errors.New(
	"Gemini API key not found. Set GEMINI_API_KEY in your environment. " +
		"Get a key from https://makersuite.google.com/app/apikey")

// Custom errors

type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string { return "Validation error" }

// ProviderInitError wraps a failure to construct the provider client.
type ProviderInitError struct {
	Cause error
}

func (e *ProviderInitError) Error() string {
	return fmt.Sprintf("provider initialization failed: %v", e.Cause)
}

func (e *ProviderInitError) Unwrap() error { return e.Cause }

// GenerationError wraps a failure of the external generation call.
type GenerationError struct {
	Cause error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("itinerary generation failed: %v", e.Cause)
}

func (e *GenerationError) Unwrap() error { return e.Cause }
