package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"travelguide-backend/internal/models"
)

// generatorFactory builds the provider client. Swappable in tests so the
// service can run against a stub instead of the network.
type generatorFactory func(ctx context.Context, apiKey, modelName string) (TextGenerator, error)

// ItineraryService turns a TripRequest into generated itinerary text via a
// TextGenerator. The provider client is constructed lazily on the first
// generation attempt and cached for the life of the process.
type ItineraryService struct {
	apiKey    string
	modelName string

	mu           sync.Mutex
	gen          TextGenerator
	newGenerator generatorFactory
}

func NewItineraryService(apiKey, modelName string) *ItineraryService {
	return &ItineraryService{
		apiKey:    apiKey,
		modelName: modelName,
		newGenerator: func(ctx context.Context, apiKey, modelName string) (TextGenerator, error) {
			return NewGeminiGenerator(ctx, apiKey, modelName)
		},
	}
}

// Close releases the provider client if one was ever constructed.
func (s *ItineraryService) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen != nil {
		s.gen.Close()
		s.gen = nil
	}
}

// generator returns the cached provider client, constructing it on first use.
// Returns ErrMissingCredential when no API key is configured and a
// ProviderInitError when client construction fails.
func (s *ItineraryService) generator(ctx context.Context) (TextGenerator, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.gen != nil {
		return s.gen, nil
	}
	if strings.TrimSpace(s.apiKey) == "" {
		return nil, ErrMissingCredential
	}

	gen, err := s.newGenerator(ctx, s.apiKey, s.modelName)
	if err != nil {
		return nil, &ProviderInitError{Cause: err}
	}
	s.gen = gen
	return gen, nil
}

// Generate validates the request, composes the prompt, and makes exactly one
// synchronous provider call. The provider text is returned verbatim. On any
// failure the caller's stored session state must be left untouched, so errors
// carry enough type information for the handler to distinguish validation from
// provider trouble.
func (s *ItineraryService) Generate(ctx context.Context, req models.TripRequest) (*models.ItineraryResult, error) {
	destination := strings.TrimSpace(req.Destination)
	if destination == "" {
		return nil, &ValidationError{Fields: map[string]string{
			"destination": "Destination is required",
		}}
	}

	gen, err := s.generator(ctx)
	if err != nil {
		return nil, err
	}

	prompt := BuildItineraryPrompt(req)

	text, err := gen.GenerateText(ctx, prompt)
	if err != nil {
		return nil, &GenerationError{Cause: err}
	}

	return &models.ItineraryResult{
		Destination: destination,
		Itinerary:   text,
		GeneratedAt: time.Now().UTC(),
	}, nil
}

// BuildItineraryPrompt deterministically composes the generation prompt from a
// TripRequest. Pure function: same request, same prompt. The interests line is
// omitted entirely when the field trims to empty.
func BuildItineraryPrompt(req models.TripRequest) string {
	var b strings.Builder

	b.WriteString("Create a detailed and personalized travel itinerary for the following trip:\n\n")
	b.WriteString(fmt.Sprintf("Destination: %s\n", strings.TrimSpace(req.Destination)))
	b.WriteString(fmt.Sprintf("Duration: %d days and %d nights\n", req.Days, req.Nights))

	if interests := strings.TrimSpace(req.Interests); interests != "" {
		b.WriteString(fmt.Sprintf("Interests/Preferences: %s\n", interests))
	}

	b.WriteString(`
Please provide a comprehensive itinerary that includes:

1. **Day-by-Day Schedule**: Break down activities for each day
2. **Local Attractions**: Must-visit places and hidden gems
3. **Dining Recommendations**: Local restaurants and cuisine to try
4. **Accommodation Suggestions**: Areas to stay in
5. **Transportation Tips**: Getting around the destination
6. **Budget Estimates**: Approximate costs for activities
7. **Travel Tips**: Important things to know (weather, customs, safety)
8. **Best Time to Visit**: Each attraction

Make the itinerary engaging, practical, and well-structured. Include specific timings and realistic schedules.
`)

	return b.String()
}
