// File: services/intelligence/interface.go
package intelligence

import (
	"context"
	"errors"

	"tripgenius/models"
)

// ErrAmbiguousIntent is returned when a query cannot be mapped to the closed
// intent set with enough confidence.
var ErrAmbiguousIntent = errors.New("ambiguous intent")

// Service classifies queries and extracts slot-filled trip parameters.
// Implementations: LocalService (deterministic keyword/regex rules) and
// GeminiService (LLM-backed).
type Service interface {
	// Classify maps free-form text to an intent from the closed set.
	Classify(ctx context.Context, text string) (models.Intent, error)
	// Extract pulls whatever trip parameters are present in the text,
	// keyed by the models.Field* names. Missing fields are simply absent.
	Extract(ctx context.Context, text string) (map[string]string, error)
	// ExtractField normalizes a user's free-text answer for one field
	// (city name to IATA code, date to YYYY-MM-DD, count to an integer).
	ExtractField(ctx context.Context, field, input string) (string, error)
}
