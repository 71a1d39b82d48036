// File: services/intelligence/geminiClient.go
package intelligence

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"tripgenius/models"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiService backs Service with the Gemini API. All responses are parsed
// strictly; any parse failure surfaces as an error so callers can re-prompt.
type GeminiService struct {
	model *genai.GenerativeModel
}

func NewGeminiService(apiKey string) *GeminiService {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		panic(fmt.Sprintf("failed to create Gemini client: %v", err))
	}

	model := client.GenerativeModel("models/gemini-1.5-pro")
	return &GeminiService{model: model}
}

func (g *GeminiService) generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return sb.String(), nil
}

const classifyPrompt = `You are an intent classifier for a travel assistant.
Classify the user's request into exactly one of: flights, hotels, itinerary, full-trip, ambiguous.
Respond with the single word only, no punctuation.

User request: %q`

func (g *GeminiService) Classify(ctx context.Context, text string) (models.Intent, error) {
	raw, err := g.generate(ctx, fmt.Sprintf(classifyPrompt, text))
	if err != nil {
		return "", err
	}
	intent := models.Intent(strings.ToLower(strings.TrimSpace(raw)))
	if intent == "ambiguous" || !intent.Valid() {
		return "", ErrAmbiguousIntent
	}
	return intent, nil
}

const extractPrompt = `Extract travel parameters from the user's request.
Return ONLY a JSON object with any of these keys that are present in the text:
"origin" (IATA airport code), "destination" (IATA airport code),
"departureDate" (YYYY-MM-DD), "returnDate" (YYYY-MM-DD), "adults" (integer as string).
Convert city names to their main airport's IATA code. Omit keys you cannot determine.

User request: %q`

func (g *GeminiService) Extract(ctx context.Context, text string) (map[string]string, error) {
	raw, err := g.generate(ctx, fmt.Sprintf(extractPrompt, text))
	if err != nil {
		return nil, err
	}
	params := make(map[string]string)
	if err := json.Unmarshal([]byte(stripJSONFences(raw)), &params); err != nil {
		return nil, fmt.Errorf("gemini extraction parse error: %w", err)
	}
	return params, nil
}

const extractFieldPrompt = `A travel assistant asked the user for their %s.
Normalize the user's answer: city names become the main airport's IATA code,
dates become YYYY-MM-DD, traveler counts become a bare integer.
Respond with the normalized value only, or the word INVALID if the answer does not contain one.

User answer: %q`

func (g *GeminiService) ExtractField(ctx context.Context, field, input string) (string, error) {
	raw, err := g.generate(ctx, fmt.Sprintf(extractFieldPrompt, field, input))
	if err != nil {
		return "", err
	}
	value := strings.TrimSpace(raw)
	if value == "" || strings.EqualFold(value, "INVALID") {
		return "", fmt.Errorf("could not normalize %s from %q", field, input)
	}
	return value, nil
}

// stripJSONFences removes markdown code fences Gemini tends to wrap JSON in.
func stripJSONFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
