package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"farecast/internal/modules/fare"
)

// GeminiNarrator implements Narrator using Google's Gemini models.
type GeminiNarrator struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiNarrator initializes a new Gemini client.
func NewGeminiNarrator(ctx context.Context, apiKey string) (*GeminiNarrator, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel("gemini-2.0-flash")
	model.ResponseMIMEType = "application/json"
	model.SetTemperature(0.3)

	return &GeminiNarrator{client: client, model: model}, nil
}

// Close cleans up the Gemini client resources.
func (n *GeminiNarrator) Close() {
	n.client.Close()
}

func (n *GeminiNarrator) ExplainPrediction(ctx context.Context, forecast fare.Forecast, tripContext map[string]string) (*Insight, error) {
	prompt, err := buildInsightPrompt(forecast, tripContext)
	if err != nil {
		return nil, err
	}

	resp, err := n.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("gemini generation error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("no response candidates from Gemini")
	}

	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			text.WriteString(string(txt))
		}
	}
	return parseInsight(text.String(), forecast)
}

func buildInsightPrompt(forecast fare.Forecast, tripContext map[string]string) (string, error) {
	data, err := json.Marshal(forecast)
	if err != nil {
		return "", fmt.Errorf("encode forecast: %w", err)
	}

	location := tripContext["location"]
	if location == "" {
		location = "UNKNOWN_LOCATION"
	}
	vehicle := tripContext["vehicle"]
	if vehicle == "" {
		vehicle = fare.DefaultVehicle
	}

	return fmt.Sprintf(`Role: You explain taxi fare forecasts to riders.
Context:
- Location: %s
- Vehicle class: %s
- Currency: %s

Forecast (JSON, "current" is the fare now, "predictions" are future offsets in minutes):
%s

RULES:
1. Compare current.adjusted_fare with each predictions[].fare.
2. best_time_offset is the offset with the lowest fare, or 0 if travelling now is cheapest.
3. Mention the traffic, weather and demand factors that drive the difference.
4. Give at most three short tips. Do not invent prices that are not in the forecast.

Output JSON Schema:
{
  "summary": "string (two sentences max)",
  "best_time_offset": integer,
  "tips": ["string"]
}
`, location, vehicle, tripContext["currency"], data), nil
}

// parseInsight decodes the model reply and pins best_time_offset to an
// offset that exists in the forecast.
func parseInsight(raw string, forecast fare.Forecast) (*Insight, error) {
	clean := cleanJSONString(raw)
	var out Insight
	if err := json.Unmarshal([]byte(clean), &out); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w. Raw: %s", err, clean)
	}

	valid := out.BestTimeOffset == 0
	for _, p := range forecast.Predictions {
		if p.TimeOffset == out.BestTimeOffset {
			valid = true
		}
	}
	if !valid {
		out.BestTimeOffset = cheapestOffset(forecast)
	}
	if out.Tips == nil {
		out.Tips = []string{}
	}
	return &out, nil
}

// cheapestOffset returns the offset with the lowest fare, 0 for now.
func cheapestOffset(forecast fare.Forecast) int {
	best, offset := forecast.Current.AdjustedFare, 0
	for _, p := range forecast.Predictions {
		if p.Fare < best {
			best, offset = p.Fare, p.TimeOffset
		}
	}
	return offset
}

// cleanJSONString removes markdown code blocks if present (e.g. ```json ... ```)
func cleanJSONString(input string) string {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(input, "```json")
	input = strings.TrimPrefix(input, "```")
	input = strings.TrimSuffix(input, "```")
	return strings.TrimSpace(input)
}
