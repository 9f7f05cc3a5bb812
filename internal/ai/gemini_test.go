package ai

import (
	"context"
	"os"
	"strings"
	"testing"

	"farecast/internal/modules/fare"
	"farecast/internal/modules/pricing"
)

func sampleForecast() fare.Forecast {
	return fare.Forecast{
		Current: pricing.FareBreakdown{AdjustedFare: 30, Currency: "USD"},
		Predictions: []fare.Prediction{
			{TimeOffset: 15, Fare: 28},
			{TimeOffset: 30, Fare: 25},
			{TimeOffset: 60, Fare: 33},
		},
	}
}

func TestCleanJSONString(t *testing.T) {
	tests := map[string]string{
		"```json\n{\"a\":1}\n```": `{"a":1}`,
		"```\n{\"a\":1}```":       `{"a":1}`,
		"  {\"a\":1}  ":           `{"a":1}`,
	}
	for in, want := range tests {
		if got := cleanJSONString(in); got != want {
			t.Errorf("cleanJSONString(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestParseInsight(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantOffset int
		wantTips   int
		wantErr    bool
	}{
		{"valid offset kept", "```json\n{\"summary\":\"Wait.\",\"best_time_offset\":30,\"tips\":[\"a\",\"b\"]}\n```", 30, 2, false},
		{"travel now kept", `{"summary":"Go now.","best_time_offset":0}`, 0, 0, false},
		{"unknown offset replaced by cheapest", `{"summary":"x","best_time_offset":45,"tips":[]}`, 30, 0, false},
		{"malformed", `{"summary":`, 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseInsight(tt.raw, sampleForecast())
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("parseInsight: %v", err)
			}
			if got.BestTimeOffset != tt.wantOffset {
				t.Errorf("BestTimeOffset = %d, want %d", got.BestTimeOffset, tt.wantOffset)
			}
			if len(got.Tips) != tt.wantTips {
				t.Errorf("len(Tips) = %d, want %d", len(got.Tips), tt.wantTips)
			}
		})
	}
}

func TestBuildInsightPrompt(t *testing.T) {
	prompt, err := buildInsightPrompt(sampleForecast(), map[string]string{"location": "Chicago", "currency": "EUR"})
	if err != nil {
		t.Fatalf("buildInsightPrompt: %v", err)
	}
	for _, want := range []string{"Location: Chicago", "Vehicle class: Sedan", "Currency: EUR", `"time_offset":30`} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestGeminiExplainPrediction(t *testing.T) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		t.Skip("Skipping: GEMINI_API_KEY not set")
	}
	ctx := context.Background()
	n, err := NewGeminiNarrator(ctx, apiKey)
	if err != nil {
		t.Fatalf("NewGeminiNarrator: %v", err)
	}
	defer n.Close()

	got, err := n.ExplainPrediction(ctx, sampleForecast(), map[string]string{"location": "New York", "vehicle": "SUV", "currency": "USD"})
	if err != nil {
		t.Fatalf("ExplainPrediction: %v", err)
	}
	if got.Summary == "" {
		t.Error("empty summary")
	}
}
