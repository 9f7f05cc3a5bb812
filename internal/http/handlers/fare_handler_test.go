// README: Handler tests for the fare endpoints.
package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"farecast/internal/ai"
	"farecast/internal/http/handlers"
	"farecast/internal/maps"
	"farecast/internal/modules/conditions"
	"farecast/internal/modules/currency"
	"farecast/internal/modules/fare"
	"farecast/internal/modules/pricing"
	"farecast/internal/rng"
)

type stubResolver struct {
	route maps.Route
	err   error
	calls int
}

func (s *stubResolver) Resolve(_ context.Context, _, _ string) (maps.Route, error) {
	s.calls++
	return s.route, s.err
}

type stubNarrator struct {
	insight *ai.Insight
	err     error
}

func (s *stubNarrator) ExplainPrediction(_ context.Context, _ fare.Forecast, _ map[string]string) (*ai.Insight, error) {
	return s.insight, s.err
}

func buildTestRouter(routes maps.Resolver, narrator ai.Narrator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	src := rng.NewRandom(42)
	profiles := conditions.MustBuiltinProfileSet()
	sim := conditions.NewSimulator(profiles, src)
	rates := pricing.NewRateTable()
	svc := fare.NewService(
		sim,
		conditions.NewForecaster(sim, src),
		pricing.NewService(rates, pricing.FixedDemand(pricing.DemandNormal)),
		currency.NewTable(),
		zerolog.Nop(),
	)

	r := gin.New()
	h := handlers.NewFareHandler(svc, rates, profiles, routes, narrator, zerolog.Nop())
	r.POST("/api/fare/estimate", h.Estimate)
	r.POST("/api/fare/predict", h.Predict)
	r.POST("/api/fare/insight", h.Insight)
	r.GET("/api/fare/options", h.Options)
	return r
}

func doRequest(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	switch v := body.(type) {
	case nil:
	case string:
		buf.WriteString(v)
	default:
		_ = json.NewEncoder(&buf).Encode(v)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestEstimate_Success(t *testing.T) {
	r := buildTestRouter(nil, nil)
	w := doRequest(r, http.MethodPost, "/api/fare/estimate", map[string]any{
		"distance":  10,
		"duration":  20,
		"taxi_type": "Electric",
		"location":  "Chicago",
		"currency":  "USD",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	for _, key := range []string{"base_fare", "distance_fare", "time_fare", "raw_fare", "adjusted_fare", "total_fare", "currency", "passenger_count", "factors", "eco_score", "co2_emissions", "suggestions"} {
		if _, ok := resp[key]; !ok {
			t.Errorf("response missing %q", key)
		}
	}
	if resp["raw_fare"].(float64) != 27 {
		t.Errorf("raw_fare = %v, want 27", resp["raw_fare"])
	}
	if resp["passenger_count"].(float64) != 1 {
		t.Errorf("passenger_count = %v, want 1", resp["passenger_count"])
	}
	factors := resp["factors"].(map[string]any)
	if factors["eco_discount"].(float64) != 0.1 {
		t.Errorf("eco_discount = %v", factors["eco_discount"])
	}
}

func TestEstimate_Defaults(t *testing.T) {
	r := buildTestRouter(nil, nil)
	w := doRequest(r, http.MethodPost, "/api/fare/estimate", map[string]any{"distance": 1})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp pricing.FareBreakdown
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Currency != "INR" || resp.Factors.Time.Period != conditions.Day {
		t.Errorf("defaults not applied: %+v", resp)
	}
}

func TestEstimate_BadRequests(t *testing.T) {
	r := buildTestRouter(nil, nil)
	tests := []struct {
		name string
		body any
		want int
	}{
		{"malformed json", `{"distance":`, http.StatusBadRequest},
		{"wrong type", `{"distance":"far"}`, http.StatusBadRequest},
		{"negative distance", map[string]any{"distance": -1, "duration": 5}, http.StatusBadRequest},
		{"negative passengers", map[string]any{"distance": 1, "passenger_count": -2}, http.StatusBadRequest},
		{"pickup without route service", map[string]any{"pickup": "A", "dropoff": "B"}, http.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if w := doRequest(r, http.MethodPost, "/api/fare/estimate", tt.body); w.Code != tt.want {
				t.Errorf("expected %d, got %d: %s", tt.want, w.Code, w.Body.String())
			}
		})
	}
}

func TestEstimate_ResolvesRoute(t *testing.T) {
	resolver := &stubResolver{route: maps.Route{DistanceKm: 10, DurationMin: 20}}
	r := buildTestRouter(resolver, nil)
	w := doRequest(r, http.MethodPost, "/api/fare/estimate", map[string]any{
		"pickup": "Union Station", "dropoff": "O'Hare", "currency": "USD",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp pricing.FareBreakdown
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.RawFare != 24.5 || resolver.calls != 1 {
		t.Errorf("raw_fare = %v, calls = %d", resp.RawFare, resolver.calls)
	}

	resolver.err = maps.ErrNoRoute
	if w := doRequest(r, http.MethodPost, "/api/fare/estimate", map[string]any{"pickup": "A", "dropoff": "B"}); w.Code != http.StatusUnprocessableEntity {
		t.Errorf("no route: expected 422, got %d", w.Code)
	}
	resolver.err = errors.New("quota exceeded")
	if w := doRequest(r, http.MethodPost, "/api/fare/estimate", map[string]any{"pickup": "A", "dropoff": "B"}); w.Code != http.StatusBadGateway {
		t.Errorf("upstream failure: expected 502, got %d", w.Code)
	}
}

func TestPredict_OffsetSets(t *testing.T) {
	r := buildTestRouter(nil, nil)
	tests := []struct {
		body map[string]any
		want int
	}{
		{map[string]any{"distance": 5, "duration": 10}, 1},
		{map[string]any{"distance": 5, "duration": 10, "time_offset": 45}, 2},
		{map[string]any{"distance": 5, "duration": 10, "time_offset": 90}, 3},
	}
	for _, tt := range tests {
		w := doRequest(r, http.MethodPost, "/api/fare/predict", tt.body)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp struct {
			Current     map[string]any   `json:"current"`
			Predictions []map[string]any `json:"predictions"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(resp.Predictions) != tt.want {
			t.Errorf("time_offset %v: %d predictions, want %d", tt.body["time_offset"], len(resp.Predictions), tt.want)
		}
		for _, key := range []string{"time_offset", "fare", "traffic", "weather", "time_of_day", "change_percentage", "factors"} {
			if _, ok := resp.Predictions[0][key]; !ok {
				t.Errorf("prediction missing %q", key)
			}
		}
		if _, ok := resp.Current["adjusted_fare"]; !ok {
			t.Error("current breakdown missing adjusted_fare")
		}
	}
}

func TestInsight(t *testing.T) {
	body := map[string]any{"distance": 5, "duration": 10, "time_offset": 60}

	r := buildTestRouter(nil, nil)
	if w := doRequest(r, http.MethodPost, "/api/fare/insight", body); w.Code != http.StatusServiceUnavailable {
		t.Errorf("no narrator: expected 503, got %d", w.Code)
	}

	r = buildTestRouter(nil, &stubNarrator{err: errors.New("model overloaded")})
	if w := doRequest(r, http.MethodPost, "/api/fare/insight", body); w.Code != http.StatusBadGateway {
		t.Errorf("narrator failure: expected 502, got %d", w.Code)
	}

	r = buildTestRouter(nil, &stubNarrator{insight: &ai.Insight{Summary: "Go now.", Tips: []string{}}})
	w := doRequest(r, http.MethodPost, "/api/fare/insight", body)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp struct {
		Prediction fare.Forecast `json:"prediction"`
		Insight    ai.Insight    `json:"insight"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Insight.Summary != "Go now." || len(resp.Prediction.Predictions) != 3 {
		t.Errorf("unexpected insight response: %+v", resp)
	}
}

func TestOptions(t *testing.T) {
	r := buildTestRouter(nil, nil)
	w := doRequest(r, http.MethodGet, "/api/fare/options", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp struct {
		VehicleClasses []pricing.Rate  `json:"vehicle_classes"`
		Currencies     []currency.Info `json:"currencies"`
		Locations      []string        `json:"locations"`
		TimePeriods    []string        `json:"time_periods"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.VehicleClasses) != 4 || len(resp.Currencies) != 8 || len(resp.Locations) != 3 || len(resp.TimePeriods) != 6 {
		t.Errorf("unexpected options: %+v", resp)
	}
}
