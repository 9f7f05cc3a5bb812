// README: Fare handlers for estimates, predictions, AI insight and option listing.
package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"farecast/internal/ai"
	"farecast/internal/maps"
	"farecast/internal/modules/conditions"
	"farecast/internal/modules/currency"
	"farecast/internal/modules/fare"
	"farecast/internal/modules/pricing"
)

type FareHandler struct {
	fare     *fare.Service
	rates    *pricing.RateTable
	profiles *conditions.ProfileSet
	routes   maps.Resolver
	narrator ai.Narrator
	log      zerolog.Logger
}

// NewFareHandler builds the handler. routes and narrator may be nil when the
// matching API key is not configured.
func NewFareHandler(fareSvc *fare.Service, rates *pricing.RateTable, profiles *conditions.ProfileSet, routes maps.Resolver, narrator ai.Narrator, log zerolog.Logger) *FareHandler {
	return &FareHandler{
		fare:     fareSvc,
		rates:    rates,
		profiles: profiles,
		routes:   routes,
		narrator: narrator,
		log:      log.With().Str("component", "fare_handler").Logger(),
	}
}

type fareReq struct {
	Distance       *float64 `json:"distance"`
	Duration       *float64 `json:"duration"`
	Pickup         string   `json:"pickup"`
	Dropoff        string   `json:"dropoff"`
	TaxiType       string   `json:"taxi_type"`
	Location       string   `json:"location"`
	Currency       string   `json:"currency"`
	TimeOfDay      string   `json:"time_of_day"`
	TimeOffset     *int     `json:"time_offset"`
	PassengerCount int      `json:"passenger_count"`
}

// toEstimate validates the request and resolves pickup/dropoff into a
// distance and duration when those are not given.
func (h *FareHandler) toEstimate(ctx context.Context, req fareReq) (fare.EstimateRequest, error) {
	out := fare.EstimateRequest{
		Vehicle:        strings.TrimSpace(req.TaxiType),
		Location:       strings.TrimSpace(req.Location),
		Currency:       strings.TrimSpace(req.Currency),
		Period:         strings.TrimSpace(req.TimeOfDay),
		PassengerCount: req.PassengerCount,
	}
	if out.PassengerCount == 0 {
		out.PassengerCount = 1
	}
	if out.PassengerCount < 0 {
		return out, fmt.Errorf("%w: passenger_count must be at least 1", ErrBadRequest)
	}

	switch {
	case req.Distance != nil || req.Duration != nil:
		if req.Distance != nil {
			out.DistanceKm = *req.Distance
		}
		if req.Duration != nil {
			out.DurationMin = *req.Duration
		}
	case req.Pickup != "" && req.Dropoff != "":
		if h.routes == nil {
			return out, maps.ErrRouteUnavailable
		}
		route, err := h.routes.Resolve(ctx, req.Pickup, req.Dropoff)
		if err != nil {
			return out, err
		}
		out.DistanceKm = route.DistanceKm
		out.DurationMin = route.DurationMin
	}

	if out.DistanceKm < 0 || out.DurationMin < 0 {
		return out, fmt.Errorf("%w: distance and duration must be non-negative", ErrBadRequest)
	}
	return out, nil
}

func (h *FareHandler) bind(c *gin.Context) (fareReq, fare.EstimateRequest, bool) {
	var req fareReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return req, fare.EstimateRequest{}, false
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	est, err := h.toEstimate(ctx, req)
	if err != nil {
		h.log.Warn().Err(err).Msg("fare request rejected")
		writeFareError(c, err)
		return req, est, false
	}
	return req, est, true
}

func offsetOf(req fareReq) int {
	if req.TimeOffset == nil {
		return fare.DefaultOffset
	}
	return *req.TimeOffset
}

// Estimate handles POST /api/fare/estimate.
func (h *FareHandler) Estimate(c *gin.Context) {
	_, est, ok := h.bind(c)
	if !ok {
		return
	}
	writeJSON(c, http.StatusOK, h.fare.Estimate(est))
}

// Predict handles POST /api/fare/predict.
func (h *FareHandler) Predict(c *gin.Context) {
	req, est, ok := h.bind(c)
	if !ok {
		return
	}
	writeJSON(c, http.StatusOK, h.fare.Predict(fare.PredictRequest{EstimateRequest: est, OffsetMinutes: offsetOf(req)}))
}

// Insight handles POST /api/fare/insight.
func (h *FareHandler) Insight(c *gin.Context) {
	if h.narrator == nil {
		writeFareError(c, ai.ErrInsightUnavailable)
		return
	}
	req, est, ok := h.bind(c)
	if !ok {
		return
	}
	forecast := h.fare.Predict(fare.PredictRequest{EstimateRequest: est, OffsetMinutes: offsetOf(req)})

	ctx, cancel := context.WithTimeout(c.Request.Context(), 20*time.Second)
	defer cancel()

	insight, err := h.narrator.ExplainPrediction(ctx, forecast, map[string]string{
		"location": est.Location,
		"vehicle":  est.Vehicle,
		"currency": forecast.Current.Currency,
	})
	if err != nil {
		h.log.Error().Err(err).Msg("insight generation failed")
		writeFareError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"prediction": forecast, "insight": insight})
}

type optionsResp struct {
	VehicleClasses []pricing.Rate            `json:"vehicle_classes"`
	TimePeriods    []conditions.TimePeriod   `json:"time_periods"`
	TrafficLevels  []conditions.TrafficLevel `json:"traffic_levels"`
	WeatherLevels  []conditions.WeatherLevel `json:"weather_levels"`
	Currencies     []currency.Info           `json:"currencies"`
	Locations      []string                  `json:"locations"`
}

// Options handles GET /api/fare/options.
func (h *FareHandler) Options(c *gin.Context) {
	writeJSON(c, http.StatusOK, optionsResp{
		VehicleClasses: h.rates.List(),
		TimePeriods:    conditions.TimePeriods,
		TrafficLevels:  conditions.TrafficLevels,
		WeatherLevels:  conditions.WeatherLevels,
		Currencies:     h.fare.Currencies().List(),
		Locations:      h.profiles.Locations(),
	})
}
