// README: Fare estimate and prediction requests and results.
package fare

import (
	"farecast/internal/modules/conditions"
	"farecast/internal/modules/pricing"
)

// Request defaults applied when a field is left empty.
const (
	DefaultVehicle  = "Sedan"
	DefaultLocation = "Chennai"
	DefaultCurrency = "INR"
	DefaultPeriod   = "day"
	DefaultOffset   = 15
)

// EstimateRequest takes raw labels; unknown ones fall back to defaults.
type EstimateRequest struct {
	DistanceKm     float64
	DurationMin    float64
	Vehicle        string
	Location       string
	Currency       string
	Period         string
	PassengerCount int
}

type PredictRequest struct {
	EstimateRequest
	OffsetMinutes int
}

// Prediction is one forecast point.
type Prediction struct {
	TimeOffset       int                     `json:"time_offset"`
	Fare             float64                 `json:"fare"`
	Traffic          conditions.TrafficLevel `json:"traffic"`
	Weather          conditions.WeatherLevel `json:"weather"`
	TimeOfDay        conditions.TimePeriod   `json:"time_of_day"`
	ChangePercentage float64                 `json:"change_percentage"`
	Factors          pricing.Factors         `json:"factors"`
}

type Forecast struct {
	Current     pricing.FareBreakdown `json:"current"`
	Predictions []Prediction          `json:"predictions"`
}

// Estimate wraps a breakdown with eco metrics.
type Estimate struct {
	pricing.FareBreakdown
	EcoScore     int                  `json:"eco_score"`
	CO2Emissions pricing.Emissions    `json:"co2_emissions"`
	Suggestions  []pricing.Suggestion `json:"suggestions"`
}
