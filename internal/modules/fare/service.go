// README: Fare service estimates current fares and projects them forward.
package fare

import (
	"github.com/rs/zerolog"

	"farecast/internal/modules/conditions"
	"farecast/internal/modules/currency"
	"farecast/internal/modules/pricing"
	"farecast/internal/types"
)

type Service struct {
	sim        *conditions.Simulator
	forecaster *conditions.Forecaster
	pricing    *pricing.Service
	fx         *currency.Table
	log        zerolog.Logger
}

func NewService(sim *conditions.Simulator, forecaster *conditions.Forecaster, pricing *pricing.Service, fx *currency.Table, log zerolog.Logger) *Service {
	if fx == nil {
		fx = currency.NewTable()
	}
	return &Service{
		sim:        sim,
		forecaster: forecaster,
		pricing:    pricing,
		fx:         fx,
		log:        log.With().Str("component", "fare").Logger(),
	}
}

func (s *Service) Currencies() *currency.Table {
	return s.fx
}

type resolved struct {
	vehicle  pricing.VehicleClass
	period   conditions.TimePeriod
	location string
	currency string
	fx       float64
}

func (s *Service) resolve(req EstimateRequest) resolved {
	r := resolved{
		location: orDefault(req.Location, DefaultLocation),
		currency: orDefault(req.Currency, DefaultCurrency),
	}
	var ok bool
	if r.vehicle, ok = pricing.ParseVehicleClass(orDefault(req.Vehicle, DefaultVehicle)); !ok {
		s.log.Debug().Str("vehicle", req.Vehicle).Msg("unknown vehicle class, using default")
	}
	if r.period, ok = conditions.ParseTimePeriod(orDefault(req.Period, DefaultPeriod)); !ok {
		s.log.Debug().Str("period", req.Period).Msg("unknown time period, using default")
	}
	if !s.fx.Known(r.currency) {
		s.log.Debug().Str("currency", r.currency).Msg("unknown currency, pricing at 1.0")
	}
	r.fx = s.fx.Rate(r.currency)
	return r
}

func (s *Service) fareRequest(req EstimateRequest, r resolved, traffic conditions.TrafficLevel, weather conditions.WeatherLevel, period conditions.TimePeriod) pricing.FareRequest {
	return pricing.FareRequest{
		DistanceKm:     req.DistanceKm,
		DurationMin:    req.DurationMin,
		Vehicle:        r.vehicle,
		Traffic:        traffic,
		Weather:        weather,
		Period:         period,
		PassengerCount: req.PassengerCount,
		ExchangeRate:   r.fx,
		Currency:       r.currency,
	}
}

// Breakdown samples current conditions and prices the trip.
func (s *Service) Breakdown(req EstimateRequest) pricing.FareBreakdown {
	r := s.resolve(req)
	traffic := s.sim.SampleTraffic(r.location, r.period)
	weather := s.sim.SampleWeather(r.location)
	return s.pricing.Calculate(s.fareRequest(req, r, traffic, weather, r.period))
}

// Estimate is Breakdown plus eco metrics. The eco helpers see the class as
// given, so an unknown class scores 50 while still pricing as Sedan.
func (s *Service) Estimate(req EstimateRequest) Estimate {
	b := s.Breakdown(req)
	vehicle := pricing.VehicleClass(orDefault(req.Vehicle, DefaultVehicle))
	return Estimate{
		FareBreakdown: b,
		EcoScore:      pricing.EcoScore(vehicle, req.DistanceKm),
		CO2Emissions:  pricing.CO2Emissions(vehicle, req.DistanceKm),
		Suggestions:   pricing.EcoSuggestions(vehicle, req.DistanceKm, req.DurationMin),
	}
}

// Predict prices the trip now and at each offset from OffsetsFor. Every
// offset is forecast from the current period, not from the previous offset.
func (s *Service) Predict(req PredictRequest) Forecast {
	r := s.resolve(req.EstimateRequest)
	traffic := s.sim.SampleTraffic(r.location, r.period)
	weather := s.sim.SampleWeather(r.location)
	current := s.pricing.Calculate(s.fareRequest(req.EstimateRequest, r, traffic, weather, r.period))

	offsets := OffsetsFor(req.OffsetMinutes)
	out := Forecast{Current: current, Predictions: make([]Prediction, 0, len(offsets))}
	for _, offset := range offsets {
		futureTraffic := s.forecaster.ForecastTraffic(r.location, r.period, offset)
		futureWeather := s.forecaster.ForecastWeather(r.location, offset)
		futurePeriod := conditions.Advance(r.period, offset, conditions.PricingAnchors)
		future := s.pricing.Calculate(s.fareRequest(req.EstimateRequest, r, futureTraffic, futureWeather, futurePeriod))

		out.Predictions = append(out.Predictions, Prediction{
			TimeOffset:       offset,
			Fare:             future.AdjustedFare,
			Traffic:          future.Factors.Traffic.Condition,
			Weather:          future.Factors.Weather.Condition,
			TimeOfDay:        future.Factors.Time.Period,
			ChangePercentage: PercentageChange(current.AdjustedFare, future.AdjustedFare),
			Factors:          future.Factors,
		})
	}
	s.log.Debug().
		Str("location", r.location).
		Str("period", string(r.period)).
		Int("offsets", len(offsets)).
		Float64("current", current.AdjustedFare).
		Msg("fare prediction computed")
	return out
}

// OffsetsFor returns the forecast offsets, in minutes, for a requested horizon.
func OffsetsFor(requested int) []int {
	switch {
	case requested < 30:
		return []int{15}
	case requested < 60:
		return []int{15, 30}
	default:
		return []int{15, 30, 60}
	}
}

// PercentageChange is the change from current to future in percent, rounded
// to one decimal. A zero current value yields 0.
func PercentageChange(current, future float64) float64 {
	if current == 0 {
		return 0
	}
	return types.Round((future-current)/current*100, 1)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
