// README: Pricing service computes fare breakdowns.
package pricing

import (
	"farecast/internal/modules/conditions"
	"farecast/internal/types"
)

type Service struct {
	rates  *RateTable
	demand DemandEstimator
}

func NewService(rates *RateTable, demand DemandEstimator) *Service {
	if rates == nil {
		rates = NewRateTable()
	}
	return &Service{rates: rates, demand: demand}
}

func (s *Service) Rates() *RateTable {
	return s.rates
}

// Calculate prices a trip. Unknown categorical values fall back to their
// defaults; numeric values are used as given.
func (s *Service) Calculate(req FareRequest) FareBreakdown {
	vehicle := req.Vehicle
	if !vehicle.IsValid() {
		vehicle = DefaultVehicleClass
	}
	traffic := req.Traffic
	if !traffic.IsValid() {
		traffic = conditions.DefaultTraffic
	}
	weather := req.Weather
	if !weather.IsValid() {
		weather = conditions.DefaultWeather
	}
	period := req.Period
	if !period.IsValid() {
		period = conditions.DefaultTimePeriod
	}

	rate := s.rates.Get(vehicle)
	baseFare := rate.BaseFare
	distanceFare := req.DistanceKm * rate.PerKm
	timeFare := req.DurationMin * rate.PerMinute
	rawFare := baseFare + distanceFare + timeFare

	trafficMod := TrafficModifier(traffic)
	weatherMod := WeatherModifier(weather)
	timeMod := TimeModifier(period)
	demand := s.demand.Estimate(period, traffic, weather)
	demandMod := DemandModifier(demand)

	adjusted := rawFare * trafficMod * weatherMod * timeMod * demandMod

	ecoDiscount := 0.0
	if vehicle == Electric {
		ecoDiscount = EcoDiscount
		adjusted *= 1 - EcoDiscount
	}

	passengers := req.PassengerCount
	if passengers < 1 {
		passengers = 1
	}
	if passengers > MaxPassengers {
		passengers = MaxPassengers
	}
	total := adjusted * float64(passengers)

	fx := req.ExchangeRate
	return FareBreakdown{
		BaseFare:       types.Round(baseFare*fx, 2),
		DistanceFare:   types.Round(distanceFare*fx, 2),
		TimeFare:       types.Round(timeFare*fx, 2),
		RawFare:        types.Round(rawFare*fx, 2),
		AdjustedFare:   types.Round(adjusted*fx, 2),
		TotalFare:      types.Round(total*fx, 2),
		Currency:       req.Currency,
		PassengerCount: passengers,
		Factors: Factors{
			Traffic:     TrafficFactor{Condition: traffic, Modifier: trafficMod},
			Weather:     WeatherFactor{Condition: weather, Modifier: weatherMod},
			Time:        TimeFactor{Period: period, Modifier: timeMod},
			Demand:      DemandFactor{Level: demand, Modifier: demandMod},
			EcoDiscount: ecoDiscount,
		},
		AdjustedUSD: adjusted,
	}
}
