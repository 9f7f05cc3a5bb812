// README: Vehicle classes, per-class rates and the fare breakdown record.
package pricing

import "farecast/internal/modules/conditions"

type VehicleClass string

const (
	Sedan    VehicleClass = "Sedan"
	SUV      VehicleClass = "SUV"
	Electric VehicleClass = "Electric"
	Luxury   VehicleClass = "Luxury"
)

var VehicleClasses = []VehicleClass{Sedan, SUV, Electric, Luxury}

// DefaultVehicleClass is priced for any unrecognised class name.
const DefaultVehicleClass = Sedan

// EcoDiscount is the fraction taken off Electric fares.
const EcoDiscount = 0.1

// MaxPassengers caps the passenger multiplier.
const MaxPassengers = 5

func (v VehicleClass) IsValid() bool {
	switch v {
	case Sedan, SUV, Electric, Luxury:
		return true
	}
	return false
}

func (v VehicleClass) String() string {
	return string(v)
}

// ParseVehicleClass matches class names exactly; "electric" is unknown and
// prices as Sedan.
func ParseVehicleClass(s string) (VehicleClass, bool) {
	v := VehicleClass(s)
	if v.IsValid() {
		return v, true
	}
	return DefaultVehicleClass, false
}

type Rate struct {
	Class     VehicleClass `json:"vehicle_class"`
	BaseFare  float64      `json:"base_fare"`
	PerKm     float64      `json:"per_km"`
	PerMinute float64      `json:"per_minute"`
}

// FareRequest carries already-resolved conditions. Numeric fields are not
// validated here.
type FareRequest struct {
	DistanceKm     float64
	DurationMin    float64
	Vehicle        VehicleClass
	Traffic        conditions.TrafficLevel
	Weather        conditions.WeatherLevel
	Period         conditions.TimePeriod
	PassengerCount int
	ExchangeRate   float64
	Currency       string
}

type TrafficFactor struct {
	Condition conditions.TrafficLevel `json:"condition"`
	Modifier  float64                 `json:"modifier"`
}

type WeatherFactor struct {
	Condition conditions.WeatherLevel `json:"condition"`
	Modifier  float64                 `json:"modifier"`
}

type TimeFactor struct {
	Period   conditions.TimePeriod `json:"period"`
	Modifier float64               `json:"modifier"`
}

type DemandFactor struct {
	Level    DemandLevel `json:"level"`
	Modifier float64     `json:"modifier"`
}

type Factors struct {
	Traffic     TrafficFactor `json:"traffic"`
	Weather     WeatherFactor `json:"weather"`
	Time        TimeFactor    `json:"time"`
	Demand      DemandFactor  `json:"demand"`
	EcoDiscount float64       `json:"eco_discount"`
}

// FareBreakdown holds converted, rounded amounts. AdjustedUSD keeps the
// unconverted, unrounded adjusted fare for percentage comparisons.
type FareBreakdown struct {
	BaseFare       float64 `json:"base_fare"`
	DistanceFare   float64 `json:"distance_fare"`
	TimeFare       float64 `json:"time_fare"`
	RawFare        float64 `json:"raw_fare"`
	AdjustedFare   float64 `json:"adjusted_fare"`
	TotalFare      float64 `json:"total_fare"`
	Currency       string  `json:"currency"`
	PassengerCount int     `json:"passenger_count"`
	Factors        Factors `json:"factors"`

	AdjustedUSD float64 `json:"-"`
}
