// README: Eco score, CO2 estimate and greener-travel suggestions for a trip.
package pricing

import "farecast/internal/types"

// gramsPerTreeYear is roughly what one tree absorbs in a year.
const gramsPerTreeYear = 21000

type Emissions struct {
	TotalG          float64 `json:"total_g"`
	PerKm           int     `json:"per_km"`
	SavingsVsSUVG   float64 `json:"savings_vs_suv_g"`
	TreesEquivalent float64 `json:"trees_equivalent"`
	IsEcoFriendly   bool    `json:"is_eco_friendly"`
}

type Suggestion struct {
	Type    string `json:"type"`
	Text    string `json:"text"`
	Savings string `json:"savings"`
}

func ecoBase(v VehicleClass) int {
	switch v {
	case Electric:
		return 90
	case Sedan:
		return 60
	case SUV:
		return 30
	case Luxury:
		return 20
	default:
		return 50
	}
}

// EcoScore rates a trip 0..100. Trips over 10 km lose one percent of the
// class score per extra km.
func EcoScore(v VehicleClass, distanceKm float64) int {
	factor := 1.0
	if distanceKm > 10 {
		factor = 1 - (distanceKm-10)/100
		if factor < 0 {
			factor = 0
		}
		if factor > 1 {
			factor = 1
		}
	}
	score := int(float64(ecoBase(v)) * factor)
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// CO2PerKm returns grams of CO2 per km; unknown classes count as Sedan.
func CO2PerKm(v VehicleClass) int {
	switch v {
	case SUV:
		return 180
	case Electric:
		return 30
	case Luxury:
		return 220
	default:
		return 120
	}
}

func CO2Emissions(v VehicleClass, distanceKm float64) Emissions {
	perKm := CO2PerKm(v)
	total := float64(perKm) * distanceKm
	suv := float64(CO2PerKm(SUV)) * distanceKm
	return Emissions{
		TotalG:          types.Round(total, 2),
		PerKm:           perKm,
		SavingsVsSUVG:   types.Round(suv-total, 2),
		TreesEquivalent: types.Round(total/gramsPerTreeYear, 4),
		IsEcoFriendly:   v == Electric,
	}
}

func EcoSuggestions(v VehicleClass, distanceKm, durationMin float64) []Suggestion {
	out := []Suggestion{}
	if v != Electric {
		out = append(out, Suggestion{
			Type:    "switch_taxi",
			Text:    "Switch to an electric taxi to reduce CO2 emissions by up to 84%",
			Savings: "Reduces CO2 by ~150g per km",
		})
	}
	switch {
	case distanceKm < 3:
		out = append(out, Suggestion{
			Type:    "alternative",
			Text:    "Consider walking or cycling for this short distance",
			Savings: "Eliminates all CO2 emissions for this trip",
		})
	case distanceKm < 10:
		out = append(out, Suggestion{
			Type:    "alternative",
			Text:    "Consider public transportation for this distance",
			Savings: "Reduces CO2 by up to 75% compared to a taxi",
		})
	}
	if distanceKm > 15 {
		out = append(out, Suggestion{
			Type:    "carpool",
			Text:    "Share your ride with others going in the same direction",
			Savings: "Cuts emissions per passenger by 50% or more",
		})
	}
	// Slow average speed signals congestion.
	if durationMin > distanceKm*3 {
		out = append(out, Suggestion{
			Type:    "time_shift",
			Text:    "Consider traveling outside peak hours for faster, more efficient travel",
			Savings: "Reduces idle time and associated emissions",
		})
	}
	return out
}
