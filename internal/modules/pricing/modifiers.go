// README: Multiplicative pricing modifiers; every variant has an entry.
package pricing

import "farecast/internal/modules/conditions"

func TrafficModifier(t conditions.TrafficLevel) float64 {
	switch t {
	case conditions.TrafficModerate:
		return 1.2
	case conditions.TrafficHeavy:
		return 1.5
	case conditions.TrafficExtreme:
		return 1.8
	default:
		return 1.0
	}
}

func WeatherModifier(w conditions.WeatherLevel) float64 {
	switch w {
	case conditions.WeatherCloudy:
		return 1.05
	case conditions.WeatherRain:
		return 1.2
	case conditions.WeatherSnow:
		return 1.4
	case conditions.WeatherStorm:
		return 1.6
	default:
		return 1.0
	}
}

func TimeModifier(p conditions.TimePeriod) float64 {
	switch p {
	case conditions.EarlyMorning:
		return 1.1
	case conditions.MorningRush, conditions.EveningRush:
		return 1.5
	case conditions.Evening:
		return 1.2
	case conditions.Night:
		return 1.3
	default:
		return 1.0
	}
}

func DemandModifier(d DemandLevel) float64 {
	switch d {
	case DemandVeryLow:
		return 0.8
	case DemandLow:
		return 0.9
	case DemandHigh:
		return 1.3
	case DemandVeryHigh:
		return 1.8
	case DemandExtreme:
		return 2.5
	default:
		return 1.0
	}
}
