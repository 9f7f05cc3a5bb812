// README: Forecaster projects traffic and weather forward by a number of minutes.
package conditions

import "farecast/internal/rng"

const (
	trafficDeviationChance = 0.3
	weatherChangeChance    = 0.4
	weatherChangeMinutes   = 60
)

type Forecaster struct {
	sim *Simulator
	src rng.Source
}

func NewForecaster(sim *Simulator, src rng.Source) *Forecaster {
	return &Forecaster{sim: sim, src: src}
}

// ForecastTraffic samples the traffic table of the future period, then with
// probability 0.3 nudges the result one level up or down.
func (f *Forecaster) ForecastTraffic(location string, current TimePeriod, minutesAhead int) TrafficLevel {
	future := Advance(current, minutesAhead, ForecastAnchors)
	level := f.sim.SampleTraffic(location, future)
	if rng.Chance(f.src, trafficDeviationChance) {
		level = level.Shift(rng.Sign(f.src))
	}
	return level
}

// ForecastWeather samples the current weather. For horizons of an hour or
// more it switches, with probability 0.4, to a different category picked by
// the remaining profile weights.
func (f *Forecaster) ForecastWeather(location string, minutesAhead int) WeatherLevel {
	current := f.sim.SampleWeather(location)
	if minutesAhead < weatherChangeMinutes || !rng.Chance(f.src, weatherChangeChance) {
		return current
	}

	table := f.sim.Profiles().Lookup(location).Weather
	others := make([]WeatherLevel, 0, len(table))
	weights := make([]int, 0, len(table))
	for _, w := range table {
		if w.Level == current {
			continue
		}
		others = append(others, w.Level)
		weights = append(weights, w.Weight)
	}
	i := rng.WeightedIndex(f.src, weights)
	if i < 0 {
		return current
	}
	return others[i]
}
