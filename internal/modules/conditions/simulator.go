// README: Conditions simulator samples traffic and weather from location profiles.
package conditions

import "farecast/internal/rng"

// Simulator stands in for live traffic and weather feeds.
type Simulator struct {
	profiles *ProfileSet
	src      rng.Source
}

func NewSimulator(profiles *ProfileSet, src rng.Source) *Simulator {
	if profiles == nil {
		profiles = MustBuiltinProfileSet()
	}
	return &Simulator{profiles: profiles, src: src}
}

func (s *Simulator) Profiles() *ProfileSet {
	return s.profiles
}

// SampleTraffic draws a traffic level for location during period.
func (s *Simulator) SampleTraffic(location string, period TimePeriod) TrafficLevel {
	table := s.profiles.Lookup(location).TrafficFor(period)
	i, ok := rng.CumulativeIndex(table.weights(), s.percent())
	if !ok {
		return TrafficModerate
	}
	return table[i].Level
}

// SampleWeather draws the current weather for location.
func (s *Simulator) SampleWeather(location string) WeatherLevel {
	table := s.profiles.Lookup(location).Weather
	i, ok := rng.CumulativeIndex(table.weights(), s.percent())
	if !ok {
		return WeatherClear
	}
	return table[i].Level
}

// percent draws a uniform integer in [1, 100].
func (s *Simulator) percent() int {
	return rng.IntRange(s.src, 1, 100)
}
