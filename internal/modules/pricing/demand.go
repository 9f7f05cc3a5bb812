// README: Demand estimation from time, traffic and weather plus bounded noise.
package pricing

import (
	"farecast/internal/modules/conditions"
	"farecast/internal/rng"
)

type DemandLevel string

const (
	DemandVeryLow  DemandLevel = "very_low"
	DemandLow      DemandLevel = "low"
	DemandNormal   DemandLevel = "normal"
	DemandHigh     DemandLevel = "high"
	DemandVeryHigh DemandLevel = "very_high"
	DemandExtreme  DemandLevel = "extreme"
)

var DemandLevels = []DemandLevel{DemandVeryLow, DemandLow, DemandNormal, DemandHigh, DemandVeryHigh, DemandExtreme}

const demandNoise = 10

// DemandEstimator decides the demand level for a set of conditions.
type DemandEstimator interface {
	Estimate(period conditions.TimePeriod, traffic conditions.TrafficLevel, weather conditions.WeatherLevel) DemandLevel
}

// DemandScore is the noise-free additive score.
func DemandScore(period conditions.TimePeriod, traffic conditions.TrafficLevel, weather conditions.WeatherLevel) int {
	return periodScore(period) + trafficScore(traffic) + weatherScore(weather)
}

// LevelForScore buckets a score into a demand level.
func LevelForScore(score int) DemandLevel {
	switch {
	case score < 30:
		return DemandVeryLow
	case score < 50:
		return DemandLow
	case score < 70:
		return DemandNormal
	case score < 85:
		return DemandHigh
	case score < 100:
		return DemandVeryHigh
	default:
		return DemandExtreme
	}
}

func periodScore(p conditions.TimePeriod) int {
	switch p {
	case conditions.EarlyMorning:
		return 30
	case conditions.MorningRush:
		return 80
	case conditions.EveningRush:
		return 85
	case conditions.Evening:
		return 65
	case conditions.Night:
		return 40
	default:
		return 50
	}
}

func trafficScore(t conditions.TrafficLevel) int {
	switch t {
	case conditions.TrafficModerate:
		return 10
	case conditions.TrafficHeavy:
		return 25
	case conditions.TrafficExtreme:
		return 40
	default:
		return 0
	}
}

func weatherScore(w conditions.WeatherLevel) int {
	switch w {
	case conditions.WeatherCloudy:
		return 5
	case conditions.WeatherRain:
		return 15
	case conditions.WeatherSnow:
		return 25
	case conditions.WeatherStorm:
		return 35
	default:
		return 0
	}
}

// RandomDemand adds uniform integer noise in [-10, 10] to DemandScore.
type RandomDemand struct {
	src rng.Source
}

func NewRandomDemand(src rng.Source) *RandomDemand {
	return &RandomDemand{src: src}
}

func (d *RandomDemand) Estimate(period conditions.TimePeriod, traffic conditions.TrafficLevel, weather conditions.WeatherLevel) DemandLevel {
	noise := rng.IntRange(d.src, -demandNoise, demandNoise)
	return LevelForScore(DemandScore(period, traffic, weather) + noise)
}

// FixedDemand always reports the same level.
type FixedDemand DemandLevel

func (d FixedDemand) Estimate(conditions.TimePeriod, conditions.TrafficLevel, conditions.WeatherLevel) DemandLevel {
	return DemandLevel(d)
}
