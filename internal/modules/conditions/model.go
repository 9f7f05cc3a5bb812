// README: Time-of-day, traffic and weather enumerations with explicit default parsing.
package conditions

type TimePeriod string

const (
	EarlyMorning TimePeriod = "early_morning"
	MorningRush  TimePeriod = "morning_rush"
	Day          TimePeriod = "day"
	EveningRush  TimePeriod = "evening_rush"
	Evening      TimePeriod = "evening"
	Night        TimePeriod = "night"
)

// TimePeriods lists every period in clock order starting at 05:00.
var TimePeriods = []TimePeriod{EarlyMorning, MorningRush, Day, EveningRush, Evening, Night}

// DefaultTimePeriod is used for any unrecognised period label.
const DefaultTimePeriod = Day

func (p TimePeriod) IsValid() bool {
	switch p {
	case EarlyMorning, MorningRush, Day, EveningRush, Evening, Night:
		return true
	}
	return false
}

func (p TimePeriod) String() string {
	return string(p)
}

// ParseTimePeriod maps raw input onto a period. Labels match exactly, so
// "NIGHT" is not night. ok is false when DefaultTimePeriod was substituted.
func ParseTimePeriod(s string) (TimePeriod, bool) {
	p := TimePeriod(s)
	if p.IsValid() {
		return p, true
	}
	return DefaultTimePeriod, false
}

// TrafficLevel is ordered low < moderate < heavy < extreme.
type TrafficLevel string

const (
	TrafficLow      TrafficLevel = "low"
	TrafficModerate TrafficLevel = "moderate"
	TrafficHeavy    TrafficLevel = "heavy"
	TrafficExtreme  TrafficLevel = "extreme"
)

var TrafficLevels = []TrafficLevel{TrafficLow, TrafficModerate, TrafficHeavy, TrafficExtreme}

// DefaultTraffic stands in for unrecognised labels. It prices and scores
// identically to a missing table entry (modifier 1.0, demand impact 0).
const DefaultTraffic = TrafficLow

func (t TrafficLevel) IsValid() bool {
	return t.Index() >= 0
}

// Index is the position of t in TrafficLevels, or -1.
func (t TrafficLevel) Index() int {
	switch t {
	case TrafficLow:
		return 0
	case TrafficModerate:
		return 1
	case TrafficHeavy:
		return 2
	case TrafficExtreme:
		return 3
	}
	return -1
}

// Shift moves t by delta steps along TrafficLevels, clamped to the ends.
func (t TrafficLevel) Shift(delta int) TrafficLevel {
	i := t.Index()
	if i < 0 {
		i = DefaultTraffic.Index()
	}
	i += delta
	if i < 0 {
		i = 0
	}
	if i > len(TrafficLevels)-1 {
		i = len(TrafficLevels) - 1
	}
	return TrafficLevels[i]
}

func (t TrafficLevel) String() string {
	return string(t)
}

func ParseTraffic(s string) (TrafficLevel, bool) {
	t := TrafficLevel(s)
	if t.IsValid() {
		return t, true
	}
	return DefaultTraffic, false
}

type WeatherLevel string

const (
	WeatherClear  WeatherLevel = "clear"
	WeatherCloudy WeatherLevel = "cloudy"
	WeatherRain   WeatherLevel = "rain"
	WeatherSnow   WeatherLevel = "snow"
	WeatherStorm  WeatherLevel = "storm"
)

var WeatherLevels = []WeatherLevel{WeatherClear, WeatherCloudy, WeatherRain, WeatherSnow, WeatherStorm}

// DefaultWeather stands in for unrecognised labels (modifier 1.0, demand impact 0).
const DefaultWeather = WeatherClear

func (w WeatherLevel) IsValid() bool {
	switch w {
	case WeatherClear, WeatherCloudy, WeatherRain, WeatherSnow, WeatherStorm:
		return true
	}
	return false
}

func (w WeatherLevel) String() string {
	return string(w)
}

func ParseWeather(s string) (WeatherLevel, bool) {
	w := WeatherLevel(s)
	if w.IsValid() {
		return w, true
	}
	return DefaultWeather, false
}
