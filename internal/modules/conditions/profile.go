// README: Per-location probability tables for traffic and weather, kept as ordered (level, weight) lists.
package conditions

import (
	"errors"
	"fmt"
	"sort"
)

// DefaultLocation names the profile used for unknown locations.
const DefaultLocation = "default"

var ErrInvalidProfile = errors.New("invalid location profile")

type TrafficWeight struct {
	Level  TrafficLevel
	Weight int
}

type WeatherWeight struct {
	Level  WeatherLevel
	Weight int
}

// TrafficTable is walked in slice order; the order decides which level a
// cumulative draw lands on.
type TrafficTable []TrafficWeight

type WeatherTable []WeatherWeight

func (t TrafficTable) weights() []int {
	out := make([]int, len(t))
	for i, w := range t {
		out[i] = w.Weight
	}
	return out
}

func (t WeatherTable) weights() []int {
	out := make([]int, len(t))
	for i, w := range t {
		out[i] = w.Weight
	}
	return out
}

// Weight returns the weight of level, or 0 when absent.
func (t WeatherTable) Weight(level WeatherLevel) int {
	for _, w := range t {
		if w.Level == level {
			return w.Weight
		}
	}
	return 0
}

type Profile struct {
	Location string
	Traffic  map[TimePeriod]TrafficTable
	Weather  WeatherTable
}

// TrafficFor returns the table for p, falling back to the Day table.
func (p Profile) TrafficFor(period TimePeriod) TrafficTable {
	if t, ok := p.Traffic[period]; ok {
		return t
	}
	return p.Traffic[Day]
}

// Validate checks weights are non-negative and that the Day traffic table
// and the weather table have entries.
func (p Profile) Validate() error {
	if len(p.Traffic[Day]) == 0 {
		return fmt.Errorf("%w: %s has no %s traffic table", ErrInvalidProfile, p.Location, Day)
	}
	if len(p.Weather) == 0 {
		return fmt.Errorf("%w: %s has no weather table", ErrInvalidProfile, p.Location)
	}
	for period, table := range p.Traffic {
		for _, w := range table {
			if w.Weight < 0 || !w.Level.IsValid() {
				return fmt.Errorf("%w: %s/%s entry %q=%d", ErrInvalidProfile, p.Location, period, w.Level, w.Weight)
			}
		}
	}
	for _, w := range p.Weather {
		if w.Weight < 0 || !w.Level.IsValid() {
			return fmt.Errorf("%w: %s weather entry %q=%d", ErrInvalidProfile, p.Location, w.Level, w.Weight)
		}
	}
	return nil
}

// Unbalanced names the tables whose weights do not total 100. Draws past the
// total fall through to the sampler fallbacks.
func (p Profile) Unbalanced() []string {
	var out []string
	for _, period := range TimePeriods {
		t, ok := p.Traffic[period]
		if ok && sum(t.weights()) != 100 {
			out = append(out, fmt.Sprintf("%s/%s traffic=%d", p.Location, period, sum(t.weights())))
		}
	}
	if total := sum(p.Weather.weights()); total != 100 {
		out = append(out, fmt.Sprintf("%s weather=%d", p.Location, total))
	}
	return out
}

func sum(weights []int) int {
	total := 0
	for _, w := range weights {
		total += w
	}
	return total
}

// ProfileSet is read-only after construction.
type ProfileSet struct {
	profiles map[string]Profile
}

// NewProfileSet builds a set from profiles; it must contain DefaultLocation.
func NewProfileSet(profiles ...Profile) (*ProfileSet, error) {
	set := &ProfileSet{profiles: make(map[string]Profile, len(profiles))}
	for _, p := range profiles {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		set.profiles[p.Location] = p
	}
	if _, ok := set.profiles[DefaultLocation]; !ok {
		return nil, fmt.Errorf("%w: missing %q profile", ErrInvalidProfile, DefaultLocation)
	}
	return set, nil
}

// Lookup returns the exact-match profile for location, or the default one.
func (s *ProfileSet) Lookup(location string) Profile {
	if p, ok := s.profiles[location]; ok {
		return p
	}
	return s.profiles[DefaultLocation]
}

// Unbalanced collects Profile.Unbalanced over every profile, sorted.
func (s *ProfileSet) Unbalanced() []string {
	var out []string
	for _, p := range s.profiles {
		out = append(out, p.Unbalanced()...)
	}
	sort.Strings(out)
	return out
}

// Locations lists named profiles, excluding the default, sorted.
func (s *ProfileSet) Locations() []string {
	out := make([]string, 0, len(s.profiles))
	for name := range s.profiles {
		if name != DefaultLocation {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

// With returns a copy of s with the given profiles added or replaced.
func (s *ProfileSet) With(profiles ...Profile) (*ProfileSet, error) {
	all := make([]Profile, 0, len(s.profiles)+len(profiles))
	for _, p := range s.profiles {
		all = append(all, p)
	}
	merged, err := NewProfileSet(append(all, profiles...)...)
	if err != nil {
		return nil, err
	}
	return merged, nil
}

func traffic(low, moderate, heavy, extreme int) TrafficTable {
	return TrafficTable{
		{TrafficLow, low},
		{TrafficModerate, moderate},
		{TrafficHeavy, heavy},
		{TrafficExtreme, extreme},
	}
}

func weather(clear, cloudy, rain, snow, storm int) WeatherTable {
	return WeatherTable{
		{WeatherClear, clear},
		{WeatherCloudy, cloudy},
		{WeatherRain, rain},
		{WeatherSnow, snow},
		{WeatherStorm, storm},
	}
}

// BuiltinProfiles returns the simulated city profiles shipped with the service.
func BuiltinProfiles() []Profile {
	return []Profile{
		{
			Location: "New York",
			Traffic: map[TimePeriod]TrafficTable{
				EarlyMorning: traffic(70, 25, 5, 0),
				MorningRush:  traffic(5, 15, 50, 30),
				Day:          traffic(20, 50, 25, 5),
				EveningRush:  traffic(5, 15, 55, 25),
				Evening:      traffic(30, 45, 20, 5),
				Night:        traffic(75, 20, 5, 0),
			},
			Weather: weather(40, 30, 20, 5, 5),
		},
		{
			Location: "Los Angeles",
			Traffic: map[TimePeriod]TrafficTable{
				EarlyMorning: traffic(60, 30, 10, 0),
				MorningRush:  traffic(0, 10, 55, 35),
				Day:          traffic(10, 40, 35, 15),
				EveningRush:  traffic(0, 10, 50, 40),
				Evening:      traffic(20, 45, 30, 5),
				Night:        traffic(70, 25, 5, 0),
			},
			Weather: weather(75, 20, 4, 0, 1),
		},
		{
			Location: "Chicago",
			Traffic: map[TimePeriod]TrafficTable{
				EarlyMorning: traffic(75, 20, 5, 0),
				MorningRush:  traffic(10, 25, 45, 20),
				Day:          traffic(25, 45, 25, 5),
				EveningRush:  traffic(5, 20, 50, 25),
				Evening:      traffic(35, 40, 20, 5),
				Night:        traffic(80, 15, 5, 0),
			},
			Weather: weather(35, 30, 20, 10, 5),
		},
		{
			Location: DefaultLocation,
			Traffic: map[TimePeriod]TrafficTable{
				EarlyMorning: traffic(70, 25, 5, 0),
				MorningRush:  traffic(5, 20, 50, 25),
				Day:          traffic(20, 50, 25, 5),
				EveningRush:  traffic(5, 20, 50, 25),
				Evening:      traffic(30, 45, 20, 5),
				Night:        traffic(75, 20, 5, 0),
			},
			Weather: weather(50, 25, 15, 5, 5),
		},
	}
}

// MustBuiltinProfileSet panics only if the built-in tables are malformed.
func MustBuiltinProfileSet() *ProfileSet {
	set, err := NewProfileSet(BuiltinProfiles()...)
	if err != nil {
		panic(err)
	}
	return set
}
