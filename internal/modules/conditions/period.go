// README: Hour-to-period classification and forward projection of a period by an offset.
package conditions

// Classify maps a wall-clock hour onto its time period. Hours outside 0..23
// are reduced modulo 24.
func Classify(hour int) TimePeriod {
	hour = ((hour % 24) + 24) % 24
	switch {
	case hour >= 5 && hour < 7:
		return EarlyMorning
	case hour >= 7 && hour < 9:
		return MorningRush
	case hour >= 9 && hour < 16:
		return Day
	case hour >= 16 && hour < 19:
		return EveningRush
	case hour >= 19 && hour < 22:
		return Evening
	default:
		return Night
	}
}

// Anchors assigns each period the hour it is assumed to be at when it is
// advanced. Only the night anchor differs between the two sets in use.
type Anchors struct {
	EarlyMorning int
	MorningRush  int
	Day          int
	EveningRush  int
	Evening      int
	Night        int
}

var (
	// ForecastAnchors places night just after midnight. Used when picking the
	// traffic table for a forecast.
	ForecastAnchors = Anchors{EarlyMorning: 6, MorningRush: 8, Day: 12, EveningRush: 17, Evening: 20, Night: 1}

	// PricingAnchors places night at 23:00. Used to label the period a
	// predicted fare is priced in.
	PricingAnchors = Anchors{EarlyMorning: 6, MorningRush: 8, Day: 12, EveningRush: 17, Evening: 20, Night: 23}
)

// Hour returns the anchor hour of p. Unknown periods anchor at Day.
func (a Anchors) Hour(p TimePeriod) int {
	switch p {
	case EarlyMorning:
		return a.EarlyMorning
	case MorningRush:
		return a.MorningRush
	case Day:
		return a.Day
	case EveningRush:
		return a.EveningRush
	case Evening:
		return a.Evening
	case Night:
		return a.Night
	}
	return a.Day
}

// Advance projects p forward by whole hours of minutesAhead (remainder
// minutes are dropped) and reclassifies.
func Advance(p TimePeriod, minutesAhead int, a Anchors) TimePeriod {
	if minutesAhead < 0 {
		minutesAhead = 0
	}
	return Classify(a.Hour(p) + minutesAhead/60)
}
