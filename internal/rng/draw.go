// README: Discrete draws derived from a uniform Source.
package rng

// IntRange returns an integer in [min, max], both inclusive.
func IntRange(src Source, min, max int) int {
	if min >= max {
		return min
	}
	span := max - min + 1
	n := int(src.Float64() * float64(span))
	if n >= span {
		n = span - 1
	}
	return min + n
}

// Chance reports true with probability p.
func Chance(src Source, p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return src.Float64() < p
}

// Sign returns -1 or +1 with equal probability.
func Sign(src Source) int {
	if src.Float64() < 0.5 {
		return -1
	}
	return 1
}

// CumulativeIndex walks weights in order and returns the first index whose
// running sum reaches target. ok is false when the walk is exhausted.
func CumulativeIndex(weights []int, target int) (int, bool) {
	cumulative := 0
	for i, w := range weights {
		cumulative += w
		if target <= cumulative {
			return i, true
		}
	}
	return -1, false
}

// WeightedIndex picks an index with probability proportional to its weight.
// Returns -1 when the weights sum to zero or less.
func WeightedIndex(src Source, weights []int) int {
	total := 0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return -1
	}
	target := IntRange(src, 1, total)
	cumulative := 0
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		cumulative += w
		if target <= cumulative {
			return i
		}
	}
	return len(weights) - 1
}
