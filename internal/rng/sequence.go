// README: Scripted Source replaying fixed draws, for deterministic tests and demos.
package rng

import "sync"

// Sequence replays the given draws in order and wraps around when exhausted.
// An empty Sequence always yields 0.
type Sequence struct {
	mu    sync.Mutex
	draws []float64
	next  int
}

func NewSequence(draws ...float64) *Sequence {
	return &Sequence{draws: draws}
}

func (s *Sequence) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.draws) == 0 {
		return 0
	}
	v := s.draws[s.next%len(s.draws)]
	s.next++
	return v
}

// Used reports how many draws have been consumed.
func (s *Sequence) Used() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.next
}
