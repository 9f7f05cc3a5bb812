package rng

import (
	"sync"
	"testing"
)

func TestRandomReproducibility(t *testing.T) {
	r1 := NewRandom(42)
	r2 := NewRandom(42)
	for i := 0; i < 1000; i++ {
		if a, b := r1.Float64(), r2.Float64(); a != b {
			t.Fatalf("mismatch at draw %d: %f != %f", i, a, b)
		}
	}
}

func TestRandomZeroSeedIsReplaced(t *testing.T) {
	r := NewRandom(0)
	if r.Seed() == 0 {
		t.Fatal("expected a generated seed")
	}
}

func TestRandomFloat64Range(t *testing.T) {
	r := NewRandom(7)
	for i := 0; i < 10000; i++ {
		v := r.Float64()
		if v < 0 || v >= 1 {
			t.Fatalf("draw out of range: %f", v)
		}
	}
}

func TestRandomForkIsDeterministic(t *testing.T) {
	f1 := NewRandom(99).Fork()
	f2 := NewRandom(99).Fork()
	if f1.Seed() != f2.Seed() {
		t.Fatalf("fork seeds differ: %d != %d", f1.Seed(), f2.Seed())
	}
	for i := 0; i < 100; i++ {
		if f1.Float64() != f2.Float64() {
			t.Fatalf("fork streams diverge at %d", i)
		}
	}
}

func TestRandomConcurrentUse(t *testing.T) {
	r := NewRandom(1)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				_ = r.Float64()
			}
		}()
	}
	wg.Wait()
}

func TestIntRange(t *testing.T) {
	tests := []struct {
		name     string
		draw     float64
		min, max int
		want     int
	}{
		{"lowest draw", 0, 1, 100, 1},
		{"highest draw", 0.9999999, 1, 100, 100},
		{"midpoint", 0.5, -10, 10, 0},
		{"lower noise edge", 0, -10, 10, -10},
		{"upper noise edge", 0.99, -10, 10, 10},
		{"degenerate range", 0.7, 5, 5, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IntRange(NewSequence(tt.draw), tt.min, tt.max)
			if got != tt.want {
				t.Errorf("IntRange() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestIntRangeCoversBounds(t *testing.T) {
	r := NewRandom(3)
	seen := map[int]bool{}
	for i := 0; i < 20000; i++ {
		v := IntRange(r, -10, 10)
		if v < -10 || v > 10 {
			t.Fatalf("value out of range: %d", v)
		}
		seen[v] = true
	}
	if len(seen) != 21 {
		t.Fatalf("expected all 21 values, saw %d", len(seen))
	}
}

func TestChance(t *testing.T) {
	if Chance(NewSequence(0), 0) {
		t.Error("p=0 must never fire")
	}
	if !Chance(NewSequence(0.999), 1) {
		t.Error("p=1 must always fire")
	}
	if !Chance(NewSequence(0.29), 0.3) {
		t.Error("0.29 < 0.3 should fire")
	}
	if Chance(NewSequence(0.3), 0.3) {
		t.Error("0.3 is not < 0.3")
	}
}

func TestSign(t *testing.T) {
	if Sign(NewSequence(0.1)) != -1 {
		t.Error("expected -1 below 0.5")
	}
	if Sign(NewSequence(0.5)) != 1 {
		t.Error("expected +1 at 0.5")
	}
}

func TestCumulativeIndex(t *testing.T) {
	weights := []int{70, 25, 5, 0}
	tests := []struct {
		target int
		want   int
		ok     bool
	}{
		{1, 0, true},
		{70, 0, true},
		{71, 1, true},
		{95, 1, true},
		{96, 2, true},
		{100, 2, true},
		{101, -1, false},
	}
	for _, tt := range tests {
		got, ok := CumulativeIndex(weights, tt.target)
		if got != tt.want || ok != tt.ok {
			t.Errorf("CumulativeIndex(%d) = (%d, %v), want (%d, %v)", tt.target, got, ok, tt.want, tt.ok)
		}
	}
}

func TestWeightedIndex(t *testing.T) {
	if got := WeightedIndex(NewSequence(0.5), []int{0, 0}); got != -1 {
		t.Errorf("all-zero weights: got %d, want -1", got)
	}
	if got := WeightedIndex(NewSequence(0.99), []int{0, 10, 0}); got != 1 {
		t.Errorf("single positive weight: got %d, want 1", got)
	}
	// total 30: draw 0.5 -> target 16 -> second bucket (11..30)
	if got := WeightedIndex(NewSequence(0.5), []int{10, 20}); got != 1 {
		t.Errorf("got %d, want 1", got)
	}
	if got := WeightedIndex(NewSequence(0), []int{10, 20}); got != 0 {
		t.Errorf("got %d, want 0", got)
	}
}

func TestSequenceWraps(t *testing.T) {
	s := NewSequence(0.1, 0.2)
	want := []float64{0.1, 0.2, 0.1}
	for i, w := range want {
		if got := s.Float64(); got != w {
			t.Fatalf("draw %d = %f, want %f", i, got, w)
		}
	}
	if s.Used() != 3 {
		t.Fatalf("Used() = %d, want 3", s.Used())
	}
	if NewSequence().Float64() != 0 {
		t.Fatal("empty sequence should yield 0")
	}
}
