package maps

import (
	"context"
	"errors"
	"math"
	"testing"
)

type stubResolver struct {
	calls int
}

func (s *stubResolver) Resolve(ctx context.Context, origin, destination string) (Route, error) {
	s.calls++
	return Route{DistanceKm: 4, DurationMin: 9, Summary: "api"}, nil
}

func TestHaversineKm_KnownDistances(t *testing.T) {
	tests := []struct {
		name      string
		a, b      Coordinate
		wantKm    float64
		tolerance float64
	}{
		{"same point", Coordinate{13.0827, 80.2707}, Coordinate{13.0827, 80.2707}, 0, 0.001},
		{"one degree of latitude", Coordinate{0, 0}, Coordinate{1, 0}, 111.19, 0.01},
		{"New York to Los Angeles", Coordinate{40.7128, -74.0060}, Coordinate{34.0522, -118.2437}, 3944, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HaversineKm(tt.a, tt.b)
			if math.Abs(got-tt.wantKm) > tt.tolerance {
				t.Errorf("HaversineKm() = %f, want %f (±%f)", got, tt.wantKm, tt.tolerance)
			}
		})
	}
}

func TestParseCoordinate(t *testing.T) {
	tests := []struct {
		in   string
		want Coordinate
		ok   bool
	}{
		{"13.08,80.27", Coordinate{13.08, 80.27}, true},
		{" -33.9 , 151.2 ", Coordinate{-33.9, 151.2}, true},
		{"91,0", Coordinate{}, false},
		{"0,181", Coordinate{}, false},
		{"Chennai Central", Coordinate{}, false},
		{"12.5", Coordinate{}, false},
	}
	for _, tt := range tests {
		got, ok := ParseCoordinate(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseCoordinate(%q) = %+v,%v, want %+v,%v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestCoordinateResolver(t *testing.T) {
	next := &stubResolver{}
	r := NewCoordinateResolver(next)

	got, err := r.Resolve(context.Background(), "0,0", "1,0")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if math.Abs(got.DistanceKm-111.19) > 0.01 || math.Abs(got.DurationMin-got.DistanceKm*2) > 1e-9 {
		t.Errorf("straight line route = %+v", got)
	}
	if next.calls != 0 {
		t.Errorf("coordinates were sent to the next resolver")
	}

	got, err = r.Resolve(context.Background(), "Airport", "1,0")
	if err != nil || got.Summary != "api" || next.calls != 1 {
		t.Errorf("address route = %+v, %v (calls=%d)", got, err, next.calls)
	}
}

func TestCoordinateResolverWithoutNext(t *testing.T) {
	r := NewCoordinateResolver(nil)
	if _, err := r.Resolve(context.Background(), "Airport", "Station"); !errors.Is(err, ErrRouteUnavailable) {
		t.Errorf("err = %v, want ErrRouteUnavailable", err)
	}
	if _, err := r.Resolve(context.Background(), "0,0", "0,0.5"); err != nil {
		t.Errorf("coordinate route without next: %v", err)
	}
}
