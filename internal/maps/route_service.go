// README: Route resolution via the Google Maps Directions API, throttled and retried.
package maps

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/time/rate"
	"googlemaps.github.io/maps"
)

var (
	ErrNoRoute          = errors.New("no route found")
	ErrRouteUnavailable = errors.New("route service not configured")
)

// Route is the first leg of a driving route.
type Route struct {
	DistanceKm  float64 `json:"distance_km"`
	DurationMin float64 `json:"duration_min"`
	Summary     string  `json:"summary"`
}

// Resolver turns a pickup and dropoff into trip distance and duration.
type Resolver interface {
	Resolve(ctx context.Context, origin, destination string) (Route, error)
}

type directionsClient interface {
	Directions(ctx context.Context, r *maps.DirectionsRequest) ([]maps.Route, []maps.GeocodedWaypoint, error)
}

// RouteService handles interactions with Google Maps API.
type RouteService struct {
	client  directionsClient
	limiter *rate.Limiter
	maxWait time.Duration
}

// NewRouteService creates a RouteService limited to perSecond outbound calls.
func NewRouteService(apiKey string, perSecond float64) (*RouteService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return newRouteService(client, perSecond), nil
}

func newRouteService(client directionsClient, perSecond float64) *RouteService {
	if perSecond <= 0 {
		perSecond = 5
	}
	return &RouteService{
		client:  client,
		limiter: rate.NewLimiter(rate.Limit(perSecond), 1),
		maxWait: 10 * time.Second,
	}
}

// Resolve returns driving distance and duration between origin and destination.
func (s *RouteService) Resolve(ctx context.Context, origin, destination string) (Route, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return Route{}, err
	}

	req := &maps.DirectionsRequest{
		Origin:      origin,
		Destination: destination,
		Mode:        maps.TravelModeDriving,
	}

	var routes []maps.Route
	operation := func() error {
		var err error
		routes, _, err = s.client.Directions(ctx, req)
		if err != nil {
			return err
		}
		if len(routes) == 0 || len(routes[0].Legs) == 0 {
			return backoff.Permanent(ErrNoRoute)
		}
		return nil
	}

	strategy := backoff.NewExponentialBackOff()
	strategy.MaxElapsedTime = s.maxWait
	if err := backoff.Retry(operation, backoff.WithContext(strategy, ctx)); err != nil {
		if errors.Is(err, ErrNoRoute) {
			return Route{}, err
		}
		return Route{}, fmt.Errorf("maps api error: %w", err)
	}

	leg := routes[0].Legs[0]
	return Route{
		DistanceKm:  float64(leg.Distance.Meters) / 1000,
		DurationMin: leg.Duration.Minutes(),
		Summary:     routes[0].Summary,
	}, nil
}
