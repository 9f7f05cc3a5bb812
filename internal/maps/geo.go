// README: Straight-line routes between "lat,lng" coordinates, used before or instead of the Directions API.
package maps

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	earthRadiusKm = 6371.0

	// straightLineKmh is the assumed average speed for coordinate routes.
	straightLineKmh = 30.0
)

// Coordinate is a point in decimal degrees.
type Coordinate struct {
	Lat float64
	Lng float64
}

// ParseCoordinate accepts "lat,lng" with optional spaces.
func ParseCoordinate(s string) (Coordinate, bool) {
	latStr, lngStr, ok := strings.Cut(s, ",")
	if !ok {
		return Coordinate{}, false
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
	if err != nil || lat < -90 || lat > 90 {
		return Coordinate{}, false
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(lngStr), 64)
	if err != nil || lng < -180 || lng > 180 {
		return Coordinate{}, false
	}
	return Coordinate{Lat: lat, Lng: lng}, true
}

// HaversineKm returns the great-circle distance in kilometres.
func HaversineKm(a, b Coordinate) float64 {
	dLat := degreesToRadians(b.Lat - a.Lat)
	dLng := degreesToRadians(b.Lng - a.Lng)

	rLat1 := degreesToRadians(a.Lat)
	rLat2 := degreesToRadians(b.Lat)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rLat1)*math.Cos(rLat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// CoordinateResolver answers coordinate pairs itself and hands anything else
// (addresses, place names) to next. next may be nil.
type CoordinateResolver struct {
	next Resolver
}

func NewCoordinateResolver(next Resolver) *CoordinateResolver {
	return &CoordinateResolver{next: next}
}

func (r *CoordinateResolver) Resolve(ctx context.Context, origin, destination string) (Route, error) {
	from, okFrom := ParseCoordinate(origin)
	to, okTo := ParseCoordinate(destination)
	if okFrom && okTo {
		km := HaversineKm(from, to)
		return Route{
			DistanceKm:  km,
			DurationMin: km / straightLineKmh * 60,
			Summary:     fmt.Sprintf("straight line %.2f km", km),
		}, nil
	}
	if r.next == nil {
		return Route{}, ErrRouteUnavailable
	}
	return r.next.Resolve(ctx, origin, destination)
}
