// Package search implements the three travel search services behind the
// REST surface: flights, hotels, and multi-day itineraries. Services
// take provider interfaces; concrete upstream clients live under
// providers/.
package search

import (
	"context"

	"github.com/destinai/destinai/travel"
)

// FlightProvider resolves locations to airport codes and searches fares.
type FlightProvider interface {
	LocateAirport(ctx context.Context, name string) (string, error)
	SearchFlights(ctx context.Context, originCode, destCode string, q travel.FlightQuery) ([]travel.Flight, error)
}

// PlaceFinder searches hotels and points of interest for a city.
type PlaceFinder interface {
	SearchHotels(ctx context.Context, city string, limit int) ([]travel.Hotel, error)
	SearchAttractions(ctx context.Context, city string, limit int) ([]travel.Place, error)
	SearchRestaurants(ctx context.Context, city string, limit int) ([]travel.Place, error)
}
