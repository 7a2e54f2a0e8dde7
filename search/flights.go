package search

import (
	"context"
	"fmt"

	"github.com/destinai/destinai/log"
	"github.com/destinai/destinai/travel"
)

// FlightService resolves city names to airport codes and searches fares
// through the flight provider.
type FlightService struct {
	provider FlightProvider
}

// NewFlightService creates a FlightService.
func NewFlightService(provider FlightProvider) *FlightService {
	return &FlightService{provider: provider}
}

// SearchFlights resolves both endpoints and runs one fare search. The
// two location lookups plus the search are one logical operation from
// the caller's perspective.
func (s *FlightService) SearchFlights(ctx context.Context, q travel.FlightQuery) (*travel.FlightResults, error) {
	if q.Origin == "" || q.Destination == "" {
		return nil, fmt.Errorf("origin and destination are required")
	}
	if q.Adults < 1 {
		q.Adults = 1
	}
	if q.TripType == "" {
		q.TripType = travel.TripOneWay
		if q.ReturnDate != "" {
			q.TripType = travel.TripRoundTrip
		}
	}

	originCode, err := s.provider.LocateAirport(ctx, q.Origin)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve origin %q: %w", q.Origin, err)
	}
	destCode, err := s.provider.LocateAirport(ctx, q.Destination)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve destination %q: %w", q.Destination, err)
	}

	log.Debugf(ctx, "searching %s flights %s -> %s on %s", q.TripType, originCode, destCode, q.DepartureDate)
	flights, err := s.provider.SearchFlights(ctx, originCode, destCode, q)
	if err != nil {
		return nil, err
	}

	return &travel.FlightResults{Flights: flights}, nil
}
