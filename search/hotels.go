package search

import (
	"context"
	"fmt"

	"github.com/destinai/destinai/travel"
)

// fetchMultiplier over-fetches hotel candidates so a rating filter can
// still fill the requested result count.
const fetchMultiplier = 3

// HotelService searches hotels through the place finder and applies the
// caller's rating and count constraints.
type HotelService struct {
	places     PlaceFinder
	defaultMax int
}

// NewHotelService creates a HotelService. defaultMax is used when the
// query does not specify max_results.
func NewHotelService(places PlaceFinder, defaultMax int) *HotelService {
	return &HotelService{places: places, defaultMax: defaultMax}
}

// SearchHotels returns up to MaxResults hotels for the destination. A
// nil MinRating applies no rating filter at all; zero-rated entries are
// only dropped when the caller explicitly filters.
func (s *HotelService) SearchHotels(ctx context.Context, q travel.HotelQuery) (*travel.HotelResults, error) {
	if q.Destination == "" {
		return nil, fmt.Errorf("destination is required")
	}
	max := q.MaxResults
	if max < 1 {
		max = s.defaultMax
	}

	candidates, err := s.places.SearchHotels(ctx, q.Destination, max*fetchMultiplier)
	if err != nil {
		return nil, err
	}

	hotels := make([]travel.Hotel, 0, max)
	for _, h := range candidates {
		if q.MinRating != nil && h.Rating < *q.MinRating {
			continue
		}
		hotels = append(hotels, h)
		if len(hotels) >= max {
			break
		}
	}

	res := &travel.HotelResults{Destination: q.Destination, Hotels: hotels}
	if len(hotels) == 0 {
		res.Message = "No hotels matched the filters. Try lowering min_rating."
	}
	return res, nil
}
