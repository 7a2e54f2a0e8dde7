package search

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/destinai/destinai/log"
	"github.com/destinai/destinai/travel"
)

// Default fetch sizes for itinerary building.
const (
	DefaultAttractionsLimit = 60
	DefaultRestaurantsLimit = 30
)

// ItineraryService spreads a city's best-rated attractions over the
// requested number of days and pairs each day with meal suggestions.
type ItineraryService struct {
	places PlaceFinder
	caser  cases.Caser
}

// NewItineraryService creates an ItineraryService.
func NewItineraryService(places PlaceFinder) *ItineraryService {
	return &ItineraryService{
		places: places,
		caser:  cases.Title(language.English),
	}
}

// SearchItinerary builds the day-by-day plan. Days below 1 are clamped
// to a single day.
func (s *ItineraryService) SearchItinerary(ctx context.Context, q travel.ItineraryQuery) (*travel.ItineraryPlan, error) {
	if q.City == "" {
		return nil, fmt.Errorf("city is required")
	}
	days := q.Days
	if days < 1 {
		days = 1
	}
	attractionsLimit := q.AttractionsLimit
	if attractionsLimit < 1 {
		attractionsLimit = DefaultAttractionsLimit
	}
	restaurantsLimit := q.RestaurantsLimit
	if restaurantsLimit < 1 {
		restaurantsLimit = DefaultRestaurantsLimit
	}

	attractions, err := s.places.SearchAttractions(ctx, q.City, attractionsLimit)
	if err != nil {
		return nil, err
	}
	if len(attractions) == 0 {
		return nil, fmt.Errorf("no attractions found for %s", q.City)
	}

	restaurants, err := s.places.SearchRestaurants(ctx, q.City, restaurantsLimit)
	if err != nil {
		log.Warnf(ctx, "restaurant search failed for %s, planning without meals: %v", q.City, err)
		restaurants = nil
	}

	sortByScore(attractions)
	sortByScore(restaurants)

	// Ceiling split so every attraction lands on some day.
	perDay := (len(attractions) + days - 1) / days
	if perDay < 1 {
		perDay = 1
	}

	plan := make(map[string]travel.DayPlan, days)
	for i := 0; i < days; i++ {
		start := i * perDay
		if start > len(attractions) {
			start = len(attractions)
		}
		end := start + perDay
		if end > len(attractions) {
			end = len(attractions)
		}

		day := travel.DayPlan{Attractions: attractions[start:end]}
		if len(restaurants) > 0 {
			lunch := restaurants[(i*2)%len(restaurants)]
			dinner := restaurants[(i*2+1)%len(restaurants)]
			day.Lunch = &lunch
			day.Dinner = &dinner
		}
		plan[fmt.Sprintf("Day %d", i+1)] = day
	}

	return &travel.ItineraryPlan{
		City: s.caser.String(q.City),
		Days: days,
		Plan: plan,
	}, nil
}

// sortByScore orders places by rating, breaking ties on review count.
func sortByScore(places []travel.Place) {
	sort.SliceStable(places, func(i, j int) bool {
		if places[i].Rating != places[j].Rating {
			return places[i].Rating > places[j].Rating
		}
		return places[i].Reviews > places[j].Reviews
	})
}
