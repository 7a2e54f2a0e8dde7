package search_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/destinai/destinai/search"
	"github.com/destinai/destinai/travel"
)

type fakePlaceFinder struct {
	hotels      []travel.Hotel
	attractions []travel.Place
	restaurants []travel.Place

	hotelsErr      error
	attractionsErr error
	restaurantsErr error

	gotHotelLimit int
}

func (f *fakePlaceFinder) SearchHotels(ctx context.Context, city string, limit int) ([]travel.Hotel, error) {
	f.gotHotelLimit = limit
	if f.hotelsErr != nil {
		return nil, f.hotelsErr
	}
	if limit < len(f.hotels) {
		return f.hotels[:limit], nil
	}
	return f.hotels, nil
}

func (f *fakePlaceFinder) SearchAttractions(ctx context.Context, city string, limit int) ([]travel.Place, error) {
	if f.attractionsErr != nil {
		return nil, f.attractionsErr
	}
	if limit < len(f.attractions) {
		return f.attractions[:limit], nil
	}
	return f.attractions, nil
}

func (f *fakePlaceFinder) SearchRestaurants(ctx context.Context, city string, limit int) ([]travel.Place, error) {
	if f.restaurantsErr != nil {
		return nil, f.restaurantsErr
	}
	if limit < len(f.restaurants) {
		return f.restaurants[:limit], nil
	}
	return f.restaurants, nil
}

func ratedHotels(ratings ...float64) []travel.Hotel {
	hotels := make([]travel.Hotel, len(ratings))
	for i, r := range ratings {
		hotels[i] = travel.Hotel{Name: fmt.Sprintf("Hotel %d", i+1), Rating: r}
	}
	return hotels
}

func TestHotelService_NoFilterWhenMinRatingUnset(t *testing.T) {
	finder := &fakePlaceFinder{hotels: ratedHotels(4.8, 0, 3.1)}
	svc := search.NewHotelService(finder, 5)

	res, err := svc.SearchHotels(context.Background(), travel.HotelQuery{Destination: "Paris"})

	require.NoError(t, err)
	// Unrated (zero) hotels survive when no filter was requested.
	assert.Len(t, res.Hotels, 3)
	assert.Empty(t, res.Message)
}

func TestHotelService_MinRatingFilters(t *testing.T) {
	finder := &fakePlaceFinder{hotels: ratedHotels(4.8, 4.5, 4.2, 3.9)}
	rating := 4.5
	svc := search.NewHotelService(finder, 5)

	res, err := svc.SearchHotels(context.Background(), travel.HotelQuery{
		Destination: "Paris",
		MinRating:   &rating,
	})

	require.NoError(t, err)
	require.Len(t, res.Hotels, 2)
	assert.Equal(t, 4.8, res.Hotels[0].Rating)
	assert.Equal(t, 4.5, res.Hotels[1].Rating, "boundary rating is kept")
}

func TestHotelService_CapsAtMaxResults(t *testing.T) {
	finder := &fakePlaceFinder{hotels: ratedHotels(5, 5, 5, 5, 5, 5, 5)}
	svc := search.NewHotelService(finder, 5)

	res, err := svc.SearchHotels(context.Background(), travel.HotelQuery{
		Destination: "Paris",
		MaxResults:  2,
	})

	require.NoError(t, err)
	assert.Len(t, res.Hotels, 2)
	assert.Equal(t, 2*3, finder.gotHotelLimit, "over-fetches to survive filtering")
}

func TestHotelService_DefaultMaxResults(t *testing.T) {
	finder := &fakePlaceFinder{hotels: ratedHotels(5, 5, 5, 5, 5, 5, 5)}
	svc := search.NewHotelService(finder, 5)

	res, err := svc.SearchHotels(context.Background(), travel.HotelQuery{Destination: "Paris"})

	require.NoError(t, err)
	assert.Len(t, res.Hotels, 5)
}

func TestHotelService_EmptyResultCarriesMessage(t *testing.T) {
	finder := &fakePlaceFinder{hotels: ratedHotels(3.0, 2.5)}
	rating := 4.5
	svc := search.NewHotelService(finder, 5)

	res, err := svc.SearchHotels(context.Background(), travel.HotelQuery{
		Destination: "Paris",
		MinRating:   &rating,
	})

	require.NoError(t, err)
	assert.Empty(t, res.Hotels)
	assert.Contains(t, res.Message, "min_rating")
}

func TestHotelService_RequiresDestination(t *testing.T) {
	svc := search.NewHotelService(&fakePlaceFinder{}, 5)

	_, err := svc.SearchHotels(context.Background(), travel.HotelQuery{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "destination is required")
}

func TestHotelService_FinderErrorPropagates(t *testing.T) {
	finder := &fakePlaceFinder{hotelsErr: fmt.Errorf("quota exceeded")}
	svc := search.NewHotelService(finder, 5)

	_, err := svc.SearchHotels(context.Background(), travel.HotelQuery{Destination: "Paris"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}
