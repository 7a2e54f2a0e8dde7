// Package googlemaps provides a Google Places backed place finder, an
// alternative to the SerpAPI provider.
package googlemaps

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"

	"github.com/destinai/destinai/travel"
)

// Client handles Google Maps Places API requests.
type Client struct {
	MapsClient *maps.Client
}

// NewClient creates a new Google Maps client.
func NewClient(apiKey string) (*Client, error) {
	c, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &Client{MapsClient: c}, nil
}

// SearchHotels returns hotels in a city via Places text search.
func (c *Client) SearchHotels(ctx context.Context, city string, limit int) ([]travel.Hotel, error) {
	results, err := c.textSearch(ctx, "hotels in "+city)
	if err != nil {
		return nil, err
	}
	hotels := make([]travel.Hotel, 0, len(results))
	for _, r := range results {
		hotels = append(hotels, travel.Hotel{
			Name:     r.Name,
			Rating:   float64(r.Rating),
			Reviews:  r.UserRatingsTotal,
			Location: r.FormattedAddress,
			Link:     placeLink(r.PlaceID),
		})
		if limit > 0 && len(hotels) >= limit {
			break
		}
	}
	return hotels, nil
}

// SearchAttractions returns top attractions in a city.
func (c *Client) SearchAttractions(ctx context.Context, city string, limit int) ([]travel.Place, error) {
	return c.searchPlaces(ctx, "top attractions in "+city, limit)
}

// SearchRestaurants returns restaurants in a city.
func (c *Client) SearchRestaurants(ctx context.Context, city string, limit int) ([]travel.Place, error) {
	return c.searchPlaces(ctx, "restaurants in "+city, limit)
}

func (c *Client) searchPlaces(ctx context.Context, query string, limit int) ([]travel.Place, error) {
	results, err := c.textSearch(ctx, query)
	if err != nil {
		return nil, err
	}
	places := make([]travel.Place, 0, len(results))
	for _, r := range results {
		places = append(places, travel.Place{
			Title:   r.Name,
			Rating:  float64(r.Rating),
			Reviews: r.UserRatingsTotal,
			Address: r.FormattedAddress,
			Link:    placeLink(r.PlaceID),
		})
		if limit > 0 && len(places) >= limit {
			break
		}
	}
	return places, nil
}

func (c *Client) textSearch(ctx context.Context, query string) ([]maps.PlacesSearchResult, error) {
	resp, err := c.MapsClient.TextSearch(ctx, &maps.TextSearchRequest{Query: query})
	if err != nil {
		return nil, fmt.Errorf("places text search failed: %w", err)
	}
	return resp.Results, nil
}

func placeLink(placeID string) string {
	if placeID == "" {
		return ""
	}
	return "https://www.google.com/maps/place/?q=place_id:" + placeID
}
