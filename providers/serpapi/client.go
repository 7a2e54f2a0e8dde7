// Package serpapi wraps the SerpAPI TripAdvisor engine for hotel and
// point-of-interest searches.
package serpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/destinai/destinai/travel"
)

const defaultBaseURL = "https://serpapi.com/search.json"

// Search sources understood by the TripAdvisor engine.
const (
	sourceHotels      = "h"
	sourceAttractions = "A"
	sourceRestaurants = "r"
)

// Client is the SerpAPI client.
type Client struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

// NewClient creates a SerpAPI client.
func NewClient(apiKey string, timeout time.Duration) *Client {
	return &Client{
		BaseURL:    defaultBaseURL,
		APIKey:     apiKey,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// flexFloat tolerates ratings arriving as numbers, quoted numbers, or
// null across TripAdvisor result variants.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*f = 0
		return nil
	}
	s := strings.Trim(string(data), `"`)
	if s == "" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		*f = 0
		return nil
	}
	*f = flexFloat(v)
	return nil
}

// location is one TripAdvisor result row.
type location struct {
	Title       string    `json:"title"`
	Rating      flexFloat `json:"rating"`
	Reviews     flexFloat `json:"reviews"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	Link        string    `json:"link"`
}

// searchResponse covers both shapes TripAdvisor responses come in.
type searchResponse struct {
	Locations    []location `json:"locations"`
	LocalResults []location `json:"local_results"`
}

func (r *searchResponse) rows() []location {
	if len(r.Locations) > 0 {
		return r.Locations
	}
	return r.LocalResults
}

// SearchHotels returns hotels for a city.
func (c *Client) SearchHotels(ctx context.Context, city string, limit int) ([]travel.Hotel, error) {
	rows, err := c.search(ctx, city, sourceHotels, limit)
	if err != nil {
		return nil, err
	}
	hotels := make([]travel.Hotel, 0, len(rows))
	for _, row := range rows {
		hotels = append(hotels, travel.Hotel{
			Name:        row.Title,
			Rating:      float64(row.Rating),
			Reviews:     int(row.Reviews),
			Location:    row.Location,
			Description: row.Description,
			Link:        row.Link,
		})
		if limit > 0 && len(hotels) >= limit {
			break
		}
	}
	return hotels, nil
}

// SearchAttractions returns things to do in a city.
func (c *Client) SearchAttractions(ctx context.Context, city string, limit int) ([]travel.Place, error) {
	return c.searchPlaces(ctx, city, sourceAttractions, limit)
}

// SearchRestaurants returns restaurants in a city.
func (c *Client) SearchRestaurants(ctx context.Context, city string, limit int) ([]travel.Place, error) {
	return c.searchPlaces(ctx, city, sourceRestaurants, limit)
}

func (c *Client) searchPlaces(ctx context.Context, city, source string, limit int) ([]travel.Place, error) {
	rows, err := c.search(ctx, city, source, limit)
	if err != nil {
		return nil, err
	}
	places := make([]travel.Place, 0, len(rows))
	for _, row := range rows {
		places = append(places, travel.Place{
			Title:       row.Title,
			Rating:      float64(row.Rating),
			Reviews:     int(row.Reviews),
			Address:     row.Location,
			Description: row.Description,
			Link:        row.Link,
		})
		if limit > 0 && len(places) >= limit {
			break
		}
	}
	return places, nil
}

func (c *Client) search(ctx context.Context, query, source string, limit int) ([]location, error) {
	params := url.Values{}
	params.Set("engine", "tripadvisor")
	params.Set("q", query)
	params.Set("ssrc", source)
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	params.Set("api_key", c.APIKey)

	endpoint := fmt.Sprintf("%s?%s", c.BaseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("serpapi request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("serpapi returned status %d", resp.StatusCode)
	}

	var result searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode serpapi response: %w", err)
	}
	return result.rows(), nil
}
