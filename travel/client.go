package travel

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/destinai/destinai/log"
)

// Client calls the travel search REST service.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a travel search client with a bounded timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// SearchFlights performs POST /find_flights.
func (c *Client) SearchFlights(ctx context.Context, q FlightQuery) (*FlightResults, error) {
	var out FlightResults
	if err := c.post(ctx, "/find_flights", q, &out); err != nil {
		return nil, fmt.Errorf("flight search failed: %w", err)
	}
	return &out, nil
}

// SearchHotels performs POST /find_hotels.
func (c *Client) SearchHotels(ctx context.Context, q HotelQuery) (*HotelResults, error) {
	var out HotelResults
	if err := c.post(ctx, "/find_hotels", q, &out); err != nil {
		return nil, fmt.Errorf("hotel search failed: %w", err)
	}
	return &out, nil
}

// SearchItinerary performs GET /find_places.
func (c *Client) SearchItinerary(ctx context.Context, q ItineraryQuery) (*ItineraryPlan, error) {
	params := url.Values{}
	params.Set("city", q.City)
	params.Set("days", strconv.Itoa(q.Days))
	if q.AttractionsLimit > 0 {
		params.Set("attractions_limit", strconv.Itoa(q.AttractionsLimit))
	}
	if q.RestaurantsLimit > 0 {
		params.Set("restaurants_limit", strconv.Itoa(q.RestaurantsLimit))
	}

	endpoint := fmt.Sprintf("%s/find_places?%s", c.BaseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("itinerary search failed: %w", err)
	}

	var out ItineraryPlan
	if err := c.do(ctx, req, &out); err != nil {
		return nil, fmt.Errorf("itinerary search failed: %w", err)
	}
	return &out, nil
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewBuffer(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(ctx, req, out)
}

func (c *Client) do(ctx context.Context, req *http.Request, out interface{}) error {
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		log.Errorf(ctx, "travel service request failed: %v", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("travel service returned status %d: %s", resp.StatusCode, snippet)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
