// Package booking wraps the booking.com flight endpoints exposed
// through RapidAPI.
package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/destinai/destinai/log"
	"github.com/destinai/destinai/travel"
)

const (
	defaultBaseURL = "https://booking-com.p.rapidapi.com/v1"
	rapidAPIHost   = "booking-com.p.rapidapi.com"
)

// Client handles booking.com flight API requests.
type Client struct {
	BaseURL    string
	APIKey     string
	Currency   string
	HTTPClient *http.Client
}

// NewClient creates a booking.com API client.
func NewClient(apiKey string, timeout time.Duration) *Client {
	return &Client{
		BaseURL:    defaultBaseURL,
		APIKey:     apiKey,
		Currency:   "INR",
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// locationResult is one row of the flight locations endpoint.
type locationResult struct {
	Type string `json:"type"`
	Code string `json:"code"`
	Name string `json:"name"`
}

// LocateAirport resolves a city or airport name to its IATA code using
// the locations endpoint. The first AIRPORT row wins.
func (c *Client) LocateAirport(ctx context.Context, name string) (string, error) {
	params := url.Values{}
	params.Set("name", name)
	params.Set("locale", "en-gb")

	var results []locationResult
	if err := c.get(ctx, "/flights/locations", params, &results); err != nil {
		return "", err
	}

	for _, r := range results {
		if r.Type == "AIRPORT" && r.Code != "" {
			return r.Code, nil
		}
	}
	return "", fmt.Errorf("no airport found for %q", name)
}

// searchResponse mirrors the fields we consume from the flight search
// endpoint.
type searchResponse struct {
	FlightOffers []flightOffer `json:"flightOffers"`
}

type flightOffer struct {
	Segments       []segment `json:"segments"`
	PriceBreakdown struct {
		Total struct {
			Units float64 `json:"units"`
		} `json:"total"`
	} `json:"priceBreakdown"`
}

type segment struct {
	DepartureTime string `json:"departureTime"`
	ArrivalTime   string `json:"arrivalTime"`
	Legs          []leg  `json:"legs"`
}

type leg struct {
	CarriersData []struct {
		Name string `json:"name"`
	} `json:"carriersData"`
	FlightInfo struct {
		FlightNumber int `json:"flightNumber"`
	} `json:"flightInfo"`
}

// SearchFlights runs one fare search between two airport codes and
// flattens the offer segments into fare rows.
func (c *Client) SearchFlights(ctx context.Context, originCode, destCode string, q travel.FlightQuery) ([]travel.Flight, error) {
	params := url.Values{}
	params.Set("from_code", originCode)
	params.Set("to_code", destCode)
	params.Set("depart_date", q.DepartureDate)
	params.Set("flight_type", q.TripType)
	if q.ReturnDate != "" {
		params.Set("return_date", q.ReturnDate)
	}
	params.Set("order_by", "BEST")
	params.Set("cabin_class", "ECONOMY")
	params.Set("currency", c.Currency)
	params.Set("locale", "en-gb")
	params.Set("stops", "0")
	params.Set("adults", fmt.Sprintf("%d", q.Adults))

	var resp searchResponse
	if err := c.get(ctx, "/flights/search", params, &resp); err != nil {
		return nil, err
	}

	var flights []travel.Flight
	for _, offer := range resp.FlightOffers {
		for _, seg := range offer.Segments {
			f := travel.Flight{
				DepartTime: seg.DepartureTime,
				ArriveTime: seg.ArrivalTime,
				Price:      offer.PriceBreakdown.Total.Units,
			}
			for _, l := range seg.Legs {
				if len(l.CarriersData) > 0 {
					f.Airline = l.CarriersData[0].Name
				}
				if l.FlightInfo.FlightNumber != 0 {
					f.FlightNumber = fmt.Sprintf("%d", l.FlightInfo.FlightNumber)
				}
			}
			flights = append(flights, f)
		}
	}

	log.Debugf(ctx, "booking: %d fare rows for %s -> %s", len(flights), originCode, destCode)
	return flights, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	endpoint := fmt.Sprintf("%s%s?%s", c.BaseURL, path, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("x-rapidapi-key", c.APIKey)
	req.Header.Set("x-rapidapi-host", rapidAPIHost)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("booking API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("booking API returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode booking response: %w", err)
	}
	return nil
}
