package booking

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/destinai/destinai/travel"
)

func newTestClient(srv *httptest.Server) *Client {
	c := NewClient("test-key", 5*time.Second)
	c.BaseURL = srv.URL
	return c
}

func TestLocateAirport(t *testing.T) {
	var gotHeader string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/flights/locations", r.URL.Path)
		require.Equal(t, "Goa", r.URL.Query().Get("name"))
		gotHeader = r.Header.Get("x-rapidapi-key")
		io.WriteString(w, `[
			{"type": "CITY", "code": "GOI.CITY", "name": "Goa"},
			{"type": "AIRPORT", "code": "GOI", "name": "Dabolim Airport"},
			{"type": "AIRPORT", "code": "GOX", "name": "Mopa Airport"}
		]`)
	}))
	defer srv.Close()

	code, err := newTestClient(srv).LocateAirport(context.Background(), "Goa")

	require.NoError(t, err)
	assert.Equal(t, "GOI", code, "first airport row wins")
	assert.Equal(t, "test-key", gotHeader)
}

func TestLocateAirport_NoAirportRows(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `[{"type": "CITY", "code": "ATL.CITY", "name": "Atlantis"}]`)
	}))
	defer srv.Close()

	_, err := newTestClient(srv).LocateAirport(context.Background(), "Atlantis")

	require.Error(t, err)
	assert.Contains(t, err.Error(), `no airport found for "Atlantis"`)
}

func TestSearchFlights(t *testing.T) {
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/flights/search", r.URL.Path)
		gotQuery = r.URL.Query()
		io.WriteString(w, `{"flightOffers": [{
			"segments": [{
				"departureTime": "2025-03-01T06:10:00",
				"arrivalTime": "2025-03-01T08:45:00",
				"legs": [{
					"carriersData": [{"name": "IndiGo"}],
					"flightInfo": {"flightNumber": 6123}
				}]
			}],
			"priceBreakdown": {"total": {"units": 4500}}
		}]}`)
	}))
	defer srv.Close()

	flights, err := newTestClient(srv).SearchFlights(context.Background(), "DEL", "GOI", travel.FlightQuery{
		DepartureDate: "2025-03-01",
		TripType:      travel.TripOneWay,
		Adults:        1,
	})

	require.NoError(t, err)
	require.Len(t, flights, 1)
	assert.Equal(t, "IndiGo", flights[0].Airline)
	assert.Equal(t, "6123", flights[0].FlightNumber)
	assert.Equal(t, "2025-03-01T06:10:00", flights[0].DepartTime)
	assert.Equal(t, float64(4500), flights[0].Price)

	assert.Equal(t, []string{"DEL"}, gotQuery["from_code"])
	assert.Equal(t, []string{"GOI"}, gotQuery["to_code"])
	assert.Equal(t, []string{"ONEWAY"}, gotQuery["flight_type"])
	assert.Equal(t, []string{"1"}, gotQuery["adults"])
	assert.NotContains(t, gotQuery, "return_date")
}

func TestSearchFlights_RoundTripSendsReturnDate(t *testing.T) {
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		io.WriteString(w, `{"flightOffers": []}`)
	}))
	defer srv.Close()

	flights, err := newTestClient(srv).SearchFlights(context.Background(), "DEL", "GOI", travel.FlightQuery{
		DepartureDate: "2025-03-01",
		ReturnDate:    "2025-03-05",
		TripType:      travel.TripRoundTrip,
		Adults:        2,
	})

	require.NoError(t, err)
	assert.Empty(t, flights)
	assert.Equal(t, []string{"2025-03-05"}, gotQuery["return_date"])
	assert.Equal(t, []string{"ROUNDTRIP"}, gotQuery["flight_type"])
}

func TestClient_Non200IsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	_, err := newTestClient(srv).LocateAirport(context.Background(), "Goa")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 403")
}
