// Package travel defines the travel search service wire contract and an
// HTTP client for it. The same types are served by the in-process search
// handlers and consumed by the tool dispatcher.
package travel

// Trip types derived during argument normalization. A flight search is
// ROUNDTRIP exactly when a return date is set.
const (
	TripOneWay    = "ONEWAY"
	TripRoundTrip = "ROUNDTRIP"
)

// FlightQuery is the body of POST /find_flights.
type FlightQuery struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureDate string `json:"departure_date"`
	ReturnDate    string `json:"return_date,omitempty"`
	Adults        int    `json:"adults,omitempty"`

	// TripType is derived from ReturnDate and not sent on the wire.
	TripType string `json:"-"`
}

// Flight is one flattened fare row.
type Flight struct {
	DepartTime   string  `json:"depart_time"`
	ArriveTime   string  `json:"arrive_time"`
	Airline      string  `json:"airline"`
	FlightNumber string  `json:"flightnum"`
	Price        float64 `json:"flight_cost"`
}

// FlightResults is the response of POST /find_flights.
type FlightResults struct {
	Flights []Flight `json:"flights"`
}

// HotelQuery is the body of POST /find_hotels. MinRating is a pointer
// on purpose: an omitted rating means "no filtering", which is not the
// same as filtering at zero, so the key must stay absent when unset.
type HotelQuery struct {
	Destination string   `json:"destination"`
	MaxResults  int      `json:"max_results,omitempty"`
	MinRating   *float64 `json:"min_rating,omitempty"`
}

// Hotel is one hotel row.
type Hotel struct {
	Name        string  `json:"name"`
	Rating      float64 `json:"rating"`
	Reviews     int     `json:"reviews,omitempty"`
	Location    string  `json:"location,omitempty"`
	Description string  `json:"description,omitempty"`
	Link        string  `json:"link,omitempty"`
}

// HotelResults is the response of POST /find_hotels.
type HotelResults struct {
	Destination string  `json:"destination"`
	Hotels      []Hotel `json:"hotels"`
	Message     string  `json:"message,omitempty"`
}

// ItineraryQuery holds the query parameters of GET /find_places.
type ItineraryQuery struct {
	City             string `json:"city"`
	Days             int    `json:"days"`
	AttractionsLimit int    `json:"attractions_limit,omitempty"`
	RestaurantsLimit int    `json:"restaurants_limit,omitempty"`
}

// Place is a point of interest (attraction or restaurant).
type Place struct {
	Title       string  `json:"title"`
	Rating      float64 `json:"rating,omitempty"`
	Reviews     int     `json:"reviews,omitempty"`
	Address     string  `json:"address,omitempty"`
	Description string  `json:"description,omitempty"`
	Link        string  `json:"link,omitempty"`
}

// DayPlan groups one day's attractions with meal suggestions.
type DayPlan struct {
	Attractions []Place `json:"attractions"`
	Lunch       *Place  `json:"lunch_suggestion"`
	Dinner      *Place  `json:"dinner_suggestion"`
}

// ItineraryPlan is the response of GET /find_places.
type ItineraryPlan struct {
	City string             `json:"city"`
	Days int                `json:"days"`
	Plan map[string]DayPlan `json:"plan"`
}
