// Package tools holds the capability manifest, the argument normalizer,
// and the dispatcher that turns a model tool call into one travel
// search invocation.
package tools

import (
	"fmt"
	"time"
)

// Capability names the chat model may invoke.
const (
	CapFindFlights    = "find_flights"
	CapGetHotels      = "get_hotels"
	CapBuildItinerary = "build_itinerary"
)

// ParamType is the primitive type of a capability parameter.
type ParamType string

const (
	TypeString  ParamType = "string"
	TypeInteger ParamType = "integer"
	TypeNumber  ParamType = "number"
)

// Param describes one capability parameter.
type Param struct {
	Name        string
	Type        ParamType
	Description string
	Required    bool
}

// Capability describes one invocable operation for the chat model.
type Capability struct {
	Name        string
	Description string
	Params      []Param
}

// Manifest returns the fixed set of capabilities exposed to the chat
// model. Declared once at startup and never mutated; callers get a
// fresh slice.
func Manifest() []Capability {
	return []Capability{
		{
			Name:        CapFindFlights,
			Description: "Searches for available flights between two locations.",
			Params: []Param{
				{Name: "origin", Type: TypeString, Description: "Starting city or airport.", Required: true},
				{Name: "destination", Type: TypeString, Description: "Destination city or airport.", Required: true},
				{Name: "departure_date", Type: TypeString, Description: "Departure date in YYYY-MM-DD format.", Required: true},
				{Name: "return_date", Type: TypeString, Description: "Return date in YYYY-MM-DD format for round trips."},
				{Name: "adults", Type: TypeInteger, Description: "Number of adult travelers."},
			},
		},
		{
			Name:        CapGetHotels,
			Description: "Searches for hotels in a location.",
			Params: []Param{
				{Name: "destination", Type: TypeString, Description: "The city or area to search for hotels.", Required: true},
				{Name: "max_results", Type: TypeInteger, Description: "Maximum hotels to return."},
				{Name: "min_rating", Type: TypeNumber, Description: "Minimum rating to include."},
			},
		},
		{
			Name:        CapBuildItinerary,
			Description: "Finds attractions, restaurants, and points of interest for a multi-day visit.",
			Params: []Param{
				{Name: "city", Type: TypeString, Description: "The city to build an itinerary for.", Required: true},
				{Name: "days", Type: TypeInteger, Description: "Number of days to plan.", Required: true},
			},
		},
	}
}

// SystemInstruction is the behavioral prompt handed to the chat model
// alongside the manifest.
func SystemInstruction(now time.Time) string {
	return fmt.Sprintf(
		"You are a helpful and efficient AI trip planner assistant. "+
			"Format outputs clearly. Use find_flights, get_hotels, or build_itinerary "+
			"to fetch information and summarize results for the user. "+
			"Today's date is %s. Always format dates as YYYY-MM-DD.",
		now.Format("2006-01-02"),
	)
}
