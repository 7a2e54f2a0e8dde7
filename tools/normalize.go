package tools

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/destinai/destinai/travel"
)

const dateLayout = "2006-01-02"

// NormalizeFlightArgs validates and defaults find_flights arguments.
//
// departure_date defaults to tomorrow relative to now. return_date is
// tri-state: a missing key means one-way, a key present with a null or
// empty value means round trip with the day after departure, and an
// explicit date is taken as given.
func NormalizeFlightArgs(args map[string]interface{}, now time.Time) (travel.FlightQuery, error) {
	var q travel.FlightQuery

	origin, err := requiredString(args, "origin")
	if err != nil {
		return q, err
	}
	destination, err := requiredString(args, "destination")
	if err != nil {
		return q, err
	}
	q.Origin = origin
	q.Destination = destination

	departure, ok := optionalString(args, "departure_date")
	if !ok {
		departure = now.AddDate(0, 0, 1).Format(dateLayout)
	}
	q.DepartureDate = departure

	q.TripType = travel.TripOneWay
	if raw, present := args["return_date"]; present {
		ret, ok := asString(raw)
		if ok && ret != "" {
			q.ReturnDate = ret
		} else {
			dep, err := time.Parse(dateLayout, departure)
			if err != nil {
				return q, &InvalidArgumentError{Field: "departure_date", Reason: fmt.Sprintf("cannot derive return date from %q", departure)}
			}
			q.ReturnDate = dep.AddDate(0, 0, 1).Format(dateLayout)
		}
		q.TripType = travel.TripRoundTrip
	}

	q.Adults = 1
	if raw, present := args["adults"]; present && raw != nil {
		adults, ok := asInt(raw)
		if !ok || adults < 1 {
			return q, &InvalidArgumentError{Field: "adults", Reason: "must be a positive integer"}
		}
		q.Adults = adults
	}

	return q, nil
}

// NormalizeHotelArgs validates and defaults get_hotels arguments.
// min_rating is only forwarded when the model explicitly provided it;
// an omitted rating means no filtering, never a filter at zero.
func NormalizeHotelArgs(args map[string]interface{}, defaultMaxResults int) (travel.HotelQuery, error) {
	var q travel.HotelQuery

	destination, err := requiredString(args, "destination")
	if err != nil {
		return q, err
	}
	q.Destination = destination

	q.MaxResults = defaultMaxResults
	if raw, present := args["max_results"]; present && raw != nil {
		max, ok := asInt(raw)
		if !ok || max < 1 {
			return q, &InvalidArgumentError{Field: "max_results", Reason: "must be a positive integer"}
		}
		q.MaxResults = max
	}

	if raw, present := args["min_rating"]; present && raw != nil {
		rating, ok := asFloat(raw)
		if !ok {
			return q, &InvalidArgumentError{Field: "min_rating", Reason: "must be a number"}
		}
		q.MinRating = &rating
	}

	return q, nil
}

// NormalizeItineraryArgs validates build_itinerary arguments. days is
// coerced to an integer and clamped to a minimum of 1; unknown and null
// keys are dropped by construction.
func NormalizeItineraryArgs(args map[string]interface{}) (travel.ItineraryQuery, error) {
	var q travel.ItineraryQuery

	city, err := requiredString(args, "city")
	if err != nil {
		return q, err
	}
	q.City = city

	raw, present := args["days"]
	if !present || raw == nil {
		return q, &MissingArgumentError{Field: "days"}
	}
	days, ok := asInt(raw)
	if !ok {
		return q, &InvalidArgumentError{Field: "days", Reason: "must be an integer"}
	}
	if days < 1 {
		days = 1
	}
	q.Days = days

	return q, nil
}

func requiredString(args map[string]interface{}, key string) (string, error) {
	s, ok := optionalString(args, key)
	if !ok {
		return "", &MissingArgumentError{Field: key}
	}
	return s, nil
}

// optionalString reports false for a missing key, a null value, and an
// empty string alike.
func optionalString(args map[string]interface{}, key string) (string, bool) {
	raw, present := args[key]
	if !present || raw == nil {
		return "", false
	}
	s, ok := asString(raw)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

func asString(raw interface{}) (string, bool) {
	s, ok := raw.(string)
	return s, ok
}

// asInt coerces the loosely typed values tool-call arguments arrive as:
// JSON numbers decode to float64, and some models quote integers.
func asInt(raw interface{}) (int, bool) {
	switch v := raw.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		if v != math.Trunc(v) {
			return 0, false
		}
		return int(v), true
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, false
		}
		return int(n), true
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

func asFloat(raw interface{}) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
