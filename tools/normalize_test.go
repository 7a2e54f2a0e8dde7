package tools

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/destinai/destinai/travel"
)

var normalizeNow = time.Date(2025, 2, 10, 15, 30, 0, 0, time.UTC)

func TestNormalizeFlightArgs(t *testing.T) {
	t.Run("DepartureDefaultsToTomorrow", func(t *testing.T) {
		q, err := NormalizeFlightArgs(map[string]interface{}{
			"origin":      "Delhi",
			"destination": "Goa",
		}, normalizeNow)
		require.NoError(t, err)
		assert.Equal(t, "2025-02-11", q.DepartureDate)
		assert.Equal(t, travel.TripOneWay, q.TripType)
		assert.Empty(t, q.ReturnDate)
	})

	t.Run("ReturnDateAbsentMeansOneWay", func(t *testing.T) {
		q, err := NormalizeFlightArgs(map[string]interface{}{
			"origin":         "Delhi",
			"destination":    "Goa",
			"departure_date": "2025-03-01",
		}, normalizeNow)
		require.NoError(t, err)
		assert.Equal(t, travel.TripOneWay, q.TripType)
		assert.Empty(t, q.ReturnDate)
	})

	t.Run("ReturnDateNullMeansRoundTripDayAfter", func(t *testing.T) {
		q, err := NormalizeFlightArgs(map[string]interface{}{
			"origin":         "Delhi",
			"destination":    "Goa",
			"departure_date": "2025-03-01",
			"return_date":    nil,
		}, normalizeNow)
		require.NoError(t, err)
		assert.Equal(t, travel.TripRoundTrip, q.TripType)
		assert.Equal(t, "2025-03-02", q.ReturnDate)
	})

	t.Run("ReturnDateEmptyStringTreatedAsNull", func(t *testing.T) {
		q, err := NormalizeFlightArgs(map[string]interface{}{
			"origin":         "Delhi",
			"destination":    "Goa",
			"departure_date": "2025-03-01",
			"return_date":    "",
		}, normalizeNow)
		require.NoError(t, err)
		assert.Equal(t, travel.TripRoundTrip, q.TripType)
		assert.Equal(t, "2025-03-02", q.ReturnDate)
	})

	t.Run("ExplicitReturnDateKept", func(t *testing.T) {
		q, err := NormalizeFlightArgs(map[string]interface{}{
			"origin":         "Delhi",
			"destination":    "Goa",
			"departure_date": "2025-03-01",
			"return_date":    "2025-03-08",
		}, normalizeNow)
		require.NoError(t, err)
		assert.Equal(t, travel.TripRoundTrip, q.TripType)
		assert.Equal(t, "2025-03-08", q.ReturnDate)
	})

	t.Run("ReturnDefaultFromDefaultedDeparture", func(t *testing.T) {
		q, err := NormalizeFlightArgs(map[string]interface{}{
			"origin":      "Delhi",
			"destination": "Goa",
			"return_date": nil,
		}, normalizeNow)
		require.NoError(t, err)
		assert.Equal(t, "2025-02-11", q.DepartureDate)
		assert.Equal(t, "2025-02-12", q.ReturnDate)
	})

	t.Run("UnparsableDepartureFailsReturnDefault", func(t *testing.T) {
		_, err := NormalizeFlightArgs(map[string]interface{}{
			"origin":         "Delhi",
			"destination":    "Goa",
			"departure_date": "next friday",
			"return_date":    nil,
		}, normalizeNow)
		var invalid *InvalidArgumentError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, "departure_date", invalid.Field)
	})

	t.Run("AdultsDefaultsToOne", func(t *testing.T) {
		q, err := NormalizeFlightArgs(map[string]interface{}{
			"origin":      "Delhi",
			"destination": "Goa",
		}, normalizeNow)
		require.NoError(t, err)
		assert.Equal(t, 1, q.Adults)
	})

	t.Run("AdultsCoercedFromJSONNumber", func(t *testing.T) {
		q, err := NormalizeFlightArgs(map[string]interface{}{
			"origin":      "Delhi",
			"destination": "Goa",
			"adults":      float64(3),
		}, normalizeNow)
		require.NoError(t, err)
		assert.Equal(t, 3, q.Adults)
	})

	t.Run("AdultsMustBePositive", func(t *testing.T) {
		_, err := NormalizeFlightArgs(map[string]interface{}{
			"origin":      "Delhi",
			"destination": "Goa",
			"adults":      float64(0),
		}, normalizeNow)
		var invalid *InvalidArgumentError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, "adults", invalid.Field)
	})

	t.Run("MissingOrigin", func(t *testing.T) {
		_, err := NormalizeFlightArgs(map[string]interface{}{
			"destination": "Goa",
		}, normalizeNow)
		var missing *MissingArgumentError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "origin", missing.Field)
	})

	t.Run("EmptyDestinationIsMissing", func(t *testing.T) {
		_, err := NormalizeFlightArgs(map[string]interface{}{
			"origin":      "Delhi",
			"destination": "",
		}, normalizeNow)
		var missing *MissingArgumentError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "destination", missing.Field)
	})
}

func TestNormalizeHotelArgs(t *testing.T) {
	t.Run("MaxResultsDefaulted", func(t *testing.T) {
		q, err := NormalizeHotelArgs(map[string]interface{}{"destination": "Paris"}, 5)
		require.NoError(t, err)
		assert.Equal(t, 5, q.MaxResults)
	})

	t.Run("OmittedMinRatingStaysAbsent", func(t *testing.T) {
		q, err := NormalizeHotelArgs(map[string]interface{}{"destination": "Paris"}, 5)
		require.NoError(t, err)
		assert.Nil(t, q.MinRating)

		// The wire body must not contain a min_rating key at all.
		body, err := json.Marshal(q)
		require.NoError(t, err)
		assert.NotContains(t, string(body), "min_rating")
	})

	t.Run("NullMinRatingStripped", func(t *testing.T) {
		q, err := NormalizeHotelArgs(map[string]interface{}{
			"destination": "Paris",
			"min_rating":  nil,
		}, 5)
		require.NoError(t, err)
		assert.Nil(t, q.MinRating)
	})

	t.Run("ExplicitMinRatingForwarded", func(t *testing.T) {
		q, err := NormalizeHotelArgs(map[string]interface{}{
			"destination": "Paris",
			"min_rating":  4.5,
		}, 5)
		require.NoError(t, err)
		require.NotNil(t, q.MinRating)
		assert.Equal(t, 4.5, *q.MinRating)
	})

	t.Run("ExplicitZeroMinRatingForwarded", func(t *testing.T) {
		// Zero is a real filter when the model asks for it; only
		// omission means no filtering.
		q, err := NormalizeHotelArgs(map[string]interface{}{
			"destination": "Paris",
			"min_rating":  float64(0),
		}, 5)
		require.NoError(t, err)
		require.NotNil(t, q.MinRating)
		assert.Equal(t, 0.0, *q.MinRating)
	})

	t.Run("MissingDestination", func(t *testing.T) {
		_, err := NormalizeHotelArgs(map[string]interface{}{}, 5)
		var missing *MissingArgumentError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "destination", missing.Field)
	})
}

func TestNormalizeItineraryArgs(t *testing.T) {
	t.Run("DaysCoercedAndClamped", func(t *testing.T) {
		tests := []struct {
			name string
			days interface{}
			want int
		}{
			{"Float", float64(3), 3},
			{"String", "4", 4},
			{"Zero clamps", float64(0), 1},
			{"Negative clamps", float64(-2), 1},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				q, err := NormalizeItineraryArgs(map[string]interface{}{
					"city": "Rome",
					"days": tt.days,
				})
				require.NoError(t, err)
				assert.Equal(t, tt.want, q.Days)
			})
		}
	})

	t.Run("MissingDays", func(t *testing.T) {
		_, err := NormalizeItineraryArgs(map[string]interface{}{"city": "Rome"})
		var missing *MissingArgumentError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "days", missing.Field)
	})

	t.Run("NonIntegerDays", func(t *testing.T) {
		_, err := NormalizeItineraryArgs(map[string]interface{}{
			"city": "Rome",
			"days": "a few",
		})
		var invalid *InvalidArgumentError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, "days", invalid.Field)
	})
}
