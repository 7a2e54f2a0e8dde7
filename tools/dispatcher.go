package tools

import (
	"context"
	"fmt"
	"time"

	"github.com/destinai/destinai/agent"
	"github.com/destinai/destinai/log"
	"github.com/destinai/destinai/travel"
)

// SearchService is the travel search contract the dispatcher calls
// into. travel.Client implements it over HTTP.
type SearchService interface {
	SearchFlights(ctx context.Context, q travel.FlightQuery) (*travel.FlightResults, error)
	SearchHotels(ctx context.Context, q travel.HotelQuery) (*travel.HotelResults, error)
	SearchItinerary(ctx context.Context, q travel.ItineraryQuery) (*travel.ItineraryPlan, error)
}

type capabilityFunc func(ctx context.Context, args map[string]interface{}) (interface{}, error)

// Dispatcher maps a named tool call to its normalizer and search
// operation. Failures never escape Dispatch; they come back as
// ToolResults for the model to explain in natural language.
type Dispatcher struct {
	search          SearchService
	hotelMaxResults int
	table           map[string]capabilityFunc

	// Now is swappable in tests; departure date defaulting depends on it.
	Now func() time.Time
}

// NewDispatcher builds a Dispatcher over a search service. The hotel
// result default comes from configuration so call sites never restate
// the constant.
func NewDispatcher(search SearchService, hotelMaxResults int) *Dispatcher {
	d := &Dispatcher{
		search:          search,
		hotelMaxResults: hotelMaxResults,
		Now:             time.Now,
	}
	d.table = map[string]capabilityFunc{
		CapFindFlights:    d.findFlights,
		CapGetHotels:      d.getHotels,
		CapBuildItinerary: d.buildItinerary,
	}
	return d
}

// Dispatch executes one tool call and always returns a ToolResult.
func (d *Dispatcher) Dispatch(ctx context.Context, call agent.ToolCall) (result agent.ToolResult) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorf(ctx, "capability %q panicked: %v", call.Name, r)
			result = failure(call, fmt.Errorf("internal error: %v", r))
		}
	}()

	fn, ok := d.table[call.Name]
	if !ok {
		return failure(call, &UnknownCapabilityError{Name: call.Name})
	}

	log.Debugf(ctx, "dispatching %q with args %v", call.Name, call.Args)
	payload, err := fn(ctx, call.Args)
	if err != nil {
		return failure(call, err)
	}

	return agent.ToolResult{Name: call.Name, CallID: call.ID, OK: true, Payload: payload}
}

func (d *Dispatcher) findFlights(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	q, err := NormalizeFlightArgs(args, d.Now())
	if err != nil {
		return nil, err
	}
	res, err := d.search.SearchFlights(ctx, q)
	if err != nil {
		return nil, &UpstreamError{Capability: CapFindFlights, Err: err}
	}
	return res, nil
}

func (d *Dispatcher) getHotels(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	q, err := NormalizeHotelArgs(args, d.hotelMaxResults)
	if err != nil {
		return nil, err
	}
	res, err := d.search.SearchHotels(ctx, q)
	if err != nil {
		return nil, &UpstreamError{Capability: CapGetHotels, Err: err}
	}
	return res, nil
}

func (d *Dispatcher) buildItinerary(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	q, err := NormalizeItineraryArgs(args)
	if err != nil {
		return nil, err
	}
	res, err := d.search.SearchItinerary(ctx, q)
	if err != nil {
		return nil, &UpstreamError{Capability: CapBuildItinerary, Err: err}
	}
	return res, nil
}

func failure(call agent.ToolCall, err error) agent.ToolResult {
	return agent.ToolResult{Name: call.Name, CallID: call.ID, OK: false, Error: err.Error()}
}
