// Package bootstrap wires configuration into providers, services, and
// the conversation orchestrator.
package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/destinai/destinai/agent"
	"github.com/destinai/destinai/config"
	"github.com/destinai/destinai/log"
	"github.com/destinai/destinai/providers/booking"
	"github.com/destinai/destinai/providers/gemini"
	"github.com/destinai/destinai/providers/googlemaps"
	"github.com/destinai/destinai/providers/openai"
	"github.com/destinai/destinai/providers/serpapi"
	"github.com/destinai/destinai/search"
	"github.com/destinai/destinai/tools"
	"github.com/destinai/destinai/travel"
)

// App holds the initialized components of the application
type App struct {
	Orchestrator *agent.Orchestrator
	Dispatcher   *tools.Dispatcher
	Flights      *search.FlightService
	Hotels       *search.HotelService
	Itinerary    *search.ItineraryService
}

// Setup initializes the application components based on the configuration
func Setup(ctx context.Context, cfg *config.Config) (*App, error) {
	manifest := tools.Manifest()
	// Evaluated on every model call so the prompt date tracks the clock.
	instruction := func() string { return tools.SystemInstruction(time.Now()) }

	// 1. Chat model plugin
	var model agent.ChatModel
	switch cfg.AI.Plugin {
	case "openai":
		log.Infof(ctx, "Using OpenAI plugin (model: %s)", cfg.AI.OpenAI.Model)
		c, err := openai.NewClient(cfg.AI.OpenAI.APIKey, cfg.AI.OpenAI.BaseURL, cfg.AI.OpenAI.Model, manifest, instruction)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize OpenAI client: %w", err)
		}
		model = c
	case "gemini", "":
		log.Infof(ctx, "Using Gemini plugin (model: %s)", cfg.AI.Gemini.Model)
		c, err := gemini.NewClient(ctx, cfg.AI.Gemini.APIKey, cfg.AI.Gemini.Model, manifest, instruction)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
		}
		model = c
	default:
		return nil, fmt.Errorf("unknown AI plugin: %s", cfg.AI.Plugin)
	}

	// 2. Place finder plugin
	var places search.PlaceFinder
	switch cfg.Places.Provider {
	case "googlemaps":
		log.Infof(ctx, "Using Google Maps place finder")
		c, err := googlemaps.NewClient(cfg.Places.GoogleMapsKey)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Google Maps client: %w", err)
		}
		places = c
	case "serpapi", "":
		log.Infof(ctx, "Using SerpAPI place finder")
		places = serpapi.NewClient(cfg.Places.SerpAPIKey, 30*time.Second)
	default:
		return nil, fmt.Errorf("unknown places provider: %s", cfg.Places.Provider)
	}

	// 3. Search services
	bookingClient := booking.NewClient(cfg.Booking.APIKey, 30*time.Second)
	flights := search.NewFlightService(bookingClient)
	hotels := search.NewHotelService(places, cfg.Hotels.DefaultMaxResults)
	itinerary := search.NewItineraryService(places)

	// 4. Dispatcher over the travel search REST contract
	timeout := time.Duration(cfg.Travel.TimeoutSeconds) * time.Second
	travelClient := travel.NewClient(cfg.Travel.BaseURL, timeout)
	dispatcher := tools.NewDispatcher(travelClient, cfg.Hotels.DefaultMaxResults)

	// 5. Orchestrator
	orchestrator := agent.NewOrchestrator(model, dispatcher)

	return &App{
		Orchestrator: orchestrator,
		Dispatcher:   dispatcher,
		Flights:      flights,
		Hotels:       hotels,
		Itinerary:    itinerary,
	}, nil
}
