package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// DefaultHotelMaxResults is the number of hotels returned when the model
// does not ask for a specific count. Every defaulting call site goes
// through Config.Hotels.DefaultMaxResults, which starts from this value.
const DefaultHotelMaxResults = 5

// Config aggregates all application configuration
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	AI      AIConfig      `yaml:"ai"`
	Travel  TravelConfig  `yaml:"travel"`
	Booking BookingConfig `yaml:"booking"`
	Places  PlacesConfig  `yaml:"places"`
	Hotels  HotelsConfig  `yaml:"hotels"`
}

type ServerConfig struct {
	Port string `yaml:"port" env:"PORT" env-default:"8000"`
}

type AIConfig struct {
	Plugin string       `yaml:"plugin" env:"AI_PLUGIN" env-default:"gemini"`
	Gemini GeminiConfig `yaml:"gemini"`
	OpenAI OpenAIConfig `yaml:"openai"`
}

type GeminiConfig struct {
	APIKey string `yaml:"api_key" env:"GEMINI_API_KEY"`
	Model  string `yaml:"model" env:"GEMINI_MODEL" env-default:"gemini-2.5-flash"`
}

type OpenAIConfig struct {
	APIKey  string `yaml:"api_key" env:"OPENAI_API_KEY"`
	BaseURL string `yaml:"base_url" env:"OPENAI_BASE_URL"`
	Model   string `yaml:"model" env:"OPENAI_MODEL" env-default:"gpt-4o-mini"`
}

// TravelConfig points the tool dispatcher at the travel search REST service
type TravelConfig struct {
	BaseURL        string `yaml:"base_url" env:"TRAVEL_BASE_URL" env-default:"http://127.0.0.1:8000"`
	TimeoutSeconds int    `yaml:"timeout_seconds" env:"TRAVEL_TIMEOUT_SECONDS" env-default:"30"`
}

type BookingConfig struct {
	APIKey string `yaml:"api_key" env:"BOOKING_API_KEY"`
}

type PlacesConfig struct {
	Provider      string `yaml:"provider" env:"PLACES_PROVIDER" env-default:"serpapi"`
	SerpAPIKey    string `yaml:"serpapi_key" env:"SERPAPI_KEY"`
	GoogleMapsKey string `yaml:"googlemaps_key" env:"GOOGLEMAPS_API_KEY"`
}

type HotelsConfig struct {
	// Zero means unset; Load fills in DefaultHotelMaxResults.
	DefaultMaxResults int `yaml:"default_max_results" env:"HOTEL_DEFAULT_MAX_RESULTS"`
}

// Load reads configuration from config.yaml and environment variables
// Priority: Env Vars > Config File > Defaults
func Load() (*Config, error) {
	var cfg Config

	err := cleanenv.ReadConfig("config.yaml", &cfg)
	if err != nil {
		// No config file; fall back to env vars and defaults
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to read env config: %w", err)
		}
	}

	if cfg.Hotels.DefaultMaxResults < 1 {
		cfg.Hotels.DefaultMaxResults = DefaultHotelMaxResults
	}

	return &cfg, nil
}
