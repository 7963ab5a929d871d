package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// APIConfig controls how the MBTA v3 API is reached. Durations are in
// milliseconds to keep the YAML flat.
type APIConfig struct {
	BaseURL    string `yaml:"baseURL" validate:"required,url"`
	TimeoutMS  int    `yaml:"timeoutMS" validate:"gte=0"`
	MaxRetries int    `yaml:"maxRetries" validate:"gte=0"`
	BackoffMS  int    `yaml:"backoffMS" validate:"gte=0"`
	// RouteTypes selects which GTFS route types count as subway.
	// 0 = light rail (Green Line), 1 = heavy rail (Red/Orange/Blue).
	RouteTypes []int `yaml:"routeTypes" validate:"required,min=1,dive,gte=0,lte=4"`
}

type AppConfig struct {
	API APIConfig `yaml:"api"`

	// APIKey comes from the MBTA_API_KEY environment variable, never
	// from the config file.
	APIKey string `yaml:"-"`
}

// ErrMissingAPIKey is returned when MBTA_API_KEY is not set.
var ErrMissingAPIKey = errors.New("MBTA_API_KEY is not set")

func defaults() AppConfig {
	return AppConfig{
		API: APIConfig{
			BaseURL:    "https://api-v3.mbta.com",
			TimeoutMS:  10000,
			MaxRetries: 3,
			BackoffMS:  300,
			RouteTypes: []int{0, 1},
		},
	}
}

// Load reads the application configuration. When path is empty a list
// of candidate locations is tried; a missing file falls back to the
// built-in defaults. The API key is read from the environment, with a
// .env file loaded first for local development.
func Load(path string) (*AppConfig, error) {
	cfg := defaults()

	paths := []string{"config.yml", "config.yaml"}
	if path != "" {
		paths = []string{path}
	}

	var data []byte
	var readErr error
	for _, p := range paths {
		data, readErr = os.ReadFile(p)
		if readErr == nil {
			break
		}
	}
	if readErr == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	} else if path != "" {
		// An explicitly requested file must exist.
		return nil, readErr
	}

	v := validator.New()
	if err := v.Struct(cfg.API); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	_ = godotenv.Load()
	cfg.APIKey = os.Getenv("MBTA_API_KEY")
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	return &cfg, nil
}
