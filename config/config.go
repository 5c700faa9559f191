package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config is loaded in three layers: yaml file, .env file, process
// environment. Fields with envconfig defaults are environment-only; the
// yaml file carries the secrets and wiring that have no sane default.
type Config struct {
	AppName string `envconfig:"APP_NAME" default:"climax-api" yaml:"-"`
	AppEnv  string `envconfig:"APP_ENV" default:"development" yaml:"-"`
	Port    string `envconfig:"PORT" default:"8080" yaml:"-"`

	Weather  WeatherConfig  `yaml:"weather"`
	Database DatabaseConfig `yaml:"database"`
	Sentry   SentryConfig   `yaml:"sentry"`
}

type WeatherConfig struct {
	BaseURL      string `envconfig:"WEATHER_BASE_URL" default:"https://api.weatherapi.com/v1" yaml:"-"`
	APIKey       string `envconfig:"WEATHER_API_KEY" yaml:"api_key"`
	ForecastDays int    `envconfig:"WEATHER_FORECAST_DAYS" default:"4" yaml:"-"`
}

type DatabaseConfig struct {
	URL string `envconfig:"DATABASE_URL" yaml:"url"`
}

type SentryConfig struct {
	DSN   string `envconfig:"SENTRY_DSN" yaml:"dsn"`
	Debug bool   `envconfig:"SENTRY_DEBUG" yaml:"debug"`
}

func NewConfig(path string) (*Config, error) {
	var cnf Config

	if yamlData, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(yamlData, &cnf); err != nil {
			return nil, errors.Wrap(err, "failed to parse yaml config")
		}
	}

	// Best effort: a missing .env file is fine.
	_ = godotenv.Load()

	if err := envconfig.Process("", &cnf); err != nil {
		return nil, errors.Wrap(err, "failed to process environment variables")
	}

	return &cnf, nil
}
