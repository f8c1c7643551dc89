package config

import (
	"errors"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTP    HTTP
	Logger  Logger
	HubSpot HubSpot
	Kafka   Kafka
}

type HTTP struct {
	Port           int      `env:"PORT" envDefault:"10000"`
	APIKeyEnabled  bool     `env:"HTTP_API_KEY_ENABLED" envDefault:"false"`
	APIKey         string   `env:"HTTP_API_KEY" envDefault:""`
	AllowedOrigins []string `env:"HTTP_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
}

type Logger struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
}

type HubSpot struct {
	BaseURL string `env:"HUBSPOT_API" envDefault:"https://api.hubapi.com"`
	// Empty token is allowed: every CRM call then fails with 401.
	Token          string        `env:"HUBSPOT_TOKEN" envDefault:""`
	JobNumberField string        `env:"HUBSPOT_JOB_NUMBER_FIELD" envDefault:"kickserv_job_"`
	Pipeline       string        `env:"HUBSPOT_PIPELINE" envDefault:"default"`
	Timeout        time.Duration `env:"HUBSPOT_TIMEOUT" envDefault:"10s"`
	RetryAttempts  int           `env:"HUBSPOT_RETRY_ATTEMPTS" envDefault:"0"`
}

type Kafka struct {
	Enabled         bool     `env:"KAFKA_ENABLED" envDefault:"false"`
	Brokers         []string `env:"KAFKA_BROKERS" envDefault:"localhost:9092" envSeparator:","`
	DealSyncedTopic string   `env:"KAFKA_DEAL_SYNCED_TOPIC" envDefault:"deal-synced"`
}

func New(envPath string) (Config, error) {
	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	c, err := env.ParseAsWithOptions[Config](env.Options{
		RequiredIfNoDef: true,
	})
	if err != nil {
		return Config{}, err
	}

	return c, nil
}
