package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/kvrsharma/shivaratri-event-forms/internal/utils"
)

type Environment string

const (
	EnvLocal      Environment = "local"
	EnvDev        Environment = "dev"
	EnvStage      Environment = "stage"
	EnvProduction Environment = "production"
)

type Config struct {
	App struct {
		Version  string      `env:"APP_VERSION" envDefault:"local"`
		Env      Environment `env:"APP_ENV" envDefault:"local"`
		Timezone string      `env:"APP_TIMEZONE" envDefault:"Asia/Kolkata"`
	}

	HTTP struct {
		Port string `env:"HTTP_SERVER_PORT" envDefault:"8080"`
		Host string `env:"HTTP_SERVER_HOST" envDefault:"localhost"`
	}

	Registry struct {
		URL    string `env:"REGISTRY_URL"`
		APIKey string `env:"REGISTRY_API_KEY"`
	}

	Places struct {
		URL          string        `env:"PLACES_URL"`
		APIKey       string        `env:"PLACES_API_KEY"`
		Country      string        `env:"PLACES_COUNTRY" envDefault:"in"`
		InitTimeout  time.Duration `env:"PLACES_INIT_TIMEOUT" envDefault:"10s"`
		PollInterval time.Duration `env:"PLACES_POLL_INTERVAL" envDefault:"100ms"`
	}

	Event struct {
		DatesString string `env:"EVENT_DATES" envDefault:"2026-02-15,2026-02-16"`
		Dates       []string
		UnitPrice   int `env:"EVENT_RUDRAKSHA_UNIT_PRICE" envDefault:"999"`
	}

	RabbitMQ struct {
		Enabled bool   `env:"RABBITMQ_ENABLED"`
		URL     string `env:"RABBITMQ_URL"`
		Queue   string `env:"RABBITMQ_QUEUE"`
	}

	Cache struct {
		Enabled          bool `env:"CACHE_ENABLED" envDefault:"true"`
		PlacesSize       int  `env:"CACHE_PLACES_SIZE" envDefault:"1000"`
		AvailabilitySize int  `env:"CACHE_AVAILABILITY_SIZE" envDefault:"64"`
	}
}

func NewConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	// Приведение окружения к нижнему регистру для унификации
	cfg.App.Env = Environment(strings.ToLower(string(cfg.App.Env)))

	// Слушатель остатков пишет только в кэш, без кэша он бесполезен
	if !cfg.Cache.Enabled {
		cfg.RabbitMQ.Enabled = false
	}

	// Разделение списка разрешенных дат события
	cfg.Event.Dates = []string{}
	for _, date := range strings.Split(cfg.Event.DatesString, ",") {
		date = strings.TrimSpace(date)
		if date == "" {
			continue
		}
		if !utils.IsValidDateKey(date) {
			return nil, fmt.Errorf("invalid event date %q, expected YYYY-MM-DD", date)
		}
		cfg.Event.Dates = append(cfg.Event.Dates, date)
	}
	cfg.Event.Dates = utils.SortDateKeys(cfg.Event.Dates)

	return cfg, nil
}

func (c *Config) IsLocal() bool {
	return c.App.Env == EnvLocal
}

func (c *Config) IsNotLocal() bool {
	return c.App.Env == EnvDev || c.App.Env == EnvStage || c.App.Env == EnvProduction
}
