package config

import "time"

// Config holds application configuration.
type Config struct {
	DatabaseURL        string        `env:"DATABASE_URL"`
	HTTPTimeout        time.Duration `env:"HTTP_TIMEOUT" envDefault:"10s"`
	PublishConcurrency int           `env:"PUBLISH_CONCURRENCY" envDefault:"4"`

	Etsy          Etsy
	ExchangeRates ExchangeRates
	RabbitMQ      RabbitMQ
	Redis         Redis
}

// Etsy holds Etsy API configuration.
type Etsy struct {
	BaseURL string `env:"ETSY_BASE_URL" envDefault:"https://openapi.etsy.com/v2"`
	APIKey  string `env:"ETSY_API_KEY"`
}

// ExchangeRates holds exchange rates service configuration.
type ExchangeRates struct {
	URL      string        `env:"EXCHANGE_RATES_URL"`
	CacheTTL time.Duration `env:"EXCHANGE_RATE_TTL" envDefault:"6h"`
}

// RabbitMQ holds RabbitMQ configuration.
type RabbitMQ struct {
	URL      string `env:"RABBITMQ_URL"`
	Exchange string `env:"RABBITMQ_EXCHANGE" envDefault:"elp-ex"`
	Queue    string `env:"RABBITMQ_QUEUE" envDefault:"etsy-listing-publisher.commands"`
}

// Redis holds Redis configuration.
type Redis struct {
	Addr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}
