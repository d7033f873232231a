package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MichalMitros/etsy-listing-publisher/cmd/publisher/config"
	"github.com/MichalMitros/etsy-listing-publisher/internal/currency"
	"github.com/MichalMitros/etsy-listing-publisher/internal/handler"
	"github.com/MichalMitros/etsy-listing-publisher/internal/images"
	"github.com/MichalMitros/etsy-listing-publisher/internal/inventory"
	"github.com/MichalMitros/etsy-listing-publisher/internal/listing"
	"github.com/MichalMitros/etsy-listing-publisher/internal/platform/etsy"
	"github.com/MichalMitros/etsy-listing-publisher/internal/platform/rabbitmq"
	"github.com/MichalMitros/etsy-listing-publisher/internal/platform/settings"
	"github.com/MichalMitros/etsy-listing-publisher/internal/platform/storage"
	"github.com/MichalMitros/etsy-listing-publisher/internal/publisher"
	"github.com/MichalMitros/etsy-listing-publisher/internal/translations"
	"github.com/MichalMitros/etsy-listing-publisher/internal/validator"
	"github.com/caarlos0/env/v6"
	_ "github.com/lib/pq"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	var cfg config.Config
	if err := env.Parse(&cfg); err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't parse env variables")
	}

	amqpConnection, err := amqp.Dial(cfg.RabbitMQ.URL)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't open RabbitMQ connection")
	}

	conn, err := rabbitmq.NewRabbitMQ(amqpConnection, cfg.RabbitMQ.Exchange)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't open RabbitMQ connection")
	}

	pgDB, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't open Postgres connection")
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}

	store := storage.NewPostgres(pgDB)
	etsyClient := etsy.NewClient(httpClient, cfg.Etsy.BaseURL, cfg.Etsy.APIKey)

	converter := currency.NewConverter(
		currency.NewCachedSource(
			redisClient,
			currency.NewHTTPSource(httpClient, cfg.ExchangeRates.URL),
			cfg.ExchangeRates.CacheTTL,
		),
	)

	pub := publisher.NewPublisher(
		validator.NewValidator(converter),
		listing.NewBuilder(&logger),
		inventory.NewFiller(etsyClient, store, converter, &logger),
		images.NewPublisher(etsyClient, store, &logger),
		translations.NewPublisher(etsyClient, &logger),
		etsyClient,
		store,
		settings.NewLoader(store),
		&logger,
	)

	han := handler.NewHandler(conn, pub, cfg.PublishConcurrency, &logger)

	// start consuming and handling messages
	err = han.Start(ctx, cfg.RabbitMQ.Queue)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't start consuming")
	}

	logger.Info().Msg("listing publisher up and running")

	// handle graceful shutdown and context cancellation
	termChan := make(chan os.Signal, 1)
	signal.Notify(termChan, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-termChan:
		cancel()
	case <-ctx.Done():
	}

	logger.Info().Msg("graceful shutdown start")

	// wait for consumer to finish
	<-conn.Done()

	// close connections
	wg := sync.WaitGroup{}
	wg.Add(3)

	go func() {
		defer wg.Done()
		if err := pgDB.Close(); err != nil {
			logger.Fatal().
				Err(err).
				Msg("can't close Postgres connection")
		}
	}()

	go func() {
		defer wg.Done()
		if err := redisClient.Close(); err != nil {
			logger.Fatal().
				Err(err).
				Msg("can't close Redis connection")
		}
	}()

	go func() {
		defer wg.Done()
		if err := amqpConnection.Close(); err != nil {
			logger.Fatal().
				Err(err).
				Msg("can't close RabbitMQ connection")
		}
	}()

	wg.Wait()

	logger.Info().Msg("graceful shutdown successful")
}
