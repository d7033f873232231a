package handler

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MichalMitros/etsy-listing-publisher/internal/platform/models"
	"github.com/MichalMitros/etsy-listing-publisher/internal/platform/rabbitmq"
	"github.com/MichalMitros/etsy-listing-publisher/pkg/v1/commander"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Publisher publishes articles as Etsy listings.
type Publisher interface {
	Publish(ctx context.Context, article models.Article) error
}

// RMQHandler handles RMQ messages.
type RMQHandler struct {
	rmq         *rabbitmq.RabbitMQ
	publisher   Publisher
	concurrency int
	logger      *zerolog.Logger
}

// NewHandler returns new RMQHandler. Concurrency limits how many articles
// from a single command are published at the same time.
func NewHandler(rmq *rabbitmq.RabbitMQ, publisher Publisher, concurrency int, logger *zerolog.Logger) *RMQHandler {
	return &RMQHandler{
		rmq:         rmq,
		publisher:   publisher,
		concurrency: concurrency,
		logger:      logger,
	}
}

// Start starts consuming and handling publish commands from RMQ.
// Articles which fail to publish are logged and skipped, the command
// message is acknowledged anyway because publications are not retried.
func (h *RMQHandler) Start(ctx context.Context, queue string) error {
	errorsChan, err := h.rmq.Consume(ctx, queue, func(ctx context.Context, message []byte) error {
		cmd, err := decodeMessage(message)
		if err != nil {
			return err
		}

		h.logger.Debug().
			Int("articles", len(cmd.Articles)).
			Msg("publication started")

		h.publishArticles(ctx, cmd.Articles)

		h.logger.Debug().
			Int("articles", len(cmd.Articles)).
			Msg("publication finished")

		return nil
	})
	if err != nil {
		return err
	}

	go func() {
		for err := range errorsChan {
			h.logger.Error().
				Err(err).
				Msg("can't handle message")
		}
	}()

	return nil
}

func (h *RMQHandler) publishArticles(ctx context.Context, articles []models.Article) {
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(h.concurrency)

	for _, article := range articles {
		article := article
		group.Go(func() error {
			if err := h.publisher.Publish(groupCtx, article); err != nil {
				h.logger.Error().
					Err(err).
					Int64("itemId", article.ItemID).
					Msg("can't publish article")
			}
			return nil
		})
	}

	_ = group.Wait()
}

func decodeMessage(msg []byte) (*commander.PublishCommand, error) {
	var cmd commander.PublishCommand
	err := json.Unmarshal(msg, &cmd)
	if err != nil {
		return nil, fmt.Errorf("can't decode publish command: %w", err)
	}

	return &cmd, err
}
