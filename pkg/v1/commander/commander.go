package commander

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MichalMitros/etsy-listing-publisher/internal/platform/models"
)

//go:generate mockery --name Sender --filename sender.go

// Sender sends messages.
type Sender interface {
	Send(context.Context, []byte) error
}

// PublishCommand is command to publish articles as Etsy listings.
type PublishCommand struct {
	Articles []models.Article `json:"articles"`
}

// PublishCommander sends publish commands.
type PublishCommander struct {
	sender Sender
}

// NewPublishCommander returns new PublishCommander using provided sender for sending messages.
func NewPublishCommander(sender Sender) PublishCommander {
	return PublishCommander{
		sender: sender,
	}
}

// SendPublishCommand sends publish command with provided articles.
func (c PublishCommander) SendPublishCommand(ctx context.Context, articles []models.Article) error {
	cmd := PublishCommand{
		Articles: articles,
	}

	cmdMsg, err := json.Marshal(cmd)
	if err != nil {
		return fmt.Errorf("can't marshal publish command: %w", err)
	}

	return c.sender.Send(ctx, cmdMsg)
}
