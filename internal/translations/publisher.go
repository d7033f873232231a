package translations

import (
	"context"
	"strings"

	"github.com/MichalMitros/etsy-listing-publisher/internal/listing"
	"github.com/MichalMitros/etsy-listing-publisher/internal/platform/etsy"
	"github.com/MichalMitros/etsy-listing-publisher/internal/platform/models"
	"github.com/MichalMitros/etsy-listing-publisher/internal/platform/settings"
	"github.com/rs/zerolog"
)

//go:generate mockery --name Client --filename client.go

// Client pushes listing translations to the marketplace.
type Client interface {
	CreateListingTranslation(ctx context.Context, listingID int64, language string, payload etsy.TranslationPayload) error
}

// Publisher pushes article texts for all export languages except the main one.
// Translations are best-effort: a failed language is logged and never fails
// the publication or other languages.
type Publisher struct {
	client Client
	logger *zerolog.Logger
}

// NewPublisher returns new Publisher.
func NewPublisher(client Client, logger *zerolog.Logger) Publisher {
	return Publisher{
		client: client,
		logger: logger,
	}
}

// Publish pushes one translation per configured export language. Languages
// without a title or with an empty stripped description are skipped silently.
func (p Publisher) Publish(ctx context.Context, listingID int64, article *models.Article, snapshot settings.Snapshot) {
	for _, language := range snapshot.ExportLanguages {
		if language == snapshot.MainLanguage {
			continue
		}

		text, ok := article.Text(language)
		if !ok || text.Title == "" || strings.TrimSpace(listing.StripDescription(text.Description)) == "" {
			continue
		}

		payload := etsy.TranslationPayload{
			Title:       listing.NormalizeTitle(text.Title),
			Description: listing.StripDescription(text.Description + snapshot.Legal(language)),
			Tags:        listing.JoinTags(article.Tags),
		}

		if err := p.client.CreateListingTranslation(ctx, listingID, language, payload); err != nil {
			p.logger.Error().
				Err(err).
				Int64("etsyListingId", listingID).
				Str("etsyLanguage", language).
				Msg("can't create listing translation")
		}
	}
}
