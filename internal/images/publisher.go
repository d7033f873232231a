package images

import (
	"context"
	"fmt"
	"sort"

	"github.com/MichalMitros/etsy-listing-publisher/internal/platform"
	"github.com/MichalMitros/etsy-listing-publisher/internal/platform/etsy"
	"github.com/MichalMitros/etsy-listing-publisher/internal/platform/models"
	"github.com/MichalMitros/etsy-listing-publisher/internal/platform/settings"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

// maxListingImages is the marketplace limit of images per listing.
const maxListingImages = 10

// allMarkets marks an image as available on every marketplace.
const allMarkets int64 = -1

//go:generate mockery --name Uploader --filename uploader.go
//go:generate mockery --name Store --filename store.go

// Uploader uploads single listing images.
type Uploader interface {
	UploadListingImage(ctx context.Context, listingID int64, imageURL string, position int) (*etsy.ListingImage, error)
}

// Store persists local-to-remote image id mappings.
type Store interface {
	SaveListingImages(ctx context.Context, listingID int64, images []models.ImageReference) error
}

// Publisher uploads article images to a listing.
type Publisher struct {
	uploader Uploader
	store    Store
	logger   *zerolog.Logger
}

// NewPublisher returns new Publisher.
func NewPublisher(uploader Uploader, store Store, logger *zerolog.Logger) Publisher {
	return Publisher{
		uploader: uploader,
		store:    store,
		logger:   logger,
	}
}

// Publish filters article images to the active marketplace, orders them by
// position, caps them to the marketplace limit and uploads them one by one.
// A single failed upload is logged and skipped, but a listing without any
// uploaded image fails the whole publication.
func (p Publisher) Publish(ctx context.Context, listingID int64, article *models.Article, snapshot settings.Snapshot) error {
	candidates := lo.Filter(article.Images, func(image models.Image, _ int) bool {
		return len(image.Availability) > 0 &&
			(image.Availability[0] == allMarkets || lo.Contains(image.Availability, snapshot.ReferrerID))
	})

	if len(candidates) == 0 {
		return platform.NewListingError("article has no images for this marketplace", nil, nil)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Position < candidates[j].Position
	})

	if len(candidates) > maxListingImages {
		candidates = candidates[:maxListingImages]
	}

	references := make([]models.ImageReference, 0, len(candidates))

	for _, image := range candidates {
		uploaded, err := p.uploader.UploadListingImage(ctx, listingID, image.URL, image.Position)
		if err != nil {
			p.logger.Warn().
				Err(err).
				Int64("imageId", image.ID).
				Int64("etsyListingId", listingID).
				Msg("can't upload listing image")
			continue
		}

		references = append(references, models.ImageReference{
			ImageID:        image.ID,
			ListingImageID: uploaded.ListingImageID,
			ListingID:      uploaded.ListingID,
			ItemID:         image.ItemID,
			ImageURL:       image.URL,
			Position:       image.Position,
		})
	}

	if len(references) == 0 {
		return platform.NewListingError("no images were uploaded", nil, nil)
	}

	if err := p.store.SaveListingImages(ctx, listingID, references); err != nil {
		return fmt.Errorf("can't save listing images: %w", err)
	}

	return nil
}
