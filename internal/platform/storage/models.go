package storage

import (
	"github.com/MichalMitros/etsy-listing-publisher/internal/platform/models"

	pgmodels "github.com/MichalMitros/etsy-listing-publisher/internal/platform/storage/gen/postgres/public/model"
)

//go:generate make -C ../../../ generate-db

func toDBRun(run *models.Run) *pgmodels.PublishRun {
	return &pgmodels.PublishRun{
		ItemID:             run.ItemID,
		ListingID:          run.ListingID,
		State:              run.State,
		IsSuccess:          run.IsSuccess,
		StatusMessage:      run.StatusMessage,
		ListableVariations: run.ListableVariations,
		FailedVariations:   run.FailedVariations,
		CreatedAt:          run.CreatedAt,
		FinishedAt:         run.FinishedAt,
	}
}

func fromDBRun(run *pgmodels.PublishRun) *models.Run {
	return &models.Run{
		ID:                 int64(run.ID),
		ItemID:             run.ItemID,
		ListingID:          run.ListingID,
		State:              run.State,
		IsSuccess:          run.IsSuccess,
		StatusMessage:      run.StatusMessage,
		ListableVariations: run.ListableVariations,
		FailedVariations:   run.FailedVariations,
		CreatedAt:          run.CreatedAt,
		FinishedAt:         run.FinishedAt,
	}
}

func fromDBSku(sku *pgmodels.VariationSku) *models.SkuReservation {
	return &models.SkuReservation{
		ID:          int64(sku.ID),
		VariationID: sku.VariationID,
		ItemID:      sku.ItemID,
		ListingID:   sku.ListingID,
		ReferrerID:  sku.ReferrerID,
		Sku:         sku.Sku,
		Status:      sku.Status,
		CreatedAt:   sku.CreatedAt,
	}
}

func toDBImage(listingID int64, image *models.ImageReference) *pgmodels.ListingImage {
	return &pgmodels.ListingImage{
		ImageID:        image.ImageID,
		ListingImageID: image.ListingImageID,
		ListingID:      listingID,
		ItemID:         image.ItemID,
		ImageURL:       image.ImageURL,
		Position:       int32(image.Position),
	}
}
