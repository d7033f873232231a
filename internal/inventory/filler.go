package inventory

import (
	"context"
	"fmt"

	"github.com/MichalMitros/etsy-listing-publisher/internal/platform"
	"github.com/MichalMitros/etsy-listing-publisher/internal/platform/etsy"
	"github.com/MichalMitros/etsy-listing-publisher/internal/platform/models"
	"github.com/MichalMitros/etsy-listing-publisher/internal/platform/settings"
	"github.com/rs/zerolog"
)

// Per-variation rejection reasons of the inventory step.
const (
	ReasonAttributeNameMissing      = "attribute name is missing in the main language"
	ReasonAttributeValueNameMissing = "attribute value name is missing in the main language"
)

//go:generate mockery --name Client --filename client.go
//go:generate mockery --name SkuStore --filename skustore.go
//go:generate mockery --name Converter --filename converter.go

// Client submits inventory updates to the marketplace.
type Client interface {
	UpdateInventory(ctx context.Context, listingID int64, update etsy.InventoryUpdate, language string) error
}

// SkuStore creates SKU reservations for variations.
type SkuStore interface {
	GenerateSku(ctx context.Context, variationID, itemID, listingID, referrerID int64) (string, error)
}

// Converter converts amounts between currencies.
type Converter interface {
	Convert(ctx context.Context, amount float64, from string, to string) (float64, error)
}

// Filler builds and submits the inventory of a freshly created listing.
type Filler struct {
	client    Client
	skus      SkuStore
	converter Converter
	logger    *zerolog.Logger
}

// NewFiller returns new Filler.
func NewFiller(client Client, skus SkuStore, converter Converter, logger *zerolog.Logger) Filler {
	return Filler{
		client:    client,
		skus:      skus,
		converter: converter,
		logger:    logger,
	}
}

// Fill builds one inventory product per listable variation and submits the
// whole batch in a single call. A variation whose attribute names can't be
// resolved in the main language is dropped from the batch and logged; an empty
// batch or a rejected update fails the whole publication.
func (f Filler) Fill(ctx context.Context, listingID int64, article *models.Article, validation *models.Validation, snapshot settings.Snapshot) error {
	dependencies := []int64{}
	var attributeOneID, attributeTwoID *int64

	if len(article.Attributes) > 0 {
		attributeOneID = &article.Attributes[0].AttributeID
		dependencies = append(dependencies, etsy.CustomProperty1)
	}
	if len(article.Attributes) > 1 {
		attributeTwoID = &article.Attributes[1].AttributeID
		dependencies = append(dependencies, etsy.CustomProperty2)
	}

	products := make([]etsy.InventoryProduct, 0, len(validation.Listable))
	failed := map[int64][]string{}

variations:
	for _, variation := range validation.Listable {
		propertyValues := make([]etsy.PropertyValue, 0, len(dependencies))

		for _, attribute := range variation.Attributes {
			name := attribute.Name(snapshot.MainLanguage)
			if name == "" {
				failed[variation.ID] = append(failed[variation.ID], ReasonAttributeNameMissing)
				continue variations
			}

			valueName := attribute.ValueName(snapshot.MainLanguage)
			if valueName == "" {
				failed[variation.ID] = append(failed[variation.ID], ReasonAttributeValueNameMissing)
				continue variations
			}

			switch {
			case attributeOneID != nil && attribute.AttributeID == *attributeOneID:
				propertyValues = append(propertyValues, etsy.PropertyValue{
					PropertyID:   etsy.CustomProperty1,
					PropertyName: name,
					Values:       []string{valueName},
				})
			case attributeTwoID != nil && attribute.AttributeID == *attributeTwoID:
				propertyValues = append(propertyValues, etsy.PropertyValue{
					PropertyID:   etsy.CustomProperty2,
					PropertyName: name,
					Values:       []string{valueName},
				})
			}
		}

		price, err := f.converter.Convert(ctx, *variation.SalesPrice, snapshot.DefaultCurrency, snapshot.EtsyCurrency)
		if err != nil {
			return fmt.Errorf("can't convert variation price: %w", err)
		}

		sku, err := f.skus.GenerateSku(ctx, variation.ID, variation.ItemID, listingID, snapshot.ReferrerID)
		if err != nil {
			return fmt.Errorf("can't generate sku: %w", err)
		}

		products = append(products, etsy.InventoryProduct{
			Sku:            sku,
			PropertyValues: propertyValues,
			Offerings: []etsy.Offering{
				{
					Quantity:  *variation.Stock,
					Price:     price,
					IsEnabled: variation.IsActive,
				},
			},
		})
	}

	if len(products) == 0 {
		return platform.NewListingError("no variations left for inventory", nil, failed)
	}

	if len(failed) > 0 {
		f.logger.Error().
			Int64("itemId", article.ItemID).
			Int64("etsyListingId", listingID).
			Interface("failedVariations", failed).
			Msg("some variations were not added to inventory")
	}

	update := etsy.InventoryUpdate{
		Products:           products,
		PriceOnProperty:    dependencies,
		QuantityOnProperty: dependencies,
		SkuOnProperty:      dependencies,
	}

	if err := f.client.UpdateInventory(ctx, listingID, update, snapshot.MainLanguage); err != nil {
		return fmt.Errorf("can't fill listing inventory: %w", err)
	}

	return nil
}
